package editor

import "sort"

// LengthCount pairs a character length with the number of vocab tokens of
// that length.
type LengthCount struct {
	CharLen int
	Count   int
}

// Stats summarizes the current Model.
type Stats struct {
	VocabSize      int
	MergesCount    int
	SingleCharCount int
	SpecialCount   int
	MinId          TokenId
	MaxId          TokenId
	LengthDist     []LengthCount
}

// GetStats computes vocab size, merges count, single-char count,
// special-token count, min/max id, and the length distribution as
// ascending (char_length, count) pairs.
func (e *Editor) GetStats() Stats {
	stats := Stats{
		VocabSize:   e.VocabSize(),
		MergesCount: e.MergesCount(),
	}

	if len(e.model.Vocab) == 0 {
		return stats
	}

	lengthCounts := make(map[int]int)
	first := true
	for tok, id := range e.model.Vocab {
		if first {
			stats.MinId, stats.MaxId = id, id
			first = false
		} else {
			if id < stats.MinId {
				stats.MinId = id
			}
			if id > stats.MaxId {
				stats.MaxId = id
			}
		}
		if IsSingleChar(tok) {
			stats.SingleCharCount++
		}
		if IsSpecial(tok) {
			stats.SpecialCount++
		}
		lengthCounts[CharLen(tok)]++
	}

	lengths := make([]int, 0, len(lengthCounts))
	for l := range lengthCounts {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	stats.LengthDist = make([]LengthCount, len(lengths))
	for i, l := range lengths {
		stats.LengthDist[i] = LengthCount{CharLen: l, Count: lengthCounts[l]}
	}

	return stats
}
