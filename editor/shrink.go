package editor

// ShrinkCandidate is one token selected by FindTokensToShrink.
type ShrinkCandidate struct {
	Token   string
	Id      TokenId
	CharLen int
}

// FindTokensToShrink returns up to count tokens that are not special, have
// character length >= 2, and have id >= minId, ordered by (character
// length desc, id desc) — longest, newest tokens first. Selection runs
// through a bounded heap rather than a full sort of the vocab, since a
// shrink or sync call on a hundreds-of-thousands-token vocab only ever
// needs a small top-count slice of it.
func (e *Editor) FindTokensToShrink(count int, minId TokenId) []ShrinkCandidate {
	if count <= 0 {
		return nil
	}

	candidates := make([]ShrinkCandidate, 0, e.VocabSize())
	for tok, id := range e.model.Vocab {
		if id < minId {
			continue
		}
		if IsSpecial(tok) {
			continue
		}
		length := CharLen(tok)
		if length < 2 {
			continue
		}
		candidates = append(candidates, ShrinkCandidate{Token: tok, Id: id, CharLen: length})
	}

	return topCandidates(candidates, count)
}

// ShrinkResult reports the outcome of Shrink.
type ShrinkResult struct {
	InitialVocabSize  int
	FinalVocabSize    int
	InitialMergeCount int
	FinalMergeCount   int

	// TokensRemovedCount is the number of root candidates that were still
	// present at the time Shrink attempted to remove them.
	TokensRemovedCount int
	// TotalTokensRemoved counts every token deleted across all cascades,
	// which can exceed TokensRemovedCount.
	TotalTokensRemoved int
	TotalMergesRemoved int
}

// Shrink selects up to count candidates via FindTokensToShrink and removes
// each in the selector's order. Because a cascade can eliminate later
// candidates before their turn, TokensRemovedCount (roots actually present
// at removal time) can be less than count, while TotalTokensRemoved
// (cascade-inclusive) is always >= TokensRemovedCount.
func (e *Editor) Shrink(count int, minId TokenId) ShrinkResult {
	result := ShrinkResult{
		InitialVocabSize:  e.VocabSize(),
		InitialMergeCount: e.MergesCount(),
	}

	candidates := e.FindTokensToShrink(count, minId)
	for _, cand := range candidates {
		removal := e.RemoveToken(cand.Token)
		if !removal.Found() {
			continue
		}
		result.TokensRemovedCount++
		result.TotalTokensRemoved += len(removal.RemovedTokens)
		result.TotalMergesRemoved += len(removal.RemovedMerges)
	}

	result.FinalVocabSize = e.VocabSize()
	result.FinalMergeCount = e.MergesCount()
	return result
}
