package editor

// InvalidMerge describes a merge rule whose output is missing from the
// vocab, along with its position in the merge sequence.
type InvalidMerge struct {
	Index int
	Left  string
	Right string
}

// ValidationResult reports the outcome of ValidateMerges.
type ValidationResult struct {
	ValidCount   int
	InvalidCount int
	Invalid      []InvalidMerge
}

// ValidateMerges enumerates merge rules whose concatenated output is
// absent from the vocab. The returned Invalid slice is ordered by merge
// position.
func (e *Editor) ValidateMerges() ValidationResult {
	result := ValidationResult{}
	for i, merge := range e.model.Merges {
		if _, ok := e.model.Vocab[merge.Output()]; ok {
			result.ValidCount++
			continue
		}
		result.InvalidCount++
		result.Invalid = append(result.Invalid, InvalidMerge{Index: i, Left: merge.Left, Right: merge.Right})
	}
	return result
}

// RemoveInvalidMerges deletes every merge whose output is absent from the
// vocab and returns the count removed. Many merge positions can shift at
// once, so the Index is rebuilt rather than patched, per spec.md §4.2.
func (e *Editor) RemoveInvalidMerges() int {
	kept := make([]Merge, 0, len(e.model.Merges))
	removed := 0
	for _, merge := range e.model.Merges {
		if _, ok := e.model.Vocab[merge.Output()]; ok {
			kept = append(kept, merge)
			continue
		}
		removed++
	}
	e.model.Merges = kept
	e.rebuildIndex()
	return removed
}
