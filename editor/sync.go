package editor

import "sort"

// SyncResult reports the outcome of SyncSingleChars/SyncShortTokens.
type SyncResult struct {
	CharsAddedCount    int
	TokensRemovedCount int
	TotalTokensRemoved int
	TotalMergesRemoved int
}

// SyncSingleChars imports every single-Unicode-scalar token present in
// source but absent from e, making room for them first by shrinking e's
// longest, newest tokens (id >= minId) via FindTokensToShrink. Source's
// vocab is read directly and source is never mutated.
func (e *Editor) SyncSingleChars(source *Editor, minId TokenId) SyncResult {
	var missing []string
	for tok := range source.model.Vocab {
		if IsSingleChar(tok) && !e.HasToken(tok) {
			missing = append(missing, tok)
		}
	}
	sort.Strings(missing)

	result := SyncResult{}
	for _, cand := range e.FindTokensToShrink(len(missing), minId) {
		removal := e.RemoveToken(cand.Token)
		if !removal.Found() {
			continue
		}
		result.TokensRemovedCount++
		result.TotalTokensRemoved += len(removal.RemovedTokens)
		result.TotalMergesRemoved += len(removal.RemovedMerges)
	}

	for _, tok := range missing {
		if _, added := e.AddTokenAtomic(tok); added {
			result.CharsAddedCount++
		}
	}

	return result
}

// sourceMissingToken describes one token present in a sync source but
// absent from the target, along with the source's id (used to order
// additions so dependencies precede dependents) and, if the source has a
// producer rule for it, that rule's operands.
type sourceMissingToken struct {
	token       string
	id          TokenId
	charLen     int
	producerLeft  string
	producerRight string
	hasProducer bool
}

// SyncShortTokens generalizes SyncSingleChars to any character-length
// range [minLen, maxLen]. Additions proceed via AddToken (synthesizing a
// merge chain), except that when source already has a producer rule
// (A, B) for a missing token and both A and B are present in e (or will be,
// after earlier additions in this call), the exact source rule is appended
// instead of re-synthesizing — preserving the source's merge semantics.
// Addition order is by character length ascending, then by source id
// ascending, so dependencies are always added before their dependents.
func (e *Editor) SyncShortTokens(source *Editor, minLen, maxLen int, minId TokenId) (SyncResult, error) {
	if minLen > maxLen {
		return SyncResult{}, NewInvalidArgumentError("min_len", minLen, "min_len must be <= max_len")
	}

	var missing []sourceMissingToken
	for tok, id := range source.model.Vocab {
		length := CharLen(tok)
		if length < minLen || length > maxLen {
			continue
		}
		if e.HasToken(tok) {
			continue
		}
		m := sourceMissingToken{token: tok, id: id, charLen: length}
		if pos, ok := source.index.ProducerOf(tok); ok {
			merge := source.model.Merges[pos]
			m.hasProducer = true
			m.producerLeft = merge.Left
			m.producerRight = merge.Right
		}
		missing = append(missing, m)
	}

	sort.Slice(missing, func(i, j int) bool {
		if missing[i].charLen != missing[j].charLen {
			return missing[i].charLen < missing[j].charLen
		}
		return missing[i].id < missing[j].id
	})

	result := SyncResult{}
	for _, cand := range e.FindTokensToShrink(len(missing), minId) {
		removal := e.RemoveToken(cand.Token)
		if !removal.Found() {
			continue
		}
		result.TokensRemovedCount++
		result.TotalTokensRemoved += len(removal.RemovedTokens)
		result.TotalMergesRemoved += len(removal.RemovedMerges)
	}

	for _, m := range missing {
		if e.HasToken(m.token) {
			continue
		}
		if m.hasProducer && e.HasToken(m.producerLeft) && e.HasToken(m.producerRight) {
			e.insertToken(m.token)
			e.appendMerge(m.producerLeft, m.producerRight)
			result.CharsAddedCount++
			continue
		}
		add := e.AddToken(m.token)
		if add.Added {
			result.CharsAddedCount++
		}
	}

	return result, nil
}
