package editor

import "sort"

// RemovalResult reports the outcome of RemoveToken/RemoveTokens.
type RemovalResult struct {
	RootToken string
	// RemovedTokens lists every token deleted by the cascade, root first,
	// then the rest in discovery order.
	RemovedTokens []string
	// RemovedMerges lists every deleted (left, right) pair, in ascending
	// original-position order.
	RemovedMerges []Merge
}

// Found reports whether root was present in the vocab at the time of the
// call. An absent root yields a zero-value RemovalResult with RootToken
// set, per spec.md §7's NotFound-is-not-an-error policy.
func (r RemovalResult) Found() bool {
	return len(r.RemovedTokens) > 0
}

// RemoveToken computes the cascade closure of root and deletes it:
//
//  1. Every merge that reads root as an operand cannot survive.
//  2. For each such merge, if its output is not itself root, is not a
//     single-char or special token, and root's removed merge was that
//     output's sole producer, the output becomes unproducible and joins
//     the closure.
//  3. The merge that produced root (if any) is orphaned and removed too.
//
// The worklist is a plain slice-backed BFS queue rather than recursion,
// per spec.md §9: cascade depth can exceed call-stack limits on
// adversarial inputs.
func (e *Editor) RemoveToken(root string) RemovalResult {
	if _, ok := e.model.Vocab[root]; !ok {
		return RemovalResult{RootToken: root}
	}

	toRemoveTokens := map[string]struct{}{root: {}}
	tokenOrder := []string{root}
	toRemoveMerges := map[int]struct{}{}
	worklist := []string{root}

	for len(worklist) > 0 {
		tok := worklist[0]
		worklist = worklist[1:]

		for _, pos := range e.index.UsersOf(tok) {
			toRemoveMerges[pos] = struct{}{}
			merge := e.model.Merges[pos]
			out := merge.Output()
			if _, already := toRemoveTokens[out]; already {
				continue
			}
			producerPos, hasProducer := e.index.ProducerOf(out)
			if !hasProducer || producerPos != pos {
				continue
			}
			if IsSingleChar(out) || IsSpecial(out) {
				continue
			}
			toRemoveTokens[out] = struct{}{}
			tokenOrder = append(tokenOrder, out)
			worklist = append(worklist, out)
		}

		if producerPos, ok := e.index.ProducerOf(tok); ok {
			toRemoveMerges[producerPos] = struct{}{}
		}
	}

	removedMergePositions := make([]int, 0, len(toRemoveMerges))
	for pos := range toRemoveMerges {
		removedMergePositions = append(removedMergePositions, pos)
	}
	sort.Ints(removedMergePositions)

	removedMerges := make([]Merge, len(removedMergePositions))
	for i, pos := range removedMergePositions {
		removedMerges[i] = e.model.Merges[pos]
	}

	newMerges := make([]Merge, 0, len(e.model.Merges)-len(toRemoveMerges))
	for pos, merge := range e.model.Merges {
		if _, dead := toRemoveMerges[pos]; dead {
			continue
		}
		newMerges = append(newMerges, merge)
	}
	e.model.Merges = newMerges

	for tok := range toRemoveTokens {
		delete(e.model.Vocab, tok)
	}
	if len(e.model.Special) > 0 {
		newSpecial := make([]SpecialToken, 0, len(e.model.Special))
		for _, sp := range e.model.Special {
			if _, dead := toRemoveTokens[sp.Content]; dead {
				continue
			}
			newSpecial = append(newSpecial, sp)
		}
		e.model.Special = newSpecial
	}

	e.rebuildIndex()

	return RemovalResult{
		RootToken:     root,
		RemovedTokens: tokenOrder,
		RemovedMerges: removedMerges,
	}
}

// RemoveTokens applies RemoveToken to each token in order and returns the
// per-token results in that same order. A later token already swept up by
// an earlier cascade yields an empty result, matching a direct second call
// to RemoveToken on an already-absent token.
func (e *Editor) RemoveTokens(tokens []string) []RemovalResult {
	results := make([]RemovalResult, len(tokens))
	for i, tok := range tokens {
		results[i] = e.RemoveToken(tok)
	}
	return results
}
