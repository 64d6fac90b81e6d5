package editor

import "container/heap"

// candidateHeap is a min-heap of ShrinkCandidate ordered by the selector's
// own ranking (char length desc, id desc, so "worst" candidate is the one
// with the shortest length / lowest id). Bounding it to the requested
// count turns selection into O(n log count) instead of an O(n log n) sort
// of the full vocab, which matters once vocab sizes reach the hundreds of
// thousands of tokens.
type candidateHeap []ShrinkCandidate

// candidateLess reports whether a ranks ahead of (is a stronger removal candidate
// than) b: longer char length first, then higher id.
func candidateLess(a, b ShrinkCandidate) bool {
	if a.CharLen != b.CharLen {
		return a.CharLen > b.CharLen
	}
	return a.Id > b.Id
}

func (h candidateHeap) Len() int { return len(h) }

// Less inverts candidateLess so the heap's root (index 0) is always the
// weakest candidate currently held, the one to evict when a stronger one
// arrives.
func (h candidateHeap) Less(i, j int) bool { return candidateLess(h[j], h[i]) }

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) {
	*h = append(*h, x.(ShrinkCandidate))
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// topCandidates returns the count strongest candidates from cands, sorted
// strongest first. If count >= len(cands), it returns all of them sorted,
// equivalent to a plain full sort.
func topCandidates(cands []ShrinkCandidate, count int) []ShrinkCandidate {
	if count >= len(cands) {
		count = len(cands)
	}
	if count == 0 {
		return nil
	}

	h := make(candidateHeap, 0, count)
	heap.Init(&h)
	for _, c := range cands {
		if len(h) < count {
			heap.Push(&h, c)
			continue
		}
		if candidateLess(c, h[0]) {
			h[0] = c
			heap.Fix(&h, 0)
		}
	}

	out := make([]ShrinkCandidate, len(h))
	for i := len(h) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(ShrinkCandidate)
	}
	return out
}
