package editor

import "testing"

func TestTopCandidatesOrdersByLenThenIdDesc(t *testing.T) {
	in := []ShrinkCandidate{
		{Token: "bb", Id: 1, CharLen: 2},
		{Token: "ccc", Id: 2, CharLen: 3},
		{Token: "dd", Id: 5, CharLen: 2},
		{Token: "a", Id: 0, CharLen: 1},
	}

	got := topCandidates(in, 3)

	want := []string{"ccc", "dd", "bb"}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for i, tok := range want {
		if got[i].Token != tok {
			t.Errorf("got[%d] = %q, want %q (full: %+v)", i, got[i].Token, tok, got)
		}
	}
}

func TestTopCandidatesCountExceedsInput(t *testing.T) {
	in := []ShrinkCandidate{{Token: "a", Id: 0, CharLen: 2}}

	got := topCandidates(in, 10)

	if len(got) != 1 || got[0].Token != "a" {
		t.Fatalf("got %+v, want single candidate a", got)
	}
}

func TestTopCandidatesZeroCount(t *testing.T) {
	in := []ShrinkCandidate{{Token: "a", Id: 0, CharLen: 2}}

	if got := topCandidates(in, 0); got != nil {
		t.Fatalf("expected nil for count=0, got %v", got)
	}
}
