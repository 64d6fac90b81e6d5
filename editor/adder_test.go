package editor

import "testing"

func newTestEditor(vocab map[string]TokenId, merges []Merge) *Editor {
	m := NewModel()
	for tok, id := range vocab {
		m.Vocab[tok] = id
	}
	m.Merges = merges
	return NewEditor(m)
}

func TestAddTokenCharChain(t *testing.T) {
	e := newTestEditor(map[string]TokenId{"a": 0, "b": 1, "c": 2}, nil)

	result := e.AddToken("abc")

	if !result.Added || result.Method != MethodCharChain {
		t.Fatalf("expected char_chain add, got %+v", result)
	}
	wantMerges := []Merge{{Left: "a", Right: "b"}, {Left: "ab", Right: "c"}}
	if len(result.AddedMerges) != len(wantMerges) {
		t.Fatalf("added merges = %v, want %v", result.AddedMerges, wantMerges)
	}
	for i, m := range wantMerges {
		if result.AddedMerges[i] != m {
			t.Errorf("merge[%d] = %+v, want %+v", i, result.AddedMerges[i], m)
		}
	}

	wantVocab := map[string]TokenId{"a": 0, "b": 1, "c": 2, "ab": 3, "abc": 4}
	if len(e.model.Vocab) != len(wantVocab) {
		t.Fatalf("vocab = %v, want %v", e.model.Vocab, wantVocab)
	}
	for tok, id := range wantVocab {
		if got, ok := e.model.Vocab[tok]; !ok || got != id {
			t.Errorf("vocab[%q] = %v, %v; want %v", tok, got, ok, id)
		}
	}
	if len(e.model.Merges) != 2 {
		t.Fatalf("merges = %v, want 2 entries", e.model.Merges)
	}
}

func TestAddTokenLongestPrefix(t *testing.T) {
	e := newTestEditor(
		map[string]TokenId{"a": 0, "b": 1, "ab": 2, "c": 3},
		[]Merge{{Left: "a", Right: "b"}},
	)

	result := e.AddToken("abc")

	if !result.Added || result.Method != MethodLongestPrefix {
		t.Fatalf("expected longest_prefix add, got %+v", result)
	}
	wantMerges := []Merge{{Left: "a", Right: "b"}, {Left: "ab", Right: "c"}}
	if len(e.model.Merges) != 2 || e.model.Merges[1] != wantMerges[1] {
		t.Fatalf("merges = %v, want %v", e.model.Merges, wantMerges)
	}
	if _, ok := e.model.Vocab["abc"]; !ok {
		t.Fatalf("expected abc in vocab")
	}
	if len(e.model.Vocab) != 5 {
		t.Fatalf("vocab gained more than abc: %v", e.model.Vocab)
	}
}

func TestAddTokenSingleChar(t *testing.T) {
	e := newTestEditor(map[string]TokenId{"a": 0}, nil)

	result := e.AddToken("x")

	if !result.Added || result.Method != MethodSingleChar {
		t.Fatalf("expected single_char add, got %+v", result)
	}
	if len(e.model.Merges) != 0 {
		t.Fatalf("single_char should add no merges, got %v", e.model.Merges)
	}
}

func TestAddTokenAlreadyExists(t *testing.T) {
	e := newTestEditor(map[string]TokenId{"a": 0, "b": 1, "ab": 2}, []Merge{{Left: "a", Right: "b"}})

	result := e.AddToken("ab")

	if result.Added || result.Method != MethodAlreadyExists {
		t.Fatalf("expected already_exists, got %+v", result)
	}
	if result.Id != 2 {
		t.Errorf("id = %d, want 2", result.Id)
	}

	again := e.AddToken("ab")
	if again.Added || again.Method != MethodAlreadyExists {
		t.Fatalf("second add_token(ab) should also be already_exists, got %+v", again)
	}
}

func TestAddTokenAtomicDoesNotSynthesizeMerges(t *testing.T) {
	e := newTestEditor(map[string]TokenId{"a": 0}, nil)

	id, added := e.AddTokenAtomic("<pad>")
	if !added {
		t.Fatalf("expected atomic add to succeed")
	}
	if len(e.model.Merges) != 0 {
		t.Fatalf("atomic add should not synthesize merges, got %v", e.model.Merges)
	}
	if got, ok := e.model.Vocab["<pad>"]; !ok || got != id {
		t.Fatalf("vocab missing inserted token")
	}
	found := false
	for _, sp := range e.model.Special {
		if sp.Content == "<pad>" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected <pad> to be recorded as a special token")
	}

	_, added = e.AddTokenAtomic("<pad>")
	if added {
		t.Errorf("second atomic add of existing token should report added=false")
	}
}

func TestAddTokensPreservesOrder(t *testing.T) {
	e := newTestEditor(map[string]TokenId{"a": 0, "b": 1}, nil)

	results := e.AddTokens([]string{"a", "ab", "x"})

	if results[0].Token != "a" || results[0].Added {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[1].Token != "ab" || !results[1].Added {
		t.Errorf("results[1] = %+v", results[1])
	}
	if results[2].Token != "x" || !results[2].Added || results[2].Method != MethodSingleChar {
		t.Errorf("results[2] = %+v", results[2])
	}
}
