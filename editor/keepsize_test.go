package editor

import "testing"

func TestAddTokensKeepSizeNetZero(t *testing.T) {
	e := newTestEditor(map[string]TokenId{
		"a": 0, "b": 1, "c": 2, "verylongtoken": 50,
	}, nil)

	initial := e.VocabSize()
	result := e.AddTokensKeepSize([]string{"bc"}, nil)

	if e.VocabSize() != initial {
		t.Fatalf("vocab size = %d, want unchanged at %d", e.VocabSize(), initial)
	}
	if result.FinalVocabSize != initial {
		t.Fatalf("result final size = %d, want %d", result.FinalVocabSize, initial)
	}
	if result.TokensAdded != 1 {
		t.Fatalf("tokens added = %d, want 1", result.TokensAdded)
	}
	if !e.HasToken("bc") {
		t.Fatalf("expected bc to have been added")
	}
}

func TestAddTokensKeepSizeSkipsAlreadyPresent(t *testing.T) {
	e := newTestEditor(map[string]TokenId{"a": 0, "b": 1}, nil)

	result := e.AddTokensKeepSize([]string{"a"}, nil)

	if result.TokensAdded != 0 {
		t.Fatalf("tokens added = %d, want 0 for already-present token", result.TokensAdded)
	}
	if result.FinalVocabSize != 2 {
		t.Fatalf("final size = %d, want 2", result.FinalVocabSize)
	}
}

func TestAddTokensKeepSizeHonorsWhitelist(t *testing.T) {
	// Every removable token is whitelisted, so the loop cannot reach the
	// target size and must report the honest final size instead of
	// forcing a match.
	e := newTestEditor(map[string]TokenId{"a": 0, "b": 1, "keepme": 5}, nil)

	initial := e.VocabSize()
	result := e.AddTokensKeepSize([]string{"ab"}, []string{"keepme"})

	if result.FinalVocabSize <= initial {
		t.Fatalf("expected size to grow since no candidate was removable, got %d (initial %d)", result.FinalVocabSize, initial)
	}
	if !e.HasToken("keepme") {
		t.Fatalf("whitelisted token should survive")
	}
}
