package editor

import "testing"

func TestSyncSingleChars(t *testing.T) {
	source := newTestEditor(map[string]TokenId{
		"a": 0, "b": 1, "ñ": 500,
	}, nil)

	target := newTestEditor(map[string]TokenId{
		"a": 0, "b": 1, "longtoken": 100,
	}, nil)

	before := target.VocabSize()
	result := target.SyncSingleChars(source, 50)

	if result.CharsAddedCount != 1 {
		t.Fatalf("chars added = %d, want 1", result.CharsAddedCount)
	}
	if !target.HasToken("ñ") {
		t.Fatalf("expected ñ to be imported")
	}
	if target.VocabSize() != before {
		t.Fatalf("vocab size changed: before=%d after=%d, want unchanged", before, target.VocabSize())
	}
	if result.TokensRemovedCount != 1 {
		t.Fatalf("tokens removed = %d, want 1 (longtoken made room)", result.TokensRemovedCount)
	}
}

func TestSyncSingleCharsNeverMutatesSource(t *testing.T) {
	source := newTestEditor(map[string]TokenId{"a": 0, "z": 9}, nil)
	target := newTestEditor(map[string]TokenId{"a": 0}, nil)

	sourceVocabBefore := source.VocabSize()
	target.SyncSingleChars(source, 0)

	if source.VocabSize() != sourceVocabBefore {
		t.Fatalf("source was mutated: before=%d after=%d", sourceVocabBefore, source.VocabSize())
	}
}

func TestSyncShortTokensReusesSourceMergeWhenOperandsPresent(t *testing.T) {
	source := newTestEditor(
		map[string]TokenId{"a": 0, "b": 1, "ab": 2},
		[]Merge{{Left: "a", Right: "b"}},
	)
	target := newTestEditor(map[string]TokenId{"a": 0, "b": 1}, nil)

	result, err := target.SyncShortTokens(source, 2, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CharsAddedCount != 1 {
		t.Fatalf("chars added = %d, want 1", result.CharsAddedCount)
	}
	if len(target.model.Merges) != 1 || target.model.Merges[0] != (Merge{Left: "a", Right: "b"}) {
		t.Fatalf("expected source merge (a,b) reused, got %v", target.model.Merges)
	}
}

func TestSyncShortTokensRejectsBadRange(t *testing.T) {
	source := newTestEditor(map[string]TokenId{"a": 0}, nil)
	target := newTestEditor(map[string]TokenId{"a": 0}, nil)

	_, err := target.SyncShortTokens(source, 5, 2, 0)
	if err == nil {
		t.Fatalf("expected error for min_len > max_len")
	}
}
