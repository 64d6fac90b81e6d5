package editor

import (
	"strings"
	"testing"
)

const sampleTokenizerJSON = `{
  "version": "1.0",
  "added_tokens": [{"id": 10, "content": "<pad>", "special": true}],
  "model": {
    "type": "BPE",
    "vocab": {"a": 0, "b": 1, "ab": 2, "<pad>": 10},
    "merges": ["a b"]
  }
}`

func TestFromStringThenToStringRoundTrips(t *testing.T) {
	e, err := FromString([]byte(sampleTokenizerJSON))
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}

	if e.VocabSize() != 4 {
		t.Fatalf("vocab size = %d, want 4", e.VocabSize())
	}
	if e.MergesCount() != 1 {
		t.Fatalf("merges count = %d, want 1", e.MergesCount())
	}

	out, err := e.ToString()
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}

	reloaded, err := FromString(out)
	if err != nil {
		t.Fatalf("reload after round trip: %v", err)
	}
	if reloaded.VocabSize() != e.VocabSize() {
		t.Fatalf("vocab size changed across round trip: %d vs %d", reloaded.VocabSize(), e.VocabSize())
	}
	if reloaded.MergesCount() != e.MergesCount() {
		t.Fatalf("merges count changed across round trip: %d vs %d", reloaded.MergesCount(), e.MergesCount())
	}
	if !strings.Contains(string(out), `"a":0`) {
		t.Fatalf("expected vocab sorted by id ascending in output, got %s", out)
	}
}

func TestFromStringRejectsNonBPEModel(t *testing.T) {
	_, err := FromString([]byte(`{"model":{"type":"WordPiece","vocab":{},"merges":[]}}`))
	if err == nil {
		t.Fatalf("expected an error for a non-BPE model type")
	}
	var unsupported *UnsupportedError
	if !asUnsupported(err, &unsupported) {
		t.Fatalf("expected *UnsupportedError, got %T: %v", err, err)
	}
}

func TestFromStringRejectsMergeWithoutSpace(t *testing.T) {
	_, err := FromString([]byte(`{"model":{"type":"BPE","vocab":{"a":0},"merges":["noSpace"]}}`))
	if err == nil {
		t.Fatalf("expected a parse error for a spaceless merge string")
	}
}

func TestAddTokenAfterLoadAppearsOnSave(t *testing.T) {
	e, err := FromString([]byte(sampleTokenizerJSON))
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}

	e.AddToken("x")

	out, err := e.ToString()
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	if !strings.Contains(string(out), `"x"`) {
		t.Fatalf("expected newly added token x in output, got %s", out)
	}
}

// asUnsupported is a small helper since errors.As needs an addressable
// target of the exact pointer type.
func asUnsupported(err error, target **UnsupportedError) bool {
	for err != nil {
		if u, ok := err.(*UnsupportedError); ok {
			*target = u
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}
