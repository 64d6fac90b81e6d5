package editor

import "testing"

func TestBuildIndexProducerAndUsers(t *testing.T) {
	m := NewModel()
	m.Vocab = map[string]TokenId{"a": 0, "b": 1, "ab": 2}
	m.Merges = []Merge{{Left: "a", Right: "b"}}

	idx := BuildIndex(m)

	pos, ok := idx.ProducerOf("ab")
	if !ok || pos != 0 {
		t.Fatalf("producer of ab = %d, %v; want 0, true", pos, ok)
	}

	usersA := idx.UsersOf("a")
	if len(usersA) != 1 || usersA[0] != 0 {
		t.Fatalf("users of a = %v, want [0]", usersA)
	}
}

func TestBuildIndexLastWriterWinsOnDuplicateOutput(t *testing.T) {
	m := NewModel()
	m.Vocab = map[string]TokenId{"a": 0, "b": 1, "c": 2, "ab": 3}
	// Two merges both produce "ab" — tolerated on load, last wins.
	m.Merges = []Merge{{Left: "a", Right: "b"}, {Left: "c", Right: "c"}}
	m.Merges[1] = Merge{Left: "a", Right: "b"}

	idx := BuildIndex(m)

	pos, ok := idx.ProducerOf("ab")
	if !ok || pos != 1 {
		t.Fatalf("producer of ab = %d, %v; want 1 (last writer), true", pos, ok)
	}
}

func TestAllocateIdIsMonotonic(t *testing.T) {
	m := NewModel()
	m.Vocab = map[string]TokenId{"a": 5, "b": 7}
	idx := BuildIndex(m)

	if got := idx.NextId(); got != 8 {
		t.Fatalf("next id = %d, want 8", got)
	}

	first := idx.AllocateId()
	if first != 8 {
		t.Fatalf("allocated = %d, want 8", first)
	}
	second := idx.AllocateId()
	if second != 9 {
		t.Fatalf("allocated = %d, want 9", second)
	}

}

func TestRemovedIdsAreNotRecycledWithinAnEditorLifetime(t *testing.T) {
	e := newTestEditor(map[string]TokenId{"a": 0, "b": 1}, nil)

	added := e.AddToken("c")
	highWaterMark := added.Id

	e.RemoveToken("c")
	again := e.AddToken("d")

	if again.Id <= highWaterMark {
		t.Fatalf("reallocated id %d should exceed the prior high-water mark %d", again.Id, highWaterMark)
	}
}
