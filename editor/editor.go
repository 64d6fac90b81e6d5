package editor

// Editor owns one Model and its Index exclusively. No operation mutates
// the Model without updating the Index in the same critical section.
type Editor struct {
	model *Model
	index *Index
}

// NewEditor wraps an already-loaded Model in an Editor, building its
// Index.
func NewEditor(m *Model) *Editor {
	return &Editor{model: m, index: BuildIndex(m)}
}

// Model returns the editor's underlying Model. Callers that mutate the
// returned value directly bypass the Index and break invariant 4; treat it
// as read-only outside the editor package.
func (e *Editor) Model() *Model { return e.model }

// rebuildIndex discards the current producer/users maps and rebuilds them
// from the Model, used after batch operations that touch many merge
// positions at once (cascade removal, bulk invalid-merge cleanup). The id
// allocator is carried forward rather than recomputed from the
// post-removal vocab: freed ids must never be recycled within an editor's
// lifetime, so next_id can only ever increase.
func (e *Editor) rebuildIndex() {
	prevNextId := e.index.nextId
	rebuilt := BuildIndex(e.model)
	if rebuilt.nextId < prevNextId {
		rebuilt.nextId = prevNextId
	}
	e.index = rebuilt
}

// VocabSize returns the number of tokens currently in the vocab.
func (e *Editor) VocabSize() int { return e.model.VocabSize() }

// MergesCount returns the number of merge rules currently in the sequence.
func (e *Editor) MergesCount() int { return e.model.MergesCount() }

// HasToken reports whether tok is present in the vocab.
func (e *Editor) HasToken(tok string) bool { return e.model.HasToken(tok) }

// IdOf returns the id of tok and whether it was found.
func (e *Editor) IdOf(tok string) (TokenId, bool) { return e.model.IdOf(tok) }

// TokenOf returns the surface form holding id, and whether it was found.
func (e *Editor) TokenOf(id TokenId) (string, bool) {
	for tok, tokId := range e.model.Vocab {
		if tokId == id {
			return tok, true
		}
	}
	return "", false
}

// GetVocab returns a copy of the vocab map.
func (e *Editor) GetVocab() map[string]TokenId { return e.model.GetVocab() }

// GetMerges returns a copy of the merge sequence.
func (e *Editor) GetMerges() []Merge { return e.model.GetMerges() }

// GetSingleCharTokens returns the current single-Unicode-scalar tokens with
// their ids, in no particular order.
func (e *Editor) GetSingleCharTokens() map[string]TokenId {
	out := make(map[string]TokenId)
	for tok, id := range e.model.Vocab {
		if IsSingleChar(tok) {
			out[tok] = id
		}
	}
	return out
}

// insertToken adds tok to the vocab with a fresh id and returns it. Callers
// must hold no other in-flight mutation of e.index's usedIds/nextId.
func (e *Editor) insertToken(tok string) TokenId {
	id := e.index.AllocateId()
	e.model.Vocab[tok] = id
	if IsSpecial(tok) {
		e.model.Special = append(e.model.Special, SpecialToken{Content: tok, Id: id, Special: true})
	}
	return id
}

// appendMerge appends a merge rule and updates the index in place: O(1),
// no rebuild needed since it only ever adds one new position.
func (e *Editor) appendMerge(left, right string) {
	pos := len(e.model.Merges)
	e.model.Merges = append(e.model.Merges, Merge{Left: left, Right: right})
	e.index.producer[left+right] = pos
	e.index.addUser(left, pos)
	e.index.addUser(right, pos)
}
