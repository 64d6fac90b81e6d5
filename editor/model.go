package editor

import "unicode/utf8"

// TokenId is a non-negative integer uniquely identifying a token within a
// tokenizer. Ids need not be contiguous.
type TokenId int

// Merge is an ordered pair of token strings. Its output is the
// concatenation Left+Right. Position within Model.Merges is significant: it
// defines BPE application priority.
type Merge struct {
	Left  string
	Right string
}

// Output returns the concatenation of the merge's operands.
func (m Merge) Output() string {
	return m.Left + m.Right
}

// SpecialToken is a token carried in the tokenizer's explicit special-token
// list (HuggingFace's added_tokens), kept synchronized with the vocab.
type SpecialToken struct {
	Content string
	Id      TokenId
	// Flags mirror HuggingFace's added_tokens entry flags; they are opaque
	// to the core and passed through unchanged.
	SingleWord bool
	LStrip     bool
	RStrip     bool
	Normalized bool
	Special    bool
}

// Model is the in-memory tokenizer: vocab map, merges list, special-token
// list, and an opaque metadata blob for every other top-level field of the
// source document (normalizer, pre_tokenizer, post_processor, decoder,
// truncation, padding, version).
type Model struct {
	Vocab   map[string]TokenId
	Merges  []Merge
	Special []SpecialToken

	// Metadata carries every top-level field of the source document other
	// than model.vocab and model.merges, opaque to the core and preserved
	// verbatim on Save.
	Metadata any
}

// NewModel returns an empty Model ready for incremental construction.
func NewModel() *Model {
	return &Model{
		Vocab: make(map[string]TokenId),
	}
}

// CharLen returns the number of Unicode scalar values in tok. Spec measures
// "character length" in scalars, not bytes or UTF-16 code units.
func CharLen(tok string) int {
	return utf8.RuneCountInString(tok)
}

// IsSpecial reports whether tok's surface form matches the special-token
// pattern: begins with '<' and ends with '>', or begins with '[' and ends
// with ']'.
func IsSpecial(tok string) bool {
	if len(tok) < 2 {
		return false
	}
	first, last := tok[0], tok[len(tok)-1]
	if first == '<' && last == '>' {
		return true
	}
	if first == '[' && last == ']' {
		return true
	}
	return false
}

// IsSingleChar reports whether tok is exactly one Unicode scalar value.
func IsSingleChar(tok string) bool {
	return CharLen(tok) == 1
}

// HasToken reports whether tok is present in the vocab.
func (m *Model) HasToken(tok string) bool {
	_, ok := m.Vocab[tok]
	return ok
}

// IdOf returns the id of tok and whether it was found.
func (m *Model) IdOf(tok string) (TokenId, bool) {
	id, ok := m.Vocab[tok]
	return id, ok
}

// VocabSize returns the number of tokens currently in the vocab.
func (m *Model) VocabSize() int {
	return len(m.Vocab)
}

// MergesCount returns the number of merge rules currently in the sequence.
func (m *Model) MergesCount() int {
	return len(m.Merges)
}

// GetVocab returns a copy of the vocab map, safe for the caller to mutate.
func (m *Model) GetVocab() map[string]TokenId {
	out := make(map[string]TokenId, len(m.Vocab))
	for k, v := range m.Vocab {
		out[k] = v
	}
	return out
}

// GetMerges returns a copy of the merge sequence, safe for the caller to
// mutate.
func (m *Model) GetMerges() []Merge {
	out := make([]Merge, len(m.Merges))
	copy(out, m.Merges)
	return out
}
