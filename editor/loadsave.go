package editor

import (
	"github.com/bpeeditor/bpeedit/internal/tokfile"
)

// Load reads a tokenizer.json document from path and builds an Editor over
// it. Fails with a LoadError if path is unreadable or the JSON is
// malformed, a ParseError if a merge string lacks a space, or an
// UnsupportedError if model.type is not "BPE".
func Load(path string) (*Editor, error) {
	doc, err := tokfile.Load(path)
	if err != nil {
		return nil, &LoadError{Op: "load", Path: path, Err: err}
	}
	return fromDocument(doc)
}

// FromString parses a tokenizer.json document already in memory and builds
// an Editor over it.
func FromString(data []byte) (*Editor, error) {
	doc, err := tokfile.Parse(data)
	if err != nil {
		return nil, &LoadError{Op: "parse", Err: err}
	}
	return fromDocument(doc)
}

func fromDocument(doc *tokfile.Document) (*Editor, error) {
	if doc.Model.Type != tokfile.BPEModelType {
		return nil, &UnsupportedError{ModelType: doc.Model.Type}
	}

	m := NewModel()
	m.Metadata = doc

	for tok, id := range doc.Model.Vocab {
		m.Vocab[tok] = TokenId(id)
	}

	m.Merges = make([]Merge, len(doc.Model.Merges))
	for i, raw := range doc.Model.Merges {
		left, right, ok := tokfile.SplitMerge(raw)
		if !ok {
			return nil, &ParseError{Op: "split merge", Err: ErrInvalidMergeString}
		}
		m.Merges[i] = Merge{Left: left, Right: right}
	}

	for _, at := range doc.AddedTokens {
		m.Special = append(m.Special, SpecialToken{
			Content:    at.Content,
			Id:         TokenId(at.Id),
			SingleWord: at.SingleWord,
			LStrip:     at.LStrip,
			RStrip:     at.RStrip,
			Normalized: at.Normalized,
			Special:    at.Special,
		})
	}

	return NewEditor(m), nil
}

// toDocument projects the Editor's Model back onto the tokfile.Document it
// was loaded from (or a fresh one, for a from-scratch Model), refreshing
// model.vocab, model.merges, and added_tokens while leaving every other
// top-level field as last seen.
func (e *Editor) toDocument() *tokfile.Document {
	var doc tokfile.Document
	if existing, ok := e.model.Metadata.(*tokfile.Document); ok && existing != nil {
		doc = *existing
	} else {
		doc.Model.Type = tokfile.BPEModelType
	}

	doc.Model.Vocab = make(map[string]int, len(e.model.Vocab))
	for tok, id := range e.model.Vocab {
		doc.Model.Vocab[tok] = int(id)
	}

	doc.Model.Merges = make([]string, len(e.model.Merges))
	for i, merge := range e.model.Merges {
		doc.Model.Merges[i] = tokfile.JoinMerge(merge.Left, merge.Right)
	}

	doc.AddedTokens = make([]tokfile.AddedToken, len(e.model.Special))
	for i, sp := range e.model.Special {
		doc.AddedTokens[i] = tokfile.AddedToken{
			Id:         int(sp.Id),
			Content:    sp.Content,
			SingleWord: sp.SingleWord,
			LStrip:     sp.LStrip,
			RStrip:     sp.RStrip,
			Normalized: sp.Normalized,
			Special:    sp.Special,
		}
	}

	return &doc
}

// Save encodes the editor's current Model and writes it to path.
func (e *Editor) Save(path string) error {
	if err := tokfile.Save(path, e.toDocument()); err != nil {
		return &LoadError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// ToString encodes the editor's current Model as a tokenizer.json
// document.
func (e *Editor) ToString() ([]byte, error) {
	data, err := tokfile.Encode(e.toDocument())
	if err != nil {
		return nil, &LoadError{Op: "encode", Err: err}
	}
	return data, nil
}
