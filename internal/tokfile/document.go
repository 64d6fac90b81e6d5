// Package tokfile parses and emits HuggingFace "fast tokenizer" JSON
// documents: the on-disk format editor.Model is loaded from and saved to.
// It is an external collaborator to the editor package (spec.md §1): it
// never inspects merge semantics beyond splitting a merge string into its
// two operands, and it passes every field it does not understand through
// to output unchanged.
package tokfile

import jsoniter "github.com/json-iterator/go"

// json is the jsoniter codec used throughout this package, configured to
// be a drop-in, allocation-lighter replacement for encoding/json on the
// large vocab/merges blocks spec.md §5 calls out (tokenizers up to 256K
// tokens).
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the top-level shape of a tokenizer.json file. Fields this
// package does not interpret are kept as raw JSON (jsoniter.RawMessage) so
// a round trip through Load/Save reproduces them faithfully; editor.Model
// treats all of them except Model as opaque metadata.
type Document struct {
	Version       string          `json:"version,omitempty"`
	Truncation    jsoniter.RawMessage `json:"truncation"`
	Padding       jsoniter.RawMessage `json:"padding"`
	AddedTokens   []AddedToken    `json:"added_tokens,omitempty"`
	Normalizer    jsoniter.RawMessage `json:"normalizer"`
	PreTokenizer  jsoniter.RawMessage `json:"pre_tokenizer"`
	PostProcessor jsoniter.RawMessage `json:"post_processor"`
	Decoder       jsoniter.RawMessage `json:"decoder"`
	Model         ModelBlock      `json:"model"`
}

// AddedToken is one entry of added_tokens: a special or user-defined token
// kept in sync with model.vocab.
type AddedToken struct {
	Id         int    `json:"id"`
	Content    string `json:"content"`
	SingleWord bool   `json:"single_word"`
	LStrip     bool   `json:"lstrip"`
	RStrip     bool   `json:"rstrip"`
	Normalized bool   `json:"normalized"`
	Special    bool   `json:"special"`
}

// ModelBlock is the model.* fields this package understands. This package
// does not check model.type; editor.Load and editor.FromString reject any
// value other than "BPE".
type ModelBlock struct {
	Type   string         `json:"type"`
	Vocab  map[string]int `json:"vocab"`
	Merges []string       `json:"merges"`

	// Remaining BPE model fields, preserved verbatim but not interpreted.
	UnkToken                string   `json:"unk_token,omitempty"`
	ContinuingSubwordPrefix string   `json:"continuing_subword_prefix,omitempty"`
	EndOfWordSuffix         string   `json:"end_of_word_suffix,omitempty"`
	MaxInputCharsPerWord    int      `json:"max_input_chars_per_word,omitempty"`
	FuseUnk                 bool     `json:"fuse_unk,omitempty"`
	ByteFallback            bool     `json:"byte_fallback,omitempty"`
	Dropout                 *float64 `json:"dropout,omitempty"`
}

// BPEModelType is the only model.type value the core accepts.
const BPEModelType = "BPE"

// modelBlockAlias mirrors ModelBlock but excludes Vocab from the default
// struct encoder (tagged "-"), since MarshalJSON hand-writes vocab itself
// in id order.
type modelBlockAlias struct {
	Type   string         `json:"type"`
	Vocab  map[string]int `json:"-"`
	Merges []string       `json:"merges"`

	UnkToken                string   `json:"unk_token,omitempty"`
	ContinuingSubwordPrefix string   `json:"continuing_subword_prefix,omitempty"`
	EndOfWordSuffix         string   `json:"end_of_word_suffix,omitempty"`
	MaxInputCharsPerWord    int      `json:"max_input_chars_per_word,omitempty"`
	FuseUnk                 bool     `json:"fuse_unk,omitempty"`
	ByteFallback            bool     `json:"byte_fallback,omitempty"`
	Dropout                 *float64 `json:"dropout,omitempty"`
}

// MarshalJSON emits vocab as a JSON object ordered ascending by id (spec.md
// §4.1's "Emit" rule): encoding/json and jsoniter both marshal
// map[string]int with keys sorted lexicographically, which is not what the
// on-disk format wants, so vocab is hand-written here instead of left to
// the struct encoder.
func (m ModelBlock) MarshalJSON() ([]byte, error) {
	rest, err := json.Marshal(modelBlockAlias(m))
	if err != nil {
		return nil, err
	}

	var buf []byte
	buf = append(buf, rest[:len(rest)-1]...) // drop closing '}'
	buf = append(buf, []byte(`,"vocab":{`)...)
	for i, tok := range sortedVocabIds(m.Vocab) {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(tok)
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		val, err := json.Marshal(m.Vocab[tok])
		if err != nil {
			return nil, err
		}
		buf = append(buf, val...)
	}
	buf = append(buf, '}', '}')
	return buf, nil
}
