package tokfile

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Load reads and parses the tokenizer JSON document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read tokenizer file %s", path)
	}
	return Parse(data)
}

// Parse parses a tokenizer JSON document from raw bytes. It performs no
// model-type check: that is the core's job (spec.md §4.1), since this
// package is a lossless structural parse/emit pair, not a BPE validator.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode tokenizer document")
	}
	return &doc, nil
}

// SplitMerge splits a merge string on its first ASCII space into (left,
// right). Returns ok=false when no space is present.
func SplitMerge(s string) (left, right string, ok bool) {
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// JoinMerge re-joins a (left, right) pair as "left right".
func JoinMerge(left, right string) string {
	return left + " " + right
}
