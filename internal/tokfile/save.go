package tokfile

import (
	"os"
	"sort"

	"github.com/pkg/errors"
)

// Encode serializes doc: vocab sorted ascending by id, merges re-joined as
// "left right", and every other top-level field preserved verbatim.
func Encode(doc *Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "encode tokenizer document")
	}
	return data, nil
}

// Save encodes doc and writes it to path.
func Save(path string, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write tokenizer file %s", path)
	}
	return nil
}

// sortedVocabIds returns vocab's tokens ordered by ascending id, for
// callers that need to walk the vocab by id before marshaling.
func sortedVocabIds(vocab map[string]int) []string {
	toks := make([]string, 0, len(vocab))
	for tok := range vocab {
		toks = append(toks, tok)
	}
	sort.Slice(toks, func(i, j int) bool { return vocab[toks[i]] < vocab[toks[j]] })
	return toks
}
