package editor

// AddMethod names which of the four synthesis strategies AddToken used.
type AddMethod string

const (
	MethodAlreadyExists AddMethod = "already_exists"
	MethodSingleChar    AddMethod = "single_char"
	MethodLongestPrefix AddMethod = "longest_prefix"
	MethodCharChain     AddMethod = "char_chain"
)

// AddResult reports the outcome of AddToken.
type AddResult struct {
	Token   string
	Added   bool
	Method  AddMethod
	Id      TokenId
	// AddedTokens lists every token newly inserted into the vocab by this
	// call, in insertion order (for char_chain this includes intermediate
	// single characters and prefixes; for longest_prefix and single_char
	// it is just [Token]).
	AddedTokens []string
	// AddedMerges lists every merge rule appended by this call, in
	// append order.
	AddedMerges []Merge
}

// AddToken chooses one of four synthesis methods to make tok producible
// and applies it:
//
//   - already_exists: tok is already in the vocab; no change.
//   - single_char: tok is one Unicode scalar; inserted with a fresh id and
//     no merge.
//   - longest_prefix: the longest proper prefix p of tok such that both p
//     and the remaining suffix s are already in the vocab; appends the
//     merge (p, s).
//   - char_chain: otherwise, every scalar of tok is ensured present as a
//     single-char token, then every intermediate prefix is synthesized
//     left to right, each via a new merge against the next scalar.
func (e *Editor) AddToken(tok string) AddResult {
	if id, ok := e.model.Vocab[tok]; ok {
		return AddResult{Token: tok, Added: false, Method: MethodAlreadyExists, Id: id}
	}

	if IsSingleChar(tok) {
		id := e.insertToken(tok)
		return AddResult{Token: tok, Added: true, Method: MethodSingleChar, Id: id, AddedTokens: []string{tok}}
	}

	if p, s, ok := e.longestPrefixSplit(tok); ok {
		id := e.insertToken(tok)
		e.appendMerge(p, s)
		return AddResult{
			Token:       tok,
			Added:       true,
			Method:      MethodLongestPrefix,
			Id:          id,
			AddedTokens: []string{tok},
			AddedMerges: []Merge{{Left: p, Right: s}},
		}
	}

	addedTokens, addedMerges, id := e.charChain(tok)
	return AddResult{
		Token:       tok,
		Added:       true,
		Method:      MethodCharChain,
		Id:          id,
		AddedTokens: addedTokens,
		AddedMerges: addedMerges,
	}
}

// longestPrefixSplit finds the longest proper prefix p of tok such that p
// and its complementary suffix s = tok[len(p):] are both already in the
// vocab. Per spec.md's open-question resolution, "suffix must also be in
// vocab" is part of this method's applicability guard, not a fallthrough
// error: if no such p exists (even if some prefix alone is present),
// AddToken falls through to char_chain.
func (e *Editor) longestPrefixSplit(tok string) (prefix, suffix string, ok bool) {
	runes := []rune(tok)
	for cut := len(runes) - 1; cut >= 1; cut-- {
		p := string(runes[:cut])
		if _, ok := e.model.Vocab[p]; !ok {
			continue
		}
		s := string(runes[cut:])
		if _, ok := e.model.Vocab[s]; !ok {
			continue
		}
		return p, s, true
	}
	return "", "", false
}

// charChain enumerates tok's Unicode scalars, inserting any missing one as
// a fresh single-char token, then synthesizes every intermediate prefix
// left to right via a merge against the next scalar. The final prefix
// equals tok itself.
func (e *Editor) charChain(tok string) (addedTokens []string, addedMerges []Merge, finalId TokenId) {
	runes := []rune(tok)

	for _, r := range runes {
		c := string(r)
		if _, ok := e.model.Vocab[c]; !ok {
			e.insertToken(c)
			addedTokens = append(addedTokens, c)
		}
	}

	prefix := string(runes[0])
	for k := 1; k < len(runes); k++ {
		nextChar := string(runes[k])
		next := prefix + nextChar
		if id, ok := e.model.Vocab[next]; ok {
			prefix = next
			finalId = id
			continue
		}
		id := e.insertToken(next)
		e.appendMerge(prefix, nextChar)
		addedTokens = append(addedTokens, next)
		addedMerges = append(addedMerges, Merge{Left: prefix, Right: nextChar})
		prefix = next
		finalId = id
	}

	return addedTokens, addedMerges, finalId
}

// AddTokenAtomic inserts tok into the vocab (and the special-token list, if
// its surface matches the special pattern) without any merge synthesis.
// Returns false if tok was already present. Used by callers, such as Sync,
// that already know tok is a single character or is externally justified.
func (e *Editor) AddTokenAtomic(tok string) (id TokenId, added bool) {
	if existing, ok := e.model.Vocab[tok]; ok {
		return existing, false
	}
	return e.insertToken(tok), true
}

// AddTokens applies AddToken to each token in tokens in order; the result
// slice preserves that order.
func (e *Editor) AddTokens(tokens []string) []AddResult {
	results := make([]AddResult, len(tokens))
	for i, tok := range tokens {
		results[i] = e.AddToken(tok)
	}
	return results
}
