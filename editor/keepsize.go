package editor

// KeepSizeResult reports the outcome of AddTokensKeepSize.
type KeepSizeResult struct {
	TokensAdded    int
	TokensRemoved  int
	FinalVocabSize int
}

// AddTokensKeepSize adds every token in tokens not already present via
// AddToken, then removes surplus tokens (ranked by FindTokensToShrink,
// excluding whitelist and the tokens just added) until the vocab returns to
// its size before the call, or no removable candidates remain.
//
// Reaching the exact target size is not guaranteed when every remaining
// candidate is whitelisted, single-character, or special: the result
// reports the final size honestly rather than forcing a match.
func (e *Editor) AddTokensKeepSize(tokens []string, whitelist []string) KeepSizeResult {
	initial := e.VocabSize()

	whitelistSet := make(map[string]struct{}, len(whitelist))
	for _, tok := range whitelist {
		whitelistSet[tok] = struct{}{}
	}

	justAdded := make(map[string]struct{})
	tokensAdded := 0
	for _, tok := range tokens {
		if e.HasToken(tok) {
			continue
		}
		add := e.AddToken(tok)
		if !add.Added {
			continue
		}
		tokensAdded++
		for _, added := range add.AddedTokens {
			justAdded[added] = struct{}{}
		}
	}

	delta := e.VocabSize() - initial
	tokensRemoved := 0

	for delta > 0 && e.VocabSize() > initial {
		// Ask for enough candidates that delta of them remain after the
		// whitelist and just-added tokens are filtered out.
		candidates := e.FindTokensToShrink(delta+len(whitelistSet)+len(justAdded), 0)
		filtered := candidates[:0]
		for _, cand := range candidates {
			if _, white := whitelistSet[cand.Token]; white {
				continue
			}
			if _, added := justAdded[cand.Token]; added {
				continue
			}
			filtered = append(filtered, cand)
		}
		if len(filtered) == 0 {
			break
		}
		if len(filtered) > delta {
			filtered = filtered[:delta]
		}

		progressed := false
		for _, cand := range filtered {
			if e.VocabSize() <= initial {
				break
			}
			removal := e.RemoveToken(cand.Token)
			if !removal.Found() {
				continue
			}
			tokensRemoved++
			progressed = true
		}
		if !progressed {
			break
		}
		delta = e.VocabSize() - initial
	}

	return KeepSizeResult{
		TokensAdded:    tokensAdded,
		TokensRemoved:  tokensRemoved,
		FinalVocabSize: e.VocabSize(),
	}
}
