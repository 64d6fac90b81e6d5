package bpeeditcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	keepSizeOutput    string
	keepSizeDryRun    bool
	keepSizeWhitelist string
)

// newKeepSizeCmd creates the keep-size subcommand.
func newKeepSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keep-size [tokenizer.json] [tokens...]",
		Short: "Add tokens, then shrink back to the original vocab size",
		Long: `Add every listed token not already present, then remove surplus
tokens, ranked by the same selector shrink uses, until the vocab returns
to its size before the call. Whitelisted tokens and the tokens just added
by this call are never removed.

Reaching the exact original size is not guaranteed when every remaining
removable candidate is whitelisted, single-character, or special; the
reported final size reflects what was actually achieved.`,
		Example: `  # Add "hello" and "world" without growing the vocab
  bpeedit edit keep-size tokenizer.json hello world

  # Protect a token from being removed to make room
  bpeedit edit keep-size tokenizer.json hello --whitelist "important,tokens"`,
		Args: cobra.MinimumNArgs(2),
		RunE: runKeepSize,
	}

	cmd.Flags().StringVarP(&keepSizeOutput, "output", "o", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&keepSizeDryRun, "dry-run", false, "Preview the result without writing the file")
	cmd.Flags().StringVar(&keepSizeWhitelist, "whitelist", "", "Comma-separated tokens that must never be removed")

	return cmd
}

func runKeepSize(_ *cobra.Command, args []string) error {
	path, tokens := args[0], args[1:]

	e, err := loadEditor(path)
	if err != nil {
		return err
	}

	var whitelist []string
	if keepSizeWhitelist != "" {
		whitelist = strings.Split(keepSizeWhitelist, ",")
	}

	result := e.AddTokensKeepSize(tokens, whitelist)

	if err := printResult(keepSizeOutput, result, func() {
		fmt.Printf("added %d token(s), removed %d token(s), final vocab size %d\n",
			result.TokensAdded, result.TokensRemoved, result.FinalVocabSize)
	}); err != nil {
		return err
	}

	return saveUnlessDryRun(e, path, keepSizeDryRun)
}
