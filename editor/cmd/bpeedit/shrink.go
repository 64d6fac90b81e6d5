package bpeeditcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bpeeditor/bpeedit/editor"
)

var (
	shrinkOutput string
	shrinkDryRun bool
	shrinkCount  int
	shrinkMinId  int
)

// newShrinkCmd creates the shrink subcommand.
func newShrinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shrink [tokenizer.json]",
		Short: "Remove a count of the longest, newest tokens and their cascades",
		Long: `Remove up to --count tokens, selected as the longest, newest
non-special multi-character tokens with id >= --min-id, longest and
newest first.

Because removing a token can cascade to tokens built on it, the number of
root candidates actually removed can be lower than the total number of
tokens deleted across all cascades.`,
		Example: `  # Remove the 100 longest, newest tokens
  bpeedit edit shrink tokenizer.json --count 100

  # Only consider tokens added after id 32000
  bpeedit edit shrink tokenizer.json --count 100 --min-id 32000`,
		Args: cobra.ExactArgs(1),
		RunE: runShrink,
	}

	cmd.Flags().StringVarP(&shrinkOutput, "output", "o", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&shrinkDryRun, "dry-run", false, "Preview the result without writing the file")
	cmd.Flags().IntVar(&shrinkCount, "count", 0, "Number of candidate tokens to remove")
	cmd.Flags().IntVar(&shrinkMinId, "min-id", 0, "Only consider tokens with id >= min-id")

	return cmd
}

func runShrink(_ *cobra.Command, args []string) error {
	path := args[0]

	e, err := loadEditor(path)
	if err != nil {
		return err
	}

	result := e.Shrink(shrinkCount, editor.TokenId(shrinkMinId))

	if err := printResult(shrinkOutput, result, func() {
		fmt.Printf("vocab: %d -> %d tokens\n", result.InitialVocabSize, result.FinalVocabSize)
		fmt.Printf("merges: %d -> %d\n", result.InitialMergeCount, result.FinalMergeCount)
		fmt.Printf("roots removed: %d, total tokens removed: %d, total merges removed: %d\n",
			result.TokensRemovedCount, result.TotalTokensRemoved, result.TotalMergesRemoved)
	}); err != nil {
		return err
	}

	return saveUnlessDryRun(e, path, shrinkDryRun)
}
