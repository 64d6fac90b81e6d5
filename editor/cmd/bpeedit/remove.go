package bpeeditcmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	removeOutput string
	removeDryRun bool
)

// newRemoveCmd creates the remove subcommand.
func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [tokenizer.json] [token]",
		Short: "Remove a token and cascade-remove everything built on it",
		Long: `Remove a token from the vocab.

Every merge that reads the token as an operand is deleted. For each such
merge, if its output has no other producer and is not itself a
single-character or special token, the output is removed too and the
cascade continues from there. The merge that produced the token, if any,
is removed along with it.`,
		Example: `  # Remove a token and its cascade
  bpeedit edit remove tokenizer.json "hello"

  # Preview the cascade without writing the file
  bpeedit edit remove tokenizer.json "hello" --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: runRemove,
	}

	cmd.Flags().StringVarP(&removeOutput, "output", "o", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&removeDryRun, "dry-run", false, "Preview the result without writing the file")

	return cmd
}

func runRemove(_ *cobra.Command, args []string) error {
	path, tok := args[0], args[1]

	e, err := loadEditor(path)
	if err != nil {
		return err
	}

	result := e.RemoveToken(tok)

	if err := printResult(removeOutput, result, func() {
		if !result.Found() {
			fmt.Printf("%q not found, nothing removed\n", tok)
			return
		}
		fmt.Printf("removed %d token(s), %d merge(s)\n", len(result.RemovedTokens), len(result.RemovedMerges))
		fmt.Printf("  tokens: %v\n", result.RemovedTokens)
	}); err != nil {
		return err
	}

	return saveUnlessDryRun(e, path, removeDryRun)
}
