package bpeeditcmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addOutput string
	addDryRun bool
)

// newAddCmd creates the add subcommand.
func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [tokenizer.json] [token]",
		Short: "Add a token, synthesizing its merge chain",
		Long: `Add a token to the vocab.

AddToken tries four strategies in order: if the token is already present
no change is made; if it is a single Unicode scalar it is inserted with a
fresh id and no merge; otherwise the longest already-present prefix/suffix
split is used if one exists, and failing that every intermediate prefix is
synthesized left to right (char_chain), inserting any missing single
characters along the way.`,
		Example: `  # Add a token
  bpeedit edit add tokenizer.json "hello"

  # Preview the merge chain without writing the file
  bpeedit edit add tokenizer.json "hello" --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: runAdd,
	}

	cmd.Flags().StringVarP(&addOutput, "output", "o", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Preview the result without writing the file")

	return cmd
}

func runAdd(_ *cobra.Command, args []string) error {
	path, tok := args[0], args[1]

	e, err := loadEditor(path)
	if err != nil {
		return err
	}

	result := e.AddToken(tok)

	if err := printResult(addOutput, result, func() {
		if !result.Added {
			fmt.Printf("%q already present (id %d)\n", result.Token, result.Id)
			return
		}
		fmt.Printf("added %q via %s (id %d)\n", result.Token, result.Method, result.Id)
		if len(result.AddedTokens) > 1 {
			fmt.Printf("  new tokens: %v\n", result.AddedTokens)
		}
		for _, m := range result.AddedMerges {
			fmt.Printf("  merge: %s + %s -> %s\n", m.Left, m.Right, m.Output())
		}
	}); err != nil {
		return err
	}

	return saveUnlessDryRun(e, path, addDryRun)
}
