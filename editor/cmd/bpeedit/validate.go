package bpeeditcmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	validateOutput string
	validateFix    bool
)

// newValidateCmd creates the validate subcommand.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [tokenizer.json]",
		Short: "Check that every merge's output is in the vocab",
		Long: `Report any merge rule whose concatenated output is absent from the
vocab. With --fix, those merges are removed and the file is rewritten.`,
		Example: `  # Check for invalid merges
  bpeedit edit validate tokenizer.json

  # Remove invalid merges and save
  bpeedit edit validate tokenizer.json --fix`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().StringVarP(&validateOutput, "output", "o", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&validateFix, "fix", false, "Remove invalid merges and save the file")

	return cmd
}

func runValidate(_ *cobra.Command, args []string) error {
	path := args[0]

	e, err := loadEditor(path)
	if err != nil {
		return err
	}

	result := e.ValidateMerges()

	if err := printResult(validateOutput, result, func() {
		fmt.Printf("valid merges: %d, invalid merges: %d\n", result.ValidCount, result.InvalidCount)
		for _, inv := range result.Invalid {
			fmt.Printf("  [%d] %s + %s: output not in vocab\n", inv.Index, inv.Left, inv.Right)
		}
	}); err != nil {
		return err
	}

	if !validateFix || result.InvalidCount == 0 {
		return nil
	}

	removed := e.RemoveInvalidMerges()
	fmt.Printf("removed %d invalid merge(s)\n", removed)

	return e.Save(path)
}
