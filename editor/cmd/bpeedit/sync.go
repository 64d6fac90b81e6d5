package bpeeditcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bpeeditor/bpeedit/editor"
)

var (
	syncCharsOutput string
	syncCharsDryRun bool
	syncCharsMinId  int

	syncShortOutput string
	syncShortDryRun bool
	syncShortMinId  int
	syncShortMinLen int
	syncShortMaxLen int
)

// newSyncCharsCmd creates the sync-chars subcommand.
func newSyncCharsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-chars [tokenizer.json] [reference.json]",
		Short: "Import single-character tokens missing from a reference tokenizer",
		Long: `Import every single-Unicode-scalar token present in the reference
tokenizer but absent from the target, making room first by shrinking the
target's longest, newest tokens (id >= --min-id). The reference file is
read only, never modified.`,
		Example: `  # Bring in any single characters reference.json has that tokenizer.json lacks
  bpeedit edit sync-chars tokenizer.json reference.json`,
		Args: cobra.ExactArgs(2),
		RunE: runSyncChars,
	}

	cmd.Flags().StringVarP(&syncCharsOutput, "output", "o", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&syncCharsDryRun, "dry-run", false, "Preview the result without writing the file")
	cmd.Flags().IntVar(&syncCharsMinId, "min-id", 0, "Only shrink tokens with id >= min-id to make room")

	return cmd
}

func runSyncChars(_ *cobra.Command, args []string) error {
	path, refPath := args[0], args[1]

	e, err := loadEditor(path)
	if err != nil {
		return err
	}
	source, err := loadEditor(refPath)
	if err != nil {
		return fmt.Errorf("failed to load reference tokenizer: %w", err)
	}

	result := e.SyncSingleChars(source, editor.TokenId(syncCharsMinId))

	if err := printResult(syncCharsOutput, result, func() {
		printSyncResult(result)
	}); err != nil {
		return err
	}

	return saveUnlessDryRun(e, path, syncCharsDryRun)
}

// newSyncShortCmd creates the sync-short subcommand.
func newSyncShortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-short [tokenizer.json] [reference.json]",
		Short: "Import short tokens within a length range from a reference tokenizer",
		Long: `Import every token with character length in [--min-len, --max-len]
present in the reference tokenizer but absent from the target. When the
reference already has a merge rule for a missing token and both operands
are (or will become) present in the target, that exact rule is reused
instead of re-synthesizing a chain. Room is made first by shrinking the
target's longest, newest tokens (id >= --min-id).`,
		Example: `  # Import reference tokens 2-4 characters long
  bpeedit edit sync-short tokenizer.json reference.json --min-len 2 --max-len 4`,
		Args: cobra.ExactArgs(2),
		RunE: runSyncShort,
	}

	cmd.Flags().StringVarP(&syncShortOutput, "output", "o", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&syncShortDryRun, "dry-run", false, "Preview the result without writing the file")
	cmd.Flags().IntVar(&syncShortMinId, "min-id", 0, "Only shrink tokens with id >= min-id to make room")
	cmd.Flags().IntVar(&syncShortMinLen, "min-len", 2, "Minimum character length to import")
	cmd.Flags().IntVar(&syncShortMaxLen, "max-len", 4, "Maximum character length to import")

	return cmd
}

func runSyncShort(_ *cobra.Command, args []string) error {
	path, refPath := args[0], args[1]

	e, err := loadEditor(path)
	if err != nil {
		return err
	}
	source, err := loadEditor(refPath)
	if err != nil {
		return fmt.Errorf("failed to load reference tokenizer: %w", err)
	}

	result, err := e.SyncShortTokens(source, syncShortMinLen, syncShortMaxLen, editor.TokenId(syncShortMinId))
	if err != nil {
		return fmt.Errorf("sync-short: %w", err)
	}

	if err := printResult(syncShortOutput, result, func() {
		printSyncResult(result)
	}); err != nil {
		return err
	}

	return saveUnlessDryRun(e, path, syncShortDryRun)
}

func printSyncResult(result editor.SyncResult) {
	fmt.Printf("imported %d token(s)\n", result.CharsAddedCount)
	fmt.Printf("roots removed to make room: %d, total tokens removed: %d, total merges removed: %d\n",
		result.TokensRemovedCount, result.TotalTokensRemoved, result.TotalMergesRemoved)
}
