// Package bpeeditcmd provides the bpeedit command tree for the tokenizer
// editor CLI.
package bpeeditcmd

import (
	"github.com/spf13/cobra"
)

// Command returns the bpeedit command tree: add, remove, shrink,
// sync-chars, sync-short, keep-size, validate, and stats subcommands, each
// operating on a HuggingFace-format tokenizer.json file.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a BPE tokenizer.json file's vocab and merges",
		Long: `Perform consistency-preserving edits on a HuggingFace-format BPE
tokenizer.json file: add a token (synthesizing its merge chain), remove a
token (cascading to everything built on it), shrink the vocab to a target
size, sync tokens in from a reference tokenizer, or add tokens while
holding the vocab size fixed.

Available commands:
  add         Add a token, synthesizing its merge chain
  remove      Remove a token and cascade-remove everything built on it
  shrink      Remove a count of the longest, newest tokens and their cascades
  sync-chars  Import single-character tokens missing from a reference tokenizer
  sync-short  Import short tokens within a length range from a reference tokenizer
  keep-size   Add tokens, then shrink back to the original vocab size
  validate    Check that every merge's output is in the vocab
  stats       Print vocab size, merge count, and token-length distribution`,
		Example: `  # Add a token
  bpeedit edit add tokenizer.json "hello"

  # Remove a token and its cascade
  bpeedit edit remove tokenizer.json "hello"

  # Remove the 100 longest, newest tokens
  bpeedit edit shrink tokenizer.json --count 100`,
	}

	cmd.AddCommand(
		newAddCmd(),
		newRemoveCmd(),
		newShrinkCmd(),
		newSyncCharsCmd(),
		newSyncShortCmd(),
		newKeepSizeCmd(),
		newValidateCmd(),
		newStatsCmd(),
	)

	return cmd
}
