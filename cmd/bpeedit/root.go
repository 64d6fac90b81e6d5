package main

import (
	"fmt"

	"github.com/spf13/cobra"

	bpeeditcmd "github.com/bpeeditor/bpeedit/editor/cmd/bpeedit"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bpeedit",
	Short: "Edit a BPE tokenizer's vocabulary and merge rules",
	Long: `bpeedit edits HuggingFace-format BPE tokenizer.json files: the
vocabulary mapping token strings to ids, and the ordered merge-rule list
that builds longer tokens out of shorter ones.

It keeps the vocab and merges consistent across edits: every merge's
output is in the vocab, every merge's inputs are in the vocab, and no
token id freed during an edit is handed out again by that same edit.

Available operations (subcommands of "bpeedit edit"):
  add         Add a token, synthesizing the merge chain that builds it
  remove      Remove a token and cascade-remove everything built on it
  shrink      Remove a count of the longest, newest tokens and their cascades
  sync-chars  Import single-character tokens missing from a reference tokenizer
  sync-short  Import short tokens within a length range from a reference tokenizer
  keep-size   Add tokens, then shrink back to the original vocab size
  validate    Check that every merge's output is in the vocab
  stats       Print vocab size, merge count, and token-length distribution`,
	Example: `  # Add a token, synthesizing its merge chain
  bpeedit edit add tokenizer.json "hello"

  # Remove a token and everything built on it
  bpeedit edit remove tokenizer.json "hello"

  # Remove the 100 longest, newest tokens
  bpeedit edit shrink tokenizer.json --count 100

  # Import single-char tokens missing from a reference tokenizer
  bpeedit edit sync-chars tokenizer.json reference.json

  # Print vocab stats as JSON
  bpeedit edit stats tokenizer.json --output json`,
	SilenceUsage: true,
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bpeedit version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit:     %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:      %s\n", buildDate)
		}
		if goVersion != "unknown" {
			fmt.Printf("  go version: %s\n", goVersion)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bpeeditcmd.Command())
}
