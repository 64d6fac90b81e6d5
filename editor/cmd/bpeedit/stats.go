package bpeeditcmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var statsOutput string

// newStatsCmd creates the stats subcommand.
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [tokenizer.json]",
		Short: "Print vocab size, merge count, and token-length distribution",
		Long: `Print summary statistics for a tokenizer: vocab size, merge count,
single-character and special-token counts, the id range in use, and a
distribution of tokens by character length.`,
		Example: `  # Human-readable summary
  bpeedit edit stats tokenizer.json

  # Machine-readable summary
  bpeedit edit stats tokenizer.json --output json`,
		Args: cobra.ExactArgs(1),
		RunE: runStats,
	}

	cmd.Flags().StringVarP(&statsOutput, "output", "o", "text", "Output format: text, json")

	return cmd
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	e, err := loadEditor(path)
	if err != nil {
		return err
	}

	stats := e.GetStats()

	return printResult(statsOutput, stats, func() {
		fmt.Println("Tokenizer Statistics")
		fmt.Println("====================")
		fmt.Printf("  Vocab size:     %s tokens\n", humanize.Comma(int64(stats.VocabSize)))
		fmt.Printf("  Merges:         %s\n", humanize.Comma(int64(stats.MergesCount)))
		fmt.Printf("  Single-char:    %s\n", humanize.Comma(int64(stats.SingleCharCount)))
		fmt.Printf("  Special:        %s\n", humanize.Comma(int64(stats.SpecialCount)))
		fmt.Printf("  Id range:       [%d, %d]\n", stats.MinId, stats.MaxId)
		fmt.Println()
		fmt.Println("  Length distribution:")
		for _, lc := range stats.LengthDist {
			fmt.Printf("    %3d chars: %s\n", lc.CharLen, humanize.Comma(int64(lc.Count)))
		}
	})
}
