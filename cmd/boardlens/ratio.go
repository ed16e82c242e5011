package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clawboard/boardlens/internal/ratio"
	"github.com/clawboard/boardlens/internal/report"
)

var ratioCmd = &cobra.Command{
	Use:   "ratio",
	Short: "Rank tasks by talk-to-code ratio",
	Long: `Compute comments-per-PR for every task and rank the corpus by
discourse/delivery balance, unbounded discourse first.

Tasks with comments but no PRs rank above everything else: they are all talk.

Examples:
  boardlens ratio                            # Fetch and score the live corpus
  boardlens ratio -n 50                      # Score the 50 most recent tasks
  boardlens ratio --snapshot data/snapshot_20260101_120000.json`,
	Run: func(cmd *cobra.Command, args []string) {
		tasks, err := loadCorpus(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(tasks) == 0 {
			fmt.Fprintln(os.Stderr, "Error: no tasks found")
			os.Exit(1)
		}

		scores := ratio.ScoreCorpus(tasks)
		report.RenderRatio(os.Stdout, scores)
	},
}

func init() {
	ratioCmd.Flags().IntP("limit", "n", 0, "Number of recent tasks to fetch (default from config)")
	ratioCmd.Flags().String("snapshot", "", "Score a stored snapshot dump instead of the live board")
	rootCmd.AddCommand(ratioCmd)
}
