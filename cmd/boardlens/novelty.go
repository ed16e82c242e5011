package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clawboard/boardlens/internal/keywords"
	"github.com/clawboard/boardlens/internal/novelty"
	"github.com/clawboard/boardlens/internal/report"
)

var noveltyCmd = &cobra.Command{
	Use:   "novelty",
	Short: "Rank tasks by semantic novelty",
	Long: `Score every task against the cumulative keyword vocabulary of strictly
earlier tasks and rank the corpus most-derivative-first.

A task's novelty is the fraction of its content keywords never seen in any
earlier task: 1.0 is completely new territory, 0.0 is pure repetition.

Examples:
  boardlens novelty                          # Fetch and score the live corpus
  boardlens novelty -n 50                    # Score the 50 most recent tasks
  boardlens novelty --snapshot data/snapshot_20260101_120000.json`,
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

		fmt.Printf("Analyzing semantic novelty for %d tasks...\n\n", len(tasks))

		extractor := keywords.NewExtractor(cfg.KeywordMinLength, cfg.ExtraStopWords)
		scores := novelty.NewScorer(extractor).ScoreCorpus(tasks)
		report.RenderNovelty(os.Stdout, scores)
	},
}

func init() {
	noveltyCmd.Flags().IntP("limit", "n", 0, "Number of recent tasks to fetch (default from config)")
	noveltyCmd.Flags().String("snapshot", "", "Score a stored snapshot dump instead of the live board")
	rootCmd.AddCommand(noveltyCmd)
}
