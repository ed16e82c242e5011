package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clawboard/boardlens/internal/board"
	"github.com/clawboard/boardlens/internal/config"
	"github.com/clawboard/boardlens/internal/snapshot"
	"github.com/clawboard/boardlens/internal/types"
)

// cfg is loaded once before any command runs. Commands read it instead of
// ambient constants so every entry point is configurable.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "boardlens",
	Short: "Behavioral metrics for a ClawBoard task corpus",
	Long: `boardlens derives behavioral metrics from tasks on a shared board:

- semantic novelty: how conceptually distinct each task is from everything
  that preceded it, by keyword-set overlap
- talk-to-code ratio: comments per pull request, discourse vs delivery

It also runs a time-locked blind collector that stores raw corpus snapshots
until a fixed seal date.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadCorpus returns the task corpus for an analysis command: from a stored
// snapshot dump when --snapshot is set, otherwise live from the board API.
// Any failure is fatal for the run; no partial report is ever produced.
func loadCorpus(cmd *cobra.Command) ([]types.Task, error) {
	snapshotPath, _ := cmd.Flags().GetString("snapshot")
	if snapshotPath != "" {
		snap, err := snapshot.Load(snapshotPath)
		if err != nil {
			return nil, err
		}
		return snap.Tasks, nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = cfg.FetchLimit
	}

	token, err := board.LoadCredentials(cfg.CredentialsPath)
	if err != nil {
		return nil, err
	}

	client := board.NewClient(cfg.APIBase, token, cfg.FetchTimeout, cfg.RequestsPerSecond)
	fmt.Println("🔍 Fetching board data...")
	return client.Tasks(context.Background(), limit)
}
