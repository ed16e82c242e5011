package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/clawboard/boardlens/internal/board"
	"github.com/clawboard/boardlens/internal/snapshot"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run a blind collection of raw board data",
	Long: `Collect the current corpus and its per-task comment threads into a dated
snapshot dump, without analyzing anything.

Collection is time-locked: runs are permitted only before the configured seal
date. After it, the data is sealed and this command refuses to run; score the
stored snapshots instead (novelty/ratio --snapshot).`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")

		log := logrus.New()
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		token, err := board.LoadCredentials(cfg.CredentialsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		store, err := snapshot.NewStore(filepath.Join(cfg.DataDir, "catalog.db"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		collector := &snapshot.Collector{
			Source:   board.NewClient(cfg.APIBase, token, cfg.FetchTimeout, cfg.RequestsPerSecond),
			Store:    store,
			SealDate: cfg.SealDate,
			DataDir:  cfg.DataDir,
			Limit:    cfg.FetchLimit,
			Log:      log,
		}

		fmt.Printf("🔒 Blind collector - running on %s\n", time.Now().UTC().Format(time.RFC3339))
		fmt.Printf("   Seal date: %s\n", cfg.SealDate.Format(time.RFC3339))

		meta, err := collector.Run(context.Background())
		if err != nil {
			var sealErr *snapshot.SealError
			if errors.As(err, &sealErr) {
				yellow := color.New(color.FgYellow).SprintFunc()
				fmt.Fprintf(os.Stderr, "🔒 %v\n", sealErr)
				fmt.Fprintf(os.Stderr, "   %s\n", yellow("Run 'boardlens novelty --snapshot <file>' or 'boardlens ratio --snapshot <file>' to analyze."))
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("📦 Snapshot stored: %s\n", meta.Path)
		fmt.Printf("   Tasks: %d\n", meta.TaskCount)
		fmt.Printf("   Total comments: %d\n", meta.CommentCount)
		fmt.Printf("\n⏳ %d days until unsealing\n", collector.DaysUntilSeal())
	},
}

func init() {
	collectCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(collectCmd)
}
