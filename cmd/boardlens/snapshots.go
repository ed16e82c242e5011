package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/clawboard/boardlens/internal/snapshot"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List stored snapshot dumps",
	Long:  `List the snapshot catalog: every blind collection run, newest first.`,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := snapshot.NewStore(filepath.Join(cfg.DataDir, "catalog.db"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		metas, err := store.List(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(metas) == 0 {
			fmt.Println("No snapshots collected yet. Run 'boardlens collect' first.")
			return
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Printf("%s\n\n", cyan("=== Snapshot Catalog ==="))
		fmt.Printf("%-20s %-6s %-9s %s\n", "Collected", "Tasks", "Comments", "Path")
		for _, m := range metas {
			fmt.Printf("%-20s %-6d %-9d %s\n",
				m.CollectedAt.Format("2006-01-02 15:04:05"),
				m.TaskCount,
				m.CommentCount,
				m.Path)
		}
	},
}

func init() {
	rootCmd.AddCommand(snapshotsCmd)
}
