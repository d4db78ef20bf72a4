package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the search index from the timetable site",
	Long: `Probes the configured group and professor id ranges, rebuilds the
entity index, and persists it for later searches.`,
	Run: func(cmd *cobra.Command, args []string) {
		runIndexRebuild(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(indexCmd)
}

func runIndexRebuild(ctx context.Context) {
	cfg, logg, err := bootstrap()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	svc := buildSearchService(cfg, logg)

	logg.Info("Rebuilding search index...")
	if err := svc.Rebuild(ctx); err != nil {
		logg.Fatal("Index rebuild failed", zap.Error(err))
	}

	entities := svc.Entities()
	fmt.Println("\n--- Search Index ---")
	fmt.Printf("Entities:     %d\n", len(entities))
	fmt.Printf("Cache file:   %s\n", cfg.Search.CacheFile)
	fmt.Println("--------------------")
	for _, e := range entities {
		fmt.Printf("- %-10s %6d  %s\n", e.Kind, e.ID, e.Name)
	}
}
