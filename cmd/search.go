package cmd

import (
	"context"
	"fmt"
	"os"

	"timetable-sync/core/config"
	"timetable-sync/feature/schedule"
	"timetable-sync/feature/search"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Resolve a free-text query to a group or professor",
	Long: `Matches the query against the entity index by fuzzy name similarity,
transliterating between Cyrillic and Latin, and prints the best match.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(cmd.Context(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)
}

func buildSearchService(cfg *config.Config, logg *zap.Logger) *search.Service {
	source := schedule.NewSource(buildFetchClient(cfg))
	builder := search.NewBuilder(source, cfg.Source.BaseURL, cfg.Search, logg)
	cache := search.NewCache(cfg.Search.CacheFile, logg)
	return search.NewService(builder, cache, logg)
}

func runSearch(ctx context.Context, query string) {
	cfg, logg, err := bootstrap()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	svc := buildSearchService(cfg, logg)

	if err := svc.Warm(ctx); err != nil {
		logg.Fatal("Failed to build search index", zap.Error(err))
	}

	match, ok := svc.Search(query)
	if !ok {
		fmt.Printf("No entity matches %q\n", query)
		os.Exit(1)
	}

	fmt.Println("\n--- Search Result ---")
	fmt.Printf("Query:        %s\n", query)
	fmt.Printf("Name:         %s\n", match.Name)
	fmt.Printf("Kind:         %s\n", match.Kind)
	fmt.Printf("ID:           %d\n", match.ID)
	fmt.Printf("URL:          %s\n", match.URL)
	fmt.Println("---------------------")
}
