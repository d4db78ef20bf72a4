package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"timetable-sync/feature/schedule"
	"timetable-sync/feature/schedule/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncNoCache bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync [kind] [id]",
	Short: "Fetch a timetable and report what changed",
	Long: `Fetches the live timetable for one entity, reconciles it against the
local snapshot, and prints the change report. Kind is "group" or "professor".`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runSync(cmd.Context(), args[0], args[1])
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncNoCache, "no-cache", false, "fetch without reading or writing the snapshot store")
	RootCmd.AddCommand(syncCmd)
}

func runSync(ctx context.Context, kindArg, idArg string) {
	kind := models.Kind(kindArg)
	if !kind.IsValid() {
		fmt.Printf("Unknown kind %q: expected group or professor\n", kindArg)
		os.Exit(1)
	}

	id, err := strconv.Atoi(idArg)
	if err != nil || id <= 0 {
		fmt.Printf("Invalid id %q: expected a positive integer\n", idArg)
		os.Exit(1)
	}

	cfg, logg, err := bootstrap()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	store, err := buildStore(ctx, cfg, logg)
	if err != nil {
		logg.Fatal("Failed to create snapshot store", zap.Error(err))
	}

	svc := schedule.NewService(buildFetchClient(cfg), store, logg)

	result, err := svc.GetSchedule(ctx, kind, id, !syncNoCache)
	if err != nil {
		logg.Fatal("Sync failed", zap.Error(err))
	}

	// Pretty Console Output
	fmt.Println("\n--- Timetable Sync ---")
	fmt.Printf("Entity:       %s %d\n", kind, id)
	fmt.Printf("Name:         %s\n", result.Name)
	fmt.Printf("Term:         %s\n", result.Term)
	fmt.Printf("Weeks:        %d\n", len(result.Weeks))
	fmt.Println("----------------------")

	originColor := "\033[32m" // Green
	if result.Origin == models.OriginChanged {
		originColor = "\033[33m" // Yellow
	}
	resetColor := "\033[0m"
	fmt.Printf("Origin:       %s%s%s\n", originColor, result.Origin, resetColor)

	if len(result.Changes) > 0 {
		fmt.Println("\nChanges since last sync:")
		for _, change := range result.Changes {
			location := fmt.Sprintf("%s %s", change.Day, change.Time)
			if change.Week > 0 {
				location = fmt.Sprintf("week %d, %s", change.Week, location)
			}
			fmt.Printf("- [%s] %s: %q -> %q\n", location, change.Field, change.Old, change.New)
		}
	}
	fmt.Println("----------------------")
}
