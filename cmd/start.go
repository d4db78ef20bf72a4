package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"timetable-sync/core/loader"
	"timetable-sync/core/logger"
	"timetable-sync/core/middleware/auth"
	"timetable-sync/core/middleware/rayid"
	"timetable-sync/feature/schedule"
	"timetable-sync/feature/search"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the timetable sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		store, err := buildStore(cmd.Context(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create snapshot store", zap.Error(err))
		}

		client := buildFetchClient(cfg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Register Features
		mgr := loader.NewManager()
		mgr.Register(schedule.NewFeature(client, store, logg))

		searchFeature := search.NewFeature(schedule.NewSource(client), cfg.Source.BaseURL, cfg.Search, logg)
		mgr.Register(searchFeature)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Warm the search index in the background so startup never blocks
		// on the upstream site.
		go func() {
			if err := searchFeature.Service().Warm(context.Background()); err != nil {
				logg.Warn("Search index warm-up failed; search degraded until rebuild", zap.Error(err))
			}
		}()

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
