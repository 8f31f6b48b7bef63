// ABOUTME: Root Cobra command for the workouts CLI.
// ABOUTME: Loads config and manages the database handle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/workouts/internal/config"
	"github.com/harperreed/workouts/internal/storage"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	dbPathFlag   string
	logLevelFlag string

	logger   *log.Logger
	provider *storage.Provider
	repo     *storage.DB
)

var rootCmd = &cobra.Command{
	Use:     "workouts",
	Short:   "Personal strength training log",
	Version: version,
	Long: `Workouts is a CLI tool for logging strength training sessions.

WHAT IT TRACKS:

  Workouts    a titled session on a given date
  Exercises   sets, reps and optional weight, linked to a workout
  Catalog     the predefined exercises you pick from (Squat, Bench Press, ...)
  Messages    free-text notes

QUICK START:

  $ workouts catalog add Squat                          # Add to the catalog
  $ workouts workout add "Leg Day" --date 2024-01-01T08:00
  $ workouts exercise add <workout-uuid> 1 --sets 3 --reps 10
  $ workouts workout show <workout-uuid>

MCP INTEGRATION:

  Run 'workouts mcp' to start the Model Context Protocol server for use with
  MCP-compatible assistants:

  {
    "mcpServers": {
      "workouts": { "command": "workouts", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored in SQLite at ~/.workout_track/database.db.
  Override with --db, the data_dir config key or WORKOUTS_DATA_DIR.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if logLevelFlag != "" {
			cfg.LogLevel = logLevelFlag
		}

		level, err := cfg.GetLogLevel()
		if err != nil {
			return err
		}
		logger = log.New(os.Stderr)
		logger.SetLevel(level)

		if err := closeProvider(); err != nil {
			return err
		}

		if dbPathFlag != "" {
			path, err := config.ExpandPath(dbPathFlag)
			if err != nil {
				return err
			}
			provider = storage.NewProvider(path, storage.WithLogger(logger))
		} else {
			provider, err = cfg.OpenProvider(logger)
			if err != nil {
				return fmt.Errorf("failed to resolve database path: %w", err)
			}
		}

		repo, err = provider.Get()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		logger.Debug("database ready", "path", repo.Path())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeProvider()
	},
}

// Execute runs the root command. The database handle is released even when
// a command fails, since cobra skips post-run hooks after an error.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeProvider(); err == nil {
		err = cerr
	}
	return err
}

func closeProvider() error {
	if provider == nil {
		return nil
	}
	err := provider.Close()
	provider = nil
	repo = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "database file (default ~/.workout_track/database.db)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")
}
