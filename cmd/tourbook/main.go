package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tourbook/internal/catalog"
	"tourbook/internal/config"
	"tourbook/internal/database"
	"tourbook/internal/export"
	"tourbook/internal/logging"
	"tourbook/internal/menu"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI flags
var (
	dbPath    string
	logFile   string
	verbosity int
)

func main() {
	// Optional .env for TOURBOOK_DB / TOURBOOK_LOG_FILE
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "tourbook",
		Short: "Tourbook - band and tour date record keeper",
		Long:  `Tourbook is a menu-driven record keeper for music bands and their tour dates, backed by a local SQLite file.`,
		RunE:  run,
	}

	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "./tourbook.db", "SQLite database path (or set TOURBOOK_DB env var)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (defaults to a file next to the database, or TOURBOOK_LOG_FILE)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")

	exportDir := "./export"
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export bands and tour dates to CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()
			return export.Run(catalog.NewBands(db), catalog.NewTours(db), exportDir)
		},
	}
	exportCmd.Flags().StringVar(&exportDir, "dir", exportDir, "Directory to write CSV files into")
	rootCmd.AddCommand(exportCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "vacuum",
		Short: "Optimize and compact the database file",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.Optimize(); err != nil {
				return err
			}
			if err := db.Vacuum(); err != nil {
				return err
			}
			log.Info().Str("path", db.Path()).Msg("Database vacuumed")
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tourbook %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDatabase resolves flag/env configuration, sets up logging, opens the
// store and runs migrations.
func openDatabase() (*database.DB, error) {
	if dbPath == "./tourbook.db" {
		if envDB := os.Getenv("TOURBOOK_DB"); envDB != "" {
			dbPath = envDB
		}
	}
	if logFile == "" {
		if envLog := os.Getenv("TOURBOOK_LOG_FILE"); envLog != "" {
			logFile = envLog
		} else {
			logFile = logging.FilePathForDB(dbPath)
		}
	}

	// First pass without settings so open/migrate failures are visible
	logging.Apply(verbosity, nil, logFile)

	db, err := database.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Re-apply with rotation settings from the store
	logging.Apply(verbosity, config.NewLoader(db), logFile)

	return db, nil
}

func run(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info().
		Str("version", version).
		Str("database", db.Path()).
		Msg("Starting tourbook")

	if empty, err := db.IsEmpty(); err == nil && empty {
		log.Info().Msg("No bands recorded yet")
	}

	bands := catalog.NewBands(db)
	tours := catalog.NewTours(db)

	menu.New(bands, tours, os.Stdin).Run()

	log.Info().Msg("Tourbook stopped")
	return nil
}
