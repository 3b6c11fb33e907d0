package main

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/seg-tools/sso-atlas/pkg/server"
	"github.com/seg-tools/sso-atlas/pkg/services/config"
	"github.com/seg-tools/sso-atlas/pkg/services/report"
	"github.com/seg-tools/sso-atlas/pkg/store/sqlite"
	sqliterecords "github.com/seg-tools/sso-atlas/pkg/store/sqlite/records"
	sqlitesummary "github.com/seg-tools/sso-atlas/pkg/store/sqlite/summary"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	dbPath  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the indicator report web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML goals file (defaults apply when omitted)")
	rootCmd.Flags().StringVar(&dbPath, "db", "sso-atlas.db",
		"Path to the archive database")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	manager, err := report.NewManager(cfg)
	if err != nil {
		return err
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}

	recordStore, err := sqliterecords.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create record store: %w", err)
	}
	summaryStore, err := sqlitesummary.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create summary store: %w", err)
	}

	reportService, err := report.NewService(manager, recordStore, summaryStore)
	if err != nil {
		return fmt.Errorf("failed to create report service: %w", err)
	}

	logger.Info().Str("db", dbPath).Msg("archive opened")

	mux := server.ConfigureRouter(server.Config{
		Dependencies: server.Dependencies{
			Reports: reportService,
			Logger:  logger,
		},
	})

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	addr := net.JoinHostPort(host, port)
	logger.Info().Msgf("starting server on %s", addr)

	return http.ListenAndServe(addr, mux)
}
