package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/give-tools/donation-atlas/pkg/server"
	"github.com/give-tools/donation-atlas/pkg/services/config"
	"github.com/give-tools/donation-atlas/pkg/services/stats"
	"github.com/give-tools/donation-atlas/pkg/store/sqlite"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Donation Atlas reporting API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the configuration file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.Database.Path})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store, err := sqlite.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	service := stats.NewService(store, stats.Config{
		NearGoalPercent:     cfg.Reports.NearGoalPercent,
		LargeDonationAmount: cfg.Reports.LargeDonationAmount,
		TopProjectCount:     cfg.Reports.TopProjectCount,
	})

	host := cfg.Server.Host
	port := cfg.Server.Port
	if envHost := os.Getenv("SERVER_HOST"); envHost != "" {
		host = envHost
	}
	if envPort := os.Getenv("SERVER_PORT"); envPort != "" {
		port = envPort
	}

	addr := net.JoinHostPort(host, port)
	logger.Info().Str("db", cfg.Database.Path).Msg("database ready")

	api := server.NewWebAPI(server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Reports: service,
			Logger:  logger,
		},
	})

	return api.Start()
}
