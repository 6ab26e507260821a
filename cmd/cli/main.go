package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/give-tools/donation-atlas/pkg/services/config"
	"github.com/give-tools/donation-atlas/pkg/services/stats"
	"github.com/give-tools/donation-atlas/pkg/store/sqlite"
	"github.com/give-tools/donation-atlas/pkg/terminal"
)

var cfgPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "donation-atlas",
		Short: "Donation platform reports in the terminal",
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the configuration file (defaults apply when omitted)")

	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newMonthlyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newServiceFromConfig() (*stats.Service, func(), error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.Database.Path})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	store, err := sqlite.NewStore(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create store: %w", err)
	}

	service := stats.NewService(store, stats.Config{
		NearGoalPercent:     cfg.Reports.NearGoalPercent,
		LargeDonationAmount: cfg.Reports.LargeDonationAmount,
		TopProjectCount:     cfg.Reports.TopProjectCount,
	})
	return service, func() { db.Close() }, nil
}

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Render the global dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, cleanup, err := newServiceFromConfig()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			dashboard, err := service.GlobalDashboard(ctx)
			if err != nil {
				return fmt.Errorf("failed to compute dashboard: %w", err)
			}

			return terminal.NewReporter(os.Stdout).Handle("Tableau de bord", dashboard)
		},
	}
}

func newMonthlyCmd() *cobra.Command {
	var year, month string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Render the monthly report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := time.Now()
			if year != "" || month != "" {
				y, err := strconv.Atoi(year)
				if err != nil {
					return fmt.Errorf("invalid year %q", year)
				}
				m, err := strconv.Atoi(month)
				if err != nil || m < 1 || m > 12 {
					return fmt.Errorf("invalid month %q", month)
				}
				ref = time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
			}

			service, cleanup, err := newServiceFromConfig()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			report, err := service.MonthlyReport(ctx, ref)
			if err != nil {
				return fmt.Errorf("failed to compute monthly report: %w", err)
			}

			title := fmt.Sprintf("Rapport mensuel %s", ref.Format("2006-01"))
			return terminal.NewReporter(os.Stdout).Handle(title, report)
		},
	}

	cmd.Flags().StringVar(&year, "year", "", "Report year (defaults to current)")
	cmd.Flags().StringVar(&month, "month", "", "Report month 1-12 (defaults to current)")
	return cmd
}
