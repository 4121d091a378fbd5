package main

import (
	"fmt"
	"time"

	"github.com/joshsymonds/ledger-lens/internal/config"
	"github.com/joshsymonds/ledger-lens/internal/dashboard"
	"github.com/joshsymonds/ledger-lens/internal/excel"
	"github.com/joshsymonds/ledger-lens/internal/model"
	"github.com/joshsymonds/ledger-lens/internal/quotes"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard [timestamp]",
		Short: "Composite spending dashboard for the anchor month",
		Long: `Build the dashboard for the month of the given anchor timestamp
("YYYY-MM-DD HH:MM:SS", default: now): greeting, per-card spend and
cashback, top 5 transactions, and live currency and stock quotes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.RequireDashboard(); err != nil {
				return err
			}

			anchor := time.Now().Format(model.AnchorTimeLayout)
			if len(args) == 1 {
				anchor = args[0]
			}

			builder := dashboard.NewBuilder(
				dashboard.Config{
					ExcelPath:    cfg.ExcelPath,
					SettingsPath: cfg.SettingsPath,
				},
				excel.NewLoader(),
				quotes.NewClient(cfg.QuoteBaseURL, cfg.APIKey, cfg.QuoteTimeout),
			)

			resp, err := builder.Build(cmd.Context(), anchor)
			if err != nil {
				return err
			}

			out, err := resp.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}
}
