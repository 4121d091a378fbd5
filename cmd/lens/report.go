package main

import (
	"github.com/joshsymonds/ledger-lens/internal/report"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spend reports over the transaction export",
		Long:  `Compute category, weekday, and workday/weekend spend reports from the configured spreadsheet export.`,
	}

	cmd.AddCommand(categoryReportCmd())
	cmd.AddCommand(weekdaysReportCmd())
	cmd.AddCommand(workdaysReportCmd())

	return cmd
}

func categoryReportCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "category <name>",
		Short: "Total spend in a category over the trailing 90 days",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			date, err := parseAnchorDate(dateFlag)
			if err != nil {
				return err
			}

			table, err := loadTable()
			if err != nil {
				return err
			}

			return printJSON(report.ExpensesByCategory(table, args[0], date))
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "anchor date (YYYY-MM-DD, default: today)")

	return cmd
}

func weekdaysReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekdays [weekday...]",
		Short: "Spend grouped by weekday name",
		Long: `Sum spend per weekday. With no arguments, every weekday present in the
export is reported, in the order it first appears.`,
		RunE: func(_ *cobra.Command, args []string) error {
			table, err := loadTable()
			if err != nil {
				return err
			}

			return printJSON(report.ExpensesByWeekday(table, args))
		},
	}
}

func workdaysReportCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "workdays <category>",
		Short: "Workday vs weekend spend in a category over the trailing 90 days",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			date, err := parseAnchorDate(dateFlag)
			if err != nil {
				return err
			}

			table, err := loadTable()
			if err != nil {
				return err
			}

			return printJSON(report.ExpensesByWorkday(table, args[0], date))
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "anchor date (YYYY-MM-DD, default: today)")

	return cmd
}
