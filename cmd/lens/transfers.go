package main

import (
	"fmt"

	"github.com/joshsymonds/ledger-lens/internal/cli"
	"github.com/joshsymonds/ledger-lens/internal/config"
	"github.com/joshsymonds/ledger-lens/internal/excel"
	"github.com/joshsymonds/ledger-lens/internal/transfer"
	"github.com/spf13/cobra"
)

func transfersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfers",
		Short: "List transfers to private persons",
		Long: `Scan the export for transfers whose description names a person, like
"Константин Л.". Prints a JSON array, or {"error": ...} when the export
cannot be read.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			result := transfer.NewExtractor(excel.NewLoader()).PersonalTransfers(cfg.ExcelPath)
			if result.Failed() {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.RenderWarning("export could not be read; emitting error object"))
			}

			return printJSON(result)
		},
	}
}
