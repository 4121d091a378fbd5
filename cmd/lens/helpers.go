package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joshsymonds/ledger-lens/internal/config"
	"github.com/joshsymonds/ledger-lens/internal/excel"
	"github.com/joshsymonds/ledger-lens/internal/model"
)

// loadTable loads the transaction table from the configured export.
func loadTable() ([]model.Transaction, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	table, err := excel.NewLoader().Load(cfg.ExcelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.ExcelPath, err)
	}

	return table, nil
}

// parseAnchorDate parses a --date flag value, defaulting to now.
func parseAnchorDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	date, err := time.Parse(model.ReportDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return date, nil
}

// printJSON writes v to stdout as indented JSON with Cyrillic intact.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
