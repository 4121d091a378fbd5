// Package excel loads the bank spreadsheet export into transaction rows.
package excel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joshsymonds/ledger-lens/internal/common"
	"github.com/joshsymonds/ledger-lens/internal/model"
	"github.com/xuri/excelize/v2"
)

// Column headers of the bank export.
const (
	ColumnDate        = "Дата операции"
	ColumnAmount      = "Сумма операции"
	ColumnCategory    = "Категория"
	ColumnDescription = "Описание"
	ColumnCard        = "Номер карты"
	ColumnStatus      = "Статус"
)

// Loader reads xlsx exports. The zero value is ready to use.
type Loader struct{}

// NewLoader creates a new spreadsheet loader.
func NewLoader() *Loader {
	return &Loader{}
}

// columns holds the resolved index of each export column. Description and
// card number are optional; everything else is required.
type columns struct {
	date        int
	amount      int
	category    int
	status      int
	description int
	card        int
}

// Load reads every transaction row from the first sheet of the workbook.
// The returned error wraps common.ErrTableLoad when the file is unreadable
// and common.ErrMissingColumn when a required header is absent; callers
// must branch on the error rather than assuming an empty table.
func (l *Loader) Load(path string) ([]model.Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTableLoad, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", common.ErrTableLoad)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTableLoad, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", common.ErrTableLoad, sheets[0])
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	table := make([]model.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		txn, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", common.ErrTableLoad, i+2, err)
		}
		table = append(table, txn)
	}

	common.LogInfo("transaction table loaded", common.Fields{"path": path, "rows": len(table)})

	return table, nil
}

// resolveColumns maps header names to indices once, failing fast when a
// required column is missing from the export.
func resolveColumns(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	cols := columns{description: -1, card: -1}

	required := []struct {
		dst  *int
		name string
	}{
		{&cols.date, ColumnDate},
		{&cols.amount, ColumnAmount},
		{&cols.category, ColumnCategory},
		{&cols.status, ColumnStatus},
	}
	for _, r := range required {
		i, ok := index[r.name]
		if !ok {
			return columns{}, fmt.Errorf("%w: %q", common.ErrMissingColumn, r.name)
		}
		*r.dst = i
	}

	if i, ok := index[ColumnDescription]; ok {
		cols.description = i
	}
	if i, ok := index[ColumnCard]; ok {
		cols.card = i
	}

	return cols, nil
}

func parseRow(row []string, cols columns) (model.Transaction, error) {
	date, err := time.Parse(model.OperationDateLayout, cell(row, cols.date))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad operation date: %v", err)
	}

	return model.Transaction{
		Date:        date,
		Amount:      parseAmount(cell(row, cols.amount)),
		Category:    cell(row, cols.category),
		Status:      cell(row, cols.status),
		Description: cell(row, cols.description),
		Card:        cell(row, cols.card),
	}, nil
}

// parseAmount coerces an amount cell to a float. The export uses both dot
// and comma decimals; anything non-numeric degrades to zero.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// cell returns the trimmed value at index i, tolerating short rows.
// excelize drops trailing empty cells from GetRows results.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
