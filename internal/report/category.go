// Package report implements the spend reports computed over a loaded
// transaction table. Every function is a single pass over the table and
// never mutates it.
package report

import (
	"time"

	"github.com/joshsymonds/ledger-lens/internal/model"
)

// windowDays is the trailing period reports look back over.
const windowDays = 90

// CategoryReport is the "spend by category" payload.
type CategoryReport struct {
	Category     string  `json:"category"`
	Date         string  `json:"date"`
	TotalExpense float64 `json:"total_expense"`
}

// ExpensesByCategory sums amounts of rows in the given category over the 90
// days preceding date.
//
// The lower bound compares full timestamps while the upper bound compares
// calendar dates only. The asymmetry is intentional and differs from
// ExpensesByWorkday; tests pin both behaviors.
func ExpensesByCategory(table []model.Transaction, category string, date time.Time) CategoryReport {
	lower := date.AddDate(0, 0, -windowDays)
	upper := model.DateOnly(date)

	var total float64
	for _, txn := range table {
		if txn.Category != category {
			continue
		}
		if txn.Date.Before(lower) {
			continue
		}
		if model.DateOnly(txn.Date).After(upper) {
			continue
		}
		total += txn.Amount
	}

	return CategoryReport{
		Category:     category,
		TotalExpense: total,
		Date:         date.Format(model.ReportDateLayout),
	}
}
