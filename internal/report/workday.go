package report

import (
	"time"

	"github.com/joshsymonds/ledger-lens/internal/model"
)

// WorkdayReport is the "workday vs weekend spend" payload.
type WorkdayReport struct {
	Category       string  `json:"category"`
	Date           string  `json:"date"`
	WorkdayExpense float64 `json:"workday_expense"`
	WeekendExpense float64 `json:"weekend_expense"`
}

// ExpensesByWorkday splits category spend over the 90 days preceding date
// into Monday–Friday and Saturday–Sunday sums.
//
// Unlike ExpensesByCategory, both window bounds compare calendar dates.
func ExpensesByWorkday(table []model.Transaction, category string, date time.Time) WorkdayReport {
	upper := model.DateOnly(date)
	lower := upper.AddDate(0, 0, -windowDays)

	var workday, weekend float64
	for _, txn := range table {
		if txn.Category != category {
			continue
		}
		d := model.DateOnly(txn.Date)
		if d.Before(lower) || d.After(upper) {
			continue
		}
		if txn.IsWorkday() {
			workday += txn.Amount
		} else {
			weekend += txn.Amount
		}
	}

	return WorkdayReport{
		Category:       category,
		WorkdayExpense: workday,
		WeekendExpense: weekend,
		Date:           upper.Format(model.ReportDateLayout),
	}
}
