package report

import (
	"github.com/joshsymonds/ledger-lens/internal/model"
)

// WeekdayReport is the "spend by weekday" payload. TotalExpenses only has
// keys for weekdays that matched at least one row; absent weekdays are
// absent, not zero.
type WeekdayReport struct {
	TotalExpenses map[string]float64 `json:"total_expenses"`
	Weekdays      []string           `json:"weekdays"`
}

// ExpensesByWeekday groups amounts by weekday name for the requested
// weekdays. A nil or empty weekdays list defaults to the distinct weekday
// names present in the table, in first-seen order.
func ExpensesByWeekday(table []model.Transaction, weekdays []string) WeekdayReport {
	if len(weekdays) == 0 {
		weekdays = distinctWeekdays(table)
	}

	requested := make(map[string]bool, len(weekdays))
	for _, wd := range weekdays {
		requested[wd] = true
	}

	totals := make(map[string]float64)
	for _, txn := range table {
		name := txn.WeekdayName()
		if !requested[name] {
			continue
		}
		totals[name] += txn.Amount
	}

	return WeekdayReport{
		TotalExpenses: totals,
		Weekdays:      weekdays,
	}
}

func distinctWeekdays(table []model.Transaction) []string {
	seen := make(map[string]bool, 7)
	names := make([]string, 0, 7)
	for _, txn := range table {
		name := txn.WeekdayName()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
