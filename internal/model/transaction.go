// Package model defines the transaction record shared by all reports.
package model

import "time"

// Date layouts used across the application.
const (
	// OperationDateLayout is the timestamp format of the bank export
	// ("Дата операции" column).
	OperationDateLayout = "02.01.2006 15:04:05"
	// ReportDateLayout is the anchor date format in report payloads.
	ReportDateLayout = "2006-01-02"
	// DisplayDateLayout is the date format of dashboard top transactions.
	DisplayDateLayout = "02.01.2006"
	// AnchorTimeLayout is the dashboard anchor timestamp input format.
	AnchorTimeLayout = "2006-01-02 15:04:05"
)

// Transaction represents a single row of the bank spreadsheet export.
// Amount sign encodes direction: negative is an expense, positive income.
type Transaction struct {
	Date        time.Time
	Category    string
	Description string // May be empty; the export leaves it blank for some rows
	Card        string // May contain masking characters, e.g. "*7197"
	Status      string
	Amount      float64
}

// WeekdayName returns the English weekday name of the operation date.
// time.Weekday names are locale-independent, which keeps report keys stable.
func (t Transaction) WeekdayName() string {
	return t.Date.Weekday().String()
}

// IsWorkday reports whether the operation date falls on Monday through Friday.
func (t Transaction) IsWorkday() bool {
	wd := t.Date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// DateOnly truncates a timestamp to its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
