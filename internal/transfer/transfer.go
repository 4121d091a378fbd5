// Package transfer detects transfers to private persons in the export.
package transfer

import (
	"encoding/json"
	"regexp"

	"github.com/joshsymonds/ledger-lens/internal/common"
	"github.com/joshsymonds/ledger-lens/internal/model"
)

// Category is the export category for money transfers.
const Category = "Переводы"

// NamePattern matches descriptions of transfers to a private person: one
// capitalized name, a space, a capitalized initial and a period, e.g.
// "Константин Л.". The pattern must match the whole description.
var NamePattern = regexp.MustCompile(`^[А-ЯЁ][а-яё]+\s[А-ЯЁ]\.$`)

// Record is one detected personal transfer.
type Record struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Result is the outcome of an extraction run. Exactly one of Transfers or
// LoadError is meaningful; callers and the JSON encoding branch on LoadError.
type Result struct {
	Transfers []Record
	LoadError string
}

// Failed reports whether the run ended in a load failure.
func (r Result) Failed() bool {
	return r.LoadError != ""
}

// MarshalJSON renders either the transfer list (possibly empty, never null)
// or the {"error": ...} object. The error object shape is a deliberate
// soft-failure contract: extraction never raises past this boundary.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{Error: r.LoadError})
	}
	if r.Transfers == nil {
		return json.Marshal([]Record{})
	}
	return json.Marshal(r.Transfers)
}

// TableLoader loads the transaction table from a spreadsheet path.
type TableLoader interface {
	Load(path string) ([]model.Transaction, error)
}

// Extractor finds personal transfers. It loads the table itself rather than
// taking an already-loaded one, so a broken export surfaces in the result.
type Extractor struct {
	loader TableLoader
}

// NewExtractor creates an extractor backed by the given loader.
func NewExtractor(loader TableLoader) *Extractor {
	return &Extractor{loader: loader}
}

// PersonalTransfers returns every row in the transfer category whose
// description fully matches NamePattern, in source row order. Rows with an
// empty or non-matching description are skipped silently.
func (e *Extractor) PersonalTransfers(path string) Result {
	table, err := e.loader.Load(path)
	if err != nil {
		common.LogError(err, "failed to read transaction export", common.Fields{"path": path})
		return Result{LoadError: err.Error()}
	}

	var records []Record
	for _, txn := range table {
		if txn.Category != Category {
			continue
		}
		if txn.Description == "" || !NamePattern.MatchString(txn.Description) {
			continue
		}
		records = append(records, Record{
			Amount: txn.Amount,
			Name:   txn.Description,
		})
	}

	return Result{Transfers: records}
}
