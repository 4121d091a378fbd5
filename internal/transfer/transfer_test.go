package transfer

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/joshsymonds/ledger-lens/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	table []model.Transaction
	err   error
}

func (s *stubLoader) Load(_ string) ([]model.Transaction, error) {
	return s.table, s.err
}

func row(category, description string, amount float64) model.Transaction {
	return model.Transaction{
		Date:        time.Date(2021, 12, 30, 12, 0, 0, 0, time.UTC),
		Category:    category,
		Description: description,
		Amount:      amount,
	}
}

func TestPersonalTransfers(t *testing.T) {
	loader := &stubLoader{table: []model.Transaction{
		row("Переводы", "Константин Л.", -800.00),
		row("Супермаркеты", "Магнит", -160.89),
		row("Переводы", "Перевод между счетами", -3000.00),
		row("Переводы", "Константин Л.", -20000.00),
	}}

	result := NewExtractor(loader).PersonalTransfers("operations.xlsx")

	require.False(t, result.Failed())
	assert.Equal(t, []Record{
		{Amount: -800.00, Name: "Константин Л."},
		{Amount: -20000.00, Name: "Константин Л."},
	}, result.Transfers)
}

func TestPersonalTransfers_NoMatches(t *testing.T) {
	loader := &stubLoader{table: []model.Transaction{
		row("Супермаркеты", "Магнит", -160.89),
	}}

	result := NewExtractor(loader).PersonalTransfers("operations.xlsx")

	require.False(t, result.Failed())
	assert.Empty(t, result.Transfers)

	out, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))
}

func TestPersonalTransfers_LoadFailure(t *testing.T) {
	loader := &stubLoader{err: errors.New("failed to load transaction table: no such file")}

	result := NewExtractor(loader).PersonalTransfers("missing.xlsx")

	require.True(t, result.Failed())

	out, err := json.Marshal(result)
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(out, &payload))
	assert.Equal(t, map[string]string{"error": "failed to load transaction table: no such file"}, payload)
}

func TestPersonalTransfers_SkipsEmptyDescriptions(t *testing.T) {
	loader := &stubLoader{table: []model.Transaction{
		row("Переводы", "", -500.00),
	}}

	result := NewExtractor(loader).PersonalTransfers("operations.xlsx")

	require.False(t, result.Failed())
	assert.Empty(t, result.Transfers)
}

func TestNamePattern(t *testing.T) {
	tests := []struct {
		description string
		matches     bool
	}{
		{"Константин Л.", true},
		{"Иван П.", true},
		{"Ёжиков Ё.", true},
		{"Константин Л", false},       // no trailing period
		{"Константин Леонидович", false},
		{"константин Л.", false},      // lower-case name
		{"Константин л.", false},      // lower-case initial
		{"Перевод Константин Л.", false}, // must match the whole description
		{"Konstantin L.", false},      // wrong alphabet
		{"К Л.", false},               // single-letter name
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.matches, NamePattern.MatchString(tt.description))
		})
	}
}

func TestResultMarshal_TransferRecordShape(t *testing.T) {
	result := Result{Transfers: []Record{{Amount: -800, Name: "Константин Л."}}}

	out, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"amount": -800, "name": "Константин Л."}]`, string(out))
}
