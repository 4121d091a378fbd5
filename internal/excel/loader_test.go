package excel

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/joshsymonds/ledger-lens/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, header []any, rows ...[]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "operations.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func exportHeader() []any {
	return []any{ColumnDate, ColumnAmount, ColumnCategory, ColumnDescription, ColumnCard, ColumnStatus}
}

func TestLoad(t *testing.T) {
	path := writeWorkbook(t, exportHeader(),
		[]any{"31.12.2021 16:44:00", "-160.89", "Супермаркеты", "Колхоз", "*7197", "OK"},
		[]any{"30.12.2021 17:50:17", "-800.00", "Переводы", "Константин Л.", "", "OK"},
	)

	table, err := NewLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, table, 2)

	first := table[0]
	assert.Equal(t, time.Date(2021, 12, 31, 16, 44, 0, 0, time.UTC), first.Date)
	assert.InDelta(t, -160.89, first.Amount, 1e-9)
	assert.Equal(t, "Супермаркеты", first.Category)
	assert.Equal(t, "Колхоз", first.Description)
	assert.Equal(t, "*7197", first.Card)
	assert.Equal(t, "OK", first.Status)

	assert.Empty(t, table[1].Card)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.xlsx"))

	assert.ErrorIs(t, err, common.ErrTableLoad)
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	path := writeWorkbook(t,
		[]any{ColumnDate, ColumnAmount, ColumnCategory}, // no status column
		[]any{"31.12.2021 16:44:00", "-160.89", "Супермаркеты"},
	)

	_, err := NewLoader().Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingColumn)
	assert.Contains(t, err.Error(), ColumnStatus)
}

func TestLoad_OptionalColumnsMayBeAbsent(t *testing.T) {
	path := writeWorkbook(t,
		[]any{ColumnDate, ColumnAmount, ColumnCategory, ColumnStatus},
		[]any{"31.12.2021 16:44:00", "-160.89", "Супермаркеты", "OK"},
	)

	table, err := NewLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, table, 1)

	assert.Empty(t, table[0].Description)
	assert.Empty(t, table[0].Card)
}

func TestLoad_AmountCoercion(t *testing.T) {
	path := writeWorkbook(t, exportHeader(),
		[]any{"31.12.2021 16:44:00", "-1234,56", "Супермаркеты", "", "*7197", "OK"},
		[]any{"30.12.2021 16:44:00", "n/a", "Супермаркеты", "", "*7197", "OK"},
	)

	table, err := NewLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, table, 2)

	// Comma decimals parse; anything non-numeric degrades to zero.
	assert.InDelta(t, -1234.56, table[0].Amount, 1e-9)
	assert.Zero(t, table[1].Amount)
}

func TestLoad_BadDateFailsLoad(t *testing.T) {
	path := writeWorkbook(t, exportHeader(),
		[]any{"not a date", "-160.89", "Супермаркеты", "", "*7197", "OK"},
	)

	_, err := NewLoader().Load(path)

	assert.ErrorIs(t, err, common.ErrTableLoad)
}
