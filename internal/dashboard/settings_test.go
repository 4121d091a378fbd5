package dashboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshsymonds/ledger-lens/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"user_currencies": ["USD", "EUR"], "user_stocks": ["AAPL"]}`), 0o600))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"USD", "EUR"}, settings.UserCurrencies)
	assert.Equal(t, []string{"AAPL"}, settings.UserStocks)
}

func TestLoadSettings_Missing(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSettingsMissing)
}

func TestLoadSettings_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))

	_, err := LoadSettings(path)

	assert.ErrorIs(t, err, common.ErrSettingsMissing)
}
