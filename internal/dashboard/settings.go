package dashboard

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshsymonds/ledger-lens/internal/common"
)

// Settings is the user's dashboard configuration: which currencies and
// stocks to quote. There are no defaults; the dashboard cannot run without it.
type Settings struct {
	UserCurrencies []string `json:"user_currencies"`
	UserStocks     []string `json:"user_stocks"`
}

// LoadSettings reads the settings file. Any failure wraps
// common.ErrSettingsMissing, which is fatal for the dashboard call.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSettingsMissing, err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: malformed settings file %s: %v", common.ErrSettingsMissing, path, err)
	}

	return &s, nil
}
