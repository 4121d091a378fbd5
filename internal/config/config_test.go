package config

import (
	"testing"
	"time"

	"github.com/joshsymonds/ledger-lens/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg: Config{
				ExcelPath:    "/data/operations.xlsx",
				QuoteBaseURL: DefaultQuoteBaseURL,
				QuoteTimeout: DefaultQuoteTimeout,
			},
		},
		{
			name: "missing excel path",
			cfg: Config{
				QuoteBaseURL: DefaultQuoteBaseURL,
				QuoteTimeout: DefaultQuoteTimeout,
			},
			wantErr: common.ErrMissingConfig,
		},
		{
			name: "empty base url",
			cfg: Config{
				ExcelPath:    "/data/operations.xlsx",
				QuoteTimeout: DefaultQuoteTimeout,
			},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name: "non-positive timeout",
			cfg: Config{
				ExcelPath:    "/data/operations.xlsx",
				QuoteBaseURL: DefaultQuoteBaseURL,
				QuoteTimeout: -time.Second,
			},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequireDashboard(t *testing.T) {
	cfg := Config{
		ExcelPath:    "/data/operations.xlsx",
		QuoteBaseURL: DefaultQuoteBaseURL,
		QuoteTimeout: DefaultQuoteTimeout,
	}

	err := cfg.RequireDashboard()
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	cfg.SettingsPath = "/data/user_settings.json"
	err = cfg.RequireDashboard()
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	cfg.APIKey = "test-key"
	assert.NoError(t, cfg.RequireDashboard())
}

func TestExpandPath(t *testing.T) {
	t.Setenv("LENS_TEST_DIR", "/srv/data")

	assert.Equal(t, "/srv/data/operations.xlsx", ExpandPath("$LENS_TEST_DIR/operations.xlsx"))
	assert.Equal(t, "", ExpandPath(""))
}
