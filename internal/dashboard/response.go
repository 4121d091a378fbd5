package dashboard

import (
	"bytes"
	"encoding/json"

	"github.com/joshsymonds/ledger-lens/internal/quotes"
)

// CardSummary is the per-card aggregate in the dashboard.
type CardSummary struct {
	LastDigits string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   float64 `json:"cashback"`
}

// TopTransaction is one of the largest transactions of the anchor month.
type TopTransaction struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Response is the full dashboard payload.
type Response struct {
	Greeting        string                `json:"greeting"`
	Cards           []CardSummary         `json:"cards"`
	TopTransactions []TopTransaction      `json:"top_transactions"`
	CurrencyRates   []quotes.CurrencyRate `json:"currency_rates"`
	StockPrices     []quotes.StockPrice   `json:"stock_prices"`
}

// JSON renders the response with two-space indentation and without HTML
// escaping, so Cyrillic text and category names stay readable.
func (r *Response) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
