package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/joshsymonds/ledger-lens/internal/common"
	"github.com/joshsymonds/ledger-lens/internal/model"
	"github.com/joshsymonds/ledger-lens/internal/quotes"
)

// Card summary rules.
const (
	// statusOK marks a settled transaction; everything else is skipped.
	statusOK = "OK"
	// cashbackDivisor yields one unit of cashback per 100 spent.
	cashbackDivisor = 100
	// topTransactionCount is how many transactions the dashboard shows.
	topTransactionCount = 5
)

// TableLoader loads the transaction table from a spreadsheet path.
type TableLoader interface {
	Load(path string) ([]model.Transaction, error)
}

// QuoteSource resolves exchange rates and stock prices. Failing symbols are
// omitted from the result, never reported as an error.
type QuoteSource interface {
	Market(ctx context.Context, currencies, stocks []string) ([]quotes.CurrencyRate, []quotes.StockPrice)
}

// SettingsLoader loads the user's dashboard settings.
type SettingsLoader func(path string) (*Settings, error)

// Config points the builder at its inputs.
type Config struct {
	ExcelPath    string
	SettingsPath string
}

// Builder composes the dashboard from independent passes over the filtered
// table plus external quote lookups.
type Builder struct {
	loader   TableLoader
	quotes   QuoteSource
	settings SettingsLoader
	clock    func() time.Time
	cfg      Config
}

// Option configures optional Builder behavior.
type Option func(*Builder)

// WithClock overrides the wall clock used for the greeting.
func WithClock(clock func() time.Time) Option {
	return func(b *Builder) {
		b.clock = clock
	}
}

// WithSettingsLoader overrides how user settings are read.
func WithSettingsLoader(load SettingsLoader) Option {
	return func(b *Builder) {
		b.settings = load
	}
}

// NewBuilder creates a dashboard builder.
func NewBuilder(cfg Config, loader TableLoader, quoteSource QuoteSource, opts ...Option) *Builder {
	b := &Builder{
		cfg:      cfg,
		loader:   loader,
		quotes:   quoteSource,
		settings: LoadSettings,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build computes the dashboard for the given anchor timestamp
// ("2006-01-02 15:04:05"). The greeting uses the current wall-clock time,
// not the anchor. Missing settings are fatal; a broken table load degrades
// to an empty table; quote failures degrade per symbol.
func (b *Builder) Build(ctx context.Context, anchor string) (*Response, error) {
	anchorTime, err := time.Parse(model.AnchorTimeLayout, anchor)
	if err != nil {
		return nil, fmt.Errorf("invalid anchor timestamp %q: %w", anchor, err)
	}

	greeting := Greeting(b.clock())

	settings, err := b.settings(b.cfg.SettingsPath)
	if err != nil {
		return nil, err
	}

	table, err := b.loader.Load(b.cfg.ExcelPath)
	if err != nil {
		common.LogWarn("transaction table unavailable, building dashboard without it", common.Fields{
			"path":  b.cfg.ExcelPath,
			"error": err.Error(),
		})
		table = nil
	}

	filtered := filterToAnchorMonth(table, anchorTime)

	rates, prices := b.quotes.Market(ctx, settings.UserCurrencies, settings.UserStocks)

	return &Response{
		Greeting:        greeting,
		Cards:           summarizeCards(filtered),
		TopTransactions: topTransactions(filtered),
		CurrencyRates:   rates,
		StockPrices:     prices,
	}, nil
}

// filterToAnchorMonth keeps rows between the first day of the anchor month
// and the anchor timestamp, inclusive.
func filterToAnchorMonth(table []model.Transaction, anchor time.Time) []model.Transaction {
	start := time.Date(anchor.Year(), anchor.Month(), 1, anchor.Hour(), anchor.Minute(), anchor.Second(), 0, anchor.Location())

	filtered := make([]model.Transaction, 0, len(table))
	for _, txn := range table {
		if txn.Date.Before(start) || txn.Date.After(anchor) {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered
}

// summarizeCards aggregates spend and cashback per card. Cashback is the
// per-row floor of |amount|/100, accumulated row by row: two 150.00 rows
// earn 2, not the 3 a floor over the 300.00 total would give.
func summarizeCards(table []model.Transaction) []CardSummary {
	byCard := make(map[string]*CardSummary)
	var order []string

	for _, txn := range table {
		card := strings.TrimSpace(strings.ReplaceAll(txn.Card, "*", ""))
		if len(card) < 4 || txn.Amount == 0.0 || txn.Status != statusOK {
			continue
		}

		lastDigits := card[len(card)-4:]
		summary, ok := byCard[lastDigits]
		if !ok {
			summary = &CardSummary{LastDigits: lastDigits}
			byCard[lastDigits] = summary
			order = append(order, lastDigits)
		}

		spent := math.Abs(txn.Amount)
		summary.TotalSpent += spent
		summary.Cashback += math.Floor(spent / cashbackDivisor)
	}

	cards := make([]CardSummary, 0, len(order))
	for _, lastDigits := range order {
		cards = append(cards, *byCard[lastDigits])
	}
	return cards
}

// topTransactions picks the five largest rows by raw amount. A large
// negative expense does not outrank a small credit; ties keep row order.
func topTransactions(table []model.Transaction) []TopTransaction {
	ranked := make([]model.Transaction, len(table))
	copy(ranked, table)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})

	if len(ranked) > topTransactionCount {
		ranked = ranked[:topTransactionCount]
	}

	top := make([]TopTransaction, 0, len(ranked))
	for _, txn := range ranked {
		top = append(top, TopTransaction{
			Date:        txn.Date.Format(model.DisplayDateLayout),
			Amount:      txn.Amount,
			Category:    txn.Category,
			Description: txn.Description,
		})
	}
	return top
}
