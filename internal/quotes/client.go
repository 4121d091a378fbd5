// Package quotes fetches currency rates and stock prices from Alpha Vantage.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/joshsymonds/ledger-lens/internal/common"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLookups bounds the quote fan-out. Lookups are independent,
// so they run in parallel; results keep input order.
const maxConcurrentLookups = 4

// rateTargetCurrency is the quote currency for exchange rate lookups.
const rateTargetCurrency = "RUB"

// CurrencyRate is one resolved exchange rate.
type CurrencyRate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// StockPrice is one resolved stock quote.
type StockPrice struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}

// Client talks to the Alpha Vantage query endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
}

// NewClient creates a quote client. timeout bounds each individual lookup.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Alpha Vantage response types.
type exchangeRateResponse struct {
	ErrorMessage string `json:"Error Message"`
	Rate         *struct {
		ExchangeRate string `json:"5. Exchange Rate"`
	} `json:"Realtime Currency Exchange Rate"`
}

type intradayResponse struct {
	ErrorMessage string              `json:"Error Message"`
	Series       map[string]ohlcvBar `json:"Time Series (5min)"`
}

type ohlcvBar struct {
	Close string `json:"4. close"`
}

// Rate fetches the latest exchange rate from the given currency to RUB.
func (c *Client) Rate(ctx context.Context, currency string) (float64, error) {
	params := url.Values{}
	params.Set("function", "CURRENCY_EXCHANGE_RATE")
	params.Set("from_currency", currency)
	params.Set("to_currency", rateTargetCurrency)
	params.Set("apikey", c.apiKey)

	var payload exchangeRateResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return 0, err
	}

	if payload.ErrorMessage != "" {
		return 0, fmt.Errorf("%w: %s: %s", common.ErrQuoteFailed, currency, payload.ErrorMessage)
	}
	if payload.Rate == nil {
		return 0, fmt.Errorf("%w: %s: no exchange rate in response", common.ErrQuoteFailed, currency)
	}

	rate, err := strconv.ParseFloat(payload.Rate.ExchangeRate, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: malformed exchange rate %q", common.ErrQuoteFailed, currency, payload.Rate.ExchangeRate)
	}

	return rate, nil
}

// Price fetches the latest intraday closing price of the given stock symbol.
func (c *Client) Price(ctx context.Context, symbol string) (float64, error) {
	params := url.Values{}
	params.Set("function", "TIME_SERIES_INTRADAY")
	params.Set("symbol", symbol)
	params.Set("interval", "5min")
	params.Set("apikey", c.apiKey)
	params.Set("datatype", "json")

	var payload intradayResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return 0, err
	}

	if payload.ErrorMessage != "" {
		return 0, fmt.Errorf("%w: %s: %s", common.ErrQuoteFailed, symbol, payload.ErrorMessage)
	}
	if len(payload.Series) == 0 {
		return 0, fmt.Errorf("%w: %s: no intraday series in response", common.ErrQuoteFailed, symbol)
	}

	// Bars are keyed by "2006-01-02 15:04:05" timestamps, so the maximum
	// key is the most recent bar.
	var latest string
	for ts := range payload.Series {
		if ts > latest {
			latest = ts
		}
	}

	price, err := strconv.ParseFloat(payload.Series[latest].Close, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: malformed close price %q", common.ErrQuoteFailed, symbol, payload.Series[latest].Close)
	}

	return price, nil
}

// Market resolves all requested currencies and stocks concurrently. Each
// symbol fails independently: failures are logged and omitted from the
// output, never fatal. Output order mirrors input order.
func (c *Client) Market(ctx context.Context, currencies, stocks []string) ([]CurrencyRate, []StockPrice) {
	rateSlots := make([]*CurrencyRate, len(currencies))
	priceSlots := make([]*StockPrice, len(stocks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, currency := range currencies {
		i, currency := i, currency
		g.Go(func() error {
			rate, err := c.Rate(ctx, currency)
			if err != nil {
				common.LogWarn("skipping currency quote", common.Fields{"currency": currency, "error": err.Error()})
				return nil
			}
			rateSlots[i] = &CurrencyRate{Currency: currency, Rate: rate}
			return nil
		})
	}

	for i, stock := range stocks {
		i, stock := i, stock
		g.Go(func() error {
			price, err := c.Price(ctx, stock)
			if err != nil {
				common.LogWarn("skipping stock quote", common.Fields{"stock": stock, "error": err.Error()})
				return nil
			}
			priceSlots[i] = &StockPrice{Stock: stock, Price: price}
			return nil
		})
	}

	// Lookups never return errors; Wait only synchronizes.
	_ = g.Wait()

	rates := make([]CurrencyRate, 0, len(currencies))
	for _, r := range rateSlots {
		if r != nil {
			rates = append(rates, *r)
		}
	}
	prices := make([]StockPrice, 0, len(stocks))
	for _, p := range priceSlots {
		if p != nil {
			prices = append(prices, *p)
		}
	}

	return rates, prices
}

// get performs one request with the per-lookup timeout applied. A timeout
// is a per-symbol failure like any other.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrQuoteFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrQuoteFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status %d: %s", common.ErrQuoteFailed, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", common.ErrQuoteFailed, err)
	}

	return nil
}
