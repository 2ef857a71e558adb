package mboum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/market"
	"github.com/wilsonfong56/ETF-Dashboard/internal/pkg/config"
)

// Client handles Mboum stock history API requests
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Mboum client
func NewClient(cfg config.MboumConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// historyResponse represents the Mboum history payload. The body maps
// epoch-second keys to bars; "events" can appear among them and carries
// dividends rather than a bar.
type historyResponse struct {
	Body map[string]json.RawMessage `json:"body"`
}

type historyBar struct {
	DateUTC int64   `json:"date_utc"`
	Open    float64 `json:"open"`
	High    float64 `json:"high"`
	Low     float64 `json:"low"`
	Close   float64 `json:"close"`
	Volume  int64   `json:"volume"`
}

// FetchHistory fetches OHLCV bars for a ticker, sorted by date ascending
func (c *Client) FetchHistory(ctx context.Context, ticker, interval string) ([]market.PriceBar, error) {
	params := url.Values{}
	params.Set("symbol", strings.ToUpper(ticker))
	params.Set("interval", interval)
	params.Set("diffandsplits", "false")
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", market.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", market.ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", market.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status=%d", market.ErrUpstream, resp.StatusCode)
	}

	var histResp historyResponse
	if err := json.Unmarshal(respBody, &histResp); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", market.ErrUpstream, err)
	}
	if len(histResp.Body) == 0 {
		return nil, fmt.Errorf("%w: %s", market.ErrHistoryNotFound, strings.ToUpper(ticker))
	}

	bars := make([]market.PriceBar, 0, len(histResp.Body))
	for key, raw := range histResp.Body {
		if key == "events" {
			continue
		}
		var bar historyBar
		if err := json.Unmarshal(raw, &bar); err != nil {
			continue
		}
		bars = append(bars, market.PriceBar{
			Date:   time.Unix(bar.DateUTC, 0).UTC(),
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: bar.Volume,
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: %s", market.ErrHistoryNotFound, strings.ToUpper(ticker))
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}
