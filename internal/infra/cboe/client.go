package cboe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/option"
	"github.com/wilsonfong56/ETF-Dashboard/internal/pkg/config"
)

// Client handles Cboe delayed quotes API requests. The same endpoint
// carries the stock quote and the full options chain.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Cboe client
func NewClient(cfg config.CBOEConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// quoteResponse represents the Cboe delayed quotes payload
type quoteResponse struct {
	Data struct {
		Symbol       string               `json:"symbol"`
		CurrentPrice float64              `json:"current_price"`
		IV30         float64              `json:"iv30"` // percent
		IV30Change   float64              `json:"iv30_change"`
		PrevDayClose float64              `json:"prev_day_close"`
		Open         float64              `json:"open"`
		High         float64              `json:"high"`
		Low          float64              `json:"low"`
		Volume       int64                `json:"volume"`
		Options      []option.RawContract `json:"options"`
	} `json:"data"`
}

// FetchQuote fetches the stock quote with 30-day implied volatility.
// The upstream reports iv30 in percent; the domain carries it as a fraction.
func (c *Client) FetchQuote(ctx context.Context, ticker string) (*option.Quote, error) {
	resp, err := c.fetch(ctx, ticker)
	if err != nil {
		return nil, err
	}

	return &option.Quote{
		Ticker:     strings.ToUpper(ticker),
		Price:      resp.Data.CurrentPrice,
		IV30:       resp.Data.IV30 / 100,
		IV30Change: resp.Data.IV30Change,
		PrevClose:  resp.Data.PrevDayClose,
		Open:       resp.Data.Open,
		High:       resp.Data.High,
		Low:        resp.Data.Low,
		Volume:     resp.Data.Volume,
	}, nil
}

// FetchChain fetches the raw options chain for a ticker
func (c *Client) FetchChain(ctx context.Context, ticker string) ([]option.RawContract, error) {
	resp, err := c.fetch(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return resp.Data.Options, nil
}

func (c *Client) fetch(ctx context.Context, ticker string) (*quoteResponse, error) {
	url := fmt.Sprintf("%s/options/%s.json", c.baseURL, strings.ToUpper(ticker))

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", option.ErrUpstream, err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", option.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", option.ErrTickerNotFound, strings.ToUpper(ticker))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", option.ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status=%d body=%s", option.ErrUpstream, resp.StatusCode, truncateBody(respBody))
	}

	var quoteResp quoteResponse
	if err := json.Unmarshal(respBody, &quoteResp); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", option.ErrUpstream, err)
	}

	return &quoteResp, nil
}

// truncateBody keeps error messages readable when the upstream returns
// an HTML error page
func truncateBody(body []byte) string {
	const max = 200
	s := string(body)
	if len(s) > max {
		return s[:max]
	}
	return s
}
