package oddsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/elitepicks/picksbot/internal/pkg/config"
)

// Client queries the odds provider. One instance is shared across leagues;
// each call carries the configured timeout via the underlying http.Client.
type Client struct {
	client  *http.Client
	config  config.ProviderConfig
	baseURL string
}

func NewClient(cfg config.ProviderConfig) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		config:  cfg,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// FetchLeagueOdds fetches all upcoming events with quotes for one league key.
// Region, markets, odds format and the bookmaker allow-list are fixed by
// configuration; only the league varies per call.
func (c *Client) FetchLeagueOdds(ctx context.Context, league string) ([]RawEvent, error) {
	endpoint := fmt.Sprintf("%s/v4/sports/%s/odds", c.baseURL, url.PathEscape(league))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("apiKey", c.config.APIKey)
	q.Set("regions", c.config.Region)
	q.Set("markets", strings.Join(c.config.Markets, ","))
	q.Set("oddsFormat", "decimal")
	if len(c.config.Bookmakers) > 0 {
		q.Set("bookmakers", strings.Join(c.config.Bookmakers, ","))
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	var events []RawEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to parse events: %w", err)
	}

	return events, nil
}
