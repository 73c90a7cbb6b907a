// Package marketdata fetches security quotes and classification data from
// the market data API, with a cache-first layer backed by client_data.db.
package marketdata

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradelens/tradelens/internal/clientdata"
	"github.com/tradelens/tradelens/internal/domain"
)

// Client is a market data API client implementing domain.QuoteProvider.
type Client struct {
	client  *http.Client
	baseURL string
	cache   *clientdata.Repository
	log     zerolog.Logger
}

// NewClient creates a new market data client.
// cache may be nil, in which case every lookup hits the API.
func NewClient(baseURL string, cache *clientdata.Repository, log zerolog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		cache:   cache,
		log:     log.With().Str("client", "marketdata").Logger(),
	}
}

// quote is the cached/wire representation of a price quote.
type quote struct {
	Symbol    string  `json:"symbol"`
	LastPrice float64 `json:"last_price"`
}

// securityProfile is the cached/wire representation of security classification.
type securityProfile struct {
	Symbol   string `json:"symbol"`
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
}

// Lookup fetches the current quote and classification for a symbol.
// Quote and profile are cached independently: prices go stale in minutes,
// sector/industry in weeks. Either half may come from a stale cache entry
// when the API is unreachable; a lookup only fails when the price is
// unavailable from both the API and the cache.
func (c *Client) Lookup(symbol string) (*domain.SecurityQuote, error) {
	q, err := c.getQuote(symbol)
	if err != nil {
		return nil, err
	}

	result := &domain.SecurityQuote{
		LastPrice: q.LastPrice,
	}

	profile, err := c.getProfile(symbol)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("Security profile unavailable")
	} else {
		result.Sector = profile.Sector
		result.Industry = profile.Industry
	}

	return result, nil
}

func (c *Client) getQuote(symbol string) (*quote, error) {
	if data := c.cacheGetFresh("quotes", symbol); data != nil {
		var q quote
		if err := json.Unmarshal(data, &q); err == nil {
			return &q, nil
		}
	}

	var q quote
	if err := c.getJSON("/v1/quote", symbol, &q); err != nil {
		// Stale quote beats no quote when the API is down.
		if data := c.cacheGetStale("quotes", symbol); data != nil {
			var stale quote
			if jsonErr := json.Unmarshal(data, &stale); jsonErr == nil {
				c.log.Warn().Err(err).Str("symbol", symbol).Msg("Using stale cached quote")
				return &stale, nil
			}
		}
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}

	c.cacheStore("quotes", symbol, q, clientdata.TTLQuote)
	return &q, nil
}

func (c *Client) getProfile(symbol string) (*securityProfile, error) {
	if data := c.cacheGetFresh("security_metadata", symbol); data != nil {
		var p securityProfile
		if err := json.Unmarshal(data, &p); err == nil {
			return &p, nil
		}
	}

	var p securityProfile
	if err := c.getJSON("/v1/profile", symbol, &p); err != nil {
		if data := c.cacheGetStale("security_metadata", symbol); data != nil {
			var stale securityProfile
			if jsonErr := json.Unmarshal(data, &stale); jsonErr == nil {
				return &stale, nil
			}
		}
		return nil, fmt.Errorf("failed to get profile for %s: %w", symbol, err)
	}

	c.cacheStore("security_metadata", symbol, p, clientdata.TTLSecurityMetadata)
	return &p, nil
}

// getJSON performs a GET request to path?symbol=X and decodes the response.
func (c *Client) getJSON(path, symbol string, out interface{}) error {
	params := url.Values{}
	params.Add("symbol", symbol)

	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("market data API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// Cache helpers. Cache failures are logged and treated as misses - the
// cache is an optimization, never a hard dependency.

func (c *Client) cacheGetFresh(table, symbol string) json.RawMessage {
	if c.cache == nil {
		return nil
	}
	data, err := c.cache.GetIfFresh(table, symbol)
	if err != nil {
		c.log.Warn().Err(err).Str("table", table).Msg("Cache read failed")
		return nil
	}
	return data
}

func (c *Client) cacheGetStale(table, symbol string) json.RawMessage {
	if c.cache == nil {
		return nil
	}
	data, err := c.cache.Get(table, symbol)
	if err != nil {
		c.log.Warn().Err(err).Str("table", table).Msg("Cache read failed")
		return nil
	}
	return data
}

func (c *Client) cacheStore(table, symbol string, data interface{}, ttl time.Duration) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Store(table, symbol, data, ttl); err != nil {
		c.log.Warn().Err(err).Str("table", table).Msg("Cache write failed")
	}
}
