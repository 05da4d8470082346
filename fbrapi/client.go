package fbrapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Client wraps the FBR API.
//
// The API key lives on the client and is replaced wholesale when the server
// rejects it. The client is not safe for concurrent use: two goroutines
// reacting to the same rejection would race on the key field.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	limiter     *rate.Limiter
	logger      zerolog.Logger
	maxAttempts int
}

// NewClient creates a new FBR API client. Without WithAPIKey, a key is
// generated lazily on the first authenticated request.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("FBR base URL is required")
	}
	baseURL = strings.TrimRight(baseURL, "/")

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:     baseURL,
		apiKey:      options.apiKey,
		httpClient:  httpClient,
		limiter:     rate.NewLimiter(rate.Every(options.minInterval), 1),
		logger:      logger,
		maxAttempts: options.maxAttempts,
	}, nil
}

// APIKey returns the key currently cached on the client, if any.
func (c *Client) APIKey() string {
	return c.apiKey
}

// GenerateKey requests a fresh API key from the key-issuance endpoint and
// caches it on the client. Keys are valid for 24 hours upstream; the client
// does not track expiry and relies on rejection-driven refresh instead.
func (c *Client) GenerateKey(ctx context.Context) (string, error) {
	c.logger.Debug().Msg("Generating new FBR API key")

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate_api_key", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var keyResp KeyResponse
	if err := json.Unmarshal(body, &keyResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if keyResp.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	c.apiKey = keyResp.APIKey
	return c.apiKey, nil
}

// ensureKey generates a key if none is cached yet.
func (c *Client) ensureKey(ctx context.Context) error {
	if c.apiKey != "" {
		return nil
	}
	c.logger.Info().Msg("No API key found, generating a new one")
	_, err := c.GenerateKey(ctx)
	return err
}

// get performs an authenticated GET. A 401/403 response triggers key
// regeneration and a retry, bounded by maxAttempts total attempts; any other
// non-2xx status fails immediately with *APIError.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.ensureKey(ctx); err != nil {
		return nil, err
	}

	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("X-API-Key", c.apiKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
			return body, nil
		}

		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		if !apiErr.IsUnauthorized() {
			return nil, apiErr
		}

		lastErr = apiErr
		if attempt < c.maxAttempts {
			c.logger.Warn().
				Int("status", resp.StatusCode).
				Int("attempt", attempt).
				Msg("API key rejected, generating a new key and retrying")
			if _, err := c.GenerateKey(ctx); err != nil {
				return nil, err
			}
		}
	}

	return nil, lastErr
}

// GetLeagues retrieves the leagues available for a country. Results are
// restricted to men's competitions, matching the gender filter applied by
// FlattenLeagues.
func (c *Client) GetLeagues(ctx context.Context, countryCode string) (*LeaguesPayload, error) {
	c.logger.Info().Str("country_code", countryCode).Msg("Fetching leagues")

	params := url.Values{}
	params.Set("country_code", countryCode)
	params.Set("gender", "M")

	body, err := c.get(ctx, "/leagues", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get leagues: %w", err)
	}

	var payload LeaguesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &payload, nil
}

// GetSeasons retrieves the seasons on record for a league.
func (c *Client) GetSeasons(ctx context.Context, leagueID int) (*SeasonsPayload, error) {
	c.logger.Info().Int("league_id", leagueID).Msg("Fetching seasons")

	params := url.Values{}
	params.Set("league_id", strconv.Itoa(leagueID))

	body, err := c.get(ctx, "/league-seasons", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get seasons: %w", err)
	}

	var payload SeasonsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &payload, nil
}
