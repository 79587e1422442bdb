package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/mobil-koeln/flights-cli/internal/models"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 3
	defaultRetryWait  = 500 * time.Millisecond
)

// Cache interface for caching HTTP responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// Client is the API client for the flight offers backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiHost    string
	cache      Cache
	maxRetries int
	retryWait  time.Duration
	log        zerolog.Logger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithBaseURL sets the backend base URL
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithAPIKey sets the key sent in the X-RapidAPI-Key header
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithAPIHost sets the value of the X-RapidAPI-Host header
func WithAPIHost(host string) ClientOption {
	return func(c *Client) {
		c.apiHost = host
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetries sets how many times a failed request is repeated
func WithRetries(n int, wait time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = n
		c.retryWait = wait
	}
}

// WithCache enables caching with the provided cache implementation
func WithCache(cache Cache) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithLogger sets the logger used for retry and cache diagnostics
func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a new API client
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		apiHost:    DefaultHost,
		maxRetries: defaultMaxRetries,
		retryWait:  defaultRetryWait,
		log:        zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}
	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return c, nil
}

// OffersRequest contains parameters for an offers search
type OffersRequest struct {
	Origin      string // Origin code (required)
	Destination string // Destination code (required)
	DepartDate  string // YYYY-MM-DD (required)
	ReturnDate  string // YYYY-MM-DD, empty for one-way
	Adults      int    // Passenger count (default: 1)
	CabinClass  string // default: economy
	Currency    string // default: USD
}

// NewOffersRequest builds a request from a search query
func NewOffersRequest(q models.SearchQuery) OffersRequest {
	q = q.Normalized()
	return OffersRequest{
		Origin:      q.Origin,
		Destination: q.Destination,
		DepartDate:  q.DepartDate,
		ReturnDate:  q.ReturnDate,
		Adults:      q.Passengers,
		CabinClass:  DefaultCabinClass,
		Currency:    DefaultCurrency,
	}
}

// validate reports the first missing required parameter
func (r OffersRequest) validate() error {
	switch {
	case r.Origin == "":
		return models.ErrRequired("origin")
	case r.Destination == "":
		return models.ErrRequired("destination")
	case r.DepartDate == "":
		return models.ErrRequired("departDate")
	}
	return nil
}

// offersResponse is the backend envelope around the offers list
type offersResponse struct {
	Status  bool                 `json:"status"`
	Message string               `json:"message"`
	Data    []models.FlightOffer `json:"data"`
}

// SearchOffers fetches offers for a request, keeping the backend's order
func (c *Client) SearchOffers(ctx context.Context, req OffersRequest) ([]models.FlightOffer, error) {
	body, err := c.SearchOffersRaw(ctx, req)
	if err != nil {
		return nil, err
	}
	return decodeOffers(body)
}

// SearchOffersRaw returns the raw JSON response for an offers search.
// Responses the backend flags as failed are returned as errors and never cached.
func (c *Client) SearchOffersRaw(ctx context.Context, req OffersRequest) (json.RawMessage, error) {
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return c.doRequest(ctx, c.offersURL(req), func(body []byte) error {
		_, err := decodeOffers(body)
		return err
	})
}

// decodeOffers unwraps the backend envelope
func decodeOffers(body []byte) ([]models.FlightOffer, error) {
	var resp offersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse offers response: %w", err)
	}
	if !resp.Status {
		msg := resp.Message
		if msg == "" {
			msg = "backend reported failure"
		}
		return nil, NewAPIErrorWithMessage(http.StatusOK, EndpointSearchFlights, msg)
	}

	if resp.Data == nil {
		return []models.FlightOffer{}, nil
	}
	return resp.Data, nil
}

func (c *Client) offersURL(req OffersRequest) string {
	adults := req.Adults
	if adults < 1 {
		adults = 1
	}
	cabin := req.CabinClass
	if cabin == "" {
		cabin = DefaultCabinClass
	}
	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	params := url.Values{}
	params.Set("originSkyId", req.Origin)
	params.Set("destinationSkyId", req.Destination)
	params.Set("originEntityId", req.Origin)
	params.Set("destinationEntityId", req.Destination)
	params.Set("date", req.DepartDate)
	params.Set("returnDate", req.ReturnDate)
	params.Set("cabinClass", cabin)
	params.Set("adults", strconv.Itoa(adults))
	params.Set("currency", currency)

	return c.baseURL + EndpointSearchFlights + "?" + params.Encode()
}

// doRequest performs an HTTP GET with caching and retries. Only bodies that
// pass accept are stored in the cache.
func (c *Client) doRequest(ctx context.Context, reqURL string, accept func([]byte) error) ([]byte, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(reqURL); ok {
			c.log.Debug().Str("endpoint", extractEndpoint(reqURL)).Msg("cache hit")
			return data, nil
		}
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryWait
	policy.MaxElapsedTime = 0
	var b backoff.BackOff = policy
	if c.maxRetries >= 0 {
		b = backoff.WithMaxRetries(policy, uint64(c.maxRetries))
	}

	attempt := 0
	body, err := backoff.RetryNotifyWithData(func() ([]byte, error) {
		attempt++
		return c.fetch(ctx, reqURL)
	}, backoff.WithContext(b, ctx), func(err error, wait time.Duration) {
		c.log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("retrying offers request")
	})
	if err != nil {
		if ctx.Err() != nil && !errors.Is(err, ErrTimeout) {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		}
		return nil, err
	}

	if accept != nil {
		if err := accept(body); err != nil {
			return nil, err
		}
	}

	if c.cache != nil {
		_ = c.cache.Set(reqURL, body)
	}

	return body, nil
}

// fetch performs a single request. Errors that cannot succeed on retry are
// wrapped as permanent.
func (c *Client) fetch(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set(HeaderAPIHost, c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(fmt.Errorf("%w: %w", ErrTimeout, ctx.Err()))
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		apiErr := NewAPIError(resp.StatusCode, resp.Status, extractEndpoint(reqURL))
		if apiErr.Retryable() {
			return nil, apiErr
		}
		return nil, backoff.Permanent(apiErr)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.Path
}
