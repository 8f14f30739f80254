// Package lookup resolves free-text queries to postal addresses via the
// OpenStreetMap Nominatim service and maps the results onto the domain
// records. A failed or incomplete lookup never touches existing field values.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// ErrNotFound covers every unusable outcome of a search: no hit at all or a
// hit missing street, postal code or city. Callers surface one message for
// all of them and let the user enter the address manually.
var ErrNotFound = errors.New("lookup: address not found")

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org/search"
	defaultUserAgent = "BolzEntsorgungApp/1.0"
	defaultTimeout   = 10 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Option customises the client configuration.
type Option func(*Client)

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithBaseURL overrides the search endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithUserAgent overrides the User-Agent header sent to the service.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(userAgent); trimmed != "" {
			c.userAgent = trimmed
		}
	}
}

// Client is a best-effort, single-attempt Nominatim search client. No retry,
// no backoff: a failure resolves into a user-visible "enter manually" state.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient constructs a Client applying any provided options.
func NewClient(options ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

type searchHit struct {
	Address hitAddress `json:"address"`
}

type hitAddress struct {
	Name         string `json:"name"`
	Company      string `json:"company"`
	Road         string `json:"road"`
	HouseNumber  string `json:"house_number"`
	Postcode     string `json:"postcode"`
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
}

// Search resolves the query to a structured address. The first hit wins
// (limit=1); a hit without street, postal code or city counts as not found.
func (c *Client) Search(ctx context.Context, query string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, errors.New("lookup: query is required")
	}

	params := url.Values{
		"q":              {query},
		"format":         {"json"},
		"addressdetails": {"1"},
		"countrycodes":   {"de"},
		"limit":          {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("lookup: build request: %w", err)
	}
	req.Header.Set("Accept-Language", "de")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("lookup: search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("lookup: search returned status %d", resp.StatusCode)
	}

	var hits []searchHit
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return Result{}, fmt.Errorf("lookup: decode response: %w", err)
	}
	if len(hits) == 0 {
		return Result{}, ErrNotFound
	}

	return resultFromHit(hits[0].Address, query)
}

func resultFromHit(a hitAddress, query string) (Result, error) {
	street := a.Road
	if a.HouseNumber != "" {
		street = strings.TrimSpace(street + " " + a.HouseNumber)
	}
	city := firstNonEmpty(a.City, a.Town, a.Village, a.Municipality)
	name := firstNonEmpty(a.Name, a.Company, query)

	if street == "" || a.Postcode == "" || city == "" {
		return Result{}, fmt.Errorf("lookup: incomplete address: %w", ErrNotFound)
	}

	return Result{
		Name:   name,
		Street: street,
		Zip:    a.Postcode,
		City:   city,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
