package geocode

import (
	"bytes"
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
)

// ErrNoResults means the provider answered but had nothing usable for the
// query. Callers must treat this differently from a transport failure.
var ErrNoResults = errors.New("geocode: no results")

// Result is a single Nominatim match. Lat/Lon are kept as the provider's
// string representation; use Coordinates to parse them.
type Result struct {
	PlaceID     int64             `json:"place_id,omitempty"`
	Licence     string            `json:"licence,omitempty"`
	OsmType     string            `json:"osm_type,omitempty"`
	OsmID       int64             `json:"osm_id,omitempty"`
	Lat         string            `json:"lat"`
	Lon         string            `json:"lon"`
	Class       string            `json:"class,omitempty"`
	Type        string            `json:"type,omitempty"`
	Importance  float64           `json:"importance,omitempty"`
	AddressType string            `json:"addresstype,omitempty"`
	Name        string            `json:"name,omitempty"`
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address,omitempty"`
	BoundingBox []string          `json:"boundingbox,omitempty"`

	// Nominatim reports unroutable reverse lookups as an in-body error
	// with HTTP 200.
	Error string `json:"error,omitempty"`
}

func (r *Result) Coordinates() (lat, lon float64, err error) {
	lat, err = strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("error parsing latitude %q: %w", r.Lat, err)
	}
	lon, err = strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("error parsing longitude %q: %w", r.Lon, err)
	}
	return lat, lon, nil
}

type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Forward resolves a free-text query to candidate coordinates, best match
// first. Returns ErrNoResults when the provider finds no match.
func (c *Client) Forward(ctx context.Context, query string) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")

	body, err := c.get(ctx, "/search", params)
	if err != nil {
		return nil, err
	}

	var results []Result
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("error decoding search response: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	return results, nil
}

// Reverse resolves coordinates to a display address. Lat/lon are passed
// through to the provider verbatim.
func (c *Client) Reverse(ctx context.Context, lat, lon string) (*Result, error) {
	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("format", "json")
	params.Set("addressdetails", "1")

	body, err := c.get(ctx, "/reverse", params)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrNoResults
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error decoding reverse response: %w", err)
	}
	if result.Error != "" {
		return nil, ErrNoResults
	}

	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading resp.Body: %w", err)
	}

	return body, nil
}
