package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrAddressNotFound means the geocoder returned no result for the address.
var ErrAddressNotFound = errors.New("address not found")

// defaultUserAgent identifies this tool to the public OSM services, which
// reject anonymous clients.
const defaultUserAgent = "microburbs-orient/1.0"

// Geocoder resolves a street address to a geographic coordinate using a
// Nominatim-compatible search endpoint.
type Geocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewGeocoder creates a Geocoder against the given Nominatim base URL
// (e.g. "https://nominatim.openstreetmap.org"). Empty userAgent falls back
// to the package default.
func NewGeocoder(baseURL, userAgent string, timeout time.Duration) *Geocoder {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Geocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// nominatimResult is the subset of a Nominatim search hit this package
// consumes. Coordinates arrive as strings.
type nominatimResult struct {
	Lon         string `json:"lon"`
	Lat         string `json:"lat"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves address to a coordinate, taking the first (best) hit.
func (g *Geocoder) Geocode(ctx context.Context, address string) (LonLat, error) {
	if address == "" {
		return LonLat{}, fmt.Errorf("%w: empty address", ErrAddressNotFound)
	}

	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return LonLat{}, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return LonLat{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LonLat{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return LonLat{}, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return LonLat{}, fmt.Errorf("%w: %q", ErrAddressNotFound, address)
	}

	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return LonLat{}, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return LonLat{}, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}

	return LonLat{Lon: lon, Lat: lat}, nil
}
