package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Road is a road geometry fetched from OpenStreetMap: an ordered run of
// geographic vertices plus the way's name when it is tagged with one.
type Road struct {
	Name   string   `json:"name,omitempty"`
	Points []LonLat `json:"points"`
}

// RoadFetcher retrieves road geometries near a coordinate from an Overpass
// API endpoint.
type RoadFetcher struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewRoadFetcher creates a RoadFetcher against the given Overpass base URL
// (e.g. "https://overpass-api.de").
func NewRoadFetcher(baseURL, userAgent string, timeout time.Duration) *RoadFetcher {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &RoadFetcher{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

type overpassResponse struct {
	Elements []struct {
		Tags     map[string]string `json:"tags"`
		Geometry []struct {
			Lon float64 `json:"lon"`
			Lat float64 `json:"lat"`
		} `json:"geometry"`
	} `json:"elements"`
}

// FetchNearby returns every OSM way tagged highway within radiusM meters of
// at, in the order the server reports them. Ways with fewer than two
// vertices are dropped: they carry no usable geometry.
func (f *RoadFetcher) FetchNearby(ctx context.Context, at LonLat, radiusM int) ([]Road, error) {
	query := fmt.Sprintf(`[out:json][timeout:25];
way(around:%d,%f,%f)[highway];
out geom;`, radiusM, at.Lat, at.Lon)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		f.baseURL+"/api/interpreter", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	var parsed overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode overpass response: %w", err)
	}

	roads := make([]Road, 0, len(parsed.Elements))
	for _, el := range parsed.Elements {
		if len(el.Geometry) < 2 {
			continue
		}
		pts := make([]LonLat, 0, len(el.Geometry))
		for _, g := range el.Geometry {
			pts = append(pts, LonLat{Lon: g.Lon, Lat: g.Lat})
		}
		roads = append(roads, Road{Name: el.Tags["name"], Points: pts})
	}

	return roads, nil
}
