package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocoder_Geocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "3 David St, St Kilda East VIC 3183", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lon":"144.99731","lat":"-37.87150","display_name":"3 David Street"}]`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, "", 5*time.Second)
	loc, err := g.Geocode(context.Background(), "3 David St, St Kilda East VIC 3183")
	require.NoError(t, err)
	assert.InDelta(t, 144.99731, loc.Lon, 1e-9)
	assert.InDelta(t, -37.87150, loc.Lat, 1e-9)
}

func TestGeocoder_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, "", 5*time.Second)
	_, err := g.Geocode(context.Background(), "nowhere at all")
	assert.True(t, errors.Is(err, ErrAddressNotFound), "got %v", err)
}

func TestGeocoder_EmptyAddress(t *testing.T) {
	g := NewGeocoder("http://unused.invalid", "", time.Second)
	_, err := g.Geocode(context.Background(), "")
	assert.True(t, errors.Is(err, ErrAddressNotFound), "got %v", err)
}

func TestGeocoder_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, "", 5*time.Second)
	_, err := g.Geocode(context.Background(), "somewhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGeocoder_BadCoordinate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lon":"not-a-number","lat":"0"}]`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, "", 5*time.Second)
	_, err := g.Geocode(context.Background(), "somewhere")
	assert.Error(t, err)
}

func TestRoadFetcher_FetchNearby(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/interpreter", r.URL.Path)
		require.NoError(t, r.ParseForm())
		query := r.PostForm.Get("data")
		assert.Contains(t, query, "way(around:120,")
		assert.Contains(t, query, "[highway]")
		assert.Contains(t, query, "out geom;")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements":[
			{"tags":{"name":"Inkerman Street","highway":"residential"},
			 "geometry":[{"lon":144.996,"lat":-37.871},{"lon":144.998,"lat":-37.871}]},
			{"tags":{"highway":"service"},
			 "geometry":[{"lon":144.997,"lat":-37.872}]},
			{"tags":{"highway":"footway"},
			 "geometry":[{"lon":144.995,"lat":-37.870},{"lon":144.995,"lat":-37.872},{"lon":144.996,"lat":-37.873}]}
		]}`))
	}))
	defer srv.Close()

	f := NewRoadFetcher(srv.URL, "", 5*time.Second)
	roads, err := f.FetchNearby(context.Background(), LonLat{Lon: 144.997, Lat: -37.8715}, 120)
	require.NoError(t, err)

	// The single-vertex way is dropped; order is preserved otherwise.
	require.Len(t, roads, 2)
	assert.Equal(t, "Inkerman Street", roads[0].Name)
	assert.Len(t, roads[0].Points, 2)
	assert.Empty(t, roads[1].Name)
	assert.Len(t, roads[1].Points, 3)
	assert.InDelta(t, 144.996, roads[0].Points[0].Lon, 1e-9)
}

func TestRoadFetcher_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	f := NewRoadFetcher(srv.URL, "", 5*time.Second)
	_, err := f.FetchNearby(context.Background(), LonLat{}, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "504")
}

func TestRoadFetcher_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"elements":[]}`))
	}))
	defer srv.Close()

	f := NewRoadFetcher(srv.URL, "", 5*time.Second)
	roads, err := f.FetchNearby(context.Background(), LonLat{}, 100)
	require.NoError(t, err)
	assert.Empty(t, roads)
}
