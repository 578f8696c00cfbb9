package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/danielflood/microburbs/internal/geo"
	"github.com/danielflood/microburbs/internal/orient"
)

// MockGeocoder is a mock implementation of the Geocoder interface.
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (geo.LonLat, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(geo.LonLat), args.Error(1)
}

// MockRoadFetcher is a mock implementation of the RoadFetcher interface.
type MockRoadFetcher struct {
	mock.Mock
}

func (m *MockRoadFetcher) FetchNearby(ctx context.Context, at geo.LonLat, radiusM int) ([]geo.Road, error) {
	args := m.Called(ctx, at, radiusM)
	return args.Get(0).([]geo.Road), args.Error(1)
}

func TestAddressService_Orient(t *testing.T) {
	home := geo.LonLat{Lon: 144.99731, Lat: -37.87150}
	// A short east-west road a little north of the house. In the metric
	// plane its nearest point is due north of the geocoded location.
	road := geo.Road{
		Name: "Inkerman Street",
		Points: []geo.LonLat{
			{Lon: 144.99631, Lat: -37.87100},
			{Lon: 144.99831, Lat: -37.87100},
		},
	}

	mockGeo := new(MockGeocoder)
	mockRoads := new(MockRoadFetcher)
	mockGeo.On("Geocode", mock.Anything, "3 David St").Return(home, nil)
	mockRoads.On("FetchNearby", mock.Anything, home, 120).Return([]geo.Road{road}, nil)

	svc := NewAddressService(mockGeo, mockRoads, 120)
	res, err := svc.Orient(context.Background(), "3 David St")
	require.NoError(t, err)

	assert.Equal(t, "3 David St", res.Address)
	assert.Equal(t, home, res.Location)
	assert.Equal(t, "Inkerman Street", res.RoadName)
	assert.InDelta(t, 0, res.Bearing, 0.5)
	assert.Equal(t, "N", res.Compass)
	// ~0.0005 degrees of latitude is roughly 55 m; Mercator stretches
	// distances at this latitude by ~1/cos(37.87) = 1.27.
	assert.InDelta(t, 70, res.DistanceM, 5)

	mockGeo.AssertExpectations(t)
	mockRoads.AssertExpectations(t)
}

func TestAddressService_GeocodeFails(t *testing.T) {
	mockGeo := new(MockGeocoder)
	mockRoads := new(MockRoadFetcher)
	mockGeo.On("Geocode", mock.Anything, "nowhere").Return(geo.LonLat{}, geo.ErrAddressNotFound)

	svc := NewAddressService(mockGeo, mockRoads, 120)
	_, err := svc.Orient(context.Background(), "nowhere")
	assert.True(t, errors.Is(err, geo.ErrAddressNotFound), "got %v", err)
	mockRoads.AssertNotCalled(t, "FetchNearby", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddressService_NoRoads(t *testing.T) {
	home := geo.LonLat{Lon: 144.9, Lat: -37.8}
	mockGeo := new(MockGeocoder)
	mockRoads := new(MockRoadFetcher)
	mockGeo.On("Geocode", mock.Anything, "remote hut").Return(home, nil)
	mockRoads.On("FetchNearby", mock.Anything, home, 120).Return([]geo.Road{}, nil)

	svc := NewAddressService(mockGeo, mockRoads, 120)
	_, err := svc.Orient(context.Background(), "remote hut")
	assert.True(t, errors.Is(err, orient.ErrNoCandidates), "got %v", err)
}

func TestAddressService_FetchFails(t *testing.T) {
	home := geo.LonLat{Lon: 144.9, Lat: -37.8}
	mockGeo := new(MockGeocoder)
	mockRoads := new(MockRoadFetcher)
	mockGeo.On("Geocode", mock.Anything, "somewhere").Return(home, nil)
	mockRoads.On("FetchNearby", mock.Anything, home, 120).Return([]geo.Road{}, assert.AnError)

	svc := NewAddressService(mockGeo, mockRoads, 120)
	_, err := svc.Orient(context.Background(), "somewhere")
	assert.Error(t, err)
}

func TestAddressService_TieBreakIsStable(t *testing.T) {
	home := geo.LonLat{Lon: 0, Lat: 0}
	// Two identical-offset roads, one north and one south of the point.
	north := geo.Road{Name: "North Rd", Points: []geo.LonLat{
		{Lon: -0.001, Lat: 0.0005}, {Lon: 0.001, Lat: 0.0005},
	}}
	south := geo.Road{Name: "South Rd", Points: []geo.LonLat{
		{Lon: -0.001, Lat: -0.0005}, {Lon: 0.001, Lat: -0.0005},
	}}

	mockGeo := new(MockGeocoder)
	mockRoads := new(MockRoadFetcher)
	mockGeo.On("Geocode", mock.Anything, "tied").Return(home, nil)
	mockRoads.On("FetchNearby", mock.Anything, home, 120).Return([]geo.Road{north, south}, nil)

	svc := NewAddressService(mockGeo, mockRoads, 120)
	res, err := svc.Orient(context.Background(), "tied")
	require.NoError(t, err)
	assert.Equal(t, "North Rd", res.RoadName)
}
