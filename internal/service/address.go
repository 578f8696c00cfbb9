package service

import (
	"context"
	"fmt"

	"github.com/danielflood/microburbs/internal/geo"
	"github.com/danielflood/microburbs/internal/geometry"
	"github.com/danielflood/microburbs/internal/orient"
)

// Geocoder resolves an address to a geographic coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (geo.LonLat, error)
}

// RoadFetcher retrieves road geometries near a coordinate.
type RoadFetcher interface {
	FetchNearby(ctx context.Context, at geo.LonLat, radiusM int) ([]geo.Road, error)
}

// AddressResult is the full outcome of the address workflow.
type AddressResult struct {
	Address   string     `json:"address"`
	Location  geo.LonLat `json:"location"`
	Bearing   float64    `json:"bearing"`
	Compass   string     `json:"compass"`
	RoadName  string     `json:"road_name,omitempty"`
	DistanceM float64    `json:"distance_m"`
}

// AddressService turns a street address into a facing estimate: geocode,
// fetch nearby roads, project everything into the metric plane, and take the
// bearing toward the nearest point on the nearest road.
type AddressService struct {
	geocoder Geocoder
	roads    RoadFetcher
	radiusM  int
}

// NewAddressService wires an AddressService. radiusM is the road search
// radius around the geocoded point.
func NewAddressService(g Geocoder, r RoadFetcher, radiusM int) *AddressService {
	return &AddressService{geocoder: g, roads: r, radiusM: radiusM}
}

// Orient runs the full address workflow. Road input order is preserved
// through projection and search, so equidistant roads resolve the same way
// on every run.
func (s *AddressService) Orient(ctx context.Context, address string) (*AddressResult, error) {
	loc, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", address, err)
	}

	nearby, err := s.roads.FetchNearby(ctx, loc, s.radiusM)
	if err != nil {
		return nil, fmt.Errorf("fetching roads near %q: %w", address, err)
	}
	if len(nearby) == 0 {
		return nil, fmt.Errorf("%w: no roads within %dm of %q", orient.ErrNoCandidates, s.radiusM, address)
	}

	p, err := geo.Project(loc)
	if err != nil {
		return nil, err
	}

	lines := make([]geometry.Polyline, 0, len(nearby))
	for _, road := range nearby {
		line, err := geo.ProjectLine(road.Points)
		if err != nil {
			return nil, fmt.Errorf("projecting road %q: %w", road.Name, err)
		}
		lines = append(lines, line)
	}

	res, err := orient.NearestRoad(p, lines)
	if err != nil {
		return nil, err
	}

	return &AddressResult{
		Address:   address,
		Location:  loc,
		Bearing:   res.Bearing,
		Compass:   res.Compass,
		RoadName:  nearby[res.RoadIdx].Name,
		DistanceM: res.Distance,
	}, nil
}
