package service

import (
	"context"
	"fmt"

	"waypoints-api/internal/geo"
	"waypoints-api/internal/models"
)

// NearestService answers nearest-location queries from a point or from own-ship
type NearestService struct {
	dir        NearestFinder
	ownship    PositionReader
	maxResults int
}

// NearestFinder interface for dependency injection
type NearestFinder interface {
	FindNNearest(lat, lon float64, n int) ([]*models.Location, error)
}

// PositionReader is the read side of the own-ship position cache
type PositionReader interface {
	Read() models.Position
}

// NewNearestService creates a new nearest service. maxResults <= 0 disables the cap.
func NewNearestService(dir NearestFinder, ownship PositionReader, maxResults int) *NearestService {
	return &NearestService{dir: dir, ownship: ownship, maxResults: maxResults}
}

// Nearest returns up to n legs to the locations closest to (lat, lon), nearest first
func (s *NearestService) Nearest(ctx context.Context, lat, lon float64, n int) ([]models.Leg, error) {
	if err := geo.ValidateLatLon(lat, lon); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCoordinates, err)
	}
	if n < 0 {
		return nil, ErrInvalidCount
	}
	if s.maxResults > 0 {
		n = min(n, s.maxResults)
	}

	locations, err := s.dir.FindNNearest(lat, lon, n)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest locations: %w", err)
	}

	legs := make([]models.Leg, len(locations))
	for i, loc := range locations {
		legs[i] = models.Leg{
			Location:   loc,
			DistanceKm: geo.Distance(lat, lon, loc.Latitude, loc.Longitude),
			BearingDeg: geo.Bearing(lat, lon, loc.Latitude, loc.Longitude),
		}
	}

	return legs, nil
}

// FromOwnship runs Nearest from the current own-ship position
func (s *NearestService) FromOwnship(ctx context.Context, n int) ([]models.Leg, error) {
	pos := s.ownship.Read()
	if !pos.FixValid {
		return nil, ErrNoFix
	}
	return s.Nearest(ctx, pos.Latitude, pos.Longitude, n)
}
