package service

import (
	"context"
	"fmt"

	"waypoints-api/internal/geo"
	"waypoints-api/internal/models"
)

// NavigationService exposes point-to-point math independent of stored records
type NavigationService struct {
	calc Calculator
}

// Calculator interface for dependency injection
type Calculator interface {
	CalculateDistance(lat1, lon1, lat2, lon2 float64) float64
	CalculateBearing(lat1, lon1, lat2, lon2 float64) float64
	DMSToDecimal(dms string) (float64, error)
}

// NewNavigationService creates a new navigation service
func NewNavigationService(calc Calculator) *NavigationService {
	return &NavigationService{calc: calc}
}

// Course returns distance and initial bearing from point 1 to point 2
func (s *NavigationService) Course(ctx context.Context, lat1, lon1, lat2, lon2 float64) (models.Course, error) {
	if err := geo.ValidateLatLon(lat1, lon1); err != nil {
		return models.Course{}, fmt.Errorf("%w: %w", ErrInvalidCoordinates, err)
	}
	if err := geo.ValidateLatLon(lat2, lon2); err != nil {
		return models.Course{}, fmt.Errorf("%w: %w", ErrInvalidCoordinates, err)
	}

	return models.Course{
		DistanceKm: s.calc.CalculateDistance(lat1, lon1, lat2, lon2),
		BearingDeg: s.calc.CalculateBearing(lat1, lon1, lat2, lon2),
	}, nil
}

// ParseDMS converts a fixed-width DMS coordinate to decimal degrees
func (s *NavigationService) ParseDMS(ctx context.Context, value string) (float64, error) {
	if value == "" {
		return 0, ErrEmptyQuery
	}

	v, err := s.calc.DMSToDecimal(value)
	if err != nil {
		return 0, fmt.Errorf("service: %w", err)
	}
	return v, nil
}
