package service

import (
	"context"
	"fmt"

	"waypoints-api/internal/models"
)

// SearchField selects which record fields a search matches.
type SearchField string

const (
	FieldName SearchField = "name"
	FieldAny  SearchField = "any" // name or code
)

// SearchService contains the business logic for name/code lookups
type SearchService struct {
	dir        LocationSearcher
	maxResults int
}

// LocationSearcher interface for dependency injection
type LocationSearcher interface {
	FindByName(prefix string) []*models.Location
	FindByNameOrCode(query string) []*models.Location
}

// NewSearchService creates a new search service. maxResults <= 0 disables the cap.
func NewSearchService(dir LocationSearcher, maxResults int) *SearchService {
	return &SearchService{dir: dir, maxResults: maxResults}
}

// Search returns locations whose name (or name or code) starts with query, in dataset order
func (s *SearchService) Search(ctx context.Context, query string, field SearchField) ([]*models.Location, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	var locations []*models.Location
	switch field {
	case FieldName:
		locations = s.dir.FindByName(query)
	case FieldAny, "":
		locations = s.dir.FindByNameOrCode(query)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	if s.maxResults > 0 && len(locations) > s.maxResults {
		locations = locations[:s.maxResults]
	}

	return locations, nil
}
