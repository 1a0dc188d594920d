// Package directory implements name/code lookup and nearest-neighbour queries
// over the immutable location store.
//
// A Directory is read-only after New returns and may be queried from any number
// of goroutines without additional locking.
package directory

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"waypoints-api/internal/geo"
	"waypoints-api/internal/models"
	"waypoints-api/internal/store"

	"github.com/rs/zerolog"
)

// ErrNegativeCount is returned by FindNNearest for n < 0.
var ErrNegativeCount = errors.New("directory: result count must not be negative")

// Directory is a query facade over a store.Store. Results are references into the
// store; they stay valid for as long as the store is reachable.
type Directory struct {
	store *store.Store
	log   zerolog.Logger

	// lowercase names and codes, indexed like the store
	names []string
	codes []string
}

// New builds the search index for s.
func New(s *store.Store, log zerolog.Logger) *Directory {
	d := &Directory{
		store: s,
		log:   log.With().Str("component", "directory").Logger(),
		names: make([]string, s.Len()),
		codes: make([]string, s.Len()),
	}

	for i, loc := range s.All() {
		d.names[i] = strings.ToLower(loc.Name)
		d.codes[i] = strings.ToLower(loc.Code)
	}

	d.log.Info().Int("locations", s.Len()).Msg("Locations directory ready")
	return d
}

// Count returns the number of records in the underlying store.
func (d *Directory) Count() int {
	return d.store.Len()
}

// At returns the i-th record in store order.
func (d *Directory) At(i int) *models.Location {
	return d.store.At(i)
}

// FindByName returns records whose name starts with prefix, case-insensitively, in store order.
// An empty prefix matches nothing.
func (d *Directory) FindByName(prefix string) []*models.Location {
	return d.match(prefix, false)
}

// FindByNameOrCode returns records whose name or code starts with query, case-insensitively,
// in store order. A record matching on both fields appears once. An empty query matches nothing.
func (d *Directory) FindByNameOrCode(query string) []*models.Location {
	return d.match(query, true)
}

func (d *Directory) match(query string, withCode bool) []*models.Location {
	results := []*models.Location{}
	if query == "" {
		return results
	}

	q := strings.ToLower(query)
	for i := range d.names {
		if strings.HasPrefix(d.names[i], q) || (withCode && d.codes[i] != "" && strings.HasPrefix(d.codes[i], q)) {
			results = append(results, d.store.At(i))
		}
	}

	d.log.Debug().
		Str("query", query).
		Bool("with_code", withCode).
		Int("matches", len(results)).
		Msg("Prefix search")

	return results
}

// FindNearest returns the record closest to (lat, lon). Ties go to the earliest record.
// The second result is false when the store is empty or the query point is NaN or infinite.
func (d *Directory) FindNearest(lat, lon float64) (*models.Location, bool) {
	if !finite(lat, lon) {
		d.log.Warn().Float64("lat", lat).Float64("lon", lon).Msg("Nearest query with non-finite point")
		return nil, false
	}

	best := -1
	bestDistance := 0.0

	for i, loc := range d.store.All() {
		dist := geo.Distance(lat, lon, loc.Latitude, loc.Longitude)
		if best < 0 || dist < bestDistance {
			best, bestDistance = i, dist
		}
	}

	if best < 0 {
		return nil, false
	}
	return d.store.At(best), true
}

// FindNNearest returns up to n records sorted by ascending distance from (lat, lon).
// Equal distances keep store order. n larger than the store returns every record.
func (d *Directory) FindNNearest(lat, lon float64, n int) ([]*models.Location, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if !finite(lat, lon) {
		return nil, fmt.Errorf("directory: %w: non-finite query point (%v, %v)", geo.ErrInvalidCoordinate, lat, lon)
	}

	type candidate struct {
		index    int
		distance float64
	}

	candidates := make([]candidate, 0, d.store.Len())
	for i, loc := range d.store.All() {
		candidates = append(candidates, candidate{
			index:    i,
			distance: geo.Distance(lat, lon, loc.Latitude, loc.Longitude),
		})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.distance, b.distance)
	})

	n = min(n, len(candidates))
	results := make([]*models.Location, n)
	for i := range n {
		results[i] = d.store.At(candidates[i].index)
	}

	return results, nil
}

// CalculateDistance returns the great-circle distance in kilometers between two points.
func (d *Directory) CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.Distance(lat1, lon1, lat2, lon2)
}

// CalculateBearing returns the initial bearing in degrees from point 1 to point 2.
func (d *Directory) CalculateBearing(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.Bearing(lat1, lon1, lat2, lon2)
}

// DMSToDecimal parses a fixed-width DMS coordinate.
func (d *Directory) DMSToDecimal(dms string) (float64, error) {
	v, err := geo.ParseDMS(dms)
	if err != nil {
		d.log.Error().Err(err).Msg("DMS conversion failed")
		return 0, err
	}
	return v, nil
}

// FormatCoordinates renders the position of loc.
func (d *Directory) FormatCoordinates(loc *models.Location, format geo.CoordinateFormat) string {
	return geo.FormatCoordinates(loc.Latitude, loc.Longitude, format)
}

func finite(lat, lon float64) bool {
	return !math.IsNaN(lat) && !math.IsInf(lat, 0) && !math.IsNaN(lon) && !math.IsInf(lon, 0)
}
