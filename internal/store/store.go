// Package store holds the immutable, ordered set of location records searched by the directory.
package store

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"

	"waypoints-api/internal/models"
)

// ErrNoRecords is returned by Load when records are required but the loader produced none.
var ErrNoRecords = errors.New("store: loader returned no records")

// Loader supplies the initial ordered set of locations.
type Loader interface {
	LoadLocations(ctx context.Context) ([]models.Location, error)
}

// Store owns the location records in load order. It is never mutated after New returns,
// so it can be shared between goroutines without locking.
type Store struct {
	records []models.Location
}

// New copies records into a new store.
func New(records []models.Location) *Store {
	return &Store{records: slices.Clone(records)}
}

// Load runs the loader once and wraps its result.
func Load(ctx context.Context, loader Loader, required bool) (*Store, error) {
	records, err := loader.LoadLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: failed to load locations: %w", err)
	}
	if required && len(records) == 0 {
		return nil, ErrNoRecords
	}
	return New(records), nil
}

// Len returns the number of records. A nil store is empty.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// At returns a reference to the i-th record in load order.
func (s *Store) At(i int) *models.Location {
	return &s.records[i]
}

// All yields every record in load order with its index.
func (s *Store) All() iter.Seq2[int, *models.Location] {
	return func(yield func(int, *models.Location) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, &s.records[i]) {
				return
			}
		}
	}
}
