// Package gpscache holds the most recent own-ship position shared between the
// GPS poller and its readers.
package gpscache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"waypoints-api/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// ErrCacheAccess is returned by Update when the guard could not be acquired.
// The previous snapshot is kept.
var ErrCacheAccess = errors.New("gpscache: could not acquire position cache")

// State describes the cached fix.
type State int

const (
	Uninitialized State = iota
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Cache is a guarded own-ship snapshot. Readers always receive a complete copy
// of one Update; fields are never mixed between writes. The zero value is ready to use.
type Cache struct {
	once sync.Once
	sem  *semaphore.Weighted
	log  zerolog.Logger

	position models.Position
	written  bool
}

// New returns an initialized cache that logs skipped writes to log.
func New(log zerolog.Logger) *Cache {
	c := &Cache{log: log.With().Str("component", "gpscache").Logger()}
	c.Init()
	return c
}

// Init allocates the guard. It is idempotent and called by every other method.
func (c *Cache) Init() {
	c.once.Do(func() {
		c.sem = semaphore.NewWeighted(1)
	})
}

// Update replaces the whole snapshot. If the guard cannot be acquired before ctx is done
// the write is skipped and an error wrapping ErrCacheAccess is returned.
func (c *Cache) Update(ctx context.Context, p models.Position) error {
	c.Init()

	if err := c.sem.Acquire(ctx, 1); err != nil {
		c.log.Warn().Err(err).Msg("Position cache busy, keeping previous snapshot")
		return fmt.Errorf("%w: %w", ErrCacheAccess, err)
	}
	c.position = p
	c.written = true
	c.sem.Release(1)

	return nil
}

// Read returns a copy of the current snapshot.
func (c *Cache) Read() models.Position {
	p, _ := c.snapshot()
	return p
}

// State reports whether the cache holds a valid fix.
func (c *Cache) State() State {
	_, state := c.Snapshot()
	return state
}

// Snapshot returns the position and its state from a single guarded read.
func (c *Cache) Snapshot() (models.Position, State) {
	p, written := c.snapshot()
	switch {
	case !written:
		return p, Uninitialized
	case p.FixValid:
		return p, Valid
	default:
		return p, Invalid
	}
}

func (c *Cache) snapshot() (models.Position, bool) {
	c.Init()

	// Acquire only fails once its context is done.
	_ = c.sem.Acquire(context.Background(), 1)
	p, written := c.position, c.written
	c.sem.Release(1)

	return p, written
}
