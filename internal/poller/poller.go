// Package poller copies GPS receiver readings into the position cache on a fixed interval.
package poller

import (
	"context"
	"fmt"
	"time"

	"waypoints-api/internal/gps"
	"waypoints-api/internal/models"

	"github.com/rs/zerolog"
)

// DefaultInterval is the poll period used when Config.Interval is zero.
const DefaultInterval = 10 * time.Second

// PositionWriter is the write side of the position cache.
type PositionWriter interface {
	Update(ctx context.Context, p models.Position) error
}

// Sink receives every snapshot after it has been written to the cache.
type Sink interface {
	PublishPosition(ctx context.Context, p models.Position) error
}

// Config controls poll timing.
type Config struct {
	Interval       time.Duration
	WriteTimeout   time.Duration
	PublishTimeout time.Duration // per sink, per snapshot
}

// Poller is the only writer of the position cache.
type Poller struct {
	receiver gps.Receiver
	cache    PositionWriter
	sinks    []Sink
	cfg      Config
	log      zerolog.Logger
	now      func() time.Time
}

// DefaultPublishTimeout bounds each sink call when Config.PublishTimeout is zero.
const DefaultPublishTimeout = 2 * time.Second

// New creates a poller. Zero durations fall back to DefaultInterval, one second
// and DefaultPublishTimeout.
func New(receiver gps.Receiver, cache PositionWriter, cfg Config, log zerolog.Logger, sinks ...Sink) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = time.Second
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = DefaultPublishTimeout
	}

	return &Poller{
		receiver: receiver,
		cache:    cache,
		sinks:    sinks,
		cfg:      cfg,
		log:      log.With().Str("component", "poller").Logger(),
		now:      time.Now,
	}
}

// PollOnce refreshes the receiver and writes one snapshot. A receiver or cache failure
// skips the cycle and leaves the previous snapshot in place.
func (p *Poller) PollOnce(ctx context.Context) error {
	if err := p.receiver.Update(); err != nil {
		p.log.Error().Err(err).Msg("GPS update failed")
		return fmt.Errorf("poller: receiver update: %w", err)
	}

	pos := models.Position{
		Latitude:    p.receiver.Latitude(),
		Longitude:   p.receiver.Longitude(),
		Altitude:    p.receiver.Altitude(),
		GroundSpeed: p.receiver.GroundSpeed(),
		Heading:     p.receiver.Heading(),
		Timestamp:   p.now().UTC(),
	}
	if fr, ok := p.receiver.(gps.FixReporter); ok {
		pos.FixValid = fr.HasFix()
	} else {
		pos.FixValid = pos.Latitude != 0 || pos.Longitude != 0
	}

	writeCtx, cancel := context.WithTimeout(ctx, p.cfg.WriteTimeout)
	err := p.cache.Update(writeCtx, pos)
	cancel()
	if err != nil {
		// The cache logs the skipped write.
		return fmt.Errorf("poller: cache update: %w", err)
	}

	if !pos.FixValid {
		p.log.Debug().Msg("GPS poll: no valid fix")
	}

	for _, sink := range p.sinks {
		publishCtx, cancel := context.WithTimeout(ctx, p.cfg.PublishTimeout)
		err := sink.PublishPosition(publishCtx, pos)
		cancel()
		if err != nil {
			p.log.Warn().Err(err).Msg("Failed to publish position")
		}
	}

	return nil
}

// Run polls immediately and then on every interval until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info().Dur("interval", p.cfg.Interval).Msg("Starting GPS poller")

	_ = p.PollOnce(ctx)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info().Msg("Shutting down GPS poller")
			return nil
		case <-ticker.C:
			_ = p.PollOnce(ctx)
		}
	}
}
