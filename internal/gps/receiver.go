// Package gps describes the positioning hardware consumed by the poller and
// provides a simulated receiver for builds without hardware.
package gps

import (
	"sync"
	"time"

	"waypoints-api/internal/geo"
)

const kmPerNauticalMile = 1.852

// Receiver is a positioning device. Update refreshes the internal reading;
// the accessors return the values of the last successful Update.
type Receiver interface {
	Update() error
	Latitude() float64
	Longitude() float64
	Altitude() float64    // meters
	GroundSpeed() float64 // knots
	Heading() float64     // degrees true
}

// FixReporter is implemented by receivers that know whether their reading is a valid fix.
type FixReporter interface {
	HasFix() bool
}

// SimulatorConfig is the starting state of a Simulator.
type SimulatorConfig struct {
	Latitude    float64
	Longitude   float64
	Altitude    float64
	GroundSpeed float64
	Heading     float64
}

// Simulator is a Receiver that flies a great-circle track from a start point at
// constant ground speed and heading.
type Simulator struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time

	lat, lon, alt, speed, heading float64
}

// NewSimulator returns a simulator positioned at cfg.
func NewSimulator(cfg SimulatorConfig) *Simulator {
	return newSimulator(cfg, time.Now)
}

func newSimulator(cfg SimulatorConfig, now func() time.Time) *Simulator {
	return &Simulator{
		now:     now,
		lat:     cfg.Latitude,
		lon:     cfg.Longitude,
		alt:     cfg.Altitude,
		speed:   cfg.GroundSpeed,
		heading: cfg.Heading,
	}
}

// Update advances the position by the time elapsed since the previous Update.
func (s *Simulator) Update() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.now()
	if !s.last.IsZero() && s.speed > 0 {
		hours := t.Sub(s.last).Hours()
		s.lat, s.lon = geo.Destination(s.lat, s.lon, s.heading, s.speed*kmPerNauticalMile*hours)
	}
	s.last = t

	return nil
}

func (s *Simulator) Latitude() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lat
}

func (s *Simulator) Longitude() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lon
}

func (s *Simulator) Altitude() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alt
}

func (s *Simulator) GroundSpeed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

func (s *Simulator) Heading() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heading
}

// HasFix reports a fix once the first Update has run.
func (s *Simulator) HasFix() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.last.IsZero()
}
