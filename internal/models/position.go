package models

import "time"

// Position is the own-ship snapshot written by the GPS poller.
type Position struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Altitude    float64   `json:"altitude"`     // meters
	GroundSpeed float64   `json:"ground_speed"` // knots
	Heading     float64   `json:"heading"`      // degrees true
	FixValid    bool      `json:"fix_valid"`
	Timestamp   time.Time `json:"timestamp"`
}
