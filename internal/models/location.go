package models

// Location represents a single named aeronautical place loaded from the waypoint dataset.
// State is optional: nil means the source carried no region, which is distinct from an empty string.
type Location struct {
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	State     *string `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Leg is a location together with the great-circle distance and initial bearing from a reference point.
type Leg struct {
	Location   *Location `json:"location"`
	DistanceKm float64   `json:"distance_km"`
	BearingDeg float64   `json:"bearing_deg"`
}

// Course is the distance and initial bearing between two arbitrary points.
type Course struct {
	DistanceKm float64 `json:"distance_km"`
	BearingDeg float64 `json:"bearing_deg"`
}
