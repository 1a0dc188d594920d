package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// ErrInvalidCoordinate is wrapped by ValidateLatLon.
var ErrInvalidCoordinate = errors.New("geo: invalid coordinate")

// Distance returns the great-circle distance in kilometers between two points
// given in decimal degrees, using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1, phi2 := toRadians(lat1), toRadians(lat2)
	deltaPhi := toRadians(lat2 - lat1)
	deltaLambda := toRadians(lon2 - lon1)

	sinPhi := math.Sin(deltaPhi / 2)
	sinLambda := math.Sin(deltaLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// rounding can push a past 1 for near-antipodal points
	a = math.Min(a, 1)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Bearing returns the initial great-circle bearing from point 1 to point 2
// in degrees within [0, 360), where 0 is true north and angles increase clockwise.
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	phi1, phi2 := toRadians(lat1), toRadians(lat2)
	deltaLambda := toRadians(lon2 - lon1)

	y := math.Sin(deltaLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(deltaLambda)

	return normalizeBearing(toDegrees(math.Atan2(y, x)))
}

// Destination returns the point reached by travelling distanceKm from the start
// point along the great circle with the given initial bearing.
func Destination(lat, lon, bearing, distanceKm float64) (float64, float64) {
	phi1, lambda1 := toRadians(lat), toRadians(lon)
	theta := toRadians(bearing)
	delta := distanceKm / EarthRadiusKm

	sinPhi2 := math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta)
	phi2 := math.Asin(math.Max(-1, math.Min(1, sinPhi2)))
	lambda2 := lambda1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi1),
		math.Cos(delta)-math.Sin(phi1)*sinPhi2,
	)

	return toDegrees(phi2), normalizeLongitude(toDegrees(lambda2))
}

// ValidateLatLon rejects non-finite or out-of-range decimal coordinates.
func ValidateLatLon(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidCoordinate, lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidCoordinate, lon)
	}
	return nil
}

func normalizeBearing(deg float64) float64 {
	deg = math.Mod(deg+360, 360)
	if deg >= 360 {
		deg = 0
	}
	return deg
}

func normalizeLongitude(deg float64) float64 {
	return math.Mod(deg+540, 360) - 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
