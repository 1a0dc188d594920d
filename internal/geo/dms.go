// Package geo implements the coordinate math behind the waypoint directory:
// fixed-width DMS parsing and formatting, great-circle distance and bearing.
package geo

import (
	"fmt"
	"math"
	"strings"
)

// Fixed-width DMS encodings, hemisphere letter included.
const (
	latitudeDMSLength  = 7 // DDMMSSH
	longitudeDMSLength = 8 // DDDMMSSH
)

// CoordinateFormat selects how FormatCoordinates renders a position.
type CoordinateFormat int

const (
	// Decimal renders signed decimal degrees with six fractional digits.
	Decimal CoordinateFormat = iota
	// DMS renders the fixed-width degrees/minutes/seconds encoding accepted by ParseDMS.
	DMS
)

func (f CoordinateFormat) String() string {
	switch f {
	case Decimal:
		return "decimal"
	case DMS:
		return "dms"
	default:
		return fmt.Sprintf("CoordinateFormat(%d)", int(f))
	}
}

// ParseError reports a DMS string that cannot be converted to decimal degrees.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("geo: invalid DMS coordinate %q: %s", e.Input, e.Reason)
}

// ParseDMS converts a fixed-width DMS string to signed decimal degrees.
//
// Latitudes use two degree digits ("364500S"), longitudes three ("1441600E").
// The field width must agree with the hemisphere letter. S and W are negative.
func ParseDMS(text string) (float64, error) {
	s := strings.TrimSpace(text)

	var degDigits int
	var limit float64
	switch len(s) {
	case latitudeDMSLength:
		degDigits, limit = 2, 90
	case longitudeDMSLength:
		degDigits, limit = 3, 180
	default:
		return 0, &ParseError{
			Input:  text,
			Reason: fmt.Sprintf("expected %d or %d characters, got %d", latitudeDMSLength, longitudeDMSLength, len(s)),
		}
	}

	sign := 1.0
	switch hemisphere := s[len(s)-1] &^ 0x20; hemisphere {
	case 'N', 'S':
		if degDigits != 2 {
			return 0, &ParseError{Input: text, Reason: "latitude hemisphere on a longitude-width field"}
		}
		if hemisphere == 'S' {
			sign = -1
		}
	case 'E', 'W':
		if degDigits != 3 {
			return 0, &ParseError{Input: text, Reason: "longitude hemisphere on a latitude-width field"}
		}
		if hemisphere == 'W' {
			sign = -1
		}
	default:
		return 0, &ParseError{Input: text, Reason: fmt.Sprintf("unrecognized hemisphere %q", s[len(s)-1])}
	}

	digits := s[:len(s)-1]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, &ParseError{Input: text, Reason: fmt.Sprintf("non-digit character at position %d", i)}
		}
	}

	deg := atoi(digits[:degDigits])
	min := atoi(digits[degDigits : degDigits+2])
	sec := atoi(digits[degDigits+2:])

	if min >= 60 {
		return 0, &ParseError{Input: text, Reason: fmt.Sprintf("minutes out of range: %d", min)}
	}
	if sec >= 60 {
		return 0, &ParseError{Input: text, Reason: fmt.Sprintf("seconds out of range: %d", sec)}
	}

	value := float64(deg) + float64(min)/60 + float64(sec)/3600
	if value > limit {
		return 0, &ParseError{Input: text, Reason: fmt.Sprintf("value exceeds %.0f degrees", limit)}
	}

	return sign * value, nil
}

// atoi assumes s holds only ASCII digits.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// FormatCoordinates renders a latitude/longitude pair as "lat, lon".
func FormatCoordinates(lat, lon float64, format CoordinateFormat) string {
	if format == DMS {
		return FormatLatitudeDMS(lat) + ", " + FormatLongitudeDMS(lon)
	}
	return fmt.Sprintf("%.6f, %.6f", lat, lon)
}

// FormatLatitudeDMS renders a latitude as DDMMSSH, rounded to the nearest arc-second.
// NaN and infinities render as "NaN", "+Inf" and "-Inf".
func FormatLatitudeDMS(lat float64) string {
	return formatDMS(lat, 2, 'N', 'S')
}

// FormatLongitudeDMS renders a longitude as DDDMMSSH, rounded to the nearest arc-second.
func FormatLongitudeDMS(lon float64) string {
	return formatDMS(lon, 3, 'E', 'W')
}

func formatDMS(v float64, width int, pos, neg byte) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}

	hemisphere := pos
	if v < 0 {
		hemisphere = neg
		v = -v
	}

	// Rounding on total seconds carries into minutes and degrees.
	total := int(math.Round(v * 3600))
	return fmt.Sprintf("%0*d%02d%02d%c", width, total/3600, total%3600/60, total%60, hemisphere)
}
