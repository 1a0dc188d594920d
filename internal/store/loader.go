package store

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"waypoints-api/internal/geo"
)

// LoaderFor returns the file loader for source ("csv" or "yaml"). An empty source
// is inferred from the file extension.
func LoaderFor(source, path string) (Loader, error) {
	if source == "" {
		source = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	switch source {
	case "csv":
		return CSVLoader{Path: path}, nil
	case "yaml", "yml":
		return YAMLLoader{Path: path}, nil
	default:
		return nil, fmt.Errorf("store: unsupported locations source %q", source)
	}
}

// parseCoordinate accepts decimal degrees or a fixed-width DMS string.
func parseCoordinate(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if v, err := strconv.ParseFloat(value, 64); err == nil {
		return v, nil
	}
	return geo.ParseDMS(value)
}

func parseLatLon(lat, lon string) (float64, float64, error) {
	latitude, err := parseCoordinate(lat)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", lat, err)
	}

	longitude, err := parseCoordinate(lon)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", lon, err)
	}

	if err := geo.ValidateLatLon(latitude, longitude); err != nil {
		return 0, 0, err
	}

	return latitude, longitude, nil
}
