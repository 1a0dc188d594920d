package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"waypoints-api/internal/models"

	"gopkg.in/yaml.v3"
)

// YAMLLoader reads locations from a YAML document of the form
//
//	locations:
//	  - name: Jump Point
//	    code: JPP
//	    state: VIC
//	    latitude: 364500S
//	    longitude: 1441600E
type YAMLLoader struct {
	Path string
}

type yamlDocument struct {
	Locations []yamlLocation `yaml:"locations"`
}

type yamlLocation struct {
	Name      string         `yaml:"name"`
	Code      string         `yaml:"code"`
	State     *string        `yaml:"state"`
	Latitude  yamlCoordinate `yaml:"latitude"`
	Longitude yamlCoordinate `yaml:"longitude"`
}

// yamlCoordinate keeps the raw scalar so decimal and DMS values share one parser.
type yamlCoordinate string

func (c *yamlCoordinate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: coordinate must be a scalar", node.Line)
	}
	*c = yamlCoordinate(node.Value)
	return nil
}

// LoadLocations implements Loader.
func (l YAMLLoader) LoadLocations(ctx context.Context) ([]models.Location, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("store: failed to open file: %w", err)
	}
	defer file.Close()

	return ParseYAML(file)
}

// ParseYAML reads locations in document order. A missing state key is absent,
// while an explicit empty string is kept as an empty state.
func ParseYAML(r io.Reader) ([]models.Location, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlDocument
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("store: failed to decode yaml: %w", err)
	}

	locations := make([]models.Location, 0, len(doc.Locations))
	for i, l := range doc.Locations {
		if l.Name == "" {
			return nil, fmt.Errorf("store: location %d: empty name", i)
		}

		lat, lon, err := parseLatLon(string(l.Latitude), string(l.Longitude))
		if err != nil {
			return nil, fmt.Errorf("store: location %d (%s): %w", i, l.Name, err)
		}

		locations = append(locations, models.Location{
			Name:      l.Name,
			Code:      l.Code,
			State:     l.State,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return locations, nil
}
