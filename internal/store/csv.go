package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"waypoints-api/internal/models"
)

// CSVLoader reads locations from a CSV file with a header row.
type CSVLoader struct {
	Path string
}

// LoadLocations implements Loader.
func (l CSVLoader) LoadLocations(ctx context.Context) ([]models.Location, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("store: failed to open file: %w", err)
	}
	defer file.Close()

	return ParseCSV(file)
}

type csvColumns struct {
	name, code, state, latitude, longitude int
}

func resolveColumns(header []string) (csvColumns, error) {
	cols := csvColumns{name: -1, code: -1, state: -1, latitude: -1, longitude: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			cols.name = i
		case "code":
			cols.code = i
		case "state":
			cols.state = i
		case "latitude", "lat":
			cols.latitude = i
		case "longitude", "lon", "lng":
			cols.longitude = i
		}
	}

	if cols.name < 0 || cols.latitude < 0 || cols.longitude < 0 {
		return cols, fmt.Errorf("store: header must contain name, latitude and longitude columns, got %v", header)
	}
	return cols, nil
}

// ParseCSV reads locations in file order. Columns are matched by header name;
// coordinates may be decimal degrees or DMS. An empty state cell is treated as absent.
func ParseCSV(r io.Reader) ([]models.Location, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []models.Location{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: failed to read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	field := func(record []string, i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	locations := []models.Location{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("store: failed to read record: %w", err)
		}
		line, _ := reader.FieldPos(0)

		name := field(record, cols.name)
		if name == "" {
			return nil, fmt.Errorf("store: line %d: empty name", line)
		}

		lat, lon, err := parseLatLon(field(record, cols.latitude), field(record, cols.longitude))
		if err != nil {
			return nil, fmt.Errorf("store: line %d: %w", line, err)
		}

		loc := models.Location{
			Name:      name,
			Code:      field(record, cols.code),
			Latitude:  lat,
			Longitude: lon,
		}
		if state := field(record, cols.state); state != "" {
			loc.State = &state
		}

		locations = append(locations, loc)
	}

	return locations, nil
}
