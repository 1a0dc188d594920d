package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"waypoints-api/internal/directory"
	"waypoints-api/internal/geo"
	"waypoints-api/internal/gps"
	"waypoints-api/internal/gpscache"
	"waypoints-api/internal/logger"
	"waypoints-api/internal/models"
	"waypoints-api/internal/poller"
	"waypoints-api/internal/store"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	File   string `short:"f" long:"file"   env:"LOCATIONS_FILE"   description:"Path to the CSV or YAML locations file" default:"data/locations.csv"`
	Source string `short:"s" long:"source" env:"LOCATIONS_SOURCE" description:"File format, inferred from the extension when empty" choice:"csv" choice:"yaml"`
	Lat    string `long:"lat"              description:"DMS latitude for the nearest-location demo" default:"364500S"`
	Lon    string `long:"lon"              description:"DMS longitude for the nearest-location demo" default:"1441600E"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()
	ctx := context.Background()

	loader, err := store.LoaderFor(opts.Source, opts.File)
	if err != nil {
		log.Fatal().Err(err).Msg("Unsupported locations file")
	}
	st, err := store.Load(ctx, loader, true)
	if err != nil {
		log.Fatal().Err(err).Str("file", opts.File).Msg("Failed to load locations")
	}

	dir := directory.New(st, log.Logger)
	log.Info().Int("count", dir.Count()).Msg("Locations loaded")

	demoSearch(dir)
	demoFirstLocations(dir, 20)
	demoDetails(dir, "jpp")
	demoNearestDMS(dir, opts.Lat, opts.Lon)
	demoNearest(dir, -33.9399, 151.1753)
	demoBearing(dir)
	demoGPS(ctx)
}

func logLocation(ev *zerolog.Event, loc *models.Location) *zerolog.Event {
	ev = ev.Str("name", loc.Name).Str("code", loc.Code)
	if loc.State != nil {
		return ev.Str("state", *loc.State)
	}
	return ev.Str("state", "N/A")
}

func demoSearch(dir *directory.Directory) {
	searches := []struct {
		query  string
		byCode bool
	}{
		{"J", false},
		{"JP", true},
		{"JPP", true},
	}

	for _, s := range searches {
		var found []*models.Location
		if s.byCode {
			found = dir.FindByNameOrCode(s.query)
		} else {
			found = dir.FindByName(s.query)
		}

		if len(found) == 0 {
			log.Error().Str("query", s.query).Msg("No locations found")
			continue
		}
		log.Info().Str("query", s.query).Int("count", len(found)).Msg("Search results")
		for i, loc := range found[:min(3, len(found))] {
			logLocation(log.Info(), loc).Int("rank", i+1).Msg("Match")
		}
	}
}

func demoFirstLocations(dir *directory.Directory, n int) {
	for i := range min(n, dir.Count()) {
		loc := dir.At(i)
		log.Info().Int("index", i).Str("name", loc.Name).Str("code", loc.Code).Msg("Location")
	}
}

func demoDetails(dir *directory.Directory, query string) {
	found := dir.FindByNameOrCode(query)
	if len(found) == 0 {
		log.Error().Str("query", query).Msg("No locations found")
		return
	}

	for _, loc := range found {
		logLocation(log.Info(), loc).
			Str("decimal", dir.FormatCoordinates(loc, geo.Decimal)).
			Str("dms", dir.FormatCoordinates(loc, geo.DMS)).
			Msg("Location details")
	}
}

func demoNearestDMS(dir *directory.Directory, latDMS, lonDMS string) {
	lat, err := dir.DMSToDecimal(latDMS)
	if err != nil {
		return
	}
	lon, err := dir.DMSToDecimal(lonDMS)
	if err != nil {
		return
	}
	log.Debug().Float64("lat", lat).Float64("lon", lon).Msg("Converted DMS")

	demoNearest(dir, lat, lon)

	nearest, err := dir.FindNNearest(lat, lon, 5)
	if err != nil || len(nearest) == 0 {
		log.Error().Err(err).Msg("No nearby locations found")
		return
	}
	for i, loc := range nearest {
		logLocation(log.Info(), loc).
			Int("rank", i+1).
			Str("distance", formatKm(dir.CalculateDistance(lat, lon, loc.Latitude, loc.Longitude))).
			Str("coordinates", dir.FormatCoordinates(loc, geo.Decimal)).
			Msg("Nearby location")
	}
}

func demoNearest(dir *directory.Directory, lat, lon float64) {
	loc, ok := dir.FindNearest(lat, lon)
	if !ok {
		log.Error().Msg("No nearest location found")
		return
	}

	logLocation(log.Info(), loc).
		Str("distance", formatKm(dir.CalculateDistance(lat, lon, loc.Latitude, loc.Longitude))).
		Str("coordinates", dir.FormatCoordinates(loc, geo.Decimal)).
		Msg("Nearest location")
}

func demoBearing(dir *directory.Directory) {
	const (
		sydneyLat, sydneyLon     = -33.8667, 151.2089
		brisbaneLat, brisbaneLon = -27.4698, 153.0251
	)

	log.Info().
		Float64("bearing", dir.CalculateBearing(sydneyLat, sydneyLon, brisbaneLat, brisbaneLon)).
		Str("distance", formatKm(dir.CalculateDistance(sydneyLat, sydneyLon, brisbaneLat, brisbaneLon))).
		Msg("Sydney to Brisbane")
}

func demoGPS(ctx context.Context) {
	cache := gpscache.New(log.Logger)
	receiver := gps.NewSimulator(gps.SimulatorConfig{
		Latitude:    -33.9399,
		Longitude:   151.1753,
		Altitude:    6,
		GroundSpeed: 120,
		Heading:     14,
	})

	p := poller.New(receiver, cache, poller.Config{WriteTimeout: time.Second}, log.Logger)
	if err := p.PollOnce(ctx); err != nil {
		log.Error().Err(err).Msg("GPS poll failed")
		return
	}

	pos := cache.Read()
	log.Info().
		Str("state", cache.State().String()).
		Str("position", geo.FormatCoordinates(pos.Latitude, pos.Longitude, geo.Decimal)).
		Float64("altitude_m", pos.Altitude).
		Float64("ground_speed_kt", pos.GroundSpeed).
		Float64("heading_deg", pos.Heading).
		Msg("Current GPS position")
}

func formatKm(km float64) string {
	return fmt.Sprintf("%.2f km", km)
}
