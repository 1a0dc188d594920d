package main

import (
	"context"
	"fmt"
	"os"

	"waypoints-api/internal/logger"
	"waypoints-api/internal/models"
	"waypoints-api/internal/repository"
	"waypoints-api/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	File     string `short:"f" long:"file"     env:"LOCATIONS_FILE"   description:"Path to the CSV or YAML file to import" required:"true"`
	Source   string `short:"s" long:"source"   env:"LOCATIONS_SOURCE" description:"File format, inferred from the extension when empty" choice:"csv" choice:"yaml"`
	DBSource string `short:"d" long:"db"       env:"DB_SOURCE"        description:"PostgreSQL connection string" required:"true"`
	Table    string `short:"t" long:"table"    env:"LOCATIONS_TABLE"  description:"Destination table" default:"waypoints"`
	Truncate bool   `long:"truncate"           description:"Remove existing rows before importing"`
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

	log.Info().Str("file", opts.File).Msg("Starting import")

	loader, err := store.LoaderFor(opts.Source, opts.File)
	if err != nil {
		log.Fatal().Err(err).Msg("Unsupported input")
	}
	records, err := loader.LoadLocations(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Error parsing input")
	}
	log.Info().Int("count", len(records)).Msg("Parsed records")

	// Connect to DB
	conn, err := pgx.Connect(ctx, opts.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}
	defer conn.Close(ctx)

	// Ensure table exists
	if _, err := conn.Exec(ctx, repository.CreateTableSQL(opts.Table)); err != nil {
		log.Fatal().Err(err).Msg("Error creating table")
	}

	before := 0
	if opts.Truncate {
		if _, err := conn.Exec(ctx, "TRUNCATE "+pgx.Identifier{opts.Table}.Sanitize()+" RESTART IDENTITY"); err != nil {
			log.Fatal().Err(err).Msg("Error truncating table")
		}
	} else if before, err = countRecords(ctx, conn, opts.Table); err != nil {
		log.Fatal().Err(err).Msg("Error counting existing records")
	}

	if err := insertRecords(ctx, conn, opts.Table, records); err != nil {
		log.Fatal().Err(err).Msg("Error inserting records")
	}

	// Verify data
	if err := verifyImport(ctx, conn, opts.Table, before+len(records)); err != nil {
		log.Fatal().Err(err).Msg("Error verifying import")
	}

	log.Info().Int("count", len(records)).Str("table", opts.Table).Msg("Successfully imported records")
}

// insertRecords bulk-loads records in file order so the id column preserves it.
func insertRecords(ctx context.Context, conn *pgx.Conn, table string, records []models.Location) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		ctx,
		pgx.Identifier{table},
		[]string{"name", "code", "state", "geom"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", r.Longitude, r.Latitude) // PostGIS format: lon lat
			return []interface{}{r.Name, r.Code, r.State, geom}, nil
		}),
	)
	return err
}

func countRecords(ctx context.Context, conn *pgx.Conn, table string) (int, error) {
	var count int
	err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&count)
	return count, err
}

func verifyImport(ctx context.Context, conn *pgx.Conn, table string, expectedCount int) error {
	count, err := countRecords(ctx, conn, table)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	// Check a sample geom
	var geom string
	err = conn.QueryRow(ctx, "SELECT ST_AsText(geom) FROM "+pgx.Identifier{table}.Sanitize()+" ORDER BY id LIMIT 1").Scan(&geom)
	if err != nil {
		return fmt.Errorf("failed to check geom: %w", err)
	}

	log.Debug().Str("geom", geom).Msg("Sample geom")
	return nil
}
