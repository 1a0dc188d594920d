package repository

import (
	"fmt"

	"github.com/lib/pq"
)

// CreateTableSQL returns the DDL for a waypoint table. State is nullable so an
// absent region survives a round trip.
func CreateTableSQL(table string) string {
	t := pq.QuoteIdentifier(table)
	idx := pq.QuoteIdentifier(table + "_geom_idx")
	return fmt.Sprintf(`
	CREATE EXTENSION IF NOT EXISTS postgis;
	CREATE TABLE IF NOT EXISTS %s (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		code VARCHAR(32) NOT NULL DEFAULT '',
		state VARCHAR(64),
		geom GEOGRAPHY(POINT, 4326) NOT NULL
	);
	CREATE INDEX IF NOT EXISTS %s ON %s USING GIST (geom);
	`, t, idx, t)
}
