package repository

import (
	"context"
	"fmt"

	"waypoints-api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// DefaultTable is the table written by the importer.
const DefaultTable = "waypoints"

// Repository loads the waypoint dataset from PostgreSQL
type Repository struct {
	db    *pgxpool.Pool
	table string
}

// NewRepository creates a new PostgreSQL repository reading from table
func NewRepository(db *pgxpool.Pool, table string) *Repository {
	if table == "" {
		table = DefaultTable
	}
	return &Repository{db: db, table: table}
}

// LoadLocations returns every waypoint in insertion order. It implements store.Loader.
func (r *Repository) LoadLocations(ctx context.Context) ([]models.Location, error) {
	sql := fmt.Sprintf(`
		SELECT
			name,
			code,
			state,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM %s
		ORDER BY id
	`, pq.QuoteIdentifier(r.table))

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute load query: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var loc models.Location
		err := rows.Scan(
			&loc.Name,
			&loc.Code,
			&loc.State,
			&loc.Latitude,
			&loc.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}
