//go:build integration

package repository

import (
	"context"
	"testing"

	"waypoints-api/internal/models"
	"waypoints-api/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	// Start PostgreSQL container with PostGIS
	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	// Connect to database
	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	// Create test schema
	_, err = pool.Exec(ctx, CreateTableSQL(DefaultTable))
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
		-- Insert test data
		INSERT INTO waypoints (name, code, state, geom) VALUES
		('Jump Point', 'JPP', 'VIC', ST_SetSRID(ST_MakePoint(144.2667, -36.75), 4326)),
		('Sydney', 'YSSY', NULL, ST_SetSRID(ST_MakePoint(151.1772, -33.9461), 4326)),
		('Unnamed Strip', '', '', ST_SetSRID(ST_MakePoint(145.725, -35.3667), 4326));
	`)
	require.NoError(t, err)

	return pool
}

func TestPostgresRepository_LoadLocations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool, DefaultTable)
	ctx := context.Background()

	locations, err := repo.LoadLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 3)

	vic := "VIC"
	empty := ""
	assert.Equal(t, models.Location{Name: "Jump Point", Code: "JPP", State: &vic, Latitude: -36.75, Longitude: 144.2667}, locations[0])
	assert.Equal(t, "Sydney", locations[1].Name)
	assert.Nil(t, locations[1].State)
	assert.Equal(t, &empty, locations[2].State)

	s, err := store.Load(ctx, repo, true)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
}

func TestPostgresRepository_MissingTable(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool, "missing")

	_, err := repo.LoadLocations(context.Background())
	assert.Error(t, err)
}
