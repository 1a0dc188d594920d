package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waypoints-api/docs"
	"waypoints-api/internal/config"
	"waypoints-api/internal/directory"
	"waypoints-api/internal/gps"
	"waypoints-api/internal/gpscache"
	"waypoints-api/internal/handler"
	"waypoints-api/internal/kafka"
	"waypoints-api/internal/logger"
	"waypoints-api/internal/poller"
	"waypoints-api/internal/repository"
	"waypoints-api/internal/service"
	"waypoints-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

// main wires the waypoint directory, the GPS poller and the HTTP API.
//
//	@title			Waypoints API
//	@version		1.0
//	@description	Waypoint directory search, nearest-location and own-ship navigation API.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger.Logger{Level: config.LogLevel, Format: config.LogFormat}.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader, closeLoader, err := newLoader(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open locations source")
	}
	defer closeLoader()

	st, err := store.Load(ctx, loader, config.RequireLocations)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load locations")
	}
	log.Info().Int("count", st.Len()).Str("source", config.LocationsSource).Msg("Loaded locations")

	// Initialize layers
	dir := directory.New(st, log.Logger)
	cache := gpscache.New(log.Logger)

	receiver := gps.NewSimulator(gps.SimulatorConfig{
		Latitude:    config.GPSSimLatitude,
		Longitude:   config.GPSSimLongitude,
		Altitude:    config.GPSSimAltitude,
		GroundSpeed: config.GPSSimGroundSpeed,
		Heading:     config.GPSSimHeading,
	})

	var sinks []poller.Sink
	if len(config.KafkaBrokers) > 0 {
		if err := kafka.EnsureTopic(config.KafkaBrokers[0], config.KafkaTopic, 1, 1); err != nil {
			log.Warn().Err(err).Str("topic", config.KafkaTopic).Msg("cannot ensure kafka topic")
		}
		publisher := kafka.NewPositionPublisher(config.KafkaBrokers, config.KafkaTopic)
		defer publisher.Close()
		sinks = append(sinks, publisher)
	}

	gpsPoller := poller.New(receiver, cache, poller.Config{
		Interval:       config.GPSPollInterval,
		WriteTimeout:   config.GPSCacheWriteTimeout,
		PublishTimeout: config.GPSPublishTimeout,
	}, log.Logger, sinks...)

	searchService := service.NewSearchService(dir, config.MaxResults)
	nearestService := service.NewNearestService(dir, cache, config.MaxResults)
	navigationService := service.NewNavigationService(dir)

	locationsHandler := handler.NewLocationsHandler(searchService, nearestService)
	navigationHandler := handler.NewNavigationHandler(navigationService)
	ownshipHandler := handler.NewOwnshipHandler(cache, config.StreamInterval, log.Logger)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		_, gpsState := cache.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"locations": dir.Count(),
			"gps":       gpsState.String(),
		})
	})

	r.GET("/locations", locationsHandler.Search)
	r.GET("/locations/nearest", locationsHandler.Nearest)
	r.GET("/navigation/leg", navigationHandler.Leg)
	r.GET("/navigation/dms", navigationHandler.DMS)
	r.GET("/ownship", ownshipHandler.Position)
	r.GET("/ownship/nearest", locationsHandler.OwnshipNearest)
	r.GET("/ownship/stream", ownshipHandler.Stream)

	docs.SwaggerInfo.Host = config.ServerAddress
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{Addr: config.ServerAddress, Handler: r}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return gpsPoller.Run(gctx)
	})
	g.Go(func() error {
		log.Info().Str("addr", config.ServerAddress).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("Shutdown complete")
}

// newLoader opens the configured location source. The returned func releases it.
func newLoader(ctx context.Context, config config.Config) (store.Loader, func(), error) {
	if config.LocationsSource != "postgres" {
		loader, err := store.LoaderFor(config.LocationsSource, config.LocationsFile)
		return loader, func() {}, err
	}

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("table", config.LocationsTable).Msg("Loading locations from postgres")

	return repository.NewRepository(conn, config.LocationsTable), conn.Close, nil
}

