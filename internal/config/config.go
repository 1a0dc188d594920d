package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	LocationsSource  string `mapstructure:"LOCATIONS_SOURCE"` // csv, yaml or postgres
	LocationsFile    string `mapstructure:"LOCATIONS_FILE"`
	LocationsTable   string `mapstructure:"LOCATIONS_TABLE"`
	RequireLocations bool   `mapstructure:"REQUIRE_LOCATIONS"`
	MaxResults       int    `mapstructure:"MAX_RESULTS"`

	GPSPollInterval      time.Duration `mapstructure:"GPS_POLL_INTERVAL"`
	GPSCacheWriteTimeout time.Duration `mapstructure:"GPS_CACHE_WRITE_TIMEOUT"`
	GPSPublishTimeout    time.Duration `mapstructure:"GPS_PUBLISH_TIMEOUT"`
	GPSSimLatitude       float64       `mapstructure:"GPS_SIM_LATITUDE"`
	GPSSimLongitude      float64       `mapstructure:"GPS_SIM_LONGITUDE"`
	GPSSimAltitude       float64       `mapstructure:"GPS_SIM_ALTITUDE"`
	GPSSimGroundSpeed    float64       `mapstructure:"GPS_SIM_GROUND_SPEED"`
	GPSSimHeading        float64       `mapstructure:"GPS_SIM_HEADING"`
	StreamInterval       time.Duration `mapstructure:"STREAM_INTERVAL"`

	KafkaBrokers []string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string   `mapstructure:"KAFKA_TOPIC"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var keys = []string{
	"DB_SOURCE", "SERVER_ADDRESS",
	"LOCATIONS_SOURCE", "LOCATIONS_FILE", "LOCATIONS_TABLE", "REQUIRE_LOCATIONS", "MAX_RESULTS",
	"GPS_POLL_INTERVAL", "GPS_CACHE_WRITE_TIMEOUT", "GPS_PUBLISH_TIMEOUT",
	"GPS_SIM_LATITUDE", "GPS_SIM_LONGITUDE", "GPS_SIM_ALTITUDE", "GPS_SIM_GROUND_SPEED", "GPS_SIM_HEADING",
	"STREAM_INTERVAL", "KAFKA_BROKERS", "KAFKA_TOPIC", "LOG_LEVEL", "LOG_FORMAT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("LOCATIONS_SOURCE", "csv")
	v.SetDefault("LOCATIONS_FILE", "data/locations.csv")
	v.SetDefault("LOCATIONS_TABLE", "waypoints")
	v.SetDefault("REQUIRE_LOCATIONS", true)
	v.SetDefault("MAX_RESULTS", 100)
	v.SetDefault("GPS_POLL_INTERVAL", 10*time.Second)
	v.SetDefault("GPS_CACHE_WRITE_TIMEOUT", time.Second)
	v.SetDefault("GPS_PUBLISH_TIMEOUT", 2*time.Second)
	v.SetDefault("GPS_SIM_LATITUDE", -33.9399)
	v.SetDefault("GPS_SIM_LONGITUDE", 151.1753)
	v.SetDefault("GPS_SIM_GROUND_SPEED", 0.0)
	v.SetDefault("STREAM_INTERVAL", time.Second)
	v.SetDefault("KAFKA_TOPIC", "ownship_positions")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}

// LoadConfig reads app.env from path and applies environment overrides.
// A missing file is not an error; defaults and the environment still apply.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	setDefaults(v)
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range keys {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	config.KafkaBrokers = splitList(config.KafkaBrokers)
	return
}

// splitList flattens comma-separated entries ("a:9092,b:9092").
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
