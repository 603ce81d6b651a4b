package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the seed binary reads from the environment.
// There are no flags; the environment is the only external interface.
type Config struct {
	MongoURL     string        `envconfig:"MONGO_URL" default:"mongodb://localhost:27017"`
	MongoDB      string        `envconfig:"MONGO_DB" default:"fomo_db"`
	MongoTimeout time.Duration `envconfig:"MONGO_TIMEOUT" default:"10s"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
