package config

import (
	"github.com/NYTimes/gizmo/server"
	"github.com/fsouza/gizmo-stackdriver-logging"
	"github.com/kelseyhightower/envconfig"
)

// Config is a struct to contain all the needed configuration for the
// timecode API.
type Config struct {
	Server    *server.Config
	Log       *logging.Config
	SentryDSN string `envconfig:"SENTRY_DSN"`
	Env       string `envconfig:"ENVIRONMENT" default:"dev"`
}

// LoadConfig loads the configuration of the API using environment
// variables.
func LoadConfig() *Config {
	cfg := Config{
		Server: new(server.Config),
		Log:    new(logging.Config),
	}
	envconfig.Process("", &cfg)
	return &cfg
}
