package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"elections-graph"`
		Port int    `envconfig:"PORT" default:"3001"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"elections"`
	}

	Ingest struct {
		File   string `envconfig:"INGEST_FILE" default:"data/elections/disbursements.csv"`
		Format string `envconfig:"INGEST_FORMAT" default:"fec"`
	}

	Graph struct {
		// DefaultLimit caps how many nodes the graph endpoint returns when
		// the request does not say otherwise.
		DefaultLimit int `envconfig:"GRAPH_DEFAULT_LIMIT" default:"150"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
