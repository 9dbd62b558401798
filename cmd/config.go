package cmd

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"hmpaquetes"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	KafkaHost                 string `env:"KAFKA_HOST"`
	KafkaShipmentChangedTopic string `env:"KAFKA_SHIPMENT_CHANGED_TOPIC" envDefault:"shipment.status.changed"`

	MediaURL string `env:"MEDIA_URL" envDefault:"/media/"`
	TimeZone string `env:"TIME_ZONE" envDefault:"America/Havana"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	PendingTasksSchedule  string `env:"PENDING_TASKS_SCHEDULE" envDefault:"*/30 * * * * *"`
	PendingTasksBatchSize int    `env:"PENDING_TASKS_BATCH_SIZE" envDefault:"50"`
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN is the libpq connection string for the configured database.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// Location resolves TIME_ZONE.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}
