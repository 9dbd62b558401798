package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"hmpaquetes/internal/adapters/out/kafka"
	"hmpaquetes/internal/core/ports"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewLogger builds the JSON slog logger used across the application.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// OpenDatabase connects gorm to PostgreSQL.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// NewEventPublisher returns the Kafka publisher for shipment events, or a no-op
// publisher when KAFKA_HOST is empty. The returned close func is never nil.
func NewEventPublisher(cfg Config, log *slog.Logger) (ports.EventPublisher, func() error, error) {
	brokers := kafka.ParseBrokers(cfg.KafkaHost)
	if len(brokers) == 0 {
		log.Info("KAFKA_HOST not set, shipment events will not be published")
		return kafka.NewNoopPublisher(), func() error { return nil }, nil
	}

	producer, err := kafka.NewSyncProducer(brokers)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to kafka: %w", err)
	}

	publisher, err := kafka.NewPublisher(producer, cfg.KafkaShipmentChangedTopic, log)
	if err != nil {
		_ = producer.Close()
		return nil, nil, err
	}
	return publisher, publisher.Close, nil
}
