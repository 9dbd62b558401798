// Package kafka publishes domain events to Kafka with a sarama sync producer.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hmpaquetes/internal/pkg/ddd"
	"hmpaquetes/internal/pkg/errs"

	"github.com/IBM/sarama"
)

const (
	HeaderEventName = "event_name"
	HeaderEventID   = "event_id"
)

// NewSyncProducer connects a producer that waits for the leader's ack.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Timeout = 5 * time.Second
	config.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(brokers, config)
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Publisher writes each event as JSON to one topic, keyed by the aggregate key
// so events of one shipment stay ordered within a partition.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

func NewPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) (*Publisher, error) {
	if producer == nil {
		return nil, errs.NewValueIsRequiredError("producer")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher", "topic", topic),
	}, nil
}

// Publish sends events one by one. Every event is attempted; the returned
// error joins all failures.
func (p *Publisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	var failures []error
	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(failures, err)...)
		}

		msg, err := p.message(event)
		if err != nil {
			failures = append(failures, err)
			continue
		}

		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			failures = append(failures, fmt.Errorf("send %s %s: %w", event.EventName(), event.EventID(), err))
			continue
		}

		p.logger.DebugContext(ctx, "event published",
			"event", event.EventName(), "key", event.AggregateKey(), "partition", partition, "offset", offset)
	}

	return errors.Join(failures...)
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

func (p *Publisher) message(event ddd.DomainEvent) (*sarama.ProducerMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", event.EventName(), err)
	}

	return &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.AggregateKey()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(HeaderEventName), Value: []byte(event.EventName())},
			{Key: []byte(HeaderEventID), Value: []byte(event.EventID().String())},
		},
		Timestamp: event.OccurredAt(),
	}, nil
}

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) Publish(context.Context, ...ddd.DomainEvent) error {
	return nil
}
