// Package kafka delivers outbox notifications to Kafka topics named after the
// order event, keyed by order id so events of one order stay in one partition.
package kafka

import (
	"context"
	"log/slog"
	"strings"

	"shop/internal/core/domain/model/notification"

	kafkago "github.com/segmentio/kafka-go"
)

const headerMessageID = "message-id"

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher writes notifications with one synchronous batch per call.
type Publisher struct {
	writer      writer
	topicPrefix string
	logger      *slog.Logger
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func NewPublisher(brokers []string, topicPrefix string, logger *slog.Logger) *Publisher {
	return newPublisher(&kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}, topicPrefix, logger)
}

func newPublisher(w writer, topicPrefix string, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer:      w,
		topicPrefix: topicPrefix,
		logger:      logger.With("component", "kafka_publisher"),
	}
}

// Publish sends msgs in one batch. Either the whole batch is acknowledged or
// an error is returned and the caller keeps the messages pending.
func (p *Publisher) Publish(ctx context.Context, msgs ...*notification.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	batch := make([]kafkago.Message, 0, len(msgs))
	for _, m := range msgs {
		batch = append(batch, kafkago.Message{
			Topic:   p.topicPrefix + m.Topic(),
			Key:     []byte(m.Key()),
			Value:   m.Payload(),
			Time:    m.CreatedAt(),
			Headers: []kafkago.Header{{Key: headerMessageID, Value: []byte(m.ID().String())}},
		})
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish notifications", "count", len(batch), "error", err)
		return err
	}

	p.logger.DebugContext(ctx, "published notifications", "count", len(batch))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// LogPublisher stands in for Kafka when no brokers are configured. Messages are
// logged and considered delivered.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "log_publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, msgs ...*notification.Message) error {
	for _, m := range msgs {
		p.logger.InfoContext(ctx, "notification",
			"id", m.ID().String(),
			"topic", m.Topic(),
			"key", m.Key(),
			"payload", string(m.Payload()),
		)
	}
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
