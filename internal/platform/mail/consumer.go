package mail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	amqp "github.com/rabbitmq/amqp091-go"
)

const consumerPrefetch = 10

// ErrDeliveriesClosed is returned by Run when the broker closes the delivery channel.
var ErrDeliveriesClosed = errors.New("deliveries channel closed")

// ConsumeChannel is the subset of *amqp.Channel used by the consumer.
type ConsumeChannel interface {
	queueDeclarer
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// Consumer drains the mail queue and delivers each message with the wrapped mailer.
type Consumer struct {
	ch     ConsumeChannel
	queue  string
	mailer portssvc.Mailer
	logger *slog.Logger
}

func NewConsumer(ch ConsumeChannel, queue string, mailer portssvc.Mailer, logger *slog.Logger) *Consumer {
	return &Consumer{ch: ch, queue: queue, mailer: mailer, logger: logger}
}

// Run consumes until ctx is done (returning nil) or the broker closes the deliveries.
func (c *Consumer) Run(ctx context.Context) error {
	if err := declareQueue(c.ch, c.queue); err != nil {
		return err
	}
	if err := c.ch.Qos(consumerPrefetch, 0, false); err != nil {
		c.logger.Warn("Failed to set QoS", slog.String("error", err.Error()))
	}

	deliveries, err := c.ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume queue %s: %w", c.queue, err)
	}
	return c.process(ctx, deliveries)
}

func (c *Consumer) process(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}
			c.handle(ctx, d)
		}
	}
}

// handle acks delivered mail and rejects the rest without requeueing, so a bad
// message or a persistent relay failure cannot spin the worker.
func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	var msg domain.MailMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		c.logger.Error("Dropping undecodable mail message", slog.String("error", err.Error()))
		_ = d.Nack(false, false)
		return
	}

	if err := c.mailer.Send(ctx, msg); err != nil {
		c.logger.Error("Failed to deliver queued mail", slog.String("subject", msg.Subject), slog.String("error", err.Error()))
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}
