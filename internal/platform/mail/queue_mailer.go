package mail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	amqp "github.com/rabbitmq/amqp091-go"
)

type queueDeclarer interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
}

// PublishChannel is the subset of *amqp.Channel used for publishing.
type PublishChannel interface {
	queueDeclarer
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// ChannelDialer opens a publish channel together with the connection that owns it.
type ChannelDialer func() (PublishChannel, io.Closer, error)

// AMQPDialer returns a ChannelDialer that opens a fresh broker connection on url.
func AMQPDialer(url string) ChannelDialer {
	return func() (PublishChannel, io.Closer, error) {
		conn, ch, err := DialAMQP(url)
		if err != nil {
			return nil, nil, err
		}
		return ch, conn, nil
	}
}

// QueueMailer hands messages to a durable queue; a mail worker delivers them.
// Send succeeds once the broker has the message, not once it is delivered.
// A closed channel is re-dialed on the next Send.
type QueueMailer struct {
	mu    sync.Mutex
	dial  ChannelDialer
	ch    PublishChannel
	conn  io.Closer
	queue string
}

var _ portssvc.Mailer = (*QueueMailer)(nil)

// NewQueueMailer dials the broker, declares queue (durable, idempotent) and returns a mailer publishing to it.
func NewQueueMailer(dial ChannelDialer, queue string) (*QueueMailer, error) {
	m := &QueueMailer{dial: dial, queue: queue}
	if err := m.connect(); err != nil {
		return nil, err
	}
	return m, nil
}

func declareQueue(ch queueDeclarer, queue string) error {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return nil
}

// connect opens a new channel and declares the queue on it. Callers hold mu.
func (m *QueueMailer) connect() error {
	ch, conn, err := m.dial()
	if err != nil {
		return err
	}
	if err := declareQueue(ch, m.queue); err != nil {
		_ = conn.Close()
		return err
	}
	m.ch, m.conn = ch, conn
	return nil
}

// disconnect drops the current connection. Callers hold mu.
func (m *QueueMailer) disconnect() {
	if m.conn != nil {
		_ = m.conn.Close()
	}
	m.ch, m.conn = nil, nil
}

func (m *QueueMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode mail message: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ch == nil {
		if err := m.connect(); err != nil {
			return fmt.Errorf("failed to reconnect to broker: %w", err)
		}
	}

	err = m.ch.PublishWithContext(ctx, "", m.queue, false, false, pub)
	if errors.Is(err, amqp.ErrClosed) {
		m.disconnect()
		if rerr := m.connect(); rerr != nil {
			return fmt.Errorf("failed to reconnect to broker: %w", errors.Join(err, rerr))
		}
		err = m.ch.PublishWithContext(ctx, "", m.queue, false, false, pub)
	}
	if err != nil {
		return fmt.Errorf("failed to publish mail message: %w", err)
	}
	return nil
}

// Close releases the broker connection.
func (m *QueueMailer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disconnect()
	return nil
}

// DialAMQP opens a connection and a channel on it. Closing the connection closes the channel.
func DialAMQP(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return conn, ch, nil
}
