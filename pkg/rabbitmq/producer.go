package rabbitmq

//go:generate mockgen -source=producer.go -destination=mock_producer.go -package=rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const dialTimeout = 10 * time.Second

var ErrInvalidScheme = errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")

// Publisher publishes JSON messages to a topic exchange.
type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body any) error
	Close()
}

type EventProducer struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher dials RabbitMQ. An empty URL or a failed dial yields the
// fallback publisher so the service still starts.
func NewPublisher(amqpURL string) Publisher {
	if amqpURL == "" {
		zap.L().Warn("AMQP URL not set, payouts will only be logged")
		return &EventProducerFallback{}
	}
	producer, err := NewEventProducer(amqpURL)
	if err != nil {
		zap.L().Error("can't connect to RabbitMQ, payouts will only be logged", zap.Error(err))
		return &EventProducerFallback{}
	}
	return producer
}

func NewEventProducer(amqpURL string) (*EventProducer, error) {
	cleanURL, err := sanitizeURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp.DialConfig(cleanURL, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &EventProducer{conn: conn, channel: ch}, nil
}

// Publish declares the durable topic exchange and publishes body as JSON.
// A failed publish reopens the channel and is tried once more.
func (p *EventProducer) Publish(ctx context.Context, exchange, routingKey string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		zap.L().Error("can't marshal message", zap.String("exchange", exchange), zap.String("routingKey", routingKey), zap.Error(err))
		return err
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now(),
		Body:         payload,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.publish(ctx, exchange, routingKey, msg)
	if err == nil {
		return nil
	}

	zap.L().Warn("publish failed, reopening channel", zap.String("exchange", exchange), zap.String("routingKey", routingKey), zap.Error(err))
	ch, chErr := p.conn.Channel()
	if chErr != nil {
		return errors.Join(err, chErr)
	}
	p.channel.Close()
	p.channel = ch
	return p.publish(ctx, exchange, routingKey, msg)
}

func (p *EventProducer) publish(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) error {
	if err := p.channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}
	return p.channel.PublishWithContext(ctx, exchange, routingKey, false, false, msg)
}

func (p *EventProducer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// EventProducerFallback only logs what would have been published.
type EventProducerFallback struct{}

func (p *EventProducerFallback) Publish(_ context.Context, exchange, routingKey string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	zap.L().Warn("publish skipped, no broker",
		zap.String("exchange", exchange),
		zap.String("routingKey", routingKey),
		zap.ByteString("body", payload),
	)
	return nil
}

func (p *EventProducerFallback) Close() {}

func sanitizeURL(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.Trim(clean, "\"'")
	if idx := strings.Index(strings.ToLower(clean), "amqp"); idx > 0 {
		clean = clean[idx:]
	}
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", ErrInvalidScheme
	}
	return clean, nil
}
