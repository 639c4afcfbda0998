package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"estate/internal/model"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// TraceIDKey is the context key carrying the request trace id
type TraceIDKey struct{}

// channel is the part of *amqp.Channel the publisher uses
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher publishes inquiry events to a topic exchange
type RabbitPublisher struct {
	conn       *amqp.Connection
	ch         channel
	exchange   string
	routingKey string
	logger     *slog.Logger

	mu sync.Mutex
}

// NewRabbitPublisher dials the broker and declares a durable topic exchange
func NewRabbitPublisher(url, exchange, routingKey string, logger *slog.Logger) (*RabbitPublisher, error) {
	if exchange == "" {
		return nil, errors.New("rabbitmq: exchange name is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	logger.Debug("declaring exchange", "name", exchange, "type", amqp.ExchangeTopic)
	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchange, err)
	}

	return &RabbitPublisher{
		conn:       conn,
		ch:         ch,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
	}, nil
}

// InquiryCreated publishes the event as a persistent JSON message
func (p *RabbitPublisher) InquiryCreated(ctx context.Context, event model.InquiryEvent) error {
	msg, err := newPublishing(ctx, event)
	if err != nil {
		return err
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return errors.New("rabbitmq: publisher is closed")
	}
	if err := p.ch.PublishWithContext(publishCtx, p.exchange, p.routingKey, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish inquiry %s: %w", event.InquiryID, err)
	}

	p.logger.Debug("inquiry event published",
		"inquiry_id", event.InquiryID,
		"exchange", p.exchange,
		"routing_key", p.routingKey,
	)
	return nil
}

// newPublishing builds the AMQP message for an inquiry event
func newPublishing(ctx context.Context, event model.InquiryEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal inquiry event: %w", err)
	}

	headers := make(amqp.Table)
	if traceID, ok := ctx.Value(TraceIDKey{}).(string); ok && traceID != "" {
		headers["x-trace-id"] = traceID
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now(),
		Type:         "inquiry.created",
		Headers:      headers,
		Body:         body,
	}, nil
}

// Close closes the channel and the connection
func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			p.logger.Error("error closing rabbitmq channel", "error", err)
			firstErr = err
		}
		p.ch = nil
	}
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.conn = nil
	return firstErr
}
