package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "bookings"
	ExchangeKind = "topic"
)

// Event is the envelope every booking lifecycle message travels in. The
// routing key is repeated inside the body so consumers that log or archive
// raw payloads keep the event name.
type Event struct {
	Name      string    `json:"event"`
	EmittedAt time.Time `json:"emittedAt"`
	Data      any       `json:"data,omitempty"`
}

type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return &Publisher{conn: conn, channel: ch}, nil
}

// Publish wraps payload in an Event envelope and fans it out under
// routingKey (booking.submitted, booking.confirmed, ...).
func (p *Publisher) Publish(routingKey string, payload any) error {
	body, err := json.Marshal(Event{
		Name:      routingKey,
		EmittedAt: time.Now().UTC(),
		Data:      payload,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.channel.Publish(
		ExchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   uuid.NewString(),
			Timestamp:   time.Now(),
			Body:        body,
		},
	); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	log.Printf("[RabbitMQ] published %s to %s", routingKey, ExchangeName)
	return nil
}

func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
