// Package notifier turns booking lifecycle events into staff-facing
// notifications. It consumes the same exchange the service publishes to,
// so it keeps working if split into its own process later.
package notifier

import (
	"encoding/json"
	"log"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
	amqp "github.com/rabbitmq/amqp091-go"
)

// event mirrors rabbitmq.Event with the data field left raw so each routing
// key can pick its own payload type.
type event struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

type Notifier struct{}

func New() *Notifier {
	return &Notifier{}
}

// Start drains deliveries until the channel closes.
func (n *Notifier) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			n.handleMessage(msg)
		}
		log.Println("[Notifier] channel closed, stopping")
	}()
}

func (n *Notifier) handleMessage(msg amqp.Delivery) {
	if msg.RoutingKey == "booking.cleared" {
		log.Println("[Notifier] all bookings cleared by an admin")
		msg.Ack(false)
		return
	}

	var ev event
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		log.Printf("[Notifier] failed to unmarshal %s: %v", msg.RoutingKey, err)
		msg.Nack(false, false)
		return
	}

	if msg.RoutingKey == "booking.summary" {
		var s struct {
			PendingCount int64 `json:"pending_count"`
		}
		if err := json.Unmarshal(ev.Data, &s); err == nil {
			log.Printf("[Notifier] daily summary: %d pending booking(s)", s.PendingCount)
		}
		msg.Ack(false)
		return
	}

	var b booking.Booking
	if err := json.Unmarshal(ev.Data, &b); err != nil {
		log.Printf("[Notifier] bad payload for %s: %v", msg.RoutingKey, err)
		msg.Nack(false, false)
		return
	}

	switch msg.RoutingKey {
	case "booking.submitted":
		log.Printf("[Notifier] new booking %s: %s, %d guests on %s at %s",
			b.Reference, b.Name, b.Guests, b.Date, b.Time)
	case "booking.confirmed":
		log.Printf("[Notifier] booking %s confirmed for %s", b.Reference, b.Name)
	case "booking.rejected":
		log.Printf("[Notifier] booking %s rejected for %s", b.Reference, b.Name)
	case "booking.deleted":
		log.Printf("[Notifier] booking %s deleted", b.Reference)
	default:
		log.Printf("[Notifier] ignoring %s", msg.RoutingKey)
	}

	msg.Ack(false)
}
