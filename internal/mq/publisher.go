package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotelBooker/internal/models"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const ExchangeType = "topic"

const dateLayout = "2006-01-02"

// SetupConn dials the broker and declares the exchange, retrying a few
// times so the service survives a broker that is still starting up.
func SetupConn(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	var conn *amqp.Connection
	var err error

	for i := 0; i < 5; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,     // name
		ExchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return nil, nil, fmt.Errorf("could not declare exchange: %w", err)
	}

	return conn, ch, nil
}

type Publisher struct {
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(ch *amqp.Channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

func (p *Publisher) BookingCreated(ctx context.Context, booking models.Booking) error {
	event := BookingEvent{
		EventID:    uuid.NewString(),
		Type:       EventBookingCreated,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		GuestID:    booking.GuestID,
		CheckIn:    booking.CheckIn.Format(dateLayout),
		CheckOut:   booking.CheckOut.Format(dateLayout),
		OccurredAt: time.Now().UTC(),
	}

	return p.publish(ctx, "booking.created", event)
}

func (p *Publisher) BookingCancelled(ctx context.Context, bookingID int) error {
	event := BookingEvent{
		EventID:    uuid.NewString(),
		Type:       EventBookingCancelled,
		BookingID:  bookingID,
		OccurredAt: time.Now().UTC(),
	}

	return p.publish(ctx, "booking.cancelled", event)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, event BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	return p.ch.PublishWithContext(ctx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) BookingCreated(_ context.Context, _ models.Booking) error { return nil }

func (NopPublisher) BookingCancelled(_ context.Context, _ int) error { return nil }
