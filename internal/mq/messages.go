package mq

import "time"

type EventType string

const (
	EventBookingCreated   EventType = "BookingCreated"
	EventBookingCancelled EventType = "BookingCancelled"
)

// BookingEvent is the envelope published for every booking change.
type BookingEvent struct {
	EventID    string    `json:"event_id"`
	Type       EventType `json:"type"`
	BookingID  int       `json:"booking_id"`
	RoomID     int       `json:"room_id,omitempty"`
	GuestID    string    `json:"guest_id,omitempty"`
	CheckIn    string    `json:"check_in,omitempty"`
	CheckOut   string    `json:"check_out,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
