package models

import "time"

type Booking struct {
	ID       int       `json:"id"`
	RoomID   int       `json:"room_id"`
	GuestID  string    `json:"guest_id"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}
