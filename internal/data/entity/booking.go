package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one guest's reservation against one slot. Each booking row
// accounts for exactly one unit of its slot's booked counter.
type Booking struct {
	Base
	SlotID    uuid.UUID `db:"slot_id"`
	GuestName string    `db:"guest_name"`
}

// BookingDetail is a booking joined with its slot and ride for display.
type BookingDetail struct {
	Booking
	StartTime time.Time `db:"start_time"`
	RideName  string    `db:"ride_name"`
	Land      string    `db:"land"`
}
