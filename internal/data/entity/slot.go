package entity

import (
	"time"

	"github.com/google/uuid"
)

// Slot is a bookable time instance of a ride. Capacity is fixed at creation;
// Booked only moves through the booking repository's atomic units and must
// stay within 0..Capacity.
type Slot struct {
	Base
	RideID    uuid.UUID `db:"ride_id"`
	StartTime time.Time `db:"start_time"`
	Capacity  int       `db:"capacity"`
	Booked    int       `db:"booked"`
}

// Remaining returns the number of free places on the slot.
func (s *Slot) Remaining() int {
	return s.Capacity - s.Booked
}

// IsFull returns true when no places remain.
func (s *Slot) IsFull() bool {
	return s.Booked >= s.Capacity
}
