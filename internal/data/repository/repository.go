package repository

import (
	"ride-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Ride    RideRepository
	Slot    SlotRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Ride:    NewRideRepository(db, log),
		Slot:    NewSlotRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
