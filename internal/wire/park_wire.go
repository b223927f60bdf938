package wire

import (
	"ride-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePark(r chi.Router, parkHandler *adaptor.ParkHandler) {
	// GET /api/rides - All rides, newest first
	r.Get("/api/rides", parkHandler.ListRides)

	// GET /api/slots?rideId= - Slots for one ride, earliest first
	r.Get("/api/slots", parkHandler.ListSlots)
}
