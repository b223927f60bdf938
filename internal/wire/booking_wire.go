package wire

import (
	"ride-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// GET /api/bookings - Recent bookings with ride and slot details
	r.Get("/api/bookings", bookingHandler.ListBookings)

	// POST /api/bookings - Reserve a place on a slot
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// DELETE /api/bookings?id= - Cancel a booking
	r.Delete("/api/bookings", bookingHandler.CancelBooking)
}
