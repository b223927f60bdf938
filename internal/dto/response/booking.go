package response

import (
	"time"

	"ride-booking/internal/data/entity"
)

type ReserveResponse struct {
	BookingID string    `json:"booking_id"`
	SlotID    string    `json:"slot_id"`
	GuestName string    `json:"guest_name"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingRowResponse struct {
	ID        string    `json:"id"`
	GuestName string    `json:"guest_name"`
	RideName  string    `json:"ride_name"`
	Land      string    `json:"land"`
	StartTime time.Time `json:"start_time"`
	CreatedAt time.Time `json:"created_at"`
}

func BookingToReserveResponse(b *entity.Booking) *ReserveResponse {
	return &ReserveResponse{
		BookingID: b.ID.String(),
		SlotID:    b.SlotID.String(),
		GuestName: b.GuestName,
		CreatedAt: b.CreatedAt,
	}
}

func BookingDetailToResponse(b *entity.BookingDetail) BookingRowResponse {
	return BookingRowResponse{
		ID:        b.ID.String(),
		GuestName: b.GuestName,
		RideName:  b.RideName,
		Land:      b.Land,
		StartTime: b.StartTime,
		CreatedAt: b.CreatedAt,
	}
}
