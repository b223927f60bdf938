package response

import (
	"time"

	"ride-booking/internal/data/entity"
)

type RideResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Land        string    `json:"land"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type SlotResponse struct {
	ID        string    `json:"id"`
	RideID    string    `json:"ride_id"`
	StartTime time.Time `json:"start_time"`
	Capacity  int       `json:"capacity"`
	Booked    int       `json:"booked"`
	Remaining int       `json:"remaining"`
}

func RideToResponse(r *entity.Ride) RideResponse {
	return RideResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Land:        r.Land,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

func SlotToResponse(s *entity.Slot) SlotResponse {
	return SlotResponse{
		ID:        s.ID.String(),
		RideID:    s.RideID.String(),
		StartTime: s.StartTime,
		Capacity:  s.Capacity,
		Booked:    s.Booked,
		Remaining: s.Remaining(),
	}
}
