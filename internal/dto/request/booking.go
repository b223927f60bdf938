package request

type CreateBookingRequest struct {
	SlotID    string `json:"slot_id" validate:"required,uuid4"`
	GuestName string `json:"guest_name" validate:"required,min=2"`
}
