package adaptor

import (
	"net/http"

	"ride-booking/internal/usecase"
	"ride-booking/pkg/utils"

	"go.uber.org/zap"
)

type ParkHandler struct {
	service usecase.ParkService
	log     *zap.Logger
}

func NewParkHandler(service usecase.ParkService, log *zap.Logger) *ParkHandler {
	return &ParkHandler{
		service: service,
		log:     log.With(zap.String("handler", "park")),
	}
}

// ListRides handles GET /api/rides
func (h *ParkHandler) ListRides(w http.ResponseWriter, r *http.Request) {
	rides, err := h.service.ListRides(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list rides")
		return
	}

	utils.ResponseSuccess(w, "success", rides)
}

// ListSlots handles GET /api/slots?rideId=
func (h *ParkHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	rideID := r.URL.Query().Get("rideId")

	slots, err := h.service.ListSlots(r.Context(), rideID)
	if err != nil {
		handleServiceError(w, h.log, err, "list slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}
