package adaptor

import (
	"errors"
	"net/http"

	"ride-booking/internal/data/repository"
	"ride-booking/internal/usecase"
	"ride-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Park    *ParkHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Park:    NewParkHandler(service.Park, log),
	}
}

// handleServiceError maps the domain error taxonomy to HTTP status codes.
// Anything outside the taxonomy is a system fault and stays generic.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrInvalidArgument):
		log.Warn(operation+" failed - invalid argument", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, repository.ErrSlotFull):
		log.Warn(operation+" failed - slot full", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, repository.ErrTxFailed):
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Transaction failed")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
