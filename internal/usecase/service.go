package usecase

import (
	"ride-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Park    ParkService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, log),
		Park:    NewParkService(repo, log),
	}
}
