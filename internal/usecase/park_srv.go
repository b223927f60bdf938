package usecase

import (
	"context"
	"fmt"
	"strings"

	"ride-booking/internal/data/repository"
	"ride-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ParkService interface {
	ListRides(ctx context.Context) ([]response.RideResponse, error)
	ListSlots(ctx context.Context, rideID string) ([]response.SlotResponse, error)
}

type parkService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewParkService(repo *repository.Repository, log *zap.Logger) ParkService {
	return &parkService{
		repo: repo,
		log:  log.With(zap.String("service", "park")),
	}
}

func (s *parkService) ListRides(ctx context.Context) ([]response.RideResponse, error) {
	rides, err := s.repo.Ride.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list rides", zap.Error(err))
		return nil, fmt.Errorf("list rides: %w", err)
	}

	rideResponses := make([]response.RideResponse, len(rides))
	for i, ride := range rides {
		rideResponses[i] = response.RideToResponse(ride)
	}

	return rideResponses, nil
}

func (s *parkService) ListSlots(ctx context.Context, rideID string) ([]response.SlotResponse, error) {
	if strings.TrimSpace(rideID) == "" {
		return nil, fmt.Errorf("ride ID is required: %w", repository.ErrInvalidArgument)
	}

	id, err := uuid.Parse(rideID)
	if err != nil {
		return nil, fmt.Errorf("ride ID %s: %w", rideID, repository.ErrInvalidArgument)
	}

	slots, err := s.repo.Slot.FindByRideID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list slots", zap.Error(err), zap.String("ride_id", rideID))
		return nil, fmt.Errorf("list slots: %w", err)
	}

	slotResponses := make([]response.SlotResponse, len(slots))
	for i, slot := range slots {
		slotResponses[i] = response.SlotToResponse(slot)
	}

	return slotResponses, nil
}
