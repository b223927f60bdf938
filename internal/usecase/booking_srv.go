package usecase

import (
	"context"
	"fmt"
	"strings"

	"ride-booking/internal/data/repository"
	"ride-booking/internal/dto/request"
	"ride-booking/internal/dto/response"
	"ride-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxBookingRows bounds the booking list response size.
const maxBookingRows = 50

type BookingService interface {
	Reserve(ctx context.Context, req *request.CreateBookingRequest) (*response.ReserveResponse, error)
	Cancel(ctx context.Context, bookingID string) error
	ListBookings(ctx context.Context, limit int) ([]response.BookingRowResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// Reserve validates the request, does a fast capacity check, then delegates
// the paired counter-increment and booking-insert to the repository's atomic
// unit. The fast check only filters obviously full slots; the transaction's
// conditional update is what actually defends the capacity invariant.
func (s *bookingService) Reserve(ctx context.Context, req *request.CreateBookingRequest) (*response.ReserveResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), repository.ErrInvalidArgument)
	}

	guestName := strings.TrimSpace(req.GuestName)
	if len(guestName) < 2 {
		return nil, fmt.Errorf("guest name too short: %w", repository.ErrInvalidArgument)
	}

	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		return nil, fmt.Errorf("slot ID %s: %w", req.SlotID, repository.ErrInvalidArgument)
	}

	slot, err := s.repo.Slot.FindByID(ctx, slotID)
	if err != nil {
		s.log.Error("Failed to load slot", zap.Error(err), zap.String("slot_id", req.SlotID))
		return nil, fmt.Errorf("load slot: %w", err)
	}
	if slot == nil {
		return nil, fmt.Errorf("slot %s: %w", req.SlotID, repository.ErrNotFound)
	}
	if slot.IsFull() {
		return nil, fmt.Errorf("slot %s: %w", req.SlotID, repository.ErrSlotFull)
	}

	booking, err := s.repo.Booking.Reserve(ctx, slotID, guestName)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("slot_id", req.SlotID),
		zap.String("guest_name", guestName),
	)

	return response.BookingToReserveResponse(booking), nil
}

func (s *bookingService) Cancel(ctx context.Context, bookingID string) error {
	if strings.TrimSpace(bookingID) == "" {
		return fmt.Errorf("booking ID is required: %w", repository.ErrInvalidArgument)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("booking ID %s: %w", bookingID, repository.ErrInvalidArgument)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("load booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID, repository.ErrNotFound)
	}

	return s.repo.Booking.Cancel(ctx, booking)
}

func (s *bookingService) ListBookings(ctx context.Context, limit int) ([]response.BookingRowResponse, error) {
	if limit <= 0 || limit > maxBookingRows {
		limit = maxBookingRows
	}

	bookings, err := s.repo.Booking.FindRecent(ctx, limit)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	rows := make([]response.BookingRowResponse, len(bookings))
	for i, b := range bookings {
		rows[i] = response.BookingDetailToResponse(b)
	}

	return rows, nil
}
