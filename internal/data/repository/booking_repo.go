package repository

import (
	"context"
	"fmt"
	"time"

	"ride-booking/internal/data/entity"
	"ride-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.BookingDetail, error)

	// Reserve and Cancel each run the paired counter update and booking
	// row change as one all-or-nothing transaction.
	Reserve(ctx context.Context, slotID uuid.UUID, guestName string) (*entity.Booking, error)
	Cancel(ctx context.Context, booking *entity.Booking) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, slot_id, guest_name, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.SlotID,
		&booking.GuestName,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindRecent(ctx context.Context, limit int) ([]*entity.BookingDetail, error) {
	query := `
		SELECT b.id, b.slot_id, b.guest_name, b.created_at,
		       s.start_time, r.name, r.land
		FROM bookings b
		JOIN slots s ON s.id = b.slot_id
		JOIN rides r ON r.id = s.ride_id
		ORDER BY b.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to list recent bookings", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("list recent bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.BookingDetail
	for rows.Next() {
		var b entity.BookingDetail
		err := rows.Scan(
			&b.ID,
			&b.SlotID,
			&b.GuestName,
			&b.CreatedAt,
			&b.StartTime,
			&b.RideName,
			&b.Land,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, rows.Err()
}

// Reserve takes one place on the slot and records the booking in a single
// transaction. The counter update is conditional: the WHERE clause re-checks
// capacity after acquiring the row lock, so two reservations racing on the
// last place cannot both pass. Losing that race returns ErrSlotFull.
func (r *bookingRepository) Reserve(ctx context.Context, slotID uuid.UUID, guestName string) (*entity.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin reserve transaction",
			zap.Error(err),
			zap.String("slot_id", slotID.String()),
		)
		return nil, ErrTxFailed
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE slots SET booked = booked + 1 WHERE id = $1 AND booked < capacity`,
		slotID,
	)
	if err != nil {
		r.log.Error("Failed to increment slot counter",
			zap.Error(err),
			zap.String("slot_id", slotID.String()),
		)
		return nil, ErrTxFailed
	}

	if tag.RowsAffected() == 0 {
		// Either the slot is gone or it filled up under us.
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM slots WHERE id = $1)`, slotID,
		).Scan(&exists); err != nil {
			r.log.Error("Failed to check slot existence",
				zap.Error(err),
				zap.String("slot_id", slotID.String()),
			)
			return nil, ErrTxFailed
		}
		if !exists {
			return nil, ErrNotFound
		}
		return nil, ErrSlotFull
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		SlotID:    slotID,
		GuestName: guestName,
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO bookings (id, slot_id, guest_name, created_at) VALUES ($1, $2, $3, $4)`,
		booking.ID, booking.SlotID, booking.GuestName, booking.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("slot_id", slotID.String()),
		)
		return nil, ErrTxFailed
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit reserve transaction",
			zap.Error(err),
			zap.String("slot_id", slotID.String()),
		)
		return nil, ErrTxFailed
	}

	r.log.Info("Booking reserved",
		zap.String("booking_id", booking.ID.String()),
		zap.String("slot_id", slotID.String()),
	)
	return booking, nil
}

// Cancel releases the booking's place and deletes the booking row in a single
// transaction. The decrement refuses to drive the counter below zero; a zero
// row count there means the counter and the booking rows disagree, which is
// treated as a failed unit rather than silently clamped.
func (r *bookingRepository) Cancel(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin cancel transaction",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return ErrTxFailed
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE slots SET booked = booked - 1 WHERE id = $1 AND booked > 0`,
		booking.SlotID,
	)
	if err != nil {
		r.log.Error("Failed to decrement slot counter",
			zap.Error(err),
			zap.String("slot_id", booking.SlotID.String()),
		)
		return ErrTxFailed
	}
	if tag.RowsAffected() == 0 {
		r.log.Error("Slot counter would underflow, counter out of sync with bookings",
			zap.String("slot_id", booking.SlotID.String()),
			zap.String("booking_id", booking.ID.String()),
		)
		return ErrTxFailed
	}

	tag, err = tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, booking.ID)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return ErrTxFailed
	}
	if tag.RowsAffected() == 0 {
		// A concurrent cancel won; its transaction already released the place.
		return ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit cancel transaction",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return ErrTxFailed
	}

	r.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("slot_id", booking.SlotID.String()),
	)
	return nil
}
