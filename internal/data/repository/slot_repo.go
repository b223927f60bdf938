package repository

import (
	"context"
	"fmt"

	"ride-booking/internal/data/entity"
	"ride-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SlotRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error)
	FindByRideID(ctx context.Context, rideID uuid.UUID) ([]*entity.Slot, error)
}

type slotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSlotRepository(db database.PgxIface, log *zap.Logger) SlotRepository {
	return &slotRepository{
		db:  db,
		log: log.With(zap.String("repository", "slot")),
	}
}

func (r *slotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error) {
	query := `
		SELECT id, ride_id, start_time, capacity, booked, created_at
		FROM slots
		WHERE id = $1
	`

	var slot entity.Slot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.RideID,
		&slot.StartTime,
		&slot.Capacity,
		&slot.Booked,
		&slot.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find slot by ID",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return nil, fmt.Errorf("find slot by ID %s: %w", id.String(), err)
	}

	return &slot, nil
}

func (r *slotRepository) FindByRideID(ctx context.Context, rideID uuid.UUID) ([]*entity.Slot, error) {
	query := `
		SELECT id, ride_id, start_time, capacity, booked, created_at
		FROM slots
		WHERE ride_id = $1
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, rideID)
	if err != nil {
		r.log.Error("Failed to find slots by ride ID",
			zap.Error(err),
			zap.String("ride_id", rideID.String()),
		)
		return nil, fmt.Errorf("find slots by ride ID %s: %w", rideID.String(), err)
	}
	defer rows.Close()

	var slots []*entity.Slot
	for rows.Next() {
		var slot entity.Slot
		err := rows.Scan(
			&slot.ID,
			&slot.RideID,
			&slot.StartTime,
			&slot.Capacity,
			&slot.Booked,
			&slot.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan slot row", zap.Error(err))
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, rows.Err()
}
