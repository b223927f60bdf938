package repository

import (
	"context"
	"fmt"

	"ride-booking/internal/data/entity"
	"ride-booking/pkg/database"

	"go.uber.org/zap"
)

type RideRepository interface {
	FindAll(ctx context.Context) ([]*entity.Ride, error)
}

type rideRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRideRepository(db database.PgxIface, log *zap.Logger) RideRepository {
	return &rideRepository{
		db:  db,
		log: log.With(zap.String("repository", "ride")),
	}
}

func (r *rideRepository) FindAll(ctx context.Context) ([]*entity.Ride, error) {
	query := `
		SELECT id, name, land, description, created_at
		FROM rides
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list rides", zap.Error(err))
		return nil, fmt.Errorf("list rides: %w", err)
	}
	defer rows.Close()

	var rides []*entity.Ride
	for rows.Next() {
		var ride entity.Ride
		err := rows.Scan(
			&ride.ID,
			&ride.Name,
			&ride.Land,
			&ride.Description,
			&ride.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ride row", zap.Error(err))
			return nil, fmt.Errorf("scan ride row: %w", err)
		}
		rides = append(rides, &ride)
	}

	return rides, rows.Err()
}
