// Seeds the database with the demo park: creates the schema if missing, wipes
// existing data, and inserts three rides with ten half-hour slots each.
package main

import (
	"context"
	"log"
	"time"

	"ride-booking/pkg/database"
	"ride-booking/pkg/utils"

	"github.com/google/uuid"
)

const schema = `
CREATE TABLE IF NOT EXISTS rides (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	land TEXT NOT NULL,
	description TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS slots (
	id UUID PRIMARY KEY,
	ride_id UUID NOT NULL REFERENCES rides(id) ON DELETE CASCADE,
	start_time TIMESTAMPTZ NOT NULL,
	capacity INT NOT NULL CHECK (capacity > 0),
	booked INT NOT NULL DEFAULT 0 CHECK (booked >= 0 AND booked <= capacity),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS bookings (
	id UUID PRIMARY KEY,
	slot_id UUID NOT NULL REFERENCES slots(id) ON DELETE CASCADE,
	guest_name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_slots_ride_id ON slots(ride_id);
CREATE INDEX IF NOT EXISTS idx_bookings_slot_id ON bookings(slot_id);
CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at DESC);
`

const (
	slotsPerRide  = 10
	slotCapacity  = 12
	slotInterval  = 30 * time.Minute
	firstSlotHour = 10
)

type rideSeed struct {
	name, land, description string
}

var rides = []rideSeed{
	{"Skyline Soarer", "Tomorrow District", "A high-speed glide above a futuristic city."},
	{"Jungle Drift", "Adventure Bay", "A river escape through mysterious ruins."},
	{"Star Harbor Run", "Galaxy Port", "A mission-based starship run with dynamic routes."},
}

func main() {
	ctx := context.Background()

	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	log.Println("Schema ready")

	// Wipe in FK order
	for _, table := range []string{"bookings", "slots", "rides"} {
		if _, err := db.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("Failed to clear %s: %v", table, err)
		}
	}

	now := time.Now()
	firstStart := time.Date(now.Year(), now.Month(), now.Day(), firstSlotHour, 0, 0, 0, time.Local)

	slotCount := 0
	for _, ride := range rides {
		rideID := uuid.New()
		_, err := db.Exec(ctx,
			`INSERT INTO rides (id, name, land, description, created_at) VALUES ($1, $2, $3, $4, NOW())`,
			rideID, ride.name, ride.land, ride.description,
		)
		if err != nil {
			log.Fatalf("Failed to insert ride %s: %v", ride.name, err)
		}

		for i := 0; i < slotsPerRide; i++ {
			start := firstStart.Add(time.Duration(i) * slotInterval)
			_, err := db.Exec(ctx,
				`INSERT INTO slots (id, ride_id, start_time, capacity, booked, created_at)
				 VALUES ($1, $2, $3, $4, 0, NOW())`,
				uuid.New(), rideID, start, slotCapacity,
			)
			if err != nil {
				log.Fatalf("Failed to insert slot for %s: %v", ride.name, err)
			}
			slotCount++
		}
	}

	log.Printf("Seed complete: %d rides, %d slots", len(rides), slotCount)
}
