package entity

// Ride is an attraction guests can book slots for. Rides are created by the
// seed process and never change afterwards.
type Ride struct {
	Base
	Name        string `db:"name"`
	Land        string `db:"land"`
	Description string `db:"description"`
}
