package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"ride-booking/internal/data/entity"
	"ride-booking/internal/data/repository"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the postgres repositories. Reserve
// and Cancel hold the mutex across their whole read-modify-write, mirroring
// the all-or-nothing transactions of the real store, which makes the fake
// usable as a harness for the concurrent capacity tests.
type memStore struct {
	mu       sync.Mutex
	rides    map[uuid.UUID]*entity.Ride
	slots    map[uuid.UUID]*entity.Slot
	bookings map[uuid.UUID]*entity.Booking

	// slotReads counts slot lookups so tests can assert that invalid
	// input is rejected before any storage access.
	slotReads int
}

func newMemStore() *memStore {
	return &memStore{
		rides:    make(map[uuid.UUID]*entity.Ride),
		slots:    make(map[uuid.UUID]*entity.Slot),
		bookings: make(map[uuid.UUID]*entity.Booking),
	}
}

func (m *memStore) repos() *repository.Repository {
	return &repository.Repository{
		Ride:    rideView{m},
		Slot:    slotView{m},
		Booking: bookingView{m},
	}
}

func (m *memStore) addRide(name, land string) *entity.Ride {
	m.mu.Lock()
	defer m.mu.Unlock()
	ride := &entity.Ride{
		Base: entity.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		Name: name,
		Land: land,
	}
	m.rides[ride.ID] = ride
	return ride
}

func (m *memStore) addSlot(rideID uuid.UUID, start time.Time, capacity, booked int) *entity.Slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	slot := &entity.Slot{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		RideID:    rideID,
		StartTime: start,
		Capacity:  capacity,
		Booked:    booked,
	}
	m.slots[slot.ID] = slot
	return slot
}

func (m *memStore) slotBooked(id uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[id].Booked
}

func (m *memStore) bookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

func (m *memStore) slotReadCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slotReads
}

// rideView implements repository.RideRepository.
type rideView struct{ *memStore }

func (v rideView) FindAll(ctx context.Context) ([]*entity.Ride, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var rides []*entity.Ride
	for _, r := range v.rides {
		copied := *r
		rides = append(rides, &copied)
	}
	sort.Slice(rides, func(i, j int) bool { return rides[i].CreatedAt.After(rides[j].CreatedAt) })
	return rides, nil
}

// slotView implements repository.SlotRepository.
type slotView struct{ *memStore }

func (v slotView) FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.slotReads++
	slot, ok := v.slots[id]
	if !ok {
		return nil, nil
	}
	copied := *slot
	return &copied, nil
}

func (v slotView) FindByRideID(ctx context.Context, rideID uuid.UUID) ([]*entity.Slot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var slots []*entity.Slot
	for _, s := range v.slots {
		if s.RideID == rideID {
			copied := *s
			slots = append(slots, &copied)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].StartTime.Before(slots[j].StartTime) })
	return slots, nil
}

// bookingView implements repository.BookingRepository.
type bookingView struct{ *memStore }

func (v bookingView) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	booking, ok := v.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (v bookingView) FindRecent(ctx context.Context, limit int) ([]*entity.BookingDetail, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var details []*entity.BookingDetail
	for _, b := range v.bookings {
		slot := v.slots[b.SlotID]
		ride := v.rides[slot.RideID]
		details = append(details, &entity.BookingDetail{
			Booking:   *b,
			StartTime: slot.StartTime,
			RideName:  ride.Name,
			Land:      ride.Land,
		})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].CreatedAt.After(details[j].CreatedAt) })
	if len(details) > limit {
		details = details[:limit]
	}
	return details, nil
}

func (v bookingView) Reserve(ctx context.Context, slotID uuid.UUID, guestName string) (*entity.Booking, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	slot, ok := v.slots[slotID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if slot.Booked >= slot.Capacity {
		return nil, repository.ErrSlotFull
	}
	slot.Booked++
	booking := &entity.Booking{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		SlotID:    slotID,
		GuestName: guestName,
	}
	v.bookings[booking.ID] = booking
	return booking, nil
}

func (v bookingView) Cancel(ctx context.Context, booking *entity.Booking) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.bookings[booking.ID]; !ok {
		return repository.ErrNotFound
	}
	slot := v.slots[booking.SlotID]
	if slot.Booked <= 0 {
		return repository.ErrTxFailed
	}
	slot.Booked--
	delete(v.bookings, booking.ID)
	return nil
}
