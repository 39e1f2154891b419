package service_test

import (
	"context"
	"drivent/internal/domains/booking/model"
	"drivent/internal/domains/booking/repository"
	roomModel "drivent/internal/domains/room/model"
	gDto "drivent/shared/dto"
	"sync"
)

// memStore keeps rooms and bookings in memory. Its mutex plays the role of
// the room row lock, so Allocate and Reallocate are atomic like their
// transactional counterparts.
type memStore struct {
	mu       sync.Mutex
	rooms    map[int64]roomModel.Room
	bookings map[int64]model.Booking
	nextID   int64
}

func newMemStore(rooms ...roomModel.Room) *memStore {
	store := &memStore{
		rooms:    map[int64]roomModel.Room{},
		bookings: map[int64]model.Booking{},
	}

	for _, room := range rooms {
		store.rooms[room.ID] = room
	}

	return store
}

// eqValues collects the equality conditions of an AND filter group by column.
func eqValues(filter gDto.FilterGroup) map[string]any {
	values := map[string]any{}

	for _, f := range filter.Filters {
		if cond, ok := f.(gDto.Filter); ok && cond.Operator == gDto.FilterOperatorEq {
			values[cond.Field] = cond.Value
		}
	}

	return values
}

func (s *memStore) activeIn(roomID int64) int {
	count := 0

	for _, booking := range s.bookings {
		if booking.RoomID == roomID && booking.IsActive() {
			count++
		}
	}

	return count
}

func (s *memStore) activeOf(userID int64) (model.Booking, bool) {
	for _, booking := range s.bookings {
		if booking.UserID == userID && booking.IsActive() {
			return booking, true
		}
	}

	return model.Booking{}, false
}

type memRooms struct{ *memStore }

func (r memRooms) Insert(_ context.Context, room roomModel.Room) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	room.ID = r.nextID
	r.rooms[room.ID] = room

	return room.ID, nil
}

func (r memRooms) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (roomModel.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, _ := eqValues(filter)[roomModel.FieldID].(int64)

	return r.rooms[id], nil
}

func (r memRooms) GetAll(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]roomModel.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hotelID, _ := eqValues(filter)[roomModel.FieldHotelID].(int64)

	var rooms []roomModel.Room

	for _, room := range r.rooms {
		if room.HotelID == hotelID {
			rooms = append(rooms, room)
		}
	}

	return rooms, nil
}

func (r memRooms) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	room, err := r.Get(ctx, filter)

	return room.ID != 0, err
}

type memBookings struct{ *memStore }

func (b memBookings) GetActiveByUser(_ context.Context, userID int64) (model.Booking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	booking, _ := b.activeOf(userID)

	return booking, nil
}

func (b memBookings) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id, _ := eqValues(filter)[model.FieldID].(int64)

	return b.bookings[id], nil
}

func (b memBookings) Count(_ context.Context, filter gDto.FilterGroup) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	roomID, _ := eqValues(filter)[model.FieldRoomID].(int64)

	return b.activeIn(roomID), nil
}

func (b memBookings) Allocate(_ context.Context, booking model.Booking) (model.Booking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	room, ok := b.rooms[booking.RoomID]
	if !ok {
		return model.Booking{}, repository.ErrRoomNotFound
	}

	if b.activeIn(room.ID) >= room.Capacity {
		return model.Booking{}, repository.ErrRoomFull
	}

	if _, exists := b.activeOf(booking.UserID); exists {
		return model.Booking{}, repository.ErrBookingExists
	}

	b.nextID++
	booking.ID = b.nextID
	booking.Status = model.StatusActive
	b.bookings[booking.ID] = booking

	return booking, nil
}

func (b memBookings) Reallocate(_ context.Context, bookingID, userID, roomID int64) (model.Booking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	room, ok := b.rooms[roomID]
	if !ok {
		return model.Booking{}, repository.ErrRoomNotFound
	}

	previous, ok := b.bookings[bookingID]
	if !ok || previous.UserID != userID || !previous.IsActive() {
		return model.Booking{}, repository.ErrBookingNotFound
	}

	if previous.RoomID == roomID {
		return previous, nil
	}

	if b.activeIn(room.ID) >= room.Capacity {
		return model.Booking{}, repository.ErrRoomFull
	}

	moved := previous
	moved.RoomID = roomID
	b.bookings[bookingID] = moved

	return previous, nil
}

func (b memBookings) Cancel(_ context.Context, bookingID, userID int64) (model.Booking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	booking, ok := b.bookings[bookingID]
	if !ok || booking.UserID != userID || !booking.IsActive() {
		return model.Booking{}, repository.ErrBookingNotFound
	}

	booking.Status = model.StatusCancelled
	b.bookings[bookingID] = booking

	return booking, nil
}
