package model

import "drivent/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldRoomID = "room_id"
	FieldStatus = "status"
)

const (
	StatusActive    = "ACTIVE"
	StatusCancelled = "CANCELLED"
)

// Booking moves from ACTIVE to CANCELLED and never back. Only ACTIVE
// bookings count toward room occupancy.
type Booking struct {
	ID     int64  `db:"id"`
	UserID int64  `db:"user_id"`
	RoomID int64  `db:"room_id"`
	Status string `db:"status"`
	model.Metadata
}

func (b Booking) IsActive() bool {
	return b.Status == StatusActive
}
