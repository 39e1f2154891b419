package model

import "drivent/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldName     = "name"
	FieldCapacity = "capacity"
	FieldHotelID  = "hotel_id"
)

type Room struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	HotelID  int64  `db:"hotel_id"`
	model.Metadata
}
