package model

import "drivent/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID    = "id"
	FieldName  = "name"
	FieldImage = "image"
)

// Cache prefixes shared by every service that reads or invalidates hotel views.
// CacheKeyGet entries embed the hotel's rooms.
const (
	CacheKeyGet  = "hotel:get"
	CacheKeyList = "hotel:gets"
)

type Hotel struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Image string `db:"image"`
	model.Metadata
}
