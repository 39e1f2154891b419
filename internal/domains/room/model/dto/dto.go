package dto

import (
	"drivent/internal/domains/room/model"
	gDto "drivent/shared/dto"
	gModel "drivent/shared/model"
	"drivent/shared/timezone"
)

type CreateRoomRequest struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
	HotelID  int64  `json:"hotelId"  validate:"required,gt=0"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	now := timezone.Now()

	return model.Room{
		Name:     c.Name,
		Capacity: c.Capacity,
		HotelID:  c.HotelID,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	HotelID  int64  `json:"hotelId"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.HotelID = model.HotelID
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// Capacity is the occupancy snapshot of a room at read time.
type Capacity struct {
	RoomID     int64 `json:"roomId"`
	Occupied   int   `json:"occupied"`
	Capacity   int   `json:"capacity"`
	HasVacancy bool  `json:"hasVacancy"`
}

func NewCapacity(room model.Room, occupied int) Capacity {
	return Capacity{
		RoomID:     room.ID,
		Occupied:   occupied,
		Capacity:   room.Capacity,
		HasVacancy: occupied < room.Capacity,
	}
}

type RoomOccupancyResponse struct {
	RoomResponse
	Occupied   int  `json:"occupied"`
	HasVacancy bool `json:"hasVacancy"`
}
