package dto

import (
	"drivent/internal/domains/hotel/model"
	roomDto "drivent/internal/domains/room/model/dto"
	gDto "drivent/shared/dto"
	gModel "drivent/shared/model"
	"drivent/shared/timezone"
	"mime/multipart"
)

type CreateHotelRequest struct {
	Name  string `json:"name"  validate:"required,max=255"`
	Image string `json:"image" validate:"required,url"`
}

func (c *CreateHotelRequest) ToModel() model.Hotel {
	now := timezone.Now()

	return model.Hotel{
		Name:  c.Name,
		Image: c.Image,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// CreateHotelFormRequest is the multipart variant where the image is uploaded
// instead of referenced by URL.
type CreateHotelFormRequest struct {
	Name      string                `form:"name"  validate:"required,max=255"`
	Image     *multipart.FileHeader `form:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `form:"-"     validate:"-"`
}

type HotelResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Hotel) []HotelResponse {
	res := make([]HotelResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type HotelWithRoomsResponse struct {
	HotelResponse
	Rooms []roomDto.RoomResponse `json:"Rooms"`
}
