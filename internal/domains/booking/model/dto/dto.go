package dto

import (
	"drivent/internal/domains/booking/model"
	roomDto "drivent/internal/domains/room/model/dto"
	gModel "drivent/shared/model"
	"drivent/shared/timezone"
	"time"

	"github.com/google/uuid"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingMoved     = "booking.moved"
	EventBookingCancelled = "booking.cancelled"
)

type BookingRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}

func (b *BookingRequest) ToModel(userID int64) model.Booking {
	now := timezone.Now()

	return model.Booking{
		UserID: userID,
		RoomID: b.RoomID,
		Status: model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type BookingRoomResponse struct {
	RoomID int64 `json:"roomId"`
}

type BookingResponse struct {
	ID   int64                `json:"id"`
	Room roomDto.RoomResponse `json:"Room"`
}

// Event is published after every booking write that changes occupancy.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	BookingID  int64     `json:"bookingId"`
	UserID     int64     `json:"userId"`
	RoomID     int64     `json:"roomId"`
	FromRoomID int64     `json:"fromRoomId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewEvent(eventType string, booking model.Booking) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		RoomID:     booking.RoomID,
		OccurredAt: timezone.Now(),
	}
}
