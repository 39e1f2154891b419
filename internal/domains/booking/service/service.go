package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"drivent/config"
	"drivent/infras/kafka"
	"drivent/infras/otel"
	"drivent/internal/domains/booking/model"
	"drivent/internal/domains/booking/model/dto"
	"drivent/internal/domains/booking/repository"
	roomModel "drivent/internal/domains/room/model"
	roomRepo "drivent/internal/domains/room/repository"
	roomService "drivent/internal/domains/room/service"
	"drivent/shared"
	"drivent/shared/constant"
	"drivent/shared/failure"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const publishTimeout = 2 * time.Second

type Booking interface {
	// GetByUser returns the caller's active booking with its room.
	GetByUser(ctx context.Context, userID int64) (dto.BookingResponse, error)

	// Create admits the caller into req.RoomID. At most one active booking
	// per user; a room never holds more active bookings than its capacity.
	Create(ctx context.Context, userID int64, req dto.BookingRequest) (dto.BookingRoomResponse, error)

	// Update moves the caller's active booking to req.RoomID. Moving into the
	// room already held succeeds without a write.
	Update(ctx context.Context, userID, bookingID int64, req dto.BookingRequest) (dto.BookingRoomResponse, error)

	// Cancel releases the caller's active booking.
	Cancel(ctx context.Context, userID, bookingID int64) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	roomSvc  roomService.Room
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	roomSvc roomService.Room,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		roomSvc:  roomSvc,
		kafka:    kafka,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) GetByUser(ctx context.Context, userID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.user_id", userID)

	booking, err := s.repo.GetActiveByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("failed to get booking")

		return res, failure.FromStorage(err)
	}

	if booking.ID == 0 {
		return res, failure.BookingNotFoundError
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("roomID", booking.RoomID).Msg("failed to get booked room")

		return res, failure.FromStorage(err)
	}

	if room.ID == 0 {
		return res, failure.RoomNotFoundError
	}

	res.ID = booking.ID
	res.Room.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, userID int64, req dto.BookingRequest) (res dto.BookingRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"booking.user_id": userID,
		"booking.room_id": req.RoomID,
	})

	if err = s.admit(ctx, req.RoomID); err != nil {
		return res, err
	}

	booking, err := s.repo.Allocate(ctx, req.ToModel(userID))
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Int64("roomID", req.RoomID).Msg("failed to allocate booking")

		return res, toFailure(err)
	}

	s.publish(ctx, dto.NewEvent(dto.EventBookingCreated, booking))

	return dto.BookingRoomResponse{RoomID: booking.RoomID}, nil
}

func (s *serviceImpl) Update(ctx context.Context, userID, bookingID int64, req dto.BookingRequest) (res dto.BookingRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"booking.id":      bookingID,
		"booking.user_id": userID,
		"booking.room_id": req.RoomID,
	})

	current, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("bookingID", bookingID).Msg("failed to get booking")

		return res, failure.FromStorage(err)
	}

	if current.ID == 0 || current.UserID != userID || !current.IsActive() {
		return res, failure.BookingNotFoundError
	}

	res.RoomID = req.RoomID

	if current.RoomID == req.RoomID {
		return res, nil
	}

	if err = s.admit(ctx, req.RoomID); err != nil {
		return res, err
	}

	previous, err := s.repo.Reallocate(ctx, bookingID, userID, req.RoomID)
	if err != nil {
		log.Error().Err(err).Int64("bookingID", bookingID).Int64("roomID", req.RoomID).Msg("failed to move booking")

		return dto.BookingRoomResponse{}, toFailure(err)
	}

	if previous.RoomID != req.RoomID {
		event := dto.NewEvent(dto.EventBookingMoved, previous)
		event.RoomID = req.RoomID
		event.FromRoomID = previous.RoomID

		s.publish(ctx, event)
	}

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, userID, bookingID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.id", bookingID)

	booking, err := s.repo.Cancel(ctx, bookingID, userID)
	if err != nil {
		log.Error().Err(err).Int64("bookingID", bookingID).Msg("failed to cancel booking")

		return toFailure(err)
	}

	s.publish(ctx, dto.NewEvent(dto.EventBookingCancelled, booking))

	return nil
}

// admit rejects rooms that are missing or already full before any lock is taken.
func (s *serviceImpl) admit(ctx context.Context, roomID int64) error {
	capacity, err := s.roomSvc.CheckCapacity(ctx, roomID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !capacity.HasVacancy {
		return failure.RoomFullError
	}

	return nil
}

// publish runs after the write committed. The event outlives a cancelled
// request and never holds the response for longer than publishTimeout.
func (s *serviceImpl) publish(ctx context.Context, event dto.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   strconv.FormatInt(event.BookingID, 10),
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.BookingTopic, msg); err != nil {
		log.Warn().Err(err).Str("type", event.Type).Int64("bookingID", event.BookingID).Msg("failed to publish booking event")
	}
}

func toFailure(err error) error {
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		return failure.RoomNotFoundError
	case errors.Is(err, repository.ErrRoomFull):
		return failure.RoomFullError
	case errors.Is(err, repository.ErrBookingNotFound):
		return failure.BookingNotFoundError
	case errors.Is(err, repository.ErrBookingExists):
		return failure.BookingExistsError
	}

	return failure.FromStorage(err)
}
