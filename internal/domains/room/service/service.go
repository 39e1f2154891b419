package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"drivent/infras/otel"
	bookingModel "drivent/internal/domains/booking/model"
	bookingRepo "drivent/internal/domains/booking/repository"
	hotelModel "drivent/internal/domains/hotel/model"
	hotelRepo "drivent/internal/domains/hotel/repository"
	"drivent/internal/domains/room/model"
	"drivent/internal/domains/room/model/dto"
	"drivent/internal/domains/room/repository"
	"drivent/shared"
	"drivent/shared/cache"
	"drivent/shared/constant"
	"drivent/shared/failure"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomOccupancyResponse, error)

	// CheckCapacity is the fail-fast admission pre-check. It reads occupancy
	// without locking; the allocator repeats the check under the room lock.
	CheckCapacity(ctx context.Context, roomID int64) (dto.Capacity, error)
}

type serviceImpl struct {
	repo        repository.Room
	hotelRepo   hotelRepo.Hotel
	bookingRepo bookingRepo.Booking
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Room, hotelRepo hotelRepo.Hotel, bookingRepo bookingRepo.Booking, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:        repo,
		hotelRepo:   hotelRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.hotelRepo.Exist(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("hotelID", req.HotelID).Msg("failed to check hotel existence")

		return res, failure.FromStorage(err)
	}

	if !exist {
		return res, failure.HotelNotFoundError
	}

	room := req.ToModel()

	room.ID, err = s.repo.Insert(ctx, room)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert room")

		return res, failure.FromStorage(err)
	}

	cache.InvalidateCaches(ctx, s.cache, cache.BuildKey(hotelModel.CacheKeyGet, strconv.FormatInt(req.HotelID, 10))+constant.Asterix)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomOccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, occupied, err := s.occupancy(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)
	res.Occupied = occupied
	res.HasVacancy = occupied < room.Capacity

	return res, nil
}

func (s *serviceImpl) CheckCapacity(ctx context.Context, roomID int64) (res dto.Capacity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.CheckCapacity")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("room.id", roomID)

	room, occupied, err := s.occupancy(ctx, roomID)
	if err != nil {
		return res, err
	}

	return dto.NewCapacity(room, occupied), nil
}

func (s *serviceImpl) occupancy(ctx context.Context, roomID int64) (model.Room, int, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(roomID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("roomID", roomID).Msg("failed to get room")

		return room, 0, failure.FromStorage(err)
	}

	if room.ID == 0 {
		return room, 0, failure.RoomNotFoundError
	}

	occupied, err := s.bookingRepo.Count(ctx, bookingRepo.ActiveFilter(bookingModel.FieldRoomID, room.ID))
	if err != nil {
		log.Error().Err(err).Int64("roomID", roomID).Msg("failed to count bookings")

		return room, 0, failure.FromStorage(err)
	}

	return room, occupied, nil
}
