package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"drivent/config"
	"drivent/infras/otel"
	"drivent/infras/s3"
	"drivent/internal/domains/hotel/model"
	"drivent/internal/domains/hotel/model/dto"
	"drivent/internal/domains/hotel/repository"
	roomModel "drivent/internal/domains/room/model"
	roomDto "drivent/internal/domains/room/model/dto"
	roomRepo "drivent/internal/domains/room/repository"
	ticketService "drivent/internal/domains/ticket/service"
	"drivent/shared"
	"drivent/shared/cache"
	"drivent/shared/constant"
	gDto "drivent/shared/dto"
	"drivent/shared/failure"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const imageDirectory = "hotels"

type Hotel interface {
	// GetHotels lists every hotel once the caller passes the eligibility gate.
	GetHotels(ctx context.Context, userID int64) ([]dto.HotelResponse, error)
	// GetHotelRooms returns one hotel with its rooms once the caller passes the eligibility gate.
	GetHotelRooms(ctx context.Context, hotelID, userID int64) (dto.HotelWithRoomsResponse, error)

	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	CreateWithImage(ctx context.Context, req dto.CreateHotelFormRequest) (dto.HotelResponse, error)
}

type serviceImpl struct {
	repo      repository.Hotel
	roomRepo  roomRepo.Room
	ticketSvc ticketService.Ticket
	s3        s3.S3
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Hotel,
	roomRepo roomRepo.Room,
	ticketSvc ticketService.Ticket,
	s3 s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Hotel {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		ticketSvc: ticketSvc,
		s3:        s3,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) GetHotels(ctx context.Context, userID int64) (res []dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetHotels")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ticketSvc.CheckHotelEligibility(ctx, userID); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err := s.cache.Get(ctx, model.CacheKeyList, &res); err == nil && len(res) > 0 {
		log.Debug().Str("cacheKey", model.CacheKeyList).Msg("cache hit for hotels")

		return res, nil
	}

	hotels, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return nil, failure.FromStorage(err)
	}

	if len(hotels) == 0 {
		return nil, failure.NoHotelsError
	}

	res = dto.FromModels(hotels)

	s.saveCache(ctx, model.CacheKeyList, res)

	return res, nil
}

func (s *serviceImpl) GetHotelRooms(ctx context.Context, hotelID, userID int64) (res dto.HotelWithRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetHotelRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("hotel.id", hotelID)

	if err = s.ticketSvc.CheckHotelEligibility(ctx, userID); err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := cache.BuildKey(model.CacheKeyGet, strconv.FormatInt(hotelID, 10))

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil && res.ID != 0 {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(hotelID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("hotelID", hotelID).Msg("failed to get hotel")

		return res, failure.FromStorage(err)
	}

	if hotel.ID == 0 {
		return res, failure.HotelNotFoundError
	}

	rooms, err := s.roomRepo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: roomModel.FieldID, SortDir: gDto.SortDirAsc},
		shared.FilterByID(hotelID, roomModel.FieldHotelID, roomModel.TableName),
	)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", hotelID).Msg("failed to get hotel rooms")

		return res, failure.FromStorage(err)
	}

	if len(rooms) == 0 {
		return res, failure.NoRoomsError
	}

	res.FromModel(hotel)
	res.Rooms = roomDto.FromModels(rooms)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.insert(ctx, req.ToModel())
}

func (s *serviceImpl) CreateWithImage(ctx context.Context, req dto.CreateHotelFormRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.CreateWithImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filename := uuid.NewString() + filepath.Ext(req.Image.Filename)

	url, err := s.s3.UploadFile(ctx, imageDirectory, req.ImageFile, req.Image, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload hotel image")

		return res, failure.ServiceUnavailable("failed to upload image")
	}

	base := dto.CreateHotelRequest{Name: req.Name, Image: url}

	res, err = s.insert(ctx, base.ToModel())
	if err != nil {
		if delErr := s.s3.DeleteFile(ctx, s.s3.GetObjectNameFromURL(url)); delErr != nil {
			log.Error().Err(delErr).Str("url", url).Msg("failed to delete orphaned hotel image")
		}

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) insert(ctx context.Context, hotel model.Hotel) (res dto.HotelResponse, err error) {
	hotel.ID, err = s.repo.Insert(ctx, hotel)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert hotel")

		return res, failure.FromStorage(err)
	}

	cache.InvalidateCaches(ctx, s.cache, model.CacheKeyList+constant.Asterix)

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(fmt.Errorf("save %s: %w", key, err)).Msg("failed to save hotel cache")
	}
}
