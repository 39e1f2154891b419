package hotel

import (
	"context"
	"drivent/infras/otel"
	"drivent/internal/domains/hotel/model/dto"
	"drivent/internal/domains/hotel/service"
	"drivent/shared"
	"drivent/shared/constant"
	"drivent/shared/failure"
	"drivent/shared/validator"
	"drivent/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Post("/", handler.CreateHotel)
		routerGroup.Get("/{"+constant.RequestParamHotelID+"}", handler.GetHotelRooms)
	})
}

// GetHotels lists hotels for a user whose ticket includes accommodation.
// @Summary List hotels
// @Description List every hotel. The caller needs a paid, in-person ticket that includes hotel.
// @Tags Hotel
// @Produce json
// @Success 200 {object} response.Data[[]dto.HotelResponse]
// @Failure 401 {object} response.Error
// @Failure 402 {object} response.Error "TicketUnpaid, RemoteTicket or NoHotelEntitlement"
// @Failure 404 {object} response.Error "MissingEnrollment, MissingTicket or NoHotels"
// @Router /v1/hotels [get]
// @Security BearerAuth
func (handler *Handler) GetHotels(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	userID := shared.UserIDFromContext(ctx)
	if userID == 0 {
		response.WithError(writer, failure.Unauthorized("Unauthorized"))

		return
	}

	res, err := handler.service.GetHotels(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetHotelRooms returns one hotel with its rooms.
// @Summary Get hotel with rooms
// @Tags Hotel
// @Produce json
// @Param hotelId path int true "Hotel ID"
// @Success 200 {object} response.Data[dto.HotelWithRoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 402 {object} response.Error "TicketUnpaid, RemoteTicket or NoHotelEntitlement"
// @Failure 404 {object} response.Error "MissingEnrollment, MissingTicket, HotelNotFound or NoRooms"
// @Router /v1/hotels/{hotelId} [get]
// @Security BearerAuth
func (handler *Handler) GetHotelRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelRooms")
	defer scope.End()

	userID := shared.UserIDFromContext(ctx)
	if userID == 0 {
		response.WithError(writer, failure.Unauthorized("Unauthorized"))

		return
	}

	hotelID, err := shared.ConvertStringToID(chi.URLParam(request, constant.RequestParamHotelID))
	if err != nil {
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	res, err := handler.service.GetHotelRooms(ctx, hotelID, userID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateHotel creates a hotel from JSON or from a multipart form with an image upload.
// @Summary Create hotel
// @Tags Hotel
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body dto.CreateHotelRequest false "Hotel with image URL"
// @Param name formData string false "Hotel name"
// @Param image formData file false "Hotel image (png or jpeg, up to 1 MB)"
// @Success 201 {object} response.Data[dto.HotelResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/hotels [post]
// @Security BearerAuth
func (handler *Handler) CreateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	var (
		res dto.HotelResponse
		err error
	)

	if strings.HasPrefix(request.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeMultipartFormData) {
		res, err = handler.createWithImage(ctx, request)
	} else {
		req := dto.CreateHotelRequest{}

		if err = validator.Validate(request.Body, &req); err == nil {
			res, err = handler.service.Create(ctx, req)
		}
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")
		response.WithError(writer, err)

		return
	}

	scope.AddEvent("hotel created")

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) createWithImage(ctx context.Context, request *http.Request) (dto.HotelResponse, error) {
	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return dto.HotelResponse{}, failure.BadRequest(err)
	}

	req := dto.CreateHotelFormRequest{
		Name: request.FormValue("name"),
	}

	file, fileHeader, err := request.FormFile(constant.FormFileImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return dto.HotelResponse{}, err //nolint:wrapcheck
	}

	return handler.service.CreateWithImage(ctx, req) //nolint:wrapcheck
}
