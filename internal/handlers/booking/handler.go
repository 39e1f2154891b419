package booking

import (
	"drivent/infras/otel"
	"drivent/internal/domains/booking/model/dto"
	"drivent/internal/domains/booking/service"
	"drivent/shared"
	"drivent/shared/constant"
	"drivent/shared/failure"
	"drivent/shared/validator"
	"drivent/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBooking)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Put("/{"+constant.RequestParamBookingID+"}", handler.UpdateBooking)
		routerGroup.Delete("/{"+constant.RequestParamBookingID+"}", handler.CancelBooking)
	})
}

// GetBooking returns the caller's active booking.
// @Summary Get my booking
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error "BookingNotFound or RoomNotFound"
// @Router /v1/booking [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	userID := shared.UserIDFromContext(ctx)
	if userID == 0 {
		response.WithError(writer, failure.Unauthorized("Unauthorized"))

		return
	}

	res, err := handler.service.GetByUser(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateBooking books a room for the caller.
// @Summary Create booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookingRequest true "Room to book"
// @Success 201 {object} response.Data[dto.BookingRoomResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error "RoomFull"
// @Failure 404 {object} response.Error "RoomNotFound"
// @Failure 409 {object} response.Error "BookingExists"
// @Router /v1/booking [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	userID := shared.UserIDFromContext(ctx)
	if userID == 0 {
		response.WithError(writer, failure.Unauthorized("Unauthorized"))

		return
	}

	req := dto.BookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("userID", userID).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdateBooking moves the caller's booking to another room.
// @Summary Change booking room
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingId path int true "Booking ID"
// @Param request body dto.BookingRequest true "Target room"
// @Success 200 {object} response.Data[dto.BookingRoomResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error "RoomFull"
// @Failure 404 {object} response.Error "BookingNotFound or RoomNotFound"
// @Router /v1/booking/{bookingId} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	userID := shared.UserIDFromContext(ctx)
	if userID == 0 {
		response.WithError(writer, failure.Unauthorized("Unauthorized"))

		return
	}

	bookingID, err := shared.ConvertStringToID(chi.URLParam(request, constant.RequestParamBookingID))
	if err != nil {
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.BookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, userID, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bookingID", bookingID).Msg("failed to update booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking releases the caller's booking.
// @Summary Cancel booking
// @Tags Booking
// @Produce json
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error "BookingNotFound"
// @Router /v1/booking/{bookingId} [delete]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	userID := shared.UserIDFromContext(ctx)
	if userID == 0 {
		response.WithError(writer, failure.Unauthorized("Unauthorized"))

		return
	}

	bookingID, err := shared.ConvertStringToID(chi.URLParam(request, constant.RequestParamBookingID))
	if err != nil {
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	if err := handler.service.Cancel(ctx, userID, bookingID); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}
