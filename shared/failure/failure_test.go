package failure_test

import (
	"context"
	"drivent/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		reason  failure.Reason
	}{
		{name: "MissingEnrollment", failure: failure.MissingEnrollmentError, code: http.StatusNotFound, reason: failure.ReasonMissingEnrollment},
		{name: "MissingTicket", failure: failure.MissingTicketError, code: http.StatusNotFound, reason: failure.ReasonMissingTicket},
		{name: "TicketUnpaid", failure: failure.TicketUnpaidError, code: http.StatusPaymentRequired, reason: failure.ReasonTicketUnpaid},
		{name: "RemoteTicket", failure: failure.RemoteTicketError, code: http.StatusPaymentRequired, reason: failure.ReasonRemoteTicket},
		{name: "NoHotelEntitlement", failure: failure.NoHotelEntitlementError, code: http.StatusPaymentRequired, reason: failure.ReasonNoHotelEntitlement},
		{name: "NoHotels", failure: failure.NoHotelsError, code: http.StatusNotFound, reason: failure.ReasonNoHotels},
		{name: "HotelNotFound", failure: failure.HotelNotFoundError, code: http.StatusNotFound, reason: failure.ReasonHotelNotFound},
		{name: "NoRooms", failure: failure.NoRoomsError, code: http.StatusNotFound, reason: failure.ReasonNoRooms},
		{name: "RoomNotFound", failure: failure.RoomNotFoundError, code: http.StatusNotFound, reason: failure.ReasonRoomNotFound},
		{name: "RoomFull", failure: failure.RoomFullError, code: http.StatusForbidden, reason: failure.ReasonRoomFull},
		{name: "BookingNotFound", failure: failure.BookingNotFoundError, code: http.StatusNotFound, reason: failure.ReasonBookingNotFound},
		{name: "BookingExists", failure: failure.BookingExistsError, code: http.StatusConflict, reason: failure.ReasonBookingExists},
		{name: "ForbiddenError", failure: failure.ForbiddenError, code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.Equal(t, tt.reason, tt.failure.Reason)
			assert.NotEmpty(t, tt.failure.Message)
		})
	}
}

func TestBadRequest(t *testing.T) {
	assert.Nil(t, failure.BadRequest(nil))

	err := failure.BadRequest(errors.New("validation failed"))
	assert.Equal(t, &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"}, err)
}

func TestBadRequestFromString(t *testing.T) {
	err := failure.BadRequestFromString("custom bad request")

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, "custom bad request", err.Error())
}

func TestUnauthorized(t *testing.T) {
	err := failure.Unauthorized("token expired")

	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	assert.Equal(t, "token expired", err.Error())
}

func TestFromStorage(t *testing.T) {
	tests := []struct {
		name       string
		input      error
		wantCode   int
		wantReason failure.Reason
	}{
		{
			name:       "deadline exceeded",
			input:      context.DeadlineExceeded,
			wantCode:   http.StatusGatewayTimeout,
			wantReason: failure.ReasonStorageTimeout,
		},
		{
			name:       "wrapped deadline exceeded",
			input:      fmt.Errorf("count bookings: %w", context.DeadlineExceeded),
			wantCode:   http.StatusGatewayTimeout,
			wantReason: failure.ReasonStorageTimeout,
		},
		{
			name:       "connection refused",
			input:      errors.New("dial tcp: connection refused"),
			wantCode:   http.StatusServiceUnavailable,
			wantReason: failure.ReasonStorageUnavailable,
		},
		{
			name:       "failure passes through",
			input:      failure.RoomFullError,
			wantCode:   http.StatusForbidden,
			wantReason: failure.ReasonRoomFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.FromStorage(tt.input)

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, tt.wantReason, failure.GetReason(err))
		})
	}

	assert.Nil(t, failure.FromStorage(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "failure error", input: &failure.Failure{Code: http.StatusBadRequest, Message: "test"}, expected: http.StatusBadRequest},
		{name: "wrapped failure error", input: fmt.Errorf("wrap: %w", failure.RoomFullError), expected: http.StatusForbidden},
		{name: "regular error", input: errors.New("regular error"), expected: http.StatusInternalServerError},
		{name: "nil error", input: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestGetReason(t *testing.T) {
	assert.Equal(t, failure.ReasonBookingExists, failure.GetReason(failure.BookingExistsError))
	assert.Empty(t, failure.GetReason(errors.New("plain")))
	assert.Empty(t, failure.GetReason(failure.BadRequestFromString("no reason")))
}
