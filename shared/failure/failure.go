package failure

import (
	"context"
	"errors"
	"net/http"
)

// Reason is a machine readable cause carried next to the HTTP code so clients
// can tell apart failures that share a status.
type Reason string

const (
	ReasonMissingEnrollment  Reason = "MissingEnrollment"
	ReasonMissingTicket      Reason = "MissingTicket"
	ReasonTicketUnpaid       Reason = "TicketUnpaid"
	ReasonRemoteTicket       Reason = "RemoteTicket"
	ReasonNoHotelEntitlement Reason = "NoHotelEntitlement"
	ReasonNoHotels           Reason = "NoHotels"
	ReasonHotelNotFound      Reason = "HotelNotFound"
	ReasonNoRooms            Reason = "NoRooms"
	ReasonRoomNotFound       Reason = "RoomNotFound"
	ReasonRoomFull           Reason = "RoomFull"
	ReasonBookingNotFound    Reason = "BookingNotFound"
	ReasonBookingExists      Reason = "BookingExists"
	ReasonStorageTimeout     Reason = "StorageTimeout"
	ReasonStorageUnavailable Reason = "StorageUnavailable"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  Reason `json:"reason,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

var (
	MissingEnrollmentError  = &Failure{Code: http.StatusNotFound, Message: "enrollment not found", Reason: ReasonMissingEnrollment}
	MissingTicketError      = &Failure{Code: http.StatusNotFound, Message: "ticket not found", Reason: ReasonMissingTicket}
	TicketUnpaidError       = &Failure{Code: http.StatusPaymentRequired, Message: "ticket has not been paid", Reason: ReasonTicketUnpaid}
	RemoteTicketError       = &Failure{Code: http.StatusPaymentRequired, Message: "remote tickets do not include accommodation", Reason: ReasonRemoteTicket}
	NoHotelEntitlementError = &Failure{Code: http.StatusPaymentRequired, Message: "ticket type does not include hotel", Reason: ReasonNoHotelEntitlement}
	NoHotelsError           = &Failure{Code: http.StatusNotFound, Message: "no hotels available", Reason: ReasonNoHotels}
	HotelNotFoundError      = &Failure{Code: http.StatusNotFound, Message: "hotel not found", Reason: ReasonHotelNotFound}
	NoRoomsError            = &Failure{Code: http.StatusNotFound, Message: "hotel has no rooms", Reason: ReasonNoRooms}
	RoomNotFoundError       = &Failure{Code: http.StatusNotFound, Message: "room not found", Reason: ReasonRoomNotFound}
	RoomFullError           = &Failure{Code: http.StatusForbidden, Message: "room is at full capacity", Reason: ReasonRoomFull}
	BookingNotFoundError    = &Failure{Code: http.StatusNotFound, Message: "booking not found", Reason: ReasonBookingNotFound}
	BookingExistsError      = &Failure{Code: http.StatusConflict, Message: "user already has an active booking", Reason: ReasonBookingExists}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// GatewayTimeout returns a new Failure for a storage call that ran past its deadline.
func GatewayTimeout(msg string) error {
	return &Failure{
		Code:    http.StatusGatewayTimeout,
		Message: msg,
		Reason:  ReasonStorageTimeout,
	}
}

// ServiceUnavailable returns a new Failure for an unreachable or failing backing store.
func ServiceUnavailable(msg string) error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: msg,
		Reason:  ReasonStorageUnavailable,
	}
}

// FromStorage classifies a raw storage error. Failures pass through untouched.
func FromStorage(err error) error {
	if err == nil {
		return nil
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return GatewayTimeout("storage did not respond in time")
	}

	return ServiceUnavailable("storage is unavailable")
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the reason of an error interface, empty when there is none.
func GetReason(err error) Reason {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ""
}
