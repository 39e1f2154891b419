// Package timezone pins every timestamp the service produces to one
// configured location.
//
//	now := timezone.Now()
//	stamp := timezone.Format(booking.UpdatedAt, constant.DateFormat)
//
// The location comes from APP_TIMEZONE (an IANA name such as
// "America/Sao_Paulo") and is loaded when the package is imported.
package timezone
