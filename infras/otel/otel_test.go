package otel_test

import (
	"context"
	"drivent/infras/otel"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder() (otel.Otel, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	return otel.NewWithProvider(provider), recorder
}

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	ot, recorder := newRecorder()

	_, scope := ot.NewScope(context.Background(), "service", "booking.Create")
	scope.SetAttributes(map[string]any{
		"booking.user_id": int64(7),
		"booking.active":  true,
		"room.name":       "101",
	})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("room is full"))
	scope.End()

	spans := recorder.Ended()
	assert.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "booking.Create", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "room is full", span.Status().Description)
	assert.Contains(t, span.Attributes(), attribute.Int64("booking.user_id", 7))
	assert.Contains(t, span.Attributes(), attribute.Bool("booking.active", true))
	assert.Contains(t, span.Attributes(), attribute.String("room.name", "101"))
}

func TestScope_CancelledIsNotAnError(t *testing.T) {
	ot, recorder := newRecorder()

	_, scope := ot.NewScope(context.Background(), "handler", "booking.Get")
	scope.TraceIfError(fmt.Errorf("reading booking: %w", context.Canceled))
	scope.End()

	span := recorder.Ended()[0]
	assert.Equal(t, codes.Unset, span.Status().Code)
	assert.Len(t, span.Events(), 1)
	assert.Equal(t, "cancelled", span.Events()[0].Name)
}

func TestScope_AttributeKinds(t *testing.T) {
	ot, recorder := newRecorder()

	_, scope := ot.NewScope(context.Background(), "repository", "room.Get")
	scope.SetAttribute("room.ids", []int64{1, 2})
	scope.SetAttribute("room.load", 0.5)
	scope.SetAttribute("room.capacity", int32(3))
	scope.SetAttribute("room.other", struct{ N int }{N: 4})
	scope.End()

	attrs := recorder.Ended()[0].Attributes()
	assert.Contains(t, attrs, attribute.Int64Slice("room.ids", []int64{1, 2}))
	assert.Contains(t, attrs, attribute.Float64("room.load", 0.5))
	assert.Contains(t, attrs, attribute.Int64("room.capacity", 3))
	assert.Contains(t, attrs, attribute.String("room.other", "{4}"))
}

func TestOtel_Shutdown(t *testing.T) {
	ot, _ := newRecorder()

	assert.NoError(t, ot.Shutdown(context.Background()))
}
