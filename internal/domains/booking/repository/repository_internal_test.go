package repository

import (
	"drivent/internal/domains/booking/model"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "unique violation on the active booking index",
			err:  fmt.Errorf("failed to insert data (booking): %w", &pq.Error{Code: "23505"}),
			want: ErrBookingExists,
		},
		{
			name: "room removed under the insert",
			err:  &pq.Error{Code: "23503"},
			want: ErrRoomNotFound,
		},
		{
			name: "sentinel passes through",
			err:  ErrRoomFull,
			want: ErrRoomFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.err), tt.want)
		})
	}

	raw := errors.New("connection reset")
	assert.Equal(t, raw, translateError(raw))
}

func TestActiveFilter(t *testing.T) {
	filter := ActiveFilter(model.FieldRoomID, int64(3))

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.room_id = :room_id AND bookings.status = :status)", where)
	assert.Equal(t, map[string]any{"room_id": int64(3), "status": model.StatusActive}, args)
}
