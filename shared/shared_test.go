package shared_test

import (
	"context"
	"drivent/config"
	"drivent/shared"
	"drivent/shared/constant"
	"drivent/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConvertStringToID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "valid id", input: "42", want: 42},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ConvertStringToID(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(int64(123), "id", "rooms")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    int64(123),
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}

	assert.Equal(t, expected, result)

	where, args := result.GetWhereClause()
	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(123)}, args)
}

func TestQueryTimeout(t *testing.T) {
	assert.Equal(t, constant.DefaultQueryTimeout, shared.QueryTimeout(nil))

	cfg := &config.Config{}
	assert.Equal(t, constant.DefaultQueryTimeout, shared.QueryTimeout(cfg))

	cfg.DB.Postgres.QueryTimeoutSeconds = 2
	assert.Equal(t, 2*time.Second, shared.QueryTimeout(cfg))
}

func TestUserIDFromContext(t *testing.T) {
	assert.Equal(t, int64(0), shared.UserIDFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, int64(17))
	assert.Equal(t, int64(17), shared.UserIDFromContext(ctx))

	ctx = context.WithValue(context.Background(), constant.ContextKeyUserID, "17")
	assert.Equal(t, int64(0), shared.UserIDFromContext(ctx))
}
