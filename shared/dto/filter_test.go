package dto_test

import (
	"drivent/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Filter{Field: "room_id", Value: int64(7), Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.room_id = :room_id",
			wantArgs:  map[string]any{"room_id": int64(7)},
		},
		{
			name:      "custom arg name",
			filter:    dto.Filter{ArgName: "owner", Field: "user_id", Value: int64(3), Operator: dto.FilterOperatorEq},
			wantWhere: "user_id = :owner",
			wantArgs:  map[string]any{"owner": int64(3)},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "status", Value: []string{"ACTIVE", "CANCELLED"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "ACTIVE", "status_1": "CANCELLED"},
		},
		{
			name:      "in with scalar is ignored",
			filter:    dto.Filter{Field: "status", Value: "ACTIVE", Operator: dto.FilterOperatorIn},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "image", Operator: dto.FilterIsNull, Table: "hotels"},
			wantWhere: "hotels.image IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "name", Value: "x", Operator: "regex"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Value: int64(1), Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.Filter{Field: "status", Value: "ACTIVE", Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.Filter{Field: "ignored", Operator: "unknown"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.room_id = :room_id AND bookings.status = :status)", where)
	assert.Equal(t, map[string]any{"room_id": int64(1), "status": "ACTIVE"}, args)
}

func TestFilterGroup_DefaultsToAnd(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "a", Value: 1, Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "b", Value: 2, Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "c", Value: 3, Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, _ := group.GetWhereClause()

	assert.Equal(t, "(a = :a AND (b = :b OR c = :c))", where)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
