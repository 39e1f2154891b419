package repository

import (
	"context"
	"drivent/infras/otel/mocks"
	"drivent/shared/dto"
	"drivent/shared/model"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRoom struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	HotelID  int64  `db:"hotel_id"`
	model.Metadata
}

type sampleTicket struct {
	ID            int64  `db:"id"`
	Status        string `db:"status"`
	UserID        int64  `db:"user_id" table:"enrollments"`
	IsRemote      bool   `db:"is_remote" table:"ticket_types"`
	TicketTypeRef string `db:"ticket_type_name" table:"ticket_types" column:"name"`
}

func (sampleTicket) GetJoinQuery() string {
	return "JOIN enrollments ON enrollments.id = tickets.enrollment_id"
}

func TestGetColumns(t *testing.T) {
	columns, insertColumns := getColumns("rooms", "id", reflect.TypeOf(sampleRoom{}))

	assert.Equal(t, []string{"name", "capacity", "hotel_id", "created_at", "updated_at"}, insertColumns)
	assert.Len(t, columns, 6)
	assert.Equal(t, column{name: "id", table: "rooms"}, columns[0])
}

func TestGetColumns_JoinedTables(t *testing.T) {
	columns, insertColumns := getColumns("tickets", "id", reflect.TypeOf(sampleTicket{}))

	assert.Equal(t, []string{"status"}, insertColumns)
	assert.Contains(t, columns, column{name: "user_id", table: "enrollments"})
	assert.Contains(t, columns, column{name: "name", table: "ticket_types", alias: "ticket_type_name"})
}

func TestNewRepository_Queries(t *testing.T) {
	repo := NewRepository[sampleRoom]("room", "rooms", "id", nil, mocks.NewOtel())

	assert.Equal(t,
		"INSERT INTO rooms (name, capacity, hotel_id, created_at, updated_at) VALUES (:name, :capacity, :hotel_id, :created_at, :updated_at) RETURNING id",
		repo.insertQuery(),
	)
	assert.Equal(t,
		"rooms.id, rooms.name, rooms.capacity, rooms.hotel_id, rooms.created_at, rooms.updated_at",
		repo.getSelectQuery(),
	)
	assert.Equal(t, "rooms.id, rooms.name", repo.getSelectQuery("id", "name"))
	assert.Empty(t, repo.join)
}

func TestNewRepository_JoinQuery(t *testing.T) {
	repo := NewRepository[sampleTicket]("ticket", "tickets", "id", nil, mocks.NewOtel())

	assert.Equal(t, "JOIN enrollments ON enrollments.id = tickets.enrollment_id", repo.join)
	assert.Equal(t,
		"tickets.id, tickets.status, enrollments.user_id, ticket_types.is_remote, ticket_types.name AS ticket_type_name",
		repo.getSelectQuery(),
	)
}

func TestBuildWhereClause(t *testing.T) {
	repo := NewRepository[sampleRoom]("room", "rooms", "id", nil, mocks.NewOtel())

	where, args := repo.BuildWhereClause(dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "hotel_id", Value: int64(4), Operator: dto.FilterOperatorEq, Table: "rooms"},
		},
	})

	assert.Equal(t, " WHERE (rooms.hotel_id = :hotel_id) ", where)
	assert.Equal(t, map[string]any{"hotel_id": int64(4)}, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestPageClause(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected string
		args     map[string]any
	}{
		{name: "nothing", params: dto.QueryParams{}, expected: "", args: map[string]any{}},
		{
			name:     "sort only",
			params:   dto.QueryParams{SortBy: "id", SortDir: "ASC"},
			expected: "ORDER BY id ASC",
			args:     map[string]any{},
		},
		{
			name:     "limit only",
			params:   dto.QueryParams{Limit: 10},
			expected: "LIMIT :limit",
			args:     map[string]any{"limit": 10},
		},
		{
			name:     "sorted page",
			params:   dto.QueryParams{SortBy: "id", SortDir: "DESC", Page: 3, Limit: 10},
			expected: "ORDER BY id DESC LIMIT :limit OFFSET :offset",
			args:     map[string]any{"limit": 10, "offset": 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]any{}

			assert.Equal(t, tt.expected, pageClause(tt.params, args))
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestExist_RequiresFilter(t *testing.T) {
	repo := NewRepository[sampleRoom]("room", "rooms", "id", nil, mocks.NewOtel())

	exist, err := repo.Exist(context.Background(), dto.FilterGroup{})

	assert.ErrorIs(t, err, errRequiredFilter)
	assert.False(t, exist)
}
