package room_test

import (
	"drivent/infras/otel/mocks"
	roomMocks "drivent/internal/domains/room/mocks"
	"drivent/internal/domains/room/model/dto"
	"drivent/internal/handlers/room"
	"drivent/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, setup func(svc *roomMocks.MockRoomService)) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := roomMocks.NewMockRoomService(ctrl)

	if setup != nil {
		setup(svc)
	}

	handler := room.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		setup    func(svc *roomMocks.MockRoomService)
		wantCode int
		wantBody string
	}{
		{
			name:   "create room",
			method: http.MethodPost,
			path:   "/rooms",
			body:   `{"name":"101","capacity":2,"hotelId":3}`,
			setup: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateRoomRequest{Name: "101", Capacity: 2, HotelID: 3}).
					Return(dto.RoomResponse{ID: 8, Name: "101", Capacity: 2, HotelID: 3}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `"id":8`,
		},
		{
			name:     "create rejects zero capacity",
			method:   http.MethodPost,
			path:     "/rooms",
			body:     `{"name":"101","capacity":0,"hotelId":3}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "create rejects malformed body",
			method:   http.MethodPost,
			path:     "/rooms",
			body:     `{"name":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "create for missing hotel",
			method: http.MethodPost,
			path:   "/rooms",
			body:   `{"name":"101","capacity":2,"hotelId":99}`,
			setup: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.RoomResponse{}, failure.HotelNotFoundError)
			},
			wantCode: http.StatusNotFound,
			wantBody: `"reason":"HotelNotFound"`,
		},
		{
			name:   "get room with occupancy",
			method: http.MethodGet,
			path:   "/rooms/8",
			setup: func(svc *roomMocks.MockRoomService) {
				res := dto.RoomOccupancyResponse{Occupied: 1, HasVacancy: true}
				res.ID = 8

				svc.EXPECT().Get(gomock.Any(), int64(8)).Return(res, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"hasVacancy":true`,
		},
		{
			name:     "get room with invalid id",
			method:   http.MethodGet,
			path:     "/rooms/abc",
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "get missing room",
			method: http.MethodGet,
			path:   "/rooms/5",
			setup: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().Get(gomock.Any(), int64(5)).Return(dto.RoomOccupancyResponse{}, failure.RoomNotFoundError)
			},
			wantCode: http.StatusNotFound,
			wantBody: `"reason":"RoomNotFound"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			newRouter(t, tt.setup).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.Contains(t, recorder.Body.String(), tt.wantBody)
			}
		})
	}
}
