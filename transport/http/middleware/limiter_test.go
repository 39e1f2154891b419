package middleware

import (
	"context"
	"drivent/config"
	"drivent/infras/otel/mocks"
	"drivent/shared/cache"
	cacheMocks "drivent/shared/cache/mocks"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newLimited(t *testing.T, store *cacheMocks.MockRedisCache, trustProxy bool) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.TrustProxyHeaders = trustProxy
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := NewAppMiddleware(mocks.NewOtel(), cfg, store)

	return mw.RateLimit()(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	}))
}

func TestRateLimit(t *testing.T) {
	const key = "limiter:10.0.0.1"

	tests := []struct {
		name      string
		setupMock func(store *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "first request",
			setupMock: func(store *cacheMocks.MockRedisCache) {
				store.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil)
				store.EXPECT().Save(gomock.Any(), key, 1, 60).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "over the limit",
			setupMock: func(store *cacheMocks.MockRedisCache) {
				store.EXPECT().Get(gomock.Any(), key, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*int) = 2

						return nil
					})
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name: "count is kept when saving fails",
			setupMock: func(store *cacheMocks.MockRedisCache) {
				store.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil)
				store.EXPECT().Save(gomock.Any(), key, 1, 60).Return(errors.New("redis down"))
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "cache outage fails open",
			setupMock: func(store *cacheMocks.MockRedisCache) {
				store.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("redis down"))
			},
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(store)

			request := httptest.NewRequest(http.MethodGet, "/v1/hotels", nil)
			request.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")

			recorder := httptest.NewRecorder()
			newLimited(t, store, true).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestRateLimit_Headers(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := cacheMocks.NewMockRedisCache(ctrl)
	store.EXPECT().Get(gomock.Any(), "limiter:192.0.2.1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*int) = 2

			return nil
		})

	request := httptest.NewRequest(http.MethodGet, "/v1/booking", nil)
	request.RemoteAddr = "192.0.2.1:1234"

	recorder := httptest.NewRecorder()
	newLimited(t, store, false).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "2", recorder.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", recorder.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", recorder.Header().Get("Retry-After"))
}

func TestRateLimit_IgnoresForwardedForWithoutTrustedProxy(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := cacheMocks.NewMockRedisCache(ctrl)
	store.EXPECT().Get(gomock.Any(), "limiter:192.0.2.1", gomock.Any()).Return(cache.Nil)
	store.EXPECT().Save(gomock.Any(), "limiter:192.0.2.1", 1, 60).Return(nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/hotels", nil)
	request.RemoteAddr = "192.0.2.1:1234"
	request.Header.Set("X-Forwarded-For", "203.0.113.9")

	recorder := httptest.NewRecorder()
	newLimited(t, store, false).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestClientAddress(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientAddress(request, true))

	request.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", clientAddress(request, true))

	request.Header.Set("X-Real-IP", " 198.51.100.7 ")
	assert.Equal(t, "198.51.100.7", clientAddress(request, true))

	request.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.2")
	assert.Equal(t, "203.0.113.9", clientAddress(request, true))

	request.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientAddress(request, false))

	request.Header.Set("X-Forwarded-For", " , 10.0.0.2")
	assert.Equal(t, "198.51.100.7", clientAddress(request, true))
}
