package http

import (
	"drivent/config"
	"drivent/infras/jwt"
	kafkaMocks "drivent/infras/kafka/mocks"
	otelMocks "drivent/infras/otel/mocks"
	sessionMocks "drivent/internal/domains/session/mocks"
	"drivent/permissions"
	"drivent/shared/constant"
	"drivent/transport/http/middleware"
	"drivent/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (*HTTP, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	kafka := kafkaMocks.NewMockClient(ctrl)
	ot := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.JWT.Secret = "secret"

	app := middleware.NewAppMiddleware(ot, cfg, nil)
	authRole := middleware.NewAuthRoleMiddleware(jwt.New(cfg), sessionMocks.NewMockSessionService(ctrl), ot, permissions.Get(), cfg)

	return New(cfg, router.New(router.DomainHandlers{}, app, authRole), ot, kafka), kafka
}

func TestHealth(t *testing.T) {
	server, _ := newServer(t)
	handler := server.Handler()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	server.state.Store(int32(ServerStateInGracePeriod))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestVersionedRoutesRequireAuth(t *testing.T) {
	server, _ := newServer(t)

	for _, path := range []string{"/v1/hotels", "/v1/booking", "/v1/rooms/1"} {
		recorder := httptest.NewRecorder()
		server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code, path)
	}
}

func TestShutdownClosesPublishers(t *testing.T) {
	server, kafka := newServer(t)

	kafka.EXPECT().Close().Return(nil)

	server.shutdown()
}
