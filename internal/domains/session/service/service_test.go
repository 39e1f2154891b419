package service_test

import (
	"context"
	"drivent/infras/otel/mocks"
	sessionMocks "drivent/internal/domains/session/mocks"
	"drivent/internal/domains/session/service"
	gDto "drivent/shared/dto"
	"drivent/shared/failure"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSessionService_Validate(t *testing.T) {
	tests := []struct {
		name      string
		exist     bool
		repoErr   error
		wantCode  int
		wantNoErr bool
	}{
		{name: "live session", exist: true, wantNoErr: true},
		{name: "no session", exist: false, wantCode: http.StatusUnauthorized},
		{name: "storage failure", repoErr: errors.New("db down"), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := sessionMocks.NewMockSession(ctrl)
			mockRepo.EXPECT().
				Exist(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
					where, args := filter.GetWhereClause()

					assert.Equal(t, "(sessions.user_id = :user_id AND sessions.token = :token)", where)
					assert.Equal(t, int64(5), args["user_id"])
					assert.Equal(t, "tok", args["token"])

					return tt.exist, tt.repoErr
				})

			svc := service.New(mockRepo, mocks.NewOtel())

			err := svc.Validate(context.Background(), 5, "tok")

			if tt.wantNoErr {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
