package service_test

import (
	"context"
	"drivent/infras/otel/mocks"
	ticketMocks "drivent/internal/domains/ticket/mocks"
	"drivent/internal/domains/ticket/model"
	"drivent/internal/domains/ticket/service"
	"drivent/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTicketService_CheckHotelEligibility(t *testing.T) {
	const userID int64 = 10

	paidWithHotel := model.Ticket{ID: 1, Status: model.StatusPaid, UserID: userID, IncludesHotel: true}

	tests := []struct {
		name       string
		setupMock  func(repo *ticketMocks.MockTicket)
		wantCode   int
		wantReason failure.Reason
	}{
		{
			name: "eligible",
			setupMock: func(repo *ticketMocks.MockTicket) {
				repo.EXPECT().ExistEnrollment(gomock.Any(), userID).Return(true, nil)
				repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(paidWithHotel, nil)
			},
		},
		{
			name: "no enrollment",
			setupMock: func(repo *ticketMocks.MockTicket) {
				repo.EXPECT().ExistEnrollment(gomock.Any(), userID).Return(false, nil)
			},
			wantCode:   http.StatusNotFound,
			wantReason: failure.ReasonMissingEnrollment,
		},
		{
			name: "no ticket",
			setupMock: func(repo *ticketMocks.MockTicket) {
				repo.EXPECT().ExistEnrollment(gomock.Any(), userID).Return(true, nil)
				repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(model.Ticket{}, nil)
			},
			wantCode:   http.StatusNotFound,
			wantReason: failure.ReasonMissingTicket,
		},
		{
			name: "ticket reserved but not paid",
			setupMock: func(repo *ticketMocks.MockTicket) {
				ticket := paidWithHotel
				ticket.Status = model.StatusReserved

				repo.EXPECT().ExistEnrollment(gomock.Any(), userID).Return(true, nil)
				repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(ticket, nil)
			},
			wantCode:   http.StatusPaymentRequired,
			wantReason: failure.ReasonTicketUnpaid,
		},
		{
			name: "paid remote ticket",
			setupMock: func(repo *ticketMocks.MockTicket) {
				ticket := paidWithHotel
				ticket.IsRemote = true

				repo.EXPECT().ExistEnrollment(gomock.Any(), userID).Return(true, nil)
				repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(ticket, nil)
			},
			wantCode:   http.StatusPaymentRequired,
			wantReason: failure.ReasonRemoteTicket,
		},
		{
			name: "paid ticket without hotel",
			setupMock: func(repo *ticketMocks.MockTicket) {
				ticket := paidWithHotel
				ticket.IncludesHotel = false

				repo.EXPECT().ExistEnrollment(gomock.Any(), userID).Return(true, nil)
				repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(ticket, nil)
			},
			wantCode:   http.StatusPaymentRequired,
			wantReason: failure.ReasonNoHotelEntitlement,
		},
		{
			name: "unpaid is reported before remote",
			setupMock: func(repo *ticketMocks.MockTicket) {
				ticket := paidWithHotel
				ticket.Status = model.StatusReserved
				ticket.IsRemote = true

				repo.EXPECT().ExistEnrollment(gomock.Any(), userID).Return(true, nil)
				repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(ticket, nil)
			},
			wantCode:   http.StatusPaymentRequired,
			wantReason: failure.ReasonTicketUnpaid,
		},
		{
			name: "enrollment lookup times out",
			setupMock: func(repo *ticketMocks.MockTicket) {
				repo.EXPECT().ExistEnrollment(gomock.Any(), userID).
					Return(false, fmt.Errorf("failed to check enrollment: %w", context.DeadlineExceeded))
			},
			wantCode:   http.StatusGatewayTimeout,
			wantReason: failure.ReasonStorageTimeout,
		},
		{
			name: "ticket lookup fails",
			setupMock: func(repo *ticketMocks.MockTicket) {
				repo.EXPECT().ExistEnrollment(gomock.Any(), userID).Return(true, nil)
				repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(model.Ticket{}, errors.New("connection reset"))
			},
			wantCode:   http.StatusServiceUnavailable,
			wantReason: failure.ReasonStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := ticketMocks.NewMockTicket(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, mocks.NewOtel())

			err := svc.CheckHotelEligibility(context.Background(), userID)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, tt.wantReason, failure.GetReason(err))
		})
	}
}
