package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Ticket=MockTicketService

import (
	"context"
	"drivent/infras/otel"
	"drivent/internal/domains/ticket/repository"
	"drivent/shared/constant"
	"drivent/shared/failure"

	"github.com/rs/zerolog/log"
)

type Ticket interface {
	// CheckHotelEligibility reports whether userID may see accommodation data.
	// It returns nil when allowed and a *failure.Failure naming the cause otherwise.
	CheckHotelEligibility(ctx context.Context, userID int64) error
}

type serviceImpl struct {
	repo repository.Ticket
	otel otel.Otel
}

func New(repo repository.Ticket, otel otel.Otel) Ticket {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) CheckHotelEligibility(ctx context.Context, userID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.CheckHotelEligibility")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("ticket.user_id", userID)

	enrolled, err := s.repo.ExistEnrollment(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("failed to check enrollment")

		return failure.FromStorage(err)
	}

	if !enrolled {
		return failure.MissingEnrollmentError
	}

	ticket, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("failed to get ticket")

		return failure.FromStorage(err)
	}

	switch {
	case ticket.ID == 0:
		return failure.MissingTicketError
	case !ticket.IsPaid():
		return failure.TicketUnpaidError
	case ticket.IsRemote:
		return failure.RemoteTicketError
	case !ticket.IncludesHotel:
		return failure.NoHotelEntitlementError
	}

	return nil
}
