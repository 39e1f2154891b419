package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Session=MockSessionService

import (
	"context"
	"drivent/infras/otel"
	"drivent/internal/domains/session/model"
	"drivent/internal/domains/session/repository"
	"drivent/shared/constant"
	gDto "drivent/shared/dto"
	"drivent/shared/failure"

	"github.com/rs/zerolog/log"
)

// Session confirms that a validated token still belongs to a live sign-in.
type Session interface {
	Validate(ctx context.Context, userID int64, token string) error
}

type serviceImpl struct {
	repo repository.Session
	otel otel.Otel
}

func New(repo repository.Session, otel otel.Otel) Session {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Validate(ctx context.Context, userID int64, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Validate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Value: userID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldToken, Value: token, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("failed to look up session")

		return failure.FromStorage(err)
	}

	if !exist {
		return failure.Unauthorized("Session not found")
	}

	return nil
}
