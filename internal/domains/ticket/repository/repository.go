package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"drivent/infras/otel"
	"drivent/infras/postgres"
	"drivent/internal/domains/ticket/model"
	"drivent/shared"
	"drivent/shared/constant"
	gRepo "drivent/shared/repository"
	"fmt"
)

// Ticket reads enrollment and ticket state owned by the registration
// service. Nothing here writes.
type Ticket interface {
	ExistEnrollment(ctx context.Context, userID int64) (bool, error)
	GetByUserID(ctx context.Context, userID int64) (model.Ticket, error)
}

type repositoryImpl struct {
	tickets     gRepo.Repository[model.Ticket]
	enrollments gRepo.Repository[model.Enrollment]
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Ticket {
	return &repositoryImpl{
		tickets:     gRepo.NewRepository[model.Ticket](model.EntityName, model.TableName, model.FieldID, db, otel),
		enrollments: gRepo.NewRepository[model.Enrollment](model.EnrollmentEntity, model.EnrollmentTableName, model.FieldID, db, otel),
		otel:        otel,
	}
}

func (r *repositoryImpl) ExistEnrollment(ctx context.Context, userID int64) (exist bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ticket.ExistEnrollment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err = r.enrollments.Exist(ctx, shared.FilterByID(userID, model.FieldUserID, model.EnrollmentTableName))
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}

	return exist, nil
}

// GetByUserID returns the zero Ticket when the user's enrollment has none.
func (r *repositoryImpl) GetByUserID(ctx context.Context, userID int64) (ticket model.Ticket, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ticket.GetByUserID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ticket, err = r.tickets.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.EnrollmentTableName))
	if err != nil {
		return ticket, fmt.Errorf("failed to get ticket: %w", err)
	}

	return ticket, nil
}
