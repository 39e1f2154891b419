package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"drivent/infras/otel"
	"drivent/infras/postgres"
	"drivent/internal/domains/booking/model"
	roomModel "drivent/internal/domains/room/model"
	"drivent/shared/constant"
	gDto "drivent/shared/dto"
	gRepo "drivent/shared/repository"
	"drivent/shared/timezone"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is at full capacity")
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingExists   = errors.New("user already has an active booking")
)

const (
	queryLockRoom = "SELECT capacity FROM " + roomModel.TableName + " WHERE id = $1 FOR UPDATE"

	queryCountActive = "SELECT COUNT(id) FROM " + model.TableName +
		" WHERE room_id = $1 AND status = '" + model.StatusActive + "'"

	queryUserHasActive = "SELECT EXISTS(SELECT 1 FROM " + model.TableName +
		" WHERE user_id = $1 AND status = '" + model.StatusActive + "')"

	queryLockBooking = "SELECT id, user_id, room_id, status, created_at, updated_at FROM " + model.TableName +
		" WHERE id = $1 AND user_id = $2 AND status = '" + model.StatusActive + "' FOR UPDATE"

	queryMoveBooking = "UPDATE " + model.TableName + " SET room_id = $1, updated_at = $2 WHERE id = $3"

	queryCancelBooking = "UPDATE " + model.TableName + " SET status = '" + model.StatusCancelled + "', updated_at = $1" +
		" WHERE id = $2 AND user_id = $3 AND status = '" + model.StatusActive + "'" +
		" RETURNING id, user_id, room_id, status, created_at, updated_at"
)

type Booking interface {
	GetActiveByUser(ctx context.Context, userID int64) (model.Booking, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)

	// Allocate admits booking into its room. The capacity check and the
	// insert run under the room's row lock, so concurrent calls can never
	// push the room past its capacity.
	Allocate(ctx context.Context, booking model.Booking) (model.Booking, error)

	// Reallocate moves the caller's active booking into roomID under the
	// target room's row lock. It returns the booking as it was before the move.
	Reallocate(ctx context.Context, bookingID, userID, roomID int64) (model.Booking, error)

	// Cancel marks the caller's active booking CANCELLED, freeing its seat.
	Cancel(ctx context.Context, bookingID, userID int64) (model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ActiveFilter matches the ACTIVE bookings whose field equals value.
func ActiveFilter(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusActive, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func (r *repositoryImpl) GetActiveByUser(ctx context.Context, userID int64) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetActiveByUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err = r.Repository.Get(ctx, ActiveFilter(model.FieldUserID, userID))
	if err != nil {
		return booking, fmt.Errorf("failed to get active booking: %w", err)
	}

	return booking, nil
}

func (r *repositoryImpl) Allocate(ctx context.Context, booking model.Booking) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Allocate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"booking.user_id": booking.UserID,
		"booking.room_id": booking.RoomID,
	})

	ctx, cancel := r.db.WithDeadline(ctx)
	defer cancel()

	err = postgres.WithTx(ctx, r.db.Write, func(tx *sqlx.Tx) error {
		capacity, err := lockRoom(ctx, tx, booking.RoomID)
		if err != nil {
			return err
		}

		if err := ensureVacancy(ctx, tx, booking.RoomID, capacity); err != nil {
			return err
		}

		var hasActive bool
		if err := tx.GetContext(ctx, &hasActive, queryUserHasActive, booking.UserID); err != nil {
			return fmt.Errorf("failed to check active booking: %w", err)
		}

		if hasActive {
			return ErrBookingExists
		}

		booking.Status = model.StatusActive

		id, err := r.InsertTx(ctx, tx, booking)
		if err != nil {
			return err //nolint:wrapcheck
		}

		booking.ID = id

		return nil
	})
	if err != nil {
		return model.Booking{}, translateError(err)
	}

	return booking, nil
}

func (r *repositoryImpl) Reallocate(ctx context.Context, bookingID, userID, roomID int64) (previous model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reallocate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"booking.id":      bookingID,
		"booking.room_id": roomID,
	})

	ctx, cancel := r.db.WithDeadline(ctx)
	defer cancel()

	err = postgres.WithTx(ctx, r.db.Write, func(tx *sqlx.Tx) error {
		// Room first, then booking: every writer takes locks in this order.
		capacity, err := lockRoom(ctx, tx, roomID)
		if err != nil {
			return err
		}

		if err := tx.GetContext(ctx, &previous, queryLockBooking, bookingID, userID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBookingNotFound
			}

			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if previous.RoomID == roomID {
			return nil
		}

		if err := ensureVacancy(ctx, tx, roomID, capacity); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, queryMoveBooking, roomID, timezone.Now(), bookingID); err != nil {
			return fmt.Errorf("failed to move booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return model.Booking{}, translateError(err)
	}

	return previous, nil
}

func (r *repositoryImpl) Cancel(ctx context.Context, bookingID, userID int64) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ctx, cancel := r.db.WithDeadline(ctx)
	defer cancel()

	err = r.db.Write.GetContext(ctx, &booking, queryCancelBooking, timezone.Now(), bookingID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to cancel booking: %w", err)
	}

	return booking, nil
}

// lockRoom takes the row lock that serializes every admission into roomID
// and returns the room's capacity.
func lockRoom(ctx context.Context, tx *sqlx.Tx, roomID int64) (int, error) {
	var capacity int
	if err := tx.GetContext(ctx, &capacity, queryLockRoom, roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrRoomNotFound
		}

		return 0, fmt.Errorf("failed to lock room: %w", err)
	}

	return capacity, nil
}

// ensureVacancy counts the active bookings of a room already locked by
// lockRoom and rejects the admission when it is full.
func ensureVacancy(ctx context.Context, tx *sqlx.Tx, roomID int64, capacity int) error {
	var occupied int
	if err := tx.GetContext(ctx, &occupied, queryCountActive, roomID); err != nil {
		return fmt.Errorf("failed to count bookings: %w", err)
	}

	if occupied >= capacity {
		return ErrRoomFull
	}

	return nil
}

// translateError maps driver errors that carry business meaning onto the
// sentinels. The partial unique index on active bookings per user turns a
// lost race between two creates into a unique violation.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case constant.PqErrorCodeUniqueViolation:
			return ErrBookingExists
		case constant.PqErrorCodeFkViolation:
			return ErrRoomNotFound
		}
	}

	return err
}
