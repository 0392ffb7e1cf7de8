package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"carrental/infras/otel"
	"carrental/infras/postgres"
	"carrental/internal/domains/car/model"
	"carrental/shared/constant"
	gDto "carrental/shared/dto"
	"carrental/shared/logger"
	gRepo "carrental/shared/repository"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Car interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Car, bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Car, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	// GetForUpdateTx reads the car and holds its row lock until tx ends.
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (model.Car, bool, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id int64, status model.Status, availableFrom time.Time) error
	// ReleaseLapsed moves reserved cars with no active rental spanning today back to available.
	ReleaseLapsed(ctx context.Context, today time.Time) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Car]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Car {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Car](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (car model.Car, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".car.GetForUpdateTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s.%s = $1 FOR UPDATE", r.SelectColumns(), model.TableName, model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.GetContext(ctx, &car, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return car, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return car, false, fmt.Errorf("failed to lock car: %w", err)
	}

	return car, true, nil
}

func (r *repositoryImpl) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id int64, status model.Status, availableFrom time.Time) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".car.UpdateStatusTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	mod := map[string]any{
		model.FieldStatus:        status,
		model.FieldAvailableFrom: availableFrom,
		constant.FieldModifiedAt: time.Now().UTC(),
	}

	return r.UpdateTx(ctx, tx, mod, filterByID(id)) //nolint:wrapcheck
}

func (r *repositoryImpl) ReleaseLapsed(ctx context.Context, today time.Time) (affected int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".car.ReleaseLapsed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := `UPDATE cars SET status = $1, available_from = $2, modified_at = NOW()
		WHERE status = $3 AND NOT EXISTS (
			SELECT 1 FROM reservations r
			WHERE r.car_id = cars.id AND r.status = 'active' AND r.start_date <= $2 AND r.end_date > $2
		)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.db.Write.ExecContext(ctx, query, model.StatusAvailable, today, model.StatusReserved)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to release lapsed cars: %w", err)
	}

	affected, err = result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read released car count: %w", err)
	}

	return affected, nil
}

func filterByID(id int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq},
		},
	}
}
