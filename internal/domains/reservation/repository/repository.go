package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"carrental/infras/otel"
	"carrental/infras/postgres"
	carModel "carrental/internal/domains/car/model"
	"carrental/internal/domains/reservation/model"
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
	"github.com/lib/pq"
)

type Reservation interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, reservation model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Detail, bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Detail, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	// GetForUpdateTx reads the reservation and holds its row lock until tx ends.
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Reservation, bool, error)
	GetDetailTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Detail, bool, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, change model.StatusChange) error
	// FindOverlapping returns the earliest reservation of the car whose status is in
	// filter and whose range overlaps rng.
	FindOverlapping(ctx context.Context, carID int64, rng model.DateRange, filter model.StatusFilter) (model.Reservation, bool, error)
	FindOverlappingTx(ctx context.Context, tx *sqlx.Tx, carID int64, rng model.DateRange, filter model.StatusFilter, excludeID string) (model.Reservation, bool, error)
	// LatestActiveTx returns the active reservation of the car, other than excludeID,
	// that ends last.
	LatestActiveTx(ctx context.Context, tx *sqlx.Tx, carID int64, excludeID string) (model.Reservation, bool, error)
	// ListBlocking returns reservations in filter that end after day, earliest first.
	ListBlocking(ctx context.Context, carID int64, filter model.StatusFilter, day time.Time) ([]model.Reservation, error)
	ActiveWindows(ctx context.Context, carIDs []int64, day time.Time) (map[int64][]carModel.ActiveWindow, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Detail]
	plain gRepo.Repository[model.Reservation]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Detail](model.EntityName, model.TableName, model.FieldID, db, otel),
		plain:      gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) InsertTx(ctx context.Context, tx *sqlx.Tx, reservation model.Reservation) error {
	return r.plain.InsertTx(ctx, tx, reservation) //nolint:wrapcheck
}

func (r *repositoryImpl) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (reservation model.Reservation, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.GetForUpdateTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s.%s = $1 FOR UPDATE", r.plain.SelectColumns(), model.TableName, model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.GetContext(ctx, &reservation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return reservation, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return reservation, false, fmt.Errorf("failed to lock reservation: %w", err)
	}

	return reservation, true, nil
}

func (r *repositoryImpl) GetDetailTx(ctx context.Context, tx *sqlx.Tx, id string) (detail model.Detail, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.GetDetailTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s.%s = $1", r.SelectColumns(), r.From(), model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.GetContext(ctx, &detail, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return detail, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return detail, false, fmt.Errorf("failed to get reservation detail: %w", err)
	}

	return detail, true, nil
}

func (r *repositoryImpl) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, change model.StatusChange) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.UpdateStatusTx")
	defer scope.End()

	mod := map[string]any{
		model.FieldStatus:        change.Status,
		constant.FieldModifiedAt: change.At.UTC(),
		constant.FieldModifiedBy: change.Actor,
	}

	if change.Notes != nil {
		mod[model.FieldNotes] = *change.Notes
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq},
		},
	}

	return r.plain.UpdateTx(ctx, tx, mod, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) FindOverlapping(ctx context.Context, carID int64, rng model.DateRange, filter model.StatusFilter) (model.Reservation, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.FindOverlapping")
	defer scope.End()

	return r.findOverlapping(ctx, r.db.Write, carID, rng, filter, constant.Empty)
}

func (r *repositoryImpl) FindOverlappingTx(
	ctx context.Context, tx *sqlx.Tx, carID int64, rng model.DateRange, filter model.StatusFilter, excludeID string,
) (model.Reservation, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.FindOverlappingTx")
	defer scope.End()

	return r.findOverlapping(ctx, tx, carID, rng, filter, excludeID)
}

func (r *repositoryImpl) findOverlapping(
	ctx context.Context, q sqlx.QueryerContext, carID int64, rng model.DateRange, filter model.StatusFilter, excludeID string,
) (reservation model.Reservation, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.findOverlapping")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// Half-open ranges: [s1, e1) and [s2, e2) overlap when s1 < e2 and s2 < e1.
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE car_id = $1 AND status = ANY($2) AND start_date < $3 AND end_date > $4",
		r.plain.SelectColumns(), model.TableName,
	)
	args := []any{carID, pq.Array(filter.Strings()), rng.End, rng.Start}

	if excludeID != constant.Empty {
		query += " AND id <> $5"
		args = append(args, excludeID)
	}

	query += " ORDER BY start_date LIMIT 1"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = sqlx.GetContext(ctx, q, &reservation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return reservation, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return reservation, false, fmt.Errorf("failed to find overlapping reservation: %w", err)
	}

	return reservation, true, nil
}

func (r *repositoryImpl) LatestActiveTx(
	ctx context.Context, tx *sqlx.Tx, carID int64, excludeID string,
) (reservation model.Reservation, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.LatestActiveTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE car_id = $1 AND status = $2 AND id <> $3 ORDER BY end_date DESC LIMIT 1",
		r.plain.SelectColumns(), model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.GetContext(ctx, &reservation, query, carID, model.StatusActive, excludeID)
	if errors.Is(err, sql.ErrNoRows) {
		return reservation, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return reservation, false, fmt.Errorf("failed to find active reservation: %w", err)
	}

	return reservation, true, nil
}

func (r *repositoryImpl) ListBlocking(ctx context.Context, carID int64, filter model.StatusFilter, day time.Time) (reservations []model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.ListBlocking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE car_id = $1 AND status = ANY($2) AND end_date > $3 ORDER BY start_date",
		r.plain.SelectColumns(), model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	reservations = []model.Reservation{}

	err = r.db.Read.SelectContext(ctx, &reservations, query, carID, pq.Array(filter.Strings()), day)
	if err != nil {
		logger.ErrorWithStack(err)

		return reservations, fmt.Errorf("failed to list blocking reservations: %w", err)
	}

	return reservations, nil
}

type activeWindow struct {
	CarID     int64     `db:"car_id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
}

func (r *repositoryImpl) ActiveWindows(ctx context.Context, carIDs []int64, day time.Time) (windows map[int64][]carModel.ActiveWindow, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.ActiveWindows")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	windows = make(map[int64][]carModel.ActiveWindow, len(carIDs))
	if len(carIDs) == 0 {
		return windows, nil
	}

	query := "SELECT car_id, start_date, end_date FROM reservations " +
		"WHERE status = $1 AND car_id = ANY($2) AND start_date <= $3 AND end_date > $3"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []activeWindow{}

	err = r.db.Read.SelectContext(ctx, &rows, query, model.StatusActive, pq.Array(carIDs), day)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to load active windows: %w", err)
	}

	for _, row := range rows {
		windows[row.CarID] = append(windows[row.CarID], carModel.ActiveWindow{Start: row.StartDate, End: row.EndDate})
	}

	return windows, nil
}
