package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental/infras/otel/mocks"
	"carrental/infras/postgres"
	carModel "carrental/internal/domains/car/model"
	"carrental/internal/domains/reservation/model"
	"carrental/internal/domains/reservation/repository"
)

func date(day int) time.Time {
	return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
}

func newRepo(t *testing.T) (repository.Reservation, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	xdb := sqlx.NewDb(db, "postgres")

	return repository.New(postgres.NewFromDB(xdb), mocks.NewOtel()), xdb, mock
}

var reservationColumns = []string{"id", "car_id", "customer_id", "location_id", "start_date", "end_date", "status"}

func TestReservationRepository_FindOverlapping(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE car_id = $1 AND status = ANY($2) AND start_date < $3 AND end_date > $4 ORDER BY start_date LIMIT 1")).
		WithArgs(int64(1), sqlmock.AnyArg(), date(12), date(10)).
		WillReturnRows(sqlmock.NewRows(reservationColumns).
			AddRow("a", 1, 42, 2, date(11), date(14), "active"))

	got, found, err := repo.FindOverlapping(context.Background(), 1, model.DateRange{Start: date(10), End: date(12)}, model.StrictFilter)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, model.StatusActive, got.Status)
	assert.Equal(t, date(11), got.StartDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_FindOverlappingTx_ExcludesSelf(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("AND end_date > $4 AND id <> $5 ORDER BY start_date LIMIT 1")).
		WithArgs(int64(1), sqlmock.AnyArg(), date(12), date(10), "self").
		WillReturnRows(sqlmock.NewRows(reservationColumns))
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)

	_, found, err := repo.FindOverlappingTx(context.Background(), tx, 1, model.DateRange{Start: date(10), End: date(12)}, model.StrictFilter, "self")

	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_GetForUpdateTx(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE reservations.id = $1 FOR UPDATE")).
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows(reservationColumns).AddRow("a", 1, 42, 2, date(10), date(12), "confirmed"))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	got, found, err := repo.GetForUpdateTx(context.Background(), tx, "a")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, model.StatusConfirmed, got.Status)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_UpdateStatusTx(t *testing.T) {
	repo, db, mock := newRepo(t)
	notes := "keys handed over"

	at := time.Date(2025, 3, 10, 16, 0, 0, 0, time.FixedZone("WIB", 7*60*60))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET modified_at = $1, modified_by = $2, notes = $3, status = $4  WHERE (id = $5)")).
		WithArgs(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), "admin-1", notes, "active", "a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	change := model.StatusChange{Status: model.StatusActive, Notes: &notes, Actor: "admin-1", At: at}
	require.NoError(t, repo.UpdateStatusTx(context.Background(), tx, "a", change))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_LatestActiveTx(t *testing.T) {
	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		wantFound bool
		wantEnd   time.Time
	}{
		{
			name:      "another rental is active",
			rows:      sqlmock.NewRows(reservationColumns).AddRow("b", 1, 42, 2, date(12), date(16), "active"),
			wantFound: true,
			wantEnd:   date(16),
		},
		{
			name: "no other active rental",
			rows: sqlmock.NewRows(reservationColumns),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db, mock := newRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta("WHERE car_id = $1 AND status = $2 AND id <> $3 ORDER BY end_date DESC LIMIT 1")).
				WithArgs(int64(1), "active", "a").
				WillReturnRows(tt.rows)
			mock.ExpectRollback()

			tx, err := db.Beginx()
			require.NoError(t, err)

			got, found, err := repo.LatestActiveTx(context.Background(), tx, 1, "a")

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantEnd, got.EndDate)
			require.NoError(t, tx.Rollback())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReservationRepository_ActiveWindows(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT car_id, start_date, end_date FROM reservations WHERE status = $1")).
		WithArgs("active", sqlmock.AnyArg(), date(10)).
		WillReturnRows(sqlmock.NewRows([]string{"car_id", "start_date", "end_date"}).
			AddRow(1, date(9), date(12)).
			AddRow(3, date(10), date(11)))

	got, err := repo.ActiveWindows(context.Background(), []int64{1, 2, 3}, date(10))

	require.NoError(t, err)
	assert.Equal(t, map[int64][]carModel.ActiveWindow{
		1: {{Start: date(9), End: date(12)}},
		3: {{Start: date(10), End: date(11)}},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_ActiveWindows_NoCars(t *testing.T) {
	repo, _, mock := newRepo(t)

	got, err := repo.ActiveWindows(context.Background(), nil, date(10))

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_ListBlocking(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE car_id = $1 AND status = ANY($2) AND end_date > $3 ORDER BY start_date")).
		WithArgs(int64(1), sqlmock.AnyArg(), date(10)).
		WillReturnError(assert.AnError)

	_, err := repo.ListBlocking(context.Background(), 1, model.InclusiveFilter, date(10))

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
