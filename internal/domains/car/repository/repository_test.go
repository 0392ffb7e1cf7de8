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
	"carrental/internal/domains/car/model"
	"carrental/internal/domains/car/repository"
)

func newRepo(t *testing.T) (repository.Car, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	xdb := sqlx.NewDb(db, "postgres")

	return repository.New(postgres.NewFromDB(xdb), mocks.NewOtel()), xdb, mock
}

func TestCarRepository_GetForUpdateTx(t *testing.T) {
	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		wantFound bool
	}{
		{
			name:      "locked",
			rows:      sqlmock.NewRows([]string{"id", "name", "status", "daily_rate"}).AddRow(1, "Avanza", "reserved", "1000.00"),
			wantFound: true,
		},
		{
			name: "missing",
			rows: sqlmock.NewRows([]string{"id", "name", "status", "daily_rate"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db, mock := newRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta("FROM cars WHERE cars.id = $1 FOR UPDATE")).
				WithArgs(int64(1)).
				WillReturnRows(tt.rows)
			mock.ExpectRollback()

			tx, err := db.Beginx()
			require.NoError(t, err)

			car, found, err := repo.GetForUpdateTx(context.Background(), tx, 1)

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)

			if tt.wantFound {
				assert.Equal(t, model.StatusReserved, car.Status)
				assert.Equal(t, "1000.00", car.DailyRate.StringFixed(2))
			}

			require.NoError(t, tx.Rollback())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCarRepository_UpdateStatusTx(t *testing.T) {
	repo, db, mock := newRepo(t)
	end := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE cars SET available_from = $1, modified_at = $2, status = $3  WHERE (id = $4)")).
		WithArgs(end, sqlmock.AnyArg(), "reserved", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatusTx(context.Background(), tx, 1, model.StatusReserved, end))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_ReleaseLapsed(t *testing.T) {
	repo, _, mock := newRepo(t)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cars SET status = $1, available_from = $2")).
		WithArgs("available", today, "reserved").
		WillReturnResult(sqlmock.NewResult(0, 3))

	released, err := repo.ReleaseLapsed(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, int64(3), released)
	assert.NoError(t, mock.ExpectationsWereMet())
}
