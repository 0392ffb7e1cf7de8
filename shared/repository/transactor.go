package repository

//go:generate go run go.uber.org/mock/mockgen -source=./transactor.go -destination=./mocks/transactor_mock.go -package=mocks

import (
	"carrental/config"
	"carrental/infras/otel"
	"carrental/infras/postgres"
	"carrental/shared/constant"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	defaultTxMaxRetry = 3
	txRetryBase       = 50 * time.Millisecond
)

var ErrMaxRetriesExceeded = errors.New("transaction failed after max retries")

// TxFunc runs inside a transaction. Returning an error rolls it back.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

type Transactor interface {
	// WithinTx runs fn in a transaction on the primary. Serialization failures
	// and deadlocks re-run fn from the start.
	WithinTx(ctx context.Context, opts *sql.TxOptions, fn TxFunc) error
}

type transactor struct {
	db       *postgres.Connection
	otel     otel.Otel
	maxRetry int
	backoff  func(attempt int) time.Duration
}

func NewTransactor(cfg *config.Config, db *postgres.Connection, otl otel.Otel) Transactor {
	maxRetry := cfg.DB.Postgres.TxMaxRetry
	if maxRetry <= 0 {
		maxRetry = defaultTxMaxRetry
	}

	return &transactor{
		db:       db,
		otel:     otl,
		maxRetry: maxRetry,
		backoff:  exponentialBackoff,
	}
}

func (t *transactor) WithinTx(ctx context.Context, opts *sql.TxOptions, fn TxFunc) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".WithinTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for attempt := 0; ; attempt++ {
		err = t.run(ctx, opts, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}

		if attempt >= t.maxRetry {
			log.Error().Err(err).Int("attempts", attempt+1).Msg("transaction failed after max retries")

			return fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, err)
		}

		wait := t.backoff(attempt)
		log.Warn().Err(err).Int("attempt", attempt+1).Dur("wait", wait).Msg("retrying transaction due to retryable error")

		select {
		case <-ctx.Done():
			return fmt.Errorf("transaction retry aborted: %w", ctx.Err())
		case <-time.After(wait):
		}
	}
}

func (t *transactor) run(ctx context.Context, opts *sql.TxOptions, fn TxFunc) error {
	tx, err := t.db.Write.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = fn(ctx, tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Warn().Err(rollbackErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// IsRetryable reports serialization failures and deadlocks.
func IsRetryable(err error) bool {
	return HasPqCode(err, constant.PqErrorCodeSerializationFailure, constant.PqErrorCodeDeadlockDetected)
}

// HasPqCode reports whether err wraps a postgres error with one of the given codes.
func HasPqCode(err error, codes ...string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	for _, code := range codes {
		if string(pqErr.Code) == code {
			return true
		}
	}

	return false
}

func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<attempt) * txRetryBase
}
