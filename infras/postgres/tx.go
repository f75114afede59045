package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"suitespot/shared/constant"
	"suitespot/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type txKey struct{}

// Queryer is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// Transactor runs a unit of work inside a single database transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type transactor struct {
	db *Connection
}

func NewTransactor(db *Connection) Transactor {
	return &transactor{db: db}
}

// ContextWithTx returns a copy of ctx carrying tx.
func ContextWithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext returns the transaction carried by ctx, if any.
func TxFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)

	return tx, ok && tx != nil
}

// Writer returns the transaction in ctx, or the write pool.
func (c *Connection) Writer(ctx context.Context) Queryer {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}

	return c.Write
}

// Reader returns the transaction in ctx, or the read pool.
// Reads inside a unit of work must see its own uncommitted writes.
func (c *Connection) Reader(ctx context.Context) Queryer {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}

	return c.Read
}

// WithTx joins the transaction already carried by ctx, or begins a new one
// that is committed when fn returns nil and rolled back otherwise.
func (t *transactor) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := t.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(ContextWithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return classify(err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return classify(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

// IsRetryable reports whether err is a lock or serialization conflict raised by Postgres.
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeSerializationFailure, constant.PqErrorCodeDeadlockDetected, constant.PqErrorCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

func classify(err error) error {
	if IsRetryable(err) {
		return failure.Retryable("the record was changed by another request, please retry") // nolint:wrapcheck
	}

	return err
}
