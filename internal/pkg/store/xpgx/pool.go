package xpgx

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ihbirlik/geocoord-pro/internal/pkg/logger"
)

// Querier is satisfied by both the pool and a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Pool struct {
	*pgxpool.Pool
}

// Connect opens a pool and pings it, retrying with exponential backoff while
// the database is not reachable yet.
func Connect(ctx context.Context, dsn string, retries uint64) (*Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}

	var pool *pgxpool.Pool
	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = 5 * time.Second

	err = backoff.Retry(
		func() error {
			p, connErr := pgxpool.NewWithConfig(ctx, cfg)
			if connErr != nil {
				return fmt.Errorf("pgxpool.NewWithConfig: %w", connErr)
			}
			if pingErr := p.Ping(ctx); pingErr != nil {
				p.Close()
				logger.Warnf(ctx, "postgres is not ready: %s", pingErr.Error())
				return fmt.Errorf("pool.Ping: %w", pingErr)
			}
			pool = p
			return nil
		},
		backoff.WithContext(backoff.WithMaxRetries(bo, retries), ctx),
	)
	if err != nil {
		return nil, err
	}

	return &Pool{Pool: pool}, nil
}

func (p *Pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	return Execx(ctx, p.Pool, query)
}

// InTx runs fn inside a transaction that commits when fn returns nil.
func (p *Pool) InTx(ctx context.Context, fn func(q Querier) error) error {
	return pgx.BeginFunc(ctx, p.Pool, func(tx pgx.Tx) error {
		return fn(tx)
	})
}

func Execx(ctx context.Context, q Querier, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("query.ToSql: %w", err)
	}
	return q.Exec(ctx, sql, args...)
}

// Get scans exactly the first row of the query into T by column name.
// pgx.ErrNoRows is returned when the query yields nothing.
func Get[T any](ctx context.Context, q Querier, query sq.Sqlizer) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("query.ToSql: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	selected, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, err
	}
	return selected, nil
}

func Select[T any](ctx context.Context, q Querier, query sq.Sqlizer) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("query.ToSql: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}
