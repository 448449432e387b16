package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
	q       queries
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout, q: newQueries(DialectPostgres)}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) FindAll(ctx context.Context) ([]Book, error) {
	query, args, err := r.q.selectAll()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (Book, error) {
	query, args, err := r.q.selectByID(id)
	if err != nil {
		return Book{}, fmt.Errorf("build select: %w", err)
	}
	return r.queryOne(ctx, query, args)
}

func (r *PostgresRepo) Save(ctx context.Context, b Book) (Book, error) {
	var (
		query string
		args  []any
		err   error
	)
	if b.ID == 0 {
		query, args, err = r.q.insert(b)
	} else {
		query, args, err = r.q.update(b)
	}
	if err != nil {
		return Book{}, fmt.Errorf("build save: %w", err)
	}
	return r.queryOne(ctx, query, args)
}

func (r *PostgresRepo) Delete(ctx context.Context, b Book) error {
	query, args, err := r.q.delete(b.ID)
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) queryOne(ctx context.Context, query string, args []any) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.ID, &b.Author, &b.LaunchDate, &b.Price, &b.Title)
	return b, err
}
