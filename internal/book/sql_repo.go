package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SQLRepo stores books through database/sql. It backs the SQLite
// development setup and does not rely on RETURNING.
type SQLRepo struct {
	db      *sqlx.DB
	timeout time.Duration
	q       queries
}

func NewSQLRepo(db *sqlx.DB, dialect string, timeout time.Duration) *SQLRepo {
	return &SQLRepo{db: db, timeout: timeout, q: newQueries(dialect)}
}

func (r *SQLRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *SQLRepo) FindAll(ctx context.Context) ([]Book, error) {
	query, args, err := r.q.selectAll()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	out := []Book{}
	if err := r.db.SelectContext(timeoutCtx, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLRepo) FindByID(ctx context.Context, id int64) (Book, error) {
	query, args, err := r.q.selectByID(id)
	if err != nil {
		return Book{}, fmt.Errorf("build select: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var b Book
	if err := r.db.GetContext(timeoutCtx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *SQLRepo) Save(ctx context.Context, b Book) (Book, error) {
	if b.ID == 0 {
		return r.insert(ctx, b)
	}
	return r.update(ctx, b)
}

func (r *SQLRepo) insert(ctx context.Context, b Book) (Book, error) {
	query, args, err := r.q.insert(b)
	if err != nil {
		return Book{}, fmt.Errorf("build insert: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx, query, args...)
	if err != nil {
		return Book{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Book{}, fmt.Errorf("last insert id: %w", err)
	}
	b.ID = id
	return b, nil
}

func (r *SQLRepo) update(ctx context.Context, b Book) (Book, error) {
	query, args, err := r.q.update(b)
	if err != nil {
		return Book{}, fmt.Errorf("build update: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx, query, args...)
	if err != nil {
		return Book{}, err
	}
	if err := requireAffected(res); err != nil {
		return Book{}, err
	}
	return b, nil
}

func (r *SQLRepo) Delete(ctx context.Context, b Book) error {
	query, args, err := r.q.delete(b.ID)
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx, query, args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
