package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"doctors/internal/domain"
)

const pgForeignKeyViolation = "23503"

type LookupRepo[T domain.Lookup] struct {
	db    *pgxpool.Pool
	table lookupTable
}

func newLookupPostgres[T domain.Lookup](db *pgxpool.Pool, table lookupTable) *LookupRepo[T] {
	return &LookupRepo[T]{
		db:    db,
		table: table,
	}
}

func (r *LookupRepo[T]) Create(ctx context.Context, name string) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, created_at, updated_at)
		VALUES ($1, $2, $2)
		RETURNING id
	`, r.table.name)

	var id int64
	if err := r.db.QueryRow(ctx, query, name, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("create %s: %w", r.table.entity, err)
	}

	return id, nil
}

func (r *LookupRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`
		SELECT id, name, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.table.name)

	return r.getOne(ctx, query, id, func() error { return notFound(r.table.entity, id) })
}

func (r *LookupRepo[T]) GetByName(ctx context.Context, name string) (*T, error) {
	query := fmt.Sprintf(`
		SELECT id, name, created_at, updated_at
		FROM %s
		WHERE name = $1
		ORDER BY id ASC
		LIMIT 1
	`, r.table.name)

	return r.getOne(ctx, query, name, func() error {
		return fmt.Errorf("%s %q: %w", r.table.entity, name, domain.ErrNotFound)
	})
}

func (r *LookupRepo[T]) getOne(ctx context.Context, query string, arg any, missing func() error) (*T, error) {
	var rec lookupRecord
	err := r.db.QueryRow(ctx, query, arg).Scan(&rec.ID, &rec.Name, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, missing()
		}
		return nil, fmt.Errorf("get %s: %w", r.table.entity, err)
	}

	entity := T(rec)
	return &entity, nil
}

func (r *LookupRepo[T]) Exists(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, r.table.name)

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s exists: %w", r.table.entity, err)
	}

	return exists, nil
}

func (r *LookupRepo[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`
		SELECT id, name, created_at, updated_at
		FROM %s
		ORDER BY name ASC, id ASC
	`, r.table.name)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table.name, err)
	}
	defer rows.Close()

	records := make([]lookupRecord, 0)
	for rows.Next() {
		var rec lookupRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table.entity, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", r.table.name, err)
	}

	return toLookups[T](records), nil
}

// Delete locks the row, then refuses when any doctor references it. Inserting a
// doctor takes a key-share lock on the same row, so the check cannot race an insert.
func (r *LookupRepo[T]) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var lockedID int64
	lockQuery := fmt.Sprintf(`SELECT id FROM %s WHERE id = $1 FOR UPDATE`, r.table.name)
	if err := tx.QueryRow(ctx, lockQuery, id).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound(r.table.entity, id)
		}
		return fmt.Errorf("lock %s: %w", r.table.entity, err)
	}

	var references int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM doctors WHERE %s = $1`, r.table.fkColumn)
	if err := tx.QueryRow(ctx, countQuery, id).Scan(&references); err != nil {
		return fmt.Errorf("count %s references: %w", r.table.entity, err)
	}
	if references > 0 {
		return protectedError(r.table, id, references)
	}

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table.name)
	if _, err := tx.Exec(ctx, deleteQuery, id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return protectedError(r.table, id, 1)
		}
		return fmt.Errorf("delete %s: %w", r.table.entity, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}
