package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samandr77/microservices/crm/internal/entity"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func selectMany[T any](ctx context.Context, db *pgxpool.Pool, stmt sq.SelectBuilder, scan func(pgx.Row) (T, error)) ([]T, error) {
	sqlQuery, args, err := stmt.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	items := make([]T, 0)

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func selectOne[T any](ctx context.Context, db *pgxpool.Pool, stmt sq.SelectBuilder, scan func(pgx.Row) (T, error)) (T, error) {
	var zero T

	sqlQuery, args, err := stmt.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return zero, fmt.Errorf("build query: %w", err)
	}

	item, err := scan(db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, entity.ErrNotFound
		}

		return zero, err
	}

	return item, nil
}

func selectIDs(ctx context.Context, db *pgxpool.Pool, stmt sq.SelectBuilder) ([]uuid.UUID, error) {
	return selectMany(ctx, db, stmt, func(row pgx.Row) (uuid.UUID, error) {
		var id uuid.UUID
		err := row.Scan(&id)

		return id, err
	})
}

func paginate(stmt sq.SelectBuilder, filter entity.ListFilter) sq.SelectBuilder {
	if filter.Limit == 0 {
		return stmt
	}

	return stmt.Limit(filter.Limit).Offset(filter.Offset())
}

// search matches term case-insensitively against any of columns.
func search(term string, columns ...string) sq.Sqlizer {
	pattern := "%" + escapeLike(strings.TrimSpace(term)) + "%"

	or := make(sq.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, sq.Expr(col+" ILIKE ?", pattern))
	}

	return or
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", entity.ErrAlreadyExists, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", entity.ErrValidationFailed, pgErr.ConstraintName)
		}
	}

	return err
}

func execAffectingOne(ctx context.Context, db *pgxpool.Pool, sqlQuery string, args ...any) error {
	result, err := db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return mapErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func refOf(nomComplet *string) *entity.UserRef {
	if nomComplet == nil {
		return nil
	}

	return &entity.UserRef{NomComplet: *nomComplet}
}

func contactRefOf(nom, prenom, email *string) *entity.ContactRef {
	if nom == nil {
		return nil
	}

	ref := &entity.ContactRef{Nom: *nom}
	if prenom != nil {
		ref.Prenom = *prenom
	}

	if email != nil {
		ref.Email = *email
	}

	return ref
}
