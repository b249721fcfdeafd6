package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
)

var userColumns = []string{
	"u.id",
	"u.email",
	"u.nom_complet",
	"u.equipe_id",
	"r.nom",
	"u.statut",
	"u.created_at",
}

func usersSelect() sq.SelectBuilder {
	return sq.Select(userColumns...).
		From("users u").
		LeftJoin("roles r ON r.id = u.role_id")
}

func scanUser(row pgx.Row) (entity.User, error) {
	var (
		user entity.User
		role *string
	)

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.NomComplet,
		&user.EquipeID,
		&role,
		&user.Statut,
		&user.CreatedAt,
	)
	if err != nil {
		return entity.User{}, err
	}

	if role != nil {
		user.Role = entity.Role(*role)
	}

	return user, nil
}

// UserByEmail loads the profile of a signed-in user together with its role.
func (r *Repository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	stmt := usersSelect().Where(sq.Expr("lower(u.email) = lower(?)", email))
	return selectOne(ctx, r.db, stmt, scanUser)
}

func (r *Repository) TeamMemberIDs(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	stmt := sq.Select("id").From("users").Where(sq.Eq{"equipe_id": teamID}).OrderBy("id")
	return selectIDs(ctx, r.db, stmt)
}

func (r *Repository) ContactIDsOwnedBy(ctx context.Context, ownerIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(ownerIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	stmt := sq.Select("id").
		From("contacts").
		Where(sq.Eq{entity.ContactOwnerColumn: ownerIDs}).
		OrderBy("id")

	return selectIDs(ctx, r.db, stmt)
}
