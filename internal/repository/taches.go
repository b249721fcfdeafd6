package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
)

var tacheColumns = []string{
	"t.id",
	"t.titre",
	"t.description",
	"t.statut",
	"t.priorite",
	"t.date_echeance",
	"t.date_completion",
	"t.contact_id",
	"t.assigne_a",
	"t.cree_par",
	"t.created_at",
	"t.updated_at",
	"c.nom",
	"c.prenom",
	"c.email",
	"ua.nom_complet",
	"uc.nom_complet",
}

func tachesSelect() sq.SelectBuilder {
	return sq.Select(tacheColumns...).
		From("taches t").
		LeftJoin("contacts c ON c.id = t.contact_id").
		LeftJoin("users ua ON ua.id = t.assigne_a").
		LeftJoin("users uc ON uc.id = t.cree_par")
}

func scanTache(row pgx.Row) (entity.Tache, error) {
	var (
		t                  entity.Tache
		nom, prenom, email *string
		assignee, createur *string
	)

	err := row.Scan(
		&t.ID,
		&t.Titre,
		&t.Description,
		&t.Statut,
		&t.Priorite,
		&t.DateEcheance,
		&t.DateCompletion,
		&t.ContactID,
		&t.AssigneA,
		&t.CreePar,
		&t.CreatedAt,
		&t.UpdatedAt,
		&nom,
		&prenom,
		&email,
		&assignee,
		&createur,
	)
	if err != nil {
		return entity.Tache{}, err
	}

	t.Contact = contactRefOf(nom, prenom, email)
	t.Assignee = refOf(assignee)
	t.Createur = refOf(createur)

	return t, nil
}

func (r *Repository) ListTaches(ctx context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Tache, error) {
	stmt := tachesSelect().
		Where(pred.On("t")).
		OrderBy("t.created_at DESC", "t.id DESC")

	if filter.Search != "" {
		stmt = stmt.Where(search(filter.Search, "t.titre", "t.description", "c.nom", "c.prenom"))
	}

	if filter.Statut != "" {
		stmt = stmt.Where(sq.Eq{"t.statut": filter.Statut})
	}

	if filter.Priorite != "" {
		stmt = stmt.Where(sq.Eq{"t.priorite": filter.Priorite})
	}

	if filter.ContactID.Valid {
		stmt = stmt.Where(sq.Eq{"t.contact_id": filter.ContactID.UUID})
	}

	return selectMany(ctx, r.db, paginate(stmt, filter), scanTache)
}

func (r *Repository) TacheByID(ctx context.Context, id uuid.UUID) (entity.Tache, error) {
	return selectOne(ctx, r.db, tachesSelect().Where(sq.Eq{"t.id": id}), scanTache)
}

func (r *Repository) CreateTache(ctx context.Context, t entity.Tache) error {
	const sqlQuery = `
		INSERT INTO taches
			(id, titre, description, statut, priorite, date_echeance, date_completion,
			 contact_id, assigne_a, cree_par, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, sqlQuery,
		t.ID,
		t.Titre,
		t.Description,
		t.Statut,
		t.Priorite,
		t.DateEcheance,
		t.DateCompletion,
		t.ContactID,
		t.AssigneA,
		t.CreePar,
		t.CreatedAt,
		t.UpdatedAt,
	)

	return mapErr(err)
}

func (r *Repository) UpdateTache(ctx context.Context, t entity.Tache) error {
	const sqlQuery = `
		UPDATE taches
		SET titre = $1, description = $2, statut = $3, priorite = $4, date_echeance = $5,
			date_completion = $6, contact_id = $7, assigne_a = $8, updated_at = $9
		WHERE id = $10`

	return execAffectingOne(ctx, r.db, sqlQuery,
		t.Titre,
		t.Description,
		t.Statut,
		t.Priorite,
		t.DateEcheance,
		t.DateCompletion,
		t.ContactID,
		t.AssigneA,
		t.UpdatedAt,
		t.ID,
	)
}
