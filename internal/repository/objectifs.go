package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
	"github.com/shopspring/decimal"
)

var objectifColumns = []string{
	"o.id",
	"o.nom",
	"o.type",
	"o.valeur_cible",
	"o.valeur_actuelle",
	"o.periode_debut",
	"o.periode_fin",
	"o.assigne_a",
	"o.equipe_id",
	"o.cree_par",
	"o.created_at",
	"o.updated_at",
	"ua.nom_complet",
	"e.nom",
	"uc.nom_complet",
}

func objectifsSelect() sq.SelectBuilder {
	return sq.Select(objectifColumns...).
		From("objectifs o").
		LeftJoin("users ua ON ua.id = o.assigne_a").
		LeftJoin("equipes e ON e.id = o.equipe_id").
		LeftJoin("users uc ON uc.id = o.cree_par")
}

func scanObjectif(row pgx.Row) (entity.Objectif, error) {
	var (
		o                        entity.Objectif
		assignee, equipe, auteur *string
	)

	err := row.Scan(
		&o.ID,
		&o.Nom,
		&o.Type,
		&o.ValeurCible,
		&o.ValeurActuelle,
		&o.PeriodeDebut,
		&o.PeriodeFin,
		&o.AssigneA,
		&o.EquipeID,
		&o.CreePar,
		&o.CreatedAt,
		&o.UpdatedAt,
		&assignee,
		&equipe,
		&auteur,
	)
	if err != nil {
		return entity.Objectif{}, err
	}

	o.Assignee = refOf(assignee)
	o.Createur = refOf(auteur)

	if equipe != nil {
		o.Equipe = &entity.EquipeRef{Nom: *equipe}
	}

	return o, nil
}

func (r *Repository) ListObjectifs(ctx context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Objectif, error) {
	stmt := objectifsSelect().
		Where(pred.On("o")).
		OrderBy("o.created_at DESC", "o.id DESC")

	if filter.Search != "" {
		stmt = stmt.Where(search(filter.Search, "o.nom"))
	}

	if filter.Type != "" {
		stmt = stmt.Where(sq.Eq{"o.type": filter.Type})
	}

	return selectMany(ctx, r.db, paginate(stmt, filter), scanObjectif)
}

func (r *Repository) ObjectifByID(ctx context.Context, id uuid.UUID) (entity.Objectif, error) {
	return selectOne(ctx, r.db, objectifsSelect().Where(sq.Eq{"o.id": id}), scanObjectif)
}

// ObjectifsInPeriod returns every objective whose period contains at.
func (r *Repository) ObjectifsInPeriod(ctx context.Context, at time.Time) ([]entity.Objectif, error) {
	stmt := objectifsSelect().
		Where(sq.LtOrEq{"o.periode_debut": at}).
		Where(sq.GtOrEq{"o.periode_fin": at}).
		OrderBy("o.created_at DESC", "o.id DESC")

	return selectMany(ctx, r.db, stmt, scanObjectif)
}

func (r *Repository) CreateObjectif(ctx context.Context, o entity.Objectif) error {
	const sqlQuery = `
		INSERT INTO objectifs
			(id, nom, type, valeur_cible, valeur_actuelle, periode_debut, periode_fin,
			 assigne_a, equipe_id, cree_par, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, sqlQuery,
		o.ID,
		o.Nom,
		o.Type,
		o.ValeurCible,
		o.ValeurActuelle,
		o.PeriodeDebut,
		o.PeriodeFin,
		o.AssigneA,
		o.EquipeID,
		o.CreePar,
		o.CreatedAt,
		o.UpdatedAt,
	)

	return mapErr(err)
}

func (r *Repository) UpdateObjectif(ctx context.Context, o entity.Objectif) error {
	const sqlQuery = `
		UPDATE objectifs
		SET nom = $1, type = $2, valeur_cible = $3, periode_debut = $4, periode_fin = $5,
			assigne_a = $6, equipe_id = $7, updated_at = $8
		WHERE id = $9`

	return execAffectingOne(ctx, r.db, sqlQuery,
		o.Nom,
		o.Type,
		o.ValeurCible,
		o.PeriodeDebut,
		o.PeriodeFin,
		o.AssigneA,
		o.EquipeID,
		o.UpdatedAt,
		o.ID,
	)
}

func (r *Repository) UpdateObjectifValeur(ctx context.Context, id uuid.UUID, valeur decimal.Decimal, at time.Time) error {
	const sqlQuery = `UPDATE objectifs SET valeur_actuelle = $1, updated_at = $2 WHERE id = $3`
	return execAffectingOne(ctx, r.db, sqlQuery, valeur, at, id)
}
