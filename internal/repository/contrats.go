package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
	"github.com/shopspring/decimal"
)

var contratColumns = []string{
	"k.id",
	"k.numero_contrat",
	"k.compagnie",
	"k.cotisation_mensuelle",
	"k.date_signature",
	"k.contact_client_id",
	"k.created_at",
	"c.nom",
	"c.prenom",
	"c.email",
}

func contratsSelect() sq.SelectBuilder {
	return sq.Select(contratColumns...).
		From("contrats k").
		LeftJoin("contacts c ON c.id = k.contact_client_id")
}

func scanContrat(row pgx.Row) (entity.Contrat, error) {
	var (
		k                  entity.Contrat
		nom, prenom, email *string
	)

	err := row.Scan(
		&k.ID,
		&k.NumeroContrat,
		&k.Compagnie,
		&k.CotisationMensuelle,
		&k.DateSignature,
		&k.ContactClientID,
		&k.CreatedAt,
		&nom,
		&prenom,
		&email,
	)
	if err != nil {
		return entity.Contrat{}, err
	}

	k.Contact = contactRefOf(nom, prenom, email)

	return k, nil
}

func (r *Repository) ListContrats(ctx context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Contrat, error) {
	stmt := contratsSelect().
		Where(pred.On("k")).
		OrderBy("k.created_at DESC", "k.id DESC")

	if filter.Search != "" {
		stmt = stmt.Where(search(filter.Search, "k.numero_contrat", "k.compagnie", "c.nom", "c.prenom"))
	}

	if filter.ContactID.Valid {
		stmt = stmt.Where(sq.Eq{"k.contact_client_id": filter.ContactID.UUID})
	}

	return selectMany(ctx, r.db, paginate(stmt, filter), scanContrat)
}

func (r *Repository) ContratByID(ctx context.Context, id uuid.UUID) (entity.Contrat, error) {
	return selectOne(ctx, r.db, contratsSelect().Where(sq.Eq{"k.id": id}), scanContrat)
}

func (r *Repository) CreateContrat(ctx context.Context, k entity.Contrat) error {
	const sqlQuery = `
		INSERT INTO contrats
			(id, numero_contrat, compagnie, cotisation_mensuelle, date_signature, contact_client_id, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, sqlQuery,
		k.ID,
		k.NumeroContrat,
		k.Compagnie,
		k.CotisationMensuelle,
		k.DateSignature,
		k.ContactClientID,
		k.CreatedAt,
	)

	return mapErr(err)
}

func (r *Repository) CountContrats(ctx context.Context, pred scope.Predicate, filter entity.StatsFilter) (int, error) {
	stmt := sq.Select("count(*)").From("contrats k").Where(pred.On("k"))
	stmt = applyStats(stmt, filter, "", "k.date_signature")

	return selectOne(ctx, r.db, stmt, scanCount)
}

// SumCotisations adds up the monthly premiums of the matching contracts,
// filtered on their signature date.
func (r *Repository) SumCotisations(ctx context.Context, pred scope.Predicate, filter entity.StatsFilter) (decimal.Decimal, error) {
	stmt := sq.Select("COALESCE(sum(k.cotisation_mensuelle), 0)").From("contrats k").Where(pred.On("k"))
	stmt = applyStats(stmt, filter, "", "k.date_signature")

	return selectOne(ctx, r.db, stmt, func(row pgx.Row) (decimal.Decimal, error) {
		var sum decimal.Decimal
		err := row.Scan(&sum)

		return sum, err
	})
}
