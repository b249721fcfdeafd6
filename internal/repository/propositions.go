package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
)

var propositionColumns = []string{
	"p.id",
	"p.contact_id",
	"p.conseiller_id",
	"p.produit",
	"p.compagnie",
	"p.montant_mensuel",
	"p.statut",
	"p.date_proposition",
	"p.date_echeance",
	"p.details",
	"p.created_at",
	"p.updated_at",
	"c.nom",
	"c.prenom",
	"c.email",
	"u.nom_complet",
}

func propositionsSelect() sq.SelectBuilder {
	return sq.Select(propositionColumns...).
		From("propositions p").
		LeftJoin("contacts c ON c.id = p.contact_id").
		LeftJoin("users u ON u.id = p.conseiller_id")
}

func scanProposition(row pgx.Row) (entity.Proposition, error) {
	var (
		p                           entity.Proposition
		details                     []byte
		nom, prenom, email, conseil *string
	)

	err := row.Scan(
		&p.ID,
		&p.ContactID,
		&p.ConseillerID,
		&p.Produit,
		&p.Compagnie,
		&p.MontantMensuel,
		&p.Statut,
		&p.DateProposition,
		&p.DateEcheance,
		&details,
		&p.CreatedAt,
		&p.UpdatedAt,
		&nom,
		&prenom,
		&email,
		&conseil,
	)
	if err != nil {
		return entity.Proposition{}, err
	}

	p.Details = details
	p.Contact = contactRefOf(nom, prenom, email)
	p.Conseiller = refOf(conseil)

	return p, nil
}

func (r *Repository) ListPropositions(ctx context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Proposition, error) {
	stmt := propositionsSelect().
		Where(pred.On("p")).
		OrderBy("p.created_at DESC", "p.id DESC")

	if filter.Search != "" {
		stmt = stmt.Where(search(filter.Search, "p.produit", "p.compagnie", "c.nom", "c.prenom"))
	}

	if filter.Statut != "" {
		stmt = stmt.Where(sq.Eq{"p.statut": filter.Statut})
	}

	if filter.ContactID.Valid {
		stmt = stmt.Where(sq.Eq{"p.contact_id": filter.ContactID.UUID})
	}

	return selectMany(ctx, r.db, paginate(stmt, filter), scanProposition)
}

func (r *Repository) PropositionByID(ctx context.Context, id uuid.UUID) (entity.Proposition, error) {
	return selectOne(ctx, r.db, propositionsSelect().Where(sq.Eq{"p.id": id}), scanProposition)
}

func detailsOf(p entity.Proposition) []byte {
	if len(p.Details) == 0 {
		return []byte("{}")
	}

	return []byte(p.Details)
}

func (r *Repository) CreateProposition(ctx context.Context, p entity.Proposition) error {
	const sqlQuery = `
		INSERT INTO propositions
			(id, contact_id, conseiller_id, produit, compagnie, montant_mensuel, statut,
			 date_proposition, date_echeance, details, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, sqlQuery,
		p.ID,
		p.ContactID,
		p.ConseillerID,
		p.Produit,
		p.Compagnie,
		p.MontantMensuel,
		p.Statut,
		p.DateProposition,
		p.DateEcheance,
		detailsOf(p),
		p.CreatedAt,
		p.UpdatedAt,
	)

	return mapErr(err)
}

func (r *Repository) UpdateProposition(ctx context.Context, p entity.Proposition) error {
	const sqlQuery = `
		UPDATE propositions
		SET produit = $1, compagnie = $2, montant_mensuel = $3, statut = $4, date_proposition = $5,
			date_echeance = $6, details = $7, updated_at = $8
		WHERE id = $9`

	return execAffectingOne(ctx, r.db, sqlQuery,
		p.Produit,
		p.Compagnie,
		p.MontantMensuel,
		p.Statut,
		p.DateProposition,
		p.DateEcheance,
		detailsOf(p),
		p.UpdatedAt,
		p.ID,
	)
}

func (r *Repository) CountPropositions(ctx context.Context, pred scope.Predicate, filter entity.StatsFilter) (int, error) {
	stmt := sq.Select("count(*)").From("propositions p").Where(pred.On("p"))
	stmt = applyStats(stmt, filter, "p.statut", "p.created_at")

	return selectOne(ctx, r.db, stmt, scanCount)
}
