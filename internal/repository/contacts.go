package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
)

var contactColumns = []string{
	"c.id",
	"c.nom",
	"c.prenom",
	"c.email",
	"c.telephone",
	"c.statut_lead",
	"c.source",
	"c.score",
	"c.notes",
	"c.tags",
	"c.collaborateur_en_charge",
	"c.created_at",
	"c.updated_at",
	"u.nom_complet",
}

func contactsSelect() sq.SelectBuilder {
	return sq.Select(contactColumns...).
		From("contacts c").
		LeftJoin("users u ON u.id = c.collaborateur_en_charge")
}

func scanContact(row pgx.Row) (entity.Contact, error) {
	var (
		c           entity.Contact
		utilisateur *string
	)

	err := row.Scan(
		&c.ID,
		&c.Nom,
		&c.Prenom,
		&c.Email,
		&c.Telephone,
		&c.StatutLead,
		&c.Source,
		&c.Score,
		&c.Notes,
		&c.Tags,
		&c.CollaborateurEnCharge,
		&c.CreatedAt,
		&c.UpdatedAt,
		&utilisateur,
	)
	if err != nil {
		return entity.Contact{}, err
	}

	c.Utilisateur = refOf(utilisateur)

	return c, nil
}

func (r *Repository) ListContacts(ctx context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Contact, error) {
	stmt := contactsSelect().
		Where(pred.On("c")).
		OrderBy("c.created_at DESC", "c.id DESC")

	if filter.Search != "" {
		stmt = stmt.Where(search(filter.Search, "c.nom", "c.prenom", "c.prenom || ' ' || c.nom", "c.email", "c.telephone"))
	}

	if filter.Statut != "" {
		stmt = stmt.Where(sq.Eq{"c.statut_lead": filter.Statut})
	}

	return selectMany(ctx, r.db, paginate(stmt, filter), scanContact)
}

func (r *Repository) ContactByID(ctx context.Context, id uuid.UUID) (entity.Contact, error) {
	return selectOne(ctx, r.db, contactsSelect().Where(sq.Eq{"c.id": id}), scanContact)
}

const insertContact = `
	INSERT INTO contacts
		(id, nom, prenom, email, telephone, statut_lead, source, score, notes, tags, collaborateur_en_charge, created_at, updated_at)
	VALUES
		($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func contactArgs(c entity.Contact) []any {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}

	return []any{
		c.ID,
		c.Nom,
		c.Prenom,
		c.Email,
		c.Telephone,
		c.StatutLead,
		c.Source,
		c.Score,
		c.Notes,
		tags,
		c.CollaborateurEnCharge,
		c.CreatedAt,
		c.UpdatedAt,
	}
}

func (r *Repository) CreateContact(ctx context.Context, c entity.Contact) error {
	_, err := r.db.Exec(ctx, insertContact, contactArgs(c)...)
	return mapErr(err)
}

// CreateContacts inserts all contacts in one transaction.
func (r *Repository) CreateContacts(ctx context.Context, contacts []entity.Contact) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	for _, c := range contacts {
		_, err = tx.Exec(ctx, insertContact, contactArgs(c)...)
		if err != nil {
			return mapErr(err)
		}
	}

	return tx.Commit(ctx)
}

func (r *Repository) UpdateContact(ctx context.Context, c entity.Contact) error {
	const sqlQuery = `
		UPDATE contacts
		SET nom = $1, prenom = $2, email = $3, telephone = $4, statut_lead = $5, source = $6,
			score = $7, notes = $8, tags = $9, collaborateur_en_charge = $10, updated_at = $11
		WHERE id = $12`

	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}

	return execAffectingOne(ctx, r.db, sqlQuery,
		c.Nom,
		c.Prenom,
		c.Email,
		c.Telephone,
		c.StatutLead,
		c.Source,
		c.Score,
		c.Notes,
		tags,
		c.CollaborateurEnCharge,
		c.UpdatedAt,
		c.ID,
	)
}

func (r *Repository) DeleteContact(ctx context.Context, id uuid.UUID) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM contacts WHERE id = $1`, id)
}

func (r *Repository) CountContacts(ctx context.Context, pred scope.Predicate, filter entity.StatsFilter) (int, error) {
	stmt := sq.Select("count(*)").From("contacts c").Where(pred.On("c"))
	stmt = applyStats(stmt, filter, "c.statut_lead", "c.created_at")

	return selectOne(ctx, r.db, stmt, scanCount)
}

// applyStats narrows an aggregate; an empty statutCol means the table has no
// status.
func applyStats(stmt sq.SelectBuilder, filter entity.StatsFilter, statutCol, dateCol string) sq.SelectBuilder {
	if statutCol != "" && filter.Statut != "" {
		stmt = stmt.Where(sq.Eq{statutCol: filter.Statut})
	}

	if statutCol != "" && filter.NotStatut != "" {
		stmt = stmt.Where(sq.NotEq{statutCol: filter.NotStatut})
	}

	if !filter.From.IsZero() {
		stmt = stmt.Where(sq.GtOrEq{dateCol: filter.From})
	}

	if !filter.To.IsZero() {
		stmt = stmt.Where(sq.LtOrEq{dateCol: filter.To})
	}

	return stmt
}

func scanCount(row pgx.Row) (int, error) {
	var n int
	err := row.Scan(&n)

	return n, err
}
