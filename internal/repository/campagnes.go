package repository

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
)

var campagneColumns = []string{
	"g.id",
	"g.nom",
	"g.description",
	"g.type",
	"g.statut",
	"g.date_debut",
	"g.date_fin",
	"g.declencheur",
	"g.etapes",
	"g.cree_par",
	"g.created_at",
	"g.updated_at",
	"uc.nom_complet",
}

func campagnesSelect() sq.SelectBuilder {
	return sq.Select(campagneColumns...).
		From("campagnes g").
		LeftJoin("users uc ON uc.id = g.cree_par")
}

func scanCampagne(row pgx.Row) (entity.Campagne, error) {
	var (
		g                   entity.Campagne
		declencheur, etapes []byte
		createur            *string
	)

	err := row.Scan(
		&g.ID,
		&g.Nom,
		&g.Description,
		&g.Type,
		&g.Statut,
		&g.DateDebut,
		&g.DateFin,
		&declencheur,
		&etapes,
		&g.CreePar,
		&g.CreatedAt,
		&g.UpdatedAt,
		&createur,
	)
	if err != nil {
		return entity.Campagne{}, err
	}

	if err := json.Unmarshal(declencheur, &g.Declencheur); err != nil {
		return entity.Campagne{}, fmt.Errorf("unmarshal declencheur: %w", err)
	}

	if err := json.Unmarshal(etapes, &g.Etapes); err != nil {
		return entity.Campagne{}, fmt.Errorf("unmarshal etapes: %w", err)
	}

	if g.Etapes == nil {
		g.Etapes = []entity.Etape{}
	}

	g.Createur = refOf(createur)

	return g, nil
}

func (r *Repository) ListCampagnes(ctx context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Campagne, error) {
	stmt := campagnesSelect().
		Where(pred.On("g")).
		OrderBy("g.created_at DESC", "g.id DESC")

	if filter.Search != "" {
		stmt = stmt.Where(search(filter.Search, "g.nom", "g.description"))
	}

	if filter.Statut != "" {
		stmt = stmt.Where(sq.Eq{"g.statut": filter.Statut})
	}

	if filter.Type != "" {
		stmt = stmt.Where(sq.Eq{"g.type": filter.Type})
	}

	return selectMany(ctx, r.db, paginate(stmt, filter), scanCampagne)
}

func (r *Repository) CampagneByID(ctx context.Context, id uuid.UUID) (entity.Campagne, error) {
	return selectOne(ctx, r.db, campagnesSelect().Where(sq.Eq{"g.id": id}), scanCampagne)
}

func campagneJSON(g entity.Campagne) (declencheur, etapes []byte, err error) {
	declencheur, err = json.Marshal(g.Declencheur)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal declencheur: %w", err)
	}

	steps := g.Etapes
	if steps == nil {
		steps = []entity.Etape{}
	}

	etapes, err = json.Marshal(steps)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal etapes: %w", err)
	}

	return declencheur, etapes, nil
}

func (r *Repository) CreateCampagne(ctx context.Context, g entity.Campagne) error {
	const sqlQuery = `
		INSERT INTO campagnes
			(id, nom, description, type, statut, date_debut, date_fin, declencheur, etapes,
			 cree_par, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	declencheur, etapes, err := campagneJSON(g)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery,
		g.ID,
		g.Nom,
		g.Description,
		g.Type,
		g.Statut,
		g.DateDebut,
		g.DateFin,
		declencheur,
		etapes,
		g.CreePar,
		g.CreatedAt,
		g.UpdatedAt,
	)

	return mapErr(err)
}

func (r *Repository) UpdateCampagne(ctx context.Context, g entity.Campagne) error {
	const sqlQuery = `
		UPDATE campagnes
		SET nom = $1, description = $2, type = $3, statut = $4, date_debut = $5, date_fin = $6,
			declencheur = $7, etapes = $8, updated_at = $9
		WHERE id = $10`

	declencheur, etapes, err := campagneJSON(g)
	if err != nil {
		return err
	}

	return execAffectingOne(ctx, r.db, sqlQuery,
		g.Nom,
		g.Description,
		g.Type,
		g.Statut,
		g.DateDebut,
		g.DateFin,
		declencheur,
		etapes,
		g.UpdatedAt,
		g.ID,
	)
}
