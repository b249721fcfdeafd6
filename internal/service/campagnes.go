package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
)

func (s *Service) ListCampagnes(ctx context.Context, filter entity.ListFilter) ([]entity.Campagne, error) {
	user, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Statut != "" && !entity.CampagneStatus(filter.Statut).IsValid() {
		return nil, fmt.Errorf("%w: invalid statut %q", entity.ErrValidationFailed, filter.Statut)
	}

	pred, err := s.predicate(ctx, user, scope.KindCampagne)
	if err != nil {
		return nil, err
	}

	if pred.Empty() {
		return []entity.Campagne{}, nil
	}

	campagnes, err := s.repo.ListCampagnes(ctx, pred, NormalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("list campagnes: %w", err)
	}

	return campagnes, nil
}

// numberEtapes gives unnumbered steps their position in the sequence.
func numberEtapes(etapes []entity.Etape) []entity.Etape {
	if etapes == nil {
		return []entity.Etape{}
	}

	for i := range etapes {
		if etapes[i].Ordre == 0 {
			etapes[i].Ordre = i + 1
		}
	}

	return etapes
}

func (s *Service) CreateCampagne(ctx context.Context, g entity.Campagne) (entity.Campagne, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.Campagne{}, err
	}

	now := s.now()

	g.ID = newID()
	g.CreePar = user.ID
	g.CreatedAt = now
	g.UpdatedAt = now
	g.Etapes = numberEtapes(g.Etapes)

	if g.Statut == "" {
		g.Statut = entity.CampagneBrouillon
	}

	err = ValidateCampagne(g)
	if err != nil {
		return entity.Campagne{}, err
	}

	pred, err := s.predicate(ctx, user, scope.KindCampagne)
	if err != nil {
		return entity.Campagne{}, err
	}

	err = authorize(pred, g, scope.KindCampagne, g.ID)
	if err != nil {
		return entity.Campagne{}, err
	}

	err = s.repo.CreateCampagne(ctx, g)
	if err != nil {
		return entity.Campagne{}, fmt.Errorf("create campagne: %w", err)
	}

	s.publish(ctx, scope.KindCampagne, entity.ActionCreated, g.ID, user.ID)

	return g, nil
}

func (s *Service) UpdateCampagne(ctx context.Context, id uuid.UUID, upd entity.CampagneUpdate) (entity.Campagne, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.Campagne{}, err
	}

	g, err := s.repo.CampagneByID(ctx, id)
	if err != nil {
		return entity.Campagne{}, fmt.Errorf("get campagne %s: %w", id, err)
	}

	pred, err := s.predicate(ctx, user, scope.KindCampagne)
	if err != nil {
		return entity.Campagne{}, err
	}

	err = authorize(pred, g, scope.KindCampagne, id)
	if err != nil {
		return entity.Campagne{}, err
	}

	if upd.Nom != nil {
		g.Nom = *upd.Nom
	}

	if upd.Description != nil {
		g.Description = *upd.Description
	}

	if upd.Type != nil {
		g.Type = *upd.Type
	}

	if upd.Statut != nil {
		g.Statut = *upd.Statut
	}

	if upd.DateDebut != nil {
		g.DateDebut = upd.DateDebut
	}

	if upd.DateFin != nil {
		g.DateFin = upd.DateFin
	}

	if upd.Declencheur != nil {
		g.Declencheur = *upd.Declencheur
	}

	if upd.Etapes != nil {
		g.Etapes = numberEtapes(upd.Etapes)
	}

	g.UpdatedAt = s.now()

	err = ValidateCampagne(g)
	if err != nil {
		return entity.Campagne{}, err
	}

	err = s.repo.UpdateCampagne(ctx, g)
	if err != nil {
		return entity.Campagne{}, fmt.Errorf("update campagne: %w", err)
	}

	s.publish(ctx, scope.KindCampagne, entity.ActionUpdated, g.ID, user.ID)

	return g, nil
}
