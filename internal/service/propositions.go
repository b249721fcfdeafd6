package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
)

func (s *Service) ListPropositions(ctx context.Context, filter entity.ListFilter) ([]entity.Proposition, error) {
	user, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Statut != "" && !entity.PropositionStatus(filter.Statut).IsValid() {
		return nil, fmt.Errorf("%w: invalid statut %q", entity.ErrValidationFailed, filter.Statut)
	}

	pred, err := s.predicate(ctx, user, scope.KindProposition)
	if err != nil {
		return nil, err
	}

	if pred.Empty() {
		return []entity.Proposition{}, nil
	}

	propositions, err := s.repo.ListPropositions(ctx, pred, NormalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("list propositions: %w", err)
	}

	return propositions, nil
}

func (s *Service) CreateProposition(ctx context.Context, p entity.Proposition) (entity.Proposition, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.Proposition{}, err
	}

	now := s.now()

	p.ID = newID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if p.ConseillerID.IsNil() {
		p.ConseillerID = user.ID
	}

	if p.Statut == "" {
		p.Statut = entity.PropositionBrouillon
	}

	if p.DateProposition == nil {
		today := truncateDay(now)
		p.DateProposition = &today
	}

	err = ValidateProposition(p)
	if err != nil {
		return entity.Proposition{}, err
	}

	err = s.requireContact(ctx, user, p.ContactID)
	if err != nil {
		return entity.Proposition{}, err
	}

	pred, err := s.predicate(ctx, user, scope.KindProposition)
	if err != nil {
		return entity.Proposition{}, err
	}

	err = authorize(pred, p, scope.KindProposition, p.ID)
	if err != nil {
		return entity.Proposition{}, err
	}

	err = s.repo.CreateProposition(ctx, p)
	if err != nil {
		return entity.Proposition{}, fmt.Errorf("create proposition: %w", err)
	}

	s.publish(ctx, scope.KindProposition, entity.ActionCreated, p.ID, user.ID)

	return p, nil
}

func (s *Service) UpdateProposition(ctx context.Context, id uuid.UUID, upd entity.PropositionUpdate) (entity.Proposition, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.Proposition{}, err
	}

	p, err := s.repo.PropositionByID(ctx, id)
	if err != nil {
		return entity.Proposition{}, fmt.Errorf("get proposition %s: %w", id, err)
	}

	pred, err := s.predicate(ctx, user, scope.KindProposition)
	if err != nil {
		return entity.Proposition{}, err
	}

	err = authorize(pred, p, scope.KindProposition, id)
	if err != nil {
		return entity.Proposition{}, err
	}

	if upd.Produit != nil {
		p.Produit = *upd.Produit
	}

	if upd.Compagnie != nil {
		p.Compagnie = *upd.Compagnie
	}

	if upd.MontantMensuel != nil {
		p.MontantMensuel.Decimal = *upd.MontantMensuel
		p.MontantMensuel.Valid = true
	}

	if upd.Statut != nil {
		p.Statut = *upd.Statut
	}

	if upd.DateProposition != nil {
		p.DateProposition = upd.DateProposition
	}

	if upd.DateEcheance != nil {
		p.DateEcheance = upd.DateEcheance
	}

	if len(upd.Details) != 0 {
		p.Details = upd.Details
	}

	p.UpdatedAt = s.now()

	err = ValidateProposition(p)
	if err != nil {
		return entity.Proposition{}, err
	}

	err = s.repo.UpdateProposition(ctx, p)
	if err != nil {
		return entity.Proposition{}, fmt.Errorf("update proposition: %w", err)
	}

	s.publish(ctx, scope.KindProposition, entity.ActionUpdated, p.ID, user.ID)

	return p, nil
}
