package service

import (
	"context"
	"fmt"

	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
)

func (s *Service) ListContrats(ctx context.Context, filter entity.ListFilter) ([]entity.Contrat, error) {
	user, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	pred, err := s.predicate(ctx, user, scope.KindContrat)
	if err != nil {
		return nil, err
	}

	if pred.Empty() {
		return []entity.Contrat{}, nil
	}

	contrats, err := s.repo.ListContrats(ctx, pred, NormalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("list contrats: %w", err)
	}

	return contrats, nil
}

// CreateContrat records a signed contract. The client contact must be
// visible to the actor.
func (s *Service) CreateContrat(ctx context.Context, k entity.Contrat) (entity.Contrat, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.Contrat{}, err
	}

	k.ID = newID()
	k.CreatedAt = s.now()
	k.DateSignature = truncateDay(k.DateSignature)

	err = ValidateContrat(k)
	if err != nil {
		return entity.Contrat{}, err
	}

	err = s.requireContact(ctx, user, k.ContactClientID)
	if err != nil {
		return entity.Contrat{}, err
	}

	err = s.repo.CreateContrat(ctx, k)
	if err != nil {
		return entity.Contrat{}, fmt.Errorf("create contrat: %w", err)
	}

	s.publish(ctx, scope.KindContrat, entity.ActionCreated, k.ID, user.ID)

	return k, nil
}
