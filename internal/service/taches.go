package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
)

func (s *Service) ListTaches(ctx context.Context, filter entity.ListFilter) ([]entity.Tache, error) {
	user, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Statut != "" && !entity.TacheStatus(filter.Statut).IsValid() {
		return nil, fmt.Errorf("%w: invalid statut %q", entity.ErrValidationFailed, filter.Statut)
	}

	if filter.Priorite != "" && !entity.TachePriority(filter.Priorite).IsValid() {
		return nil, fmt.Errorf("%w: invalid priorite %q", entity.ErrValidationFailed, filter.Priorite)
	}

	pred, err := s.predicate(ctx, user, scope.KindTache)
	if err != nil {
		return nil, err
	}

	if pred.Empty() {
		return []entity.Tache{}, nil
	}

	taches, err := s.repo.ListTaches(ctx, pred, NormalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("list taches: %w", err)
	}

	return taches, nil
}

func (s *Service) CreateTache(ctx context.Context, t entity.Tache) (entity.Tache, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.Tache{}, err
	}

	now := s.now()

	t.ID = newID()
	t.CreePar = user.ID
	t.CreatedAt = now
	t.UpdatedAt = now

	if t.AssigneA.IsNil() {
		t.AssigneA = user.ID
	}

	if t.Statut == "" {
		t.Statut = entity.TacheAFaire
	}

	if t.Priorite == "" {
		t.Priorite = entity.PriorityNormale
	}

	t.SetStatus(t.Statut, now)

	err = ValidateTache(t)
	if err != nil {
		return entity.Tache{}, err
	}

	err = s.checkTacheContact(ctx, user, t.ContactID)
	if err != nil {
		return entity.Tache{}, err
	}

	pred, err := s.predicate(ctx, user, scope.KindTache)
	if err != nil {
		return entity.Tache{}, err
	}

	err = authorize(pred, t, scope.KindTache, t.ID)
	if err != nil {
		return entity.Tache{}, err
	}

	err = s.repo.CreateTache(ctx, t)
	if err != nil {
		return entity.Tache{}, fmt.Errorf("create tache: %w", err)
	}

	s.publish(ctx, scope.KindTache, entity.ActionCreated, t.ID, user.ID)

	return t, nil
}

func (s *Service) checkTacheContact(ctx context.Context, user entity.User, contactID uuid.NullUUID) error {
	if !contactID.Valid {
		return nil
	}

	return s.requireContact(ctx, user, contactID.UUID)
}

// visibleTache loads a task for a mutation and returns the task predicate
// it was checked against.
func (s *Service) visibleTache(ctx context.Context, user entity.User, id uuid.UUID) (entity.Tache, scope.Predicate, error) {
	t, err := s.repo.TacheByID(ctx, id)
	if err != nil {
		return entity.Tache{}, scope.None(), fmt.Errorf("get tache %s: %w", id, err)
	}

	pred, err := s.predicate(ctx, user, scope.KindTache)
	if err != nil {
		return entity.Tache{}, scope.None(), err
	}

	err = authorize(pred, t, scope.KindTache, id)
	if err != nil {
		return entity.Tache{}, scope.None(), err
	}

	return t, pred, nil
}

func (s *Service) UpdateTache(ctx context.Context, id uuid.UUID, upd entity.TacheUpdate) (entity.Tache, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.Tache{}, err
	}

	t, pred, err := s.visibleTache(ctx, user, id)
	if err != nil {
		return entity.Tache{}, err
	}

	now := s.now()

	if upd.Titre != nil {
		t.Titre = *upd.Titre
	}

	if upd.Description != nil {
		t.Description = *upd.Description
	}

	if upd.Priorite != nil {
		t.Priorite = *upd.Priorite
	}

	if upd.DateEcheance != nil {
		t.DateEcheance = upd.DateEcheance
	}

	if upd.AssigneA != nil {
		t.AssigneA = *upd.AssigneA
	}

	if upd.ContactID != nil {
		t.ContactID = uuid.NullUUID{UUID: *upd.ContactID, Valid: !upd.ContactID.IsNil()}

		err = s.checkTacheContact(ctx, user, t.ContactID)
		if err != nil {
			return entity.Tache{}, err
		}
	}

	if upd.Statut != nil && *upd.Statut != t.Statut {
		t.SetStatus(*upd.Statut, now)
	}

	t.UpdatedAt = now

	err = ValidateTache(t)
	if err != nil {
		return entity.Tache{}, err
	}

	err = authorize(pred, t, scope.KindTache, id)
	if err != nil {
		return entity.Tache{}, err
	}

	err = s.repo.UpdateTache(ctx, t)
	if err != nil {
		return entity.Tache{}, fmt.Errorf("update tache: %w", err)
	}

	s.publish(ctx, scope.KindTache, entity.ActionUpdated, t.ID, user.ID)

	return t, nil
}

// ChangeTacheStatus moves a task to st. Completing it stamps the completion
// date; any other status clears it.
func (s *Service) ChangeTacheStatus(ctx context.Context, id uuid.UUID, st entity.TacheStatus) (entity.Tache, error) {
	if !st.IsValid() {
		return entity.Tache{}, fmt.Errorf("%w: invalid statut %q", entity.ErrValidationFailed, st)
	}

	user, err := actor(ctx)
	if err != nil {
		return entity.Tache{}, err
	}

	t, _, err := s.visibleTache(ctx, user, id)
	if err != nil {
		return entity.Tache{}, err
	}

	now := s.now()

	t.SetStatus(st, now)
	t.UpdatedAt = now

	err = s.repo.UpdateTache(ctx, t)
	if err != nil {
		return entity.Tache{}, fmt.Errorf("update tache status: %w", err)
	}

	s.publish(ctx, scope.KindTache, entity.ActionUpdated, t.ID, user.ID)

	return t, nil
}
