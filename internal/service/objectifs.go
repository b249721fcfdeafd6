package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
	"github.com/shopspring/decimal"
)

func (s *Service) ListObjectifs(ctx context.Context, filter entity.ListFilter) ([]entity.Objectif, error) {
	user, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Type != "" && !entity.ObjectifType(filter.Type).IsValid() {
		return nil, fmt.Errorf("%w: invalid type %q", entity.ErrValidationFailed, filter.Type)
	}

	pred, err := s.predicate(ctx, user, scope.KindObjectif)
	if err != nil {
		return nil, err
	}

	if pred.Empty() {
		return []entity.Objectif{}, nil
	}

	objectifs, err := s.repo.ListObjectifs(ctx, pred, NormalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("list objectifs: %w", err)
	}

	now := s.now()
	for i := range objectifs {
		decorate(&objectifs[i], now)
	}

	return objectifs, nil
}

func decorate(o *entity.Objectif, now time.Time) {
	o.Progression = o.ProgressPercentage()
	o.EnCours = o.InPeriod(truncateDay(now))
}

func (s *Service) CreateObjectif(ctx context.Context, o entity.Objectif) (entity.Objectif, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.Objectif{}, err
	}

	now := s.now()

	o.ID = newID()
	o.CreePar = user.ID
	o.ValeurActuelle = decimal.Zero
	o.PeriodeDebut = truncateDay(o.PeriodeDebut)
	o.PeriodeFin = truncateDay(o.PeriodeFin)
	o.CreatedAt = now
	o.UpdatedAt = now

	if !o.AssigneA.Valid && !o.EquipeID.Valid {
		o.AssigneA = uuid.NullUUID{UUID: user.ID, Valid: true}
	}

	err = ValidateObjectif(o)
	if err != nil {
		return entity.Objectif{}, err
	}

	pred, err := s.predicate(ctx, user, scope.KindObjectif)
	if err != nil {
		return entity.Objectif{}, err
	}

	err = authorize(pred, o, scope.KindObjectif, o.ID)
	if err != nil {
		return entity.Objectif{}, err
	}

	err = s.repo.CreateObjectif(ctx, o)
	if err != nil {
		return entity.Objectif{}, fmt.Errorf("create objectif: %w", err)
	}

	decorate(&o, now)
	s.publish(ctx, scope.KindObjectif, entity.ActionCreated, o.ID, user.ID)

	return o, nil
}

func (s *Service) UpdateObjectif(ctx context.Context, id uuid.UUID, upd entity.ObjectifUpdate) (entity.Objectif, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.Objectif{}, err
	}

	o, err := s.repo.ObjectifByID(ctx, id)
	if err != nil {
		return entity.Objectif{}, fmt.Errorf("get objectif %s: %w", id, err)
	}

	pred, err := s.predicate(ctx, user, scope.KindObjectif)
	if err != nil {
		return entity.Objectif{}, err
	}

	err = authorize(pred, o, scope.KindObjectif, id)
	if err != nil {
		return entity.Objectif{}, err
	}

	if upd.Nom != nil {
		o.Nom = *upd.Nom
	}

	if upd.Type != nil {
		o.Type = *upd.Type
	}

	if upd.ValeurCible != nil {
		o.ValeurCible = *upd.ValeurCible
	}

	if upd.PeriodeDebut != nil {
		o.PeriodeDebut = truncateDay(*upd.PeriodeDebut)
	}

	if upd.PeriodeFin != nil {
		o.PeriodeFin = truncateDay(*upd.PeriodeFin)
	}

	if upd.AssigneA != nil {
		o.AssigneA = uuid.NullUUID{UUID: *upd.AssigneA, Valid: !upd.AssigneA.IsNil()}
	}

	if upd.EquipeID != nil {
		o.EquipeID = uuid.NullUUID{UUID: *upd.EquipeID, Valid: !upd.EquipeID.IsNil()}
	}

	now := s.now()
	o.UpdatedAt = now

	err = ValidateObjectif(o)
	if err != nil {
		return entity.Objectif{}, err
	}

	err = authorize(pred, o, scope.KindObjectif, id)
	if err != nil {
		return entity.Objectif{}, err
	}

	err = s.repo.UpdateObjectif(ctx, o)
	if err != nil {
		return entity.Objectif{}, fmt.Errorf("update objectif: %w", err)
	}

	decorate(&o, now)
	s.publish(ctx, scope.KindObjectif, entity.ActionUpdated, o.ID, user.ID)

	return o, nil
}

// RefreshObjectifs recomputes the current value of every objective whose
// period contains today. Failures on one objective do not stop the others.
func (s *Service) RefreshObjectifs(ctx context.Context) error {
	now := s.now()

	objectifs, err := s.repo.ObjectifsInPeriod(ctx, truncateDay(now))
	if err != nil {
		return fmt.Errorf("objectifs in period: %w", err)
	}

	var (
		errs    []error
		updated int
	)

	for _, o := range objectifs {
		valeur, err := s.measure(ctx, o)
		if err != nil {
			errs = append(errs, fmt.Errorf("measure objectif %s: %w", o.ID, err))
			continue
		}

		if valeur.Equal(o.ValeurActuelle) {
			continue
		}

		err = s.repo.UpdateObjectifValeur(ctx, o.ID, valeur, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("update objectif %s: %w", o.ID, err))
			continue
		}

		updated++
	}

	slog.InfoContext(ctx, "objectifs refreshed", "total", len(objectifs), "updated", updated)

	return errors.Join(errs...)
}

// measure computes the achieved value of o over its period for its
// assignee, or for every member of its team when it has none.
func (s *Service) measure(ctx context.Context, o entity.Objectif) (decimal.Decimal, error) {
	owners, err := s.objectifOwners(ctx, o)
	if err != nil {
		return decimal.Zero, err
	}

	window := entity.StatsFilter{
		From: o.PeriodeDebut,
		To:   o.PeriodeFin.AddDate(0, 0, 1).Add(-time.Microsecond),
	}

	switch o.Type {
	case entity.ObjectifContacts:
		pred := scope.Where(scope.CombineOr, scope.Term{Column: entity.ContactOwnerColumn, IDs: owners})
		if pred.Empty() {
			return decimal.Zero, nil
		}

		n, err := s.repo.CountContacts(ctx, pred, window)

		return decimal.NewFromInt(int64(n)), err
	case entity.ObjectifPropositions:
		pred := scope.Where(scope.CombineOr, scope.Term{Column: entity.PropositionOwnerColumn, IDs: owners})
		if pred.Empty() {
			return decimal.Zero, nil
		}

		window.NotStatut = string(entity.PropositionBrouillon)
		n, err := s.repo.CountPropositions(ctx, pred, window)

		return decimal.NewFromInt(int64(n)), err
	case entity.ObjectifContrats, entity.ObjectifCA:
		contactIDs, err := scope.Pipeline{scope.OwnedContacts(s.repo)}.Run(ctx, owners)
		if err != nil {
			return decimal.Zero, err
		}

		pred := scope.Where(scope.CombineOr, scope.Term{Column: entity.ContratContactColumn, IDs: contactIDs})
		if pred.Empty() {
			return decimal.Zero, nil
		}

		if o.Type == entity.ObjectifCA {
			return s.repo.SumCotisations(ctx, pred, window)
		}

		n, err := s.repo.CountContrats(ctx, pred, window)

		return decimal.NewFromInt(int64(n)), err
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown objectif type %q", entity.ErrValidationFailed, o.Type)
	}
}

func (s *Service) objectifOwners(ctx context.Context, o entity.Objectif) ([]uuid.UUID, error) {
	if o.AssigneA.Valid {
		return []uuid.UUID{o.AssigneA.UUID}, nil
	}

	if !o.EquipeID.Valid {
		return []uuid.UUID{}, nil
	}

	return scope.Pipeline{scope.TeamMembers(s.repo)}.Run(ctx, []uuid.UUID{o.EquipeID.UUID})
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
