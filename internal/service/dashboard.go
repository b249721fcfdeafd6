package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
	"golang.org/x/sync/errgroup"
)

// Dashboard computes the actor's key figures. Scopes are resolved one after
// another; the aggregates then run concurrently.
func (s *Service) Dashboard(ctx context.Context) (entity.DashboardStats, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.DashboardStats{}, err
	}

	preds := make(map[scope.Kind]scope.Predicate, 4)

	for _, kind := range []scope.Kind{scope.KindContact, scope.KindProposition, scope.KindContrat, scope.KindObjectif} {
		pred, err := s.predicate(ctx, user, kind)
		if err != nil {
			return entity.DashboardStats{}, err
		}

		preds[kind] = pred
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var stats entity.DashboardStats

	g, gctx := errgroup.WithContext(ctx)

	if pred := preds[scope.KindContact]; !pred.Empty() {
		g.Go(func() error {
			n, err := s.repo.CountContacts(gctx, pred, entity.StatsFilter{Statut: string(entity.LeadStatusNouveau)})
			if err != nil {
				return fmt.Errorf("count contacts: %w", err)
			}

			stats.NouveauxContacts = n

			return nil
		})
	}

	if pred := preds[scope.KindProposition]; !pred.Empty() {
		g.Go(func() error {
			n, err := s.repo.CountPropositions(gctx, pred, entity.StatsFilter{Statut: string(entity.PropositionEnvoyee)})
			if err != nil {
				return fmt.Errorf("count propositions: %w", err)
			}

			stats.PropositionsEnAttente = n

			return nil
		})
	}

	if pred := preds[scope.KindContrat]; !pred.Empty() {
		g.Go(func() error {
			sum, err := s.repo.SumCotisations(gctx, pred, entity.StatsFilter{From: monthStart})
			if err != nil {
				return fmt.Errorf("sum cotisations: %w", err)
			}

			stats.CAMensuel = sum

			return nil
		})
	}

	if pred := preds[scope.KindObjectif]; !pred.Empty() {
		g.Go(func() error {
			objectifs, err := s.repo.ListObjectifs(gctx, pred, entity.ListFilter{})
			if err != nil {
				return fmt.Errorf("list objectifs: %w", err)
			}

			stats.ProgressionObjectif = averageProgress(objectifs, now)

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return entity.DashboardStats{}, err
	}

	return stats, nil
}

// averageProgress is the mean progress of the objectives running at now, 0
// when there are none.
func averageProgress(objectifs []entity.Objectif, now time.Time) float64 {
	var (
		total float64
		n     int
	)

	today := truncateDay(now)

	for _, o := range objectifs {
		if !o.InPeriod(today) {
			continue
		}

		total += o.ProgressPercentage()
		n++
	}

	if n == 0 {
		return 0
	}

	return math.Round(total/float64(n)*100) / 100
}
