package scope

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
)

type Resolver struct {
	lookup          Lookup
	tacheCombinator Combinator
}

type Option func(*Resolver)

// WithTacheCombinator sets how the assignee and creator conditions of a
// team-scoped task listing are joined.
func WithTacheCombinator(c Combinator) Option {
	return func(r *Resolver) {
		r.tacheCombinator = c
	}
}

func NewResolver(lookup Lookup, opts ...Option) *Resolver {
	r := &Resolver{
		lookup:          lookup,
		tacheCombinator: CombineOr,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve runs the lookups s needs, in order, and returns the predicate to
// apply to the listing. Errors from the store are returned as is; the caller
// must not fall back to an unfiltered read.
func (r *Resolver) Resolve(ctx context.Context, s Scope) (Predicate, error) {
	switch s.Mode {
	case ModeUnrestricted:
		return All(), nil
	case ModeSelf:
		return r.self(ctx, s)
	case ModeTeam, ModeTeamOrAssignee:
		return r.team(ctx, s)
	default:
		return None(), nil
	}
}

func (r *Resolver) self(ctx context.Context, s Scope) (Predicate, error) {
	me := []uuid.UUID{s.UserID}

	switch s.Kind {
	case KindContact:
		return Where(CombineOr, Term{Column: entity.ContactOwnerColumn, IDs: me}), nil
	case KindProposition:
		return Where(CombineOr, Term{Column: entity.PropositionOwnerColumn, IDs: me}), nil
	case KindCampagne:
		return Where(CombineOr, Term{Column: entity.CampagneOwnerColumn, IDs: me}), nil
	case KindTache:
		return Where(CombineOr,
			Term{Column: entity.TacheAssigneeColumn, IDs: me},
			Term{Column: entity.TacheCreatorColumn, IDs: me},
		), nil
	case KindObjectif:
		terms := []Term{{Column: entity.ObjectifAssigneeColumn, IDs: me}}
		if s.TeamID.Valid {
			terms = append(terms, Term{Column: entity.ObjectifTeamColumn, IDs: []uuid.UUID{s.TeamID.UUID}})
		}

		return Where(CombineOr, terms...), nil
	case KindContrat:
		contactIDs, err := Pipeline{OwnedContacts(r.lookup)}.Run(ctx, me)
		if err != nil {
			return None(), fmt.Errorf("contrat scope: %w", err)
		}

		return Where(CombineOr, Term{Column: entity.ContratContactColumn, IDs: contactIDs}), nil
	default:
		return None(), nil
	}
}

func (r *Resolver) team(ctx context.Context, s Scope) (Predicate, error) {
	if !s.TeamID.Valid {
		return None(), nil
	}

	team := []uuid.UUID{s.TeamID.UUID}

	if s.Kind == KindContrat {
		contactIDs, err := Pipeline{TeamMembers(r.lookup), OwnedContacts(r.lookup)}.Run(ctx, team)
		if err != nil {
			return None(), fmt.Errorf("contrat scope: %w", err)
		}

		return Where(CombineOr, Term{Column: entity.ContratContactColumn, IDs: contactIDs}), nil
	}

	members, err := Pipeline{TeamMembers(r.lookup)}.Run(ctx, team)
	if err != nil {
		return None(), fmt.Errorf("%s scope: %w", s.Kind, err)
	}

	switch s.Kind {
	case KindContact:
		return Where(CombineOr, Term{Column: entity.ContactOwnerColumn, IDs: members}), nil
	case KindProposition:
		return Where(CombineOr, Term{Column: entity.PropositionOwnerColumn, IDs: members}), nil
	case KindCampagne:
		return Where(CombineOr, Term{Column: entity.CampagneOwnerColumn, IDs: members}), nil
	case KindTache:
		return Where(r.tacheCombinator,
			Term{Column: entity.TacheAssigneeColumn, IDs: members},
			Term{Column: entity.TacheCreatorColumn, IDs: members},
		), nil
	case KindObjectif:
		return Where(CombineOr,
			Term{Column: entity.ObjectifTeamColumn, IDs: team},
			Term{Column: entity.ObjectifAssigneeColumn, IDs: members},
		), nil
	default:
		return None(), nil
	}
}
