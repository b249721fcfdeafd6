package scope

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=pipeline.go -destination=../mocks/scope.go -package=mocks -typed

// Lookup provides the read-only queries scope resolution depends on.
type Lookup interface {
	TeamMemberIDs(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error)
	ContactIDsOwnedBy(ctx context.Context, ownerIDs []uuid.UUID) ([]uuid.UUID, error)
}

// Step maps one set of ids to the next one.
type Step struct {
	Name string
	Run  func(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

// Pipeline runs its steps one after another, each on the previous output.
type Pipeline []Step

// Run stops at the first empty set; later steps would only be able to
// narrow it further, so they are not queried.
func (p Pipeline) Run(ctx context.Context, seed []uuid.UUID) ([]uuid.UUID, error) {
	ids := seed

	for _, step := range p {
		if len(ids) == 0 {
			return []uuid.UUID{}, nil
		}

		next, err := step.Run(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name, err)
		}

		ids = next
	}

	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// TeamMembers expands team ids into the ids of their members.
func TeamMembers(l Lookup) Step {
	return Step{
		Name: "resolve team members",
		Run: func(ctx context.Context, teamIDs []uuid.UUID) ([]uuid.UUID, error) {
			members := make([]uuid.UUID, 0)

			for _, teamID := range teamIDs {
				ids, err := l.TeamMemberIDs(ctx, teamID)
				if err != nil {
					return nil, err
				}

				members = append(members, ids...)
			}

			return members, nil
		},
	}
}

// OwnedContacts maps user ids to the ids of the contacts they are in
// charge of.
func OwnedContacts(l Lookup) Step {
	return Step{
		Name: "resolve owned contacts",
		Run: func(ctx context.Context, ownerIDs []uuid.UUID) ([]uuid.UUID, error) {
			return l.ContactIDsOwnedBy(ctx, ownerIDs)
		},
	}
}
