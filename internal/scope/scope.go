// Package scope computes which rows of an entity collection an actor may see
// and turns that into a predicate the repository applies before any row is
// read.
package scope

import (
	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
)

type Kind string

const (
	KindContact     Kind = "contact"
	KindProposition Kind = "proposition"
	KindContrat     Kind = "contrat"
	KindTache       Kind = "tache"
	KindObjectif    Kind = "objectif"
	KindCampagne    Kind = "campagne"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindContact, KindProposition, KindContrat, KindTache, KindObjectif, KindCampagne:
		return true
	default:
		return false
	}
}

type Mode uint8

const (
	// ModeEmpty matches nothing. It is the zero value so that an unset
	// scope never widens visibility.
	ModeEmpty Mode = iota
	ModeUnrestricted
	ModeSelf
	ModeTeam
	ModeTeamOrAssignee
)

func (m Mode) String() string {
	switch m {
	case ModeUnrestricted:
		return "unrestricted"
	case ModeSelf:
		return "self"
	case ModeTeam:
		return "team"
	case ModeTeamOrAssignee:
		return "team_or_assignee"
	default:
		return "empty"
	}
}

// Actor is the identity a scope is computed for.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
	TeamID uuid.NullUUID
}

func ActorFromUser(u entity.User) Actor {
	return Actor{
		UserID: u.ID,
		Role:   u.Role,
		TeamID: u.EquipeID,
	}
}

// Scope is the unresolved visibility of one actor over one entity kind.
type Scope struct {
	Kind   Kind
	Mode   Mode
	UserID uuid.UUID
	TeamID uuid.NullUUID
}

// Compute returns the scope of actor over kind. It performs no I/O; team
// membership and owned contacts are looked up later by a Resolver.
func Compute(actor Actor, kind Kind) Scope {
	s := Scope{Kind: kind, Mode: ModeEmpty, UserID: actor.UserID, TeamID: actor.TeamID}

	if !kind.IsValid() || actor.UserID.IsNil() {
		return s
	}

	switch actor.Role {
	case entity.RoleAdmin:
		s.Mode = ModeUnrestricted
	case entity.RoleConseiller:
		s.Mode = ModeSelf
	case entity.RoleGestionnaire:
		// No team binding means nothing is visible, never everything.
		if !actor.TeamID.Valid || actor.TeamID.UUID.IsNil() {
			return s
		}

		s.Mode = ModeTeam
		if kind == KindObjectif {
			s.Mode = ModeTeamOrAssignee
		}
	}

	return s
}
