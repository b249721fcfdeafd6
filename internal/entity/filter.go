package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListFilter holds the optional narrowing a listing may apply on top of the
// actor's scope. Empty fields are ignored.
type ListFilter struct {
	Search   string
	Statut   string
	Priorite string
	Type     string
	// Restricts propositions, contrats and taches to one contact.
	ContactID uuid.NullUUID
	Page      uint64
	Limit     uint64
}

func (f ListFilter) Offset() uint64 {
	if f.Page == 0 {
		return 0
	}

	return (f.Page - 1) * f.Limit
}

// StatsFilter narrows an aggregate. Zero times leave the window open on
// that side.
type StatsFilter struct {
	Statut    string
	NotStatut string
	From      time.Time
	To        time.Time
}

type DashboardStats struct {
	NouveauxContacts      int             `json:"nouveauxContacts"`
	PropositionsEnAttente int             `json:"propositionsEnAttente"`
	CAMensuel             decimal.Decimal `json:"caMensuel"`
	ProgressionObjectif   float64         `json:"progressionObjectif"`
}

type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// ChangeEvent is published after every successful mutation.
type ChangeEvent struct {
	Entity  string       `json:"entity"`
	Action  ChangeAction `json:"action"`
	ID      string       `json:"id"`
	ActorID string       `json:"actor_id,omitempty"`
	At      time.Time    `json:"at"`
}

type ImportRowError struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

type ImportReport struct {
	Imported int              `json:"imported"`
	Rejected []ImportRowError `json:"rejected"`
}
