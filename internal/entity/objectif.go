package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	ObjectifAssigneeColumn = "assigne_a"
	ObjectifTeamColumn     = "equipe_id"
)

type ObjectifType string

const (
	ObjectifCA           ObjectifType = "ca"
	ObjectifContacts     ObjectifType = "contacts"
	ObjectifContrats     ObjectifType = "contrats"
	ObjectifPropositions ObjectifType = "propositions"
)

func (t ObjectifType) IsValid() bool {
	switch t {
	case ObjectifCA, ObjectifContacts, ObjectifContrats, ObjectifPropositions:
		return true
	default:
		return false
	}
}

type Objectif struct {
	ID             uuid.UUID       `json:"id"`
	Nom            string          `json:"nom"`
	Type           ObjectifType    `json:"type"`
	ValeurCible    decimal.Decimal `json:"valeurCible"`
	ValeurActuelle decimal.Decimal `json:"valeurActuelle"`
	PeriodeDebut   time.Time       `json:"periodeDebut"`
	PeriodeFin     time.Time       `json:"periodeFin"`
	AssigneA       uuid.NullUUID   `json:"assigneA"`
	EquipeID       uuid.NullUUID   `json:"equipeId"`
	CreePar        uuid.UUID       `json:"creePar"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	Assignee       *UserRef        `json:"assignee,omitempty"`
	Equipe         *EquipeRef      `json:"equipe,omitempty"`
	Createur       *UserRef        `json:"createur,omitempty"`

	// Computed on read.
	Progression float64 `json:"progression"`
	EnCours     bool    `json:"enCours"`
}

func (o Objectif) OwnerID(column string) (uuid.UUID, bool) {
	switch column {
	case ObjectifAssigneeColumn:
		return o.AssigneA.UUID, o.AssigneA.Valid
	case ObjectifTeamColumn:
		return o.EquipeID.UUID, o.EquipeID.Valid
	default:
		return uuid.Nil, false
	}
}

// ProgressPercentage is valeur_actuelle / valeur_cible as a percentage,
// capped at 100. A zero or negative target yields 0.
func (o Objectif) ProgressPercentage() float64 {
	if !o.ValeurCible.IsPositive() {
		return 0
	}

	p := o.ValeurActuelle.Div(o.ValeurCible).Mul(decimal.NewFromInt(100))
	if p.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}

	return p.Round(2).InexactFloat64()
}

// InPeriod reports whether at falls within the objective's period, both
// bounds included.
func (o Objectif) InPeriod(at time.Time) bool {
	return !at.Before(o.PeriodeDebut) && !at.After(o.PeriodeFin)
}

type ObjectifUpdate struct {
	Nom          *string          `json:"nom"`
	Type         *ObjectifType    `json:"type"`
	ValeurCible  *decimal.Decimal `json:"valeurCible"`
	PeriodeDebut *time.Time       `json:"periodeDebut"`
	PeriodeFin   *time.Time       `json:"periodeFin"`
	AssigneA     *uuid.UUID       `json:"assigneA"`
	EquipeID     *uuid.UUID       `json:"equipeId"`
}
