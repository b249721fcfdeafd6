package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

const (
	TacheAssigneeColumn = "assigne_a"
	TacheCreatorColumn  = "cree_par"
)

type TacheStatus string

const (
	TacheAFaire  TacheStatus = "a_faire"
	TacheEnCours TacheStatus = "en_cours"
	TacheTermine TacheStatus = "termine"
)

func (s TacheStatus) IsValid() bool {
	switch s {
	case TacheAFaire, TacheEnCours, TacheTermine:
		return true
	default:
		return false
	}
}

type TachePriority string

const (
	PriorityHaute   TachePriority = "haute"
	PriorityNormale TachePriority = "normale"
	PriorityBasse   TachePriority = "basse"
)

func (p TachePriority) IsValid() bool {
	switch p {
	case PriorityHaute, PriorityNormale, PriorityBasse:
		return true
	default:
		return false
	}
}

type Tache struct {
	ID             uuid.UUID     `json:"id"`
	Titre          string        `json:"titre"`
	Description    string        `json:"description,omitempty"`
	Statut         TacheStatus   `json:"statut"`
	Priorite       TachePriority `json:"priorite"`
	DateEcheance   *time.Time    `json:"dateEcheance,omitempty"`
	DateCompletion *time.Time    `json:"dateCompletion,omitempty"`
	ContactID      uuid.NullUUID `json:"contactId"`
	AssigneA       uuid.UUID     `json:"assigneA"`
	CreePar        uuid.UUID     `json:"creePar"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Contact        *ContactRef   `json:"contact,omitempty"`
	Assignee       *UserRef      `json:"assignee,omitempty"`
	Createur       *UserRef      `json:"createur,omitempty"`
}

func (t Tache) OwnerID(column string) (uuid.UUID, bool) {
	switch column {
	case TacheAssigneeColumn:
		return t.AssigneA, true
	case TacheCreatorColumn:
		return t.CreePar, true
	default:
		return uuid.Nil, false
	}
}

// SetStatus moves the task to st and keeps the completion date consistent
// with it.
func (t *Tache) SetStatus(st TacheStatus, now time.Time) {
	t.Statut = st

	if st == TacheTermine {
		t.DateCompletion = &now
		return
	}

	t.DateCompletion = nil
}

type TacheUpdate struct {
	Titre        *string        `json:"titre"`
	Description  *string        `json:"description"`
	Statut       *TacheStatus   `json:"statut"`
	Priorite     *TachePriority `json:"priorite"`
	DateEcheance *time.Time     `json:"dateEcheance"`
	ContactID    *uuid.UUID     `json:"contactId"`
	AssigneA     *uuid.UUID     `json:"assigneA"`
}
