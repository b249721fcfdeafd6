package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

const ContactOwnerColumn = "collaborateur_en_charge"

type LeadStatus string

const (
	LeadStatusNouveau  LeadStatus = "nouveau"
	LeadStatusQualifie LeadStatus = "qualifie"
	LeadStatusEnCours  LeadStatus = "en_cours"
	LeadStatusConverti LeadStatus = "converti"
	LeadStatusPerdu    LeadStatus = "perdu"
)

// ParseLeadStatus accepts any casing ("Nouveau" comes from older imports).
func ParseLeadStatus(s string) (LeadStatus, bool) {
	st := LeadStatus(strings.ToLower(strings.TrimSpace(s)))

	switch st {
	case LeadStatusNouveau, LeadStatusQualifie, LeadStatusEnCours, LeadStatusConverti, LeadStatusPerdu:
		return st, true
	default:
		return "", false
	}
}

type Contact struct {
	ID                    uuid.UUID  `json:"id"`
	Nom                   string     `json:"nom"`
	Prenom                string     `json:"prenom"`
	Email                 string     `json:"email"`
	Telephone             string     `json:"telephone"`
	StatutLead            LeadStatus `json:"statutLead"`
	Source                string     `json:"source,omitempty"`
	Score                 *int       `json:"score,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
	Tags                  []string   `json:"tags"`
	CollaborateurEnCharge uuid.UUID  `json:"collaborateurEnCharge"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
	Utilisateur           *UserRef   `json:"utilisateur,omitempty"`
}

func (c Contact) OwnerID(column string) (uuid.UUID, bool) {
	if column == ContactOwnerColumn {
		return c.CollaborateurEnCharge, true
	}

	return uuid.Nil, false
}

type ContactUpdate struct {
	Nom        *string     `json:"nom"`
	Prenom     *string     `json:"prenom"`
	Email      *string     `json:"email"`
	Telephone  *string     `json:"telephone"`
	StatutLead *LeadStatus `json:"statutLead"`
	Source     *string     `json:"source"`
	Score      *int        `json:"score"`
	Notes      *string     `json:"notes"`
	Tags       []string    `json:"tags"`
	// Reassigns the contact; only meaningful for admin and gestionnaire.
	CollaborateurEnCharge *uuid.UUID `json:"collaborateurEnCharge"`
}

// ContactDetail is a contact with the related rows the actor may also see.
type ContactDetail struct {
	Contact      Contact       `json:"contact"`
	Propositions []Proposition `json:"propositions"`
	Contrats     []Contrat     `json:"contrats"`
	Taches       []Tache       `json:"taches"`
}

// Lead is an inbound lead received from the intake topic.
type Lead struct {
	Nom                   string    `json:"nom"`
	Prenom                string    `json:"prenom"`
	Email                 string    `json:"email"`
	Telephone             string    `json:"telephone"`
	Source                string    `json:"source"`
	CollaborateurEnCharge uuid.UUID `json:"collaborateur_en_charge"`
}
