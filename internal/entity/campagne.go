package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

const CampagneOwnerColumn = "cree_par"

type CampagneStatus string

const (
	CampagneBrouillon CampagneStatus = "brouillon"
	CampagneActive    CampagneStatus = "active"
	CampagnePausee    CampagneStatus = "pausee"
	CampagneTerminee  CampagneStatus = "terminee"
)

func (s CampagneStatus) IsValid() bool {
	switch s {
	case CampagneBrouillon, CampagneActive, CampagnePausee, CampagneTerminee:
		return true
	default:
		return false
	}
}

// Etape is one step of a campaign sequence. Steps are kept in the order
// they were given.
type Etape struct {
	Ordre      int    `json:"ordre"`
	Type       string `json:"type"`
	DelaiJours int    `json:"delaiJours"`
	Sujet      string `json:"sujet,omitempty"`
	Contenu    string `json:"contenu,omitempty"`
}

type Declencheur struct {
	Type       string            `json:"type"`
	Parametres map[string]string `json:"parametres,omitempty"`
}

type Campagne struct {
	ID          uuid.UUID      `json:"id"`
	Nom         string         `json:"nom"`
	Description string         `json:"description,omitempty"`
	Type        string         `json:"type"`
	Statut      CampagneStatus `json:"statut"`
	DateDebut   *time.Time     `json:"dateDebut,omitempty"`
	DateFin     *time.Time     `json:"dateFin,omitempty"`
	Declencheur Declencheur    `json:"declencheur"`
	Etapes      []Etape        `json:"etapes"`
	CreePar     uuid.UUID      `json:"creePar"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Createur    *UserRef       `json:"createur,omitempty"`
}

func (c Campagne) OwnerID(column string) (uuid.UUID, bool) {
	if column == CampagneOwnerColumn {
		return c.CreePar, true
	}

	return uuid.Nil, false
}

type CampagneUpdate struct {
	Nom         *string         `json:"nom"`
	Description *string         `json:"description"`
	Type        *string         `json:"type"`
	Statut      *CampagneStatus `json:"statut"`
	DateDebut   *time.Time      `json:"dateDebut"`
	DateFin     *time.Time      `json:"dateFin"`
	Declencheur *Declencheur    `json:"declencheur"`
	Etapes      []Etape         `json:"etapes"`
}
