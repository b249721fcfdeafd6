package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleGestionnaire Role = "gestionnaire"
	RoleConseiller   Role = "conseiller"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleGestionnaire, RoleConseiller:
		return true
	default:
		return false
	}
}

// User is the acting user as resolved by the Auth middleware. Role is empty
// when the session has no matching profile row.
type User struct {
	ID         uuid.UUID     `json:"id"`
	Email      string        `json:"email"`
	NomComplet string        `json:"nomComplet"`
	EquipeID   uuid.NullUUID `json:"equipeId"`
	Role       Role          `json:"role"`
	Statut     string        `json:"statut"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// Session is what the identity service returns for a valid access token.
type Session struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
}

type UserRef struct {
	NomComplet string `json:"nomComplet"`
}

type EquipeRef struct {
	Nom string `json:"nom"`
}

type ContactRef struct {
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Email  string `json:"email,omitempty"`
}
