package entity

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const PropositionOwnerColumn = "conseiller_id"

type PropositionStatus string

const (
	PropositionBrouillon PropositionStatus = "brouillon"
	PropositionEnvoyee   PropositionStatus = "envoyee"
	PropositionAcceptee  PropositionStatus = "acceptee"
	PropositionRefusee   PropositionStatus = "refusee"
)

func (s PropositionStatus) IsValid() bool {
	switch s {
	case PropositionBrouillon, PropositionEnvoyee, PropositionAcceptee, PropositionRefusee:
		return true
	default:
		return false
	}
}

type Proposition struct {
	ID              uuid.UUID           `json:"id"`
	ContactID       uuid.UUID           `json:"contactId"`
	ConseillerID    uuid.UUID           `json:"conseillerId"`
	Produit         string              `json:"produit,omitempty"`
	Compagnie       string              `json:"compagnie,omitempty"`
	MontantMensuel  decimal.NullDecimal `json:"montantMensuel"`
	Statut          PropositionStatus   `json:"statut"`
	DateProposition *time.Time          `json:"dateProposition,omitempty"`
	DateEcheance    *time.Time          `json:"dateEcheance,omitempty"`
	Details         json.RawMessage     `json:"details,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	Contact         *ContactRef         `json:"contact,omitempty"`
	Conseiller      *UserRef            `json:"conseiller,omitempty"`
}

func (p Proposition) OwnerID(column string) (uuid.UUID, bool) {
	if column == PropositionOwnerColumn {
		return p.ConseillerID, true
	}

	return uuid.Nil, false
}

type PropositionUpdate struct {
	Produit         *string            `json:"produit"`
	Compagnie       *string            `json:"compagnie"`
	MontantMensuel  *decimal.Decimal   `json:"montantMensuel"`
	Statut          *PropositionStatus `json:"statut"`
	DateProposition *time.Time         `json:"dateProposition"`
	DateEcheance    *time.Time         `json:"dateEcheance"`
	Details         json.RawMessage    `json:"details"`
}
