package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Contracts are not owned by a user directly: visibility goes through the
// linked contact.
const ContratContactColumn = "contact_client_id"

type Contrat struct {
	ID                  uuid.UUID       `json:"id"`
	NumeroContrat       string          `json:"numeroContrat"`
	Compagnie           string          `json:"compagnie"`
	CotisationMensuelle decimal.Decimal `json:"cotisationMensuelle"`
	DateSignature       time.Time       `json:"dateSignature"`
	ContactClientID     uuid.UUID       `json:"contactClientId"`
	CreatedAt           time.Time       `json:"createdAt"`
	Contact             *ContactRef     `json:"contact,omitempty"`
}

func (c Contrat) OwnerID(column string) (uuid.UUID, bool) {
	if column == ContratContactColumn {
		return c.ContactClientID, true
	}

	return uuid.Nil, false
}
