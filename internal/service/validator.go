package service

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/samandr77/microservices/crm/internal/entity"
)

// NormalizeFilter applies the default and maximum page size.
func NormalizeFilter(f entity.ListFilter) entity.ListFilter {
	f.Search = strings.TrimSpace(f.Search)

	if f.Page == 0 {
		f.Page = entity.DefaultPage
	}

	if f.Limit == 0 {
		f.Limit = entity.DefaultLimit
	}

	if f.Limit > entity.MaxLimit {
		f.Limit = entity.MaxLimit
	}

	return f
}

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", entity.ErrValidationFailed)
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("%w: invalid email %q", entity.ErrValidationFailed, email)
	}

	return nil
}

func ValidateContact(c entity.Contact) error {
	if strings.TrimSpace(c.Nom) == "" {
		return fmt.Errorf("%w: nom is required", entity.ErrValidationFailed)
	}

	err := ValidateEmail(c.Email)
	if err != nil {
		return err
	}

	if _, ok := entity.ParseLeadStatus(string(c.StatutLead)); !ok {
		return fmt.Errorf("%w: invalid statut_lead %q", entity.ErrValidationFailed, c.StatutLead)
	}

	if c.Score != nil && (*c.Score < 0 || *c.Score > 100) {
		return fmt.Errorf("%w: score must be between 0 and 100", entity.ErrValidationFailed)
	}

	return nil
}

func ValidateProposition(p entity.Proposition) error {
	if p.ContactID.IsNil() {
		return fmt.Errorf("%w: contact_id is required", entity.ErrValidationFailed)
	}

	if !p.Statut.IsValid() {
		return fmt.Errorf("%w: invalid statut %q", entity.ErrValidationFailed, p.Statut)
	}

	if p.MontantMensuel.Valid && p.MontantMensuel.Decimal.IsNegative() {
		return fmt.Errorf("%w: montant_mensuel must not be negative", entity.ErrValidationFailed)
	}

	if p.DateProposition != nil && p.DateEcheance != nil && p.DateEcheance.Before(*p.DateProposition) {
		return fmt.Errorf("%w: date_echeance is before date_proposition", entity.ErrValidationFailed)
	}

	return nil
}

func ValidateContrat(k entity.Contrat) error {
	switch {
	case strings.TrimSpace(k.NumeroContrat) == "":
		return fmt.Errorf("%w: numero_contrat is required", entity.ErrValidationFailed)
	case k.ContactClientID.IsNil():
		return fmt.Errorf("%w: contact_client_id is required", entity.ErrValidationFailed)
	case k.DateSignature.IsZero():
		return fmt.Errorf("%w: date_signature is required", entity.ErrValidationFailed)
	case k.CotisationMensuelle.IsNegative():
		return fmt.Errorf("%w: cotisation_mensuelle must not be negative", entity.ErrValidationFailed)
	}

	return nil
}

func ValidateTache(t entity.Tache) error {
	if strings.TrimSpace(t.Titre) == "" {
		return fmt.Errorf("%w: titre is required", entity.ErrValidationFailed)
	}

	if !t.Statut.IsValid() {
		return fmt.Errorf("%w: invalid statut %q", entity.ErrValidationFailed, t.Statut)
	}

	if !t.Priorite.IsValid() {
		return fmt.Errorf("%w: invalid priorite %q", entity.ErrValidationFailed, t.Priorite)
	}

	return nil
}

func ValidateObjectif(o entity.Objectif) error {
	switch {
	case strings.TrimSpace(o.Nom) == "":
		return fmt.Errorf("%w: nom is required", entity.ErrValidationFailed)
	case !o.Type.IsValid():
		return fmt.Errorf("%w: invalid type %q", entity.ErrValidationFailed, o.Type)
	case !o.ValeurCible.IsPositive():
		return fmt.Errorf("%w: valeur_cible must be positive", entity.ErrValidationFailed)
	case o.PeriodeDebut.IsZero() || o.PeriodeFin.IsZero():
		return fmt.Errorf("%w: periode is required", entity.ErrValidationFailed)
	case o.PeriodeFin.Before(o.PeriodeDebut):
		return fmt.Errorf("%w: periode_fin is before periode_debut", entity.ErrValidationFailed)
	}

	return nil
}

func ValidateCampagne(g entity.Campagne) error {
	if strings.TrimSpace(g.Nom) == "" {
		return fmt.Errorf("%w: nom is required", entity.ErrValidationFailed)
	}

	if !g.Statut.IsValid() {
		return fmt.Errorf("%w: invalid statut %q", entity.ErrValidationFailed, g.Statut)
	}

	if g.DateDebut != nil && g.DateFin != nil && g.DateFin.Before(*g.DateDebut) {
		return fmt.Errorf("%w: date_fin is before date_debut", entity.ErrValidationFailed)
	}

	for i, e := range g.Etapes {
		if e.DelaiJours < 0 {
			return fmt.Errorf("%w: etape %d has a negative delai", entity.ErrValidationFailed, i+1)
		}
	}

	return nil
}
