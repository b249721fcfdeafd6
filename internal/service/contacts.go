package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
)

func (s *Service) ListContacts(ctx context.Context, filter entity.ListFilter) ([]entity.Contact, error) {
	user, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Statut != "" {
		st, ok := entity.ParseLeadStatus(filter.Statut)
		if !ok {
			return nil, fmt.Errorf("%w: invalid statut %q", entity.ErrValidationFailed, filter.Statut)
		}

		filter.Statut = string(st)
	}

	pred, err := s.predicate(ctx, user, scope.KindContact)
	if err != nil {
		return nil, err
	}

	if pred.Empty() {
		return []entity.Contact{}, nil
	}

	contacts, err := s.repo.ListContacts(ctx, pred, NormalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, nil
}

// ContactDetail returns a contact together with the propositions, contracts
// and tasks linked to it that the actor can see.
func (s *Service) ContactDetail(ctx context.Context, id uuid.UUID) (entity.ContactDetail, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.ContactDetail{}, err
	}

	contact, _, err := s.visibleContact(ctx, user, id)
	if err != nil {
		return entity.ContactDetail{}, err
	}

	byContact := entity.ListFilter{ContactID: uuid.NullUUID{UUID: id, Valid: true}}

	detail := entity.ContactDetail{
		Contact:      contact,
		Propositions: []entity.Proposition{},
		Contrats:     []entity.Contrat{},
		Taches:       []entity.Tache{},
	}

	pred, err := s.predicate(ctx, user, scope.KindProposition)
	if err != nil {
		return entity.ContactDetail{}, err
	}

	if !pred.Empty() {
		detail.Propositions, err = s.repo.ListPropositions(ctx, pred, byContact)
		if err != nil {
			return entity.ContactDetail{}, fmt.Errorf("list propositions: %w", err)
		}
	}

	pred, err = s.predicate(ctx, user, scope.KindContrat)
	if err != nil {
		return entity.ContactDetail{}, err
	}

	if !pred.Empty() {
		detail.Contrats, err = s.repo.ListContrats(ctx, pred, byContact)
		if err != nil {
			return entity.ContactDetail{}, fmt.Errorf("list contrats: %w", err)
		}
	}

	pred, err = s.predicate(ctx, user, scope.KindTache)
	if err != nil {
		return entity.ContactDetail{}, err
	}

	if !pred.Empty() {
		detail.Taches, err = s.repo.ListTaches(ctx, pred, byContact)
		if err != nil {
			return entity.ContactDetail{}, fmt.Errorf("list taches: %w", err)
		}
	}

	return detail, nil
}

// visibleContact loads a contact and checks that user may see it. The
// resolved contact predicate is returned for further checks.
func (s *Service) visibleContact(ctx context.Context, user entity.User, id uuid.UUID) (entity.Contact, scope.Predicate, error) {
	contact, err := s.repo.ContactByID(ctx, id)
	if err != nil {
		return entity.Contact{}, scope.None(), fmt.Errorf("get contact %s: %w", id, err)
	}

	pred, err := s.predicate(ctx, user, scope.KindContact)
	if err != nil {
		return entity.Contact{}, scope.None(), err
	}

	err = authorize(pred, contact, scope.KindContact, id)
	if err != nil {
		return entity.Contact{}, scope.None(), err
	}

	return contact, pred, nil
}

// requireContact checks that a referenced contact exists and is visible to
// user.
func (s *Service) requireContact(ctx context.Context, user entity.User, id uuid.UUID) error {
	_, _, err := s.visibleContact(ctx, user, id)
	if errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("%w: contact %s does not exist", entity.ErrValidationFailed, id)
	}

	return err
}

func (s *Service) CreateContact(ctx context.Context, c entity.Contact) (entity.Contact, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.Contact{}, err
	}

	now := s.now()

	c.ID = newID()
	c.CreatedAt = now
	c.UpdatedAt = now

	if c.CollaborateurEnCharge.IsNil() {
		c.CollaborateurEnCharge = user.ID
	}

	if c.StatutLead == "" {
		c.StatutLead = entity.LeadStatusNouveau
	}

	if st, ok := entity.ParseLeadStatus(string(c.StatutLead)); ok {
		c.StatutLead = st
	}

	err = ValidateContact(c)
	if err != nil {
		return entity.Contact{}, err
	}

	pred, err := s.predicate(ctx, user, scope.KindContact)
	if err != nil {
		return entity.Contact{}, err
	}

	err = authorize(pred, c, scope.KindContact, c.ID)
	if err != nil {
		return entity.Contact{}, err
	}

	err = s.repo.CreateContact(ctx, c)
	if err != nil {
		return entity.Contact{}, fmt.Errorf("create contact: %w", err)
	}

	slog.InfoContext(ctx, "contact created", "contact_id", c.ID)
	s.publish(ctx, scope.KindContact, entity.ActionCreated, c.ID, user.ID)

	return c, nil
}

func (s *Service) UpdateContact(ctx context.Context, id uuid.UUID, upd entity.ContactUpdate) (entity.Contact, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.Contact{}, err
	}

	c, pred, err := s.visibleContact(ctx, user, id)
	if err != nil {
		return entity.Contact{}, err
	}

	applyContactUpdate(&c, upd)
	c.UpdatedAt = s.now()

	err = ValidateContact(c)
	if err != nil {
		return entity.Contact{}, err
	}

	// The new owner must stay within the actor's reach.
	err = authorize(pred, c, scope.KindContact, id)
	if err != nil {
		return entity.Contact{}, err
	}

	err = s.repo.UpdateContact(ctx, c)
	if err != nil {
		return entity.Contact{}, fmt.Errorf("update contact: %w", err)
	}

	s.publish(ctx, scope.KindContact, entity.ActionUpdated, c.ID, user.ID)

	return c, nil
}

func applyContactUpdate(c *entity.Contact, upd entity.ContactUpdate) {
	if upd.Nom != nil {
		c.Nom = *upd.Nom
	}

	if upd.Prenom != nil {
		c.Prenom = *upd.Prenom
	}

	if upd.Email != nil {
		c.Email = *upd.Email
	}

	if upd.Telephone != nil {
		c.Telephone = *upd.Telephone
	}

	if upd.StatutLead != nil {
		c.StatutLead = *upd.StatutLead
		if st, ok := entity.ParseLeadStatus(string(c.StatutLead)); ok {
			c.StatutLead = st
		}
	}

	if upd.Source != nil {
		c.Source = *upd.Source
	}

	if upd.Score != nil {
		c.Score = upd.Score
	}

	if upd.Notes != nil {
		c.Notes = *upd.Notes
	}

	if upd.Tags != nil {
		c.Tags = upd.Tags
	}

	if upd.CollaborateurEnCharge != nil {
		c.CollaborateurEnCharge = *upd.CollaborateurEnCharge
	}
}

func (s *Service) DeleteContact(ctx context.Context, id uuid.UUID) error {
	user, err := actor(ctx)
	if err != nil {
		return err
	}

	_, _, err = s.visibleContact(ctx, user, id)
	if err != nil {
		return err
	}

	err = s.repo.DeleteContact(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	slog.InfoContext(ctx, "contact deleted", "contact_id", id)
	s.publish(ctx, scope.KindContact, entity.ActionDeleted, id, user.ID)

	return nil
}

// IntakeLead stores an inbound lead as a new contact. There is no acting
// user: the owner comes with the lead.
func (s *Service) IntakeLead(ctx context.Context, lead entity.Lead) (entity.Contact, error) {
	if lead.CollaborateurEnCharge.IsNil() {
		return entity.Contact{}, fmt.Errorf("%w: lead has no collaborateur_en_charge", entity.ErrValidationFailed)
	}

	now := s.now()

	c := entity.Contact{
		ID:                    newID(),
		Nom:                   lead.Nom,
		Prenom:                lead.Prenom,
		Email:                 lead.Email,
		Telephone:             lead.Telephone,
		StatutLead:            entity.LeadStatusNouveau,
		Source:                lead.Source,
		Tags:                  []string{},
		CollaborateurEnCharge: lead.CollaborateurEnCharge,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	err := ValidateContact(c)
	if err != nil {
		return entity.Contact{}, err
	}

	err = s.repo.CreateContact(ctx, c)
	if err != nil {
		return entity.Contact{}, fmt.Errorf("create contact from lead: %w", err)
	}

	slog.InfoContext(ctx, "lead received", "contact_id", c.ID, "source", c.Source)
	s.publish(ctx, scope.KindContact, entity.ActionCreated, c.ID, uuid.Nil)

	return c, nil
}
