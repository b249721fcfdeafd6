package service

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
)

const defaultImportMaxRows = 5000

// importColumns maps accepted CSV headers, in lower case, to contact fields.
// Both the display names and the column names are understood.
var importColumns = map[string]string{
	"nom":         "nom",
	"prénom":      "prenom",
	"prenom":      "prenom",
	"email":       "email",
	"e-mail":      "email",
	"téléphone":   "telephone",
	"telephone":   "telephone",
	"statut":      "statut_lead",
	"statut lead": "statut_lead",
	"statut_lead": "statut_lead",
	"source":      "source",
}

// ImportContacts reads a CSV file of contacts owned by the actor. Invalid
// rows are reported and skipped; the valid ones are inserted together.
func (s *Service) ImportContacts(ctx context.Context, r io.Reader) (entity.ImportReport, error) {
	user, err := actor(ctx)
	if err != nil {
		return entity.ImportReport{}, err
	}

	pred, err := s.predicate(ctx, user, scope.KindContact)
	if err != nil {
		return entity.ImportReport{}, err
	}

	// Imported contacts belong to the actor, who must be able to see them.
	err = authorize(pred, entity.Contact{CollaborateurEnCharge: user.ID}, scope.KindContact, user.ID)
	if err != nil {
		return entity.ImportReport{}, err
	}

	reader, err := csvReader(r)
	if err != nil {
		return entity.ImportReport{}, err
	}

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return entity.ImportReport{}, fmt.Errorf("%w: empty file", entity.ErrValidationFailed)
		}

		return entity.ImportReport{}, fmt.Errorf("%w: read header: %w", entity.ErrValidationFailed, err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return entity.ImportReport{}, err
	}

	var (
		report   = entity.ImportReport{Rejected: []entity.ImportRowError{}}
		contacts []entity.Contact
		now      = s.now()
	)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return entity.ImportReport{}, fmt.Errorf("%w: %w", entity.ErrValidationFailed, err)
		}

		line, _ := reader.FieldPos(0)

		if blank(record) {
			continue
		}

		if len(contacts)+len(report.Rejected) >= s.importMaxRows {
			return entity.ImportReport{}, fmt.Errorf("%w: more than %d rows", entity.ErrValidationFailed, s.importMaxRows)
		}

		c, err := contactFromRecord(record, columns)
		if err == nil {
			c.ID = newID()
			c.CollaborateurEnCharge = user.ID
			c.CreatedAt = now
			c.UpdatedAt = now

			err = ValidateContact(c)
		}

		if err != nil {
			report.Rejected = append(report.Rejected, entity.ImportRowError{Line: line, Error: err.Error()})
			continue
		}

		contacts = append(contacts, c)
	}

	if len(contacts) == 0 {
		return report, nil
	}

	err = s.repo.CreateContacts(ctx, contacts)
	if err != nil {
		return entity.ImportReport{}, fmt.Errorf("create contacts: %w", err)
	}

	report.Imported = len(contacts)

	slog.InfoContext(ctx, "contacts imported", "imported", report.Imported, "rejected", len(report.Rejected))

	for _, c := range contacts {
		s.publish(ctx, scope.KindContact, entity.ActionCreated, c.ID, user.ID)
	}

	return report, nil
}

// csvReader detects whether the file is comma or semicolon separated from
// its first line.
func csvReader(r io.Reader) (*csv.Reader, error) {
	br := bufio.NewReader(r)

	first, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	first = strings.TrimPrefix(first, "\ufeff")

	reader := csv.NewReader(io.MultiReader(strings.NewReader(first), br))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if strings.Count(first, ";") > strings.Count(first, ",") {
		reader.Comma = ';'
	}

	return reader, nil
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))

	for i, h := range header {
		field, ok := importColumns[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}

		if _, dup := columns[field]; !dup {
			columns[field] = i
		}
	}

	for _, required := range []string{"nom", "email"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", entity.ErrValidationFailed, required)
		}
	}

	return columns, nil
}

func contactFromRecord(record []string, columns map[string]int) (entity.Contact, error) {
	get := func(field string) string {
		i, ok := columns[field]
		if !ok || i >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[i])
	}

	c := entity.Contact{
		Nom:        get("nom"),
		Prenom:     get("prenom"),
		Email:      get("email"),
		Telephone:  get("telephone"),
		Source:     get("source"),
		StatutLead: entity.LeadStatusNouveau,
		Tags:       []string{},
	}

	if raw := get("statut_lead"); raw != "" {
		st, ok := entity.ParseLeadStatus(raw)
		if !ok {
			return entity.Contact{}, fmt.Errorf("%w: invalid statut %q", entity.ErrValidationFailed, raw)
		}

		c.StatutLead = st
	}

	return c, nil
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}
