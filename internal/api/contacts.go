package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
)

const maxImportSize = 10 << 20

type ContactsResponse struct {
	Contacts []entity.Contact `json:"contacts"`
}

// ListContacts godoc
// @Summary      Liste des contacts
// @Description  Retourne les contacts visibles par l'utilisateur
// @Tags         contacts
// @Produce      json
// @Param        search query string false "Recherche sur le nom, le prénom ou l'e-mail"
// @Param        statut query string false "Statut du lead" Enums(nouveau, qualifie, en_cours, converti, perdu)
// @Param        page query int false "Numéro de page"
// @Param        limit query int false "Taille de page (100 au plus)"
// @Success      200 {object} ContactsResponse
// @Failure      400 {object} ResponseError "Paramètres invalides"
// @Failure      401 {object} ResponseError "Non authentifié"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /contacts [get]
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Paramètres de requête invalides")
		return
	}

	contacts, err := h.s.ListContacts(ctx, filter)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la récupération des contacts")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ContactsResponse{Contacts: contacts})
}

// ContactDetail godoc
// @Summary      Détail d'un contact
// @Description  Retourne un contact avec ses propositions, contrats et tâches visibles
// @Tags         contacts
// @Produce      json
// @Param        id path string true "ID du contact"
// @Success      200 {object} entity.ContactDetail
// @Failure      400 {object} ResponseError "ID invalide"
// @Failure      403 {object} ResponseError "Contact hors de votre périmètre"
// @Failure      404 {object} ResponseError "Contact introuvable"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /contacts/{id} [get]
func (h *Handler) ContactDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Identifiant invalide")
		return
	}

	detail, err := h.s.ContactDetail(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la récupération du contact")
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

type CreateContactRequest struct {
	Nom                   string            `json:"nom"`
	Prenom                string            `json:"prenom"`
	Email                 string            `json:"email"`
	Telephone             string            `json:"telephone"`
	StatutLead            entity.LeadStatus `json:"statutLead"`
	Source                string            `json:"source"`
	Score                 *int              `json:"score"`
	Notes                 string            `json:"notes"`
	Tags                  []string          `json:"tags"`
	CollaborateurEnCharge uuid.UUID         `json:"collaborateurEnCharge"`
}

func (req CreateContactRequest) toEntity() entity.Contact {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	return entity.Contact{
		Nom:                   req.Nom,
		Prenom:                req.Prenom,
		Email:                 req.Email,
		Telephone:             req.Telephone,
		StatutLead:            req.StatutLead,
		Source:                req.Source,
		Score:                 req.Score,
		Notes:                 req.Notes,
		Tags:                  tags,
		CollaborateurEnCharge: req.CollaborateurEnCharge,
	}
}

// CreateContact godoc
// @Summary      Création d'un contact
// @Description  Crée un contact. Par défaut l'utilisateur en est le collaborateur en charge.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request body CreateContactRequest true "Contact"
// @Success      201 {object} entity.Contact
// @Failure      400 {object} ResponseError "Requête invalide"
// @Failure      403 {object} ResponseError "Collaborateur hors de votre périmètre"
// @Failure      409 {object} ResponseError "Contact déjà existant"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /contacts [post]
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateContactRequest

	err := decodeBody(r, &req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	contact, err := h.s.CreateContact(ctx, req.toEntity())
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la création du contact")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, contact)
}

// UpdateContact godoc
// @Summary      Modification d'un contact
// @Description  Met à jour les champs fournis d'un contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id path string true "ID du contact"
// @Param        request body entity.ContactUpdate true "Champs à modifier"
// @Success      200 {object} entity.Contact
// @Failure      400 {object} ResponseError "Requête invalide"
// @Failure      403 {object} ResponseError "Contact hors de votre périmètre"
// @Failure      404 {object} ResponseError "Contact introuvable"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /contacts/{id} [put]
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Identifiant invalide")
		return
	}

	var upd entity.ContactUpdate

	err = decodeBody(r, &upd)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	contact, err := h.s.UpdateContact(ctx, id, upd)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la modification du contact")
		return
	}

	SendJSON(ctx, w, http.StatusOK, contact)
}

// DeleteContact godoc
// @Summary      Suppression d'un contact
// @Description  Supprime un contact avec ses propositions et contrats. Les tâches liées sont détachées.
// @Tags         contacts
// @Param        id path string true "ID du contact"
// @Success      204 "Contact supprimé"
// @Failure      400 {object} ResponseError "ID invalide"
// @Failure      403 {object} ResponseError "Contact hors de votre périmètre"
// @Failure      404 {object} ResponseError "Contact introuvable"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /contacts/{id} [delete]
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Identifiant invalide")
		return
	}

	err = h.s.DeleteContact(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la suppression du contact")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ImportContacts godoc
// @Summary      Import de contacts
// @Description  Importe un fichier CSV (séparateur virgule ou point-virgule). Les colonnes nom et email sont obligatoires.
// @Tags         contacts
// @Accept       multipart/form-data
// @Accept       text/csv
// @Produce      json
// @Param        file formData file false "Fichier CSV"
// @Success      200 {object} entity.ImportReport
// @Failure      400 {object} ResponseError "Fichier invalide"
// @Failure      403 {object} ResponseError "Import non autorisé"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /contacts/import [post]
func (h *Handler) ImportContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	file, err := importFile(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Fichier d'import invalide")
		return
	}
	defer file.Close()

	report, err := h.s.ImportContacts(ctx, file)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			SendErr(ctx, w, http.StatusRequestEntityTooLarge, err, "Fichier trop volumineux")
			return
		}

		sendServiceErr(ctx, w, err, "Erreur lors de l'import des contacts")

		return
	}

	SendJSON(ctx, w, http.StatusOK, report)
}

// importFile returns the uploaded "file" part of a multipart form, or the
// raw body for any other content type.
func importFile(r *http.Request) (io.ReadCloser, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, nil
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: read file: %w", entity.ErrIncorrectRequestBody, err)
	}

	return file, nil
}
