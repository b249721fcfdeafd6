package api

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
)

type TachesResponse struct {
	Taches []entity.Tache `json:"taches"`
}

// ListTaches godoc
// @Summary      Liste des tâches
// @Description  Retourne les tâches assignées à ou créées par le périmètre de l'utilisateur
// @Tags         taches
// @Produce      json
// @Param        search query string false "Recherche sur le titre ou la description"
// @Param        statut query string false "Statut" Enums(a_faire, en_cours, termine)
// @Param        priorite query string false "Priorité" Enums(haute, normale, basse)
// @Param        contactId query string false "ID du contact"
// @Param        page query int false "Numéro de page"
// @Param        limit query int false "Taille de page (100 au plus)"
// @Success      200 {object} TachesResponse
// @Failure      400 {object} ResponseError "Paramètres invalides"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /taches [get]
func (h *Handler) ListTaches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Paramètres de requête invalides")
		return
	}

	taches, err := h.s.ListTaches(ctx, filter)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la récupération des tâches")
		return
	}

	SendJSON(ctx, w, http.StatusOK, TachesResponse{Taches: taches})
}

type CreateTacheRequest struct {
	Titre        string               `json:"titre"`
	Description  string               `json:"description"`
	Statut       entity.TacheStatus   `json:"statut"`
	Priorite     entity.TachePriority `json:"priorite"`
	DateEcheance *Date                `json:"dateEcheance" swaggertype:"string" format:"date"`
	ContactID    *uuid.UUID           `json:"contactId"`
	AssigneA     uuid.UUID            `json:"assigneA"`
}

func (req CreateTacheRequest) toEntity() entity.Tache {
	t := entity.Tache{
		Titre:        req.Titre,
		Description:  req.Description,
		Statut:       req.Statut,
		Priorite:     req.Priorite,
		DateEcheance: req.DateEcheance.ptr(),
		AssigneA:     req.AssigneA,
	}

	if req.ContactID != nil && !req.ContactID.IsNil() {
		t.ContactID = uuid.NullUUID{UUID: *req.ContactID, Valid: true}
	}

	return t
}

// CreateTache godoc
// @Summary      Création d'une tâche
// @Description  Crée une tâche. Par défaut elle est assignée à son créateur.
// @Tags         taches
// @Accept       json
// @Produce      json
// @Param        request body CreateTacheRequest true "Tâche"
// @Success      201 {object} entity.Tache
// @Failure      400 {object} ResponseError "Requête invalide ou contact inexistant"
// @Failure      403 {object} ResponseError "Tâche hors de votre périmètre"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /taches [post]
func (h *Handler) CreateTache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTacheRequest

	err := decodeBody(r, &req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	t, err := h.s.CreateTache(ctx, req.toEntity())
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la création de la tâche")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, t)
}

type UpdateTacheRequest struct {
	Titre        *string               `json:"titre"`
	Description  *string               `json:"description"`
	Statut       *entity.TacheStatus   `json:"statut"`
	Priorite     *entity.TachePriority `json:"priorite"`
	DateEcheance *Date                 `json:"dateEcheance" swaggertype:"string" format:"date"`
	// The nil uuid detaches the task from its contact.
	ContactID *uuid.UUID `json:"contactId"`
	AssigneA  *uuid.UUID `json:"assigneA"`
}

// UpdateTache godoc
// @Summary      Modification d'une tâche
// @Description  Met à jour les champs fournis d'une tâche
// @Tags         taches
// @Accept       json
// @Produce      json
// @Param        id path string true "ID de la tâche"
// @Param        request body UpdateTacheRequest true "Champs à modifier"
// @Success      200 {object} entity.Tache
// @Failure      400 {object} ResponseError "Requête invalide"
// @Failure      403 {object} ResponseError "Tâche hors de votre périmètre"
// @Failure      404 {object} ResponseError "Tâche introuvable"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /taches/{id} [put]
func (h *Handler) UpdateTache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Identifiant invalide")
		return
	}

	var req UpdateTacheRequest

	err = decodeBody(r, &req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	t, err := h.s.UpdateTache(ctx, id, entity.TacheUpdate{
		Titre:        req.Titre,
		Description:  req.Description,
		Statut:       req.Statut,
		Priorite:     req.Priorite,
		DateEcheance: req.DateEcheance.ptr(),
		ContactID:    req.ContactID,
		AssigneA:     req.AssigneA,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la modification de la tâche")
		return
	}

	SendJSON(ctx, w, http.StatusOK, t)
}

type ChangeTacheStatusRequest struct {
	Statut entity.TacheStatus `json:"statut"`
}

// ChangeTacheStatus godoc
// @Summary      Changement de statut d'une tâche
// @Description  Passer une tâche à "termine" renseigne sa date de complétion, tout autre statut l'efface
// @Tags         taches
// @Accept       json
// @Produce      json
// @Param        id path string true "ID de la tâche"
// @Param        request body ChangeTacheStatusRequest true "Nouveau statut"
// @Success      200 {object} entity.Tache
// @Failure      400 {object} ResponseError "Statut invalide"
// @Failure      403 {object} ResponseError "Tâche hors de votre périmètre"
// @Failure      404 {object} ResponseError "Tâche introuvable"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /taches/{id}/statut [put]
func (h *Handler) ChangeTacheStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Identifiant invalide")
		return
	}

	var req ChangeTacheStatusRequest

	err = decodeBody(r, &req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	t, err := h.s.ChangeTacheStatus(ctx, id, req.Statut)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors du changement de statut")
		return
	}

	SendJSON(ctx, w, http.StatusOK, t)
}
