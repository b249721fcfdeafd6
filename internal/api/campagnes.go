package api

import (
	"net/http"

	"github.com/samandr77/microservices/crm/internal/entity"
)

type CampagnesResponse struct {
	Campagnes []entity.Campagne `json:"campagnes"`
}

// ListCampagnes godoc
// @Summary      Liste des campagnes
// @Description  Retourne les campagnes créées par le périmètre de l'utilisateur
// @Tags         campagnes
// @Produce      json
// @Param        search query string false "Recherche sur le nom ou la description"
// @Param        statut query string false "Statut" Enums(brouillon, active, pausee, terminee)
// @Param        type query string false "Type de campagne"
// @Param        page query int false "Numéro de page"
// @Param        limit query int false "Taille de page (100 au plus)"
// @Success      200 {object} CampagnesResponse
// @Failure      400 {object} ResponseError "Paramètres invalides"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /campagnes [get]
func (h *Handler) ListCampagnes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Paramètres de requête invalides")
		return
	}

	campagnes, err := h.s.ListCampagnes(ctx, filter)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la récupération des campagnes")
		return
	}

	SendJSON(ctx, w, http.StatusOK, CampagnesResponse{Campagnes: campagnes})
}

type CreateCampagneRequest struct {
	Nom         string                `json:"nom"`
	Description string                `json:"description"`
	Type        string                `json:"type"`
	Statut      entity.CampagneStatus `json:"statut"`
	DateDebut   *Date                 `json:"dateDebut" swaggertype:"string" format:"date"`
	DateFin     *Date                 `json:"dateFin" swaggertype:"string" format:"date"`
	Declencheur entity.Declencheur    `json:"declencheur"`
	Etapes      []entity.Etape        `json:"etapes"`
}

// CreateCampagne godoc
// @Summary      Création d'une campagne
// @Description  Crée une campagne. Les étapes sont numérotées dans l'ordre fourni.
// @Tags         campagnes
// @Accept       json
// @Produce      json
// @Param        request body CreateCampagneRequest true "Campagne"
// @Success      201 {object} entity.Campagne
// @Failure      400 {object} ResponseError "Requête invalide"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /campagnes [post]
func (h *Handler) CreateCampagne(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCampagneRequest

	err := decodeBody(r, &req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	g, err := h.s.CreateCampagne(ctx, entity.Campagne{
		Nom:         req.Nom,
		Description: req.Description,
		Type:        req.Type,
		Statut:      req.Statut,
		DateDebut:   req.DateDebut.ptr(),
		DateFin:     req.DateFin.ptr(),
		Declencheur: req.Declencheur,
		Etapes:      req.Etapes,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la création de la campagne")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, g)
}

type UpdateCampagneRequest struct {
	Nom         *string                `json:"nom"`
	Description *string                `json:"description"`
	Type        *string                `json:"type"`
	Statut      *entity.CampagneStatus `json:"statut"`
	DateDebut   *Date                  `json:"dateDebut" swaggertype:"string" format:"date"`
	DateFin     *Date                  `json:"dateFin" swaggertype:"string" format:"date"`
	Declencheur *entity.Declencheur    `json:"declencheur"`
	Etapes      []entity.Etape         `json:"etapes"`
}

// UpdateCampagne godoc
// @Summary      Modification d'une campagne
// @Description  Met à jour les champs fournis d'une campagne. Des étapes fournies remplacent la séquence existante.
// @Tags         campagnes
// @Accept       json
// @Produce      json
// @Param        id path string true "ID de la campagne"
// @Param        request body UpdateCampagneRequest true "Champs à modifier"
// @Success      200 {object} entity.Campagne
// @Failure      400 {object} ResponseError "Requête invalide"
// @Failure      403 {object} ResponseError "Campagne hors de votre périmètre"
// @Failure      404 {object} ResponseError "Campagne introuvable"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /campagnes/{id} [put]
func (h *Handler) UpdateCampagne(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Identifiant invalide")
		return
	}

	var req UpdateCampagneRequest

	err = decodeBody(r, &req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	g, err := h.s.UpdateCampagne(ctx, id, entity.CampagneUpdate{
		Nom:         req.Nom,
		Description: req.Description,
		Type:        req.Type,
		Statut:      req.Statut,
		DateDebut:   req.DateDebut.ptr(),
		DateFin:     req.DateFin.ptr(),
		Declencheur: req.Declencheur,
		Etapes:      req.Etapes,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la modification de la campagne")
		return
	}

	SendJSON(ctx, w, http.StatusOK, g)
}
