package api

import (
	"encoding/json"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/shopspring/decimal"
)

type PropositionsResponse struct {
	Propositions []entity.Proposition `json:"propositions"`
}

// ListPropositions godoc
// @Summary      Liste des propositions
// @Description  Retourne les propositions visibles par l'utilisateur
// @Tags         propositions
// @Produce      json
// @Param        search query string false "Recherche sur le produit, la compagnie ou le contact"
// @Param        statut query string false "Statut" Enums(brouillon, envoyee, acceptee, refusee)
// @Param        contactId query string false "ID du contact"
// @Param        page query int false "Numéro de page"
// @Param        limit query int false "Taille de page (100 au plus)"
// @Success      200 {object} PropositionsResponse
// @Failure      400 {object} ResponseError "Paramètres invalides"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /propositions [get]
func (h *Handler) ListPropositions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Paramètres de requête invalides")
		return
	}

	propositions, err := h.s.ListPropositions(ctx, filter)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la récupération des propositions")
		return
	}

	SendJSON(ctx, w, http.StatusOK, PropositionsResponse{Propositions: propositions})
}

type CreatePropositionRequest struct {
	ContactID       uuid.UUID                `json:"contactId"`
	ConseillerID    uuid.UUID                `json:"conseillerId"`
	Produit         string                   `json:"produit"`
	Compagnie       string                   `json:"compagnie"`
	MontantMensuel  *decimal.Decimal         `json:"montantMensuel" swaggertype:"string"`
	Statut          entity.PropositionStatus `json:"statut"`
	DateProposition *Date                    `json:"dateProposition" swaggertype:"string" format:"date"`
	DateEcheance    *Date                    `json:"dateEcheance" swaggertype:"string" format:"date"`
	Details         json.RawMessage          `json:"details" swaggertype:"object"`
}

func (req CreatePropositionRequest) toEntity() entity.Proposition {
	p := entity.Proposition{
		ContactID:       req.ContactID,
		ConseillerID:    req.ConseillerID,
		Produit:         req.Produit,
		Compagnie:       req.Compagnie,
		Statut:          req.Statut,
		DateProposition: req.DateProposition.ptr(),
		DateEcheance:    req.DateEcheance.ptr(),
		Details:         req.Details,
	}

	if req.MontantMensuel != nil {
		p.MontantMensuel = decimal.NewNullDecimal(*req.MontantMensuel)
	}

	return p
}

// CreateProposition godoc
// @Summary      Création d'une proposition
// @Description  Crée une proposition commerciale pour un contact visible
// @Tags         propositions
// @Accept       json
// @Produce      json
// @Param        request body CreatePropositionRequest true "Proposition"
// @Success      201 {object} entity.Proposition
// @Failure      400 {object} ResponseError "Requête invalide ou contact inexistant"
// @Failure      403 {object} ResponseError "Contact hors de votre périmètre"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /propositions [post]
func (h *Handler) CreateProposition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePropositionRequest

	err := decodeBody(r, &req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	p, err := h.s.CreateProposition(ctx, req.toEntity())
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la création de la proposition")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, p)
}

type UpdatePropositionRequest struct {
	Produit         *string                   `json:"produit"`
	Compagnie       *string                   `json:"compagnie"`
	MontantMensuel  *decimal.Decimal          `json:"montantMensuel" swaggertype:"string"`
	Statut          *entity.PropositionStatus `json:"statut"`
	DateProposition *Date                     `json:"dateProposition" swaggertype:"string" format:"date"`
	DateEcheance    *Date                     `json:"dateEcheance" swaggertype:"string" format:"date"`
	Details         json.RawMessage           `json:"details" swaggertype:"object"`
}

func (req UpdatePropositionRequest) toEntity() entity.PropositionUpdate {
	return entity.PropositionUpdate{
		Produit:         req.Produit,
		Compagnie:       req.Compagnie,
		MontantMensuel:  req.MontantMensuel,
		Statut:          req.Statut,
		DateProposition: req.DateProposition.ptr(),
		DateEcheance:    req.DateEcheance.ptr(),
		Details:         req.Details,
	}
}

// UpdateProposition godoc
// @Summary      Modification d'une proposition
// @Description  Met à jour les champs fournis d'une proposition
// @Tags         propositions
// @Accept       json
// @Produce      json
// @Param        id path string true "ID de la proposition"
// @Param        request body UpdatePropositionRequest true "Champs à modifier"
// @Success      200 {object} entity.Proposition
// @Failure      400 {object} ResponseError "Requête invalide"
// @Failure      403 {object} ResponseError "Proposition hors de votre périmètre"
// @Failure      404 {object} ResponseError "Proposition introuvable"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /propositions/{id} [put]
func (h *Handler) UpdateProposition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Identifiant invalide")
		return
	}

	var req UpdatePropositionRequest

	err = decodeBody(r, &req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	p, err := h.s.UpdateProposition(ctx, id, req.toEntity())
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la modification de la proposition")
		return
	}

	SendJSON(ctx, w, http.StatusOK, p)
}
