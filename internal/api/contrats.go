package api

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/shopspring/decimal"
)

type ContratsResponse struct {
	Contrats []entity.Contrat `json:"contrats"`
}

// ListContrats godoc
// @Summary      Liste des contrats
// @Description  Retourne les contrats des contacts visibles par l'utilisateur
// @Tags         contrats
// @Produce      json
// @Param        search query string false "Recherche sur le numéro, la compagnie ou le contact"
// @Param        contactId query string false "ID du contact"
// @Param        page query int false "Numéro de page"
// @Param        limit query int false "Taille de page (100 au plus)"
// @Success      200 {object} ContratsResponse
// @Failure      400 {object} ResponseError "Paramètres invalides"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /contrats [get]
func (h *Handler) ListContrats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Paramètres de requête invalides")
		return
	}

	contrats, err := h.s.ListContrats(ctx, filter)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la récupération des contrats")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ContratsResponse{Contrats: contrats})
}

type CreateContratRequest struct {
	NumeroContrat       string          `json:"numeroContrat"`
	Compagnie           string          `json:"compagnie"`
	CotisationMensuelle decimal.Decimal `json:"cotisationMensuelle" swaggertype:"string"`
	DateSignature       Date            `json:"dateSignature" swaggertype:"string" format:"date"`
	ContactClientID     uuid.UUID       `json:"contactClientId"`
}

// CreateContrat godoc
// @Summary      Création d'un contrat
// @Description  Enregistre un contrat signé pour un contact visible
// @Tags         contrats
// @Accept       json
// @Produce      json
// @Param        request body CreateContratRequest true "Contrat"
// @Success      201 {object} entity.Contrat
// @Failure      400 {object} ResponseError "Requête invalide ou contact inexistant"
// @Failure      403 {object} ResponseError "Contact hors de votre périmètre"
// @Failure      409 {object} ResponseError "Numéro de contrat déjà utilisé"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /contrats [post]
func (h *Handler) CreateContrat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateContratRequest

	err := decodeBody(r, &req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	k, err := h.s.CreateContrat(ctx, entity.Contrat{
		NumeroContrat:       req.NumeroContrat,
		Compagnie:           req.Compagnie,
		CotisationMensuelle: req.CotisationMensuelle,
		DateSignature:       req.DateSignature.Time,
		ContactClientID:     req.ContactClientID,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la création du contrat")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, k)
}
