package api

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/shopspring/decimal"
)

type ObjectifsResponse struct {
	Objectifs []entity.Objectif `json:"objectifs"`
}

// ListObjectifs godoc
// @Summary      Liste des objectifs
// @Description  Retourne les objectifs visibles avec leur progression
// @Tags         objectifs
// @Produce      json
// @Param        search query string false "Recherche sur le nom"
// @Param        type query string false "Type d'objectif" Enums(ca, contacts, contrats, propositions)
// @Param        page query int false "Numéro de page"
// @Param        limit query int false "Taille de page (100 au plus)"
// @Success      200 {object} ObjectifsResponse
// @Failure      400 {object} ResponseError "Paramètres invalides"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /objectifs [get]
func (h *Handler) ListObjectifs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Paramètres de requête invalides")
		return
	}

	objectifs, err := h.s.ListObjectifs(ctx, filter)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la récupération des objectifs")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ObjectifsResponse{Objectifs: objectifs})
}

type CreateObjectifRequest struct {
	Nom          string              `json:"nom"`
	Type         entity.ObjectifType `json:"type"`
	ValeurCible  decimal.Decimal     `json:"valeurCible" swaggertype:"string"`
	PeriodeDebut Date                `json:"periodeDebut" swaggertype:"string" format:"date"`
	PeriodeFin   Date                `json:"periodeFin" swaggertype:"string" format:"date"`
	AssigneA     *uuid.UUID          `json:"assigneA"`
	EquipeID     *uuid.UUID          `json:"equipeId"`
}

func (req CreateObjectifRequest) toEntity() entity.Objectif {
	o := entity.Objectif{
		Nom:          req.Nom,
		Type:         req.Type,
		ValeurCible:  req.ValeurCible,
		PeriodeDebut: req.PeriodeDebut.Time,
		PeriodeFin:   req.PeriodeFin.Time,
	}

	if req.AssigneA != nil && !req.AssigneA.IsNil() {
		o.AssigneA = uuid.NullUUID{UUID: *req.AssigneA, Valid: true}
	}

	if req.EquipeID != nil && !req.EquipeID.IsNil() {
		o.EquipeID = uuid.NullUUID{UUID: *req.EquipeID, Valid: true}
	}

	return o
}

// CreateObjectif godoc
// @Summary      Création d'un objectif
// @Description  Crée un objectif individuel ou d'équipe. Sans cible, il est assigné à son créateur.
// @Tags         objectifs
// @Accept       json
// @Produce      json
// @Param        request body CreateObjectifRequest true "Objectif"
// @Success      201 {object} entity.Objectif
// @Failure      400 {object} ResponseError "Requête invalide"
// @Failure      403 {object} ResponseError "Objectif hors de votre périmètre"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /objectifs [post]
func (h *Handler) CreateObjectif(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateObjectifRequest

	err := decodeBody(r, &req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	o, err := h.s.CreateObjectif(ctx, req.toEntity())
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la création de l'objectif")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, o)
}

type UpdateObjectifRequest struct {
	Nom          *string              `json:"nom"`
	Type         *entity.ObjectifType `json:"type"`
	ValeurCible  *decimal.Decimal     `json:"valeurCible" swaggertype:"string"`
	PeriodeDebut *Date                `json:"periodeDebut" swaggertype:"string" format:"date"`
	PeriodeFin   *Date                `json:"periodeFin" swaggertype:"string" format:"date"`
	AssigneA     *uuid.UUID           `json:"assigneA"`
	EquipeID     *uuid.UUID           `json:"equipeId"`
}

// UpdateObjectif godoc
// @Summary      Modification d'un objectif
// @Description  Met à jour les champs fournis d'un objectif. La valeur actuelle est recalculée périodiquement.
// @Tags         objectifs
// @Accept       json
// @Produce      json
// @Param        id path string true "ID de l'objectif"
// @Param        request body UpdateObjectifRequest true "Champs à modifier"
// @Success      200 {object} entity.Objectif
// @Failure      400 {object} ResponseError "Requête invalide"
// @Failure      403 {object} ResponseError "Objectif hors de votre périmètre"
// @Failure      404 {object} ResponseError "Objectif introuvable"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /objectifs/{id} [put]
func (h *Handler) UpdateObjectif(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Identifiant invalide")
		return
	}

	var req UpdateObjectifRequest

	err = decodeBody(r, &req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")
		return
	}

	o, err := h.s.UpdateObjectif(ctx, id, entity.ObjectifUpdate{
		Nom:          req.Nom,
		Type:         req.Type,
		ValeurCible:  req.ValeurCible,
		PeriodeDebut: req.PeriodeDebut.ptr(),
		PeriodeFin:   req.PeriodeFin.ptr(),
		AssigneA:     req.AssigneA,
		EquipeID:     req.EquipeID,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la modification de l'objectif")
		return
	}

	SendJSON(ctx, w, http.StatusOK, o)
}
