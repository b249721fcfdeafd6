package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
)

type Service interface {
	ListContacts(ctx context.Context, filter entity.ListFilter) ([]entity.Contact, error)
	ContactDetail(ctx context.Context, id uuid.UUID) (entity.ContactDetail, error)
	CreateContact(ctx context.Context, c entity.Contact) (entity.Contact, error)
	UpdateContact(ctx context.Context, id uuid.UUID, upd entity.ContactUpdate) (entity.Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
	ImportContacts(ctx context.Context, r io.Reader) (entity.ImportReport, error)

	ListPropositions(ctx context.Context, filter entity.ListFilter) ([]entity.Proposition, error)
	CreateProposition(ctx context.Context, p entity.Proposition) (entity.Proposition, error)
	UpdateProposition(ctx context.Context, id uuid.UUID, upd entity.PropositionUpdate) (entity.Proposition, error)

	ListContrats(ctx context.Context, filter entity.ListFilter) ([]entity.Contrat, error)
	CreateContrat(ctx context.Context, k entity.Contrat) (entity.Contrat, error)

	ListTaches(ctx context.Context, filter entity.ListFilter) ([]entity.Tache, error)
	CreateTache(ctx context.Context, t entity.Tache) (entity.Tache, error)
	UpdateTache(ctx context.Context, id uuid.UUID, upd entity.TacheUpdate) (entity.Tache, error)
	ChangeTacheStatus(ctx context.Context, id uuid.UUID, st entity.TacheStatus) (entity.Tache, error)

	ListObjectifs(ctx context.Context, filter entity.ListFilter) ([]entity.Objectif, error)
	CreateObjectif(ctx context.Context, o entity.Objectif) (entity.Objectif, error)
	UpdateObjectif(ctx context.Context, id uuid.UUID, upd entity.ObjectifUpdate) (entity.Objectif, error)

	ListCampagnes(ctx context.Context, filter entity.ListFilter) ([]entity.Campagne, error)
	CreateCampagne(ctx context.Context, g entity.Campagne) (entity.Campagne, error)
	UpdateCampagne(ctx context.Context, id uuid.UUID, upd entity.CampagneUpdate) (entity.Campagne, error)

	Dashboard(ctx context.Context) (entity.DashboardStats, error)
}

// @title CRM API
// @version 1.0
// @description API du CRM : contacts, propositions, contrats, tâches, objectifs et campagnes, filtrés selon le rôle de l'utilisateur.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Vérification de l'état du service
// @Description  Indique que le service répond
// @Tags         health
// @Success      200 {string} string "Le service fonctionne !"
// @Failure      500 {object} ResponseError "Le service ne fonctionne pas"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Le service fonctionne !\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Le service ne fonctionne pas !")
	}
}

// Me godoc
// @Summary      Utilisateur courant
// @Description  Retourne le profil CRM de l'utilisateur authentifié. Le rôle est vide si aucun profil n'existe.
// @Tags         users
// @Produce      json
// @Success      200 {object} entity.User
// @Failure      401 {object} ResponseError "Non authentifié"
// @Security     BearerAuth
// @Router       /me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, err, "Authentification requise")
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// Dashboard godoc
// @Summary      Tableau de bord
// @Description  Indicateurs clés calculés sur le périmètre visible par l'utilisateur
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} entity.DashboardStats
// @Failure      401 {object} ResponseError "Non authentifié"
// @Failure      500 {object} ResponseError "Erreur du serveur"
// @Security     BearerAuth
// @Router       /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.s.Dashboard(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors du calcul du tableau de bord")
		return
	}

	SendJSON(ctx, w, http.StatusOK, stats)
}
