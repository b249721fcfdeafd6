package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/crm/internal/api"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/mocks"
	"github.com/samandr77/microservices/crm/internal/scope"
	"github.com/samandr77/microservices/crm/internal/service"
)

const token = "dev"

var now = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

type ClientAPI struct {
	repo     *mocks.MockRepository
	identity *mocks.MockIdentity
	producer *mocks.MockProducer
	server   *httptest.Server
}

func NewClientAPI(t *testing.T) *ClientAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockRepository(ctrl)
	identityMock := mocks.NewMockIdentity(ctrl)
	producerMock := mocks.NewMockProducer(ctrl)

	s := service.New(repoMock, identityMock, producerMock, service.WithClock(func() time.Time { return now }))

	server := httptest.NewServer(api.NewRouter(api.NewHandler(s), api.NewMiddleware(s)))
	t.Cleanup(server.Close)

	return &ClientAPI{
		repo:     repoMock,
		identity: identityMock,
		producer: producerMock,
		server:   server,
	}
}

// login makes the token resolve to user through the identity service and
// the profile lookup.
func (c *ClientAPI) login(user entity.User) {
	c.identity.EXPECT().Validate(gomock.Any(), token).
		Return(entity.Session{UserID: user.ID, Email: user.Email}, nil)
	c.repo.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
}

func (c *ClientAPI) do(t *testing.T, method, path string, body io.Reader, contentType string) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, c.server.URL+path, body)
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer "+token)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func (c *ClientAPI) doJSON(t *testing.T, method, path string, payload any) *http.Response {
	t.Helper()

	b, err := json.Marshal(payload)
	require.NoError(t, err)

	return c.do(t, method, path, bytes.NewReader(b), "application/json")
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))

	return v
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func conseiller() entity.User {
	return entity.User{ID: newID(), Email: "conseiller@example.com", Role: entity.RoleConseiller}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	resp, err := c.server.Client().Get(c.server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Le service fonctionne !\n", string(b))
}

func TestHandler_NoToken(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	resp, err := c.server.Client().Get(c.server.URL + "/api/contacts")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Jeton absent de l'en-tête Authorization", decode[api.ResponseError](t, resp).Message)
}

func TestHandler_InvalidToken(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	c.identity.EXPECT().Validate(gomock.Any(), token).Return(entity.Session{}, entity.ErrUnauthorized)

	resp := c.do(t, http.MethodGet, "/api/contacts", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Jeton invalide ou expiré", decode[api.ResponseError](t, resp).Message)
}

func TestHandler_NoProfile(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	session := entity.Session{UserID: newID(), Email: "inconnu@example.com"}

	c.identity.EXPECT().Validate(gomock.Any(), token).Return(session, nil).Times(2)
	c.repo.EXPECT().UserByEmail(gomock.Any(), session.Email).Return(entity.User{}, entity.ErrNotFound).Times(2)

	resp := c.do(t, http.MethodGet, "/api/me", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	me := decode[entity.User](t, resp)
	require.Equal(t, session.UserID, me.ID)
	require.Empty(t, me.Role)

	// No role means no rows, and the store is never asked.
	resp = c.do(t, http.MethodGet, "/api/contacts", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, decode[api.ContactsResponse](t, resp).Contacts)
}

func TestHandler_ListContacts(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	user := conseiller()
	c.login(user)

	want := []entity.Contact{{ID: newID(), Nom: "Dupont", Email: "dupont@example.com", CollaborateurEnCharge: user.ID, Tags: []string{}}}

	c.repo.EXPECT().ListContacts(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Contact, error) {
			sql, args, err := pred.ToSql()
			require.NoError(t, err)
			require.Equal(t, "(collaborateur_en_charge IN (?))", sql)
			require.Equal(t, []any{user.ID}, args)

			require.Equal(t, "dup", filter.Search)
			require.Equal(t, string(entity.LeadStatusQualifie), filter.Statut)
			require.Equal(t, uint64(2), filter.Page)
			require.Equal(t, uint64(10), filter.Limit)

			return want, nil
		})

	resp := c.do(t, http.MethodGet, "/api/contacts?search=dup&statut=qualifie&page=2&limit=10", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[api.ContactsResponse](t, resp)
	require.Len(t, got.Contacts, 1)
	require.Equal(t, want[0].ID, got.Contacts[0].ID)
}

func TestHandler_ListContacts_InvalidStatut(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.login(conseiller())

	resp := c.do(t, http.MethodGet, "/api/contacts?statut=archive", nil, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Données invalides", decode[api.ResponseError](t, resp).Message)
}

func TestHandler_ListPropositions_InvalidContactID(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.login(conseiller())

	resp := c.do(t, http.MethodGet, "/api/propositions?contactId=abc", nil, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_CreateContact(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	user := conseiller()
	c.login(user)

	c.repo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, contact entity.Contact) error {
			require.Equal(t, user.ID, contact.CollaborateurEnCharge)
			require.Equal(t, entity.LeadStatusNouveau, contact.StatutLead)
			require.Equal(t, []string{}, contact.Tags)

			return nil
		})
	c.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	resp := c.doJSON(t, http.MethodPost, "/api/contacts", map[string]any{
		"nom":    "Martin",
		"prenom": "Léa",
		"email":  "lea.martin@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	got := decode[entity.Contact](t, resp)
	require.NotZero(t, got.ID)
	require.Equal(t, "Martin", got.Nom)
	require.Equal(t, user.ID, got.CollaborateurEnCharge)
}

func TestHandler_CreateContact_BadBody(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.login(conseiller())

	resp := c.do(t, http.MethodPost, "/api/contacts", strings.NewReader("{"), "application/json")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Corps de requête invalide", decode[api.ResponseError](t, resp).Message)
}

func TestHandler_UpdateContact_Errors(t *testing.T) {
	t.Parallel()

	id := newID()

	tests := []struct {
		name     string
		contact  entity.Contact
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "other owner",
			contact:  entity.Contact{ID: id, Nom: "Durand", Email: "durand@example.com", CollaborateurEnCharge: newID()},
			wantCode: http.StatusForbidden,
			wantMsg:  "Accès refusé",
		},
		{
			name:     "missing",
			err:      entity.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  "Ressource introuvable",
		},
		{
			name:     "store down",
			err:      errors.New("connection refused"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Erreur lors de la modification du contact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewClientAPI(t)
			c.login(conseiller())

			c.repo.EXPECT().ContactByID(gomock.Any(), id).Return(tt.contact, tt.err)

			resp := c.doJSON(t, http.MethodPut, "/api/contacts/"+id.String(), map[string]any{"nom": "Durand-Leroy"})
			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Equal(t, tt.wantMsg, decode[api.ResponseError](t, resp).Message)
		})
	}
}

func TestHandler_ContactDetail_InvalidID(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.login(conseiller())

	resp := c.do(t, http.MethodGet, "/api/contacts/not-a-uuid", nil, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Identifiant invalide", decode[api.ResponseError](t, resp).Message)
}

func TestHandler_DeleteContact(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	user := conseiller()
	c.login(user)

	contact := entity.Contact{ID: newID(), Nom: "Petit", Email: "petit@example.com", CollaborateurEnCharge: user.ID}

	c.repo.EXPECT().ContactByID(gomock.Any(), contact.ID).Return(contact, nil)
	c.repo.EXPECT().DeleteContact(gomock.Any(), contact.ID).Return(nil)
	c.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event entity.ChangeEvent) error {
			require.Equal(t, entity.ActionDeleted, event.Action)
			require.Equal(t, contact.ID.String(), event.ID)

			return nil
		})

	resp := c.do(t, http.MethodDelete, "/api/contacts/"+contact.ID.String(), nil, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_ImportContacts(t *testing.T) {
	t.Parallel()

	const file = "Nom;Prénom;E-mail\nDupont;Jean;jean.dupont@example.com\nMartin;Léa;pas-un-email\nBernard;Paul;paul.bernard@example.com\n"

	multipartBody := func(t *testing.T) (io.Reader, string) {
		t.Helper()

		var buf bytes.Buffer

		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile("file", "contacts.csv")
		require.NoError(t, err)

		_, err = part.Write([]byte(file))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		return &buf, w.FormDataContentType()
	}

	tests := []struct {
		name string
		body func(t *testing.T) (io.Reader, string)
	}{
		{
			name: "multipart",
			body: multipartBody,
		},
		{
			name: "raw csv",
			body: func(*testing.T) (io.Reader, string) {
				return strings.NewReader(file), "text/csv"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewClientAPI(t)
			user := conseiller()
			c.login(user)

			c.repo.EXPECT().CreateContacts(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, contacts []entity.Contact) error {
					require.Len(t, contacts, 2)
					require.Equal(t, "Dupont", contacts[0].Nom)
					require.Equal(t, "Bernard", contacts[1].Nom)

					for _, contact := range contacts {
						require.Equal(t, user.ID, contact.CollaborateurEnCharge)
					}

					return nil
				})
			c.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil).Times(2)

			body, contentType := tt.body(t)

			resp := c.do(t, http.MethodPost, "/api/contacts/import", body, contentType)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			report := decode[entity.ImportReport](t, resp)
			require.Equal(t, 2, report.Imported)
			require.Len(t, report.Rejected, 1)
			require.Equal(t, 3, report.Rejected[0].Line)
			require.Contains(t, report.Rejected[0].Error, "invalid email")
		})
	}
}

func TestHandler_ImportContacts_MissingColumn(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.login(conseiller())

	resp := c.do(t, http.MethodPost, "/api/contacts/import", strings.NewReader("Prénom,Téléphone\nJean,0601020304\n"), "text/csv")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, decode[api.ResponseError](t, resp).Error, `missing column "nom"`)
}

func TestHandler_CreateProposition(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	user := conseiller()
	c.login(user)

	contact := entity.Contact{ID: newID(), Nom: "Roux", Email: "roux@example.com", CollaborateurEnCharge: user.ID}

	c.repo.EXPECT().ContactByID(gomock.Any(), contact.ID).Return(contact, nil)
	c.repo.EXPECT().CreateProposition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p entity.Proposition) error {
			require.Equal(t, user.ID, p.ConseillerID)
			require.Equal(t, entity.PropositionBrouillon, p.Statut)
			require.True(t, p.MontantMensuel.Decimal.Equal(decimal.RequireFromString("89.90")))
			require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *p.DateProposition)
			require.Nil(t, p.DateEcheance)

			return nil
		})
	c.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	resp := c.doJSON(t, http.MethodPost, "/api/propositions", map[string]any{
		"contactId":       contact.ID,
		"produit":         "Mutuelle santé",
		"compagnie":       "Alliance",
		"montantMensuel":  "89.90",
		"dateProposition": "2026-03-01",
		"dateEcheance":    "",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, contact.ID, decode[entity.Proposition](t, resp).ContactID)
}

func TestHandler_CreateProposition_UnknownContact(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.login(conseiller())

	contactID := newID()

	c.repo.EXPECT().ContactByID(gomock.Any(), contactID).Return(entity.Contact{}, entity.ErrNotFound)

	resp := c.doJSON(t, http.MethodPost, "/api/propositions", map[string]any{"contactId": contactID})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_ChangeTacheStatus(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	user := conseiller()
	c.login(user)

	tache := entity.Tache{
		ID:       newID(),
		Titre:    "Rappeler le client",
		Statut:   entity.TacheEnCours,
		Priorite: entity.PriorityNormale,
		AssigneA: user.ID,
		CreePar:  newID(),
	}

	c.repo.EXPECT().TacheByID(gomock.Any(), tache.ID).Return(tache, nil)
	c.repo.EXPECT().UpdateTache(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got entity.Tache) error {
			require.Equal(t, entity.TacheTermine, got.Statut)
			require.NotNil(t, got.DateCompletion)
			require.Equal(t, now, *got.DateCompletion)

			return nil
		})
	c.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	resp := c.doJSON(t, http.MethodPut, "/api/taches/"+tache.ID.String()+"/statut", map[string]any{"statut": "termine"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[entity.Tache](t, resp)
	require.Equal(t, entity.TacheTermine, got.Statut)
	require.NotNil(t, got.DateCompletion)
}

func TestHandler_ChangeTacheStatus_Invalid(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.login(conseiller())

	resp := c.doJSON(t, http.MethodPut, "/api/taches/"+newID().String()+"/statut", map[string]any{"statut": "annule"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_ListContrats_Gestionnaire(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	teamID := newID()
	user := entity.User{
		ID:       newID(),
		Email:    "gestionnaire@example.com",
		Role:     entity.RoleGestionnaire,
		EquipeID: uuid.NullUUID{UUID: teamID, Valid: true},
	}
	c.login(user)

	members := []uuid.UUID{user.ID, newID()}
	contactIDs := []uuid.UUID{newID()}

	gomock.InOrder(
		c.repo.EXPECT().TeamMemberIDs(gomock.Any(), teamID).Return(members, nil),
		c.repo.EXPECT().ContactIDsOwnedBy(gomock.Any(), members).Return(contactIDs, nil),
		c.repo.EXPECT().ListContrats(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pred scope.Predicate, _ entity.ListFilter) ([]entity.Contrat, error) {
				sql, args, err := pred.ToSql()
				require.NoError(t, err)
				require.Equal(t, "(contact_client_id IN (?))", sql)
				require.Equal(t, []any{contactIDs[0]}, args)

				return []entity.Contrat{}, nil
			}),
	)

	resp := c.do(t, http.MethodGet, "/api/contrats", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, decode[api.ContratsResponse](t, resp).Contrats)
}

func TestMiddleware_Auth_IdentityDown(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	authMock := mocks.NewMockAuthService(ctrl)

	authMock.EXPECT().User(gomock.Any(), token).Return(entity.User{}, errors.New("dial tcp: connection refused"))

	mw := api.NewMiddleware(authMock)
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	mw.Auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got api.ResponseError

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, "Service d'identité indisponible", got.Message)
}

func TestMiddleware_Auth_SetsUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	authMock := mocks.NewMockAuthService(ctrl)

	user := conseiller()
	authMock.EXPECT().User(gomock.Any(), token).Return(user, nil)

	mw := api.NewMiddleware(authMock)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, err := entity.UserFromContext(r.Context())
		require.NoError(t, err)
		require.Equal(t, user, got)

		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	mw.Auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)
}

func TestMiddleware_Log_RequestID(t *testing.T) {
	t.Parallel()

	mw := api.NewMiddleware(nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	req.Header.Set("X-Request-Id", "req-42")

	rec := httptest.NewRecorder()
	mw.Log(next).ServeHTTP(rec, req)

	require.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	mw.Log(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))

	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
