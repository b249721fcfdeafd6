package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/mocks"
	"github.com/samandr77/microservices/crm/internal/scope"
	"github.com/samandr77/microservices/crm/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

type TestService struct {
	repo     *mocks.MockRepository
	identity *mocks.MockIdentity
	producer *mocks.MockProducer
	s        *service.Service
}

func NewTestService(t *testing.T, opts ...service.Option) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockRepository(ctrl)
	mockIdentity := mocks.NewMockIdentity(ctrl)
	mockProducer := mocks.NewMockProducer(ctrl)

	opts = append([]service.Option{service.WithClock(func() time.Time { return now })}, opts...)

	return &TestService{
		repo:     mockRepo,
		identity: mockIdentity,
		producer: mockProducer,
		s:        service.New(mockRepo, mockIdentity, mockProducer, opts...),
	}
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func conseiller(id uuid.UUID) entity.User {
	return entity.User{ID: id, Email: "conseiller@example.com", Role: entity.RoleConseiller}
}

func gestionnaire(id, teamID uuid.UUID) entity.User {
	return entity.User{
		ID:       id,
		Email:    "gestionnaire@example.com",
		Role:     entity.RoleGestionnaire,
		EquipeID: uuid.NullUUID{UUID: teamID, Valid: true},
	}
}

func as(user entity.User) context.Context {
	return entity.SetUserToContext(context.Background(), user)
}

func sqlOf(t *testing.T, pred scope.Predicate) string {
	t.Helper()

	sql, _, err := pred.ToSql()
	require.NoError(t, err)

	return sql
}

func TestService_ListContacts(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()
	want := []entity.Contact{{ID: newID(), Nom: "Dupont", CollaborateurEnCharge: me}}

	ts.repo.EXPECT().ListContacts(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Contact, error) {
			r.Equal("(collaborateur_en_charge IN (?))", sqlOf(t, pred))
			r.Equal("dup", filter.Search)
			r.Equal(string(entity.LeadStatusQualifie), filter.Statut)
			r.Equal(uint64(1), filter.Page)
			r.Equal(uint64(entity.MaxLimit), filter.Limit)

			return want, nil
		})

	got, err := ts.s.ListContacts(as(conseiller(me)), entity.ListFilter{
		Search: "  dup ",
		Statut: "Qualifie",
		Limit:  500,
	})
	r.NoError(err)
	r.Equal(want, got)
}

func TestService_ListContacts_InvalidStatut(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	_, err := ts.s.ListContacts(as(conseiller(newID())), entity.ListFilter{Statut: "archive"})
	r.ErrorIs(err, entity.ErrValidationFailed)
}

func TestService_List_FailsClosed(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	// No repository call is expected: an unresolvable scope never reaches
	// the store.
	noTeam := entity.User{ID: newID(), Role: entity.RoleGestionnaire}
	ctx := as(noTeam)

	contacts, err := ts.s.ListContacts(ctx, entity.ListFilter{})
	r.NoError(err)
	r.NotNil(contacts)
	r.Empty(contacts)

	contrats, err := ts.s.ListContrats(ctx, entity.ListFilter{})
	r.NoError(err)
	r.Empty(contrats)

	taches, err := ts.s.ListTaches(ctx, entity.ListFilter{})
	r.NoError(err)
	r.Empty(taches)

	objectifs, err := ts.s.ListObjectifs(ctx, entity.ListFilter{})
	r.NoError(err)
	r.Empty(objectifs)

	noRole := entity.User{ID: newID()}

	propositions, err := ts.s.ListPropositions(as(noRole), entity.ListFilter{})
	r.NoError(err)
	r.Empty(propositions)
}

func TestService_ListContrats_EmptyTeam(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	teamID := newID()

	ts.repo.EXPECT().TeamMemberIDs(gomock.Any(), teamID).Return([]uuid.UUID{}, nil)
	ts.repo.EXPECT().ContactIDsOwnedBy(gomock.Any(), gomock.Any()).Times(0)
	ts.repo.EXPECT().ListContrats(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	contrats, err := ts.s.ListContrats(as(gestionnaire(newID(), teamID)), entity.ListFilter{})
	r.NoError(err)
	r.Empty(contrats)
}

func TestService_ListContrats_ThroughContacts(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()
	mate := newID()
	teamID := newID()
	contactID := newID()

	gomock.InOrder(
		ts.repo.EXPECT().TeamMemberIDs(gomock.Any(), teamID).Return([]uuid.UUID{me, mate}, nil),
		ts.repo.EXPECT().ContactIDsOwnedBy(gomock.Any(), []uuid.UUID{me, mate}).Return([]uuid.UUID{contactID}, nil),
		ts.repo.EXPECT().ListContrats(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pred scope.Predicate, _ entity.ListFilter) ([]entity.Contrat, error) {
				r.Equal("(contact_client_id IN (?))", sqlOf(t, pred))
				return []entity.Contrat{{ID: newID(), ContactClientID: contactID}}, nil
			}),
	)

	contrats, err := ts.s.ListContrats(as(gestionnaire(me, teamID)), entity.ListFilter{})
	r.NoError(err)
	r.Len(contrats, 1)
}

func TestService_ListContacts_LookupError(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	teamID := newID()
	boom := errors.New("connection refused")

	ts.repo.EXPECT().TeamMemberIDs(gomock.Any(), teamID).Return(nil, boom)
	ts.repo.EXPECT().ListContacts(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := ts.s.ListContacts(as(gestionnaire(newID(), teamID)), entity.ListFilter{})
	r.ErrorIs(err, boom)
}

func TestService_CreateContact(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()

	ts.repo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c entity.Contact) error {
			r.Equal(me, c.CollaborateurEnCharge)
			r.Equal(entity.LeadStatusNouveau, c.StatutLead)
			r.Equal(now, c.CreatedAt)

			return nil
		})
	// A broker failure does not fail the mutation.
	ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event entity.ChangeEvent) error {
			r.Equal("contact", event.Entity)
			r.Equal(entity.ActionCreated, event.Action)
			r.Equal(me.String(), event.ActorID)

			return errors.New("broker down")
		})

	c, err := ts.s.CreateContact(as(conseiller(me)), entity.Contact{Nom: "Dupont", Email: "jean@example.com"})
	r.NoError(err)
	r.False(c.ID.IsNil())
}

func TestService_CreateContact_ForOtherConseiller(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ts.repo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Times(0)

	_, err := ts.s.CreateContact(as(conseiller(newID())), entity.Contact{
		Nom:                   "Dupont",
		Email:                 "jean@example.com",
		CollaborateurEnCharge: newID(),
	})
	r.ErrorIs(err, entity.ErrForbidden)
}

func TestService_UpdateContact(t *testing.T) {
	t.Parallel()

	me := newID()
	other := newID()
	nom := "Durand"

	tests := []struct {
		name    string
		owner   uuid.UUID
		findErr error
		upd     entity.ContactUpdate
		wantErr error
	}{
		{
			name:  "own contact",
			owner: me,
			upd:   entity.ContactUpdate{Nom: &nom},
		},
		{
			name:    "not visible",
			owner:   other,
			upd:     entity.ContactUpdate{Nom: &nom},
			wantErr: entity.ErrForbidden,
		},
		{
			name:    "handed over out of scope",
			owner:   me,
			upd:     entity.ContactUpdate{CollaborateurEnCharge: &other},
			wantErr: entity.ErrForbidden,
		},
		{
			name:    "missing",
			findErr: entity.ErrNotFound,
			upd:     entity.ContactUpdate{Nom: &nom},
			wantErr: entity.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			ts := NewTestService(t)

			id := newID()
			existing := entity.Contact{
				ID:                    id,
				Nom:                   "Dupont",
				Email:                 "jean@example.com",
				StatutLead:            entity.LeadStatusNouveau,
				CollaborateurEnCharge: tt.owner,
			}

			ts.repo.EXPECT().ContactByID(gomock.Any(), id).Return(existing, tt.findErr)

			if tt.wantErr == nil {
				ts.repo.EXPECT().UpdateContact(gomock.Any(), gomock.Any()).Return(nil)
				ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)
			}

			c, err := ts.s.UpdateContact(as(conseiller(me)), id, tt.upd)
			if tt.wantErr != nil {
				r.ErrorIs(err, tt.wantErr)
				return
			}

			r.NoError(err)
			r.Equal(nom, c.Nom)
			r.Equal(now, c.UpdatedAt)
		})
	}
}

func TestService_ContactDetail(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()
	id := newID()
	contact := entity.Contact{ID: id, Nom: "Dupont", CollaborateurEnCharge: me}
	byContact := entity.ListFilter{ContactID: uuid.NullUUID{UUID: id, Valid: true}}

	ts.repo.EXPECT().ContactByID(gomock.Any(), id).Return(contact, nil)
	ts.repo.EXPECT().ListPropositions(gomock.Any(), gomock.Any(), byContact).
		Return([]entity.Proposition{{ID: newID(), ContactID: id, ConseillerID: me}}, nil)
	ts.repo.EXPECT().ContactIDsOwnedBy(gomock.Any(), []uuid.UUID{me}).Return([]uuid.UUID{id}, nil)
	ts.repo.EXPECT().ListContrats(gomock.Any(), gomock.Any(), byContact).Return(nil, nil)
	ts.repo.EXPECT().ListTaches(gomock.Any(), gomock.Any(), byContact).
		Return([]entity.Tache{{ID: newID(), AssigneA: me, CreePar: me}}, nil)

	detail, err := ts.s.ContactDetail(as(conseiller(me)), id)
	r.NoError(err)
	r.Equal(contact, detail.Contact)
	r.Len(detail.Propositions, 1)
	r.Empty(detail.Contrats)
	r.Len(detail.Taches, 1)
}

func TestService_CreateProposition_UnknownContact(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	contactID := newID()

	ts.repo.EXPECT().ContactByID(gomock.Any(), contactID).Return(entity.Contact{}, entity.ErrNotFound)
	ts.repo.EXPECT().CreateProposition(gomock.Any(), gomock.Any()).Times(0)

	_, err := ts.s.CreateProposition(as(conseiller(newID())), entity.Proposition{ContactID: contactID})
	r.ErrorIs(err, entity.ErrValidationFailed)
}

func TestService_CreateTache_Combinator(t *testing.T) {
	t.Parallel()

	me := newID()
	mate := newID()
	outsider := newID()
	teamID := newID()

	tests := []struct {
		name    string
		opts    []service.Option
		wantErr error
	}{
		{name: "assignee or creator"},
		{
			name:    "assignee and creator",
			opts:    []service.Option{service.WithTacheCombinator(scope.CombineAnd)},
			wantErr: entity.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			ts := NewTestService(t, tt.opts...)

			ts.repo.EXPECT().TeamMemberIDs(gomock.Any(), teamID).Return([]uuid.UUID{me, mate}, nil)

			if tt.wantErr == nil {
				ts.repo.EXPECT().CreateTache(gomock.Any(), gomock.Any()).Return(nil)
				ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)
			}

			task, err := ts.s.CreateTache(as(gestionnaire(me, teamID)), entity.Tache{Titre: "Rappeler", AssigneA: outsider})
			if tt.wantErr != nil {
				r.ErrorIs(err, tt.wantErr)
				return
			}

			r.NoError(err)
			r.Equal(me, task.CreePar)
			r.Equal(entity.TacheAFaire, task.Statut)
			r.Equal(entity.PriorityNormale, task.Priorite)
			r.Nil(task.DateCompletion)
		})
	}
}

func TestService_ChangeTacheStatus(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()
	id := newID()
	task := entity.Tache{ID: id, Titre: "Rappeler", Statut: entity.TacheEnCours, Priorite: entity.PriorityHaute, AssigneA: me, CreePar: me}

	ts.repo.EXPECT().TacheByID(gomock.Any(), id).Return(task, nil)
	ts.repo.EXPECT().UpdateTache(gomock.Any(), gomock.Any()).Return(nil)
	ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	done, err := ts.s.ChangeTacheStatus(as(conseiller(me)), id, entity.TacheTermine)
	r.NoError(err)
	r.Equal(entity.TacheTermine, done.Statut)
	r.NotNil(done.DateCompletion)
	r.Equal(now, *done.DateCompletion)

	ts.repo.EXPECT().TacheByID(gomock.Any(), id).Return(done, nil)
	ts.repo.EXPECT().UpdateTache(gomock.Any(), gomock.Any()).Return(nil)
	ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	reopened, err := ts.s.ChangeTacheStatus(as(conseiller(me)), id, entity.TacheAFaire)
	r.NoError(err)
	r.Nil(reopened.DateCompletion)

	_, err = ts.s.ChangeTacheStatus(as(conseiller(me)), id, entity.TacheStatus("annule"))
	r.ErrorIs(err, entity.ErrValidationFailed)
}

func TestService_ChangeTacheStatus_Forbidden(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	id := newID()
	other := newID()

	ts.repo.EXPECT().TacheByID(gomock.Any(), id).Return(entity.Tache{ID: id, AssigneA: other, CreePar: other}, nil)
	ts.repo.EXPECT().UpdateTache(gomock.Any(), gomock.Any()).Times(0)

	_, err := ts.s.ChangeTacheStatus(as(conseiller(newID())), id, entity.TacheTermine)
	r.ErrorIs(err, entity.ErrForbidden)
}

func TestService_ImportContacts(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()
	file := "\ufeffNom;Prénom;E-mail;Statut\n" +
		"Dupont;Jean;jean@example.com;Qualifie\n" +
		";;;\n" +
		"Martin;Paul;pas-un-email;nouveau\n" +
		"Durand;Marie;marie@example.com;\n"

	ts.repo.EXPECT().CreateContacts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, contacts []entity.Contact) error {
			r.Len(contacts, 2)
			r.Equal("Dupont", contacts[0].Nom)
			r.Equal(entity.LeadStatusQualifie, contacts[0].StatutLead)
			r.Equal("Marie", contacts[1].Prenom)
			r.Equal(entity.LeadStatusNouveau, contacts[1].StatutLead)

			for _, c := range contacts {
				r.Equal(me, c.CollaborateurEnCharge)
			}

			return nil
		})
	ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	report, err := ts.s.ImportContacts(as(conseiller(me)), strings.NewReader(file))
	r.NoError(err)
	r.Equal(2, report.Imported)
	r.Len(report.Rejected, 1)
	r.Equal(4, report.Rejected[0].Line)
	r.Contains(report.Rejected[0].Error, "invalid email")
}

func TestService_ImportContacts_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
	}{
		{name: "empty", file: ""},
		{name: "missing email column", file: "nom,prenom\nDupont,Jean\n"},
		{name: "too many rows", file: "nom,email\nA,a@example.com\nB,b@example.com\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			ts := NewTestService(t, service.WithImportMaxRows(1))

			ts.repo.EXPECT().CreateContacts(gomock.Any(), gomock.Any()).Times(0)

			_, err := ts.s.ImportContacts(as(conseiller(newID())), strings.NewReader(tt.file))
			r.ErrorIs(err, entity.ErrValidationFailed)
		})
	}
}

func TestService_Dashboard(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	admin := entity.User{ID: newID(), Role: entity.RoleAdmin}
	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	endOfMarch := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	objectifs := []entity.Objectif{
		{ValeurCible: decimal.NewFromInt(10), ValeurActuelle: decimal.NewFromInt(5), PeriodeDebut: march, PeriodeFin: endOfMarch},
		{ValeurCible: decimal.NewFromInt(4), ValeurActuelle: decimal.NewFromInt(1), PeriodeDebut: march, PeriodeFin: endOfMarch},
		// Finished last year, not counted.
		{
			ValeurCible:    decimal.NewFromInt(4),
			ValeurActuelle: decimal.NewFromInt(4),
			PeriodeDebut:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			PeriodeFin:     time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	ts.repo.EXPECT().CountContacts(gomock.Any(), gomock.Any(), entity.StatsFilter{Statut: "nouveau"}).Return(7, nil)
	ts.repo.EXPECT().CountPropositions(gomock.Any(), gomock.Any(), entity.StatsFilter{Statut: "envoyee"}).Return(3, nil)
	ts.repo.EXPECT().SumCotisations(gomock.Any(), gomock.Any(), entity.StatsFilter{From: march}).
		Return(decimal.RequireFromString("1250.50"), nil)
	ts.repo.EXPECT().ListObjectifs(gomock.Any(), gomock.Any(), entity.ListFilter{}).Return(objectifs, nil)

	stats, err := ts.s.Dashboard(as(admin))
	r.NoError(err)
	r.Equal(7, stats.NouveauxContacts)
	r.Equal(3, stats.PropositionsEnAttente)
	r.True(stats.CAMensuel.Equal(decimal.RequireFromString("1250.50")))
	r.InDelta(37.5, stats.ProgressionObjectif, 0.001)
}

func TestService_Dashboard_NoTeam(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	stats, err := ts.s.Dashboard(as(entity.User{ID: newID(), Role: entity.RoleGestionnaire}))
	r.NoError(err)
	r.Zero(stats.NouveauxContacts)
	r.Zero(stats.PropositionsEnAttente)
	r.True(stats.CAMensuel.IsZero())
	r.Zero(stats.ProgressionObjectif)
}

func TestService_Dashboard_Error(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	boom := errors.New("timeout")

	ts.repo.EXPECT().CountContacts(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, boom)
	ts.repo.EXPECT().CountPropositions(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	ts.repo.EXPECT().SumCotisations(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.Zero, nil).AnyTimes()
	ts.repo.EXPECT().ListObjectifs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := ts.s.Dashboard(as(entity.User{ID: newID(), Role: entity.RoleAdmin}))
	r.ErrorIs(err, boom)
}

func TestService_RefreshObjectifs(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	seller := newID()
	mate := newID()
	teamID := newID()
	emptyTeamID := newID()
	contactID := newID()
	boom := errors.New("deadlock detected")

	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	endOfMarch := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	byContacts := entity.Objectif{
		ID:             newID(),
		Type:           entity.ObjectifContacts,
		ValeurActuelle: decimal.NewFromInt(1),
		PeriodeDebut:   march,
		PeriodeFin:     endOfMarch,
		AssigneA:       uuid.NullUUID{UUID: seller, Valid: true},
	}
	byTeamCA := entity.Objectif{
		ID:             newID(),
		Type:           entity.ObjectifCA,
		ValeurActuelle: decimal.NewFromInt(100),
		PeriodeDebut:   march,
		PeriodeFin:     endOfMarch,
		EquipeID:       uuid.NullUUID{UUID: teamID, Valid: true},
	}
	byEmptyTeam := entity.Objectif{
		ID:           newID(),
		Type:         entity.ObjectifPropositions,
		PeriodeDebut: march,
		PeriodeFin:   endOfMarch,
		EquipeID:     uuid.NullUUID{UUID: emptyTeamID, Valid: true},
	}
	failing := entity.Objectif{
		ID:           newID(),
		Type:         entity.ObjectifContrats,
		PeriodeDebut: march,
		PeriodeFin:   endOfMarch,
		AssigneA:     uuid.NullUUID{UUID: mate, Valid: true},
	}

	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	ts.repo.EXPECT().ObjectifsInPeriod(gomock.Any(), today).
		Return([]entity.Objectif{byContacts, byTeamCA, byEmptyTeam, failing}, nil)

	ts.repo.EXPECT().CountContacts(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pred scope.Predicate, filter entity.StatsFilter) (int, error) {
			r.Equal("(collaborateur_en_charge IN (?))", sqlOf(t, pred))
			r.Equal(march, filter.From)
			r.Equal(time.Date(2026, 3, 31, 23, 59, 59, 999999000, time.UTC), filter.To)

			return 3, nil
		})
	ts.repo.EXPECT().UpdateObjectifValeur(gomock.Any(), byContacts.ID, gomock.Any(), now).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, valeur decimal.Decimal, _ time.Time) error {
			r.True(valeur.Equal(decimal.NewFromInt(3)))
			return nil
		})

	ts.repo.EXPECT().TeamMemberIDs(gomock.Any(), teamID).Return([]uuid.UUID{seller, mate}, nil)
	ts.repo.EXPECT().ContactIDsOwnedBy(gomock.Any(), []uuid.UUID{seller, mate}).Return([]uuid.UUID{contactID}, nil)
	// Unchanged value, no write.
	ts.repo.EXPECT().SumCotisations(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(100), nil)

	ts.repo.EXPECT().TeamMemberIDs(gomock.Any(), emptyTeamID).Return([]uuid.UUID{}, nil)
	ts.repo.EXPECT().CountPropositions(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	ts.repo.EXPECT().ContactIDsOwnedBy(gomock.Any(), []uuid.UUID{mate}).Return(nil, boom)

	err := ts.s.RefreshObjectifs(context.Background())
	r.ErrorIs(err, boom)
	r.ErrorContains(err, failing.ID.String())
}

func TestService_CreateObjectif(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()

	ts.repo.EXPECT().CreateObjectif(gomock.Any(), gomock.Any()).Return(nil)
	ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	o, err := ts.s.CreateObjectif(as(conseiller(me)), entity.Objectif{
		Nom:          "Mars",
		Type:         entity.ObjectifContrats,
		ValeurCible:  decimal.NewFromInt(10),
		PeriodeDebut: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		PeriodeFin:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	r.NoError(err)
	r.Equal(uuid.NullUUID{UUID: me, Valid: true}, o.AssigneA)
	r.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), o.PeriodeDebut)
	r.True(o.EnCours)
	r.Zero(o.Progression)
}

func TestService_CreateCampagne(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()

	ts.repo.EXPECT().CreateCampagne(gomock.Any(), gomock.Any()).Return(nil)
	ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	g, err := ts.s.CreateCampagne(as(conseiller(me)), entity.Campagne{
		Nom:    "Relance",
		Type:   "email",
		Etapes: []entity.Etape{{Type: "email"}, {Type: "appel", DelaiJours: 3}},
	})
	r.NoError(err)
	r.Equal(me, g.CreePar)
	r.Equal(entity.CampagneBrouillon, g.Statut)
	r.Equal(1, g.Etapes[0].Ordre)
	r.Equal(2, g.Etapes[1].Ordre)
}

func TestService_User(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	session := entity.Session{UserID: newID(), Email: "new@example.com"}
	profile := entity.User{ID: newID(), Email: "known@example.com", Role: entity.RoleAdmin}

	ts.identity.EXPECT().Validate(gomock.Any(), "fresh").Return(session, nil)
	ts.repo.EXPECT().UserByEmail(gomock.Any(), session.Email).Return(entity.User{}, entity.ErrNotFound)

	user, err := ts.s.User(context.Background(), "fresh")
	r.NoError(err)
	r.Equal(session.UserID, user.ID)
	r.Empty(user.Role)

	// Without a profile nothing is visible.
	contacts, err := ts.s.ListContacts(as(user), entity.ListFilter{})
	r.NoError(err)
	r.Empty(contacts)

	ts.identity.EXPECT().Validate(gomock.Any(), "known").Return(entity.Session{UserID: profile.ID, Email: profile.Email}, nil)
	ts.repo.EXPECT().UserByEmail(gomock.Any(), profile.Email).Return(profile, nil)

	user, err = ts.s.User(context.Background(), "known")
	r.NoError(err)
	r.Equal(profile, user)

	ts.identity.EXPECT().Validate(gomock.Any(), "expired").Return(entity.Session{}, entity.ErrUnauthorized)

	_, err = ts.s.User(context.Background(), "expired")
	r.ErrorIs(err, entity.ErrUnauthorized)
}

func TestService_Unauthenticated(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	_, err := ts.s.ListContacts(context.Background(), entity.ListFilter{})
	r.ErrorIs(err, entity.ErrUnauthorized)
}

func TestService_IntakeLead(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	owner := newID()

	ts.repo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(nil)
	ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event entity.ChangeEvent) error {
			r.Empty(event.ActorID)
			return nil
		})

	c, err := ts.s.IntakeLead(context.Background(), entity.Lead{
		Nom:                   "Dupont",
		Email:                 "jean@example.com",
		Source:                "site",
		CollaborateurEnCharge: owner,
	})
	r.NoError(err)
	r.Equal(owner, c.CollaborateurEnCharge)
	r.Equal(entity.LeadStatusNouveau, c.StatutLead)

	_, err = ts.s.IntakeLead(context.Background(), entity.Lead{Nom: "Dupont", Email: "jean@example.com"})
	r.ErrorIs(err, entity.ErrValidationFailed)
}

func TestService_UpdateProposition(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()
	p := entity.Proposition{
		ID:           newID(),
		ContactID:    newID(),
		ConseillerID: me,
		Produit:      "Mutuelle santé",
		Statut:       entity.PropositionBrouillon,
	}

	montant := decimal.RequireFromString("120.40")
	statut := entity.PropositionEnvoyee

	ts.repo.EXPECT().PropositionByID(gomock.Any(), p.ID).Return(p, nil)
	ts.repo.EXPECT().UpdateProposition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got entity.Proposition) error {
			r.Equal(entity.PropositionEnvoyee, got.Statut)
			r.True(got.MontantMensuel.Valid)
			r.True(got.MontantMensuel.Decimal.Equal(montant))
			r.Equal("Mutuelle santé", got.Produit)
			r.Equal(now, got.UpdatedAt)

			return nil
		})
	ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	_, err := ts.s.UpdateProposition(as(conseiller(me)), p.ID, entity.PropositionUpdate{
		MontantMensuel: &montant,
		Statut:         &statut,
	})
	r.NoError(err)
}

func TestService_UpdateProposition_Errors(t *testing.T) {
	t.Parallel()

	me := newID()
	invalid := entity.PropositionStatus("signee")

	tests := []struct {
		name    string
		owner   uuid.UUID
		findErr error
		upd     entity.PropositionUpdate
		wantErr error
	}{
		{
			name:    "other conseiller",
			owner:   newID(),
			wantErr: entity.ErrForbidden,
		},
		{
			name:    "missing",
			findErr: entity.ErrNotFound,
			wantErr: entity.ErrNotFound,
		},
		{
			name:    "invalid statut",
			owner:   me,
			upd:     entity.PropositionUpdate{Statut: &invalid},
			wantErr: entity.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			ts := NewTestService(t)

			p := entity.Proposition{ID: newID(), ContactID: newID(), ConseillerID: tt.owner, Statut: entity.PropositionBrouillon}

			ts.repo.EXPECT().PropositionByID(gomock.Any(), p.ID).Return(p, tt.findErr)
			ts.repo.EXPECT().UpdateProposition(gomock.Any(), gomock.Any()).Times(0)

			_, err := ts.s.UpdateProposition(as(conseiller(me)), p.ID, tt.upd)
			r.ErrorIs(err, tt.wantErr)
		})
	}
}

func TestService_UpdateTache(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()
	tache := entity.Tache{
		ID:        newID(),
		Titre:     "Envoyer le devis",
		Statut:    entity.TacheAFaire,
		Priorite:  entity.PriorityNormale,
		ContactID: uuid.NullUUID{UUID: newID(), Valid: true},
		AssigneA:  me,
		CreePar:   me,
	}

	titre := "Envoyer le devis signé"
	statut := entity.TacheTermine
	detach := uuid.Nil

	ts.repo.EXPECT().TacheByID(gomock.Any(), tache.ID).Return(tache, nil)
	ts.repo.EXPECT().UpdateTache(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got entity.Tache) error {
			r.Equal(titre, got.Titre)
			r.False(got.ContactID.Valid)
			r.Equal(entity.TacheTermine, got.Statut)
			r.NotNil(got.DateCompletion)
			r.Equal(now, *got.DateCompletion)

			return nil
		})
	ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	_, err := ts.s.UpdateTache(as(conseiller(me)), tache.ID, entity.TacheUpdate{
		Titre:     &titre,
		Statut:    &statut,
		ContactID: &detach,
	})
	r.NoError(err)
}

func TestService_UpdateTache_HandOverOutOfScope(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()
	outsider := newID()
	tache := entity.Tache{
		ID:       newID(),
		Titre:    "Relancer",
		Statut:   entity.TacheEnCours,
		Priorite: entity.PriorityHaute,
		AssigneA: me,
		CreePar:  newID(),
	}

	ts.repo.EXPECT().TacheByID(gomock.Any(), tache.ID).Return(tache, nil)
	ts.repo.EXPECT().UpdateTache(gomock.Any(), gomock.Any()).Times(0)

	_, err := ts.s.UpdateTache(as(conseiller(me)), tache.ID, entity.TacheUpdate{AssigneA: &outsider})
	r.ErrorIs(err, entity.ErrForbidden)
}

func TestService_UpdateObjectif(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()
	teamID := newID()
	o := entity.Objectif{
		ID:             newID(),
		Nom:            "CA mars",
		Type:           entity.ObjectifCA,
		ValeurCible:    decimal.NewFromInt(100),
		ValeurActuelle: decimal.NewFromInt(50),
		PeriodeDebut:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodeFin:     time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		EquipeID:       uuid.NullUUID{UUID: teamID, Valid: true},
		CreePar:        me,
	}

	cible := decimal.NewFromInt(200)

	ts.repo.EXPECT().ObjectifByID(gomock.Any(), o.ID).Return(o, nil)
	ts.repo.EXPECT().TeamMemberIDs(gomock.Any(), teamID).Return([]uuid.UUID{me}, nil)
	ts.repo.EXPECT().UpdateObjectif(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got entity.Objectif) error {
			r.True(got.ValeurCible.Equal(cible))
			r.True(got.ValeurActuelle.Equal(decimal.NewFromInt(50)))

			return nil
		})
	ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	got, err := ts.s.UpdateObjectif(as(gestionnaire(me, teamID)), o.ID, entity.ObjectifUpdate{ValeurCible: &cible})
	r.NoError(err)
	r.InDelta(25.0, got.Progression, 0.001)
	r.True(got.EnCours)
}

func TestService_UpdateObjectif_OtherTeam(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()
	teamID := newID()
	o := entity.Objectif{
		ID:       newID(),
		Nom:      "Contrats T1",
		Type:     entity.ObjectifContrats,
		EquipeID: uuid.NullUUID{UUID: newID(), Valid: true},
		AssigneA: uuid.NullUUID{UUID: newID(), Valid: true},
	}

	ts.repo.EXPECT().ObjectifByID(gomock.Any(), o.ID).Return(o, nil)
	ts.repo.EXPECT().TeamMemberIDs(gomock.Any(), teamID).Return([]uuid.UUID{me}, nil)
	ts.repo.EXPECT().UpdateObjectif(gomock.Any(), gomock.Any()).Times(0)

	nom := "Contrats T2"

	_, err := ts.s.UpdateObjectif(as(gestionnaire(me, teamID)), o.ID, entity.ObjectifUpdate{Nom: &nom})
	r.ErrorIs(err, entity.ErrForbidden)
}

func TestService_ListCampagnes(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()
	teamID := newID()
	members := []uuid.UUID{me, newID()}

	ts.repo.EXPECT().TeamMemberIDs(gomock.Any(), teamID).Return(members, nil)
	ts.repo.EXPECT().ListCampagnes(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Campagne, error) {
			r.Equal("(cree_par IN (?,?))", sqlOf(t, pred))
			r.Equal(string(entity.CampagneActive), filter.Statut)

			return []entity.Campagne{}, nil
		})

	got, err := ts.s.ListCampagnes(as(gestionnaire(me, teamID)), entity.ListFilter{Statut: "active"})
	r.NoError(err)
	r.Empty(got)

	_, err = ts.s.ListCampagnes(as(gestionnaire(me, teamID)), entity.ListFilter{Statut: "archivee"})
	r.ErrorIs(err, entity.ErrValidationFailed)
}

func TestService_UpdateCampagne(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	me := newID()
	g := entity.Campagne{
		ID:      newID(),
		Nom:     "Relance été",
		Type:    "email",
		Statut:  entity.CampagneBrouillon,
		Etapes:  []entity.Etape{{Ordre: 1, Type: "email"}},
		CreePar: me,
	}

	statut := entity.CampagneActive

	ts.repo.EXPECT().CampagneByID(gomock.Any(), g.ID).Return(g, nil)
	ts.repo.EXPECT().UpdateCampagne(gomock.Any(), gomock.Any()).Return(nil)
	ts.producer.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	got, err := ts.s.UpdateCampagne(as(conseiller(me)), g.ID, entity.CampagneUpdate{
		Statut: &statut,
		Etapes: []entity.Etape{{Type: "email", DelaiJours: 0}, {Type: "sms", DelaiJours: 3}},
	})
	r.NoError(err)
	r.Equal(entity.CampagneActive, got.Statut)
	r.Len(got.Etapes, 2)
	r.Equal(1, got.Etapes[0].Ordre)
	r.Equal(2, got.Etapes[1].Ordre)
}

func TestService_UpdateCampagne_Forbidden(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	g := entity.Campagne{ID: newID(), Nom: "Parrainage", Statut: entity.CampagneActive, CreePar: newID()}

	ts.repo.EXPECT().CampagneByID(gomock.Any(), g.ID).Return(g, nil)
	ts.repo.EXPECT().UpdateCampagne(gomock.Any(), gomock.Any()).Times(0)

	nom := "Parrainage 2026"

	_, err := ts.s.UpdateCampagne(as(conseiller(newID())), g.ID, entity.CampagneUpdate{Nom: &nom})
	r.ErrorIs(err, entity.ErrForbidden)
}
