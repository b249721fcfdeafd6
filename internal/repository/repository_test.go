package repository_test

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/repository"
	"github.com/samandr77/microservices/crm/internal/scope"
	"github.com/samandr77/microservices/crm/pkg/postgres"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRepository_ScopeLookups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := dbPool(t)
	repo := repository.New(pool)

	team := createTeam(t, pool)
	alice := createUser(t, pool, uuid.NullUUID{UUID: team, Valid: true})
	bob := createUser(t, pool, uuid.NullUUID{UUID: team, Valid: true})
	outsider := createUser(t, pool, uuid.NullUUID{})

	members, err := repo.TeamMemberIDs(ctx, team)
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{alice, bob}, members)

	c1 := newContact(alice, "lookup")
	c2 := newContact(outsider, "lookup")
	require.NoError(t, repo.CreateContacts(ctx, []entity.Contact{c1, c2}))

	owned, err := repo.ContactIDsOwnedBy(ctx, members)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{c1.ID}, owned)

	owned, err = repo.ContactIDsOwnedBy(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, owned)

	empty, err := repo.TeamMemberIDs(ctx, createTeam(t, pool))
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestRepository_ListContacts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := dbPool(t)
	repo := repository.New(pool)

	team := createTeam(t, pool)
	alice := createUser(t, pool, uuid.NullUUID{UUID: team, Valid: true})
	outsider := createUser(t, pool, uuid.NullUUID{})

	tag := uuid.Must(uuid.NewV4()).String()
	mine := newContact(alice, tag)
	other := newContact(outsider, tag)
	other.CreatedAt = mine.CreatedAt.Add(time.Second)
	require.NoError(t, repo.CreateContacts(ctx, []entity.Contact{mine, other}))

	filter := entity.ListFilter{Search: tag}

	got, err := repo.ListContacts(ctx, scope.All(), filter)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, other.ID, got[0].ID, "newest first")

	pred := scope.Where(scope.CombineOr, scope.Term{Column: entity.ContactOwnerColumn, IDs: []uuid.UUID{alice}})
	got, err = repo.ListContacts(ctx, pred, filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, mine.ID, got[0].ID)
	require.Equal(t, []string{"vip"}, got[0].Tags)
	require.NotNil(t, got[0].Utilisateur)

	got, err = repo.ListContacts(ctx, scope.None(), filter)
	require.NoError(t, err)
	require.Empty(t, got)

	pred = scope.Where(scope.CombineOr, scope.Term{Column: entity.ContactOwnerColumn, IDs: []uuid.UUID{}})
	got, err = repo.ListContacts(ctx, pred, filter)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestRepository_ListContacts_StableOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := dbPool(t)
	repo := repository.New(pool)

	alice := createUser(t, pool, uuid.NullUUID{})

	tag := uuid.Must(uuid.NewV4()).String()
	first := newContact(alice, tag)
	twinA := newContact(alice, tag)
	twinB := newContact(alice, tag)
	twinA.CreatedAt = first.CreatedAt.Add(time.Second)
	twinB.CreatedAt = twinA.CreatedAt
	require.NoError(t, repo.CreateContacts(ctx, []entity.Contact{first, twinA, twinB}))

	pred := scope.Where(scope.CombineOr, scope.Term{Column: entity.ContactOwnerColumn, IDs: []uuid.UUID{alice}})
	filter := entity.ListFilter{Search: tag}

	once, err := repo.ListContacts(ctx, pred, filter)
	require.NoError(t, err)
	require.Len(t, once, 3)

	again, err := repo.ListContacts(ctx, pred, filter)
	require.NoError(t, err)
	require.Equal(t, once, again)

	hi, lo := twinA.ID, twinB.ID
	if bytes.Compare(hi.Bytes(), lo.Bytes()) < 0 {
		hi, lo = lo, hi
	}

	require.Equal(t, []uuid.UUID{hi, lo, first.ID}, []uuid.UUID{once[0].ID, once[1].ID, once[2].ID})
}

func TestRepository_ContactNotFound(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))

	_, err := repo.ContactByID(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)

	err = repo.DeleteContact(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_ContratsThroughContacts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := dbPool(t)
	repo := repository.New(pool)

	alice := createUser(t, pool, uuid.NullUUID{})
	bob := createUser(t, pool, uuid.NullUUID{})

	ca := newContact(alice, "contrat")
	cb := newContact(bob, "contrat")
	require.NoError(t, repo.CreateContacts(ctx, []entity.Contact{ca, cb}))

	signed := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	k1 := newContrat(ca.ID, signed, "100.50")
	k2 := newContrat(cb.ID, signed, "40.00")
	require.NoError(t, repo.CreateContrat(ctx, k1))
	require.NoError(t, repo.CreateContrat(ctx, k2))

	owned, err := repo.ContactIDsOwnedBy(ctx, []uuid.UUID{alice})
	require.NoError(t, err)

	pred := scope.Where(scope.CombineOr, scope.Term{Column: entity.ContratContactColumn, IDs: owned})

	got, err := repo.ListContrats(ctx, pred, entity.ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, k1.ID, got[0].ID)
	require.True(t, k1.CotisationMensuelle.Equal(got[0].CotisationMensuelle))
	require.Equal(t, signed, got[0].DateSignature)

	sum, err := repo.SumCotisations(ctx, pred, entity.StatsFilter{From: signed})
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("100.50").Equal(sum), sum.String())

	sum, err = repo.SumCotisations(ctx, pred, entity.StatsFilter{From: signed.AddDate(0, 1, 0)})
	require.NoError(t, err)
	require.True(t, sum.IsZero())

	dup := newContrat(ca.ID, signed, "1")
	dup.NumeroContrat = k1.NumeroContrat
	require.ErrorIs(t, repo.CreateContrat(ctx, dup), entity.ErrAlreadyExists)
}

func TestRepository_TacheStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := dbPool(t)
	repo := repository.New(pool)

	alice := createUser(t, pool, uuid.NullUUID{})
	bob := createUser(t, pool, uuid.NullUUID{})

	now := time.Now().Truncate(time.Millisecond)
	tache := entity.Tache{
		ID:        uuid.Must(uuid.NewV4()),
		Titre:     "Rappeler le client",
		Statut:    entity.TacheAFaire,
		Priorite:  entity.PriorityHaute,
		AssigneA:  bob,
		CreePar:   alice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.CreateTache(ctx, tache))

	tache.SetStatus(entity.TacheTermine, now)
	require.NoError(t, repo.UpdateTache(ctx, tache))

	got, err := repo.TacheByID(ctx, tache.ID)
	require.NoError(t, err)
	require.Equal(t, entity.TacheTermine, got.Statut)
	require.NotNil(t, got.DateCompletion)
	require.True(t, now.Equal(*got.DateCompletion))

	creator := scope.Where(scope.CombineOr, scope.Term{Column: entity.TacheCreatorColumn, IDs: []uuid.UUID{alice}})
	list, err := repo.ListTaches(ctx, creator, entity.ListFilter{Priorite: string(entity.PriorityHaute)})
	require.NoError(t, err)
	require.Len(t, list, 1)

	both := scope.Where(scope.CombineAnd,
		scope.Term{Column: entity.TacheAssigneeColumn, IDs: []uuid.UUID{alice}},
		scope.Term{Column: entity.TacheCreatorColumn, IDs: []uuid.UUID{alice}},
	)
	list, err = repo.ListTaches(ctx, both, entity.ListFilter{})
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestRepository_CampagneRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := dbPool(t)
	repo := repository.New(pool)

	alice := createUser(t, pool, uuid.NullUUID{})

	now := time.Now().Truncate(time.Millisecond)
	want := entity.Campagne{
		ID:     uuid.Must(uuid.NewV4()),
		Nom:    "Relance automne",
		Type:   "email",
		Statut: entity.CampagneBrouillon,
		Declencheur: entity.Declencheur{
			Type:       "statut_lead",
			Parametres: map[string]string{"statut": "qualifie"},
		},
		Etapes: []entity.Etape{
			{Ordre: 1, Type: "email", DelaiJours: 0, Sujet: "Bienvenue"},
			{Ordre: 2, Type: "appel", DelaiJours: 3},
		},
		CreePar:   alice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.CreateCampagne(ctx, want))

	got, err := repo.CampagneByID(ctx, want.ID)
	require.NoError(t, err)
	require.Equal(t, want.Declencheur, got.Declencheur)
	require.Equal(t, want.Etapes, got.Etapes)
	require.NotNil(t, got.Createur)
}

func TestRepository_ObjectifsInPeriod(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := dbPool(t)
	repo := repository.New(pool)

	alice := createUser(t, pool, uuid.NullUUID{})

	now := time.Now().Truncate(time.Millisecond)
	o := entity.Objectif{
		ID:           uuid.Must(uuid.NewV4()),
		Nom:          "CA trimestre",
		Type:         entity.ObjectifCA,
		ValeurCible:  decimal.NewFromInt(1000),
		PeriodeDebut: time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC),
		PeriodeFin:   time.Date(2001, time.March, 31, 0, 0, 0, 0, time.UTC),
		AssigneA:     uuid.NullUUID{UUID: alice, Valid: true},
		CreePar:      alice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.CreateObjectif(ctx, o))

	active, err := repo.ObjectifsInPeriod(ctx, time.Date(2001, time.February, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Contains(t, ids(active), o.ID)

	require.NoError(t, repo.UpdateObjectifValeur(ctx, o.ID, decimal.NewFromInt(250), now))

	got, err := repo.ObjectifByID(ctx, o.ID)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(250).Equal(got.ValeurActuelle))
	require.InDelta(t, 25.0, got.ProgressPercentage(), 0.001)
}

func ids(objectifs []entity.Objectif) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(objectifs))
	for _, o := range objectifs {
		out = append(out, o.ID)
	}

	return out
}

func newContact(owner uuid.UUID, nom string) entity.Contact {
	now := time.Now().Truncate(time.Millisecond)

	return entity.Contact{
		ID:                    uuid.Must(uuid.NewV4()),
		Nom:                   nom,
		Prenom:                "Jean",
		Email:                 uuid.Must(uuid.NewV4()).String() + "@example.com",
		StatutLead:            entity.LeadStatusNouveau,
		Tags:                  []string{"vip"},
		CollaborateurEnCharge: owner,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func newContrat(contactID uuid.UUID, signed time.Time, cotisation string) entity.Contrat {
	return entity.Contrat{
		ID:                  uuid.Must(uuid.NewV4()),
		NumeroContrat:       uuid.Must(uuid.NewV4()).String(),
		Compagnie:           "Mutuelle",
		CotisationMensuelle: decimal.RequireFromString(cotisation),
		DateSignature:       signed,
		ContactClientID:     contactID,
		CreatedAt:           time.Now().Truncate(time.Millisecond),
	}
}

func createTeam(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.Must(uuid.NewV4())
	_, err := pool.Exec(context.Background(), `INSERT INTO equipes (id, nom) VALUES ($1, $2)`, id, id.String())
	require.NoError(t, err)

	return id
}

func createUser(t *testing.T, pool *pgxpool.Pool, team uuid.NullUUID) uuid.UUID {
	t.Helper()

	id := uuid.Must(uuid.NewV4())
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, nom_complet, equipe_id) VALUES ($1, $2, $3, $4)`,
		id, id.String()+"@example.com", "Utilisateur "+id.String()[:8], team,
	)
	require.NoError(t, err)

	return id
}

var (
	migrateOnce sync.Once
	migrateErr  error
)

func dbPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	migrateOnce.Do(func() {
		migrateErr = postgres.UpMigrations(context.Background(), dsn)
	})
	require.NoError(t, migrateErr)

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}
