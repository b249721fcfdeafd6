package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/scope"
	"github.com/shopspring/decimal"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Repository interface {
	scope.Lookup

	UserByEmail(ctx context.Context, email string) (entity.User, error)

	ListContacts(ctx context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Contact, error)
	ContactByID(ctx context.Context, id uuid.UUID) (entity.Contact, error)
	CreateContact(ctx context.Context, c entity.Contact) error
	CreateContacts(ctx context.Context, contacts []entity.Contact) error
	UpdateContact(ctx context.Context, c entity.Contact) error
	DeleteContact(ctx context.Context, id uuid.UUID) error
	CountContacts(ctx context.Context, pred scope.Predicate, filter entity.StatsFilter) (int, error)

	ListPropositions(ctx context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Proposition, error)
	PropositionByID(ctx context.Context, id uuid.UUID) (entity.Proposition, error)
	CreateProposition(ctx context.Context, p entity.Proposition) error
	UpdateProposition(ctx context.Context, p entity.Proposition) error
	CountPropositions(ctx context.Context, pred scope.Predicate, filter entity.StatsFilter) (int, error)

	ListContrats(ctx context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Contrat, error)
	CreateContrat(ctx context.Context, k entity.Contrat) error
	CountContrats(ctx context.Context, pred scope.Predicate, filter entity.StatsFilter) (int, error)
	SumCotisations(ctx context.Context, pred scope.Predicate, filter entity.StatsFilter) (decimal.Decimal, error)

	ListTaches(ctx context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Tache, error)
	TacheByID(ctx context.Context, id uuid.UUID) (entity.Tache, error)
	CreateTache(ctx context.Context, t entity.Tache) error
	UpdateTache(ctx context.Context, t entity.Tache) error

	ListObjectifs(ctx context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Objectif, error)
	ObjectifByID(ctx context.Context, id uuid.UUID) (entity.Objectif, error)
	ObjectifsInPeriod(ctx context.Context, at time.Time) ([]entity.Objectif, error)
	CreateObjectif(ctx context.Context, o entity.Objectif) error
	UpdateObjectif(ctx context.Context, o entity.Objectif) error
	UpdateObjectifValeur(ctx context.Context, id uuid.UUID, valeur decimal.Decimal, at time.Time) error

	ListCampagnes(ctx context.Context, pred scope.Predicate, filter entity.ListFilter) ([]entity.Campagne, error)
	CampagneByID(ctx context.Context, id uuid.UUID) (entity.Campagne, error)
	CreateCampagne(ctx context.Context, g entity.Campagne) error
	UpdateCampagne(ctx context.Context, g entity.Campagne) error
}

type Identity interface {
	Validate(ctx context.Context, accessToken string) (entity.Session, error)
}

type Producer interface {
	PublishChange(ctx context.Context, event entity.ChangeEvent) error
}

type Service struct {
	repo          Repository
	identity      Identity
	producer      Producer
	resolver      *scope.Resolver
	importMaxRows int
	now           func() time.Time
}

type Option func(*Service)

// WithTacheCombinator is passed through to the scope resolver.
func WithTacheCombinator(c scope.Combinator) Option {
	return func(s *Service) {
		s.resolver = scope.NewResolver(s.repo, scope.WithTacheCombinator(c))
	}
}

func WithImportMaxRows(n int) Option {
	return func(s *Service) {
		s.importMaxRows = n
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(repo Repository, identity Identity, producer Producer, opts ...Option) *Service {
	s := &Service{
		repo:          repo,
		identity:      identity,
		producer:      producer,
		resolver:      scope.NewResolver(repo),
		importMaxRows: defaultImportMaxRows,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func actor(ctx context.Context) (entity.User, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.User{}, fmt.Errorf("get user from context: %w", err)
	}

	return user, nil
}

// predicate computes and resolves the visibility of kind for user.
func (s *Service) predicate(ctx context.Context, user entity.User, kind scope.Kind) (scope.Predicate, error) {
	sc := scope.Compute(scope.ActorFromUser(user), kind)

	pred, err := s.resolver.Resolve(ctx, sc)
	if err != nil {
		return scope.None(), fmt.Errorf("resolve %s scope: %w", kind, err)
	}

	if pred.Empty() {
		slog.DebugContext(ctx, "empty scope", "kind", kind, "mode", sc.Mode.String())
	}

	return pred, nil
}

func authorize(pred scope.Predicate, row scope.Owned, kind scope.Kind, id uuid.UUID) error {
	if !pred.Matches(row) {
		return fmt.Errorf("%w: %s %s is out of scope", entity.ErrForbidden, kind, id)
	}

	return nil
}

// publish reports a committed mutation. A broker failure is logged and does
// not undo the change.
func (s *Service) publish(ctx context.Context, kind scope.Kind, action entity.ChangeAction, id, actorID uuid.UUID) {
	event := entity.ChangeEvent{
		Entity: string(kind),
		Action: action,
		ID:     id.String(),
		At:     s.now(),
	}

	if !actorID.IsNil() {
		event.ActorID = actorID.String()
	}

	err := s.producer.PublishChange(ctx, event)
	if err != nil {
		slog.ErrorContext(ctx, "publish change event", "error", err, "entity", kind, "id", id)
	}
}

// User authenticates accessToken and loads the caller's CRM profile. A
// session without a profile is still returned, with no role.
func (s *Service) User(ctx context.Context, accessToken string) (entity.User, error) {
	session, err := s.identity.Validate(ctx, accessToken)
	if err != nil {
		return entity.User{}, fmt.Errorf("validate token: %w", err)
	}

	user, err := s.repo.UserByEmail(ctx, session.Email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, "no profile for session", "email", session.Email)

			return entity.User{ID: session.UserID, Email: session.Email}, nil
		}

		return entity.User{}, fmt.Errorf("load profile: %w", err)
	}

	return user, nil
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}
