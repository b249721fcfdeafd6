package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/crm/internal/api"
	"github.com/samandr77/microservices/crm/internal/api/events"
	"github.com/samandr77/microservices/crm/internal/httpclients/identity"
	"github.com/samandr77/microservices/crm/internal/repository"
	"github.com/samandr77/microservices/crm/internal/scope"
	"github.com/samandr77/microservices/crm/internal/service"
	"github.com/samandr77/microservices/crm/pkg/broker"
	"github.com/samandr77/microservices/crm/pkg/config"
	"github.com/samandr77/microservices/crm/pkg/job"
	"github.com/samandr77/microservices/crm/pkg/logger"
	"github.com/samandr77/microservices/crm/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.LogLevel)
	panicOnErr("init logger", err)

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(ctx, cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	combinator, err := scope.ParseCombinator(cfg.TacheTeamCombinator)
	panicOnErr("parse tache combinator", err)

	var producer service.Producer = broker.NopProducer{}

	if cfg.Kafka.Enabled() {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.ChangesTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(
		repo,
		identity.NewClient(cfg.IdentityServiceURL),
		producer,
		service.WithTacheCombinator(combinator),
		service.WithImportMaxRows(cfg.ImportMaxRows),
	)

	// Kafka consumers
	if cfg.Kafka.Enabled() {
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.LeadIntakeTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.LeadIntakeTopic, eventHandler.OnLeadReceived)
		consumer.Consume(ctx)
	} else {
		slog.WarnContext(ctx, "kafka brokers not configured, change events and lead intake disabled")
	}

	jobs := job.NewService().
		RegisterJob("refresh_objectifs", cfg.JobRefreshObjectifsInterval, s.RefreshObjectifs)
	jobs.Start(ctx)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	jobs.Stop()
	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
