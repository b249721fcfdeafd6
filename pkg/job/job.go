package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Service runs registered jobs on their own tickers until the context given
// to Start is done.
type Service struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewService() *Service {
	return &Service{
		wg: &sync.WaitGroup{},
	}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

// TryRegisterJob registers the job only when isEnabled is set and the
// interval is positive.
func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !isEnabled || interval <= 0 {
		slog.Info("job disabled", "job", name)
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Service) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)

		go s.startJob(ctx, j)
	}
}

func (s *Service) startJob(ctx context.Context, j job) {
	defer s.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		l.DebugContext(ctx, "job started")

		err := s.withRecover(ctx, l, j)
		if err != nil {
			l.ErrorContext(ctx, "job failed", "error", err)
		} else {
			l.DebugContext(ctx, "job done")
		}

		select {
		case <-ctx.Done():
			l.DebugContext(ctx, "context done")
			return
		case <-ticker.C:
		}
	}
}

func (s *Service) withRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.ErrorContext(ctx, "job panic", "error", r, "stack", string(debug.Stack()))
		}
	}()

	return j.fn(ctx)
}

// Stop waits for running jobs to return. Cancel the Start context first.
func (s *Service) Stop() {
	s.wg.Wait()
}
