package scheduler

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"ytfetch/internal/utils/logger"
)

// Scheduler launches at most one unit of work per identity at a time and
// bounds the number of concurrently running units with a weighted semaphore.
// Work is never cancelled once started; Shutdown waits for in-flight units.
type Scheduler struct {
	sem      *semaphore.Weighted
	mu       sync.Mutex
	inflight map[string]struct{}
	wg       sync.WaitGroup
}

func CreateScheduler(maxParallel int) *Scheduler {
	return &Scheduler{
		sem:      semaphore.NewWeighted(int64(maxParallel)),
		inflight: make(map[string]struct{}),
	}
}

// Launch registers the identity and runs fn on its own goroutine. It returns
// false without running anything when the identity already has an execution
// in flight. Registration happens before the goroutine starts, so two
// concurrent Launch calls for the same identity never both succeed.
func (s *Scheduler) Launch(identity string, fn func(ctx context.Context)) bool {
	const funcName = "Scheduler.Launch"

	s.mu.Lock()
	if _, busy := s.inflight[identity]; busy {
		s.mu.Unlock()
		logger.Debug("identity already in flight",
			zap.String("function", funcName),
			zap.String("identity", identity),
		)
		return false
	}
	s.inflight[identity] = struct{}{}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.release(identity)

		if err := s.sem.Acquire(context.Background(), 1); err != nil {
			logger.Error("failed to acquire worker slot",
				zap.String("function", funcName),
				zap.String("identity", identity),
				zap.Error(err),
			)
			return
		}
		defer s.sem.Release(1)

		fn(context.Background())
	}()

	return true
}

func (s *Scheduler) release(identity string) {
	s.mu.Lock()
	delete(s.inflight, identity)
	s.mu.Unlock()
}

// InFlight reports whether an execution for the identity is currently running.
func (s *Scheduler) InFlight(identity string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.inflight[identity]
	return busy
}

// Shutdown blocks until all in-flight executions finish or ctx expires.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
