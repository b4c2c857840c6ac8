package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// OrderReadyHandler moves a preparing order to READY.
type OrderReadyHandler interface {
	Handle(ctx context.Context, cmd commands.MarkOrderReadyCommand) error
}

// PreparationScheduler completes kitchen preparation after a fixed delay.
// Each order is marked ready at most once. The callback runs the regular
// MarkOrderReady command, so it takes the same write lock as every other
// mutation. Pending timers are dropped on Stop.
type PreparationScheduler struct {
	handler OrderReadyHandler
	delay   time.Duration
	logger  *slog.Logger

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	running sync.WaitGroup
}

func NewPreparationScheduler(handler OrderReadyHandler, delay time.Duration, logger *slog.Logger) *PreparationScheduler {
	return &PreparationScheduler{
		handler: handler,
		delay:   delay,
		logger:  logger.With("component", "preparation_scheduler"),
		timers:  make(map[string]*time.Timer),
	}
}

// Schedule arms the timer for the order and returns immediately. A second
// call for an order that is still pending is ignored.
func (s *PreparationScheduler) Schedule(number kernel.OrderNumber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		s.logger.Warn("Scheduler is stopped, preparation will not complete", "order", number.String())
		return
	}
	if _, ok := s.timers[number.String()]; ok {
		return
	}

	s.running.Add(1)
	s.timers[number.String()] = time.AfterFunc(s.delay, func() {
		defer s.running.Done()
		s.fire(number)
	})
}

// Pending returns the number of armed timers.
func (s *PreparationScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels every pending timer and waits for callbacks already running.
func (s *PreparationScheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for key, timer := range s.timers {
		if timer.Stop() {
			s.running.Done()
		}
		delete(s.timers, key)
	}
	s.mu.Unlock()

	s.running.Wait()
	s.logger.Info("Preparation scheduler stopped")
}

func (s *PreparationScheduler) fire(number kernel.OrderNumber) {
	s.mu.Lock()
	delete(s.timers, number.String())
	s.mu.Unlock()

	ctx := context.Background()

	cmd, err := commands.NewMarkOrderReadyCommand(number)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create mark ready command", "order", number.String(), "error", err)
		return
	}

	if err = s.handler.Handle(ctx, cmd); err != nil {
		// A late timer for an order that moved on is not a failure of the scheduler.
		if errors.Is(err, errs.ErrStateIsInvalid) || errors.Is(err, errs.ErrObjectNotFound) {
			s.logger.WarnContext(ctx, "Order was not marked ready", "order", number.String(), "error", err)
			return
		}
		s.logger.ErrorContext(ctx, "Failed to mark order ready", "order", number.String(), "error", err)
		return
	}

	s.logger.InfoContext(ctx, "Order is ready", "order", number.String())
}
