package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/jobs"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orderNumber(t *testing.T, seq int) kernel.OrderNumber {
	t.Helper()
	n, err := kernel.NewOrderNumber(seq)
	require.NoError(t, err)
	return n
}

type countingReadyHandler struct {
	calls atomic.Int32
	err   error
	seen  chan kernel.OrderNumber
}

func (h *countingReadyHandler) Handle(_ context.Context, cmd commands.MarkOrderReadyCommand) error {
	h.calls.Add(1)
	if h.seen != nil {
		h.seen <- cmd.OrderNumber()
	}
	return h.err
}

type MockResetter struct {
	mock.Mock
}

func (m *MockResetter) Handle(ctx context.Context, cmd commands.ResetMonthlyOrdersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Handle(ctx context.Context, cmd commands.SaveStateCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func TestPreparationScheduler(t *testing.T) {
	t.Run("fires once after the delay", func(t *testing.T) {
		handler := &countingReadyHandler{seen: make(chan kernel.OrderNumber, 4)}
		scheduler := jobs.NewPreparationScheduler(handler, 20*time.Millisecond, discardLogger())
		defer scheduler.Stop()

		scheduler.Schedule(orderNumber(t, 1))
		scheduler.Schedule(orderNumber(t, 1))
		assert.Equal(t, 1, scheduler.Pending())

		select {
		case n := <-handler.seen:
			assert.Equal(t, "001", n.String())
		case <-time.After(2 * time.Second):
			require.Fail(t, "order was not marked ready")
		}

		assert.Eventually(t, func() bool { return scheduler.Pending() == 0 }, time.Second, 5*time.Millisecond)
		time.Sleep(40 * time.Millisecond)
		assert.Equal(t, int32(1), handler.calls.Load())
	})

	t.Run("does not block the caller", func(t *testing.T) {
		handler := &countingReadyHandler{}
		scheduler := jobs.NewPreparationScheduler(handler, time.Hour, discardLogger())
		defer scheduler.Stop()

		start := time.Now()
		scheduler.Schedule(orderNumber(t, 2))

		assert.Less(t, time.Since(start), 100*time.Millisecond)
		assert.Equal(t, int32(0), handler.calls.Load())
	})

	t.Run("stop drops pending timers", func(t *testing.T) {
		handler := &countingReadyHandler{}
		scheduler := jobs.NewPreparationScheduler(handler, 50*time.Millisecond, discardLogger())

		scheduler.Schedule(orderNumber(t, 3))
		scheduler.Stop()
		scheduler.Schedule(orderNumber(t, 4))

		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, int32(0), handler.calls.Load())
		assert.Equal(t, 0, scheduler.Pending())
	})

	t.Run("a handler error does not stop later timers", func(t *testing.T) {
		handler := &countingReadyHandler{
			err:  errs.NewStateIsInvalidError("order 005", "READY", "mark ready"),
			seen: make(chan kernel.OrderNumber, 4),
		}
		scheduler := jobs.NewPreparationScheduler(handler, 10*time.Millisecond, discardLogger())
		defer scheduler.Stop()

		scheduler.Schedule(orderNumber(t, 5))
		scheduler.Schedule(orderNumber(t, 6))

		assert.Eventually(t, func() bool { return handler.calls.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
	})
}

func TestMonthlyResetJob(t *testing.T) {
	t.Run("run resets once", func(t *testing.T) {
		resetter := &MockResetter{}
		resetter.On("Handle", mock.Anything, mock.AnythingOfType("commands.ResetMonthlyOrdersCommand")).
			Return(3, nil).Once()
		job := jobs.NewMonthlyResetJob(resetter, discardLogger())

		job.Run(t.Context())

		resetter.AssertExpectations(t)
	})

	t.Run("failures are logged", func(t *testing.T) {
		resetter := &MockResetter{}
		resetter.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("locked")).Once()
		job := jobs.NewMonthlyResetJob(resetter, discardLogger())

		assert.NotPanics(t, func() { job.Run(t.Context()) })
		resetter.AssertExpectations(t)
	})

	t.Run("start and stop", func(t *testing.T) {
		job := jobs.NewMonthlyResetJob(&MockResetter{}, discardLogger())

		require.NoError(t, job.Start())
		job.Stop()
	})
}

func TestAutosaveJob(t *testing.T) {
	t.Run("saves on every tick", func(t *testing.T) {
		saver := &MockSaver{}
		saved := make(chan struct{}, 8)
		saver.On("Handle", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { saved <- struct{}{} }).
			Return(nil)
		job := jobs.NewAutosaveJob(saver, "@every 1s", discardLogger())

		require.NoError(t, job.Start())
		defer job.Stop()

		select {
		case <-saved:
		case <-time.After(3 * time.Second):
			require.Fail(t, "state was not saved")
		}
	})

	t.Run("invalid schedule", func(t *testing.T) {
		job := jobs.NewAutosaveJob(&MockSaver{}, "every minute", discardLogger())

		require.Error(t, job.Start())
	})
}

func TestJobManager(t *testing.T) {
	t.Run("starts and stops every job", func(t *testing.T) {
		jm := jobs.NewJobManager(&countingReadyHandler{}, time.Second, &MockResetter{}, &MockSaver{}, "@every 1h", discardLogger())

		require.NoError(t, jm.StartAll())
		require.NotNil(t, jm.Scheduler())
		jm.StopAll()
	})

	t.Run("autosave start failure", func(t *testing.T) {
		jm := jobs.NewJobManager(&countingReadyHandler{}, time.Second, &MockResetter{}, &MockSaver{}, "bogus", discardLogger())

		require.Error(t, jm.StartAll())
	})

	t.Run("without autosave", func(t *testing.T) {
		jm := jobs.NewJobManager(&countingReadyHandler{}, time.Second, &MockResetter{}, nil, "", discardLogger())

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})
}
