package jobs

import (
	"context"
	"log/slog"

	"catering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MonthlyResetSchedule fires at midnight on the first day of every month.
const MonthlyResetSchedule = "0 0 0 1 * *"

type MonthlyOrdersResetter interface {
	Handle(ctx context.Context, cmd commands.ResetMonthlyOrdersCommand) (int, error)
}

// MonthlyResetJob zeroes the monthly order count of every registered
// customer so that loyalty discounts start over.
type MonthlyResetJob struct {
	handler MonthlyOrdersResetter
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewMonthlyResetJob(handler MonthlyOrdersResetter, logger *slog.Logger) *MonthlyResetJob {
	return &MonthlyResetJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "monthly_reset_job"),
	}
}

func (j *MonthlyResetJob) Start() error {
	_, err := j.cron.AddFunc(MonthlyResetSchedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Monthly reset job started", "schedule", MonthlyResetSchedule)
	return nil
}

// Run resets the counters once.
func (j *MonthlyResetJob) Run(ctx context.Context) {
	reset, err := j.handler.Handle(ctx, commands.NewResetMonthlyOrdersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Monthly reset job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Monthly order counts reset", "customers", reset)
}

func (j *MonthlyResetJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Monthly reset job stopped")
}
