package jobs

import (
	"context"
	"log/slog"

	"catering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type StateSaver interface {
	Handle(ctx context.Context, cmd commands.SaveStateCommand) error
}

// AutosaveJob periodically writes the whole state to the entity store.
// The schedule accepts the descriptors of robfig/cron ("@every 1m") as well
// as six-field expressions.
type AutosaveJob struct {
	handler  StateSaver
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewAutosaveJob(handler StateSaver, schedule string, logger *slog.Logger) *AutosaveJob {
	return &AutosaveJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "autosave_job"),
	}
}

func (j *AutosaveJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Autosave job started", "schedule", j.schedule)
	return nil
}

func (j *AutosaveJob) Run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewSaveStateCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Autosave failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "State saved")
}

func (j *AutosaveJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Autosave job stopped")
}
