package commands

import (
	"context"
	"fmt"

	"catering/internal/core/ports"
)

type LoadStateCommandHandler struct {
	store    ports.EntityStore
	restorer StateRestorer
}

func NewLoadStateCommandHandler(store ports.EntityStore, restorer StateRestorer) LoadStateCommandHandler {
	return LoadStateCommandHandler{
		store:    store,
		restorer: restorer,
	}
}

// Handle loads every entity and restores the order counter from the highest
// stored order number. Nothing changes when loading or restoring fails.
func (h LoadStateCommandHandler) Handle(ctx context.Context, cmd LoadStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	snapshot, err := h.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	return h.restorer.Restore(ctx, snapshot)
}
