package commands

import (
	"context"
	"fmt"

	"catering/internal/core/ports"
)

// SaveStateCommandHandler writes a consistent snapshot of the runtime state
// to the entity store.
type SaveStateCommandHandler struct {
	reader ports.StateReader
	store  ports.EntityStore
}

func NewSaveStateCommandHandler(reader ports.StateReader, store ports.EntityStore) SaveStateCommandHandler {
	return SaveStateCommandHandler{
		reader: reader,
		store:  store,
	}
}

func (h SaveStateCommandHandler) Handle(ctx context.Context, cmd SaveStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	snapshot, err := h.reader.Snapshot(ctx)
	if err != nil {
		return err
	}

	if err = h.store.SaveAll(ctx, snapshot); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	return nil
}
