package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkOrderReadyCommand(t *testing.T) {
	_, err := commands.NewMarkOrderReadyCommand(kernel.OrderNumber{})
	require.ErrorIs(t, err, kernel.ErrOrderNumberIsNotConstructed)
}

func TestMarkOrderReadyCommandHandler(t *testing.T) {
	c := newCatering(t)
	placed := c.place(t, "", "Veg Burger", 1)

	cmd, err := commands.NewMarkOrderReadyCommand(placed.OrderNumber)
	require.NoError(t, err)

	t.Run("placed order is not ready yet", func(t *testing.T) {
		require.ErrorIs(t, c.markReady.Handle(t.Context(), cmd), errs.ErrStateIsInvalid)
		assert.Equal(t, order.Placed, c.order(t, placed.OrderNumber).Status())
	})

	t.Run("preparing order becomes ready", func(t *testing.T) {
		c.prepare(t, placed.OrderNumber)

		require.NoError(t, c.markReady.Handle(t.Context(), cmd))
		assert.Equal(t, order.Ready, c.order(t, placed.OrderNumber).Status())
	})

	t.Run("second firing fails without changes", func(t *testing.T) {
		require.ErrorIs(t, c.markReady.Handle(t.Context(), cmd), errs.ErrStateIsInvalid)
		assert.Equal(t, order.Ready, c.order(t, placed.OrderNumber).Status())
	})

	t.Run("unknown order", func(t *testing.T) {
		unknown, err := commands.NewMarkOrderReadyCommand(orderNumber(t, 42))
		require.NoError(t, err)
		require.ErrorIs(t, c.markReady.Handle(t.Context(), unknown), errs.ErrObjectNotFound)
	})
}
