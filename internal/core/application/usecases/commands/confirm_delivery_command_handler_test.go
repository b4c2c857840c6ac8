package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmDeliveryCommand(t *testing.T) {
	_, err := commands.NewConfirmDeliveryCommand(orderNumber(t, 1), "  ")
	require.ErrorIs(t, err, commands.ErrLicenseIsRequired)
}

func TestConfirmDeliveryCommandHandler_CompactsQueue(t *testing.T) {
	c := newCatering(t)
	c.addDriver(t, "D1", "LIC-1")
	c.addVehicle(t, "V1")

	first := c.place(t, "", "Veg Burger", 1)
	second := c.place(t, "", "Veg Burger", 1)
	require.Equal(t, 1, first.QueuePosition)
	require.Equal(t, 2, second.QueuePosition)

	c.dispatch(t, first.OrderNumber, "D1", "V1")

	cmd, err := commands.NewConfirmDeliveryCommand(first.OrderNumber, "LIC-1")
	require.NoError(t, err)
	require.NoError(t, c.confirm.Handle(t.Context(), cmd))

	delivered := c.order(t, first.OrderNumber)
	assert.Equal(t, order.Delivered, delivered.Status())
	assert.Equal(t, 0, delivered.QueuePosition())
	assert.Equal(t, 1, c.order(t, second.OrderNumber).QueuePosition())
	assert.True(t, c.driverAvailable(t, "D1"))
	assert.True(t, c.vehicleAvailable(t, "V1"))

	events := c.publisher.Events()
	require.GreaterOrEqual(t, len(events), 2)
	tail := events[len(events)-2:]
	assert.Equal(t, "DELIVERED", tail[0].Status)
	assert.Equal(t, 2, tail[0].CurrentServing)
	assert.Equal(t, second.OrderNumber.String(), tail[1].OrderNumber)
	assert.Equal(t, 1, tail[1].QueuePosition)
}

func TestConfirmDeliveryCommandHandler_Failures(t *testing.T) {
	c := newCatering(t)
	c.addDriver(t, "D1", "LIC-1")
	c.addVehicle(t, "V1")

	out := c.place(t, "", "Veg Burger", 1)
	c.dispatch(t, out.OrderNumber, "D1", "V1")
	ready := c.place(t, "", "Veg Burger", 1)
	c.ready(t, ready.OrderNumber)

	t.Run("wrong license", func(t *testing.T) {
		cmd, err := commands.NewConfirmDeliveryCommand(out.OrderNumber, "LIC-2")
		require.NoError(t, err)

		require.ErrorIs(t, c.confirm.Handle(t.Context(), cmd), errs.ErrAuthenticationMismatch)
		assert.Equal(t, order.OutForDelivery, c.order(t, out.OrderNumber).Status())
		assert.False(t, c.driverAvailable(t, "D1"))
	})

	t.Run("order not out for delivery", func(t *testing.T) {
		cmd, err := commands.NewConfirmDeliveryCommand(ready.OrderNumber, "LIC-1")
		require.NoError(t, err)

		require.ErrorIs(t, c.confirm.Handle(t.Context(), cmd), errs.ErrStateIsInvalid)
	})

	t.Run("unknown order", func(t *testing.T) {
		cmd, err := commands.NewConfirmDeliveryCommand(orderNumber(t, 77), "LIC-1")
		require.NoError(t, err)

		require.ErrorIs(t, c.confirm.Handle(t.Context(), cmd), errs.ErrObjectNotFound)
	})
}
