package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_RegisteredCustomer(t *testing.T) {
	c := newCatering(t)
	c.addCustomer(t, "C1")

	result := c.place(t, "C1", "Mixed Grill Platter", 1)

	assert.Equal(t, "001", result.OrderNumber.String())
	assert.Equal(t, "C1", result.CustomerID)
	assert.Equal(t, "1x Mixed Grill Platter", result.Items)
	assert.InDelta(t, 1200, result.GrossBill, 0.001)
	assert.InDelta(t, 60, result.Discount, 0.001)
	assert.InDelta(t, 1140, result.FinalBill, 0.001)
	assert.Equal(t, 1, result.QueuePosition)
	assert.Equal(t, order.Priority, result.SuggestedCategory)

	assert.Equal(t, 1, c.customerNamed(t, "C1").OrdersThisMonth())

	placed := c.order(t, result.OrderNumber)
	assert.Equal(t, order.Placed, placed.Status())

	events := c.publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "001", events[0].OrderNumber)
	assert.Equal(t, "PLACED", events[0].Status)
	assert.Equal(t, 1, events[0].CurrentServing)
}

func TestPlaceOrderCommandHandler_Guest(t *testing.T) {
	c := newCatering(t)

	result := c.place(t, "", "Chicken Biryani", 2)

	assert.True(t, kernel.IsGuestID(result.CustomerID))
	assert.InDelta(t, 500, result.GrossBill, 0.001)
	assert.InDelta(t, 0, result.Discount, 0.001)
	assert.Equal(t, order.Normal, result.SuggestedCategory)
	assert.Empty(t, c.snapshot(t).Customers, "guests are never stored")
}

func TestPlaceOrderCommandHandler_DiscountGrowsWithOrders(t *testing.T) {
	c := newCatering(t)
	c.addCustomer(t, "C1")

	var discounts []float64
	for range 11 {
		discounts = append(discounts, c.place(t, "C1", "Green Salad", 10).Discount)
	}

	assert.InDelta(t, 40, discounts[0], 0.001)
	assert.InDelta(t, 80, discounts[5], 0.001)
	assert.InDelta(t, 120, discounts[10], 0.001)
	for i := 1; i < len(discounts); i++ {
		assert.GreaterOrEqual(t, discounts[i], discounts[i-1])
	}
}

func TestPlaceOrderCommandHandler_QueuePositions(t *testing.T) {
	c := newCatering(t)

	first := c.place(t, "", "Veg Burger", 1)
	second := c.place(t, "", "Veg Burger", 1)
	c.ready(t, first.OrderNumber)
	third := c.place(t, "", "Veg Burger", 1)

	assert.Equal(t, 1, first.QueuePosition)
	assert.Equal(t, 2, second.QueuePosition)
	assert.Equal(t, 2, third.QueuePosition, "ready orders no longer count towards the back of the queue")
	assert.Equal(t, "003", third.OrderNumber.String())
}

func TestPlaceOrderCommandHandler_Failures(t *testing.T) {
	c := newCatering(t)
	c.addCustomer(t, "C1")

	t.Run("unknown customer", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand("C404", []menu.Selection{{Item: "Veg Burger", Quantity: 1}})
		require.NoError(t, err)

		_, err = c.placeOrder.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand("C1", []menu.Selection{{Item: "Pizza", Quantity: 1}})
		require.NoError(t, err)

		_, err = c.placeOrder.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("not constructed", func(t *testing.T) {
		_, err := c.placeOrder.Handle(t.Context(), commands.PlaceOrderCommand{})
		require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	})

	assert.Empty(t, c.snapshot(t).Orders)
	assert.Equal(t, 0, c.customerNamed(t, "C1").OrdersThisMonth())
	assert.Empty(t, c.publisher.Events())

	t.Run("failed placements do not consume order numbers", func(t *testing.T) {
		assert.Equal(t, "001", c.place(t, "C1", "Veg Burger", 1).OrderNumber.String())
	})
}
