package queries_test

import (
	"testing"
	"time"

	"catering/internal/adapters/out/memory"
	"catering/internal/core/domain/model/chef"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/feedback"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"
	"catering/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func orderNumber(t *testing.T, seq int) kernel.OrderNumber {
	t.Helper()
	n, err := kernel.NewOrderNumber(seq)
	require.NoError(t, err)
	return n
}

func restoredOrder(t *testing.T, seq int, status order.Status, position int, driverID string) *order.Order {
	t.Helper()

	p := order.RestoreParams{
		Number:        orderNumber(t, seq),
		CustomerID:    "C1",
		Items:         "1x Veg Burger",
		GrossBill:     180,
		Discount:      9,
		Status:        status,
		QueuePosition: position,
	}
	if status != order.Placed {
		p.Category = order.Normal
		p.Chefs = []string{"Rahim"}
		p.EtaMinutes = 15
	}
	if status == order.OutForDelivery || status == order.Delivered {
		p.DriverID = driverID
		p.VehicleID = "V1"
	}

	o, err := order.RestoreOrder(p)
	require.NoError(t, err)
	return o
}

// seededState holds two delivered orders, one out for delivery with D1 and
// two queued orders.
func seededState(t *testing.T) *memory.State {
	t.Helper()

	c1, err := customer.RestoreRegistered("C1", 4)
	require.NoError(t, err)
	d1, err := driver.RestoreDriver("D1", "Karim", "LIC-1", false)
	require.NoError(t, err)
	d2, err := driver.RestoreDriver("D2", "Jamal", "LIC-2", true)
	require.NoError(t, err)
	v1, err := vehicle.RestoreVehicle("V1", "Bike", false)
	require.NoError(t, err)
	ch, err := chef.RestoreChef("Rahim", true)
	require.NoError(t, err)
	fb, err := feedback.NewFeedback(kernel.NewUUID(), orderNumber(t, 1), 5, "hot and fast",
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	state := memory.NewState()
	require.NoError(t, state.Restore(t.Context(), ports.Snapshot{
		Customers: []*customer.Customer{c1},
		Orders: []*order.Order{
			restoredOrder(t, 1, order.Delivered, 0, "D2"),
			restoredOrder(t, 2, order.Delivered, 0, "D2"),
			restoredOrder(t, 5, order.Placed, 3, ""),
			restoredOrder(t, 3, order.OutForDelivery, 1, "D1"),
			restoredOrder(t, 4, order.Preparing, 2, ""),
		},
		Drivers:   []*driver.Driver{d1, d2},
		Vehicles:  []*vehicle.Vehicle{v1},
		Chefs:     []*chef.Chef{ch},
		Feedbacks: []*feedback.Feedback{fb},
	}))

	return state
}
