package memory_test

import (
	"testing"
	"time"

	"catering/internal/adapters/out/memory"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/feedback"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, seq int, status order.Status, position int) *order.Order {
	t.Helper()
	n, err := kernel.NewOrderNumber(seq)
	require.NoError(t, err)

	p := order.RestoreParams{
		Number:        n,
		CustomerID:    "C1",
		Items:         "1x Mixed Grill Platter",
		GrossBill:     1200,
		Discount:      60,
		Status:        status,
		QueuePosition: position,
	}
	if status != order.Placed {
		p.Category = order.Priority
		p.Chefs = []string{"Rahim"}
		p.EtaMinutes = 10
	}
	if status == order.OutForDelivery || status == order.Delivered {
		p.DriverID = "D1"
		p.VehicleID = "V1"
	}

	o, err := order.RestoreOrder(p)
	require.NoError(t, err)
	return o
}

func TestState_RestoreResumesCounter(t *testing.T) {
	state := memory.NewState()
	ctx := t.Context()

	c, err := customer.RestoreRegistered("C1", 3)
	require.NoError(t, err)
	d, err := driver.RestoreDriver("D1", "Alice", "LIC-1", false)
	require.NoError(t, err)
	v, err := vehicle.RestoreVehicle("V1", "Van", false)
	require.NoError(t, err)
	fb, err := feedback.NewFeedback(kernel.NewUUID(), restoredOrder(t, 7, order.Delivered, 0).Number(), 5, "great", time.Now())
	require.NoError(t, err)

	snapshot := ports.Snapshot{
		Customers: []*customer.Customer{c},
		Orders: []*order.Order{
			restoredOrder(t, 7, order.Delivered, 0),
			restoredOrder(t, 12, order.OutForDelivery, 1),
		},
		Drivers:   []*driver.Driver{d},
		Vehicles:  []*vehicle.Vehicle{v},
		Feedbacks: []*feedback.Feedback{fb},
	}
	require.NoError(t, state.Restore(ctx, snapshot))

	uow := memory.NewUnitOfWork(state)
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	next, err := uow.OrderRepository().NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "013", next.String())

	loaded, err := state.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Orders, 2)
	assert.Equal(t, "007", loaded.Orders[0].Number().String())
	assert.Equal(t, 3, loaded.Customers[0].OrdersThisMonth())
	assert.False(t, loaded.Drivers[0].IsAvailable())
	assert.Len(t, loaded.Feedbacks, 1)
}

func TestState_RestoreRejectsDuplicates(t *testing.T) {
	state := memory.NewState()
	ctx := t.Context()

	d, err := driver.NewDriver("D1", "Alice", "LIC-1")
	require.NoError(t, err)
	require.NoError(t, state.Restore(ctx, ports.Snapshot{Drivers: []*driver.Driver{d}}))

	err = state.Restore(ctx, ports.Snapshot{
		Orders: []*order.Order{
			restoredOrder(t, 1, order.Placed, 1),
			restoredOrder(t, 1, order.Placed, 2),
		},
	})
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)

	snapshot, err := state.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot.Drivers, 1, "failed restore leaves the state untouched")
	assert.Empty(t, snapshot.Orders)
}

func TestState_SnapshotIsDeepCopy(t *testing.T) {
	state := memory.NewState()
	ctx := t.Context()

	d, err := driver.NewDriver("D1", "Alice", "LIC-1")
	require.NoError(t, err)
	require.NoError(t, state.Restore(ctx, ports.Snapshot{Drivers: []*driver.Driver{d}}))

	first, err := state.Snapshot(ctx)
	require.NoError(t, err)
	require.NoError(t, first.Drivers[0].Reserve())

	second, err := state.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, second.Drivers[0].IsAvailable())
}
