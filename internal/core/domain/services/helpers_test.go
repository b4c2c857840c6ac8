package services_test

import (
	"testing"

	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

func newDriver(t *testing.T, id string, available bool) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(id, "Driver "+id, "LIC-"+id, available)
	require.NoError(t, err)
	return d
}

func newVehicle(t *testing.T, id string, available bool) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.RestoreVehicle(id, "Van", available)
	require.NoError(t, err)
	return v
}

func newOrder(t *testing.T, seq, position int) *order.Order {
	t.Helper()
	n, err := kernel.NewOrderNumber(seq)
	require.NoError(t, err)
	o, err := order.NewOrder(n, "C1", "1x Fried Rice", 200, 10, position)
	require.NoError(t, err)
	return o
}

func readyOrder(t *testing.T, seq, position int) *order.Order {
	t.Helper()
	o := newOrder(t, seq, position)
	require.NoError(t, o.MarkPreparing(order.Normal, []string{"Rahim"}, 15))
	require.NoError(t, o.MarkReady())
	return o
}

func outForDelivery(t *testing.T, seq, position int, driverID, vehicleID string) *order.Order {
	t.Helper()
	o := readyOrder(t, seq, position)
	require.NoError(t, o.AssignDelivery(driverID, vehicleID))
	return o
}
