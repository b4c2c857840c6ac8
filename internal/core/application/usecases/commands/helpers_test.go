package commands_test

import (
	"context"
	"sync"
	"testing"

	"catering/internal/adapters/out/memory"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW { return f() }

type placementUoWFactory func() commands.PlacementUoW

func (f placementUoWFactory) Create() commands.PlacementUoW { return f() }

type deliveryUoWFactory func() commands.DeliveryUoW

func (f deliveryUoWFactory) Create() commands.DeliveryUoW { return f() }

type registryUoWFactory func() commands.RegistryUoW

func (f registryUoWFactory) Create() commands.RegistryUoW { return f() }

type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.OrderChangedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event ports.OrderChangedEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []ports.OrderChangedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ports.OrderChangedEvent(nil), p.events...)
}

type recordingScheduler struct {
	scheduled []kernel.OrderNumber
}

func (s *recordingScheduler) Schedule(number kernel.OrderNumber) {
	s.scheduled = append(s.scheduled, number)
}

// catering wires every command handler to one in-memory state.
type catering struct {
	state     *memory.State
	publisher *recordingPublisher
	scheduler *recordingScheduler

	placeOrder   commands.PlaceOrderCommandHandler
	prepareOrder commands.PrepareOrderCommandHandler
	markReady    commands.MarkOrderReadyCommandHandler
	assign       commands.AssignDeliveryCommandHandler
	autoAssign   commands.AutoAssignDeliveryCommandHandler
	confirm      commands.ConfirmDeliveryCommandHandler
	feedback     commands.SubmitFeedbackCommandHandler

	registerCustomer commands.RegisterCustomerCommandHandler
	registerDriver   commands.RegisterDriverCommandHandler
	registerVehicle  commands.RegisterVehicleCommandHandler
	registerChef     commands.RegisterChefCommandHandler
	resetMonthly     commands.ResetMonthlyOrdersCommandHandler
}

func newCatering(t *testing.T) *catering {
	t.Helper()

	state := memory.NewState()

	orders := orderUoWFactory(func() commands.OrderUoW { return memory.NewUnitOfWork(state) })
	placements := placementUoWFactory(func() commands.PlacementUoW { return memory.NewUnitOfWork(state) })
	deliveries := deliveryUoWFactory(func() commands.DeliveryUoW { return memory.NewUnitOfWork(state) })
	registry := registryUoWFactory(func() commands.RegistryUoW { return memory.NewUnitOfWork(state) })

	c := &catering{
		state:     state,
		publisher: &recordingPublisher{},
		scheduler: &recordingScheduler{},
	}

	c.placeOrder = commands.NewPlaceOrderCommandHandler(placements, menu.DefaultCatalog(), customer.DefaultPolicies(), c.publisher)
	c.prepareOrder = commands.NewPrepareOrderCommandHandler(orders, c.scheduler, c.publisher)
	c.markReady = commands.NewMarkOrderReadyCommandHandler(orders, c.publisher)
	c.assign = commands.NewAssignDeliveryCommandHandler(deliveries, c.publisher)
	c.autoAssign = commands.NewAutoAssignDeliveryCommandHandler(deliveries, c.publisher)
	c.confirm = commands.NewConfirmDeliveryCommandHandler(deliveries, c.publisher)
	c.feedback = commands.NewSubmitFeedbackCommandHandler(deliveries, c.publisher)
	c.registerCustomer = commands.NewRegisterCustomerCommandHandler(registry)
	c.registerDriver = commands.NewRegisterDriverCommandHandler(registry)
	c.registerVehicle = commands.NewRegisterVehicleCommandHandler(registry)
	c.registerChef = commands.NewRegisterChefCommandHandler(registry)
	c.resetMonthly = commands.NewResetMonthlyOrdersCommandHandler(registry)

	return c
}

func (c *catering) snapshot(t *testing.T) ports.Snapshot {
	t.Helper()
	s, err := c.state.Snapshot(t.Context())
	require.NoError(t, err)
	return s
}

func (c *catering) order(t *testing.T, number kernel.OrderNumber) *order.Order {
	t.Helper()
	for _, o := range c.snapshot(t).Orders {
		if o.Number().IsEqual(number) {
			return o
		}
	}
	require.Failf(t, "order not found", "order %s", number)
	return nil
}

func (c *catering) customerNamed(t *testing.T, id string) *customer.Customer {
	t.Helper()
	for _, cu := range c.snapshot(t).Customers {
		if cu.ID() == id {
			return cu
		}
	}
	require.Failf(t, "customer not found", "customer %s", id)
	return nil
}

func (c *catering) driverAvailable(t *testing.T, id string) bool {
	t.Helper()
	for _, d := range c.snapshot(t).Drivers {
		if d.ID() == id {
			return d.IsAvailable()
		}
	}
	require.Failf(t, "driver not found", "driver %s", id)
	return false
}

func (c *catering) vehicleAvailable(t *testing.T, id string) bool {
	t.Helper()
	for _, v := range c.snapshot(t).Vehicles {
		if v.ID() == id {
			return v.IsAvailable()
		}
	}
	require.Failf(t, "vehicle not found", "vehicle %s", id)
	return false
}

func (c *catering) addCustomer(t *testing.T, id string) {
	t.Helper()
	cmd, err := commands.NewRegisterCustomerCommand(id)
	require.NoError(t, err)
	require.NoError(t, c.registerCustomer.Handle(t.Context(), cmd))
}

func (c *catering) addDriver(t *testing.T, id, license string) {
	t.Helper()
	cmd, err := commands.NewRegisterDriverCommand(id, "Driver "+id, license)
	require.NoError(t, err)
	require.NoError(t, c.registerDriver.Handle(t.Context(), cmd))
}

func (c *catering) addVehicle(t *testing.T, id string) {
	t.Helper()
	cmd, err := commands.NewRegisterVehicleCommand(id, "Van")
	require.NoError(t, err)
	require.NoError(t, c.registerVehicle.Handle(t.Context(), cmd))
}

// place orders quantity portions of item for customerID ("" for a guest).
func (c *catering) place(t *testing.T, customerID, item string, quantity int) commands.PlaceOrderResult {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(customerID, []menu.Selection{{Item: item, Quantity: quantity}})
	require.NoError(t, err)
	result, err := c.placeOrder.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return result
}

func (c *catering) prepare(t *testing.T, number kernel.OrderNumber) {
	t.Helper()
	cmd, err := commands.NewPrepareOrderCommand(number, order.Normal, []string{"Rahim"}, 15)
	require.NoError(t, err)
	require.NoError(t, c.prepareOrder.Handle(t.Context(), cmd))
}

func (c *catering) ready(t *testing.T, number kernel.OrderNumber) {
	t.Helper()
	c.prepare(t, number)
	cmd, err := commands.NewMarkOrderReadyCommand(number)
	require.NoError(t, err)
	require.NoError(t, c.markReady.Handle(t.Context(), cmd))
}

func (c *catering) dispatch(t *testing.T, number kernel.OrderNumber, driverID, vehicleID string) {
	t.Helper()
	c.ready(t, number)
	cmd, err := commands.NewAssignDeliveryCommand(number, driverID, vehicleID)
	require.NoError(t, err)
	require.NoError(t, c.assign.Handle(t.Context(), cmd))
}

func orderNumber(t *testing.T, seq int) kernel.OrderNumber {
	t.Helper()
	n, err := kernel.NewOrderNumber(seq)
	require.NoError(t, err)
	return n
}

// MockOrderUoW is a testify mock for handlers that only need orders.
type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextNumber(ctx context.Context) (kernel.OrderNumber, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.OrderNumber), args.Error(1)
}
