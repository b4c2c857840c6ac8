package cmd

import (
	"context"
	"fmt"
	"log/slog"

	cateringhttp "catering/internal/adapters/in/http"
	"catering/internal/adapters/out/broadcast"
	"catering/internal/adapters/out/filestore"
	"catering/internal/adapters/out/kafka"
	"catering/internal/adapters/out/memory"
	"catering/internal/adapters/out/postgres"
	catredis "catering/internal/adapters/out/redis"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/menu"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
	"catering/internal/jobs"

	"github.com/redis/go-redis/v9"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	state      *memory.State
	uowFactory *memory.UnitOfWorkFactory
	store      ports.EntityStore
	catalog    *menu.Catalog
	policies   customer.Policies

	publisher      ports.OrderEventPublisher
	kafkaPublisher *kafka.OrderChangedPublisher
	redisClient    *redis.Client

	jobManager *jobs.JobManager
}

// NewCompositionRoot wires the runtime state, the entity store chosen by
// STORE_DRIVER and the optional event sinks. Kafka and Redis are only used
// when their address is configured.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	state := memory.NewState()

	c := &CompositionRoot{
		config:     config,
		logger:     logger,
		state:      state,
		uowFactory: memory.NewUnitOfWorkFactory(state),
		catalog:    menu.DefaultCatalog(),
		policies:   customer.DefaultPolicies(),
	}

	store, err := c.openStore(ctx)
	if err != nil {
		return nil, err
	}
	c.store = store

	var sinks []ports.OrderEventPublisher
	if config.KafkaHost != "" {
		c.kafkaPublisher = kafka.NewOrderChangedPublisher(config.KafkaHost, config.KafkaOrderChangedTopic, logger)
		sinks = append(sinks, c.kafkaPublisher)
	}
	if config.RedisAddr != "" {
		c.redisClient = redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		if err = c.redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", config.RedisAddr, err)
		}
		sinks = append(sinks, catredis.NewQueueBoard(c.redisClient, state, logger))
	}
	c.publisher = broadcast.New(sinks...)

	autosave := config.AutosaveSchedule
	if config.StoreDriver == StoreDriverMemory {
		autosave = ""
	}
	c.jobManager = jobs.NewJobManager(
		c.CreateMarkOrderReadyCommandHandler(),
		config.PreparationDelay,
		c.CreateResetMonthlyOrdersCommandHandler(),
		c.CreateSaveStateCommandHandler(),
		autosave,
		logger,
	)

	return c, nil
}

func (c *CompositionRoot) openStore(ctx context.Context) (ports.EntityStore, error) {
	switch c.config.StoreDriver {
	case StoreDriverPostgres:
		db, err := postgres.Open(ctx, c.config.DSN())
		if err != nil {
			return nil, err
		}
		return postgres.NewStore(db), nil
	case StoreDriverFile:
		return filestore.NewStore(c.config.DataFile), nil
	default:
		return discardStore{}, nil
	}
}

// ResumePreparation re-arms the preparation timer of every order that was
// restored in PREPARING. Timers do not survive a restart.
func (c *CompositionRoot) ResumePreparation(ctx context.Context) (int, error) {
	snapshot, err := c.state.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	resumed := 0
	for _, o := range snapshot.Orders {
		if o.Status() == order.Preparing {
			c.jobManager.Scheduler().Schedule(o.Number())
			resumed++
		}
	}
	return resumed, nil
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

// Close releases the event sinks. Call it after the last command ran.
func (c *CompositionRoot) Close() error {
	if c.kafkaPublisher != nil {
		if err := c.kafkaPublisher.Close(); err != nil {
			return fmt.Errorf("failed to flush kafka publisher: %w", err)
		}
	}
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.catalog, c.policies, c.publisher)
}

func (c *CompositionRoot) CreatePrepareOrderCommandHandler() commands.PrepareOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPrepareOrderCommandHandler(f, c.jobManager.Scheduler(), c.publisher)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderReadyCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAutoAssignDeliveryCommandHandler() commands.AutoAssignDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoAssignDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSubmitFeedbackCommandHandler() commands.SubmitFeedbackCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitFeedbackCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.registryUoWFactory())
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.registryUoWFactory())
}

func (c *CompositionRoot) CreateRegisterVehicleCommandHandler() commands.RegisterVehicleCommandHandler {
	return commands.NewRegisterVehicleCommandHandler(c.registryUoWFactory())
}

func (c *CompositionRoot) CreateRegisterChefCommandHandler() commands.RegisterChefCommandHandler {
	return commands.NewRegisterChefCommandHandler(c.registryUoWFactory())
}

func (c *CompositionRoot) CreateResetMonthlyOrdersCommandHandler() commands.ResetMonthlyOrdersCommandHandler {
	return commands.NewResetMonthlyOrdersCommandHandler(c.registryUoWFactory())
}

func (c *CompositionRoot) CreateSaveStateCommandHandler() commands.SaveStateCommandHandler {
	return commands.NewSaveStateCommandHandler(c.state, c.store)
}

func (c *CompositionRoot) CreateLoadStateCommandHandler() commands.LoadStateCommandHandler {
	return commands.NewLoadStateCommandHandler(c.store, c.state)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetActiveQueueQueryHandler() queries.GetActiveQueueQueryHandler {
	return queries.NewGetActiveQueueQueryHandler(c.state)
}

func (c *CompositionRoot) CreateGetCurrentServingQueryHandler() queries.GetCurrentServingQueryHandler {
	return queries.NewGetCurrentServingQueryHandler(c.state)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.state)
}

func (c *CompositionRoot) CreateVerifyDriverLicenseQueryHandler() queries.VerifyDriverLicenseQueryHandler {
	return queries.NewVerifyDriverLicenseQueryHandler(c.state)
}

// CreateHTTPHandlers collects every use case the HTTP API exposes.
func (c *CompositionRoot) CreateHTTPHandlers() cateringhttp.Handlers {
	return cateringhttp.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		PrepareOrder:       c.CreatePrepareOrderCommandHandler(),
		AssignDelivery:     c.CreateAssignDeliveryCommandHandler(),
		AutoAssignDelivery: c.CreateAutoAssignDeliveryCommandHandler(),
		ConfirmDelivery:    c.CreateConfirmDeliveryCommandHandler(),
		SubmitFeedback:     c.CreateSubmitFeedbackCommandHandler(),
		RegisterCustomer:   c.CreateRegisterCustomerCommandHandler(),
		RegisterDriver:     c.CreateRegisterDriverCommandHandler(),
		RegisterVehicle:    c.CreateRegisterVehicleCommandHandler(),
		RegisterChef:       c.CreateRegisterChefCommandHandler(),
		ResetMonthly:       c.CreateResetMonthlyOrdersCommandHandler(),
		SaveState:          c.CreateSaveStateCommandHandler(),

		GetMenu:             c.CreateGetMenuQueryHandler(),
		GetActiveQueue:      c.CreateGetActiveQueueQueryHandler(),
		GetCurrentServing:   c.CreateGetCurrentServingQueryHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		VerifyDriverLicense: c.CreateVerifyDriverLicenseQueryHandler(),
		GetCustomers:        queries.NewGetAllCustomersQueryHandler(c.state),
		GetDrivers:          queries.NewGetAllDriversQueryHandler(c.state),
		GetVehicles:         queries.NewGetAllVehiclesQueryHandler(c.state),
		GetChefs:            queries.NewGetAllChefsQueryHandler(c.state),
		GetFeedbacks:        queries.NewGetAllFeedbacksQueryHandler(c.state),
	}
}

func (c *CompositionRoot) registryUoWFactory() commands.RegistryUoWFactory {
	return FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
}

// discardStore backs the memory driver: it starts empty and keeps nothing.
type discardStore struct{}

func (discardStore) LoadAll(context.Context) (ports.Snapshot, error) {
	return ports.Snapshot{}, nil
}

func (discardStore) SaveAll(context.Context, ports.Snapshot) error {
	return nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}
