package queries

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/menu"
	"catering/internal/core/ports"
	"catering/internal/pkg/guard"
)

var ErrListQueryIsNotConstructed = errors.New("ListQuery must be created via NewListQuery constructor")

// ListQuery asks for a complete collection in registration order. It is
// shared by the list handlers below.
type ListQuery struct {
	guard guard.ConstructorGuard
}

func NewListQuery() ListQuery {
	return ListQuery{guard: guard.NewConstructorGuard()}
}

func (q ListQuery) Validate() error {
	return q.guard.Validate(ErrListQueryIsNotConstructed)
}

type GetAllCustomersQueryHandler struct {
	reader ports.StateReader
}

func NewGetAllCustomersQueryHandler(reader ports.StateReader) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{reader: reader}
}

func (h GetAllCustomersQueryHandler) Handle(ctx context.Context, query ListQuery) ([]CustomerResponse, error) {
	snapshot, err := read(ctx, h.reader, query)
	if err != nil {
		return nil, err
	}
	return mapAll(snapshot.Customers, newCustomerResponse), nil
}

type GetAllDriversQueryHandler struct {
	reader ports.StateReader
}

func NewGetAllDriversQueryHandler(reader ports.StateReader) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{reader: reader}
}

func (h GetAllDriversQueryHandler) Handle(ctx context.Context, query ListQuery) ([]DriverResponse, error) {
	snapshot, err := read(ctx, h.reader, query)
	if err != nil {
		return nil, err
	}
	return mapAll(snapshot.Drivers, newDriverResponse), nil
}

type GetAllVehiclesQueryHandler struct {
	reader ports.StateReader
}

func NewGetAllVehiclesQueryHandler(reader ports.StateReader) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{reader: reader}
}

func (h GetAllVehiclesQueryHandler) Handle(ctx context.Context, query ListQuery) ([]VehicleResponse, error) {
	snapshot, err := read(ctx, h.reader, query)
	if err != nil {
		return nil, err
	}
	return mapAll(snapshot.Vehicles, newVehicleResponse), nil
}

type GetAllChefsQueryHandler struct {
	reader ports.StateReader
}

func NewGetAllChefsQueryHandler(reader ports.StateReader) GetAllChefsQueryHandler {
	return GetAllChefsQueryHandler{reader: reader}
}

func (h GetAllChefsQueryHandler) Handle(ctx context.Context, query ListQuery) ([]ChefResponse, error) {
	snapshot, err := read(ctx, h.reader, query)
	if err != nil {
		return nil, err
	}
	return mapAll(snapshot.Chefs, newChefResponse), nil
}

type GetAllFeedbacksQueryHandler struct {
	reader ports.StateReader
}

func NewGetAllFeedbacksQueryHandler(reader ports.StateReader) GetAllFeedbacksQueryHandler {
	return GetAllFeedbacksQueryHandler{reader: reader}
}

func (h GetAllFeedbacksQueryHandler) Handle(ctx context.Context, query ListQuery) ([]FeedbackResponse, error) {
	snapshot, err := read(ctx, h.reader, query)
	if err != nil {
		return nil, err
	}
	return mapAll(snapshot.Feedbacks, newFeedbackResponse), nil
}

// GetMenuQueryHandler lists the price table. It needs no state.
type GetMenuQueryHandler struct {
	catalog *menu.Catalog
}

func NewGetMenuQueryHandler(catalog *menu.Catalog) GetMenuQueryHandler {
	return GetMenuQueryHandler{catalog: catalog}
}

func (h GetMenuQueryHandler) Handle(_ context.Context, query ListQuery) ([]menu.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.catalog.Items(), nil
}

func read(ctx context.Context, reader ports.StateReader, query ListQuery) (ports.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return ports.Snapshot{}, err
	}
	return reader.Snapshot(ctx)
}
