package queries_test

import (
	"testing"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQueryHandlers(t *testing.T) {
	state := seededState(t)
	query := queries.NewListQuery()

	t.Run("customers", func(t *testing.T) {
		customers, err := queries.NewGetAllCustomersQueryHandler(state).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []queries.CustomerResponse{{ID: "C1", OrdersThisMonth: 4}}, customers)
	})

	t.Run("drivers in registration order", func(t *testing.T) {
		drivers, err := queries.NewGetAllDriversQueryHandler(state).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []queries.DriverResponse{
			{ID: "D1", Name: "Karim", Available: false},
			{ID: "D2", Name: "Jamal", Available: true},
		}, drivers)
	})

	t.Run("vehicles", func(t *testing.T) {
		vehicles, err := queries.NewGetAllVehiclesQueryHandler(state).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []queries.VehicleResponse{{ID: "V1", Type: "Bike", Available: false}}, vehicles)
	})

	t.Run("chefs", func(t *testing.T) {
		chefs, err := queries.NewGetAllChefsQueryHandler(state).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []queries.ChefResponse{{Name: "Rahim", Available: true}}, chefs)
	})

	t.Run("feedbacks", func(t *testing.T) {
		feedbacks, err := queries.NewGetAllFeedbacksQueryHandler(state).Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, feedbacks, 1)
		assert.Equal(t, "001", feedbacks[0].OrderNumber)
		assert.Equal(t, 5, feedbacks[0].Rating)
		assert.Equal(t, "hot and fast", feedbacks[0].Comment)
		assert.NotEmpty(t, feedbacks[0].ID)
	})

	t.Run("menu", func(t *testing.T) {
		items, err := queries.NewGetMenuQueryHandler(menu.DefaultCatalog()).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Len(t, items, 10)
		assert.Equal(t, menu.Item{Name: "Chicken Biryani", Price: 250}, items[0])
	})

	t.Run("zero query", func(t *testing.T) {
		_, err := queries.NewGetAllDriversQueryHandler(state).Handle(t.Context(), queries.ListQuery{})

		require.ErrorIs(t, err, queries.ErrListQueryIsNotConstructed)
	})
}
