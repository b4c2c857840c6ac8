package services_test

import (
	"math/rand/v2"
	"testing"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderQueue_NextPosition(t *testing.T) {
	queue := services.NewOrderQueue()

	assert.Equal(t, 1, queue.NextPosition(nil))

	placed := newOrder(t, 1, 1)
	preparing := newOrder(t, 2, 2)
	require.NoError(t, preparing.MarkPreparing(order.Normal, []string{"Rahim"}, 10))
	ready := readyOrder(t, 3, 3)

	assert.Equal(t, 3, queue.NextPosition([]*order.Order{placed, preparing, ready}))
}

func TestOrderQueue_PlacementsArePermutation(t *testing.T) {
	queue := services.NewOrderQueue()

	for range 20 {
		n := 1 + rand.IntN(15)
		orders := make([]*order.Order, 0, n)
		for i := range n {
			o := newOrder(t, i+1, queue.NextPosition(orders))
			if rand.IntN(2) == 0 {
				require.NoError(t, o.MarkPreparing(order.Priority, []string{"Karim"}, 5))
			}
			orders = append(orders, o)
		}

		seen := make(map[int]bool, n)
		for _, o := range orders {
			seen[o.QueuePosition()] = true
		}
		for position := 1; position <= n; position++ {
			assert.True(t, seen[position], "position %d missing for %d orders", position, n)
		}
		assert.Len(t, seen, n)
	}
}

func TestOrderQueue_Compact(t *testing.T) {
	queue := services.NewOrderQueue()

	delivered := outForDelivery(t, 1, 1, "D1", "V1")
	second := newOrder(t, 2, 2)
	third := newOrder(t, 3, 3)
	require.NoError(t, delivered.MarkDelivered())

	moved, err := queue.Compact([]*order.Order{delivered, second, third}, delivered, 1)

	require.NoError(t, err)
	assert.Len(t, moved, 2)
	assert.Equal(t, 0, delivered.QueuePosition())
	assert.Equal(t, 1, second.QueuePosition())
	assert.Equal(t, 2, third.QueuePosition())
}

func TestOrderQueue_CompactKeepsOrdersAhead(t *testing.T) {
	queue := services.NewOrderQueue()

	first := newOrder(t, 1, 1)
	delivered := outForDelivery(t, 2, 2, "D1", "V1")
	last := newOrder(t, 3, 3)
	require.NoError(t, delivered.MarkDelivered())

	moved, err := queue.Compact([]*order.Order{first, delivered, last}, delivered, 2)

	require.NoError(t, err)
	require.Len(t, moved, 1)
	assert.True(t, moved[0].IsEqual(last))
	assert.Equal(t, 1, first.QueuePosition())
	assert.Equal(t, 2, last.QueuePosition())
}

func TestOrderQueue_CurrentServing(t *testing.T) {
	queue := services.NewOrderQueue()

	orders := []*order.Order{newOrder(t, 1, 1), newOrder(t, 2, 2)}
	assert.Equal(t, 1, queue.CurrentServing(orders))

	done := outForDelivery(t, 3, 3, "D1", "")
	require.NoError(t, done.MarkDelivered())
	orders = append(orders, done)

	assert.Equal(t, 2, queue.CurrentServing(orders))
}

func TestOrderQueue_Active(t *testing.T) {
	queue := services.NewOrderQueue()

	a := newOrder(t, 1, 3)
	b := readyOrder(t, 2, 1)
	c := newOrder(t, 3, 1)
	d := outForDelivery(t, 4, 2, "D1", "V1")
	gone := outForDelivery(t, 5, 4, "D2", "V2")
	require.NoError(t, gone.MarkDelivered())

	active := queue.Active([]*order.Order{a, b, c, d, gone})

	require.Len(t, active, 4)
	assert.Equal(t, []string{"002", "003", "004", "001"}, []string{
		active[0].Number().String(),
		active[1].Number().String(),
		active[2].Number().String(),
		active[3].Number().String(),
	})
}
