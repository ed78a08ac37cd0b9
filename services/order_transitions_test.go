package services

import (
	"context"
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionHappyPath(t *testing.T) {
	e := newTestEnv(t)
	cust := e.customer(t, "frank")
	rest := e.restaurant(t, "Noodle Bar", "Japanese")
	item := e.menuItem(t, rest.ID, "Ramen", 13.00)

	order := e.deliveredOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
	assert.Equal(t, entity.StatusDelivered, order.Status)

	// One row per status write, initial PLACED included.
	var changes []entity.OrderStatusChange
	require.NoError(t, e.db.Where("order_id = ?", order.ID).Order("id ASC").Find(&changes).Error)
	require.Len(t, changes, 5)
	assert.Equal(t, entity.StatusPlaced, changes[0].ToStatus)
	assert.Equal(t, entity.StatusDelivered, changes[4].ToStatus)
	assert.Equal(t, entity.StatusOutForDelivery, changes[4].FromStatus)
}

func TestTransitionRejectsSkippingStates(t *testing.T) {
	e := newTestEnv(t)
	cust := e.customer(t, "gina")
	rest := e.restaurant(t, "Taqueria", "Mexican")
	item := e.menuItem(t, rest.ID, "Tacos", 6.50)

	order := e.placedOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 2})

	// PLACED → PREPARING skips CONFIRMED.
	_, err := e.orders.Transition(context.Background(), order.ID, entity.StatusPreparing)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// State unchanged after the rejected transition.
	var stored entity.Order
	require.NoError(t, e.db.First(&stored, order.ID).Error)
	assert.Equal(t, entity.StatusPlaced, stored.Status)
}

func TestTransitionTerminalStates(t *testing.T) {
	e := newTestEnv(t)
	cust := e.customer(t, "hank")
	rest := e.restaurant(t, "Deli", "American")
	item := e.menuItem(t, rest.ID, "Sandwich", 7.25)
	ctx := context.Background()

	delivered := e.deliveredOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
	for _, to := range entity.OrderStatuses() {
		_, err := e.orders.Transition(ctx, delivered.ID, to)
		assert.True(t, apperr.IsKind(err, apperr.KindConflict), "DELIVERED must not move to %s", to)
	}

	cancelled := e.placedOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
	_, err := e.orders.Transition(ctx, cancelled.ID, entity.StatusCancelled)
	require.NoError(t, err)
	_, err = e.orders.Transition(ctx, cancelled.ID, entity.StatusConfirmed)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestTransitionCancellableFromEveryNonTerminalState(t *testing.T) {
	e := newTestEnv(t)
	cust := e.customer(t, "iris")
	rest := e.restaurant(t, "Curry House", "Indian")
	item := e.menuItem(t, rest.ID, "Biryani", 14.00)
	ctx := context.Background()

	steps := []entity.OrderStatus{
		entity.StatusConfirmed, entity.StatusPreparing, entity.StatusOutForDelivery,
	}
	for i := 0; i <= len(steps); i++ {
		order := e.placedOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
		for _, s := range steps[:i] {
			_, err := e.orders.Transition(ctx, order.ID, s)
			require.NoError(t, err)
		}
		updated, err := e.orders.Transition(ctx, order.ID, entity.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, updated.Status)
	}
}

func TestTransitionGuardRejectsStaleWrite(t *testing.T) {
	e := newTestEnv(t)
	cust := e.customer(t, "jack")
	rest := e.restaurant(t, "Pizzeria", "Italian")
	item := e.menuItem(t, rest.ID, "Diavola", 10.50)

	order := e.placedOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})

	// A competing writer moves the order first; the guarded update
	// against the stale PLACED read must touch nothing.
	repo := repository.NewOrderRepository(e.db)
	affected, err := repo.UpdateStatusGuard(e.db, order.ID, entity.StatusPlaced, entity.StatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	affected, err = repo.UpdateStatusGuard(e.db, order.ID, entity.StatusPlaced, entity.StatusCancelled)
	require.NoError(t, err)
	assert.Zero(t, affected)

	var stored entity.Order
	require.NoError(t, e.db.First(&stored, order.ID).Error)
	assert.Equal(t, entity.StatusConfirmed, stored.Status)
}

func TestTransitionUnknownOrderAndStatus(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	_, err := e.orders.Transition(ctx, 9999, entity.StatusConfirmed)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	cust := e.customer(t, "kate")
	rest := e.restaurant(t, "Kebab Stand", "Turkish")
	item := e.menuItem(t, rest.ID, "Durum", 5.75)
	order := e.placedOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})

	_, err = e.orders.Transition(ctx, order.ID, entity.OrderStatus("SHIPPED"))
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
