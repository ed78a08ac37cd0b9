package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	for _, s := range OrderStatuses() {
		assert.True(t, s.Valid(), "%s must be valid", s)
	}
	assert.False(t, OrderStatus("SHIPPED").Valid())
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("placed").Valid(), "statuses are case sensitive")
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	for _, s := range []OrderStatus{StatusPlaced, StatusConfirmed, StatusPreparing, StatusOutForDelivery} {
		assert.False(t, s.Terminal(), "%s must not be terminal", s)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	// The only legal forward moves, one step at a time.
	forward := map[OrderStatus]OrderStatus{
		StatusPlaced:         StatusConfirmed,
		StatusConfirmed:      StatusPreparing,
		StatusPreparing:      StatusOutForDelivery,
		StatusOutForDelivery: StatusDelivered,
	}

	for from, to := range forward {
		assert.True(t, from.CanTransitionTo(to), "%s -> %s", from, to)
	}

	for _, from := range OrderStatuses() {
		for _, to := range OrderStatuses() {
			legal := forward[from] == to || (!from.Terminal() && to == StatusCancelled)
			assert.Equal(t, legal, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatesHaveNoOutgoingEdges(t *testing.T) {
	for _, from := range []OrderStatus{StatusDelivered, StatusCancelled} {
		for _, to := range OrderStatuses() {
			assert.False(t, from.CanTransitionTo(to), "%s -> %s must be illegal", from, to)
		}
	}
}

func TestOrderStatusNeverTransitionsToItself(t *testing.T) {
	for _, s := range OrderStatuses() {
		assert.False(t, s.CanTransitionTo(s))
	}
}
