package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) seedReview(t *testing.T, restID uint, rating int) {
	t.Helper()
	cust := e.customer(t, "rater")
	item := e.menuItem(t, restID, "Dish", 10.00)
	order := e.deliveredOrder(t, cust.ID, restID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
	require.NoError(t, e.db.Create(&entity.Review{
		Rating: rating, OrderID: order.ID, CustomerID: cust.ID, RestaurantID: restID,
	}).Error)
}

func TestRecomputeZeroReviews(t *testing.T) {
	e := newTestEnv(t)
	rest := e.restaurant(t, "Empty Place", "Fusion")

	rating, err := e.rating.Recompute(e.db, rest.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rating)
}

func TestRecomputeRoundsToOneDecimal(t *testing.T) {
	e := newTestEnv(t)
	rest := e.restaurant(t, "Round Place", "Fusion")

	// Mean of [4, 4, 5] is 4.333…, rounds to 4.3.
	for _, r := range []int{4, 4, 5} {
		e.seedReview(t, rest.ID, r)
	}

	rating, err := e.rating.Recompute(e.db, rest.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.3, rating)

	var stored entity.Restaurant
	require.NoError(t, e.db.First(&stored, rest.ID).Error)
	assert.Equal(t, 4.3, stored.Rating)
}

func TestRecomputeIdempotent(t *testing.T) {
	e := newTestEnv(t)
	rest := e.restaurant(t, "Stable Place", "Fusion")
	for _, r := range []int{2, 5} {
		e.seedReview(t, rest.ID, r)
	}

	first, err := e.rating.Recompute(e.db, rest.ID)
	require.NoError(t, err)
	second, err := e.rating.Recompute(e.db, rest.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 3.5, second)
}
