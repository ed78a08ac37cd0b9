package services

import (
	"context"
	"testing"
	"time"

	"backend/entity"
	"backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantAnalyticsRevenueCountsDeliveredOnly(t *testing.T) {
	e := newTestEnv(t)
	cust := e.customer(t, "spender")
	rest := e.restaurant(t, "Revenue Place", "Greek")
	gyros := e.menuItem(t, rest.ID, "Gyros", 8.00)
	salad := e.menuItem(t, rest.ID, "Greek Salad", 6.00)
	ctx := context.Background()

	// Two delivered orders: 16.00 + 6.00.
	e.deliveredOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: gyros.ID, Quantity: 2})
	e.deliveredOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: salad.ID, Quantity: 1})

	// One cancelled, one still in flight. Neither counts as revenue.
	cancelled := e.placedOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: gyros.ID, Quantity: 5})
	_, err := e.orders.Transition(ctx, cancelled.ID, entity.StatusCancelled)
	require.NoError(t, err)
	e.placedOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: salad.ID, Quantity: 4})

	out, err := e.analytics.RestaurantAnalytics(ctx, rest.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(4), out.TotalOrders)
	assert.Equal(t, 22.00, out.TotalRevenue)
	assert.Equal(t, 11.00, out.AverageOrderValue)
	assert.Equal(t, int64(2), out.OrdersByStatus[entity.StatusDelivered])
	assert.Equal(t, int64(1), out.OrdersByStatus[entity.StatusCancelled])
	assert.Equal(t, int64(1), out.OrdersByStatus[entity.StatusPlaced])
	assert.Zero(t, out.ReviewCount)
	assert.Zero(t, out.AverageRating)
}

func TestRestaurantAnalyticsTopMenuItems(t *testing.T) {
	e := newTestEnv(t)
	cust := e.customer(t, "regular")
	rest := e.restaurant(t, "Popularity Place", "Korean")
	bibimbap := e.menuItem(t, rest.ID, "Bibimbap", 12.00)
	bulgogi := e.menuItem(t, rest.ID, "Bulgogi", 15.00)
	kimchi := e.menuItem(t, rest.ID, "Kimchi", 4.00)

	e.placedOrder(t, cust.ID, rest.ID,
		OrderItemIn{MenuItemID: bibimbap.ID, Quantity: 2},
		OrderItemIn{MenuItemID: kimchi.ID, Quantity: 1},
	)
	e.placedOrder(t, cust.ID, rest.ID,
		OrderItemIn{MenuItemID: bulgogi.ID, Quantity: 4},
		OrderItemIn{MenuItemID: bibimbap.ID, Quantity: 1},
	)

	out, err := e.analytics.RestaurantAnalytics(context.Background(), rest.ID)
	require.NoError(t, err)

	require.Len(t, out.TopMenuItems, 3)
	assert.Equal(t, "Bulgogi", out.TopMenuItems[0].Name)
	assert.Equal(t, int64(4), out.TopMenuItems[0].TotalQuantity)
	assert.Equal(t, "Bibimbap", out.TopMenuItems[1].Name)
	assert.Equal(t, int64(3), out.TopMenuItems[1].TotalQuantity)
	assert.Equal(t, "Kimchi", out.TopMenuItems[2].Name)
}

func TestRestaurantAnalyticsEmptyHistory(t *testing.T) {
	e := newTestEnv(t)
	rest := e.restaurant(t, "Brand New", "Vegan")

	out, err := e.analytics.RestaurantAnalytics(context.Background(), rest.ID)
	require.NoError(t, err)
	assert.Zero(t, out.TotalOrders)
	assert.Zero(t, out.TotalRevenue)
	assert.Zero(t, out.AverageOrderValue)
	assert.Empty(t, out.TopMenuItems)
	assert.Empty(t, out.OrdersByStatus)
}

func TestAnalyticsUnknownSubjects(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	_, err := e.analytics.RestaurantAnalytics(ctx, 9999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = e.analytics.CustomerAnalytics(ctx, 9999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCustomerAnalytics(t *testing.T) {
	e := newTestEnv(t)
	cust := e.customer(t, "analyzed")
	indian := e.restaurant(t, "Indian Spot", "Indian")
	chinese := e.restaurant(t, "Chinese Spot", "Chinese")
	curry := e.menuItem(t, indian.ID, "Curry", 10.00)
	noodles := e.menuItem(t, chinese.ID, "Noodles", 8.00)
	ctx := context.Background()

	// Two delivered orders at the Indian spot, one at the Chinese
	// spot, one cancelled (spend must ignore it).
	e.deliveredOrder(t, cust.ID, indian.ID, OrderItemIn{MenuItemID: curry.ID, Quantity: 1})
	e.deliveredOrder(t, cust.ID, indian.ID, OrderItemIn{MenuItemID: curry.ID, Quantity: 2})
	e.deliveredOrder(t, cust.ID, chinese.ID, OrderItemIn{MenuItemID: noodles.ID, Quantity: 1})
	cancelled := e.placedOrder(t, cust.ID, chinese.ID, OrderItemIn{MenuItemID: noodles.ID, Quantity: 3})
	_, err := e.orders.Transition(ctx, cancelled.ID, entity.StatusCancelled)
	require.NoError(t, err)

	order := e.deliveredOrder(t, cust.ID, indian.ID, OrderItemIn{MenuItemID: curry.ID, Quantity: 1})
	_, err = e.reviews.AddReview(ctx, order.ID, cust.ID, 5, "")
	require.NoError(t, err)

	out, err := e.analytics.CustomerAnalytics(ctx, cust.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(5), out.TotalOrders)
	assert.Equal(t, 48.00, out.TotalSpent) // 10 + 20 + 8 + 10
	require.NotNil(t, out.FavoriteRestaurant)
	assert.Equal(t, "Indian Spot", out.FavoriteRestaurant.Name)
	assert.Equal(t, int64(3), out.FavoriteRestaurant.Count)
	require.NotNil(t, out.FavoriteCuisine)
	assert.Equal(t, "Indian", out.FavoriteCuisine.Name)
	assert.Equal(t, int64(1), out.ReviewCount)
	assert.Greater(t, out.OrderFrequency, 0.0)
}

func TestCustomerAnalyticsFavoriteTieBreakByRecency(t *testing.T) {
	e := newTestEnv(t)
	cust := e.customer(t, "tied")
	older := e.restaurant(t, "Older Favorite", "Thai")
	newer := e.restaurant(t, "Newer Favorite", "Vietnamese")
	padThai := e.menuItem(t, older.ID, "Pad Thai", 9.00)
	pho := e.menuItem(t, newer.ID, "Pho", 10.00)

	o1 := e.deliveredOrder(t, cust.ID, older.ID, OrderItemIn{MenuItemID: padThai.ID, Quantity: 1})
	o2 := e.deliveredOrder(t, cust.ID, newer.ID, OrderItemIn{MenuItemID: pho.ID, Quantity: 1})

	// Equal delivered-order counts; push the second restaurant's
	// order later so recency decides.
	base := time.Now()
	require.NoError(t, e.db.Model(&entity.Order{}).Where("id = ?", o1.ID).
		Update("created_at", base.Add(-48*time.Hour)).Error)
	require.NoError(t, e.db.Model(&entity.Order{}).Where("id = ?", o2.ID).
		Update("created_at", base).Error)

	out, err := e.analytics.CustomerAnalytics(context.Background(), cust.ID)
	require.NoError(t, err)
	require.NotNil(t, out.FavoriteRestaurant)
	assert.Equal(t, "Newer Favorite", out.FavoriteRestaurant.Name)
}

func TestCustomerAnalyticsEmptyHistory(t *testing.T) {
	e := newTestEnv(t)
	cust := e.customer(t, "newbie")

	out, err := e.analytics.CustomerAnalytics(context.Background(), cust.ID)
	require.NoError(t, err)
	assert.Zero(t, out.TotalOrders)
	assert.Zero(t, out.TotalSpent)
	assert.Nil(t, out.FavoriteRestaurant)
	assert.Nil(t, out.FavoriteCuisine)
	assert.Zero(t, out.OrderFrequency)
	assert.Zero(t, out.ReviewCount)
}

func TestTrendingRestaurants(t *testing.T) {
	e := newTestEnv(t)
	cust := e.customer(t, "trendy")
	busy := e.restaurant(t, "Busy Corner", "Lebanese")
	quiet := e.restaurant(t, "Quiet Corner", "Lebanese")
	stale := e.restaurant(t, "Stale Corner", "Lebanese")
	shawarma := e.menuItem(t, busy.ID, "Shawarma", 7.00)
	falafel := e.menuItem(t, quiet.ID, "Falafel", 5.00)
	mezze := e.menuItem(t, stale.ID, "Mezze", 9.00)
	ctx := context.Background()

	// Three recent orders at the busy place. One is cancelled:
	// trending measures order volume, not outcomes.
	e.placedOrder(t, cust.ID, busy.ID, OrderItemIn{MenuItemID: shawarma.ID, Quantity: 1})
	e.placedOrder(t, cust.ID, busy.ID, OrderItemIn{MenuItemID: shawarma.ID, Quantity: 1})
	cancelled := e.placedOrder(t, cust.ID, busy.ID, OrderItemIn{MenuItemID: shawarma.ID, Quantity: 1})
	_, err := e.orders.Transition(ctx, cancelled.ID, entity.StatusCancelled)
	require.NoError(t, err)

	e.placedOrder(t, cust.ID, quiet.ID, OrderItemIn{MenuItemID: falafel.ID, Quantity: 1})

	// The stale place only has an order outside the window.
	old := e.placedOrder(t, cust.ID, stale.ID, OrderItemIn{MenuItemID: mezze.ID, Quantity: 1})
	require.NoError(t, e.db.Model(&entity.Order{}).Where("id = ?", old.ID).
		Update("created_at", time.Now().AddDate(0, 0, -30)).Error)

	out, err := e.analytics.TrendingRestaurants(ctx, 7, 10)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Busy Corner", out[0].Name)
	assert.Equal(t, int64(3), out[0].RecentOrders)
	assert.Equal(t, 21.00, out[0].RecentRevenue)
	assert.Equal(t, "Quiet Corner", out[1].Name)
	assert.Equal(t, int64(1), out[1].RecentOrders)
	assert.Equal(t, 5.00, out[1].RecentRevenue)
}

func TestTrendingRestaurantsClampsParams(t *testing.T) {
	e := newTestEnv(t)
	cust := e.customer(t, "clamper")
	rest := e.restaurant(t, "Solo Spot", "Ethiopian")
	item := e.menuItem(t, rest.ID, "Injera", 6.00)
	e.placedOrder(t, cust.ID, rest.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})

	// Out-of-range window and limit fall back to the defaults instead
	// of erroring or returning nothing.
	out, err := e.analytics.TrendingRestaurants(context.Background(), -1, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Solo Spot", out[0].Name)
}

func TestOrderFrequency(t *testing.T) {
	now := time.Now()

	t.Run("no orders", func(t *testing.T) {
		assert.Zero(t, orderFrequency(0, nil, now))
	})

	t.Run("short history counts as one window", func(t *testing.T) {
		first := now.Add(-24 * time.Hour)
		assert.Equal(t, 3.0, orderFrequency(3, &first, now))
	})

	t.Run("orders spread over windows", func(t *testing.T) {
		first := now.Add(-60 * 24 * time.Hour) // two 30-day windows
		assert.Equal(t, 3.0, orderFrequency(6, &first, now))
	})
}
