package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// openTestDB opens a fresh in-memory database per test. The shared
// cache keeps gorm's pooled connections on the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Customer{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderStatusChange{},
		&entity.Review{},
	))
	return db
}

type testEnv struct {
	db        *gorm.DB
	orders    *OrderService
	reviews   *ReviewService
	rating    *RatingService
	analytics *AnalyticsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := openTestDB(t)

	custRepo := repository.NewCustomerRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	rating := NewRatingService(reviewRepo, restRepo)
	return &testEnv{
		db:        db,
		orders:    NewOrderService(db, orderRepo, menuRepo, custRepo, restRepo, nil),
		reviews:   NewReviewService(db, reviewRepo, orderRepo, rating, nil),
		rating:    rating,
		analytics: NewAnalyticsService(db, analyticsRepo, restRepo, custRepo, reviewRepo, nil, time.Minute),
	}
}

func (e *testEnv) customer(t *testing.T, name string) *entity.Customer {
	t.Helper()
	c := &entity.Customer{
		Name:        name,
		Email:       fmt.Sprintf("%s-%d@example.com", name, testDBSeq.Add(1)),
		PhoneNumber: "+1 555 0100",
		Address:     "1 Test Lane",
		IsActive:    true,
	}
	require.NoError(t, e.db.Create(c).Error)
	return c
}

func (e *testEnv) restaurant(t *testing.T, name, cuisine string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		Name:        name,
		CuisineType: cuisine,
		Address:     "2 Test Street",
		PhoneNumber: "+1 555 0200",
		IsActive:    true,
		OpeningTime: "09:00",
		ClosingTime: "22:00",
	}
	require.NoError(t, e.db.Create(r).Error)
	return r
}

func (e *testEnv) menuItem(t *testing.T, restID uint, name string, price float64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{
		Name:         name,
		Price:        price,
		Category:     "Main",
		IsAvailable:  true,
		RestaurantID: restID,
	}
	require.NoError(t, e.db.Create(m).Error)
	return m
}

// placedOrder places an order through the service.
func (e *testEnv) placedOrder(t *testing.T, custID, restID uint, items ...OrderItemIn) *entity.Order {
	t.Helper()
	o, err := e.orders.PlaceOrder(context.Background(), custID, &PlaceOrderReq{
		RestaurantID:    restID,
		DeliveryAddress: "3 Delivery Road",
		Items:           items,
	})
	require.NoError(t, err)
	return o
}

// deliveredOrder walks a placed order through the full happy path.
func (e *testEnv) deliveredOrder(t *testing.T, custID, restID uint, items ...OrderItemIn) *entity.Order {
	t.Helper()
	o := e.placedOrder(t, custID, restID, items...)
	for _, s := range []entity.OrderStatus{
		entity.StatusConfirmed, entity.StatusPreparing,
		entity.StatusOutForDelivery, entity.StatusDelivered,
	} {
		var err error
		o, err = e.orders.Transition(context.Background(), o.ID, s)
		require.NoError(t, err)
	}
	return o
}
