package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

// AnalyticsRepository holds the read-only aggregate queries. Nothing
// here mutates state.
type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

func (r *AnalyticsRepository) OrdersByStatus(restID uint) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status entity.OrderStatus
		Count  int64
	}
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Where("restaurant_id = ?", restID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

type OrderTotals struct {
	TotalOrders    int64
	DeliveredCount int64
	Revenue        float64 // delivered orders only
}

func (r *AnalyticsRepository) RestaurantOrderTotals(restID uint) (OrderTotals, error) {
	return r.orderTotals(r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID))
}

func (r *AnalyticsRepository) CustomerOrderTotals(customerID uint) (OrderTotals, error) {
	return r.orderTotals(r.DB.Model(&entity.Order{}).Where("customer_id = ?", customerID))
}

func (r *AnalyticsRepository) orderTotals(q *gorm.DB) (OrderTotals, error) {
	var row struct {
		TotalOrders    int64
		DeliveredCount int64
		Revenue        float64
	}
	err := q.Select(
		"COUNT(*) AS total_orders, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS delivered_count, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN total ELSE 0 END), 0) AS revenue",
		entity.StatusDelivered, entity.StatusDelivered,
	).Scan(&row).Error
	return OrderTotals{row.TotalOrders, row.DeliveredCount, row.Revenue}, err
}

type PopularItem struct {
	MenuItemID    uint   `json:"menuItemId"`
	Name          string `json:"name"`
	TotalQuantity int64  `json:"totalQuantitySold"`
}

// TopMenuItems ranks a restaurant's items by total quantity ordered.
func (r *AnalyticsRepository) TopMenuItems(restID uint, limit int) ([]PopularItem, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []PopularItem
	err := r.DB.Table("order_items AS oi").
		Select("mi.id AS menu_item_id, mi.name, SUM(oi.quantity) AS total_quantity").
		Joins("JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Where("mi.restaurant_id = ? AND oi.deleted_at IS NULL", restID).
		Group("mi.id, mi.name").
		Order("total_quantity DESC, mi.id ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *AnalyticsRepository) FirstOrderAt(customerID uint) (*time.Time, error) {
	var row struct{ First *time.Time }
	err := r.DB.Model(&entity.Order{}).
		Select("MIN(created_at) AS first").
		Where("customer_id = ?", customerID).
		Scan(&row).Error
	return row.First, err
}

type FavoriteRow struct {
	Name  string `json:"name"`
	Count int64  `json:"deliveredOrders"`
}

// FavoriteRestaurant is the mode of restaurant over the customer's
// delivered orders; ties go to the restaurant ordered from most
// recently.
func (r *AnalyticsRepository) FavoriteRestaurant(customerID uint) (*FavoriteRow, error) {
	var rows []FavoriteRow
	err := r.DB.Table("orders AS o").
		Select("r.name AS name, COUNT(*) AS count").
		Joins("JOIN restaurants r ON r.id = o.restaurant_id").
		Where("o.customer_id = ? AND o.status = ? AND o.deleted_at IS NULL", customerID, entity.StatusDelivered).
		Group("r.id, r.name").
		Order("count DESC, MAX(o.created_at) DESC").
		Limit(1).
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

// FavoriteCuisine: same mode/tie-break, grouped by cuisine type.
func (r *AnalyticsRepository) FavoriteCuisine(customerID uint) (*FavoriteRow, error) {
	var rows []FavoriteRow
	err := r.DB.Table("orders AS o").
		Select("r.cuisine_type AS name, COUNT(*) AS count").
		Joins("JOIN restaurants r ON r.id = o.restaurant_id").
		Where("o.customer_id = ? AND o.status = ? AND o.deleted_at IS NULL", customerID, entity.StatusDelivered).
		Group("r.cuisine_type").
		Order("count DESC, MAX(o.created_at) DESC").
		Limit(1).
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

type TrendingRestaurant struct {
	RestaurantID  uint    `json:"restaurantId"`
	Name          string  `json:"name"`
	CuisineType   string  `json:"cuisineType"`
	Rating        float64 `json:"rating"`
	RecentOrders  int64   `json:"recentOrders"`
	RecentRevenue float64 `json:"recentRevenue"`
}

// TrendingRestaurants ranks restaurants by order volume since the
// cutoff. Every order in the window counts regardless of its status;
// the recency window is what makes the ranking "trending".
func (r *AnalyticsRepository) TrendingRestaurants(since time.Time, limit int) ([]TrendingRestaurant, error) {
	var out []TrendingRestaurant
	err := r.DB.Table("orders AS o").
		Select("r.id AS restaurant_id, r.name, r.cuisine_type, r.rating, "+
			"COUNT(*) AS recent_orders, COALESCE(SUM(o.total), 0) AS recent_revenue").
		Joins("JOIN restaurants r ON r.id = o.restaurant_id").
		Where("o.created_at >= ? AND o.deleted_at IS NULL", since).
		Group("r.id, r.name, r.cuisine_type, r.rating").
		Order("recent_orders DESC, r.id ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *AnalyticsRepository) CountReviewsForCustomer(customerID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Review{}).Where("customer_id = ?", customerID).Count(&cnt).Error
	return cnt, err
}
