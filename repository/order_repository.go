package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderTx reads an order on an explicit transaction handle.
func (r *OrderRepository) GetOrderTx(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID           uint               `json:"id"`
	RestaurantID uint               `json:"restaurantId"`
	CustomerID   uint               `json:"customerId"`
	Total        float64            `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListForCustomer(customerID uint, status *entity.OrderStatus, page, limit int) ([]OrderSummary, int64, error) {
	return r.list(r.DB.Model(&entity.Order{}).Where("customer_id = ?", customerID), status, page, limit)
}

func (r *OrderRepository) ListForRestaurant(restID uint, status *entity.OrderStatus, page, limit int) ([]OrderSummary, int64, error) {
	return r.list(r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID), status, page, limit)
}

func (r *OrderRepository) list(q *gorm.DB, status *entity.OrderStatus, page, limit int) ([]OrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	if status != nil && *status != "" {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := q.Select("id, restaurant_id, customer_id, total, status, created_at").
		Order("id DESC").Limit(limit).Offset((page - 1) * limit).
		Scan(&out).Error
	return out, total, err
}

// UpdateStatusGuard is the compare-and-write: the status row is only
// touched if it still holds the value the caller checked. RowsAffected
// zero means a concurrent transition won.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, quantity, price_at_order, special_request, menu_item_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// ---------------- Status history ----------------

func (r *OrderRepository) CreateStatusChange(tx *gorm.DB, sc *entity.OrderStatusChange) error {
	return tx.Create(sc).Error
}

func (r *OrderRepository) GetStatusChanges(orderID uint) ([]entity.OrderStatusChange, error) {
	var out []entity.OrderStatusChange
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&out).Error
	return out, err
}
