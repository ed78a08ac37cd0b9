package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/cache"
	"backend/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	CustRepo *repository.CustomerRepository
	RestRepo *repository.RestaurantRepository
	Cache    *cache.Cache
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	custRepo *repository.CustomerRepository,
	restRepo *repository.RestaurantRepository,
	c *cache.Cache,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, CustRepo: custRepo, RestRepo: restRepo, Cache: c}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID     uint   `json:"menuItemId" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
	SpecialRequest string `json:"specialRequest"`
}

type PlaceOrderReq struct {
	RestaurantID        uint          `json:"restaurantId" binding:"required"`
	DeliveryAddress     string        `json:"deliveryAddress" binding:"required,min=5"`
	SpecialInstructions string        `json:"specialInstructions"`
	Items               []OrderItemIn `json:"items"`
}

// PlaceOrder builds a priced, immutable order from menu-item
// references. All preconditions are checked before any write; the
// order, its items and the initial status row are created in one
// transaction, with prices snapshotted inside that same transaction.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID uint, req *PlaceOrderReq) (*entity.Order, error) {
	customer, err := s.CustRepo.FindByID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("customer", customerID)
		}
		return nil, err
	}
	if !customer.IsActive {
		return nil, apperr.Validation("customer", "is_active", "customer account %d is inactive", customerID)
	}

	restaurant, err := s.RestRepo.FindByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant", req.RestaurantID)
		}
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, apperr.Validation("restaurant", "is_active", "restaurant %d is not active", req.RestaurantID)
	}

	if len(req.Items) == 0 {
		return nil, apperr.Validation("order", "items", "at least one item is required")
	}
	menuIDs := make([]uint, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, apperr.Validation("order_item", "quantity",
				"quantity must be at least 1 for menu item %d, got %d", it.MenuItemID, it.Quantity)
		}
		menuIDs = append(menuIDs, it.MenuItemID)
	}

	var order entity.Order
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Snapshot reads happen on tx so a concurrent price change
		// either fully precedes or fully follows this order.
		menus, err := s.MenuRepo.GetBasicsByIDs(tx, menuIDs)
		if err != nil {
			return err
		}
		byID := make(map[uint]entity.MenuItem, len(menus))
		for _, m := range menus {
			byID[m.ID] = m
		}

		var total float64
		for _, it := range req.Items {
			m, ok := byID[it.MenuItemID]
			if !ok {
				return apperr.NotFound("menu_item", it.MenuItemID)
			}
			if m.RestaurantID != req.RestaurantID {
				return apperr.Validation("order_item", "menu_item_id",
					"menu item %d does not belong to restaurant %d", it.MenuItemID, req.RestaurantID)
			}
			if !m.IsAvailable {
				return apperr.Validation("order_item", "menu_item_id",
					"menu item %d is not available", it.MenuItemID)
			}
			total += m.Price * float64(it.Quantity)
		}

		order = entity.Order{
			Status:              entity.StatusPlaced,
			Total:               total,
			DeliveryAddress:     req.DeliveryAddress,
			SpecialInstructions: req.SpecialInstructions,
			CustomerID:          customerID,
			RestaurantID:        req.RestaurantID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range req.Items {
			oi := entity.OrderItem{
				Quantity:       it.Quantity,
				PriceAtOrder:   byID[it.MenuItemID].Price,
				SpecialRequest: it.SpecialRequest,
				OrderID:        order.ID,
				MenuItemID:     it.MenuItemID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, oi)
		}

		return s.Repo.CreateStatusChange(tx, &entity.OrderStatusChange{
			OrderID:   order.ID,
			ToStatus:  entity.StatusPlaced,
			ChangedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.invalidateOrderViews(ctx, req.RestaurantID, customerID)
	return &order, nil
}

// invalidateOrderViews drops cached order lists and analytics touched
// by an order mutation. Best-effort only.
func (s *OrderService) invalidateOrderViews(ctx context.Context, restaurantID, customerID uint) {
	s.Cache.Invalidate(ctx, cache.NSOrders)
	s.Cache.Invalidate(ctx, cache.NSAnalytics,
		fmt.Sprintf("restaurant:%d", restaurantID),
		fmt.Sprintf("customer:%d", customerID))
}

// ----- List & Detail -----

type OrderDetail struct {
	ID                  uint                       `json:"id"`
	Status              entity.OrderStatus         `json:"status"`
	Total               float64                    `json:"total"`
	DeliveryAddress     string                     `json:"deliveryAddress"`
	SpecialInstructions string                     `json:"specialInstructions"`
	CustomerID          uint                       `json:"customerId"`
	RestaurantID        uint                       `json:"restaurantId"`
	CreatedAt           time.Time                  `json:"createdAt"`
	Items               []entity.OrderItem         `json:"items"`
	StatusHistory       []entity.OrderStatusChange `json:"statusHistory"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order", orderID)
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	history, err := s.Repo.GetStatusChanges(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, Status: o.Status, Total: o.Total,
		DeliveryAddress: o.DeliveryAddress, SpecialInstructions: o.SpecialInstructions,
		CustomerID: o.CustomerID, RestaurantID: o.RestaurantID, CreatedAt: o.CreatedAt,
		Items: items, StatusHistory: history,
	}, nil
}

type OrderListOut struct {
	Items []repository.OrderSummary `json:"items"`
	Total int64                     `json:"total"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
}

func (s *OrderService) ListForCustomer(customerID uint, status *entity.OrderStatus, page, limit int) (*OrderListOut, error) {
	ok, err := s.CustRepo.Exists(customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("customer", customerID)
	}
	items, total, err := s.Repo.ListForCustomer(customerID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) ListForRestaurant(restID uint, status *entity.OrderStatus, page, limit int) (*OrderListOut, error) {
	ok, err := s.RestRepo.Exists(restID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("restaurant", restID)
	}
	items, total, err := s.Repo.ListForRestaurant(restID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}
