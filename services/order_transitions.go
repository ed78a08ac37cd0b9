package services

import (
	"context"
	"errors"
	"time"

	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

// Transition moves an order to the requested status. The read, the
// legality check and the write run in one transaction, and the write
// itself is guarded on the status still matching the value that was
// checked; a transition raced by a concurrent commit fails with a
// conflict instead of overwriting it.
func (s *OrderService) Transition(ctx context.Context, orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	if !to.Valid() {
		return nil, apperr.Validation("order", "status", "unknown order status %q", string(to))
	}

	var order *entity.Order
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderTx(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order", orderID)
			}
			return err
		}

		from := o.Status
		if !from.CanTransitionTo(to) {
			return apperr.Conflict("order", orderID,
				"illegal transition from %s to %s", from, to)
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order", orderID,
				"order status changed concurrently, retry")
		}

		if err := s.Repo.CreateStatusChange(tx, &entity.OrderStatusChange{
			OrderID:    o.ID,
			FromStatus: from,
			ToStatus:   to,
			ChangedAt:  time.Now(),
		}); err != nil {
			return err
		}

		o.Status = to
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateOrderViews(ctx, order.RestaurantID, order.CustomerID)
	return order, nil
}
