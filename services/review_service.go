package services

import (
	"context"
	"errors"
	"fmt"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/cache"
	"backend/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB        *gorm.DB
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
	Rating    *RatingService
	Cache     *cache.Cache
}

func NewReviewService(
	db *gorm.DB,
	repo *repository.ReviewRepository,
	orderRepo *repository.OrderRepository,
	rating *RatingService,
	c *cache.Cache,
) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, OrderRepo: orderRepo, Rating: rating, Cache: c}
}

// AddReview creates the single review an order may ever have. Only the
// ordering customer may write it, only once the order is DELIVERED.
// The insert and the rating recompute share one transaction, so a
// successful call returns with the restaurant's rating already
// up to date.
func (s *ReviewService) AddReview(ctx context.Context, orderID, customerID uint, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.Validation("review", "rating", "rating must be between 1 and 5, got %d", rating)
	}

	order, err := s.OrderRepo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order", orderID)
		}
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, apperr.Authorization("order", orderID,
			"order %d does not belong to customer %d", orderID, customerID)
	}
	if order.Status != entity.StatusDelivered {
		return nil, apperr.State("order", orderID, "order not yet delivered")
	}

	// Early duplicate check for a clean error; the unique index on
	// order_id is what actually settles concurrent submissions.
	exists, err := s.Repo.ExistsForOrder(orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("review", orderID, "duplicate review")
	}

	review := entity.Review{
		Rating:       rating,
		Comment:      comment,
		OrderID:      orderID,
		CustomerID:   customerID,
		RestaurantID: order.RestaurantID,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &review); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("review", orderID, "duplicate review")
			}
			return err
		}
		_, err := s.Rating.Recompute(tx, order.RestaurantID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateReviewViews(ctx, order.RestaurantID, customerID)
	return &review, nil
}

func (s *ReviewService) invalidateReviewViews(ctx context.Context, restaurantID, customerID uint) {
	s.Cache.Invalidate(ctx, cache.NSReviews)
	// The restaurant's derived rating changed, so cached restaurant
	// views are stale too.
	s.Cache.Invalidate(ctx, cache.NSRestaurants)
	s.Cache.Invalidate(ctx, cache.NSAnalytics,
		fmt.Sprintf("restaurant:%d", restaurantID),
		fmt.Sprintf("customer:%d", customerID))
}

func (s *ReviewService) ListForRestaurant(restID uint, limit, offset int) ([]entity.Review, error) {
	return s.Repo.ListForRestaurant(restID, limit, offset)
}

func (s *ReviewService) ListForCustomer(customerID uint, limit, offset int) ([]entity.Review, error) {
	return s.Repo.ListForCustomer(customerID, limit, offset)
}
