package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// Create inserts a review. The unique index on order_id makes racing
// duplicates surface as gorm.ErrDuplicatedKey.
func (r *ReviewRepository) Create(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) ExistsForOrder(orderID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Review{}).Where("order_id = ?", orderID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *ReviewRepository) ListForRestaurant(restID uint, limit, offset int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var out []entity.Review
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("id DESC").Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) ListForCustomer(customerID uint, limit, offset int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var out []entity.Review
	err := r.DB.Where("customer_id = ?", customerID).
		Order("id DESC").Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

// RatingStats returns the mean rating and review count for a
// restaurant, on the caller's handle so the aggregator can run inside
// the review-creation transaction.
func (r *ReviewRepository) RatingStats(tx *gorm.DB, restID uint) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("restaurant_id = ?", restID).
		Scan(&row).Error
	return row.Avg, row.Count, err
}
