package services

import (
	"math"

	"backend/repository"

	"gorm.io/gorm"
)

// RatingService keeps Restaurant.Rating equal to the rounded mean of
// the restaurant's review set. It is the only writer of that column.
type RatingService struct {
	ReviewRepo *repository.ReviewRepository
	RestRepo   *repository.RestaurantRepository
}

func NewRatingService(reviewRepo *repository.ReviewRepository, restRepo *repository.RestaurantRepository) *RatingService {
	return &RatingService{ReviewRepo: reviewRepo, RestRepo: restRepo}
}

// Recompute reads the full review set on the given handle, rounds the
// mean to one decimal (0.0 when empty) and writes it back. Idempotent
// for an unchanged review set.
func (s *RatingService) Recompute(tx *gorm.DB, restaurantID uint) (float64, error) {
	avg, count, err := s.ReviewRepo.RatingStats(tx, restaurantID)
	if err != nil {
		return 0, err
	}
	rating := 0.0
	if count > 0 {
		rating = math.Round(avg*10) / 10
	}
	if err := s.RestRepo.UpdateRating(tx, restaurantID, rating); err != nil {
		return 0, err
	}
	return rating, nil
}
