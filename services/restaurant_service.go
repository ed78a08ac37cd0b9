package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/cache"
	"backend/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo      *repository.RestaurantRepository
	Cache     *cache.Cache
	ListTTL   time.Duration
	DetailTTL time.Duration
}

func NewRestaurantService(repo *repository.RestaurantRepository, c *cache.Cache, listTTL, detailTTL time.Duration) *RestaurantService {
	return &RestaurantService{Repo: repo, Cache: c, ListTTL: listTTL, DetailTTL: detailTTL}
}

type RestaurantIn struct {
	Name        string `json:"name" binding:"required,min=3,max=100"`
	Description string `json:"description"`
	CuisineType string `json:"cuisineType" binding:"required,max=50"`
	Address     string `json:"address" binding:"required,min=5"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=10,max=20"`
	OpeningTime string `json:"openingTime" binding:"required"`
	ClosingTime string `json:"closingTime" binding:"required"`
}

func (s *RestaurantService) Create(ctx context.Context, in *RestaurantIn) (*entity.Restaurant, error) {
	if err := validateHours(in.OpeningTime, in.ClosingTime); err != nil {
		return nil, err
	}

	rest := entity.Restaurant{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CuisineType: in.CuisineType,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		IsActive:    true,
		OpeningTime: in.OpeningTime,
		ClosingTime: in.ClosingTime,
	}
	if err := s.Repo.Create(&rest); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("restaurant", 0, "restaurant with name %q already exists", rest.Name)
		}
		return nil, err
	}

	s.Cache.Invalidate(ctx, cache.NSRestaurants)
	return &rest, nil
}

// validateHours expects "HH:MM" with closing after opening.
// Lexicographic comparison is exact for zero-padded 24h times.
func validateHours(opening, closing string) error {
	for _, v := range []string{opening, closing} {
		if _, err := time.Parse("15:04", v); err != nil {
			return apperr.Validation("restaurant", "operating_hours", "invalid time %q, expected HH:MM", v)
		}
	}
	if closing <= opening {
		return apperr.Validation("restaurant", "closing_time", "closing time must be after opening time")
	}
	return nil
}

func (s *RestaurantService) Get(ctx context.Context, id uint) (*entity.Restaurant, error) {
	cacheKey := fmt.Sprintf("detail:%d", id)
	var cached entity.Restaurant
	if s.Cache.GetJSON(ctx, cache.NSRestaurants, cacheKey, &cached) {
		return &cached, nil
	}

	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant", id)
		}
		return nil, err
	}

	s.Cache.SetJSON(ctx, cache.NSRestaurants, cacheKey, rest, s.DetailTTL)
	return rest, nil
}

func (s *RestaurantService) GetWithMenu(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindWithMenu(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant", id)
		}
		return nil, err
	}
	return rest, nil
}

type RestaurantListOut struct {
	Items []entity.Restaurant `json:"items"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

func (s *RestaurantService) List(ctx context.Context, f repository.RestaurantFilter) (*RestaurantListOut, error) {
	minRating := ""
	if f.MinRating != nil {
		minRating = fmt.Sprintf("%.1f", *f.MinRating)
	}
	cacheKey := fmt.Sprintf("list:%s:%s:%s:%t:%d:%d",
		f.Cuisine, f.Location, minRating, f.ActiveOnly, f.Page, f.Limit)

	var cached RestaurantListOut
	if s.Cache.GetJSON(ctx, cache.NSRestaurants, cacheKey, &cached) {
		return &cached, nil
	}

	items, total, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}
	out := &RestaurantListOut{Items: items, Total: total, Page: f.Page, Limit: f.Limit}

	s.Cache.SetJSON(ctx, cache.NSRestaurants, cacheKey, out, s.ListTTL)
	return out, nil
}

// Update applies a partial update. Rating is not updatable here; it
// belongs to the rating aggregator.
func (s *RestaurantService) Update(ctx context.Context, id uint, updates map[string]any) (*entity.Restaurant, error) {
	ok, err := s.Repo.Exists(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("restaurant", id)
	}
	delete(updates, "rating")

	if o, hasO := updates["opening_time"].(string); hasO {
		if c, hasC := updates["closing_time"].(string); hasC {
			if err := validateHours(o, c); err != nil {
				return nil, err
			}
		}
	}

	if err := s.Repo.Update(id, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("restaurant", id, "restaurant name already taken")
		}
		return nil, err
	}

	s.Cache.Invalidate(ctx, cache.NSRestaurants)
	return s.Repo.FindByID(id)
}
