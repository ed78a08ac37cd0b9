package services

import (
	"context"
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/cache"
	"backend/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
	Cache    *cache.Cache
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository, c *cache.Cache) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo, Cache: c}
}

type MenuItemIn struct {
	Name            string  `json:"name" binding:"required,min=3,max=100"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required"`
	Category        string  `json:"category" binding:"required,max=50"`
	IsVegetarian    bool    `json:"isVegetarian"`
	IsVegan         bool    `json:"isVegan"`
	IsAvailable     *bool   `json:"isAvailable"`
	PreparationTime int     `json:"preparationTime"`
}

func (s *MenuService) Create(ctx context.Context, restID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	ok, err := s.RestRepo.Exists(restID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("restaurant", restID)
	}
	if in.Price <= 0 {
		return nil, apperr.Validation("menu_item", "price", "price must be positive, got %.2f", in.Price)
	}
	if in.IsVegan && !in.IsVegetarian {
		return nil, apperr.Validation("menu_item", "is_vegan", "vegan items must also be vegetarian")
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	item := entity.MenuItem{
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		Category:        in.Category,
		IsVegetarian:    in.IsVegetarian,
		IsVegan:         in.IsVegan,
		IsAvailable:     available,
		PreparationTime: in.PreparationTime,
		RestaurantID:    restID,
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx, cache.NSMenuItems)
	return &item, nil
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu_item", id)
		}
		return nil, err
	}
	return item, nil
}

type MenuListOut struct {
	Items []entity.MenuItem `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

func (s *MenuService) ListForRestaurant(restID uint, f repository.MenuFilter) (*MenuListOut, error) {
	ok, err := s.RestRepo.Exists(restID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("restaurant", restID)
	}
	items, total, err := s.Repo.ListForRestaurant(restID, f)
	if err != nil {
		return nil, err
	}
	return &MenuListOut{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

// Update applies a partial update. Price changes take effect for new
// orders only; existing order items keep their snapshot.
func (s *MenuService) Update(ctx context.Context, id uint, updates map[string]any) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if p, ok := updates["price"]; ok {
		price, isNum := p.(float64)
		if !isNum || price <= 0 {
			return nil, apperr.Validation("menu_item", "price", "price must be positive")
		}
	}
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx, cache.NSMenuItems)
	return s.Repo.FindByID(id)
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.NSMenuItems)
	return nil
}
