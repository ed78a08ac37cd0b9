package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindWithMenu(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Preload("MenuItems").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

type RestaurantFilter struct {
	Cuisine    string
	Location   string
	MinRating  *float64
	ActiveOnly bool
	Page       int
	Limit      int
}

// List searches restaurants, rating-descending, with pagination.
func (r *RestaurantRepository) List(f RestaurantFilter) ([]entity.Restaurant, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	q := r.DB.Model(&entity.Restaurant{})
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.Cuisine != "" {
		q = q.Where("cuisine_type LIKE ?", "%"+f.Cuisine+"%")
	}
	if f.Location != "" {
		q = q.Where("address LIKE ?", "%"+f.Location+"%")
	}
	if f.MinRating != nil {
		q = q.Where("rating >= ?", *f.MinRating)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Restaurant
	err := q.Order("rating DESC, id ASC").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&out).Error
	return out, total, err
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateRating writes the derived rating; only the aggregator calls it.
func (r *RestaurantRepository) UpdateRating(tx *gorm.DB, id uint, rating float64) error {
	return tx.Model(&entity.Restaurant{}).Where("id = ?", id).Update("rating", rating).Error
}
