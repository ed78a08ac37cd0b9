package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

type MenuFilter struct {
	Category      string
	Vegetarian    *bool
	Vegan         *bool
	AvailableOnly bool
	Page          int
	Limit         int
}

func (r *MenuRepository) ListForRestaurant(restID uint, f MenuFilter) ([]entity.MenuItem, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 50
	}

	q := r.DB.Model(&entity.MenuItem{}).Where("restaurant_id = ?", restID)
	if f.Category != "" {
		q = q.Where("category LIKE ?", "%"+f.Category+"%")
	}
	if f.Vegetarian != nil {
		q = q.Where("is_vegetarian = ?", *f.Vegetarian)
	}
	if f.Vegan != nil {
		q = q.Where("is_vegan = ?", *f.Vegan)
	}
	if f.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.MenuItem
	err := q.Order("id ASC").Limit(f.Limit).Offset((f.Page - 1) * f.Limit).Find(&out).Error
	return out, total, err
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// GetBasicsByIDs reads id, price, availability and owning restaurant
// for the given items. Runs on the supplied handle so order placement
// snapshots prices inside its own transaction.
func (r *MenuRepository) GetBasicsByIDs(tx *gorm.DB, ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := tx.Model(&entity.MenuItem{}).
		Select("id, name, price, is_available, restaurant_id").
		Where("id IN ?", ids).
		Find(&items).Error
	return items, err
}
