package configs

import (
	"backend/entity"
)

// SeedLookups loads a couple of restaurants with menus for local
// development. Skips silently when data already exists.
func SeedLookups() error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	spice := entity.Restaurant{
		Name:        "Spice Garden",
		Description: "North Indian classics",
		CuisineType: "Indian",
		Address:     "12 MG Road, Bangalore",
		PhoneNumber: "+91 80 4111 2222",
		IsActive:    true,
		OpeningTime: "10:00",
		ClosingTime: "23:00",
	}
	if err := db.Create(&spice).Error; err != nil {
		return err
	}

	wok := entity.Restaurant{
		Name:        "Golden Wok",
		Description: "Cantonese kitchen",
		CuisineType: "Chinese",
		Address:     "88 Brigade Road, Bangalore",
		PhoneNumber: "+91 80 4333 4444",
		IsActive:    true,
		OpeningTime: "11:00",
		ClosingTime: "22:30",
	}
	if err := db.Create(&wok).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{Name: "Butter Chicken", Price: 320, Category: "Main", IsAvailable: true, PreparationTime: 25, RestaurantID: spice.ID},
		{Name: "Dal Makhani", Price: 220, Category: "Main", IsVegetarian: true, IsAvailable: true, PreparationTime: 20, RestaurantID: spice.ID},
		{Name: "Garlic Naan", Price: 60, Category: "Bread", IsVegetarian: true, IsAvailable: true, PreparationTime: 10, RestaurantID: spice.ID},
		{Name: "Kung Pao Chicken", Price: 280, Category: "Main", IsAvailable: true, PreparationTime: 20, RestaurantID: wok.ID},
		{Name: "Veg Fried Rice", Price: 180, Category: "Rice", IsVegetarian: true, IsVegan: true, IsAvailable: true, PreparationTime: 15, RestaurantID: wok.ID},
	}
	return db.Create(&items).Error
}
