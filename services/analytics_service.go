package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/cache"
	"backend/repository"

	"gorm.io/gorm"
)

// How many popular items a restaurant report carries.
const topMenuItemsLimit = 10

// AnalyticsService derives reports from accumulated order and review
// history. Strictly read-only.
type AnalyticsService struct {
	DB       *gorm.DB
	Repo     *repository.AnalyticsRepository
	RestRepo *repository.RestaurantRepository
	CustRepo *repository.CustomerRepository
	RevRepo  *repository.ReviewRepository
	Cache    *cache.Cache
	CacheTTL time.Duration
}

func NewAnalyticsService(
	db *gorm.DB,
	repo *repository.AnalyticsRepository,
	restRepo *repository.RestaurantRepository,
	custRepo *repository.CustomerRepository,
	revRepo *repository.ReviewRepository,
	c *cache.Cache,
	ttl time.Duration,
) *AnalyticsService {
	return &AnalyticsService{DB: db, Repo: repo, RestRepo: restRepo, CustRepo: custRepo, RevRepo: revRepo, Cache: c, CacheTTL: ttl}
}

type RestaurantAnalytics struct {
	RestaurantID      uint                         `json:"restaurantId"`
	TotalOrders       int64                        `json:"totalOrders"`
	TotalRevenue      float64                      `json:"totalRevenue"`
	AverageOrderValue float64                      `json:"averageOrderValue"`
	OrdersByStatus    map[entity.OrderStatus]int64 `json:"ordersByStatus"`
	TopMenuItems      []repository.PopularItem     `json:"topMenuItems"`
	ReviewCount       int64                        `json:"reviewCount"`
	AverageRating     float64                      `json:"averageRating"`
}

// RestaurantAnalytics builds the restaurant report. Revenue counts
// DELIVERED orders only; cancelled and in-flight orders are excluded.
func (s *AnalyticsService) RestaurantAnalytics(ctx context.Context, restID uint) (*RestaurantAnalytics, error) {
	ok, err := s.RestRepo.Exists(restID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("restaurant", restID)
	}

	cacheKey := fmt.Sprintf("restaurant:%d", restID)
	var cached RestaurantAnalytics
	if s.Cache.GetJSON(ctx, cache.NSAnalytics, cacheKey, &cached) {
		return &cached, nil
	}

	totals, err := s.Repo.RestaurantOrderTotals(restID)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.Repo.OrdersByStatus(restID)
	if err != nil {
		return nil, err
	}
	topItems, err := s.Repo.TopMenuItems(restID, topMenuItemsLimit)
	if err != nil {
		return nil, err
	}
	avgRating, reviewCount, err := s.RevRepo.RatingStats(s.DB, restID)
	if err != nil {
		return nil, err
	}

	out := &RestaurantAnalytics{
		RestaurantID:   restID,
		TotalOrders:    totals.TotalOrders,
		TotalRevenue:   totals.Revenue,
		OrdersByStatus: byStatus,
		TopMenuItems:   topItems,
		ReviewCount:    reviewCount,
	}
	if totals.DeliveredCount > 0 {
		out.AverageOrderValue = totals.Revenue / float64(totals.DeliveredCount)
	}
	if reviewCount > 0 {
		out.AverageRating = math.Round(avgRating*10) / 10
	}

	s.Cache.SetJSON(ctx, cache.NSAnalytics, cacheKey, out, s.CacheTTL)
	return out, nil
}

type CustomerAnalytics struct {
	CustomerID         uint                    `json:"customerId"`
	TotalOrders        int64                   `json:"totalOrders"`
	TotalSpent         float64                 `json:"totalSpent"`
	FavoriteRestaurant *repository.FavoriteRow `json:"favoriteRestaurant"`
	FavoriteCuisine    *repository.FavoriteRow `json:"favoriteCuisine"`
	OrderFrequency     float64                 `json:"orderFrequency"`
	ReviewCount        int64                   `json:"reviewCount"`
}

// CustomerAnalytics builds the customer report. Spend counts DELIVERED
// orders only; favorites are the delivered-order mode with ties broken
// by the most recent order.
func (s *AnalyticsService) CustomerAnalytics(ctx context.Context, customerID uint) (*CustomerAnalytics, error) {
	ok, err := s.CustRepo.Exists(customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("customer", customerID)
	}

	cacheKey := fmt.Sprintf("customer:%d", customerID)
	var cached CustomerAnalytics
	if s.Cache.GetJSON(ctx, cache.NSAnalytics, cacheKey, &cached) {
		return &cached, nil
	}

	totals, err := s.Repo.CustomerOrderTotals(customerID)
	if err != nil {
		return nil, err
	}
	favRest, err := s.Repo.FavoriteRestaurant(customerID)
	if err != nil {
		return nil, err
	}
	favCuisine, err := s.Repo.FavoriteCuisine(customerID)
	if err != nil {
		return nil, err
	}
	reviewCount, err := s.Repo.CountReviewsForCustomer(customerID)
	if err != nil {
		return nil, err
	}
	firstOrder, err := s.Repo.FirstOrderAt(customerID)
	if err != nil {
		return nil, err
	}

	out := &CustomerAnalytics{
		CustomerID:         customerID,
		TotalOrders:        totals.TotalOrders,
		TotalSpent:         totals.Revenue,
		FavoriteRestaurant: favRest,
		FavoriteCuisine:    favCuisine,
		ReviewCount:        reviewCount,
		OrderFrequency:     orderFrequency(totals.TotalOrders, firstOrder, time.Now()),
	}

	s.Cache.SetJSON(ctx, cache.NSAnalytics, cacheKey, out, s.CacheTTL)
	return out, nil
}

const (
	trendingDefaultDays  = 7
	trendingMaxDays      = 30
	trendingDefaultLimit = 10
	trendingMaxLimit     = 50
)

// TrendingRestaurants ranks restaurants by order volume over the last
// days. Out-of-range parameters fall back to the defaults. Freshness
// comes from the short cache TTL rather than invalidation.
func (s *AnalyticsService) TrendingRestaurants(ctx context.Context, days, limit int) ([]repository.TrendingRestaurant, error) {
	if days <= 0 || days > trendingMaxDays {
		days = trendingDefaultDays
	}
	if limit <= 0 || limit > trendingMaxLimit {
		limit = trendingDefaultLimit
	}

	cacheKey := fmt.Sprintf("trending:%d:%d", days, limit)
	var cached []repository.TrendingRestaurant
	if s.Cache.GetJSON(ctx, cache.NSAnalytics, cacheKey, &cached) {
		return cached, nil
	}

	out, err := s.Repo.TrendingRestaurants(time.Now().AddDate(0, 0, -days), limit)
	if err != nil {
		return nil, err
	}

	s.Cache.SetJSON(ctx, cache.NSAnalytics, cacheKey, out, s.CacheTTL)
	return out, nil
}

// orderFrequency is orders per 30-day window since the first order.
// Histories shorter than one window count as a single window.
func orderFrequency(totalOrders int64, firstOrder *time.Time, now time.Time) float64 {
	if totalOrders == 0 || firstOrder == nil {
		return 0
	}
	windows := now.Sub(*firstOrder).Hours() / (24 * 30)
	if windows < 1 {
		windows = 1
	}
	return math.Round(float64(totalOrders)/windows*100) / 100
}
