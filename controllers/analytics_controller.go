package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

// GET /analytics/restaurants/:id
func (ac *AnalyticsController) Restaurant(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := ac.Svc.RestaurantAnalytics(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/trending?days=&limit=
func (ac *AnalyticsController) Trending(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	out, err := ac.Svc.TrendingRestaurants(c.Request.Context(), days, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /analytics/customers/:id
func (ac *AnalyticsController) Customer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := ac.Svc.CustomerAnalytics(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
