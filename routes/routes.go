package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/pkg/cache"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, c *cache.Cache) {
	r.GET("/health", func(ctx *gin.Context) {
		cacheState := "disabled"
		if c.Enabled() {
			cacheState = "up"
			if err := c.Ping(ctx.Request.Context()); err != nil {
				cacheState = "down"
			}
		}
		ctx.JSON(200, gin.H{"ok": true, "cache": cacheState})
	})

	// Repositories
	custRepo := repository.NewCustomerRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Services
	authSvc := services.NewAuthService(custRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo, c, cfg.TTLRestaurantList, cfg.TTLRestaurantDetail)
	menuSvc := services.NewMenuService(menuRepo, restRepo, c)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, custRepo, restRepo, c)
	ratingSvc := services.NewRatingService(reviewRepo, restRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, orderRepo, ratingSvc, c)
	analyticsSvc := services.NewAnalyticsService(db, analyticsRepo, restRepo, custRepo, reviewRepo, c, cfg.TTLAnalytics)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)
	cacheCtrl := controllers.NewCacheController(c)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Restaurants + menus (public reads, open management like the
	// upstream API)
	r.GET("/restaurants", restCtrl.List)
	r.POST("/restaurants", restCtrl.Create)
	r.GET("/restaurants/trending", analyticsCtrl.Trending)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.PATCH("/restaurants/:id", restCtrl.Update)
	r.GET("/restaurants/:id/menu", restCtrl.DetailWithMenu)
	r.GET("/restaurants/:id/menu-items", menuCtrl.ListForRestaurant)
	r.POST("/restaurants/:id/menu-items", menuCtrl.Create)
	r.GET("/restaurants/:id/orders", orderCtrl.ListForRestaurant)
	r.GET("/restaurants/:id/reviews", reviewCtrl.ListForRestaurant)

	r.GET("/menu-items/:id", menuCtrl.Detail)
	r.PATCH("/menu-items/:id", menuCtrl.Update)
	r.DELETE("/menu-items/:id", menuCtrl.Delete)

	// Orders
	r.POST("/orders", auth, orderCtrl.Create)
	r.GET("/orders/:id", orderCtrl.Detail)
	r.PUT("/orders/:id/status", orderCtrl.UpdateStatus)
	r.POST("/orders/:id/review", auth, reviewCtrl.Create)

	// Profile
	profile := r.Group("/profile", auth)
	{
		profile.GET("/orders", orderCtrl.ListForMe)
		profile.GET("/reviews", reviewCtrl.ListForMe)
	}

	// Analytics
	r.GET("/analytics/restaurants/:id", analyticsCtrl.Restaurant)
	r.GET("/analytics/customers/:id", analyticsCtrl.Customer)

	// Cache admin
	r.GET("/cache/stats", cacheCtrl.Stats)
	r.DELETE("/cache", cacheCtrl.ClearAll)
	r.DELETE("/cache/:namespace", cacheCtrl.ClearNamespace)
}
