package controllers

import (
	"strconv"

	"backend/middlewares"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Svc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: svc}
}

type createReviewReq struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

// POST /orders/:id/review (protected)
func (rc *ReviewController) Create(c *gin.Context) {
	customerID, ok := middlewares.CustomerIDFromCtx(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	orderID, _ := strconv.Atoi(c.Param("id"))

	var req createReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.Svc.AddReview(c.Request.Context(), uint(orderID), customerID, req.Rating, req.Comment)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /restaurants/:id/reviews
func (rc *ReviewController) ListForRestaurant(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := rc.Svc.ListForRestaurant(uint(restID), limit, offset)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews, "meta": gin.H{"limit": limit, "offset": offset}})
}

// GET /profile/reviews (protected)
func (rc *ReviewController) ListForMe(c *gin.Context) {
	customerID, ok := middlewares.CustomerIDFromCtx(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := rc.Svc.ListForCustomer(customerID, limit, offset)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews, "meta": gin.H{"limit": limit, "offset": offset}})
}
