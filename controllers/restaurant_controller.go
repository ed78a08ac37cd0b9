package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Svc *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: svc}
}

// POST /restaurants
func (rc *RestaurantController) Create(c *gin.Context) {
	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := rc.Svc.Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rest)
}

// GET /restaurants?cuisine=&location=&minRating=&active=&page=&limit=
func (rc *RestaurantController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	f := repository.RestaurantFilter{
		Cuisine:    c.Query("cuisine"),
		Location:   c.Query("location"),
		ActiveOnly: c.DefaultQuery("active", "true") == "true",
		Page:       page,
		Limit:      limit,
	}
	if v := c.Query("minRating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid minRating")
			return
		}
		f.MinRating = &r
	}

	out, err := rc.Svc.List(c.Request.Context(), f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := rc.Svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /restaurants/:id/menu
func (rc *RestaurantController) DetailWithMenu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := rc.Svc.GetWithMenu(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rest, "menuItems": rest.MenuItems})
}

type updateRestaurantReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CuisineType *string `json:"cuisineType"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phoneNumber"`
	IsActive    *bool   `json:"isActive"`
	OpeningTime *string `json:"openingTime"`
	ClosingTime *string `json:"closingTime"`
}

// PATCH /restaurants/:id
func (rc *RestaurantController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req updateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CuisineType != nil {
		updates["cuisine_type"] = *req.CuisineType
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.OpeningTime != nil {
		updates["opening_time"] = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		updates["closing_time"] = *req.ClosingTime
	}

	rest, err := rc.Svc.Update(c.Request.Context(), uint(id), updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}
