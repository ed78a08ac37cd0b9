package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// POST /restaurants/:id/menu-items
func (mc *MenuController) Create(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Svc.Create(c.Request.Context(), uint(restID), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /menu-items/:id
func (mc *MenuController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := mc.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /restaurants/:id/menu-items?category=&vegetarian=&vegan=&available=
func (mc *MenuController) ListForRestaurant(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := repository.MenuFilter{
		Category:      c.Query("category"),
		AvailableOnly: c.Query("available") == "true",
		Page:          page,
		Limit:         limit,
	}
	if v := c.Query("vegetarian"); v != "" {
		b := v == "true"
		f.Vegetarian = &b
	}
	if v := c.Query("vegan"); v != "" {
		b := v == "true"
		f.Vegan = &b
	}

	out, err := mc.Svc.ListForRestaurant(uint(restID), f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

type updateMenuItemReq struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Category        *string  `json:"category"`
	IsVegetarian    *bool    `json:"isVegetarian"`
	IsVegan         *bool    `json:"isVegan"`
	IsAvailable     *bool    `json:"isAvailable"`
	PreparationTime *int     `json:"preparationTime"`
}

// PATCH /menu-items/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req updateMenuItemReq
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
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsVegetarian != nil {
		updates["is_vegetarian"] = *req.IsVegetarian
	}
	if req.IsVegan != nil {
		updates["is_vegan"] = *req.IsVegan
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.PreparationTime != nil {
		updates["preparation_time"] = *req.PreparationTime
	}

	item, err := mc.Svc.Update(c.Request.Context(), uint(id), updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := mc.Svc.Delete(c.Request.Context(), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
