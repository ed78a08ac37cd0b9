package controllers

import (
	"strconv"

	"backend/entity"
	"backend/middlewares"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders (protected)
func (oc *OrderController) Create(c *gin.Context) {
	customerID, ok := middlewares.CustomerIDFromCtx(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Svc.PlaceOrder(c.Request.Context(), customerID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	detail, err := oc.Svc.Detail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

type updateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PUT /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Svc.Transition(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /profile/orders?status=&page=&limit= (protected)
func (oc *OrderController) ListForMe(c *gin.Context) {
	customerID, ok := middlewares.CustomerIDFromCtx(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	out, err := oc.Svc.ListForCustomer(customerID, statusFilter(c), pageParam(c), limitParam(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id/orders?status=&page=&limit=
func (oc *OrderController) ListForRestaurant(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	out, err := oc.Svc.ListForRestaurant(uint(restID), statusFilter(c), pageParam(c), limitParam(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

func statusFilter(c *gin.Context) *entity.OrderStatus {
	v := c.Query("status")
	if v == "" {
		return nil
	}
	s := entity.OrderStatus(v)
	return &s
}

func pageParam(c *gin.Context) int {
	n, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return n
}

func limitParam(c *gin.Context) int {
	n, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return n
}
