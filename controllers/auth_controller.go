package controllers

import (
	"backend/middlewares"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	customer, err := ac.Auth.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, customer)
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, customer, err := ac.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "customer": customer})
}

// GET /auth/me (protected)
func (ac *AuthController) Me(c *gin.Context) {
	id, ok := middlewares.CustomerIDFromCtx(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	customer, err := ac.Auth.GetProfile(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, customer)
}

type updateMeReq struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
}

// PATCH /auth/me (protected)
func (ac *AuthController) UpdateMe(c *gin.Context) {
	id, ok := middlewares.CustomerIDFromCtx(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req updateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	customer, err := ac.Auth.UpdateProfile(id, updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, customer)
}
