package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/middleware"
	"github.com/DC-NERI/innWise-sub001/response"
	"github.com/DC-NERI/innWise-sub001/services"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{svc: services.NewAuthService(db, nil)}
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	result, err := ctl.svc.Login(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, result)
}

func (ctl *AuthController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	user, err := ctl.svc.CreateUser(req, middleware.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, user)
}

func (ctl *AuthController) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	user, err := ctl.svc.UpdateUser(req, middleware.CurrentTenantID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, user)
}

func (ctl *AuthController) GetUsers(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	q.Normalize()

	var branchID *uint
	if raw := c.Query("branchId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, "branchId must be a number")
			return
		}
		b := uint(parsed)
		branchID = &b
	}

	users, total, err := ctl.svc.ListUsers(middleware.CurrentTenantID(c), branchID, q.Page, q.Limit)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithPagination(c, users, q.Page, q.Limit, int(total))
}
