package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/response"
	"github.com/DC-NERI/innWise-sub001/services"
)

type RateController struct {
	svc *services.RateService
}

func NewRateController(db *gorm.DB, rdb *redis.Client) *RateController {
	return &RateController{svc: services.NewRateService(db, rdb, nil)}
}

func (ctl *RateController) GetAllRates(c *gin.Context) {
	tenantID, branchID, ok := tenantBranchQuery(c)
	if !ok {
		return
	}

	rates, err := ctl.svc.ListActive(c.Request.Context(), tenantID, branchID)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, rates, len(rates))
}

func (ctl *RateController) GetRateDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id must be a number")
		return
	}
	tenantID, branchID, ok := tenantBranchQuery(c)
	if !ok {
		return
	}

	rate, err := ctl.svc.Get(tenantID, branchID, uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, rate)
}

func (ctl *RateController) CreateRate(c *gin.Context) {
	var req dto.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	rate, err := ctl.svc.Create(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, rate)
}

func (ctl *RateController) UpdateRate(c *gin.Context) {
	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	rate, err := ctl.svc.Update(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, rate)
}
