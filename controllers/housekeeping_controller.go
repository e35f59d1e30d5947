package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/middleware"
	"github.com/DC-NERI/innWise-sub001/response"
	"github.com/DC-NERI/innWise-sub001/services"
	"github.com/DC-NERI/innWise-sub001/validator"
)

type HousekeepingController struct {
	svc *services.HousekeepingService
}

func NewHousekeepingController(db *gorm.DB, rdb *redis.Client) *HousekeepingController {
	board := services.NewBoardInvalidator(rdb, nil)
	return &HousekeepingController{svc: services.NewHousekeepingService(db, nil, board, nil)}
}

func (ctl *HousekeepingController) SetCleaningStatus(c *gin.Context) {
	var req dto.SetCleaningStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	if err := validator.ValidateCleaningStatus(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	result := ctl.svc.SetCleaningStatus(req, middleware.CurrentUserID(c))
	if result.Success {
		response.SuccessWithMessage(c, result.Message, result)
		return
	}
	response.Error(c, 0, result.Message)
}

func (ctl *HousekeepingController) GetRoomHistory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id must be a number")
		return
	}
	tenantID, branchID, ok := tenantBranchQuery(c)
	if !ok {
		return
	}

	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	q.Normalize()

	logs, total, err := ctl.svc.RoomHistory(tenantID, branchID, uint(id), q.Page, q.Limit)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithPagination(c, logs, q.Page, q.Limit, int(total))
}

func (ctl *HousekeepingController) GetBranchOverview(c *gin.Context) {
	tenantID, branchID, ok := tenantBranchQuery(c)
	if !ok {
		return
	}

	rooms, err := ctl.svc.BranchOverview(tenantID, branchID)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, rooms, len(rooms))
}
