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

type RoomController struct {
	svc *services.RoomService
}

func NewRoomController(db *gorm.DB, rdb *redis.Client) *RoomController {
	return &RoomController{svc: services.NewRoomService(db, rdb, nil)}
}

func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	room, err := ctl.svc.Create(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, room)
}

func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	room, err := ctl.svc.Update(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, room)
}

// GetRoomBoard returns the per-branch status board, cached in Redis.
func (ctl *RoomController) GetRoomBoard(c *gin.Context) {
	tenantID, branchID, ok := tenantBranchQuery(c)
	if !ok {
		return
	}

	board, err := ctl.svc.Board(c.Request.Context(), tenantID, branchID)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, board, len(board))
}

func (ctl *RoomController) GetRoomDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id must be a number")
		return
	}
	tenantID, branchID, ok := tenantBranchQuery(c)
	if !ok {
		return
	}

	room, err := ctl.svc.Get(tenantID, branchID, uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, room)
}
