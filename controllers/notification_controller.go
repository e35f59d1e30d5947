package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/middleware"
	"github.com/DC-NERI/innWise-sub001/response"
	"github.com/DC-NERI/innWise-sub001/services"
)

type NotificationController struct {
	svc *services.NotificationService
}

func NewNotificationController(svc *services.NotificationService) *NotificationController {
	return &NotificationController{svc: svc}
}

func (ctl *NotificationController) GetNotifications(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	q.Normalize()

	rows, total, err := ctl.svc.ListForUser(middleware.CurrentTenantID(c), middleware.CurrentUserID(c), q.Page, q.Limit)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithPagination(c, rows, q.Page, q.Limit, int(total))
}

func (ctl *NotificationController) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id must be a number")
		return
	}

	if err := ctl.svc.MarkRead(middleware.CurrentTenantID(c), middleware.CurrentUserID(c), uint(id)); err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, nil)
}
