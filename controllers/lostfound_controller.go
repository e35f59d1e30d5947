package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/middleware"
	"github.com/DC-NERI/innWise-sub001/response"
	"github.com/DC-NERI/innWise-sub001/services"
)

type LostFoundController struct {
	svc *services.LostFoundService
}

func NewLostFoundController(db *gorm.DB) *LostFoundController {
	return &LostFoundController{svc: services.NewLostFoundService(db, nil)}
}

func (ctl *LostFoundController) LogItem(c *gin.Context) {
	var req dto.CreateLostFoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	item, err := ctl.svc.Log(req, middleware.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, item)
}

func (ctl *LostFoundController) UpdateItem(c *gin.Context) {
	var req dto.UpdateLostFoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	item, err := ctl.svc.Update(req, middleware.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, item)
}

func (ctl *LostFoundController) GetItems(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	q.Normalize()

	tenantID, branchID, ok := tenantBranchQuery(c)
	if !ok {
		return
	}

	items, total, err := ctl.svc.List(tenantID, branchID, c.Query("status"), q.Page, q.Limit)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithPagination(c, items, q.Page, q.Limit, int(total))
}
