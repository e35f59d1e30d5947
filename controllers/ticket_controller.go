package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/middleware"
	"github.com/DC-NERI/innWise-sub001/response"
	"github.com/DC-NERI/innWise-sub001/services"
	"github.com/DC-NERI/innWise-sub001/validator"
)

type TicketController struct {
	svc *services.TicketService
}

func NewTicketController(db *gorm.DB) *TicketController {
	return &TicketController{svc: services.NewTicketService(db, nil)}
}

func (ctl *TicketController) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	if err := validator.ValidateTicket(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	ticket, err := ctl.svc.Create(req, middleware.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, ticket)
}

func (ctl *TicketController) UpdateTicket(c *gin.Context) {
	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	ticket, err := ctl.svc.Update(req, middleware.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, ticket)
}

func (ctl *TicketController) GetTickets(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	q.Normalize()

	tickets, total, err := ctl.svc.List(middleware.CurrentTenantID(c), c.Query("status"), q.Page, q.Limit)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithPagination(c, tickets, q.Page, q.Limit, int(total))
}

func (ctl *TicketController) GetTicketDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id must be a number")
		return
	}

	ticket, err := ctl.svc.Get(middleware.CurrentTenantID(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, ticket)
}
