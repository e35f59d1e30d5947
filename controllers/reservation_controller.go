package controllers

import (
	"fmt"
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

// ReservationController exposes the reservation lifecycle. Every mutation
// returns the envelope with code 1 on success and code 0 with the business
// reason otherwise.
type ReservationController struct {
	svc      *services.ReservationService
	search   *services.SearchService
	notifier *services.NotificationService
}

func NewReservationController(db *gorm.DB, rdb *redis.Client, notifier *services.NotificationService) *ReservationController {
	return &ReservationController{
		svc: services.NewReservationService(services.ReservationServiceOptions{
			DB:    db,
			Board: services.NewBoardInvalidator(rdb, nil),
		}),
		search:   services.NewSearchService(db),
		notifier: notifier,
	}
}

func (ctl *ReservationController) notify(tenantID, branchID uint, eventType, title, message string) {
	if ctl.notifier == nil {
		return
	}
	b := branchID
	ctl.notifier.Notify(tenantID, &b, nil, eventType, title, message)
}

func (ctl *ReservationController) respond(c *gin.Context, result *dto.ReservationResult) {
	if result.Success {
		response.SuccessWithMessage(c, result.Message, result)
		return
	}
	response.Error(c, 0, result.Message)
}

func (ctl *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	if err := validator.ValidateReservation(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	result := ctl.svc.Create(req, middleware.CurrentUserID(c))
	if result.Success && req.RoomID == nil {
		ctl.notify(req.TenantID, req.BranchID, "RESERVATION_PENDING",
			"Reservation awaiting acceptance",
			fmt.Sprintf("New reservation for %s needs branch review", req.ClientName))
	}
	ctl.respond(c, result)
}

func (ctl *ReservationController) AcceptReservation(c *gin.Context) {
	var req dto.AcceptReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	result := ctl.svc.Accept(req, middleware.CurrentUserID(c))
	if result.Success {
		ctl.notify(req.TenantID, req.BranchID, "RESERVATION_ACCEPTED",
			"Reservation accepted",
			fmt.Sprintf("Reservation %d was accepted", req.TransactionID))
	}
	ctl.respond(c, result)
}

func (ctl *ReservationController) DeclineReservation(c *gin.Context) {
	var req dto.DeclineReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	result := ctl.svc.Decline(req, middleware.CurrentUserID(c))
	if result.Success {
		ctl.notify(req.TenantID, req.BranchID, "RESERVATION_DECLINED",
			"Reservation declined",
			fmt.Sprintf("Reservation %d was declined", req.TransactionID))
	}
	ctl.respond(c, result)
}

func (ctl *ReservationController) AssignRoom(c *gin.Context) {
	var req dto.AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	ctl.respond(c, ctl.svc.AssignRoomAndCheckIn(req, middleware.CurrentUserID(c)))
}

func (ctl *ReservationController) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	ctl.respond(c, ctl.svc.CheckIn(req, middleware.CurrentUserID(c)))
}

func (ctl *ReservationController) CheckOut(c *gin.Context) {
	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	if err := validator.ValidateAmount(req.TenderAmount); err != nil {
		handleServiceError(c, err)
		return
	}

	result := ctl.svc.CheckOut(req, middleware.CurrentUserID(c))
	if result.Success && result.Room != nil {
		ctl.notify(req.TenantID, req.BranchID, "GUEST_CHECKED_OUT",
			"Guest checked out",
			fmt.Sprintf("Room %s needs inspection", result.Room.RoomCode))
	}
	ctl.respond(c, result)
}

func (ctl *ReservationController) CancelReservation(c *gin.Context) {
	var req dto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	ctl.respond(c, ctl.svc.Cancel(req, middleware.CurrentUserID(c)))
}

// UpdateReservation edits reservation details. Which variant applies depends
// on whether the transaction already has a room.
func (ctl *ReservationController) UpdateReservation(c *gin.Context) {
	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	if err := validator.ValidateReservationUpdate(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	current, err := ctl.svc.GetByID(req.TenantID, req.BranchID, req.TransactionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	actorID := middleware.CurrentUserID(c)
	if current.RoomAssigned() {
		ctl.respond(c, ctl.svc.UpdateAssigned(req, actorID))
		return
	}
	ctl.respond(c, ctl.svc.UpdateUnassigned(req, actorID))
}

func (ctl *ReservationController) GetReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id must be a number")
		return
	}
	tenantID, branchID, ok := tenantBranchQuery(c)
	if !ok {
		return
	}

	transaction, err := ctl.svc.GetByID(tenantID, branchID, uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, transaction)
}

func (ctl *ReservationController) GetReservations(c *gin.Context) {
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

	var status *int
	if raw := c.Query("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "status must be a number")
			return
		}
		status = &parsed
	}

	transactions, total, err := ctl.svc.ListByBranch(tenantID, branchID, status, q.Page, q.Limit)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithPagination(c, transactions, q.Page, q.Limit, int(total))
}

func (ctl *ReservationController) SearchReservations(c *gin.Context) {
	var q dto.SearchReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	tenantID, branchID, ok := tenantBranchQuery(c)
	if !ok {
		return
	}

	results, err := ctl.search.SearchReservations(tenantID, branchID, q)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, results, len(results))
}

// tenantBranchQuery reads the tenantId/branchId query parameters shared by
// the read endpoints. Writes a validation response and returns ok=false when
// either is missing or malformed.
func tenantBranchQuery(c *gin.Context) (uint, uint, bool) {
	tenantRaw := c.Query("tenantId")
	branchRaw := c.Query("branchId")
	if tenantRaw == "" || branchRaw == "" {
		response.BadRequest(c, "tenantId and branchId are required")
		return 0, 0, false
	}
	tenantID, err := strconv.ParseUint(tenantRaw, 10, 32)
	if err != nil {
		response.BadRequest(c, "tenantId must be a number")
		return 0, 0, false
	}
	branchID, err := strconv.ParseUint(branchRaw, 10, 32)
	if err != nil {
		response.BadRequest(c, "branchId must be a number")
		return 0, 0, false
	}
	return uint(tenantID), uint(branchID), true
}
