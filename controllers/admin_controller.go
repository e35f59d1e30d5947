package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/response"
	"github.com/DC-NERI/innWise-sub001/services"
)

// AdminController covers tenant/branch administration and the audit trail.
type AdminController struct {
	db    *gorm.DB
	svc   *services.TenantService
	audit *services.AuditService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{
		db:    db,
		svc:   services.NewTenantService(db),
		audit: services.NewAuditService(),
	}
}

func (ctl *AdminController) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	tenant, err := ctl.svc.CreateTenant(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, tenant)
}

func (ctl *AdminController) UpdateTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	tenant, err := ctl.svc.UpdateTenant(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, tenant)
}

func (ctl *AdminController) GetTenants(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	q.Normalize()

	tenants, total, err := ctl.svc.ListTenants(q.Page, q.Limit)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithPagination(c, tenants, q.Page, q.Limit, int(total))
}

func (ctl *AdminController) CreateBranch(c *gin.Context) {
	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	branch, err := ctl.svc.CreateBranch(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, branch)
}

func (ctl *AdminController) UpdateBranch(c *gin.Context) {
	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	branch, err := ctl.svc.UpdateBranch(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, branch)
}

func (ctl *AdminController) GetBranches(c *gin.Context) {
	raw := c.Query("tenantId")
	if raw == "" {
		response.BadRequest(c, "tenantId is required")
		return
	}
	tenantID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.BadRequest(c, "tenantId must be a number")
		return
	}

	branches, err := ctl.svc.ListBranches(uint(tenantID))
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, branches, len(branches))
}

// GetAuditLogs pages the audit trail for a tenant, newest first.
func (ctl *AdminController) GetAuditLogs(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	q.Normalize()

	raw := c.Query("tenantId")
	if raw == "" {
		response.BadRequest(c, "tenantId is required")
		return
	}
	tenantID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.BadRequest(c, "tenantId must be a number")
		return
	}

	var branchID *uint
	if branchRaw := c.Query("branchId"); branchRaw != "" {
		parsed, err := strconv.ParseUint(branchRaw, 10, 32)
		if err != nil {
			response.BadRequest(c, "branchId must be a number")
			return
		}
		b := uint(parsed)
		branchID = &b
	}

	logs, total, err := ctl.audit.List(ctl.db, uint(tenantID), branchID, q.Page, q.Limit)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithPagination(c, logs, q.Page, q.Limit, int(total))
}
