package services

import (
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/errors"
	"github.com/DC-NERI/innWise-sub001/models"
)

// TenantService administers tenants and their branches.
type TenantService struct {
	db *gorm.DB
}

func NewTenantService(db *gorm.DB) *TenantService {
	return &TenantService{db: db}
}

func (s *TenantService) CreateTenant(req dto.CreateTenantRequest) (*models.Tenant, error) {
	tenant := models.Tenant{
		Name:        req.Name,
		Code:        req.Code,
		Email:       req.Email,
		MaxBranches: req.MaxBranches,
		Status:      1,
	}
	if tenant.MaxBranches < 1 {
		tenant.MaxBranches = 1
	}
	if err := s.db.Create(&tenant).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, errors.NewAppError(errors.ErrCodeDBDuplicate, "a tenant with this code already exists", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create tenant", err)
	}
	return &tenant, nil
}

func (s *TenantService) UpdateTenant(req dto.UpdateTenantRequest) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.First(&tenant, req.TenantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeTenantNotFound, "tenant not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load tenant", err)
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.MaxBranches != nil {
		updates["max_branches"] = *req.MaxBranches
	}
	if len(updates) > 0 {
		if err := s.db.Model(&tenant).Updates(updates).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update tenant", err)
		}
	}
	return &tenant, nil
}

func (s *TenantService) ListTenants(page, limit int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	if err := s.db.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := s.db.Preload("Branches").
		Order("name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tenants).Error
	if err != nil {
		return nil, 0, err
	}
	return tenants, total, nil
}

// CreateBranch adds a branch, enforcing the tenant's branch quota.
func (s *TenantService) CreateBranch(req dto.CreateBranchRequest) (*models.Branch, error) {
	var tenant models.Tenant
	if err := s.db.First(&tenant, req.TenantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeTenantNotFound, "tenant not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load tenant", err)
	}

	var count int64
	if err := s.db.Model(&models.Branch{}).Where("tenant_id = ?", tenant.ID).Count(&count).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to count branches", err)
	}
	if int(count) >= tenant.MaxBranches {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "branch limit reached for this tenant", nil)
	}

	branch := models.Branch{
		TenantID: tenant.ID,
		Name:     req.Name,
		Code:     req.Code,
		Address:  req.Address,
		Status:   1,
	}
	if err := s.db.Create(&branch).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, errors.NewAppError(errors.ErrCodeDBDuplicate, "a branch with this code already exists", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create branch", err)
	}
	return &branch, nil
}

func (s *TenantService) UpdateBranch(req dto.UpdateBranchRequest) (*models.Branch, error) {
	var branch models.Branch
	err := s.db.Where("tenant_id = ?", req.TenantID).First(&branch, req.BranchID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NewAppError(errors.ErrCodeBranchNotFound, "branch not found", nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load branch", err)
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := s.db.Model(&branch).Updates(updates).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update branch", err)
		}
	}
	return &branch, nil
}

func (s *TenantService) ListBranches(tenantID uint) ([]models.Branch, error) {
	var branches []models.Branch
	err := s.db.Where("tenant_id = ?", tenantID).Order("name").Find(&branches).Error
	return branches, err
}
