package dto

type CreateTenantRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	MaxBranches int    `json:"maxBranches" binding:"gte=1"`
}

type UpdateTenantRequest struct {
	TenantID    uint   `json:"tenantId" binding:"required"`
	Name        string `json:"name"`
	Email       string `json:"email" binding:"omitempty,email"`
	Status      *int   `json:"status"`
	MaxBranches *int   `json:"maxBranches"`
}

type CreateBranchRequest struct {
	TenantID uint   `json:"tenantId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Address  string `json:"address"`
}

type UpdateBranchRequest struct {
	BranchID uint   `json:"branchId" binding:"required"`
	TenantID uint   `json:"tenantId" binding:"required"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Status   *int   `json:"status"`
}
