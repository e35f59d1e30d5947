package dto

type CreateRateRequest struct {
	TenantID        uint     `json:"tenantId" binding:"required"`
	BranchID        uint     `json:"branchId" binding:"required"`
	Name            string   `json:"name" binding:"required"`
	Price           float64  `json:"price" binding:"required,gt=0"`
	Hours           int      `json:"hours" binding:"gte=0"`
	ExcessHourPrice *float64 `json:"excessHourPrice"`
}

type UpdateRateRequest struct {
	RateID          uint     `json:"rateId" binding:"required"`
	TenantID        uint     `json:"tenantId" binding:"required"`
	BranchID        uint     `json:"branchId" binding:"required"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	Hours           *int     `json:"hours"`
	ExcessHourPrice *float64 `json:"excessHourPrice"`
	Status          *int     `json:"status"`
}
