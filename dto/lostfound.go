package dto

type CreateLostFoundRequest struct {
	TenantID    uint   `json:"tenantId" binding:"required"`
	BranchID    uint   `json:"branchId" binding:"required"`
	RoomID      *uint  `json:"roomId"`
	Description string `json:"description" binding:"required"`
}

type UpdateLostFoundRequest struct {
	ItemID    uint   `json:"itemId" binding:"required"`
	TenantID  uint   `json:"tenantId" binding:"required"`
	Status    string `json:"status" binding:"required"`
	ClaimedBy string `json:"claimedBy"`
}
