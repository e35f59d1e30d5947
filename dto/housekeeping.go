package dto

import "github.com/DC-NERI/innWise-sub001/models"

type SetCleaningStatusRequest struct {
	TenantID uint   `json:"tenantId" binding:"required"`
	BranchID uint   `json:"branchId" binding:"required"`
	RoomID   uint   `json:"roomId" binding:"required"`
	Status   int    `json:"status" binding:"required"`
	Notes    string `json:"notes"`
}

type HousekeepingResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Room    *models.Room        `json:"room,omitempty"`
	Log     *models.CleaningLog `json:"log,omitempty"`
}
