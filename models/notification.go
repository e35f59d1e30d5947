package models

import "time"

type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TenantID  uint      `json:"tenantId" gorm:"index;not null"`
	BranchID  *uint     `json:"branchId,omitempty" gorm:"index"`
	UserID    *uint     `json:"userId,omitempty" gorm:"index"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null"`
	Message   string    `json:"message" gorm:"type:text"`
	IsRead    bool      `json:"isRead" gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
