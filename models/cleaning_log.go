package models

import "time"

// CleaningLog is one append-only row per cleaning-status transition. Rows are
// never updated or deleted.
type CleaningLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TenantID  uint      `json:"tenantId" gorm:"index;not null"`
	BranchID  uint      `json:"branchId" gorm:"index;not null"`
	RoomID    uint      `json:"roomId" gorm:"index;not null"`
	Status    int       `json:"status" gorm:"not null"`
	Notes     string    `json:"notes" gorm:"type:text"`
	UserID    uint      `json:"userId" gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Room      *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
