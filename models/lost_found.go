package models

import "time"

type LostFoundItem struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	TenantID    uint       `json:"tenantId" gorm:"index;not null"`
	BranchID    uint       `json:"branchId" gorm:"index;not null"`
	RoomID      *uint      `json:"roomId,omitempty" gorm:"index"`
	Description string     `json:"description" gorm:"type:text;not null"`
	FoundBy     uint       `json:"foundBy" gorm:"not null"`
	FoundAt     time.Time  `json:"foundAt" gorm:"not null"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:'FOUND'"`
	ClaimedBy   string     `json:"claimedBy" gorm:"type:varchar(200)"`
	ClaimedAt   *time.Time `json:"claimedAt,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Room        *Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}
