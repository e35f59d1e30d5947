package models

import "time"

type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	TenantID    uint       `gorm:"index;not null" json:"tenantId"`
	BranchID    *uint      `gorm:"index" json:"branchId,omitempty"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Email       string     `gorm:"uniqueIndex;type:varchar(100);not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	PhoneNumber string     `gorm:"type:varchar(20)" json:"phoneNumber"`
	Avatar      string     `json:"avatar"`
	Role        int        `gorm:"default:3" json:"role"`
	Status      int        `gorm:"default:1" json:"status"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	Tenant      *Tenant    `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Branch      *Branch    `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
}
