package models

import "time"

type Tenant struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Code        string    `json:"code" gorm:"type:varchar(20);uniqueIndex;not null"`
	Email       string    `json:"email" gorm:"type:varchar(100)"`
	Status      int       `json:"status" gorm:"default:1"`
	MaxBranches int       `json:"maxBranches" gorm:"default:1"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Branches    []Branch  `json:"branches,omitempty" gorm:"foreignKey:TenantID"`
}

type Branch struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TenantID  uint      `json:"tenantId" gorm:"not null;uniqueIndex:idx_branch_tenant_code"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Code      string    `json:"code" gorm:"type:varchar(20);not null;uniqueIndex:idx_branch_tenant_code"`
	Address   string    `json:"address" gorm:"type:text"`
	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Tenant    *Tenant   `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}
