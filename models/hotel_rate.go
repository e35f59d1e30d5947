package models

import "time"

// HotelRate is a named price+duration plan. Read-only reference data for the
// reservation lifecycle; mutated only through catalog administration.
type HotelRate struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	TenantID        uint      `json:"tenantId" gorm:"index;not null"`
	BranchID        uint      `json:"branchId" gorm:"index;not null"`
	Name            string    `json:"name" gorm:"type:varchar(100);not null"`
	Price           float64   `json:"price" gorm:"not null"`
	Hours           int       `json:"hours" gorm:"default:0"`
	ExcessHourPrice *float64  `json:"excessHourPrice,omitempty"`
	Status          int       `json:"status" gorm:"default:1"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
