package models

import (
	"time"

	"github.com/DC-NERI/innWise-sub001/constants"
)

// Transaction is one guest booking/stay. It is the unit the reservation
// lifecycle operates on and is always scoped by tenant and branch.
type Transaction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TenantID    uint      `json:"tenantId" gorm:"index;not null"`
	BranchID    uint      `json:"branchId" gorm:"index;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Status     int `json:"status" gorm:"not null"`
	IsAccepted int `json:"isAccepted" gorm:"default:0"`
	IsPaid     int `json:"isPaid" gorm:"default:0"`

	HotelRoomID *uint  `json:"hotelRoomId,omitempty" gorm:"index"`
	HotelRateID uint   `json:"hotelRateId" gorm:"not null"`
	ClientName  string `json:"clientName" gorm:"type:varchar(200);not null"`
	Notes       string `json:"notes" gorm:"type:text"`

	ReservedCheckInDatetime  *time.Time `json:"reservedCheckInDatetime,omitempty"`
	ReservedCheckOutDatetime *time.Time `json:"reservedCheckOutDatetime,omitempty"`
	CheckInTime              *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime             *time.Time `json:"checkOutTime,omitempty"`

	HoursUsed    int     `json:"hoursUsed" gorm:"default:0"`
	TotalAmount  float64 `json:"totalAmount" gorm:"default:0"`
	TenderAmount float64 `json:"tenderAmount" gorm:"default:0"`

	CreatedByUserID  uint  `json:"createdByUserId" gorm:"not null"`
	AcceptedByUserID *uint `json:"acceptedByUserId,omitempty"`
	DeclinedByUserID *uint `json:"declinedByUserId,omitempty"`
	CheckOutByUserID *uint `json:"checkOutByUserId,omitempty"`

	HotelRoom *Room      `json:"hotelRoom,omitempty" gorm:"foreignKey:HotelRoomID"`
	HotelRate *HotelRate `json:"hotelRate,omitempty" gorm:"foreignKey:HotelRateID"`
}

// Terminal reports whether the transaction reached a final lifecycle stage.
// Terminal transactions are immutable except for audit annotations.
func (t *Transaction) Terminal() bool {
	return t.Status == constants.TransactionCheckedOut || t.Status == constants.TransactionVoidedCancelled
}

// RoomAssigned reports whether a physical room is linked.
func (t *Transaction) RoomAssigned() bool {
	return t.HotelRoomID != nil
}

// EffectiveCheckInTime picks the reserved check-in time when one was
// recorded, otherwise the supplied instant.
func (t *Transaction) EffectiveCheckInTime(now time.Time) time.Time {
	if t.ReservedCheckInDatetime != nil {
		return *t.ReservedCheckInDatetime
	}
	return now
}
