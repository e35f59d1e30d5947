package models

import (
	"time"

	"gorm.io/datatypes"
)

// Audit action tags.
const (
	AuditReservationCreated   = "RESERVATION_CREATED"
	AuditReservationAccepted  = "RESERVATION_ACCEPTED"
	AuditReservationDeclined  = "RESERVATION_DECLINED"
	AuditReservationUpdated   = "RESERVATION_UPDATED"
	AuditRoomAssigned         = "ROOM_ASSIGNED"
	AuditGuestCheckedIn       = "GUEST_CHECKED_IN"
	AuditGuestCheckedOut      = "GUEST_CHECKED_OUT"
	AuditReservationCancelled = "RESERVATION_CANCELLED"
	AuditCleaningStatusSet    = "CLEANING_STATUS_SET"
	AuditUserLogin            = "USER_LOGIN"
	AuditUserCreated          = "USER_CREATED"
	AuditTicketCreated        = "TICKET_CREATED"
	AuditTicketUpdated        = "TICKET_UPDATED"
	AuditLostFoundLogged      = "LOST_FOUND_LOGGED"
	AuditLostFoundUpdated     = "LOST_FOUND_UPDATED"
)

// AuditLog is an append-only record of an administrative or staff action,
// written in the same database transaction as the state change it documents.
type AuditLog struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	EventID     string         `json:"eventId" gorm:"type:varchar(36);uniqueIndex;not null"`
	TenantID    uint           `json:"tenantId" gorm:"index;not null"`
	BranchID    *uint          `json:"branchId,omitempty" gorm:"index"`
	UserID      uint           `json:"userId" gorm:"index;not null"`
	Action      string         `json:"action" gorm:"type:varchar(64);index;not null"`
	Description string         `json:"description" gorm:"type:text"`
	TargetType  string         `json:"targetType" gorm:"type:varchar(40)"`
	TargetID    uint           `json:"targetId"`
	Details     datatypes.JSON `json:"details,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
}
