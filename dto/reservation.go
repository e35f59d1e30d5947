package dto

import (
	"time"

	"github.com/DC-NERI/innWise-sub001/models"
)

// ReservationResult is the shape every lifecycle operation returns. Business
// failures come back with Success=false and a human-readable message; the
// updated entities ride along on success.
type ReservationResult struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty"`
	Transaction *models.Transaction `json:"transaction,omitempty"`
	Room        *models.Room        `json:"room,omitempty"`
}

// Failure builds a failed result.
func Failure(message string) *ReservationResult {
	return &ReservationResult{Success: false, Message: message}
}

// CreateReservationRequest covers both creation paths. When RoomID is set the
// booking is a walk-in (Immediate=true) or an advance reservation with the
// room already chosen; without RoomID it is an admin-made reservation that
// waits for branch acceptance.
type CreateReservationRequest struct {
	TenantID   uint   `json:"tenantId" binding:"required"`
	BranchID   uint   `json:"branchId" binding:"required"`
	RoomID     *uint  `json:"roomId"`
	RateID     uint   `json:"rateId" binding:"required"`
	ClientName string `json:"clientName" binding:"required"`
	Notes      string `json:"notes"`
	Immediate  bool   `json:"immediate"`
	IsPaid     int    `json:"isPaid"`

	ReservedCheckInDatetime  *time.Time `json:"reservedCheckInDatetime"`
	ReservedCheckOutDatetime *time.Time `json:"reservedCheckOutDatetime"`
}

// AcceptReservationRequest resolves a pending admin reservation.
type AcceptReservationRequest struct {
	TenantID             uint `json:"tenantId" binding:"required"`
	BranchID             uint `json:"branchId" binding:"required"`
	TransactionID        uint `json:"transactionId" binding:"required"`
	IsAdvanceReservation bool `json:"isAdvanceReservation"`
}

type DeclineReservationRequest struct {
	TenantID      uint   `json:"tenantId" binding:"required"`
	BranchID      uint   `json:"branchId" binding:"required"`
	TransactionID uint   `json:"transactionId" binding:"required"`
	Reason        string `json:"reason"`
}

type AssignRoomRequest struct {
	TenantID      uint `json:"tenantId" binding:"required"`
	BranchID      uint `json:"branchId" binding:"required"`
	TransactionID uint `json:"transactionId" binding:"required"`
	RoomID        uint `json:"roomId" binding:"required"`
}

type CheckInRequest struct {
	TenantID      uint `json:"tenantId" binding:"required"`
	BranchID      uint `json:"branchId" binding:"required"`
	TransactionID uint `json:"transactionId" binding:"required"`
}

type CheckOutRequest struct {
	TenantID      uint    `json:"tenantId" binding:"required"`
	BranchID      uint    `json:"branchId" binding:"required"`
	TransactionID uint    `json:"transactionId" binding:"required"`
	TenderAmount  float64 `json:"tenderAmount"`
}

type CancelReservationRequest struct {
	TenantID      uint `json:"tenantId" binding:"required"`
	BranchID      uint `json:"branchId" binding:"required"`
	TransactionID uint `json:"transactionId" binding:"required"`
}

// UpdateReservationRequest edits reservation details; the service decides
// which variant (unassigned or room-assigned) applies.
type UpdateReservationRequest struct {
	TenantID      uint   `json:"tenantId" binding:"required"`
	BranchID      uint   `json:"branchId" binding:"required"`
	TransactionID uint   `json:"transactionId" binding:"required"`
	ClientName    string `json:"clientName" binding:"required"`
	RateID        uint   `json:"rateId" binding:"required"`
	Notes         string `json:"notes"`
	IsPaid        int    `json:"isPaid"`

	ReservedCheckInDatetime  *time.Time `json:"reservedCheckInDatetime"`
	ReservedCheckOutDatetime *time.Time `json:"reservedCheckOutDatetime"`
}

// SearchReservationsQuery drives the fuzzy client-name search.
type SearchReservationsQuery struct {
	Query string `form:"q" binding:"required"`
	Limit int    `form:"limit"`
}

// ScoredTransaction pairs a transaction with its search relevance score.
type ScoredTransaction struct {
	Transaction models.Transaction `json:"transaction"`
	Score       float64            `json:"score"`
}
