package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/DC-NERI/innWise-sub001/constants"
)

type Room struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	TenantID       uint          `json:"tenantId" gorm:"not null;uniqueIndex:idx_room_tenant_branch_code"`
	BranchID       uint          `json:"branchId" gorm:"not null;uniqueIndex:idx_room_tenant_branch_code"`
	RoomCode       string        `json:"roomCode" gorm:"type:varchar(20);not null;uniqueIndex:idx_room_tenant_branch_code"`
	RoomName       string        `json:"roomName" gorm:"type:varchar(100);not null"`
	Floor          string        `json:"floor" gorm:"type:varchar(10)"`
	IsAvailable    int           `json:"isAvailable" gorm:"default:1"`
	CleaningStatus int           `json:"cleaningStatus" gorm:"default:1"`
	CleaningNotes  string        `json:"cleaningNotes" gorm:"type:text"`
	TransactionID  *uint         `json:"transactionId,omitempty" gorm:"index"`
	RateIDs        pq.Int64Array `json:"rateIds" gorm:"type:integer[]"`
	Status         int           `json:"status" gorm:"default:1"`
	Avatar         string        `json:"avatar"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Transaction    *Transaction  `json:"transaction,omitempty" gorm:"foreignKey:TransactionID"`
}

// Occupied reports whether the room currently carries an active transaction.
func (r *Room) Occupied() bool {
	return r.TransactionID != nil
}

// ValidateLink checks the room/transaction coupling invariant: a room points
// at a transaction exactly when it is occupied or reserved.
func (r *Room) ValidateLink() error {
	linked := r.TransactionID != nil
	busy := r.IsAvailable == constants.RoomOccupied || r.IsAvailable == constants.RoomReserved
	if linked != busy {
		return fmt.Errorf("room %d link/state mismatch: transaction_id set=%t, availability=%d", r.ID, linked, r.IsAvailable)
	}
	return nil
}
