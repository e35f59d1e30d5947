package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Ticket is one support request. Codes are sequential per installation, in
// the TASK-AAA000000 form: the digit block rolls over into the letter block.
type Ticket struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Code        string         `json:"code" gorm:"type:varchar(20);uniqueIndex;not null"`
	TenantID    uint           `json:"tenantId" gorm:"index;not null"`
	BranchID    *uint          `json:"branchId,omitempty" gorm:"index"`
	Subject     string         `json:"subject" gorm:"type:varchar(200);not null"`
	Description string         `json:"description" gorm:"type:text"`
	Status      string         `json:"status" gorm:"type:varchar(20);default:'OPEN'"`
	CreatedBy   uint           `json:"createdBy" gorm:"not null"`
	AssignedTo  *uint          `json:"assignedTo,omitempty"`
	Attachments datatypes.JSON `json:"attachments,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

const (
	ticketCodePrefix  = "TASK-"
	firstTicketCode   = "TASK-AAA000000"
	ticketDigitBlock  = 6
	ticketLetterBlock = 3
)

// NextTicketCode returns the code following last. An empty or malformed last
// code restarts the sequence.
func NextTicketCode(last string) string {
	if len(last) != len(firstTicketCode) || last[:len(ticketCodePrefix)] != ticketCodePrefix {
		return firstTicketCode
	}

	letters := []byte(last[len(ticketCodePrefix) : len(ticketCodePrefix)+ticketLetterBlock])
	var digits int
	if _, err := fmt.Sscanf(last[len(ticketCodePrefix)+ticketLetterBlock:], "%d", &digits); err != nil {
		return firstTicketCode
	}

	digits++
	if digits >= 1000000 {
		digits = 0
		for i := ticketLetterBlock - 1; i >= 0; i-- {
			if letters[i] < 'Z' {
				letters[i]++
				break
			}
			letters[i] = 'A'
		}
	}

	return fmt.Sprintf("%s%s%0*d", ticketCodePrefix, letters, ticketDigitBlock, digits)
}
