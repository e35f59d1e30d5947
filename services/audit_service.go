package services

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/models"
)

// AuditService appends audit log rows. Record takes the caller's open
// database transaction so the audit row commits or rolls back together with
// the state change it documents.
type AuditService struct{}

func NewAuditService() *AuditService {
	return &AuditService{}
}

// AuditEntry describes one action to record.
type AuditEntry struct {
	TenantID    uint
	BranchID    *uint
	UserID      uint
	Action      string
	Description string
	TargetType  string
	TargetID    uint
	Details     interface{}
}

// Record appends one audit row inside tx. A failure here must abort the
// surrounding operation, so the error is returned as-is.
func (s *AuditService) Record(tx *gorm.DB, entry AuditEntry) error {
	row := models.AuditLog{
		EventID:     uuid.NewString(),
		TenantID:    entry.TenantID,
		BranchID:    entry.BranchID,
		UserID:      entry.UserID,
		Action:      entry.Action,
		Description: entry.Description,
		TargetType:  entry.TargetType,
		TargetID:    entry.TargetID,
	}
	if entry.Details != nil {
		payload, err := json.Marshal(entry.Details)
		if err != nil {
			return err
		}
		row.Details = datatypes.JSON(payload)
	}
	return tx.Create(&row).Error
}

// List returns audit rows for a tenant, newest first.
func (s *AuditService) List(db *gorm.DB, tenantID uint, branchID *uint, page, limit int) ([]models.AuditLog, int64, error) {
	var rows []models.AuditLog
	var total int64

	query := db.Model(&models.AuditLog{}).Where("tenant_id = ?", tenantID)
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
