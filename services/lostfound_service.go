package services

import (
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/constants"
	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/errors"
	"github.com/DC-NERI/innWise-sub001/models"
)

// LostFoundService tracks items found in rooms and their handover.
type LostFoundService struct {
	db    *gorm.DB
	audit *AuditService
	now   func() time.Time
}

func NewLostFoundService(db *gorm.DB, audit *AuditService) *LostFoundService {
	if audit == nil {
		audit = NewAuditService()
	}
	return &LostFoundService{db: db, audit: audit, now: time.Now}
}

var validLostFoundStatus = map[string]bool{
	constants.LostFoundFound:    true,
	constants.LostFoundClaimed:  true,
	constants.LostFoundDisposed: true,
}

// Log records a newly found item.
func (s *LostFoundService) Log(req dto.CreateLostFoundRequest, actorID uint) (*models.LostFoundItem, error) {
	item := models.LostFoundItem{
		TenantID:    req.TenantID,
		BranchID:    req.BranchID,
		RoomID:      req.RoomID,
		Description: req.Description,
		FoundBy:     actorID,
		FoundAt:     s.now(),
		Status:      constants.LostFoundFound,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    &req.BranchID,
			UserID:      actorID,
			Action:      models.AuditLostFoundLogged,
			Description: fmt.Sprintf("Lost and found item logged: %s", req.Description),
			TargetType:  "lost_found",
			TargetID:    item.ID,
		})
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to log item", err)
	}
	return &item, nil
}

// Update moves an item to CLAIMED or DISPOSED.
func (s *LostFoundService) Update(req dto.UpdateLostFoundRequest, actorID uint) (*models.LostFoundItem, error) {
	if !validLostFoundStatus[req.Status] {
		return nil, errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("unknown lost and found status %q", req.Status), nil)
	}
	if req.Status == constants.LostFoundClaimed && req.ClaimedBy == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField,
			"claimedBy is required when marking an item claimed", nil)
	}

	var item models.LostFoundItem
	err := s.db.Where("tenant_id = ?", req.TenantID).First(&item, req.ItemID).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "item not found", nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load item", err)
	}
	if item.Status != constants.LostFoundFound {
		return nil, errors.NewAppError(errors.ErrCodeWrongState,
			fmt.Sprintf("item is already %s", item.Status), nil)
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Status == constants.LostFoundClaimed {
		updates["claimed_by"] = req.ClaimedBy
		updates["claimed_at"] = s.now()
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&item).Updates(updates).Error; err != nil {
			return err
		}
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    &item.BranchID,
			UserID:      actorID,
			Action:      models.AuditLostFoundUpdated,
			Description: fmt.Sprintf("Lost and found item %d marked %s", item.ID, req.Status),
			TargetType:  "lost_found",
			TargetID:    item.ID,
		})
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update item", err)
	}
	return &item, nil
}

// List pages items for a branch, newest first.
func (s *LostFoundService) List(tenantID, branchID uint, status string, page, limit int) ([]models.LostFoundItem, int64, error) {
	var items []models.LostFoundItem
	var total int64

	query := s.db.Model(&models.LostFoundItem{}).
		Where("tenant_id = ? AND branch_id = ?", tenantID, branchID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("found_at DESC").
		Preload("Room").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
