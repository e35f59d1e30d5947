package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DC-NERI/innWise-sub001/constants"
	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/models"
	"github.com/DC-NERI/innWise-sub001/services/logger"
)

// HousekeepingService records room cleaning-state transitions. Each change
// updates the room row and appends one immutable cleaning log row in the
// same database transaction.
type HousekeepingService struct {
	db     *gorm.DB
	audit  *AuditService
	board  BoardInvalidator
	logger logger.Logger
}

func NewHousekeepingService(db *gorm.DB, audit *AuditService, board BoardInvalidator, log logger.Logger) *HousekeepingService {
	if audit == nil {
		audit = NewAuditService()
	}
	if board == nil {
		board = noopBoardInvalidator{}
	}
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &HousekeepingService{db: db, audit: audit, board: board, logger: log}
}

// SetCleaningStatus moves a room to a new cleaning status. Notes are
// mandatory when the status signals a problem; the validation layer enforces
// that before this is called, and the check here is the backstop.
func (s *HousekeepingService) SetCleaningStatus(req dto.SetCleaningStatusRequest, actorID uint) *dto.HousekeepingResult {
	if !constants.CleaningStatusValid(req.Status) {
		return &dto.HousekeepingResult{Success: false, Message: fmt.Sprintf("invalid cleaning status value: %d", req.Status)}
	}
	if constants.CleaningStatusNeedsNotes(req.Status) && req.Notes == "" {
		return &dto.HousekeepingResult{
			Success: false,
			Message: fmt.Sprintf("notes are required when marking a room %s", constants.CleaningStatusLabel(req.Status)),
		}
	}

	var (
		room models.Room
		log  models.CleaningLog
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("tenant_id = ? AND branch_id = ?", req.TenantID, req.BranchID).
			First(&room, req.RoomID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &preconditionError{msg: "room not found"}
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).Updates(map[string]interface{}{
			"cleaning_status": req.Status,
			"cleaning_notes":  req.Notes,
		}).Error; err != nil {
			return err
		}
		room.CleaningStatus = req.Status
		room.CleaningNotes = req.Notes

		log = models.CleaningLog{
			TenantID: req.TenantID,
			BranchID: req.BranchID,
			RoomID:   room.ID,
			Status:   req.Status,
			Notes:    req.Notes,
			UserID:   actorID,
		}
		if err := tx.Create(&log).Error; err != nil {
			return err
		}

		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    &req.BranchID,
			UserID:      actorID,
			Action:      models.AuditCleaningStatusSet,
			Description: fmt.Sprintf("Room %s marked %s", room.RoomCode, constants.CleaningStatusLabel(req.Status)),
			TargetType:  "room",
			TargetID:    room.ID,
		})
	})
	if err != nil {
		var pre *preconditionError
		if errors.As(err, &pre) {
			return &dto.HousekeepingResult{Success: false, Message: pre.msg}
		}
		s.logger.Error("cleaning status update failed: %v", err)
		return &dto.HousekeepingResult{Success: false, Message: fmt.Sprintf("database error: %v", err)}
	}
	s.board.InvalidateRoomBoard(req.TenantID, req.BranchID)

	return &dto.HousekeepingResult{
		Success: true,
		Message: fmt.Sprintf("Room %s marked %s", room.RoomCode, constants.CleaningStatusLabel(req.Status)),
		Room:    &room,
		Log:     &log,
	}
}

// RoomHistory returns the cleaning log for one room, newest first.
func (s *HousekeepingService) RoomHistory(tenantID, branchID, roomID uint, page, limit int) ([]models.CleaningLog, int64, error) {
	var rows []models.CleaningLog
	var total int64

	query := s.db.Model(&models.CleaningLog{}).
		Where("tenant_id = ? AND branch_id = ? AND room_id = ?", tenantID, branchID, roomID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// BranchOverview lists rooms for a branch with their housekeeping state, for
// the housekeeping dashboard.
func (s *HousekeepingService) BranchOverview(tenantID, branchID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.Where("tenant_id = ? AND branch_id = ?", tenantID, branchID).
		Order("room_code").
		Find(&rooms).Error
	return rooms, err
}

// StaleInspections returns rooms sitting in inspection longer than maxAge.
// Used by the nightly housekeeping report job.
func (s *HousekeepingService) StaleInspections(maxAge time.Duration) ([]models.Room, error) {
	cutoff := time.Now().Add(-maxAge)
	var rooms []models.Room
	err := s.db.Where("cleaning_status = ? AND updated_at < ?", constants.CleaningInspection, cutoff).
		Find(&rooms).Error
	return rooms, err
}
