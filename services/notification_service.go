package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/models"
	"github.com/DC-NERI/innWise-sub001/services/logger"
	"github.com/DC-NERI/innWise-sub001/services/notification"
)

// NotificationService persists notifications and pushes them to connected
// websocket sessions.
type NotificationService struct {
	db     *gorm.DB
	sender notification.Service
	log    logger.Logger
}

func NewNotificationService(db *gorm.DB, sender notification.Service, log logger.Logger) *NotificationService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &NotificationService{db: db, sender: sender, log: log}
}

// Notify stores a notification and broadcasts it. A broadcast failure is
// logged, not returned; the stored row is the source of truth.
func (s *NotificationService) Notify(tenantID uint, branchID *uint, userID *uint, eventType, title, message string) (*models.Notification, error) {
	row := models.Notification{
		TenantID: tenantID,
		BranchID: branchID,
		UserID:   userID,
		Title:    title,
		Message:  message,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}

	if s.sender != nil {
		var branch uint
		if branchID != nil {
			branch = *branchID
		}
		payload := notification.BuildEvent(eventType, tenantID, branch, message)
		if err := s.sender.SendMessage(payload); err != nil {
			s.log.Error("failed to broadcast notification %d: %v", row.ID, err)
		}
	}
	return &row, nil
}

// ListForUser pages a user's notifications, unread first.
func (s *NotificationService) ListForUser(tenantID, userID uint, page, limit int) ([]models.Notification, int64, error) {
	var rows []models.Notification
	var total int64

	query := s.db.Model(&models.Notification{}).
		Where("tenant_id = ? AND (user_id = ? OR user_id IS NULL)", tenantID, userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("is_read ASC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// MarkRead flags a notification as read for its owner.
func (s *NotificationService) MarkRead(tenantID, userID, notificationID uint) error {
	return s.db.Model(&models.Notification{}).
		Where("id = ? AND tenant_id = ? AND (user_id = ? OR user_id IS NULL)", notificationID, tenantID, userID).
		Update("is_read", true).Error
}

// PruneRead deletes read notifications older than maxAge. Run nightly.
func (s *NotificationService) PruneRead(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	result := s.db.Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&models.Notification{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		s.log.Info("pruned %d read notifications older than %s", result.RowsAffected, cutoff.Format(time.RFC3339))
	}
	return result.RowsAffected, nil
}
