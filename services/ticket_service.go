package services

import (
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DC-NERI/innWise-sub001/constants"
	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/errors"
	"github.com/DC-NERI/innWise-sub001/models"
)

// TicketService manages support tickets. Code assignment locks the latest
// ticket row so concurrent creates never reuse a code.
type TicketService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewTicketService(db *gorm.DB, audit *AuditService) *TicketService {
	if audit == nil {
		audit = NewAuditService()
	}
	return &TicketService{db: db, audit: audit}
}

var validTicketStatus = map[string]bool{
	constants.TicketOpen:       true,
	constants.TicketInProgress: true,
	constants.TicketResolved:   true,
	constants.TicketClosed:     true,
}

// Create opens a ticket with the next sequential code. The lock on the
// latest ticket row serializes concurrent creates, except when the table is
// empty or a competing insert lands after the read; the unique index on the
// code then rejects the loser, so a duplicate-key failure is retried once
// with a freshly allocated code.
func (s *TicketService) Create(req dto.CreateTicketRequest, actorID uint) (*models.Ticket, error) {
	ticket, err := s.createWithNextCode(req, actorID)
	if err != nil && isDuplicateKey(err) {
		ticket, err = s.createWithNextCode(req, actorID)
	}
	if err != nil {
		if isDuplicateKey(err) {
			return nil, errors.NewAppError(errors.ErrCodeDBDuplicate, "ticket code already taken, please retry", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create ticket", err)
	}
	return ticket, nil
}

func (s *TicketService) createWithNextCode(req dto.CreateTicketRequest, actorID uint) (*models.Ticket, error) {
	ticket := models.Ticket{
		TenantID:    req.TenantID,
		BranchID:    req.BranchID,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      constants.TicketOpen,
		CreatedBy:   actorID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var last models.Ticket
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Order("id DESC").
			First(&last).Error
		if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		ticket.Code = models.NextTicketCode(last.Code)

		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    req.BranchID,
			UserID:      actorID,
			Action:      models.AuditTicketCreated,
			Description: fmt.Sprintf("Ticket %s opened: %s", ticket.Code, ticket.Subject),
			TargetType:  "ticket",
			TargetID:    ticket.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Update changes status or assignment on a ticket.
func (s *TicketService) Update(req dto.UpdateTicketRequest, actorID uint) (*models.Ticket, error) {
	if req.Status != "" && !validTicketStatus[req.Status] {
		return nil, errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("unknown ticket status %q", req.Status), nil)
	}

	var ticket models.Ticket
	err := s.db.Where("tenant_id = ?", req.TenantID).First(&ticket, req.TicketID).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "ticket not found", nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load ticket", err)
	}
	if ticket.Status == constants.TicketClosed {
		return nil, errors.NewAppError(errors.ErrCodeWrongState, "ticket is already closed", nil)
	}

	updates := map[string]interface{}{}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.AssignedTo != nil {
		updates["assigned_to"] = *req.AssignedTo
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&ticket).Updates(updates).Error; err != nil {
				return err
			}
		}
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    ticket.BranchID,
			UserID:      actorID,
			Action:      models.AuditTicketUpdated,
			Description: fmt.Sprintf("Ticket %s updated", ticket.Code),
			TargetType:  "ticket",
			TargetID:    ticket.ID,
			Details:     map[string]interface{}{"changes": updates, "comment": req.Comment},
		})
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update ticket", err)
	}
	return &ticket, nil
}

// List pages tickets for a tenant, optionally filtered by status.
func (s *TicketService) List(tenantID uint, status string, page, limit int) ([]models.Ticket, int64, error) {
	var tickets []models.Ticket
	var total int64

	query := s.db.Model(&models.Ticket{}).Where("tenant_id = ?", tenantID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tickets).Error; err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

// Get returns one ticket scoped to a tenant.
func (s *TicketService) Get(tenantID, ticketID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.db.Where("tenant_id = ?", tenantID).First(&ticket, ticketID).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "ticket not found", nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load ticket", err)
	}
	return &ticket, nil
}
