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

// ReservationService owns the reservation/room lifecycle. Every operation is
// one database transaction: lock the affected rows, validate the current
// state under the lock, mutate, append the audit row, commit. A failed
// precondition rolls the whole unit back; no partial state is ever visible.
//
// When an operation locks both rows it always takes the transaction lock
// before the room lock, so two concurrent operations on the same pair
// serialize on the first lock instead of deadlocking, and the loser sees the
// stale precondition and fails cleanly.
type ReservationService struct {
	db     *gorm.DB
	audit  *AuditService
	board  BoardInvalidator
	logger logger.Logger
	now    func() time.Time
}

type ReservationServiceOptions struct {
	DB     *gorm.DB
	Audit  *AuditService
	Board  BoardInvalidator
	Logger logger.Logger
	Now    func() time.Time
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	if opts.Audit == nil {
		opts.Audit = NewAuditService()
	}
	if opts.Board == nil {
		opts.Board = noopBoardInvalidator{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ReservationService{
		db:     opts.DB,
		audit:  opts.Audit,
		board:  opts.Board,
		logger: opts.Logger,
		now:    opts.Now,
	}
}

// preconditionError marks a business-rule failure: the operation rolls back
// and the message goes to the caller verbatim.
type preconditionError struct {
	msg string
}

func (e *preconditionError) Error() string {
	return e.msg
}

func precondition(format string, v ...interface{}) error {
	return &preconditionError{msg: fmt.Sprintf(format, v...)}
}

// stateFailure decorates a state-machine rejection with the current status.
func stateFailure(err error, status int) error {
	return precondition("%s (current status: %s)", err.Error(), constants.TransactionStatusLabel(status))
}

// failureFrom maps an operation error to the result shape. Precondition
// violations carry their own message; anything else is an unexpected storage
// failure, logged and reported generically.
func (s *ReservationService) failureFrom(err error) *dto.ReservationResult {
	var pre *preconditionError
	if errors.As(err, &pre) {
		return dto.Failure(pre.msg)
	}
	s.logger.Error("reservation operation failed: %v", err)
	return dto.Failure(fmt.Sprintf("database error: %v", err))
}

// lockRoom loads a room under FOR UPDATE, scoped to the tenant and branch.
func (s *ReservationService) lockRoom(tx *gorm.DB, tenantID, branchID, roomID uint) (*models.Room, error) {
	var room models.Room
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ? AND branch_id = ?", tenantID, branchID).
		First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, precondition("room not found")
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// lockTransaction loads a booking under FOR UPDATE, scoped to the tenant and
// branch.
func (s *ReservationService) lockTransaction(tx *gorm.DB, tenantID, branchID, transactionID uint) (*models.Transaction, error) {
	var trx models.Transaction
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ? AND branch_id = ?", tenantID, branchID).
		First(&trx, transactionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, precondition("transaction not found")
	}
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

func (s *ReservationService) activeRate(tx *gorm.DB, tenantID, branchID, rateID uint) (*models.HotelRate, error) {
	var rate models.HotelRate
	err := tx.Where("tenant_id = ? AND branch_id = ? AND status = ?", tenantID, branchID, constants.RateActive).
		First(&rate, rateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, precondition("rate not found or inactive")
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// Create opens a booking. With a room it is a walk-in (immediate check-in)
// or an advance reservation holding that room; without one it is an
// admin-made reservation waiting for branch acceptance.
func (s *ReservationService) Create(req dto.CreateReservationRequest, actorID uint) *dto.ReservationResult {
	var (
		created *models.Transaction
		room    *models.Room
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.activeRate(tx, req.TenantID, req.BranchID, req.RateID); err != nil {
			return err
		}

		trx := models.Transaction{
			TenantID:                 req.TenantID,
			BranchID:                 req.BranchID,
			HotelRateID:              req.RateID,
			ClientName:               req.ClientName,
			Notes:                    req.Notes,
			IsPaid:                   req.IsPaid,
			ReservedCheckInDatetime:  req.ReservedCheckInDatetime,
			ReservedCheckOutDatetime: req.ReservedCheckOutDatetime,
			CreatedByUserID:          actorID,
		}

		if req.RoomID == nil {
			trx.Status = constants.TransactionPendingBranchAcceptance
			trx.IsAccepted = constants.AcceptancePending
			if err := tx.Create(&trx).Error; err != nil {
				return err
			}
			created = &trx
			return s.audit.Record(tx, AuditEntry{
				TenantID:    req.TenantID,
				BranchID:    &req.BranchID,
				UserID:      actorID,
				Action:      models.AuditReservationCreated,
				Description: fmt.Sprintf("Reservation created for %s, pending branch acceptance", req.ClientName),
				TargetType:  "transaction",
				TargetID:    trx.ID,
			})
		}

		// Room known up front: lock it before touching anything else.
		locked, err := s.lockRoom(tx, req.TenantID, req.BranchID, *req.RoomID)
		if err != nil {
			return err
		}
		if locked.IsAvailable != constants.RoomAvailable {
			return precondition("room %s is not available (currently %s)",
				locked.RoomCode, constants.RoomAvailabilityText[locked.IsAvailable])
		}
		if locked.CleaningStatus != constants.CleaningClean {
			return precondition("room %s is not clean (currently %s)",
				locked.RoomCode, constants.CleaningStatusLabel(locked.CleaningStatus))
		}

		trx.HotelRoomID = req.RoomID
		trx.IsAccepted = constants.AcceptanceAccepted
		availability := constants.RoomReserved
		if req.Immediate {
			trx.Status = constants.TransactionCheckedIn
			checkIn := s.now()
			trx.CheckInTime = &checkIn
			availability = constants.RoomOccupied
		} else {
			trx.Status = constants.TransactionReservationWithRoom
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", locked.ID).Updates(map[string]interface{}{
			"is_available":   availability,
			"transaction_id": trx.ID,
		}).Error; err != nil {
			return err
		}
		locked.IsAvailable = availability
		locked.TransactionID = &trx.ID

		created = &trx
		room = locked
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    &req.BranchID,
			UserID:      actorID,
			Action:      models.AuditReservationCreated,
			Description: fmt.Sprintf("Booking created for %s in room %s (%s)", req.ClientName, locked.RoomCode, constants.TransactionStatusLabel(trx.Status)),
			TargetType:  "transaction",
			TargetID:    trx.ID,
			Details:     map[string]interface{}{"roomId": locked.ID, "rateId": req.RateID},
		})
	})
	if err != nil {
		return s.failureFrom(err)
	}
	if room != nil {
		s.board.InvalidateRoomBoard(req.TenantID, req.BranchID)
	}

	return &dto.ReservationResult{
		Success:     true,
		Message:     fmt.Sprintf("Reservation created (%s)", constants.TransactionStatusLabel(created.Status)),
		Transaction: created,
		Room:        room,
	}
}

// Accept resolves a pending admin reservation in the branch's favor.
func (s *ReservationService) Accept(req dto.AcceptReservationRequest, actorID uint) *dto.ReservationResult {
	var accepted *models.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		trx, err := s.lockTransaction(tx, req.TenantID, req.BranchID, req.TransactionID)
		if err != nil {
			return err
		}
		state := models.GetTransactionState(trx.Status)
		if err := state.Accept(trx, req.IsAdvanceReservation); err != nil {
			return stateFailure(err, trx.Status)
		}
		trx.AcceptedByUserID = &actorID

		if err := tx.Model(&models.Transaction{}).Where("id = ?", trx.ID).Updates(map[string]interface{}{
			"status":              trx.Status,
			"is_accepted":         trx.IsAccepted,
			"accepted_by_user_id": actorID,
		}).Error; err != nil {
			return err
		}

		accepted = trx
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    &req.BranchID,
			UserID:      actorID,
			Action:      models.AuditReservationAccepted,
			Description: fmt.Sprintf("Reservation for %s accepted as %s", trx.ClientName, constants.TransactionStatusLabel(trx.Status)),
			TargetType:  "transaction",
			TargetID:    trx.ID,
		})
	})
	if err != nil {
		return s.failureFrom(err)
	}

	return &dto.ReservationResult{
		Success:     true,
		Message:     fmt.Sprintf("Reservation accepted (%s)", constants.TransactionStatusLabel(accepted.Status)),
		Transaction: accepted,
	}
}

// Decline voids a pending admin reservation.
func (s *ReservationService) Decline(req dto.DeclineReservationRequest, actorID uint) *dto.ReservationResult {
	var declined *models.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		trx, err := s.lockTransaction(tx, req.TenantID, req.BranchID, req.TransactionID)
		if err != nil {
			return err
		}
		state := models.GetTransactionState(trx.Status)
		if err := state.Decline(trx); err != nil {
			return stateFailure(err, trx.Status)
		}
		trx.DeclinedByUserID = &actorID

		if err := tx.Model(&models.Transaction{}).Where("id = ?", trx.ID).Updates(map[string]interface{}{
			"status":              trx.Status,
			"is_accepted":         trx.IsAccepted,
			"declined_by_user_id": actorID,
		}).Error; err != nil {
			return err
		}

		declined = trx
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    &req.BranchID,
			UserID:      actorID,
			Action:      models.AuditReservationDeclined,
			Description: fmt.Sprintf("Reservation for %s declined", trx.ClientName),
			TargetType:  "transaction",
			TargetID:    trx.ID,
			Details:     map[string]interface{}{"reason": req.Reason},
		})
	})
	if err != nil {
		return s.failureFrom(err)
	}

	return &dto.ReservationResult{
		Success:     true,
		Message:     "Reservation declined",
		Transaction: declined,
	}
}

// AssignRoomAndCheckIn links a room to a reservation and checks the guest in.
// The transaction row is locked first, matching the order everywhere else;
// the room's availability and cleanliness are checked under its own lock so
// concurrent assignments of the same room cannot both pass.
func (s *ReservationService) AssignRoomAndCheckIn(req dto.AssignRoomRequest, actorID uint) *dto.ReservationResult {
	var (
		updated *models.Transaction
		room    *models.Room
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		trx, err := s.lockTransaction(tx, req.TenantID, req.BranchID, req.TransactionID)
		if err != nil {
			return err
		}

		locked, err := s.lockRoom(tx, req.TenantID, req.BranchID, req.RoomID)
		if err != nil {
			return err
		}
		if locked.IsAvailable != constants.RoomAvailable {
			return precondition("room %s is not available (currently %s)",
				locked.RoomCode, constants.RoomAvailabilityText[locked.IsAvailable])
		}
		if locked.CleaningStatus != constants.CleaningClean {
			return precondition("room %s is not clean (currently %s)",
				locked.RoomCode, constants.CleaningStatusLabel(locked.CleaningStatus))
		}

		state := models.GetTransactionState(trx.Status)
		if err := state.AssignRoom(trx, locked.ID, s.now()); err != nil {
			return stateFailure(err, trx.Status)
		}

		if err := tx.Model(&models.Transaction{}).Where("id = ?", trx.ID).Updates(map[string]interface{}{
			"status":        trx.Status,
			"hotel_room_id": locked.ID,
			"check_in_time": trx.CheckInTime,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", locked.ID).Updates(map[string]interface{}{
			"is_available":   constants.RoomOccupied,
			"transaction_id": trx.ID,
		}).Error; err != nil {
			return err
		}
		locked.IsAvailable = constants.RoomOccupied
		locked.TransactionID = &trx.ID

		updated = trx
		room = locked
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    &req.BranchID,
			UserID:      actorID,
			Action:      models.AuditRoomAssigned,
			Description: fmt.Sprintf("Room %s assigned to %s and guest checked in", locked.RoomCode, trx.ClientName),
			TargetType:  "transaction",
			TargetID:    trx.ID,
			Details:     map[string]interface{}{"roomId": locked.ID},
		})
	})
	if err != nil {
		return s.failureFrom(err)
	}
	s.board.InvalidateRoomBoard(req.TenantID, req.BranchID)

	return &dto.ReservationResult{
		Success:     true,
		Message:     fmt.Sprintf("Guest checked in to room %s", room.RoomCode),
		Transaction: updated,
		Room:        room,
	}
}

// CheckIn checks in a reservation whose room is already linked.
func (s *ReservationService) CheckIn(req dto.CheckInRequest, actorID uint) *dto.ReservationResult {
	var (
		updated *models.Transaction
		room    *models.Room
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		trx, err := s.lockTransaction(tx, req.TenantID, req.BranchID, req.TransactionID)
		if err != nil {
			return err
		}
		if trx.HotelRoomID == nil {
			return precondition("reservation has no room assigned")
		}

		locked, err := s.lockRoom(tx, req.TenantID, req.BranchID, *trx.HotelRoomID)
		if err != nil {
			return err
		}

		state := models.GetTransactionState(trx.Status)
		if err := state.CheckIn(trx, s.now()); err != nil {
			return stateFailure(err, trx.Status)
		}

		if err := tx.Model(&models.Transaction{}).Where("id = ?", trx.ID).Updates(map[string]interface{}{
			"status":        trx.Status,
			"check_in_time": trx.CheckInTime,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", locked.ID).Updates(map[string]interface{}{
			"is_available":   constants.RoomOccupied,
			"transaction_id": trx.ID,
		}).Error; err != nil {
			return err
		}
		locked.IsAvailable = constants.RoomOccupied
		locked.TransactionID = &trx.ID

		updated = trx
		room = locked
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    &req.BranchID,
			UserID:      actorID,
			Action:      models.AuditGuestCheckedIn,
			Description: fmt.Sprintf("%s checked in to room %s", trx.ClientName, locked.RoomCode),
			TargetType:  "transaction",
			TargetID:    trx.ID,
		})
	})
	if err != nil {
		return s.failureFrom(err)
	}
	s.board.InvalidateRoomBoard(req.TenantID, req.BranchID)

	return &dto.ReservationResult{
		Success:     true,
		Message:     fmt.Sprintf("Guest checked in to room %s", room.RoomCode),
		Transaction: updated,
		Room:        room,
	}
}

// UpdateUnassigned edits a reservation that has no room yet. The lifecycle
// status is recomputed from the advance/payment signals, mirroring the
// acceptance rule.
func (s *ReservationService) UpdateUnassigned(req dto.UpdateReservationRequest, actorID uint) *dto.ReservationResult {
	var updated *models.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		trx, err := s.lockTransaction(tx, req.TenantID, req.BranchID, req.TransactionID)
		if err != nil {
			return err
		}
		if trx.Status != constants.TransactionAdvanceReservation && trx.Status != constants.TransactionAdvancePaid {
			return precondition("reservation cannot be updated (current status: %s)",
				constants.TransactionStatusLabel(trx.Status))
		}
		if trx.HotelRoomID != nil {
			return precondition("reservation already has a room assigned")
		}
		if _, err := s.activeRate(tx, req.TenantID, req.BranchID, req.RateID); err != nil {
			return err
		}

		status := constants.TransactionAdvanceReservation
		if req.IsPaid != constants.PaymentUnpaid {
			status = constants.TransactionAdvancePaid
		}

		if err := tx.Model(&models.Transaction{}).Where("id = ?", trx.ID).Updates(map[string]interface{}{
			"status":                      status,
			"client_name":                 req.ClientName,
			"hotel_rate_id":               req.RateID,
			"notes":                       req.Notes,
			"is_paid":                     req.IsPaid,
			"reserved_check_in_datetime":  req.ReservedCheckInDatetime,
			"reserved_check_out_datetime": req.ReservedCheckOutDatetime,
		}).Error; err != nil {
			return err
		}
		trx.Status = status
		trx.ClientName = req.ClientName
		trx.HotelRateID = req.RateID
		trx.Notes = req.Notes
		trx.IsPaid = req.IsPaid
		trx.ReservedCheckInDatetime = req.ReservedCheckInDatetime
		trx.ReservedCheckOutDatetime = req.ReservedCheckOutDatetime

		updated = trx
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    &req.BranchID,
			UserID:      actorID,
			Action:      models.AuditReservationUpdated,
			Description: fmt.Sprintf("Unassigned reservation for %s updated", req.ClientName),
			TargetType:  "transaction",
			TargetID:    trx.ID,
		})
	})
	if err != nil {
		return s.failureFrom(err)
	}

	return &dto.ReservationResult{
		Success:     true,
		Message:     "Reservation updated",
		Transaction: updated,
	}
}

// UpdateAssigned edits a reservation that already holds a room. The status is
// held constant.
func (s *ReservationService) UpdateAssigned(req dto.UpdateReservationRequest, actorID uint) *dto.ReservationResult {
	var updated *models.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		trx, err := s.lockTransaction(tx, req.TenantID, req.BranchID, req.TransactionID)
		if err != nil {
			return err
		}
		if trx.Status != constants.TransactionReservationWithRoom {
			return precondition("reservation cannot be updated (current status: %s)",
				constants.TransactionStatusLabel(trx.Status))
		}
		if _, err := s.activeRate(tx, req.TenantID, req.BranchID, req.RateID); err != nil {
			return err
		}

		if err := tx.Model(&models.Transaction{}).Where("id = ?", trx.ID).Updates(map[string]interface{}{
			"client_name":                 req.ClientName,
			"hotel_rate_id":               req.RateID,
			"notes":                       req.Notes,
			"is_paid":                     req.IsPaid,
			"reserved_check_in_datetime":  req.ReservedCheckInDatetime,
			"reserved_check_out_datetime": req.ReservedCheckOutDatetime,
		}).Error; err != nil {
			return err
		}
		trx.ClientName = req.ClientName
		trx.HotelRateID = req.RateID
		trx.Notes = req.Notes
		trx.IsPaid = req.IsPaid
		trx.ReservedCheckInDatetime = req.ReservedCheckInDatetime
		trx.ReservedCheckOutDatetime = req.ReservedCheckOutDatetime

		updated = trx
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    &req.BranchID,
			UserID:      actorID,
			Action:      models.AuditReservationUpdated,
			Description: fmt.Sprintf("Room-assigned reservation for %s updated", req.ClientName),
			TargetType:  "transaction",
			TargetID:    trx.ID,
		})
	})
	if err != nil {
		return s.failureFrom(err)
	}

	return &dto.ReservationResult{
		Success:     true,
		Message:     "Reservation updated",
		Transaction: updated,
	}
}

// Cancel voids a reservation that is not yet checked in. A linked room is
// released back to available.
func (s *ReservationService) Cancel(req dto.CancelReservationRequest, actorID uint) *dto.ReservationResult {
	var (
		cancelled *models.Transaction
		room      *models.Room
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		trx, err := s.lockTransaction(tx, req.TenantID, req.BranchID, req.TransactionID)
		if err != nil {
			return err
		}

		var locked *models.Room
		if trx.HotelRoomID != nil {
			locked, err = s.lockRoom(tx, req.TenantID, req.BranchID, *trx.HotelRoomID)
			if err != nil {
				return err
			}
		}

		state := models.GetTransactionState(trx.Status)
		if err := state.Cancel(trx); err != nil {
			return stateFailure(err, trx.Status)
		}

		if err := tx.Model(&models.Transaction{}).Where("id = ?", trx.ID).Updates(map[string]interface{}{
			"status": trx.Status,
		}).Error; err != nil {
			return err
		}

		if locked != nil {
			if err := tx.Model(&models.Room{}).Where("id = ?", locked.ID).Updates(map[string]interface{}{
				"is_available":   constants.RoomAvailable,
				"transaction_id": nil,
			}).Error; err != nil {
				return err
			}
			locked.IsAvailable = constants.RoomAvailable
			locked.TransactionID = nil
		}

		cancelled = trx
		room = locked
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    &req.BranchID,
			UserID:      actorID,
			Action:      models.AuditReservationCancelled,
			Description: fmt.Sprintf("Reservation for %s cancelled", trx.ClientName),
			TargetType:  "transaction",
			TargetID:    trx.ID,
		})
	})
	if err != nil {
		return s.failureFrom(err)
	}
	if room != nil {
		s.board.InvalidateRoomBoard(req.TenantID, req.BranchID)
	}

	return &dto.ReservationResult{
		Success:     true,
		Message:     "Reservation cancelled",
		Transaction: cancelled,
		Room:        room,
	}
}

// CheckOut closes a checked-in stay: the bill is computed from the rate and
// the hours used, the room is released and sent to housekeeping inspection,
// and a cleaning log row is appended. The CHECKED_IN precondition is
// re-verified under the row lock, so a concurrent second checkout fails
// instead of double-charging.
func (s *ReservationService) CheckOut(req dto.CheckOutRequest, actorID uint) *dto.ReservationResult {
	var (
		closed *models.Transaction
		room   *models.Room
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		trx, err := s.lockTransaction(tx, req.TenantID, req.BranchID, req.TransactionID)
		if err != nil {
			return err
		}
		if trx.HotelRoomID == nil {
			return precondition("transaction has no room linked")
		}

		locked, err := s.lockRoom(tx, req.TenantID, req.BranchID, *trx.HotelRoomID)
		if err != nil {
			return err
		}

		var rate models.HotelRate
		if err := tx.First(&rate, trx.HotelRateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return precondition("rate not found")
			}
			return err
		}
		if trx.CheckInTime == nil {
			return precondition("transaction has no check-in time recorded")
		}

		now := s.now()
		state := models.GetTransactionState(trx.Status)
		if err := state.CheckOut(trx, now); err != nil {
			return stateFailure(err, trx.Status)
		}

		hoursUsed, total := ComputeBill(&rate, *trx.CheckInTime, now)
		trx.HoursUsed = hoursUsed
		trx.TotalAmount = total
		trx.TenderAmount = req.TenderAmount
		trx.CheckOutByUserID = &actorID

		if err := tx.Model(&models.Transaction{}).Where("id = ?", trx.ID).Updates(map[string]interface{}{
			"status":               trx.Status,
			"is_paid":              trx.IsPaid,
			"check_out_time":       trx.CheckOutTime,
			"hours_used":           hoursUsed,
			"total_amount":         total,
			"tender_amount":        req.TenderAmount,
			"check_out_by_user_id": actorID,
		}).Error; err != nil {
			return err
		}

		cleaningNote := fmt.Sprintf("Post-checkout inspection for transaction #%d (%s)", trx.ID, trx.ClientName)
		if err := tx.Model(&models.Room{}).Where("id = ?", locked.ID).Updates(map[string]interface{}{
			"is_available":    constants.RoomAvailable,
			"transaction_id":  nil,
			"cleaning_status": constants.CleaningInspection,
			"cleaning_notes":  cleaningNote,
		}).Error; err != nil {
			return err
		}
		locked.IsAvailable = constants.RoomAvailable
		locked.TransactionID = nil
		locked.CleaningStatus = constants.CleaningInspection
		locked.CleaningNotes = cleaningNote

		cleaningLog := models.CleaningLog{
			TenantID: req.TenantID,
			BranchID: req.BranchID,
			RoomID:   locked.ID,
			Status:   constants.CleaningInspection,
			Notes:    cleaningNote,
			UserID:   actorID,
		}
		if err := tx.Create(&cleaningLog).Error; err != nil {
			return err
		}

		closed = trx
		room = locked
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    &req.BranchID,
			UserID:      actorID,
			Action:      models.AuditGuestCheckedOut,
			Description: fmt.Sprintf("%s checked out of room %s, %d hour(s), total %.2f", trx.ClientName, locked.RoomCode, hoursUsed, total),
			TargetType:  "transaction",
			TargetID:    trx.ID,
			Details: map[string]interface{}{
				"hoursUsed":    hoursUsed,
				"totalAmount":  total,
				"tenderAmount": req.TenderAmount,
			},
		})
	})
	if err != nil {
		return s.failureFrom(err)
	}
	s.board.InvalidateRoomBoard(req.TenantID, req.BranchID)

	return &dto.ReservationResult{
		Success:     true,
		Message:     fmt.Sprintf("Guest checked out, total %.2f", closed.TotalAmount),
		Transaction: closed,
		Room:        room,
	}
}

// GetByID loads one transaction with its room and rate.
func (s *ReservationService) GetByID(tenantID, branchID, transactionID uint) (*models.Transaction, error) {
	var trx models.Transaction
	err := s.db.Preload("HotelRoom").Preload("HotelRate").
		Where("tenant_id = ? AND branch_id = ?", tenantID, branchID).
		First(&trx, transactionID).Error
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

// ListByBranch pages through a branch's transactions, optionally filtered by
// lifecycle status.
func (s *ReservationService) ListByBranch(tenantID, branchID uint, status *int, page, limit int) ([]models.Transaction, int64, error) {
	var rows []models.Transaction
	var total int64

	query := s.db.Model(&models.Transaction{}).
		Where("tenant_id = ? AND branch_id = ?", tenantID, branchID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Preload("HotelRoom").Preload("HotelRate").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
