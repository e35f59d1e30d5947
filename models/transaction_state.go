package models

import (
	"errors"
	"time"

	"github.com/DC-NERI/innWise-sub001/constants"
)

// TransactionState defines the operations a transaction supports in one
// lifecycle stage. Methods mutate the transaction in memory only; persisting
// the result (and the coupled room update) is the reservation service's job.
type TransactionState interface {
	// Accept resolves a pending admin reservation. isAdvance is the explicit
	// advance-reservation flag from the acceptance payload; the payment
	// status already recorded on the transaction breaks ties.
	Accept(t *Transaction, isAdvance bool) error
	Decline(t *Transaction) error
	// AssignRoom links a room and checks the guest in at the same time.
	AssignRoom(t *Transaction, roomID uint, at time.Time) error
	// CheckIn checks in a reservation whose room is already linked.
	CheckIn(t *Transaction, at time.Time) error
	CheckOut(t *Transaction, at time.Time) error
	Cancel(t *Transaction) error
}

var (
	ErrNotPendingAcceptance = errors.New("transaction is not pending branch acceptance")
	ErrNotAccepted          = errors.New("reservation has not been accepted by the branch")
	ErrNoRoomAssigned       = errors.New("reservation has no room assigned")
	ErrAlreadyCheckedIn     = errors.New("transaction is already checked in")
	ErrNotCheckedIn         = errors.New("transaction is not checked in")
	ErrAlreadyTerminal      = errors.New("transaction is already in a terminal state")
)

// acceptedStatus applies the acceptance tie-break. An explicit advance flag
// yields ADVANCE_RESERVATION unless the payment was already recorded as an
// advance payment; without the flag, any recorded payment selects
// ADVANCE_PAID.
func acceptedStatus(isAdvance bool, isPaid int) int {
	if isAdvance {
		if isPaid == constants.PaymentAdvancePaid {
			return constants.TransactionAdvancePaid
		}
		return constants.TransactionAdvanceReservation
	}
	if isPaid != constants.PaymentUnpaid {
		return constants.TransactionAdvancePaid
	}
	return constants.TransactionAdvanceReservation
}

// PendingAcceptanceState: created by an admin, not yet reviewed by the branch.
type PendingAcceptanceState struct{}

func (s *PendingAcceptanceState) Accept(t *Transaction, isAdvance bool) error {
	t.Status = acceptedStatus(isAdvance, t.IsPaid)
	t.IsAccepted = constants.AcceptanceAccepted
	return nil
}

func (s *PendingAcceptanceState) Decline(t *Transaction) error {
	t.Status = constants.TransactionVoidedCancelled
	t.IsAccepted = constants.AcceptanceNotAccepted
	return nil
}

func (s *PendingAcceptanceState) AssignRoom(t *Transaction, roomID uint, at time.Time) error {
	if t.IsAccepted != constants.AcceptanceAccepted {
		return ErrNotAccepted
	}
	t.HotelRoomID = &roomID
	t.Status = constants.TransactionCheckedIn
	checkIn := t.EffectiveCheckInTime(at)
	t.CheckInTime = &checkIn
	return nil
}

func (s *PendingAcceptanceState) CheckIn(t *Transaction, at time.Time) error {
	return ErrNotPendingAcceptance
}

func (s *PendingAcceptanceState) CheckOut(t *Transaction, at time.Time) error {
	return ErrNotCheckedIn
}

func (s *PendingAcceptanceState) Cancel(t *Transaction) error {
	t.Status = constants.TransactionVoidedCancelled
	return nil
}

// AdvanceReservationState: accepted future booking, not yet paid.
type AdvanceReservationState struct{}

func (s *AdvanceReservationState) Accept(t *Transaction, isAdvance bool) error {
	return ErrNotPendingAcceptance
}

func (s *AdvanceReservationState) Decline(t *Transaction) error {
	return ErrNotPendingAcceptance
}

func (s *AdvanceReservationState) AssignRoom(t *Transaction, roomID uint, at time.Time) error {
	t.HotelRoomID = &roomID
	t.Status = constants.TransactionCheckedIn
	checkIn := t.EffectiveCheckInTime(at)
	t.CheckInTime = &checkIn
	return nil
}

func (s *AdvanceReservationState) CheckIn(t *Transaction, at time.Time) error {
	if t.HotelRoomID == nil {
		return ErrNoRoomAssigned
	}
	t.Status = constants.TransactionCheckedIn
	checkIn := t.EffectiveCheckInTime(at)
	t.CheckInTime = &checkIn
	return nil
}

func (s *AdvanceReservationState) CheckOut(t *Transaction, at time.Time) error {
	return ErrNotCheckedIn
}

func (s *AdvanceReservationState) Cancel(t *Transaction) error {
	t.Status = constants.TransactionVoidedCancelled
	return nil
}

// AdvancePaidState: accepted future booking with payment recorded. Same
// transitions as an advance reservation.
type AdvancePaidState struct {
	AdvanceReservationState
}

// ReservationWithRoomState: advance booking created with its room already
// chosen. The room keeps RESERVED availability until check-in or cancel.
type ReservationWithRoomState struct{}

func (s *ReservationWithRoomState) Accept(t *Transaction, isAdvance bool) error {
	return ErrNotPendingAcceptance
}

func (s *ReservationWithRoomState) Decline(t *Transaction) error {
	return ErrNotPendingAcceptance
}

func (s *ReservationWithRoomState) AssignRoom(t *Transaction, roomID uint, at time.Time) error {
	return errors.New("reservation already has a room assigned")
}

func (s *ReservationWithRoomState) CheckIn(t *Transaction, at time.Time) error {
	if t.HotelRoomID == nil {
		return ErrNoRoomAssigned
	}
	t.Status = constants.TransactionCheckedIn
	checkIn := t.EffectiveCheckInTime(at)
	t.CheckInTime = &checkIn
	return nil
}

func (s *ReservationWithRoomState) CheckOut(t *Transaction, at time.Time) error {
	return ErrNotCheckedIn
}

func (s *ReservationWithRoomState) Cancel(t *Transaction) error {
	t.Status = constants.TransactionVoidedCancelled
	return nil
}

// CheckedInState: guest occupies the room.
type CheckedInState struct{}

func (s *CheckedInState) Accept(t *Transaction, isAdvance bool) error {
	return ErrNotPendingAcceptance
}

func (s *CheckedInState) Decline(t *Transaction) error {
	return ErrNotPendingAcceptance
}

func (s *CheckedInState) AssignRoom(t *Transaction, roomID uint, at time.Time) error {
	return ErrAlreadyCheckedIn
}

func (s *CheckedInState) CheckIn(t *Transaction, at time.Time) error {
	return ErrAlreadyCheckedIn
}

func (s *CheckedInState) CheckOut(t *Transaction, at time.Time) error {
	t.Status = constants.TransactionCheckedOut
	t.IsPaid = constants.PaymentPaid
	t.CheckOutTime = &at
	return nil
}

func (s *CheckedInState) Cancel(t *Transaction) error {
	return errors.New("cannot cancel a checked-in transaction")
}

// CheckedOutState: terminal.
type CheckedOutState struct{}

func (s *CheckedOutState) Accept(t *Transaction, isAdvance bool) error {
	return ErrAlreadyTerminal
}

func (s *CheckedOutState) Decline(t *Transaction) error {
	return ErrAlreadyTerminal
}

func (s *CheckedOutState) AssignRoom(t *Transaction, roomID uint, at time.Time) error {
	return ErrAlreadyTerminal
}

func (s *CheckedOutState) CheckIn(t *Transaction, at time.Time) error {
	return ErrAlreadyTerminal
}

func (s *CheckedOutState) CheckOut(t *Transaction, at time.Time) error {
	return errors.New("transaction is already checked out")
}

func (s *CheckedOutState) Cancel(t *Transaction) error {
	return errors.New("cannot cancel a checked-out transaction")
}

// CancelledState: terminal.
type CancelledState struct{}

func (s *CancelledState) Accept(t *Transaction, isAdvance bool) error {
	return ErrAlreadyTerminal
}

func (s *CancelledState) Decline(t *Transaction) error {
	return ErrAlreadyTerminal
}

func (s *CancelledState) AssignRoom(t *Transaction, roomID uint, at time.Time) error {
	return ErrAlreadyTerminal
}

func (s *CancelledState) CheckIn(t *Transaction, at time.Time) error {
	return ErrAlreadyTerminal
}

func (s *CancelledState) CheckOut(t *Transaction, at time.Time) error {
	return ErrNotCheckedIn
}

func (s *CancelledState) Cancel(t *Transaction) error {
	return errors.New("transaction is already cancelled")
}

// GetTransactionState maps a lifecycle status to its state object. Unknown
// values behave like the terminal cancelled state so nothing can move them.
func GetTransactionState(status int) TransactionState {
	switch status {
	case constants.TransactionPendingBranchAcceptance:
		return &PendingAcceptanceState{}
	case constants.TransactionAdvanceReservation:
		return &AdvanceReservationState{}
	case constants.TransactionAdvancePaid:
		return &AdvancePaidState{}
	case constants.TransactionReservationWithRoom:
		return &ReservationWithRoomState{}
	case constants.TransactionCheckedIn:
		return &CheckedInState{}
	case constants.TransactionCheckedOut:
		return &CheckedOutState{}
	default:
		return &CancelledState{}
	}
}
