package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DC-NERI/innWise-sub001/constants"
)

func pendingTransaction() *Transaction {
	return &Transaction{
		Status:     constants.TransactionPendingBranchAcceptance,
		IsAccepted: constants.AcceptancePending,
		IsPaid:     constants.PaymentUnpaid,
	}
}

func TestAcceptFromPending(t *testing.T) {
	tr := pendingTransaction()
	state := GetTransactionState(tr.Status)

	require.NoError(t, state.Accept(tr, true))
	assert.Equal(t, constants.TransactionAdvanceReservation, tr.Status)
	assert.Equal(t, constants.AcceptanceAccepted, tr.IsAccepted)
}

func TestAcceptTieBreakAdvanceFlagWithAdvancePayment(t *testing.T) {
	tr := pendingTransaction()
	tr.IsPaid = constants.PaymentAdvancePaid
	state := GetTransactionState(tr.Status)

	require.NoError(t, state.Accept(tr, true))
	assert.Equal(t, constants.TransactionAdvancePaid, tr.Status)
}

func TestAcceptTieBreakNoFlagWithPayment(t *testing.T) {
	tr := pendingTransaction()
	tr.IsPaid = constants.PaymentAdvancePaid
	state := GetTransactionState(tr.Status)

	require.NoError(t, state.Accept(tr, false))
	assert.Equal(t, constants.TransactionAdvancePaid, tr.Status)
	assert.Equal(t, constants.AcceptanceAccepted, tr.IsAccepted)
}

func TestAcceptOnlyValidFromPending(t *testing.T) {
	for _, status := range []int{
		constants.TransactionAdvanceReservation,
		constants.TransactionAdvancePaid,
		constants.TransactionReservationWithRoom,
		constants.TransactionCheckedIn,
	} {
		tr := &Transaction{Status: status}
		err := GetTransactionState(status).Accept(tr, false)
		assert.Error(t, err, "status %d must not accept", status)
		assert.Equal(t, status, tr.Status)
	}
}

func TestDeclineFromPending(t *testing.T) {
	tr := pendingTransaction()
	state := GetTransactionState(tr.Status)

	require.NoError(t, state.Decline(tr))
	assert.Equal(t, constants.TransactionVoidedCancelled, tr.Status)
	assert.Equal(t, constants.AcceptanceNotAccepted, tr.IsAccepted)
}

func TestAssignRoomRequiresAcceptance(t *testing.T) {
	tr := pendingTransaction()
	state := GetTransactionState(tr.Status)

	err := state.AssignRoom(tr, 7, time.Now())
	assert.ErrorIs(t, err, ErrNotAccepted)
	assert.Nil(t, tr.HotelRoomID)
}

func TestAssignRoomAfterAcceptanceChecksIn(t *testing.T) {
	tr := pendingTransaction()
	tr.IsAccepted = constants.AcceptanceAccepted
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	require.NoError(t, GetTransactionState(tr.Status).AssignRoom(tr, 7, now))
	assert.Equal(t, constants.TransactionCheckedIn, tr.Status)
	require.NotNil(t, tr.HotelRoomID)
	assert.Equal(t, uint(7), *tr.HotelRoomID)
	require.NotNil(t, tr.CheckInTime)
	assert.Equal(t, now, *tr.CheckInTime)
}

func TestAssignRoomPrefersReservedCheckInTime(t *testing.T) {
	reserved := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)
	tr := &Transaction{
		Status:                  constants.TransactionAdvanceReservation,
		ReservedCheckInDatetime: &reserved,
	}

	require.NoError(t, GetTransactionState(tr.Status).AssignRoom(tr, 3, time.Now()))
	require.NotNil(t, tr.CheckInTime)
	assert.Equal(t, reserved, *tr.CheckInTime)
}

func TestCheckInWithRoomAlreadyLinked(t *testing.T) {
	roomID := uint(4)
	tr := &Transaction{
		Status:      constants.TransactionReservationWithRoom,
		HotelRoomID: &roomID,
	}
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	require.NoError(t, GetTransactionState(tr.Status).CheckIn(tr, now))
	assert.Equal(t, constants.TransactionCheckedIn, tr.Status)
	require.NotNil(t, tr.CheckInTime)
	assert.Equal(t, now, *tr.CheckInTime)
}

func TestCheckInWithoutRoomRejected(t *testing.T) {
	tr := &Transaction{Status: constants.TransactionAdvancePaid}

	err := GetTransactionState(tr.Status).CheckIn(tr, time.Now())
	assert.ErrorIs(t, err, ErrNoRoomAssigned)
}

func TestReservationWithRoomRejectsSecondAssignment(t *testing.T) {
	roomID := uint(4)
	tr := &Transaction{
		Status:      constants.TransactionReservationWithRoom,
		HotelRoomID: &roomID,
	}

	err := GetTransactionState(tr.Status).AssignRoom(tr, 9, time.Now())
	assert.Error(t, err)
	assert.Equal(t, uint(4), *tr.HotelRoomID)
}

func TestCheckOutOnlyFromCheckedIn(t *testing.T) {
	for _, status := range []int{
		constants.TransactionPendingBranchAcceptance,
		constants.TransactionAdvanceReservation,
		constants.TransactionAdvancePaid,
		constants.TransactionReservationWithRoom,
		constants.TransactionVoidedCancelled,
	} {
		tr := &Transaction{Status: status}
		err := GetTransactionState(status).CheckOut(tr, time.Now())
		assert.Error(t, err, "status %d must not check out", status)
	}
}

func TestCheckOutSettlesTransaction(t *testing.T) {
	roomID := uint(4)
	tr := &Transaction{
		Status:      constants.TransactionCheckedIn,
		HotelRoomID: &roomID,
		IsPaid:      constants.PaymentUnpaid,
	}
	at := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

	require.NoError(t, GetTransactionState(tr.Status).CheckOut(tr, at))
	assert.Equal(t, constants.TransactionCheckedOut, tr.Status)
	assert.Equal(t, constants.PaymentPaid, tr.IsPaid)
	require.NotNil(t, tr.CheckOutTime)
	assert.Equal(t, at, *tr.CheckOutTime)
}

func TestCancelRejectedOnceCheckedInOrTerminal(t *testing.T) {
	for _, status := range []int{
		constants.TransactionCheckedIn,
		constants.TransactionCheckedOut,
		constants.TransactionVoidedCancelled,
	} {
		tr := &Transaction{Status: status}
		err := GetTransactionState(status).Cancel(tr)
		assert.Error(t, err, "status %d must not cancel", status)
		assert.Equal(t, status, tr.Status)
	}
}

func TestCancelReleasesReservation(t *testing.T) {
	for _, status := range []int{
		constants.TransactionPendingBranchAcceptance,
		constants.TransactionAdvanceReservation,
		constants.TransactionAdvancePaid,
		constants.TransactionReservationWithRoom,
	} {
		tr := &Transaction{Status: status}
		require.NoError(t, GetTransactionState(status).Cancel(tr))
		assert.Equal(t, constants.TransactionVoidedCancelled, tr.Status)
	}
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	tr := &Transaction{Status: constants.TransactionCheckedOut}
	state := GetTransactionState(tr.Status)

	assert.Error(t, state.Accept(tr, false))
	assert.Error(t, state.Decline(tr))
	assert.Error(t, state.AssignRoom(tr, 1, time.Now()))
	assert.Error(t, state.CheckIn(tr, time.Now()))
	assert.Error(t, state.CheckOut(tr, time.Now()))
	assert.Error(t, state.Cancel(tr))
}

func TestUnknownStatusBehavesLikeCancelled(t *testing.T) {
	tr := &Transaction{Status: 99}
	state := GetTransactionState(tr.Status)

	assert.Error(t, state.CheckIn(tr, time.Now()))
	assert.Error(t, state.Cancel(tr))
}

func TestTerminalHelper(t *testing.T) {
	assert.True(t, (&Transaction{Status: constants.TransactionCheckedOut}).Terminal())
	assert.True(t, (&Transaction{Status: constants.TransactionVoidedCancelled}).Terminal())
	assert.False(t, (&Transaction{Status: constants.TransactionCheckedIn}).Terminal())
	assert.False(t, (&Transaction{Status: constants.TransactionPendingBranchAcceptance}).Terminal())
}
