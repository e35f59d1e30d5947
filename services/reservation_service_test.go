package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DC-NERI/innWise-sub001/constants"
	"github.com/DC-NERI/innWise-sub001/dto"
)

func newTestReservationService(t *testing.T) (*ReservationService, sqlmock.Sqlmock, *recordingBoard) {
	t.Helper()

	db, mock := newMockDB(t)
	board := &recordingBoard{}
	svc := NewReservationService(ReservationServiceOptions{
		DB:    db,
		Board: board,
		Now:   func() time.Time { return time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC) },
	})
	return svc, mock, board
}

func transactionRow(status, isAccepted, isPaid int, roomID, checkIn interface{}) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tenant_id", "branch_id", "status", "is_accepted", "is_paid",
		"hotel_room_id", "hotel_rate_id", "client_name", "check_in_time",
	}).AddRow(7, 1, 2, status, isAccepted, isPaid, roomID, 3, "Ana Cruz", checkIn)
}

func roomRow(available, cleaning int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tenant_id", "branch_id", "room_code", "room_name", "is_available", "cleaning_status",
	}).AddRow(5, 1, 2, "RM-101", "Deluxe 101", available, cleaning)
}

// The transaction row must be locked before the room row; a reversed order
// here can deadlock against a concurrent checkout of the same pair.
func TestAssignRoomAndCheckInLocksTransactionBeforeRoom(t *testing.T) {
	svc, mock, board := newTestReservationService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE .* FOR UPDATE`).
		WillReturnRows(transactionRow(constants.TransactionAdvanceReservation, constants.AcceptanceAccepted, constants.PaymentUnpaid, nil, nil))
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE .* FOR UPDATE`).
		WillReturnRows(roomRow(constants.RoomAvailable, constants.CleaningClean))
	mock.ExpectExec(`UPDATE "transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "rooms" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	result := svc.AssignRoomAndCheckIn(dto.AssignRoomRequest{
		TenantID:      1,
		BranchID:      2,
		TransactionID: 7,
		RoomID:        5,
	}, 9)

	require.True(t, result.Success, result.Message)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, [][2]uint{{1, 2}}, board.calls)
}

func TestCheckOutInvalidatesRoomBoard(t *testing.T) {
	svc, mock, board := newTestReservationService(t)

	checkIn := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE .* FOR UPDATE`).
		WillReturnRows(transactionRow(constants.TransactionCheckedIn, constants.AcceptanceAccepted, constants.PaymentUnpaid, int64(5), checkIn))
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE .* FOR UPDATE`).
		WillReturnRows(roomRow(constants.RoomOccupied, constants.CleaningClean))
	mock.ExpectQuery(`SELECT \* FROM "hotel_rates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "branch_id", "name", "price", "hours"}).
			AddRow(3, 1, 2, "Standard 12h", 500.0, 12))
	mock.ExpectExec(`UPDATE "transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "rooms" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "cleaning_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	result := svc.CheckOut(dto.CheckOutRequest{
		TenantID:      1,
		BranchID:      2,
		TransactionID: 7,
		TenderAmount:  500,
	}, 9)

	require.True(t, result.Success, result.Message)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, [][2]uint{{1, 2}}, board.calls)
	assert.Equal(t, constants.RoomAvailable, result.Room.IsAvailable)
	assert.Equal(t, constants.CleaningInspection, result.Room.CleaningStatus)
}

func TestCheckOutRejectionDoesNotInvalidateBoard(t *testing.T) {
	svc, mock, board := newTestReservationService(t)

	checkIn := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE .* FOR UPDATE`).
		WillReturnRows(transactionRow(constants.TransactionCheckedOut, constants.AcceptanceAccepted, constants.PaymentPaid, int64(5), checkIn))
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE .* FOR UPDATE`).
		WillReturnRows(roomRow(constants.RoomAvailable, constants.CleaningInspection))
	mock.ExpectQuery(`SELECT \* FROM "hotel_rates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "branch_id", "name", "price", "hours"}).
			AddRow(3, 1, 2, "Standard 12h", 500.0, 12))
	mock.ExpectRollback()

	result := svc.CheckOut(dto.CheckOutRequest{
		TenantID:      1,
		BranchID:      2,
		TransactionID: 7,
		TenderAmount:  500,
	}, 9)

	require.False(t, result.Success)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, board.calls)
}

func TestCancelWithRoomInvalidatesRoomBoard(t *testing.T) {
	svc, mock, board := newTestReservationService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE .* FOR UPDATE`).
		WillReturnRows(transactionRow(constants.TransactionReservationWithRoom, constants.AcceptanceAccepted, constants.PaymentUnpaid, int64(5), nil))
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE .* FOR UPDATE`).
		WillReturnRows(roomRow(constants.RoomReserved, constants.CleaningClean))
	mock.ExpectExec(`UPDATE "transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "rooms" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	result := svc.Cancel(dto.CancelReservationRequest{
		TenantID:      1,
		BranchID:      2,
		TransactionID: 7,
	}, 9)

	require.True(t, result.Success, result.Message)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, [][2]uint{{1, 2}}, board.calls)
}
