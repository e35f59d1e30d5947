package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DC-NERI/innWise-sub001/constants"
	"github.com/DC-NERI/innWise-sub001/dto"
)

func TestSetCleaningStatusInvalidatesRoomBoard(t *testing.T) {
	db, mock := newMockDB(t)
	board := &recordingBoard{}
	svc := NewHousekeepingService(db, nil, board, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE .* FOR UPDATE`).
		WillReturnRows(roomRow(constants.RoomAvailable, constants.CleaningClean))
	mock.ExpectExec(`UPDATE "rooms" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "cleaning_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	result := svc.SetCleaningStatus(dto.SetCleaningStatusRequest{
		TenantID: 1,
		BranchID: 2,
		RoomID:   5,
		Status:   constants.CleaningDirty,
		Notes:    "spilled coffee on the carpet",
	}, 9)

	require.True(t, result.Success, result.Message)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, [][2]uint{{1, 2}}, board.calls)
}

func TestSetCleaningStatusRoomNotFoundLeavesBoardAlone(t *testing.T) {
	db, mock := newMockDB(t)
	board := &recordingBoard{}
	svc := NewHousekeepingService(db, nil, board, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	result := svc.SetCleaningStatus(dto.SetCleaningStatusRequest{
		TenantID: 1,
		BranchID: 2,
		RoomID:   404,
		Status:   constants.CleaningDirty,
		Notes:    "no such room",
	}, 9)

	require.False(t, result.Success)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, board.calls)
}
