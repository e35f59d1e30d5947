package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DC-NERI/innWise-sub001/dto"
)

func ticketRow(id int, code string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "code", "tenant_id", "subject", "status"}).
		AddRow(id, code, 1, "AC broken in 204", "OPEN")
}

// A competing insert can land between the code read and our insert; the
// unique index rejects the stale code and the create retries once with a
// fresh one.
func TestCreateTicketRetriesOnDuplicateCode(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTicketService(db, nil)

	dup := errors.New(`ERROR: duplicate key value violates unique constraint "idx_tickets_code" (SQLSTATE 23505)`)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tickets" ORDER BY .* FOR UPDATE`).
		WillReturnRows(ticketRow(41, "TASK-AAA000041"))
	mock.ExpectQuery(`INSERT INTO "tickets"`).
		WillReturnError(dup)
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tickets" ORDER BY .* FOR UPDATE`).
		WillReturnRows(ticketRow(42, "TASK-AAA000042"))
	mock.ExpectQuery(`INSERT INTO "tickets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(43))
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	ticket, err := svc.Create(dto.CreateTicketRequest{
		TenantID: 1,
		Subject:  "Printer out of toner",
	}, 9)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, "TASK-AAA000043", ticket.Code)
}

func TestCreateTicketGivesUpAfterSecondDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTicketService(db, nil)

	dup := errors.New(`ERROR: duplicate key value violates unique constraint "idx_tickets_code" (SQLSTATE 23505)`)

	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "tickets" ORDER BY .* FOR UPDATE`).
			WillReturnRows(ticketRow(41, "TASK-AAA000041"))
		mock.ExpectQuery(`INSERT INTO "tickets"`).
			WillReturnError(dup)
		mock.ExpectRollback()
	}

	ticket, err := svc.Create(dto.CreateTicketRequest{
		TenantID: 1,
		Subject:  "Printer out of toner",
	}, 9)

	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Nil(t, ticket)
	assert.Contains(t, err.Error(), "ticket code already taken")
}
