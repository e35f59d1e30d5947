package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DC-NERI/innWise-sub001/constants"
	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/errors"
)

func TestValidateReservationWalkInNeedsRoom(t *testing.T) {
	req := &dto.CreateReservationRequest{
		ClientName: "Ada Lovelace",
		RateID:     1,
		Immediate:  true,
	}
	err := ValidateReservation(req)
	assert.Error(t, err)
}

func TestValidateReservationUnassignedNeedsReservedTime(t *testing.T) {
	req := &dto.CreateReservationRequest{
		ClientName: "Ada Lovelace",
		RateID:     1,
	}
	err := ValidateReservation(req)
	appErr := errors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeRequiredField, appErr.Code)
}

func TestValidateReservationBlankClientName(t *testing.T) {
	roomID := uint(1)
	req := &dto.CreateReservationRequest{
		ClientName: "   ",
		RateID:     1,
		RoomID:     &roomID,
	}
	assert.Error(t, ValidateReservation(req))
}

func TestValidateReservationWindowOrder(t *testing.T) {
	roomID := uint(1)
	checkIn := time.Date(2026, 4, 1, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(-time.Hour)
	req := &dto.CreateReservationRequest{
		ClientName:               "Ada Lovelace",
		RateID:                   1,
		RoomID:                   &roomID,
		ReservedCheckInDatetime:  &checkIn,
		ReservedCheckOutDatetime: &checkOut,
	}
	assert.Error(t, ValidateReservation(req))

	checkOut = checkIn.Add(time.Hour)
	req.ReservedCheckOutDatetime = &checkOut
	assert.NoError(t, ValidateReservation(req))
}

func TestValidateCleaningStatusUnknown(t *testing.T) {
	req := &dto.SetCleaningStatusRequest{TenantID: 1, BranchID: 1, RoomID: 1, Status: 9}
	err := ValidateCleaningStatus(req)
	appErr := errors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidStatus, appErr.Code)
}

func TestValidateCleaningStatusNotesRequired(t *testing.T) {
	for _, status := range []int{constants.CleaningDirty, constants.CleaningOutOfOrder} {
		req := &dto.SetCleaningStatusRequest{TenantID: 1, BranchID: 1, RoomID: 1, Status: status}
		assert.Error(t, ValidateCleaningStatus(req), "status %d needs notes", status)

		req.Notes = "broken shower head"
		assert.NoError(t, ValidateCleaningStatus(req))
	}
}

func TestValidateCleaningStatusCleanNeedsNoNotes(t *testing.T) {
	req := &dto.SetCleaningStatusRequest{TenantID: 1, BranchID: 1, RoomID: 1, Status: constants.CleaningClean}
	assert.NoError(t, ValidateCleaningStatus(req))
}

func TestValidateTicket(t *testing.T) {
	assert.Error(t, ValidateTicket(&dto.CreateTicketRequest{TenantID: 1, Subject: "  "}))
	assert.NoError(t, ValidateTicket(&dto.CreateTicketRequest{TenantID: 1, Subject: "Printer out of toner"}))
}

func TestValidateAmount(t *testing.T) {
	assert.Error(t, ValidateAmount(-0.01))
	assert.NoError(t, ValidateAmount(0))
	assert.NoError(t, ValidateAmount(350.50))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("frontdesk@example.com"))
	assert.False(t, IsValidEmail("frontdesk@"))
	assert.False(t, IsValidEmail("not an email"))
}
