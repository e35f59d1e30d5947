package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DC-NERI/innWise-sub001/constants"
)

func TestRoomValidateLink(t *testing.T) {
	trxID := uint(10)

	free := &Room{ID: 1, IsAvailable: constants.RoomAvailable}
	assert.NoError(t, free.ValidateLink())
	assert.False(t, free.Occupied())

	occupied := &Room{ID: 2, IsAvailable: constants.RoomOccupied, TransactionID: &trxID}
	assert.NoError(t, occupied.ValidateLink())
	assert.True(t, occupied.Occupied())

	reserved := &Room{ID: 3, IsAvailable: constants.RoomReserved, TransactionID: &trxID}
	assert.NoError(t, reserved.ValidateLink())

	danglingLink := &Room{ID: 4, IsAvailable: constants.RoomAvailable, TransactionID: &trxID}
	assert.Error(t, danglingLink.ValidateLink())

	missingLink := &Room{ID: 5, IsAvailable: constants.RoomOccupied}
	assert.Error(t, missingLink.ValidateLink())
}
