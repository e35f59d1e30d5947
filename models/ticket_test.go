package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTicketCodeFirst(t *testing.T) {
	assert.Equal(t, "TASK-AAA000000", NextTicketCode(""))
	assert.Equal(t, "TASK-AAA000000", NextTicketCode("garbage"))
	assert.Equal(t, "TASK-AAA000000", NextTicketCode("TICK-AAA000000"))
}

func TestNextTicketCodeIncrement(t *testing.T) {
	assert.Equal(t, "TASK-AAA000001", NextTicketCode("TASK-AAA000000"))
	assert.Equal(t, "TASK-AAA000100", NextTicketCode("TASK-AAA000099"))
	assert.Equal(t, "TASK-BCD004479", NextTicketCode("TASK-BCD004478"))
}

func TestNextTicketCodeDigitRollover(t *testing.T) {
	assert.Equal(t, "TASK-AAB000000", NextTicketCode("TASK-AAA999999"))
	assert.Equal(t, "TASK-ABA000000", NextTicketCode("TASK-AAZ999999"))
	assert.Equal(t, "TASK-BAA000000", NextTicketCode("TASK-AZZ999999"))
}

func TestNextTicketCodePreservesLetters(t *testing.T) {
	assert.Equal(t, "TASK-XYZ000043", NextTicketCode("TASK-XYZ000042"))
}
