package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DC-NERI/innWise-sub001/models"
)

func rateWithExcess(price float64, hours int, excess float64) *models.HotelRate {
	return &models.HotelRate{Price: price, Hours: hours, ExcessHourPrice: &excess}
}

func TestComputeBillStandardHoursWithExcess(t *testing.T) {
	rate := rateWithExcess(500, 1, 200)
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(90 * time.Minute)

	hours, total := ComputeBill(rate, checkIn, checkOut)

	assert.Equal(t, 2, hours)
	assert.Equal(t, 700.00, total)
}

func TestComputeBillExactStandardBlock(t *testing.T) {
	rate := rateWithExcess(500, 1, 200)
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(60 * time.Minute)

	hours, total := ComputeBill(rate, checkIn, checkOut)

	assert.Equal(t, 1, hours)
	assert.Equal(t, 500.00, total)
}

func TestComputeBillNoExcessConfigured(t *testing.T) {
	rate := &models.HotelRate{Price: 1200, Hours: 12}
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(20 * time.Hour)

	hours, total := ComputeBill(rate, checkIn, checkOut)

	assert.Equal(t, 20, hours)
	assert.Equal(t, 1200.00, total, "overage is free when no excess price is set")
}

func TestComputeBillHourlyRate(t *testing.T) {
	rate := &models.HotelRate{Price: 150, Hours: 0}
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(3*time.Hour + 10*time.Minute)

	hours, total := ComputeBill(rate, checkIn, checkOut)

	assert.Equal(t, 4, hours)
	assert.Equal(t, 600.00, total)
}

func TestComputeBillMinimumOneHour(t *testing.T) {
	rate := &models.HotelRate{Price: 150, Hours: 0}
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	hours, total := ComputeBill(rate, checkIn, checkIn.Add(5*time.Minute))
	assert.Equal(t, 1, hours)
	assert.Equal(t, 150.00, total)

	hours, total = ComputeBill(rate, checkIn, checkIn)
	assert.Equal(t, 1, hours)
	assert.Equal(t, 150.00, total)
}

func TestComputeBillRoundsToTwoDecimals(t *testing.T) {
	rate := &models.HotelRate{Price: 33.333, Hours: 0}
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(3 * time.Hour)

	_, total := ComputeBill(rate, checkIn, checkOut)

	assert.Equal(t, 100.00, total)
}
