package services

import (
	"math"
	"time"

	"github.com/DC-NERI/innWise-sub001/models"
)

// ComputeBill calculates the hours used and total charge for a stay.
//
// Hours are the stay duration rounded up to whole hours, never less than 1.
// A rate with standard hours charges its base price, plus the per-hour
// overage for every hour past the standard block when an excess price is
// configured; the total never drops below the base price. A rate with zero
// standard hours is purely hourly. Money is fixed to 2 decimal places.
func ComputeBill(rate *models.HotelRate, checkIn, checkOut time.Time) (hoursUsed int, total float64) {
	duration := checkOut.Sub(checkIn)
	hoursUsed = int(math.Ceil(duration.Hours()))
	if hoursUsed < 1 {
		hoursUsed = 1
	}

	if rate.Hours > 0 {
		total = rate.Price
		if hoursUsed > rate.Hours && rate.ExcessHourPrice != nil && *rate.ExcessHourPrice > 0 {
			total += float64(hoursUsed-rate.Hours) * *rate.ExcessHourPrice
		}
	} else {
		total = float64(hoursUsed) * rate.Price
	}

	total = math.Round(total*100) / 100
	return hoursUsed, total
}
