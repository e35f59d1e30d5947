package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/DC-NERI/innWise-sub001/constants"
	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/errors"
)

var roomCodeRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\-]{0,19}$`)

// RegisterCustomValidations adds the domain formats to gin's binding engine.
// Called once at startup.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("roomcode", func(fl validator.FieldLevel) bool {
			return roomCodeRegex.MatchString(fl.Field().String())
		})
	}
}

// ValidateReservation checks the cross-field rules binding tags cannot cover.
func ValidateReservation(req *dto.CreateReservationRequest) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Client name must not be blank", nil)
	}

	if req.Immediate && req.RoomID == nil {
		return errors.NewAppError(errors.ErrCodeValidation, "A walk-in check-in needs a room", nil)
	}

	if req.RoomID == nil && req.ReservedCheckInDatetime == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField,
			"A reservation without a room needs a reserved check-in time", nil)
	}

	return validateReservedWindow(req.ReservedCheckInDatetime, req.ReservedCheckOutDatetime)
}

// ValidateReservationUpdate mirrors the creation rules for detail edits.
func ValidateReservationUpdate(req *dto.UpdateReservationRequest) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Client name must not be blank", nil)
	}
	return validateReservedWindow(req.ReservedCheckInDatetime, req.ReservedCheckOutDatetime)
}

func validateReservedWindow(checkIn, checkOut *time.Time) error {
	if checkIn != nil && checkOut != nil && !checkOut.After(*checkIn) {
		return errors.NewAppError(errors.ErrCodeValidation,
			"Reserved check-out must be after the reserved check-in", nil)
	}
	return nil
}

// ValidateCleaningStatus rejects unknown statuses and enforces the notes
// requirement for problem statuses.
func ValidateCleaningStatus(req *dto.SetCleaningStatusRequest) error {
	if !constants.CleaningStatusValid(req.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus,
			fmt.Sprintf("unknown cleaning status %d", req.Status), nil)
	}
	if constants.CleaningStatusNeedsNotes(req.Status) && strings.TrimSpace(req.Notes) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField,
			fmt.Sprintf("notes are required when marking a room %s", constants.CleaningStatusLabel(req.Status)), nil)
	}
	return nil
}

// ValidateTicket checks a new support ticket.
func ValidateTicket(req *dto.CreateTicketRequest) error {
	if strings.TrimSpace(req.Subject) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Subject must not be blank", nil)
	}
	if len(req.Subject) > 200 {
		return errors.NewAppError(errors.ErrCodeValidation, "Subject must be at most 200 characters", nil)
	}
	return nil
}

// ValidateAmount rejects negative money values.
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Amount must not be negative", nil)
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
