package constants

// Display labels for user-facing messages. Pure lookup tables, kept apart
// from the transition logic.

var TransactionStatusText = map[int]string{
	TransactionCheckedIn:               "Checked-In",
	TransactionCheckedOut:              "Checked-Out",
	TransactionAdvanceReservation:      "Advance Reservation",
	TransactionAdvancePaid:             "Advance Paid",
	TransactionVoidedCancelled:         "Voided/Cancelled",
	TransactionPendingBranchAcceptance: "Pending Branch Acceptance",
	TransactionReservationWithRoom:     "Reservation with Room",
}

var RoomAvailabilityText = map[int]string{
	RoomAvailable: "Available",
	RoomOccupied:  "Occupied",
	RoomReserved:  "Reserved",
}

var CleaningStatusText = map[int]string{
	CleaningClean:      "Clean",
	CleaningDirty:      "Dirty",
	CleaningInspection: "Inspection",
	CleaningOutOfOrder: "Out of Order",
}

var PaymentStatusText = map[int]string{
	PaymentUnpaid:      "Unpaid",
	PaymentPaid:        "Paid",
	PaymentAdvancePaid: "Advance Paid",
}

var AcceptanceStatusText = map[int]string{
	AcceptancePending:     "Pending",
	AcceptanceAccepted:    "Accepted",
	AcceptanceNotAccepted: "Not Accepted",
}

// TransactionStatusLabel returns the display text for a lifecycle status,
// falling back to "Unknown" for values outside the closed set.
func TransactionStatusLabel(status int) string {
	if label, ok := TransactionStatusText[status]; ok {
		return label
	}
	return "Unknown"
}

// CleaningStatusLabel returns the display text for a cleaning status.
func CleaningStatusLabel(status int) string {
	if label, ok := CleaningStatusText[status]; ok {
		return label
	}
	return "Unknown"
}

// CleaningStatusValid reports whether the value belongs to the closed set.
func CleaningStatusValid(status int) bool {
	_, ok := CleaningStatusText[status]
	return ok
}

// CleaningStatusNeedsNotes reports whether the status signals a problem and
// therefore requires housekeeping notes.
func CleaningStatusNeedsNotes(status int) bool {
	return status == CleaningOutOfOrder || status == CleaningDirty
}
