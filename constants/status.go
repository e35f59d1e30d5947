package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User roles
const (
	RoleSysAd       = 0
	RoleTenantAdmin = 1
	RoleBranchAdmin = 2
	RoleStaff       = 3
)

// Room availability
const (
	RoomAvailable = 1
	RoomOccupied  = 2
	RoomReserved  = 3
)

// Room cleaning status
const (
	CleaningClean      = 1
	CleaningDirty      = 2
	CleaningInspection = 3
	CleaningOutOfOrder = 4
)

// Transaction lifecycle status
const (
	TransactionCheckedIn               = 0
	TransactionCheckedOut              = 1
	TransactionAdvanceReservation      = 2
	TransactionAdvancePaid             = 3
	TransactionVoidedCancelled         = 4
	TransactionPendingBranchAcceptance = 5
	TransactionReservationWithRoom     = 6
)

// Transaction payment status
const (
	PaymentUnpaid      = 0
	PaymentPaid        = 1
	PaymentAdvancePaid = 2
)

// Transaction acceptance status
const (
	AcceptancePending     = 0
	AcceptanceAccepted    = 1
	AcceptanceNotAccepted = 2
)

// Rate status
const (
	RateActive   = 1
	RateArchived = 0
)

// Ticket status
const (
	TicketOpen       = "OPEN"
	TicketInProgress = "IN_PROGRESS"
	TicketResolved   = "RESOLVED"
	TicketClosed     = "CLOSED"
)

// Lost and found item status
const (
	LostFoundFound    = "FOUND"
	LostFoundClaimed  = "CLAIMED"
	LostFoundDisposed = "DISPOSED"
)
