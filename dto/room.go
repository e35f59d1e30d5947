package dto

// CreateRoomRequest creates one room in a branch catalog.
type CreateRoomRequest struct {
	TenantID uint    `json:"tenantId" binding:"required"`
	BranchID uint    `json:"branchId" binding:"required"`
	RoomCode string  `json:"roomCode" binding:"required,roomcode"`
	RoomName string  `json:"roomName" binding:"required"`
	Floor    string  `json:"floor"`
	RateIDs  []int64 `json:"rateIds"`
	Avatar   string  `json:"avatar"`
}

type UpdateRoomRequest struct {
	RoomID   uint    `json:"roomId" binding:"required"`
	TenantID uint    `json:"tenantId" binding:"required"`
	BranchID uint    `json:"branchId" binding:"required"`
	RoomName string  `json:"roomName"`
	Floor    string  `json:"floor"`
	RateIDs  []int64 `json:"rateIds"`
	Avatar   string  `json:"avatar"`
	Status   *int    `json:"status"`
}

// RoomBoardEntry is one row of the per-branch room status board.
type RoomBoardEntry struct {
	RoomID          uint   `json:"roomId"`
	RoomCode        string `json:"roomCode"`
	RoomName        string `json:"roomName"`
	Floor           string `json:"floor"`
	IsAvailable     int    `json:"isAvailable"`
	Availability    string `json:"availability"`
	CleaningStatus  int    `json:"cleaningStatus"`
	Cleaning        string `json:"cleaning"`
	TransactionID   *uint  `json:"transactionId,omitempty"`
	ClientName      string `json:"clientName,omitempty"`
	RateName        string `json:"rateName,omitempty"`
}
