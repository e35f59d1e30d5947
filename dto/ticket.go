package dto

type CreateTicketRequest struct {
	TenantID    uint   `json:"tenantId" binding:"required"`
	BranchID    *uint  `json:"branchId"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
}

type UpdateTicketRequest struct {
	TicketID   uint   `json:"ticketId" binding:"required"`
	TenantID   uint   `json:"tenantId" binding:"required"`
	Status     string `json:"status"`
	AssignedTo *uint  `json:"assignedTo"`
	Comment    string `json:"comment"`
}
