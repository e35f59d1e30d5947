package dto

import "github.com/DC-NERI/innWise-sub001/models"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        *models.User `json:"user"`
}

type CreateUserRequest struct {
	TenantID    uint   `json:"tenantId" binding:"required"`
	BranchID    *uint  `json:"branchId"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role" binding:"gte=0,lte=3"`
}

type UpdateUserRequest struct {
	UserID      uint   `json:"userId" binding:"required"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
	Status      *int   `json:"status"`
	Role        *int   `json:"role"`
}
