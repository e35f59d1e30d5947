package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	appErrors "github.com/DC-NERI/innWise-sub001/errors"
	"github.com/DC-NERI/innWise-sub001/response"
	"github.com/DC-NERI/innWise-sub001/utils"
)

// handleServiceError maps an AppError to the matching HTTP response.
func handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c)
		return
	}

	appErr := appErrors.GetAppError(err)
	if appErr == nil {
		utils.LogError("unhandled error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case appErrors.ErrCodeUserNotFound, appErrors.ErrCodeInvalidPassword:
		response.Unauthorized(c)
	case appErrors.ErrCodeUnauthorized:
		response.Forbidden(c)
	case appErrors.ErrCodeDBNotFound,
		appErrors.ErrCodeTenantNotFound,
		appErrors.ErrCodeBranchNotFound,
		appErrors.ErrCodeRoomNotFound,
		appErrors.ErrCodeRateNotFound:
		response.NotFound(c)
	case appErrors.ErrCodeUserExists, appErrors.ErrCodeDBDuplicate:
		response.Conflict(c, appErr.Message)
	case appErrors.ErrCodeValidation,
		appErrors.ErrCodeRequiredField,
		appErrors.ErrCodeInvalidFormat,
		appErrors.ErrCodeInvalidStatus,
		appErrors.ErrCodeInvalidAmount:
		response.ValidationError(c, appErr.Message)
	case appErrors.ErrCodeWrongState,
		appErrors.ErrCodeRoomNotAvailable,
		appErrors.ErrCodeRoomNotClean,
		appErrors.ErrCodeTransactionClosed:
		response.Error(c, 0, appErr.Message)
	default:
		utils.LogError("unhandled error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		response.ServerError(c)
	}
}
