package services

import (
	"encoding/json"
	"strings"

	"github.com/dgrijalva/jwt-go"

	"github.com/DC-NERI/innWise-sub001/errors"
)

// ParseToken verifies the token signature and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "unexpected signing method", nil)
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid or expired token", err)
	}
	return claims, nil
}

// GetUserInfoFromToken decodes the claim payload without signature
// verification. Used where the token already passed the auth middleware.
func GetUserInfoFromToken(tokenString string) (*UserInfo, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "failed to decode token payload", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "failed to parse token payload", err)
	}

	raw, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "token is missing user claims", nil)
	}

	userID, okID := raw["userid"].(float64)
	if !okID {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "token is missing the user id", nil)
	}
	tenantID, okTenant := raw["tenantId"].(float64)
	if !okTenant {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "token is missing the tenant id", nil)
	}
	role, okRole := raw["role"].(float64)
	if !okRole {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "token is missing the role", nil)
	}

	info := &UserInfo{
		UserID:   uint(userID),
		TenantID: uint(tenantID),
		Role:     int(role),
	}
	if branchID, okBranch := raw["branchId"].(float64); okBranch {
		b := uint(branchID)
		info.BranchID = &b
	}
	return info, nil
}

// GetUserIDFromToken extracts the user id and role from a bearer token.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	info, err := GetUserInfoFromToken(tokenString)
	if err != nil {
		return 0, 0, err
	}
	return info.UserID, info.Role, nil
}
