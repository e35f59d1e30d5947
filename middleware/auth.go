package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DC-NERI/innWise-sub001/response"
	"github.com/DC-NERI/innWise-sub001/services"
)

// AuthMiddleware verifies the bearer token and, when roles are given,
// requires the caller to hold one of them.
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := services.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		info := claims.UserInfo

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == info.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", info.UserID)
		c.Set("userRole", info.Role)
		c.Set("tenantID", info.TenantID)
		if info.BranchID != nil {
			c.Set("branchID", *info.BranchID)
		}
		c.Next()
	}
}

// CurrentUserID reads the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentTenantID reads the authenticated tenant id set by AuthMiddleware.
func CurrentTenantID(c *gin.Context) uint {
	if v, ok := c.Get("tenantID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
