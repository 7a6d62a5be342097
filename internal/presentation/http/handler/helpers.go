package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserMobile extracts the user's mobile number from the Gin context
func GetUserMobile(c *gin.Context) string {
	mobile, exists := c.Get("user_mobile")
	if !exists {
		return ""
	}
	return mobile.(string)
}

// IsStaff checks whether the authenticated user is a staff account
func IsStaff(c *gin.Context) bool {
	staff, exists := c.Get("user_staff")
	if !exists {
		return false
	}
	isStaff, ok := staff.(bool)
	return ok && isStaff
}
