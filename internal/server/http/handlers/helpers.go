package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/L1nkStart/authsvc/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentUserEmail extracts the authenticated email from context.
func CurrentUserEmail(c *gin.Context) string {
	val, ok := c.Get(middleware.UserEmailContextKey)
	if !ok {
		return ""
	}
	email, _ := val.(string)
	return email
}
