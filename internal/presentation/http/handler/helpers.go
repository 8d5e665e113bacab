package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pdv-client/internal/infrastructure/session"
	"pdv-client/internal/presentation/http/middleware"
)

// GetSession extracts the operator session from the Gin context
func GetSession(c *gin.Context) *session.Session {
	return middleware.GetSession(c)
}

// ParseID parses a numeric path parameter, returning 0 on garbage
func ParseID(c *gin.Context, name string) uint {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
