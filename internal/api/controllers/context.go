package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentAccountID reads the account id set by the JWT middleware.
func currentAccountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
