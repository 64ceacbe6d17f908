package common

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/RohanKadam-7/boxgames/internal/user"
)

const (
	// ContextUserKey is where the auth middleware stores the resolved principal.
	ContextUserKey = "currentUser"
)

// GetCurrentUser retrieves the authenticated user from the Gin context.
func GetCurrentUser(c *gin.Context) (*user.User, error) {
	userInterface, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, errors.New("user not found in context")
	}
	u, ok := userInterface.(*user.User)
	if !ok {
		return nil, errors.New("user in context has unexpected type")
	}
	return u, nil
}
