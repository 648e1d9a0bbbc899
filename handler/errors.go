package handler

import (
	"errors"

	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response envelope. Unknown
// errors become 500s without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, model.ErrUserExists):
		utils.Conflict(c, err.Error())
	case errors.Is(err, model.ErrInvalidState):
		utils.Conflict(c, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		utils.Unauthorized(c, "invalid username or password")
	default:
		utils.TrackError("handler", "internal_error")
		utils.InternalError(c, "internal server error")
	}
}

// requireUserID reads the authenticated user id set by the auth
// middleware.
func requireUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return "", false
	}
	return userID.(string), true
}
