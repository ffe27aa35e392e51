package context

import (
	"net/http"

	"github.com/insure-planner/go-api-server/internal/shared/logger"

	sharedError "github.com/insure-planner/go-api-server/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// Context keys for storing user authentication information
const (
	ProfileIDKey    = "profile_id"
	ProfileEmailKey = "profile_email"
)

func GetProfileID(c *gin.Context) (string, bool) {
	profileID, exists := c.Get(ProfileIDKey)
	if !exists {
		return "", false
	}

	id, ok := profileID.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

// RequireProfileID retrieves the authenticated profile ID from the Gin context.
// If it is not found, automatically sends an authentication error response.
// Returns the profile ID and true if found, empty string and false if not found (error already sent).
// Use this in most handlers to reduce boilerplate.
func RequireProfileID(c *gin.Context) (string, bool) {
	profileID, ok := GetProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "로그인을 해주세요.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 프로필 ID가 존재하지 않습니다.")
		return "", false
	}
	return profileID, true
}
