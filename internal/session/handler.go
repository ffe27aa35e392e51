package session

import (
	"net/http"

	sharedContext "github.com/insure-planner/go-api-server/internal/shared/context"
	sharedError "github.com/insure-planner/go-api-server/internal/shared/error"
	"github.com/insure-planner/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *SessionService
}

func NewSessionHandler(sessionService *SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

func (h *SessionHandler) Login(c *gin.Context) {
	var request LoginRequest

	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.sessionService.Login(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.sessionService.Logout(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *SessionHandler) Me(c *gin.Context) {
	if _, ok := sharedContext.RequireProfileID(c); !ok {
		return
	}

	profile, err := h.sessionService.Profile(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *SessionHandler) SyncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionService.SyncStatus(c.Request.Context()))
}

func (h *SessionHandler) respondError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		handler.RespondError(c, err, resp)
		return
	}

	handler.RespondError(c, err, sharedError.InternalServerError)
}
