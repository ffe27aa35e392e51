package insight

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	insightService *InsightService
}

func NewInsightHandler(insightService *InsightService) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
	}
}

// Latest returns the cached insight panel state.
func (h *InsightHandler) Latest(c *gin.Context) {
	c.JSON(http.StatusOK, h.insightService.Latest())
}

// Refresh triggers a new analysis. Failures degrade to fallback text, so the
// response is always 200 with a usable panel state.
func (h *InsightHandler) Refresh(c *gin.Context) {
	c.JSON(http.StatusOK, h.insightService.Refresh(c.Request.Context()))
}
