package notice

import (
	"net/http"

	"github.com/insure-planner/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AddNoticeRequest struct {
	Content string `json:"content" binding:"required,max=200"`
}

type NoticeHandler struct {
	repo    *NoticeRepository
	rotator *Rotator
}

func NewNoticeHandler(repo *NoticeRepository, rotator *Rotator) *NoticeHandler {
	return &NoticeHandler{repo: repo, rotator: rotator}
}

// List returns all notices plus the id of the one currently rotated in.
func (h *NoticeHandler) List(c *gin.Context) {
	currentID, _ := h.rotator.Current()

	c.JSON(http.StatusOK, gin.H{
		"notices":   h.repo.List(),
		"currentId": currentID,
	})
}

func (h *NoticeHandler) Add(c *gin.Context) {
	var request AddNoticeRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	notice := h.repo.Add(c.Request.Context(), request.Content)
	c.JSON(http.StatusCreated, notice)
}

func (h *NoticeHandler) Delete(c *gin.Context) {
	h.repo.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusNoContent, nil)
}
