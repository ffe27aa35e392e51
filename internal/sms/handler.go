package sms

import (
	"net/http"

	"github.com/insure-planner/go-api-server/internal/model"
	sharedError "github.com/insure-planner/go-api-server/internal/shared/error"
	"github.com/insure-planner/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

// Directory resolves customer ids to records; dangling ids are skipped, not
// treated as failures.
type Directory interface {
	Get(id string) (model.Customer, bool)
}

type ComposeRequest struct {
	CustomerIDs []string `json:"customerIds" binding:"required,min=1"`
	Platform    Platform `json:"platform" binding:"omitempty,oneof=ios android"`
	Body        string   `json:"body" binding:"required_without=TemplateID,max=2000"`
	TemplateID  string   `json:"templateId"`
}

type ComposeResponse struct {
	URI            string `json:"uri"`
	Body           string `json:"body"`
	RecipientCount int    `json:"recipientCount"`
}

type SmsHandler struct {
	directory Directory
}

func NewSmsHandler(directory Directory) *SmsHandler {
	return &SmsHandler{directory: directory}
}

// Templates lists the canned messages for the compose modal.
func (h *SmsHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": Templates()})
}

// Compose resolves recipients and returns the platform deep link. The link
// is handed to the OS by the client; nothing here confirms delivery.
func (h *SmsHandler) Compose(c *gin.Context) {
	var request ComposeRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	phones := make([]string, 0, len(request.CustomerIDs))
	names := make([]string, 0, len(request.CustomerIDs))
	for _, id := range request.CustomerIDs {
		customer, ok := h.directory.Get(id)
		if !ok {
			continue
		}
		phones = append(phones, customer.Phone)
		names = append(names, customer.Name)
	}

	if len(phones) == 0 {
		h.respondError(c, ErrNoRecipients)
		return
	}

	body := request.Body
	if request.TemplateID != "" {
		rendered, ok := RenderTemplate(request.TemplateID, names)
		if !ok {
			h.respondError(c, ErrTemplateUnknown)
			return
		}
		body = rendered
	}

	c.JSON(http.StatusOK, ComposeResponse{
		URI:            ComposeURI(request.Platform, phones, body),
		Body:           body,
		RecipientCount: len(phones),
	})
}

func (h *SmsHandler) respondError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		handler.RespondError(c, err, resp)
		return
	}

	handler.RespondError(c, err, sharedError.InternalServerError)
}
