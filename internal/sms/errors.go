package sms

import (
	"net/http"

	sharedError "github.com/insure-planner/go-api-server/internal/shared/error"
)

const (
	noRecipients    = "SMS_NO_RECIPIENTS"    // errInfo
	templateUnknown = "SMS_TEMPLATE_UNKNOWN" // errInfo
)

var (
	ErrNoRecipients    = sharedError.NewDomainError(noRecipients)
	ErrTemplateUnknown = sharedError.NewDomainError(templateUnknown)
)

func init() {
	sharedError.RegisterDomainErrorResponse(noRecipients, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "SMS-001",
		Message: "유효한 수신자가 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(templateUnknown, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "SMS-002",
		Message: "존재하지 않는 메시지 템플릿입니다.",
	})
}
