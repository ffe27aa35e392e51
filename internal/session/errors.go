package session

import (
	"net/http"

	sharedError "github.com/insure-planner/go-api-server/internal/shared/error"
)

const (
	profileNotFound = "PROFILE_NOT_FOUND" // errInfo
)

var (
	ErrProfileNotFound = sharedError.NewDomainError(profileNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(profileNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "SESSION-001",
		Message: "로그인 정보를 찾을 수 없습니다.",
	})
}
