package customer

import (
	"net/http"

	sharedError "github.com/insure-planner/go-api-server/internal/shared/error"
)

const (
	customerNotFound       = "CUSTOMER_NOT_FOUND"        // errInfo
	customerFieldsRequired = "CUSTOMER_FIELDS_REQUIRED"  // errInfo
	contractFieldsRequired = "CONTRACT_FIELDS_REQUIRED"  // errInfo
	contractNotFound       = "CONTRACT_NOT_FOUND"        // errInfo
)

var (
	ErrCustomerNotFound       = sharedError.NewDomainError(customerNotFound)
	ErrCustomerFieldsRequired = sharedError.NewDomainError(customerFieldsRequired)
	ErrContractFieldsRequired = sharedError.NewDomainError(contractFieldsRequired)
	ErrContractNotFound       = sharedError.NewDomainError(contractNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(customerNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "CUSTOMER-001",
		Message: "고객 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(customerFieldsRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "CUSTOMER-002",
		Message: "이름과 연락처는 필수항목입니다.",
	})

	sharedError.RegisterDomainErrorResponse(contractFieldsRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "CUSTOMER-003",
		Message: "보험사와 상품명은 필수입니다.",
	})

	sharedError.RegisterDomainErrorResponse(contractNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "CUSTOMER-004",
		Message: "계약 정보를 찾을 수 없습니다.",
	})
}
