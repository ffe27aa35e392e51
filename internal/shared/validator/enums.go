package validator

import (
	"github.com/insure-planner/go-api-server/internal/model"
	"github.com/go-playground/validator/v10"
)

// ValidateCustomerStatus accepts the customer management states defined by
// the model package. The allowed values live on model.CustomerStatus so the
// binding rule never drifts from the domain enum.
func ValidateCustomerStatus(fl validator.FieldLevel) bool {
	return model.CustomerStatus(fl.Field().String()).Valid()
}

// ValidateHistoryType accepts the interaction log categories defined by the
// model package.
func ValidateHistoryType(fl validator.FieldLevel) bool {
	return model.HistoryType(fl.Field().String()).Valid()
}
