// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phoneRegex accepts international numbers with optional +, spaces,
// dots, and dashes.
var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 .\-]{5,28}[0-9]$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", validatePhone)
		_ = v.RegisterValidation("payment_mode", validatePaymentMode)
		_ = v.RegisterValidation("sale_status", validateSaleStatus)
		_ = v.RegisterValidation("customer_type", validateCustomerType)
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return phoneRegex.MatchString(value)
}

func validatePaymentMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "cash", "credit_card", "bank_transfer", "check", "other":
		return true
	}
	return false
}

func validateSaleStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending_approval", "approved", "rejected", "cancelled":
		return true
	}
	return false
}

func validateCustomerType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "physical", "moral":
		return true
	}
	return false
}
