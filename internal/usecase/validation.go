package usecase

import (
	"strings"

	domainErrors "github.com/bikestores/bikestore/internal/domain/errors"
	"github.com/bikestores/bikestore/internal/domain/model"
)

// ValidateCustomerForm checks that every required field is non-empty after
// trimming. A nil result means the form is acceptable.
func ValidateCustomerForm(form model.CustomerForm) *domainErrors.ValidationError {
	var messages []string
	if strings.TrimSpace(form.FirstName) == "" {
		messages = append(messages, "First Name is required.")
	}
	if strings.TrimSpace(form.LastName) == "" {
		messages = append(messages, "Last Name is required.")
	}
	if strings.TrimSpace(form.Email) == "" {
		messages = append(messages, "Email is required.")
	}
	if strings.TrimSpace(form.City) == "" {
		messages = append(messages, "City is required.")
	}
	if len(messages) == 0 {
		return nil
	}
	return &domainErrors.ValidationError{Messages: messages}
}
