package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/auth"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/communication"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/company"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/user"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyHasCommunications):
		Conflict(w, "Company still has logged communications")

	// Communication domain errors
	case errors.Is(err, communication.ErrCommunicationNotFound):
		NotFound(w, "Communication not found")
	case errors.Is(err, communication.ErrInvalidReference):
		UnprocessableEntity(w, "Unknown company_id or method_id")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
