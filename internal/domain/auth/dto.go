package auth

import "github.com/cmlabs-crm/crm-backend-go/internal/pkg/validator"

type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     *string `json:"role,omitempty"`
	Password string  `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if !validator.MaxLength(r.Name, 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.MaxLength(r.Email, 150) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 150 characters",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	// Role
	if r.Role != nil {
		if validator.IsEmpty(*r.Role) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must not be empty when provided",
			})
		} else if !validator.MaxLength(*r.Role, 50) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must not exceed 50 characters",
			})
		}
	}

	// Password
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 72 bytes",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
