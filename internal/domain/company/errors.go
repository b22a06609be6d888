package company

import "errors"

var (
	ErrCompanyNotFound          = errors.New("company not found")
	ErrCompanyHasCommunications = errors.New("company still has logged communications")
)
