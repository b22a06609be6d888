package communication

import "errors"

var (
	ErrCommunicationNotFound = errors.New("communication not found")
	ErrInvalidReference      = errors.New("company_id or method_id does not reference an existing record")
)
