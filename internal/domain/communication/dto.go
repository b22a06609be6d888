package communication

import (
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/validator"
)

// responseDateLayout renders dates as naive ISO-8601 timestamps, e.g. 2024-03-01T00:00:00.
const responseDateLayout = "2006-01-02T15:04:05"

type CommunicationResponse struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	MethodID  int64  `json:"method_id"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
}

func NewCommunicationResponse(c Communication) CommunicationResponse {
	return CommunicationResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		MethodID:  c.MethodID,
		Date:      c.Date.UTC().Format(responseDateLayout),
		Notes:     c.Notes,
	}
}

type LogCommunicationRequest struct {
	CompanyID *int64  `json:"company_id"`
	MethodID  *int64  `json:"method_id"`
	Date      *string `json:"date"`
	Notes     string  `json:"notes"`
}

func (r *LogCommunicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyID == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	} else if *r.CompanyID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id must be a positive integer",
		})
	}

	if r.MethodID == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "method_id",
			Message: "method_id is required",
		})
	} else if *r.MethodID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "method_id",
			Message: "method_id must be a positive integer",
		})
	}

	if r.Date == nil || validator.IsEmpty(*r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(*r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity validates the request and converts it into a Communication.
func (r *LogCommunicationRequest) ToEntity() (Communication, error) {
	if err := r.Validate(); err != nil {
		return Communication{}, err
	}
	date, _ := validator.IsValidDate(*r.Date)
	return Communication{
		CompanyID: *r.CompanyID,
		MethodID:  *r.MethodID,
		Date:      date,
		Notes:     r.Notes,
	}, nil
}

// ListCommunicationsFilter narrows List; a nil CompanyID returns every record.
type ListCommunicationsFilter struct {
	CompanyID *int64
}
