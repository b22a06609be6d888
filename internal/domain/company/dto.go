package company

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/validator"
)

// Column widths of the companies table.
const (
	maxNameLength            = 100
	maxLocationLength        = 200
	maxLinkedInProfileLength = 200
	maxEmailsLength          = 500
	maxPhoneNumbersLength    = 500
)

type CompanyResponse struct {
	ID                       int64  `json:"id"`
	Name                     string `json:"name"`
	Location                 string `json:"location"`
	LinkedInProfile          string `json:"linkedin_profile"`
	Emails                   string `json:"emails"`
	PhoneNumbers             string `json:"phone_numbers"`
	Comments                 string `json:"comments"`
	CommunicationPeriodicity int    `json:"communication_periodicity"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:                       c.ID,
		Name:                     c.Name,
		Location:                 c.Location,
		LinkedInProfile:          c.LinkedInProfile,
		Emails:                   c.Emails,
		PhoneNumbers:             c.PhoneNumbers,
		Comments:                 c.Comments,
		CommunicationPeriodicity: c.CommunicationPeriodicity,
	}
}

type CreateCompanyRequest struct {
	Name                     *string `json:"name"`
	Location                 string  `json:"location"`
	LinkedInProfile          string  `json:"linkedin_profile"`
	Emails                   string  `json:"emails"`
	PhoneNumbers             string  `json:"phone_numbers"`
	Comments                 string  `json:"comments"`
	CommunicationPeriodicity *int    `json:"communication_periodicity"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name == nil || validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if !validator.MaxLength(*r.Name, maxNameLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	errs = append(errs, validateOptionalFields(
		&r.Location, &r.LinkedInProfile, &r.Emails, &r.PhoneNumbers, r.CommunicationPeriodicity,
	)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity applies the defaults for every omitted optional field.
func (r *CreateCompanyRequest) ToEntity() Company {
	periodicity := DefaultCommunicationPeriodicity
	if r.CommunicationPeriodicity != nil {
		periodicity = *r.CommunicationPeriodicity
	}
	var name string
	if r.Name != nil {
		name = *r.Name
	}
	return Company{
		Name:                     name,
		Location:                 r.Location,
		LinkedInProfile:          r.LinkedInProfile,
		Emails:                   r.Emails,
		PhoneNumbers:             r.PhoneNumbers,
		Comments:                 r.Comments,
		CommunicationPeriodicity: periodicity,
	}
}

// UpdateCompanyRequest is a partial update: nil fields keep their stored value.
type UpdateCompanyRequest struct {
	Name                     *string `json:"name,omitempty"`
	Location                 *string `json:"location,omitempty"`
	LinkedInProfile          *string `json:"linkedin_profile,omitempty"`
	Emails                   *string `json:"emails,omitempty"`
	PhoneNumbers             *string `json:"phone_numbers,omitempty"`
	Comments                 *string `json:"comments,omitempty"`
	CommunicationPeriodicity *int    `json:"communication_periodicity,omitempty"`

	// nullFields lists updatable keys sent as JSON null. Every companies
	// column is NOT NULL, so these are rejected by Validate.
	nullFields []string
}

var updatableCompanyFields = map[string]bool{
	"name":                      true,
	"location":                  true,
	"linkedin_profile":          true,
	"emails":                    true,
	"phone_numbers":             true,
	"comments":                  true,
	"communication_periodicity": true,
}

func (r *UpdateCompanyRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.nullFields = nil
	for key, value := range raw {
		if updatableCompanyFields[key] && bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			r.nullFields = append(r.nullFields, key)
		}
	}
	sort.Strings(r.nullFields)

	type plain UpdateCompanyRequest
	return json.Unmarshal(data, (*plain)(r))
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, field := range r.nullFields {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " must not be null",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		} else if !validator.MaxLength(*r.Name, maxNameLength) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	errs = append(errs, validateOptionalFields(
		r.Location, r.LinkedInProfile, r.Emails, r.PhoneNumbers, r.CommunicationPeriodicity,
	)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (r *UpdateCompanyRequest) IsEmpty() bool {
	return len(r.Columns()) == 0
}

// Columns returns the companies columns the patch sets, keyed by column name.
func (r *UpdateCompanyRequest) Columns() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Location != nil {
		updates["location"] = *r.Location
	}
	if r.LinkedInProfile != nil {
		updates["linkedin_profile"] = *r.LinkedInProfile
	}
	if r.Emails != nil {
		updates["emails"] = *r.Emails
	}
	if r.PhoneNumbers != nil {
		updates["phone_numbers"] = *r.PhoneNumbers
	}
	if r.Comments != nil {
		updates["comments"] = *r.Comments
	}
	if r.CommunicationPeriodicity != nil {
		updates["communication_periodicity"] = *r.CommunicationPeriodicity
	}
	return updates
}

func validateOptionalFields(location, linkedIn, emails, phoneNumbers *string, periodicity *int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	limits := []struct {
		field string
		value *string
		max   int
		msg   string
	}{
		{"location", location, maxLocationLength, "location must not exceed 200 characters"},
		{"linkedin_profile", linkedIn, maxLinkedInProfileLength, "linkedin_profile must not exceed 200 characters"},
		{"emails", emails, maxEmailsLength, "emails must not exceed 500 characters"},
		{"phone_numbers", phoneNumbers, maxPhoneNumbersLength, "phone_numbers must not exceed 500 characters"},
	}
	for _, l := range limits {
		if l.value != nil && !validator.MaxLength(*l.value, l.max) {
			errs = append(errs, validator.ValidationError{Field: l.field, Message: l.msg})
		}
	}

	if periodicity != nil && *periodicity < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "communication_periodicity",
			Message: "communication_periodicity must be at least 1 day",
		})
	}

	return errs
}
