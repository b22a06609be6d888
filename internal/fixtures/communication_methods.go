package fixtures

import "github.com/cmlabs-crm/crm-backend-go/internal/domain/communication"

// DefaultCommunicationMethods is the reference data seeded into an empty
// communication_methods table, in outreach order.
func DefaultCommunicationMethods() []communication.Method {
	return []communication.Method{
		{
			Name:          "LinkedIn Post",
			Description:   "Engage with a post on the company's LinkedIn page",
			Sequence:      1,
			MandatoryFlag: true,
		},
		{
			Name:          "LinkedIn Message",
			Description:   "Direct message to a contact on LinkedIn",
			Sequence:      2,
			MandatoryFlag: true,
		},
		{
			Name:          "Email",
			Description:   "Email to one of the company's addresses",
			Sequence:      3,
			MandatoryFlag: true,
		},
		{
			Name:          "Phone Call",
			Description:   "Call to one of the company's phone numbers",
			Sequence:      4,
			MandatoryFlag: false,
		},
		{
			Name:          "Other",
			Description:   "Any other form of contact",
			Sequence:      5,
			MandatoryFlag: false,
		},
	}
}
