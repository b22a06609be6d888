package company

// DefaultCommunicationPeriodicity is the outreach cadence in days applied when
// a company is created without one.
const DefaultCommunicationPeriodicity = 14

type Company struct {
	ID                       int64
	Name                     string
	Location                 string
	LinkedInProfile          string
	Emails                   string
	PhoneNumbers             string
	Comments                 string
	CommunicationPeriodicity int
}
