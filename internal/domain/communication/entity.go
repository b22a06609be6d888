package communication

import "time"

type Communication struct {
	ID        int64
	CompanyID int64
	MethodID  int64
	Date      time.Time
	Notes     string
}

// Method is a row of the communication_methods reference table.
type Method struct {
	ID            int64
	Name          string
	Description   string
	Sequence      int
	MandatoryFlag bool
}
