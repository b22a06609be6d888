package communication

import (
	"testing"
	"time"

	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(i int64) *int64 { return &i }
func strPtr(s string) *string { return &s }

func TestLogCommunicationRequest_Validate(t *testing.T) {
	valid := LogCommunicationRequest{
		CompanyID: int64Ptr(1),
		MethodID:  int64Ptr(2),
		Date:      strPtr("2024-03-01"),
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		req   LogCommunicationRequest
		field string
	}{
		{"missing company", LogCommunicationRequest{MethodID: int64Ptr(1), Date: strPtr("2024-03-01")}, "company_id"},
		{"missing method", LogCommunicationRequest{CompanyID: int64Ptr(1), Date: strPtr("2024-03-01")}, "method_id"},
		{"missing date", LogCommunicationRequest{CompanyID: int64Ptr(1), MethodID: int64Ptr(1)}, "date"},
		{"day first date", LogCommunicationRequest{CompanyID: int64Ptr(1), MethodID: int64Ptr(1), Date: strPtr("14-02-2024")}, "date"},
		{"negative company", LogCommunicationRequest{CompanyID: int64Ptr(-1), MethodID: int64Ptr(1), Date: strPtr("2024-03-01")}, "company_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var verrs validator.ValidationErrors
			require.ErrorAs(t, tc.req.Validate(), &verrs)
			assert.Contains(t, verrs.ToMap(), tc.field)
		})
	}
}

func TestLogCommunicationRequest_ToEntity(t *testing.T) {
	req := LogCommunicationRequest{
		CompanyID: int64Ptr(1),
		MethodID:  int64Ptr(3),
		Date:      strPtr("2024-03-01"),
		Notes:     "call",
	}
	c, err := req.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.CompanyID)
	assert.Equal(t, int64(3), c.MethodID)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), c.Date)
	assert.Equal(t, "call", c.Notes)

	req.Date = strPtr("2024/03/01")
	_, err = req.ToEntity()
	assert.Error(t, err)
}

func TestNewCommunicationResponse_DateFormat(t *testing.T) {
	resp := NewCommunicationResponse(Communication{
		ID:        1,
		CompanyID: 1,
		MethodID:  1,
		Date:      time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Notes:     "call",
	})
	assert.Equal(t, "2024-03-01T00:00:00", resp.Date)
}
