package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/auth"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/communication"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/company"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/user"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials"},
		{"duplicate email", user.ErrUserEmailExists, http.StatusConflict, "CONFLICT", "Email already registered"},
		{"company not found", company.ErrCompanyNotFound, http.StatusNotFound, "NOT_FOUND", "Company not found"},
		{"wrapped company not found", fmt.Errorf("lookup: %w", company.ErrCompanyNotFound), http.StatusNotFound, "NOT_FOUND", "Company not found"},
		{"company restricted", company.ErrCompanyHasCommunications, http.StatusConflict, "CONFLICT", "Company still has logged communications"},
		{"communication not found", communication.ErrCommunicationNotFound, http.StatusNotFound, "NOT_FOUND", "Communication not found"},
		{"bad reference", communication.ErrInvalidReference, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", "Unknown company_id or method_id"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tc.code, body["code"])
			assert.Equal(t, tc.message, body["message"])
			assert.NotContains(t, body, "details")
		})
	}
}

func TestHandleError_Validation(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, validator.ValidationErrors{{Field: "name", Message: "name is required"}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Equal(t, map[string]string{"name": "name is required"}, body.Details)
}

func TestCreatedWithID(t *testing.T) {
	w := httptest.NewRecorder()
	CreatedWithID(w, "Company added successfully", 7)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Company added successfully","id":7}`, w.Body.String())
}
