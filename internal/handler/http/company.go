package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/company"
	"github.com/cmlabs-crm/crm-backend-go/internal/handler/http/response"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{
		companyService: companyService,
	}
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := c.companyService.List(r.Context())
	if err != nil {
		slog.Error("List companies service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, companies)
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq company.CreateCompanyRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create company validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := c.companyService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.CreatedWithID(w, "Company added successfully", created.ID)
}

// GetByID implements CompanyHandler.
func (c *CompanyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		response.BadRequest(w, "Invalid company id", nil)
		return
	}

	found, err := c.companyService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Get company service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		response.BadRequest(w, "Invalid company id", nil)
		return
	}

	var updateReq company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update company validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := c.companyService.Update(r.Context(), id, updateReq); err != nil {
		slog.Error("Update company service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated successfully")
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		response.BadRequest(w, "Invalid company id", nil)
		return
	}

	if err := c.companyService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete company service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company deleted successfully")
}
