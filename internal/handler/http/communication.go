package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/communication"
	"github.com/cmlabs-crm/crm-backend-go/internal/handler/http/response"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type CommunicationHandler interface {
	Log(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type CommunicationHandlerImpl struct {
	communicationService communication.CommunicationService
}

func NewCommunicationHandler(communicationService communication.CommunicationService) CommunicationHandler {
	return &CommunicationHandlerImpl{
		communicationService: communicationService,
	}
}

// Log implements CommunicationHandler.
func (h *CommunicationHandlerImpl) Log(w http.ResponseWriter, r *http.Request) {
	var logReq communication.LogCommunicationRequest

	if err := json.NewDecoder(r.Body).Decode(&logReq); err != nil {
		slog.Error("Log communication decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := logReq.Validate(); err != nil {
		slog.Error("Log communication validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.communicationService.Log(r.Context(), logReq)
	if err != nil {
		slog.Error("Log communication service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.CreatedWithID(w, "Communication logged successfully", created.ID)
}

// List implements CommunicationHandler.
func (h *CommunicationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter communication.ListCommunicationsFilter

	if companyID := r.URL.Query().Get("company_id"); companyID != "" {
		id, err := strconv.ParseInt(companyID, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid company_id", map[string]string{
				"company_id": "company_id must be an integer",
			})
			return
		}
		filter.CompanyID = &id
	}

	communications, err := h.communicationService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List communications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, communications)
}

// GetByID implements CommunicationHandler.
func (h *CommunicationHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		response.BadRequest(w, "Invalid communication id", nil)
		return
	}

	found, err := h.communicationService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Get communication service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}
