package http

import (
	"encoding/json"
	"net/http"

	"github.com/paybooks/paybooks-backend-go/internal/domain/business"
	"github.com/paybooks/paybooks-backend-go/internal/handler/http/response"
)

type BusinessHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpsertProfile(w http.ResponseWriter, r *http.Request)
}

type businessHandlerImpl struct {
	businessService business.BusinessService
}

func NewBusinessHandler(businessService business.BusinessService) BusinessHandler {
	return &businessHandlerImpl{businessService: businessService}
}

// GetProfile implements BusinessHandler
func (h *businessHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	result, err := h.businessService.GetProfile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertProfile implements BusinessHandler
func (h *businessHandlerImpl) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var req business.UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.businessService.UpsertProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
