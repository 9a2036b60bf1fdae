package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/vatreturn"
	"github.com/paybooks/paybooks-backend-go/internal/handler/http/response"
)

type VATReturnHandler interface {
	ComputeReturn(w http.ResponseWriter, r *http.Request)
	GetReturn(w http.ResponseWriter, r *http.Request)
	ListReturns(w http.ResponseWriter, r *http.Request)
	SubmitReturn(w http.ResponseWriter, r *http.Request)
	DeleteReturn(w http.ResponseWriter, r *http.Request)
}

type vatReturnHandlerImpl struct {
	vatReturnService vatreturn.VATReturnService
}

func NewVATReturnHandler(vatReturnService vatreturn.VATReturnService) VATReturnHandler {
	return &vatReturnHandlerImpl{vatReturnService: vatReturnService}
}

// ComputeReturn implements VATReturnHandler
func (h *vatReturnHandlerImpl) ComputeReturn(w http.ResponseWriter, r *http.Request) {
	var req vatreturn.ComputeReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.vatReturnService.ComputeReturn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "VAT return computed", result)
}

// GetReturn implements VATReturnHandler
func (h *vatReturnHandlerImpl) GetReturn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Return ID is required", nil)
		return
	}

	result, err := h.vatReturnService.GetReturn(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListReturns implements VATReturnHandler
func (h *vatReturnHandlerImpl) ListReturns(w http.ResponseWriter, r *http.Request) {
	result, err := h.vatReturnService.ListReturns(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SubmitReturn implements VATReturnHandler
func (h *vatReturnHandlerImpl) SubmitReturn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Return ID is required", nil)
		return
	}

	result, err := h.vatReturnService.SubmitReturn(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "VAT return submitted", result)
}

// DeleteReturn implements VATReturnHandler
func (h *vatReturnHandlerImpl) DeleteReturn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Return ID is required", nil)
		return
	}

	if err := h.vatReturnService.DeleteReturn(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "VAT return deleted successfully", nil)
}
