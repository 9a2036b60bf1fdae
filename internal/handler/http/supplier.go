package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/supplier"
	"github.com/paybooks/paybooks-backend-go/internal/handler/http/response"
)

type SupplierHandler interface {
	CreateSupplier(w http.ResponseWriter, r *http.Request)
	GetSupplier(w http.ResponseWriter, r *http.Request)
	ListSuppliers(w http.ResponseWriter, r *http.Request)
	UpdateSupplier(w http.ResponseWriter, r *http.Request)
	DeleteSupplier(w http.ResponseWriter, r *http.Request)
}

type supplierHandlerImpl struct {
	supplierService supplier.SupplierService
}

func NewSupplierHandler(supplierService supplier.SupplierService) SupplierHandler {
	return &supplierHandlerImpl{supplierService: supplierService}
}

// CreateSupplier implements SupplierHandler
func (h *supplierHandlerImpl) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req supplier.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.supplierService.CreateSupplier(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Supplier created successfully", result)
}

// GetSupplier implements SupplierHandler
func (h *supplierHandlerImpl) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Supplier ID is required", nil)
		return
	}

	result, err := h.supplierService.GetSupplier(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSuppliers implements SupplierHandler
func (h *supplierHandlerImpl) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	filter := supplier.SupplierFilter{
		Page:  1,
		Limit: 20,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	filter.Search = r.URL.Query().Get("search")

	result, err := h.supplierService.ListSuppliers(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSupplier implements SupplierHandler
func (h *supplierHandlerImpl) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Supplier ID is required", nil)
		return
	}

	var req supplier.UpdateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.supplierService.UpdateSupplier(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteSupplier implements SupplierHandler
func (h *supplierHandlerImpl) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Supplier ID is required", nil)
		return
	}

	if err := h.supplierService.DeleteSupplier(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Supplier deleted successfully", nil)
}
