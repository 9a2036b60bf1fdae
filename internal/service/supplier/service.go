package supplier

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/supplier"
)

type SupplierServiceImpl struct {
	supplierRepo supplier.SupplierRepository
}

func NewSupplierService(supplierRepo supplier.SupplierRepository) supplier.SupplierService {
	return &SupplierServiceImpl{
		supplierRepo: supplierRepo,
	}
}

// Helper function to extract the authenticated user from context
func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// Helper function to map a Supplier entity to SupplierResponse
func mapSupplierToResponse(sup supplier.Supplier) supplier.SupplierResponse {
	return supplier.SupplierResponse{
		ID:        sup.ID,
		Name:      sup.Name,
		Email:     sup.Email,
		Phone:     sup.Phone,
		VATNumber: sup.VATNumber,
		Address:   sup.Address,
		CreatedAt: sup.CreatedAt.Format(time.RFC3339),
		UpdatedAt: sup.UpdatedAt.Format(time.RFC3339),
	}
}

// CreateSupplier implements supplier.SupplierService.
func (s *SupplierServiceImpl) CreateSupplier(ctx context.Context, req supplier.CreateSupplierRequest) (supplier.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return supplier.SupplierResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return supplier.SupplierResponse{}, err
	}

	created, err := s.supplierRepo.Create(ctx, supplier.Supplier{
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		VATNumber: req.VATNumber,
		Address:   req.Address,
	})
	if err != nil {
		return supplier.SupplierResponse{}, fmt.Errorf("failed to create supplier: %w", err)
	}

	return mapSupplierToResponse(created), nil
}

// GetSupplier implements supplier.SupplierService.
func (s *SupplierServiceImpl) GetSupplier(ctx context.Context, id string) (supplier.SupplierResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return supplier.SupplierResponse{}, err
	}

	sup, err := s.supplierRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, supplier.ErrSupplierNotFound) {
			return supplier.SupplierResponse{}, supplier.ErrSupplierNotFound
		}
		return supplier.SupplierResponse{}, fmt.Errorf("failed to get supplier: %w", err)
	}

	return mapSupplierToResponse(sup), nil
}

// ListSuppliers implements supplier.SupplierService.
func (s *SupplierServiceImpl) ListSuppliers(ctx context.Context, filter supplier.SupplierFilter) (supplier.ListSupplierResponse, error) {
	if err := filter.Validate(); err != nil {
		return supplier.ListSupplierResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return supplier.ListSupplierResponse{}, err
	}

	suppliers, total, err := s.supplierRepo.List(ctx, userID, filter)
	if err != nil {
		return supplier.ListSupplierResponse{}, fmt.Errorf("failed to list suppliers: %w", err)
	}

	responses := make([]supplier.SupplierResponse, 0, len(suppliers))
	for _, sup := range suppliers {
		responses = append(responses, mapSupplierToResponse(sup))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min((filter.Page)*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return supplier.ListSupplierResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Suppliers:  responses,
	}, nil
}

// UpdateSupplier implements supplier.SupplierService.
func (s *SupplierServiceImpl) UpdateSupplier(ctx context.Context, req supplier.UpdateSupplierRequest) (supplier.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return supplier.SupplierResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return supplier.SupplierResponse{}, err
	}

	current, err := s.supplierRepo.GetByID(ctx, userID, req.ID)
	if err != nil {
		if errors.Is(err, supplier.ErrSupplierNotFound) {
			return supplier.SupplierResponse{}, supplier.ErrSupplierNotFound
		}
		return supplier.SupplierResponse{}, fmt.Errorf("failed to get supplier: %w", err)
	}

	updated := current
	updated.Name = req.Name
	updated.Email = req.Email
	updated.Phone = req.Phone
	updated.VATNumber = req.VATNumber
	updated.Address = req.Address

	saved, err := s.supplierRepo.Update(ctx, updated)
	if err != nil {
		if errors.Is(err, supplier.ErrSupplierNotFound) {
			return supplier.SupplierResponse{}, supplier.ErrSupplierNotFound
		}
		return supplier.SupplierResponse{}, fmt.Errorf("failed to update supplier: %w", err)
	}

	return mapSupplierToResponse(saved), nil
}

// DeleteSupplier implements supplier.SupplierService.
func (s *SupplierServiceImpl) DeleteSupplier(ctx context.Context, id string) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return err
	}

	err = s.supplierRepo.Delete(ctx, userID, id)
	if err != nil {
		if errors.Is(err, supplier.ErrSupplierNotFound) {
			return supplier.ErrSupplierNotFound
		}
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	return nil
}
