package invoice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/invoice"
	"github.com/paybooks/paybooks-backend-go/internal/domain/supplier"
	"github.com/shopspring/decimal"
)

type InvoiceServiceImpl struct {
	invoiceRepo  invoice.InvoiceRepository
	supplierRepo supplier.SupplierRepository
}

func NewInvoiceService(invoiceRepo invoice.InvoiceRepository, supplierRepo supplier.SupplierRepository) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		invoiceRepo:  invoiceRepo,
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

// computeVATPence derives the VAT amount from the net amount and rate,
// rounded to the nearest penny (half up). The client never supplies it.
func computeVATPence(netAmountPence, vatRateBasisPoints int64) int64 {
	return decimal.NewFromInt(netAmountPence).
		Mul(decimal.NewFromInt(vatRateBasisPoints)).
		Div(decimal.NewFromInt(10000)).
		Round(0).
		IntPart()
}

// Helper function to map an Invoice entity to InvoiceResponse
func mapInvoiceToResponse(inv invoice.Invoice) invoice.InvoiceResponse {
	var dueDateStr *string
	if inv.DueDate != nil {
		s := inv.DueDate.Format("2006-01-02")
		dueDateStr = &s
	}

	var paidAtStr *string
	if inv.PaidAt != nil {
		s := inv.PaidAt.Format(time.RFC3339)
		paidAtStr = &s
	}

	return invoice.InvoiceResponse{
		ID:                 inv.ID,
		Direction:          string(inv.Direction),
		InvoiceNumber:      inv.InvoiceNumber,
		Counterparty:       inv.Counterparty,
		SupplierID:         inv.SupplierID,
		SupplierName:       inv.SupplierName,
		IssueDate:          inv.IssueDate.Format("2006-01-02"),
		DueDate:            dueDateStr,
		NetAmountPence:     inv.NetAmountPence,
		VATRateBasisPoints: inv.VATRateBasisPoints,
		VATAmountPence:     inv.VATAmountPence,
		TotalAmountPence:   inv.TotalAmountPence,
		Status:             string(inv.Status),
		PaidAt:             paidAtStr,
		CreatedAt:          inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          inv.UpdatedAt.Format(time.RFC3339),
	}
}

// resolveSupplier verifies the supplier reference belongs to the user.
func (s *InvoiceServiceImpl) resolveSupplier(ctx context.Context, userID string, supplierID *string) error {
	if supplierID == nil {
		return nil
	}
	_, err := s.supplierRepo.GetByID(ctx, userID, *supplierID)
	if err != nil {
		if errors.Is(err, supplier.ErrSupplierNotFound) {
			return invoice.ErrSupplierNotFound
		}
		return fmt.Errorf("failed to get supplier: %w", err)
	}
	return nil
}

// CreateInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	exists, err := s.invoiceRepo.ExistsByNumber(ctx, userID, req.InvoiceNumber, nil)
	if err != nil {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to check invoice number: %w", err)
	}
	if exists {
		return invoice.InvoiceResponse{}, invoice.ErrInvoiceNumberExists
	}

	if err := s.resolveSupplier(ctx, userID, req.SupplierID); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to parse issue date: %w", err)
	}
	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return invoice.InvoiceResponse{}, fmt.Errorf("failed to parse due date: %w", err)
		}
		dueDate = &parsed
	}

	vatPence := computeVATPence(req.NetAmountPence, req.VATRateBasisPoints)

	created, err := s.invoiceRepo.Create(ctx, invoice.Invoice{
		UserID:             userID,
		SupplierID:         req.SupplierID,
		Direction:          invoice.Direction(req.Direction),
		InvoiceNumber:      req.InvoiceNumber,
		Counterparty:       req.Counterparty,
		IssueDate:          issueDate,
		DueDate:            dueDate,
		NetAmountPence:     req.NetAmountPence,
		VATRateBasisPoints: req.VATRateBasisPoints,
		VATAmountPence:     vatPence,
		TotalAmountPence:   req.NetAmountPence + vatPence,
		Status:             invoice.StatusDraft,
	})
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNumberExists) {
			return invoice.InvoiceResponse{}, invoice.ErrInvoiceNumberExists
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	return mapInvoiceToResponse(created), nil
}

// GetInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) GetInvoice(ctx context.Context, id string) (invoice.InvoiceResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			return invoice.InvoiceResponse{}, invoice.ErrInvoiceNotFound
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	return mapInvoiceToResponse(inv), nil
}

// ListInvoices implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context, filter invoice.InvoiceFilter) (invoice.ListInvoiceResponse, error) {
	if err := filter.Validate(); err != nil {
		return invoice.ListInvoiceResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return invoice.ListInvoiceResponse{}, err
	}

	invoices, total, err := s.invoiceRepo.List(ctx, userID, filter)
	if err != nil {
		return invoice.ListInvoiceResponse{}, fmt.Errorf("failed to list invoices: %w", err)
	}

	responses := make([]invoice.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, mapInvoiceToResponse(inv))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min((filter.Page)*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return invoice.ListInvoiceResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Invoices:   responses,
	}, nil
}

// UpdateInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) UpdateInvoice(ctx context.Context, req invoice.UpdateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	current, err := s.invoiceRepo.GetByID(ctx, userID, req.ID)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			return invoice.InvoiceResponse{}, invoice.ErrInvoiceNotFound
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	// Amounts are frozen once the invoice leaves draft
	if current.Status != invoice.StatusDraft {
		return invoice.InvoiceResponse{}, invoice.ErrInvoiceNotEditable
	}

	exists, err := s.invoiceRepo.ExistsByNumber(ctx, userID, req.InvoiceNumber, &req.ID)
	if err != nil {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to check invoice number: %w", err)
	}
	if exists {
		return invoice.InvoiceResponse{}, invoice.ErrInvoiceNumberExists
	}

	if err := s.resolveSupplier(ctx, userID, req.SupplierID); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to parse issue date: %w", err)
	}
	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return invoice.InvoiceResponse{}, fmt.Errorf("failed to parse due date: %w", err)
		}
		dueDate = &parsed
	}

	vatPence := computeVATPence(req.NetAmountPence, req.VATRateBasisPoints)

	updated := current
	updated.SupplierID = req.SupplierID
	updated.Direction = invoice.Direction(req.Direction)
	updated.InvoiceNumber = req.InvoiceNumber
	updated.Counterparty = req.Counterparty
	updated.IssueDate = issueDate
	updated.DueDate = dueDate
	updated.NetAmountPence = req.NetAmountPence
	updated.VATRateBasisPoints = req.VATRateBasisPoints
	updated.VATAmountPence = vatPence
	updated.TotalAmountPence = req.NetAmountPence + vatPence

	saved, err := s.invoiceRepo.Update(ctx, updated)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) || errors.Is(err, invoice.ErrInvoiceNumberExists) {
			return invoice.InvoiceResponse{}, err
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to update invoice: %w", err)
	}

	return mapInvoiceToResponse(saved), nil
}

// UpdateInvoiceStatus implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) UpdateInvoiceStatus(ctx context.Context, req invoice.UpdateInvoiceStatusRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	current, err := s.invoiceRepo.GetByID(ctx, userID, req.ID)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			return invoice.InvoiceResponse{}, invoice.ErrInvoiceNotFound
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	next := invoice.Status(req.Status)
	if !current.CanTransitionTo(next) {
		return invoice.InvoiceResponse{}, invoice.ErrInvalidStatusTransition
	}

	saved, err := s.invoiceRepo.UpdateStatus(ctx, userID, req.ID, next)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			return invoice.InvoiceResponse{}, invoice.ErrInvoiceNotFound
		}
		return invoice.InvoiceResponse{}, fmt.Errorf("failed to update invoice status: %w", err)
	}

	return mapInvoiceToResponse(saved), nil
}

// DeleteInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) DeleteInvoice(ctx context.Context, id string) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return err
	}

	err = s.invoiceRepo.Delete(ctx, userID, id)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			return invoice.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	return nil
}
