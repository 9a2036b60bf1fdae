package invoice

import (
	"github.com/paybooks/paybooks-backend-go/internal/pkg/validator"
)

var (
	directions = []string{"sales", "purchase"}
	statuses   = []string{"draft", "sent", "paid", "void"}
	vatRates   = []int64{VATRateStandardBasisPoints, VATRateReducedBasisPoints, VATRateZeroBasisPoints}
)

type CreateInvoiceRequest struct {
	Direction          string  `json:"direction"`
	InvoiceNumber      string  `json:"invoice_number"`
	Counterparty       string  `json:"counterparty"`
	SupplierID         *string `json:"supplier_id,omitempty"`
	IssueDate          string  `json:"issue_date"`
	DueDate            *string `json:"due_date,omitempty"`
	NetAmountPence     int64   `json:"net_amount_pence"`
	VATRateBasisPoints int64   `json:"vat_rate_basis_points"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if errs := r.validate(); len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateInvoiceRequest) validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Direction, directions) {
		errs = append(errs, validator.ValidationError{
			Field:   "direction",
			Message: "direction must be one of sales, purchase",
		})
	}

	if validator.IsEmpty(r.InvoiceNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "invoice_number",
			Message: "invoice_number is required",
		})
	}
	if len(r.InvoiceNumber) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "invoice_number",
			Message: "invoice_number must not exceed 50 characters",
		})
	}

	if validator.IsEmpty(r.Counterparty) {
		errs = append(errs, validator.ValidationError{
			Field:   "counterparty",
			Message: "counterparty is required",
		})
	}
	if len(r.Counterparty) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "counterparty",
			Message: "counterparty must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.IssueDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "issue_date",
			Message: "issue_date is required",
		})
	} else if !validator.IsValidDate(r.IssueDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "issue_date",
			Message: "issue_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if r.DueDate != nil {
		if !validator.IsValidDate(*r.DueDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be a valid date in YYYY-MM-DD format",
			})
		} else if validator.IsValidDate(r.IssueDate) && validator.Before(*r.DueDate, r.IssueDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must not be before issue_date",
			})
		}
	}

	if r.NetAmountPence <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "net_amount_pence",
			Message: "net_amount_pence must be greater than zero",
		})
	}

	validRate := false
	for _, rate := range vatRates {
		if r.VATRateBasisPoints == rate {
			validRate = true
			break
		}
	}
	if !validRate {
		errs = append(errs, validator.ValidationError{
			Field:   "vat_rate_basis_points",
			Message: "vat_rate_basis_points must be one of 2000 (standard), 500 (reduced), 0 (zero)",
		})
	}

	return errs
}

type UpdateInvoiceRequest struct {
	ID                 string  `json:"-"`
	Direction          string  `json:"direction"`
	InvoiceNumber      string  `json:"invoice_number"`
	Counterparty       string  `json:"counterparty"`
	SupplierID         *string `json:"supplier_id,omitempty"`
	IssueDate          string  `json:"issue_date"`
	DueDate            *string `json:"due_date,omitempty"`
	NetAmountPence     int64   `json:"net_amount_pence"`
	VATRateBasisPoints int64   `json:"vat_rate_basis_points"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	create := CreateInvoiceRequest{
		Direction:          r.Direction,
		InvoiceNumber:      r.InvoiceNumber,
		Counterparty:       r.Counterparty,
		SupplierID:         r.SupplierID,
		IssueDate:          r.IssueDate,
		DueDate:            r.DueDate,
		NetAmountPence:     r.NetAmountPence,
		VATRateBasisPoints: r.VATRateBasisPoints,
	}
	if errs := create.validate(); len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateInvoiceStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateInvoiceStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of draft, sent, paid, void",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InvoiceResponse struct {
	ID                 string  `json:"id"`
	Direction          string  `json:"direction"`
	InvoiceNumber      string  `json:"invoice_number"`
	Counterparty       string  `json:"counterparty"`
	SupplierID         *string `json:"supplier_id,omitempty"`
	SupplierName       *string `json:"supplier_name,omitempty"`
	IssueDate          string  `json:"issue_date"`
	DueDate            *string `json:"due_date,omitempty"`
	NetAmountPence     int64   `json:"net_amount_pence"`
	VATRateBasisPoints int64   `json:"vat_rate_basis_points"`
	VATAmountPence     int64   `json:"vat_amount_pence"`
	TotalAmountPence   int64   `json:"total_amount_pence"`
	Status             string  `json:"status"`
	PaidAt             *string `json:"paid_at,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

type InvoiceFilter struct {
	Direction string
	Status    string
	DateFrom  string
	DateTo    string
	Page      int
	Limit     int
}

func (f *InvoiceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Direction != "" && !validator.IsInSlice(f.Direction, directions) {
		errs = append(errs, validator.ValidationError{
			Field:   "direction",
			Message: "direction must be one of sales, purchase",
		})
	}
	if f.Status != "" && !validator.IsInSlice(f.Status, statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of draft, sent, paid, void",
		})
	}
	if f.DateFrom != "" && !validator.IsValidDate(f.DateFrom) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be a valid date in YYYY-MM-DD format",
		})
	}
	if f.DateTo != "" && !validator.IsValidDate(f.DateTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be a valid date in YYYY-MM-DD format",
		})
	}
	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be at least 1",
		})
	}
	if f.Limit < 1 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListInvoiceResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Showing    string            `json:"showing"`
	Invoices   []InvoiceResponse `json:"invoices"`
}
