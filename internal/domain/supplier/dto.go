package supplier

import (
	"github.com/paybooks/paybooks-backend-go/internal/pkg/validator"
)

type CreateSupplierRequest struct {
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	VATNumber *string `json:"vat_number,omitempty"`
	Address   *string `json:"address,omitempty"`
}

func (r *CreateSupplierRequest) Validate() error {
	if errs := r.validate(); len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateSupplierRequest) validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid UK phone number",
		})
	}

	if r.VATNumber != nil && !validator.IsValidVATNumber(*r.VATNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "vat_number",
			Message: "vat_number must be a 9 digit UK VAT registration number, optionally prefixed with GB",
		})
	}

	return errs
}

type UpdateSupplierRequest struct {
	ID        string  `json:"-"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	VATNumber *string `json:"vat_number,omitempty"`
	Address   *string `json:"address,omitempty"`
}

func (r *UpdateSupplierRequest) Validate() error {
	create := CreateSupplierRequest{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		VATNumber: r.VATNumber,
		Address:   r.Address,
	}
	if errs := create.validate(); len(errs) > 0 {
		return errs
	}
	return nil
}

type SupplierResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	VATNumber *string `json:"vat_number,omitempty"`
	Address   *string `json:"address,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type SupplierFilter struct {
	Search string
	Page   int
	Limit  int
}

func (f *SupplierFilter) Validate() error {
	var errs validator.ValidationErrors

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

type ListSupplierResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Suppliers  []SupplierResponse `json:"suppliers"`
}
