package business

import (
	"github.com/paybooks/paybooks-backend-go/internal/pkg/validator"
)

// UpsertProfileRequest creates the profile on first save and replaces it on
// every save after that.
type UpsertProfileRequest struct {
	Name          string  `json:"name"`
	PAYEReference *string `json:"paye_reference,omitempty"`
	VATNumber     *string `json:"vat_number,omitempty"`
	Address       *string `json:"address,omitempty"`
}

func (r *UpsertProfileRequest) Validate() error {
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

	if r.PAYEReference != nil && !validator.IsValidPAYEReference(*r.PAYEReference) {
		errs = append(errs, validator.ValidationError{
			Field:   "paye_reference",
			Message: "paye_reference must be an HMRC employer reference like 123/AB45678",
		})
	}

	if r.VATNumber != nil && !validator.IsValidVATNumber(*r.VATNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "vat_number",
			Message: "vat_number must be a 9 digit UK VAT registration number, optionally prefixed with GB",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProfileResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PAYEReference *string `json:"paye_reference,omitempty"`
	VATNumber     *string `json:"vat_number,omitempty"`
	Address       *string `json:"address,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
