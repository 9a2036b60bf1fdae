package response

import (
	"errors"
	"net/http"

	"github.com/paybooks/paybooks-backend-go/internal/domain/auth"
	"github.com/paybooks/paybooks-backend-go/internal/domain/business"
	"github.com/paybooks/paybooks-backend-go/internal/domain/employee"
	"github.com/paybooks/paybooks-backend-go/internal/domain/invoice"
	"github.com/paybooks/paybooks-backend-go/internal/domain/payroll"
	"github.com/paybooks/paybooks-backend-go/internal/domain/supplier"
	"github.com/paybooks/paybooks-backend-go/internal/domain/vatreturn"
	"github.com/paybooks/paybooks-backend-go/internal/paye"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrOAuthEmailNotVerified):
		Forbidden(w, "Google account email is not verified")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNINumberExists):
		Conflict(w, "National insurance number already registered")
	case errors.Is(err, employee.ErrEmployeeTerminated):
		Conflict(w, "Employee is terminated")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrEntryAlreadyExists):
		Conflict(w, "Payroll entry already exists for this period")
	case errors.Is(err, payroll.ErrEntryNotLatest):
		Conflict(w, "Only the most recent entry of a tax year can be deleted")
	case errors.Is(err, payroll.ErrPeriodOutOfRange):
		BadRequest(w, "Period number out of range for pay frequency", nil)

	// Tax engine errors
	case errors.Is(err, paye.ErrInvalidTaxCode):
		BadRequest(w, "Invalid tax code", nil)
	// Missing tax-year tables are a deployment problem, not a client one.
	case errors.Is(err, paye.ErrUnsupportedTaxYear):
		fail(w, http.StatusInternalServerError, "UNSUPPORTED_TAX_YEAR", "Tax year tables are not configured for the requested year", nil)
	case errors.Is(err, paye.ErrUnknownNICategory):
		BadRequest(w, "Unknown national insurance category", nil)
	case errors.Is(err, paye.ErrUnknownLoanPlan):
		BadRequest(w, "Unknown student loan plan", nil)
	case errors.Is(err, paye.ErrInvalidFrequency):
		BadRequest(w, "Invalid pay frequency", nil)

	// Supplier domain errors
	case errors.Is(err, supplier.ErrSupplierNotFound):
		NotFound(w, "Supplier not found")

	// Invoice domain errors
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrInvoiceNumberExists):
		Conflict(w, "Invoice number already exists")
	case errors.Is(err, invoice.ErrInvalidStatusTransition):
		Conflict(w, "Invalid invoice status transition")
	case errors.Is(err, invoice.ErrInvoiceNotEditable):
		Conflict(w, "Only draft invoices can be edited")
	case errors.Is(err, invoice.ErrSupplierNotFound):
		NotFound(w, "Supplier not found")

	// VAT return domain errors
	case errors.Is(err, vatreturn.ErrReturnNotFound):
		NotFound(w, "VAT return not found")
	case errors.Is(err, vatreturn.ErrPeriodAlreadyExists):
		Conflict(w, "VAT return already exists for this period")
	case errors.Is(err, vatreturn.ErrReturnAlreadySubmitted):
		Conflict(w, "VAT return has already been submitted")

	// Business profile errors
	case errors.Is(err, business.ErrProfileNotFound):
		NotFound(w, "Business profile not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
