package invoice

import "errors"

var (
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvoiceNumberExists     = errors.New("invoice number already exists")
	ErrInvalidStatusTransition = errors.New("invalid invoice status transition")
	ErrInvoiceNotEditable      = errors.New("only draft invoices can be edited")
	ErrSupplierNotFound        = errors.New("supplier not found")
)
