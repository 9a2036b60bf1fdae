package invoice

import "time"

type Direction string

const (
	DirectionSales    Direction = "sales"
	DirectionPurchase Direction = "purchase"
)

type Status string

const (
	StatusDraft Status = "draft"
	StatusSent  Status = "sent"
	StatusPaid  Status = "paid"
	StatusVoid  Status = "void"
)

// VAT rates as basis points of the net amount.
const (
	VATRateStandardBasisPoints = int64(2000) // 20%
	VATRateReducedBasisPoints  = int64(500)  // 5%
	VATRateZeroBasisPoints     = int64(0)
)

type Invoice struct {
	ID                 string
	UserID             string
	SupplierID         *string
	Direction          Direction
	InvoiceNumber      string
	Counterparty       string
	IssueDate          time.Time
	DueDate            *time.Time
	NetAmountPence     int64
	VATRateBasisPoints int64
	VATAmountPence     int64
	TotalAmountPence   int64
	Status             Status
	PaidAt             *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	SupplierName *string
}

// CanTransitionTo reports whether the status change is allowed. Paid and void
// are terminal.
func (i *Invoice) CanTransitionTo(next Status) bool {
	switch i.Status {
	case StatusDraft:
		return next == StatusSent || next == StatusVoid
	case StatusSent:
		return next == StatusPaid || next == StatusVoid
	default:
		return false
	}
}
