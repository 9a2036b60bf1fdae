package business

import "time"

// Profile is the employer's registration details: one per user, created the
// first time the profile is saved. The PAYE reference and VAT number appear
// on payslips and VAT returns respectively.
type Profile struct {
	ID            string
	UserID        string
	Name          string
	PAYEReference *string
	VATNumber     *string
	Address       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
