package employee

import (
	"time"

	"github.com/paybooks/paybooks-backend-go/internal/paye"
)

type Employee struct {
	ID                             string
	UserID                         string
	FirstName                      string
	LastName                       string
	Email                          *string
	NINumber                       string
	TaxCode                        string
	NICategory                     paye.NICategory
	PayFrequency                   paye.PayFrequency
	AnnualSalaryPence              int64
	StudentLoanPlan                paye.StudentLoanPlan
	PensionOptIn                   bool
	PensionContributionBasisPoints int64
	EmployerPensionBasisPoints     int64
	StartDate                      *time.Time
	Status                         Status
	CreatedAt                      time.Time
	UpdatedAt                      time.Time
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Status string

const (
	StatusActive     Status = "active"
	StatusTerminated Status = "terminated"
)
