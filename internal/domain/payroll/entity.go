package payroll

import (
	"time"

	"github.com/paybooks/paybooks-backend-go/internal/paye"
)

// Entry is one employee's persisted gross-to-net result for a single pay
// period. The cumulative totals are the values after this period; the next
// period's calculation chains from them.
type Entry struct {
	ID                           string
	UserID                       string
	EmployeeID                   string
	TaxYear                      string
	PeriodNumber                 int64
	PayFrequency                 paye.PayFrequency
	TaxCode                      string
	NICategory                   paye.NICategory
	StudentLoanPlan              paye.StudentLoanPlan
	PayDate                      *time.Time
	GrossPayPence                int64
	BonusPence                   int64
	CommissionPence              int64
	OtherDeductionsPence         int64
	TaxablePayPence              int64
	IncomeTaxPence               int64
	EmployeeNIPence              int64
	EmployerNIPence              int64
	StudentLoanPence             int64
	EmployeePensionPence         int64
	EmployerPensionPence         int64
	NetPayPence                  int64
	CumulativeTaxableIncomePence int64
	CumulativeTaxPaidPence       int64
	TaxBreakdown                 []paye.BandBreakdown
	CreatedAt                    time.Time

	// Joined fields
	EmployeeName *string
}
