package payroll

import "errors"

var (
	ErrEntryNotFound      = errors.New("payroll entry not found")
	ErrEntryAlreadyExists = errors.New("payroll entry already exists for this period")
	ErrEntryNotLatest     = errors.New("only the most recent entry of a tax year can be deleted")
	ErrPeriodOutOfRange   = errors.New("period number out of range for pay frequency")
)
