package paye

import "errors"

var (
	ErrInvalidTaxCode     = errors.New("invalid tax code")
	ErrUnsupportedTaxYear = errors.New("unsupported tax year")
	ErrUnknownNICategory  = errors.New("unknown national insurance category")
	ErrUnknownLoanPlan    = errors.New("unknown student loan plan")
	ErrInvalidFrequency   = errors.New("invalid pay frequency")
)
