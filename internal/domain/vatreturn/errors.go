package vatreturn

import "errors"

var (
	ErrReturnNotFound         = errors.New("vat return not found")
	ErrPeriodAlreadyExists    = errors.New("vat return already exists for this period")
	ErrReturnAlreadySubmitted = errors.New("vat return has already been submitted")
)
