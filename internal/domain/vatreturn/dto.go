package vatreturn

import (
	"regexp"

	"github.com/paybooks/paybooks-backend-go/internal/pkg/validator"
)

// Period keys look like 2025-Q2 or 2025-06: one return per quarter or month.
var periodKeyRegex = regexp.MustCompile(`^\d{4}-(Q[1-4]|0[1-9]|1[0-2])$`)

type ComputeReturnRequest struct {
	PeriodKey   string `json:"period_key"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *ComputeReturnRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_key",
			Message: "period_key is required",
		})
	} else if !periodKeyRegex.MatchString(r.PeriodKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_key",
			Message: "period_key must look like 2025-Q2 or 2025-06",
		})
	}

	if validator.IsEmpty(r.PeriodStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start is required",
		})
	} else if !validator.IsValidDate(r.PeriodStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start must be a valid date in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.PeriodEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end is required",
		})
	} else if !validator.IsValidDate(r.PeriodEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be a valid date in YYYY-MM-DD format",
		})
	}

	if validator.IsValidDate(r.PeriodStart) && validator.IsValidDate(r.PeriodEnd) &&
		validator.Before(r.PeriodEnd, r.PeriodStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must not be before period_start",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReturnResponse struct {
	ID          string  `json:"id"`
	PeriodKey   string  `json:"period_key"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Box1Pence   int64   `json:"box1_pence"`
	Box2Pence   int64   `json:"box2_pence"`
	Box3Pence   int64   `json:"box3_pence"`
	Box4Pence   int64   `json:"box4_pence"`
	Box5Pence   int64   `json:"box5_pence"`
	Box6Pounds  int64   `json:"box6_pounds"`
	Box7Pounds  int64   `json:"box7_pounds"`
	Box8Pounds  int64   `json:"box8_pounds"`
	Box9Pounds  int64   `json:"box9_pounds"`
	ReclaimDue  bool    `json:"reclaim_due"`
	Status      string  `json:"status"`
	SubmittedAt *string `json:"submitted_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ListReturnResponse struct {
	Returns []ReturnResponse `json:"returns"`
}
