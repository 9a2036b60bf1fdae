package payroll

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/paybooks/paybooks-backend-go/internal/domain/business"
	"github.com/paybooks/paybooks-backend-go/internal/domain/employee"
	"github.com/paybooks/paybooks-backend-go/internal/domain/payroll"
	"github.com/paybooks/paybooks-backend-go/internal/paye"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/pdf"
	"golang.org/x/sync/errgroup"
)

// runPayrollConcurrency caps how many employees a batch run calculates at
// once. The engine is pure so the limit only protects the connection pool.
const runPayrollConcurrency = 5

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	businessRepo business.BusinessRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository, businessRepo business.BusinessRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		businessRepo: businessRepo,
	}
}

// Helper function to extract the authenticated user from context
func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// Helper function to map an Entry entity to EntryResponse
func mapEntryToResponse(entry payroll.Entry) payroll.EntryResponse {
	var payDateStr *string
	if entry.PayDate != nil {
		s := entry.PayDate.Format("2006-01-02")
		payDateStr = &s
	}

	var employeeName string
	if entry.EmployeeName != nil {
		employeeName = *entry.EmployeeName
	}

	return payroll.EntryResponse{
		ID:                           entry.ID,
		EmployeeID:                   entry.EmployeeID,
		EmployeeName:                 employeeName,
		TaxYear:                      entry.TaxYear,
		PeriodNumber:                 entry.PeriodNumber,
		PayFrequency:                 string(entry.PayFrequency),
		TaxCode:                      entry.TaxCode,
		NICategory:                   string(entry.NICategory),
		StudentLoanPlan:              string(entry.StudentLoanPlan),
		PayDate:                      payDateStr,
		GrossPayPence:                entry.GrossPayPence,
		BonusPence:                   entry.BonusPence,
		CommissionPence:              entry.CommissionPence,
		OtherDeductionsPence:         entry.OtherDeductionsPence,
		TaxablePayPence:              entry.TaxablePayPence,
		IncomeTaxPence:               entry.IncomeTaxPence,
		EmployeeNIPence:              entry.EmployeeNIPence,
		EmployerNIPence:              entry.EmployerNIPence,
		StudentLoanPence:             entry.StudentLoanPence,
		EmployeePensionPence:         entry.EmployeePensionPence,
		EmployerPensionPence:         entry.EmployerPensionPence,
		NetPayPence:                  entry.NetPayPence,
		CumulativeTaxableIncomePence: entry.CumulativeTaxableIncomePence,
		CumulativeTaxPaidPence:       entry.CumulativeTaxPaidPence,
		TaxBreakdown:                 entry.TaxBreakdown,
		CreatedAt:                    entry.CreatedAt.Format(time.RFC3339),
	}
}

// calculateForEmployee resolves the engine input for one employee and period
// and runs the calculation. Gross defaults to the period's share of the
// annual salary, and cumulative totals chain from the latest entry of the
// tax year.
func (s *PayrollServiceImpl) calculateForEmployee(ctx context.Context, userID string, emp employee.Employee, req payroll.CalculateRequest) (paye.CalculationInput, paye.CalculationResult, error) {
	if periods := emp.PayFrequency.PeriodsPerYear(); periods > 0 && req.PeriodNumber > periods {
		return paye.CalculationInput{}, paye.CalculationResult{}, payroll.ErrPeriodOutOfRange
	}

	grossPence := int64(0)
	if req.GrossPayPence != nil {
		grossPence = *req.GrossPayPence
	} else {
		periodized, err := paye.PeriodizeAmount(emp.AnnualSalaryPence, emp.PayFrequency)
		if err != nil {
			return paye.CalculationInput{}, paye.CalculationResult{}, err
		}
		grossPence = periodized
	}

	var cumulativeTaxable, cumulativeTax int64
	latest, err := s.payrollRepo.GetLatestEntry(ctx, userID, emp.ID, req.TaxYear)
	if err != nil {
		if !errors.Is(err, payroll.ErrEntryNotFound) {
			return paye.CalculationInput{}, paye.CalculationResult{}, fmt.Errorf("failed to get latest payroll entry: %w", err)
		}
	} else {
		cumulativeTaxable = latest.CumulativeTaxableIncomePence
		cumulativeTax = latest.CumulativeTaxPaidPence
	}

	input := paye.CalculationInput{
		TaxYear:                        req.TaxYear,
		TaxCode:                        emp.TaxCode,
		PayFrequency:                   emp.PayFrequency,
		PeriodNumber:                   req.PeriodNumber,
		GrossPayPence:                  grossPence,
		BonusPence:                     req.BonusPence,
		CommissionPence:                req.CommissionPence,
		OtherDeductionsPence:           req.OtherDeductionsPence,
		NICategory:                     emp.NICategory,
		StudentLoanPlan:                emp.StudentLoanPlan,
		PensionOptIn:                   emp.PensionOptIn,
		PensionContributionBasisPoints: emp.PensionContributionBasisPoints,
		EmployerPensionBasisPoints:     emp.EmployerPensionBasisPoints,
		CumulativeTaxableIncomePence:   cumulativeTaxable,
		CumulativeTaxPaidPence:         cumulativeTax,
	}

	result, err := paye.CalculatePayroll(input)
	if err != nil {
		return paye.CalculationInput{}, paye.CalculationResult{}, err
	}

	return input, result, nil
}

// persistEntry stores a calculated period as a payroll entry.
func (s *PayrollServiceImpl) persistEntry(ctx context.Context, userID string, emp employee.Employee, req payroll.CalculateRequest, input paye.CalculationInput, result paye.CalculationResult) (payroll.EntryResponse, error) {
	exists, err := s.payrollRepo.ExistsForPeriod(ctx, emp.ID, req.TaxYear, req.PeriodNumber)
	if err != nil {
		return payroll.EntryResponse{}, fmt.Errorf("failed to check payroll period: %w", err)
	}
	if exists {
		return payroll.EntryResponse{}, payroll.ErrEntryAlreadyExists
	}

	var payDate *time.Time
	if req.PayDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.PayDate)
		if err != nil {
			return payroll.EntryResponse{}, fmt.Errorf("failed to parse pay date: %w", err)
		}
		payDate = &parsed
	}

	id, err := uuid.NewV7()
	if err != nil {
		return payroll.EntryResponse{}, fmt.Errorf("failed to generate entry id: %w", err)
	}

	entry := payroll.Entry{
		ID:                           id.String(),
		UserID:                       userID,
		EmployeeID:                   emp.ID,
		TaxYear:                      req.TaxYear,
		PeriodNumber:                 req.PeriodNumber,
		PayFrequency:                 emp.PayFrequency,
		TaxCode:                      emp.TaxCode,
		NICategory:                   emp.NICategory,
		StudentLoanPlan:              emp.StudentLoanPlan,
		PayDate:                      payDate,
		GrossPayPence:                input.GrossPayPence,
		BonusPence:                   req.BonusPence,
		CommissionPence:              req.CommissionPence,
		OtherDeductionsPence:         req.OtherDeductionsPence,
		TaxablePayPence:              result.TaxableIncomePence,
		IncomeTaxPence:               result.IncomeTaxPence,
		EmployeeNIPence:              result.EmployeeNIPence,
		EmployerNIPence:              result.EmployerNIPence,
		StudentLoanPence:             result.StudentLoanDeductionPence,
		EmployeePensionPence:         result.PensionEmployeeContributionPence,
		EmployerPensionPence:         result.PensionEmployerContributionPence,
		NetPayPence:                  result.NetPayPence,
		CumulativeTaxableIncomePence: result.NewCumulativeTaxableIncomePence,
		CumulativeTaxPaidPence:       result.NewCumulativeTaxPaidPence,
		TaxBreakdown:                 result.Breakdown,
	}

	created, err := s.payrollRepo.CreateEntry(ctx, entry)
	if err != nil {
		if errors.Is(err, payroll.ErrEntryAlreadyExists) {
			return payroll.EntryResponse{}, payroll.ErrEntryAlreadyExists
		}
		return payroll.EntryResponse{}, fmt.Errorf("failed to create payroll entry: %w", err)
	}

	fullName := emp.FullName()
	created.EmployeeName = &fullName

	return mapEntryToResponse(created), nil
}

// Preview implements payroll.PayrollService.
func (s *PayrollServiceImpl) Preview(ctx context.Context, req payroll.CalculateRequest) (payroll.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PreviewResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return payroll.PreviewResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, userID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PreviewResponse{}, employee.ErrEmployeeNotFound
		}
		return payroll.PreviewResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.Status == employee.StatusTerminated {
		return payroll.PreviewResponse{}, employee.ErrEmployeeTerminated
	}

	_, result, err := s.calculateForEmployee(ctx, userID, emp, req)
	if err != nil {
		return payroll.PreviewResponse{}, err
	}

	return payroll.PreviewResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		TaxYear:      req.TaxYear,
		PeriodNumber: req.PeriodNumber,
		PayFrequency: string(emp.PayFrequency),
		TaxCode:      emp.TaxCode,
		Result:       result,
	}, nil
}

// CreateEntry implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateEntry(ctx context.Context, req payroll.CalculateRequest) (payroll.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.EntryResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, userID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.EntryResponse{}, employee.ErrEmployeeNotFound
		}
		return payroll.EntryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.Status == employee.StatusTerminated {
		return payroll.EntryResponse{}, employee.ErrEmployeeTerminated
	}

	input, result, err := s.calculateForEmployee(ctx, userID, emp, req)
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	return s.persistEntry(ctx, userID, emp, req, input, result)
}

// GetEntry implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEntry(ctx context.Context, id string) (payroll.EntryResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	entry, err := s.payrollRepo.GetEntryByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, payroll.ErrEntryNotFound) {
			return payroll.EntryResponse{}, payroll.ErrEntryNotFound
		}
		return payroll.EntryResponse{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return mapEntryToResponse(entry), nil
}

// ListEntries implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListEntries(ctx context.Context, filter payroll.EntryFilter) (payroll.ListEntryResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListEntryResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return payroll.ListEntryResponse{}, err
	}

	entries, total, err := s.payrollRepo.ListEntries(ctx, userID, filter)
	if err != nil {
		return payroll.ListEntryResponse{}, fmt.Errorf("failed to list payroll entries: %w", err)
	}

	responses := make([]payroll.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEntryToResponse(entry))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min((filter.Page)*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return payroll.ListEntryResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Entries:    responses,
	}, nil
}

// DeleteEntry implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return err
	}

	entry, err := s.payrollRepo.GetEntryByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, payroll.ErrEntryNotFound) {
			return payroll.ErrEntryNotFound
		}
		return fmt.Errorf("failed to get payroll entry: %w", err)
	}

	// Deleting mid-year entries would corrupt the cumulative chain
	latest, err := s.payrollRepo.GetLatestEntry(ctx, userID, entry.EmployeeID, entry.TaxYear)
	if err != nil {
		return fmt.Errorf("failed to get latest payroll entry: %w", err)
	}
	if latest.ID != entry.ID {
		return payroll.ErrEntryNotLatest
	}

	if err := s.payrollRepo.DeleteEntry(ctx, userID, id); err != nil {
		if errors.Is(err, payroll.ErrEntryNotFound) {
			return payroll.ErrEntryNotFound
		}
		return fmt.Errorf("failed to delete payroll entry: %w", err)
	}

	return nil
}

// RunPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	active, err := s.employeeRepo.ListActive(ctx, userID)
	if err != nil {
		return payroll.RunPayrollResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	targets := make([]employee.Employee, 0, len(active))
	for _, emp := range active {
		if string(emp.PayFrequency) == req.PayFrequency {
			targets = append(targets, emp)
		}
	}

	var (
		mu      sync.Mutex
		created []payroll.EntryResponse
		skipped []payroll.RunSkip
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runPayrollConcurrency)

	for _, emp := range targets {
		emp := emp
		g.Go(func() error {
			calcReq := payroll.CalculateRequest{
				EmployeeID:   emp.ID,
				TaxYear:      req.TaxYear,
				PeriodNumber: req.PeriodNumber,
				PayDate:      req.PayDate,
			}

			input, result, err := s.calculateForEmployee(gCtx, userID, emp, calcReq)
			if err != nil {
				return fmt.Errorf("failed to calculate payroll for employee %s: %w", emp.ID, err)
			}

			resp, err := s.persistEntry(gCtx, userID, emp, calcReq, input, result)
			if err != nil {
				if errors.Is(err, payroll.ErrEntryAlreadyExists) {
					mu.Lock()
					skipped = append(skipped, payroll.RunSkip{
						EmployeeID:   emp.ID,
						EmployeeName: emp.FullName(),
						Reason:       "entry already exists for this period",
					})
					mu.Unlock()
					return nil
				}
				return err
			}

			mu.Lock()
			created = append(created, resp)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	sort.Slice(created, func(i, j int) bool { return created[i].EmployeeName < created[j].EmployeeName })
	sort.Slice(skipped, func(i, j int) bool { return skipped[i].EmployeeName < skipped[j].EmployeeName })

	return payroll.RunPayrollResponse{
		TaxYear:      req.TaxYear,
		PeriodNumber: req.PeriodNumber,
		PayFrequency: req.PayFrequency,
		Created:      created,
		Skipped:      skipped,
	}, nil
}

// GeneratePayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayslip(ctx context.Context, entryID string) ([]byte, string, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, "", err
	}

	entry, err := s.payrollRepo.GetEntryByID(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, payroll.ErrEntryNotFound) {
			return nil, "", payroll.ErrEntryNotFound
		}
		return nil, "", fmt.Errorf("failed to get payroll entry: %w", err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, userID, entry.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, "", employee.ErrEmployeeNotFound
		}
		return nil, "", fmt.Errorf("failed to get employee: %w", err)
	}

	// The business profile is optional; the payslip header is blank without it
	var businessName, payeReference string
	profile, err := s.businessRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, business.ErrProfileNotFound) {
		return nil, "", fmt.Errorf("failed to get business profile: %w", err)
	}
	if err == nil {
		businessName = profile.Name
		if profile.PAYEReference != nil {
			payeReference = *profile.PAYEReference
		}
	}

	earnings := []pdf.PayslipLine{
		{Label: "Basic pay", AmountPence: entry.GrossPayPence},
	}
	if entry.BonusPence > 0 {
		earnings = append(earnings, pdf.PayslipLine{Label: "Bonus", AmountPence: entry.BonusPence})
	}
	if entry.CommissionPence > 0 {
		earnings = append(earnings, pdf.PayslipLine{Label: "Commission", AmountPence: entry.CommissionPence})
	}

	deductions := []pdf.PayslipLine{
		{Label: "Income tax (PAYE)", AmountPence: entry.IncomeTaxPence},
		{Label: "National Insurance", AmountPence: entry.EmployeeNIPence},
	}
	if entry.StudentLoanPence > 0 {
		deductions = append(deductions, pdf.PayslipLine{Label: "Student loan", AmountPence: entry.StudentLoanPence})
	}
	if entry.EmployeePensionPence > 0 {
		deductions = append(deductions, pdf.PayslipLine{Label: "Pension", AmountPence: entry.EmployeePensionPence})
	}
	if entry.OtherDeductionsPence > 0 {
		deductions = append(deductions, pdf.PayslipLine{Label: "Other deductions", AmountPence: entry.OtherDeductionsPence})
	}

	var payDateStr string
	if entry.PayDate != nil {
		payDateStr = entry.PayDate.Format("02 Jan 2006")
	}

	data := pdf.PayslipData{
		BusinessName:                 businessName,
		PAYEReference:                payeReference,
		EmployeeName:                 emp.FullName(),
		NINumber:                     emp.NINumber,
		TaxCode:                      entry.TaxCode,
		TaxYear:                      entry.TaxYear,
		PeriodNumber:                 entry.PeriodNumber,
		PayFrequency:                 string(entry.PayFrequency),
		PayDate:                      payDateStr,
		Earnings:                     earnings,
		Deductions:                   deductions,
		NetPayPence:                  entry.NetPayPence,
		CumulativeTaxableIncomePence: entry.CumulativeTaxableIncomePence,
		CumulativeTaxPaidPence:       entry.CumulativeTaxPaidPence,
	}

	rendered, err := pdf.RenderPayslip(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render payslip: %w", err)
	}

	filename := fmt.Sprintf("payslip_%s_period_%d.pdf", entry.TaxYear, entry.PeriodNumber)
	return rendered, filename, nil
}
