package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/dashboard"
	"github.com/paybooks/paybooks-backend-go/internal/paye"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// getUserID extracts user_id from JWT claims
func (s *DashboardServiceImpl) getUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id not found in claims")
	}
	return userID, nil
}

// GetDashboard returns combined dashboard data using parallel goroutines.
// Five goroutines, each with a single DB query.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	taxYear := paye.TaxYearForDate(now)

	var (
		employeeSummary dashboard.EmployeeSummaryResponse
		latestPayRun    dashboard.LatestPayRunResponse
		payrollYear     dashboard.PayrollYearResponse
		invoiceSummary  dashboard.InvoiceSummaryResponse
		vatPosition     dashboard.VATPositionResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Employee headcount (1 query: total, active, terminated)
	g.Go(func() error {
		counts, err := s.GetEmployeeCounts(gCtx, userID)
		if err != nil {
			return err
		}
		employeeSummary = dashboard.EmployeeSummaryResponse{
			TotalEmployees:      counts.Total,
			ActiveEmployees:     counts.Active,
			TerminatedEmployees: counts.Terminated,
		}
		return nil
	})

	// 2. Latest pay run cost (1 query; nil when no payroll has been run)
	g.Go(func() error {
		run, err := s.GetLatestPayRun(gCtx, userID)
		if err != nil {
			return err
		}
		if run == nil {
			return nil
		}
		latestPayRun = dashboard.LatestPayRunResponse{
			TaxYear:              run.TaxYear,
			PeriodNumber:         run.PeriodNumber,
			PayFrequency:         run.PayFrequency,
			EmployeeCount:        run.EmployeeCount,
			TotalGrossPence:      run.GrossPence,
			TotalNetPence:        run.NetPence,
			TotalIncomeTaxPence:  run.IncomeTaxPence,
			TotalEmployeeNIPence: run.EmployeeNIPence,
			TotalEmployerNIPence: run.EmployerNIPence,
		}
		return nil
	})

	// 3. Year-to-date payroll cost for the current tax year (1 query)
	g.Go(func() error {
		totals, err := s.GetPayrollYearTotals(gCtx, userID, taxYear)
		if err != nil {
			return err
		}
		payrollYear = dashboard.PayrollYearResponse{
			TaxYear:                   taxYear,
			EntryCount:                totals.EntryCount,
			TotalGrossPence:           totals.GrossPence,
			TotalNetPence:             totals.NetPence,
			TotalIncomeTaxPence:       totals.IncomeTaxPence,
			TotalEmployeeNIPence:      totals.EmployeeNIPence,
			TotalEmployerNIPence:      totals.EmployerNIPence,
			TotalEmployerPensionPence: totals.EmployerPensionPence,
		}
		return nil
	})

	// 4. Outstanding invoice amounts plus overdue/draft counts (1 query)
	g.Go(func() error {
		counts, err := s.GetInvoiceCounts(gCtx, userID, now)
		if err != nil {
			return err
		}
		invoiceSummary = dashboard.InvoiceSummaryResponse{
			OutstandingSalesPence:    counts.OutstandingSalesPence,
			OutstandingPurchasePence: counts.OutstandingPurchasePence,
			OverdueCount:             counts.OverdueCount,
			DraftCount:               counts.DraftCount,
		}
		return nil
	})

	// 5. VAT position since the last submitted return (1 query)
	g.Go(func() error {
		totals, err := s.GetVATTotals(gCtx, userID)
		if err != nil {
			return err
		}
		vatPosition = dashboard.VATPositionResponse{
			OutputVATPence:      totals.OutputVATPence,
			InputVATPence:       totals.InputVATPence,
			NetPositionPence:    totals.OutputVATPence - totals.InputVATPence,
			LastSubmittedPeriod: totals.LastSubmittedPeriod,
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		EmployeeSummary: employeeSummary,
		LatestPayRun:    latestPayRun,
		PayrollYear:     payrollYear,
		InvoiceSummary:  invoiceSummary,
		VATPosition:     vatPosition,
	}, nil
}
