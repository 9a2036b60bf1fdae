package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/employee"
	"github.com/paybooks/paybooks-backend-go/internal/paye"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
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

// Helper function to map an Employee entity to EmployeeResponse
func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	var startDateStr *string
	if emp.StartDate != nil {
		s := emp.StartDate.Format("2006-01-02")
		startDateStr = &s
	}

	return employee.EmployeeResponse{
		ID:                             emp.ID,
		FirstName:                      emp.FirstName,
		LastName:                       emp.LastName,
		Email:                          emp.Email,
		NINumber:                       emp.NINumber,
		TaxCode:                        emp.TaxCode,
		NICategory:                     string(emp.NICategory),
		PayFrequency:                   string(emp.PayFrequency),
		AnnualSalaryPence:              emp.AnnualSalaryPence,
		StudentLoanPlan:                string(emp.StudentLoanPlan),
		PensionOptIn:                   emp.PensionOptIn,
		PensionContributionBasisPoints: emp.PensionContributionBasisPoints,
		EmployerPensionBasisPoints:     emp.EmployerPensionBasisPoints,
		StartDate:                      startDateStr,
		Status:                         string(emp.Status),
		CreatedAt:                      emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                      emp.UpdatedAt.Format(time.RFC3339),
	}
}

func parseStartDate(startDate *string) (*time.Time, error) {
	if startDate == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	return &parsed, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Check NI number uniqueness within this user's books
	exists, err := s.employeeRepo.ExistsByNINumber(ctx, userID, req.NINumber, nil)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check ni number: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrNINumberExists
	}

	startDate, err := parseStartDate(req.StartDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		UserID:                         userID,
		FirstName:                      req.FirstName,
		LastName:                       req.LastName,
		Email:                          req.Email,
		NINumber:                       req.NINumber,
		TaxCode:                        req.TaxCode,
		NICategory:                     paye.NICategory(req.NICategory),
		PayFrequency:                   paye.PayFrequency(req.PayFrequency),
		AnnualSalaryPence:              req.AnnualSalaryPence,
		StudentLoanPlan:                paye.StudentLoanPlan(req.StudentLoanPlan),
		PensionOptIn:                   req.PensionOptIn,
		PensionContributionBasisPoints: req.PensionContributionBasisPoints,
		EmployerPensionBasisPoints:     req.EmployerPensionBasisPoints,
		StartDate:                      startDate,
		Status:                         employee.StatusActive,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		if errors.Is(err, employee.ErrNINumberExists) {
			return employee.EmployeeResponse{}, employee.ErrNINumberExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, userID, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min((filter.Page)*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Employees:  responses,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, userID, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	// NI number may change, but not to one another employee already holds
	exists, err := s.employeeRepo.ExistsByNINumber(ctx, userID, req.NINumber, &req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check ni number: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrNINumberExists
	}

	startDate, err := parseStartDate(req.StartDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated := current
	updated.FirstName = req.FirstName
	updated.LastName = req.LastName
	updated.Email = req.Email
	updated.NINumber = req.NINumber
	updated.TaxCode = req.TaxCode
	updated.NICategory = paye.NICategory(req.NICategory)
	updated.PayFrequency = paye.PayFrequency(req.PayFrequency)
	updated.AnnualSalaryPence = req.AnnualSalaryPence
	updated.StudentLoanPlan = paye.StudentLoanPlan(req.StudentLoanPlan)
	updated.PensionOptIn = req.PensionOptIn
	updated.PensionContributionBasisPoints = req.PensionContributionBasisPoints
	updated.EmployerPensionBasisPoints = req.EmployerPensionBasisPoints
	updated.StartDate = startDate
	updated.Status = employee.Status(req.Status)

	saved, err := s.employeeRepo.Update(ctx, updated)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrNINumberExists) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(saved), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return err
	}

	err = s.employeeRepo.Delete(ctx, userID, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
