package postgresql_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/paybooks/paybooks-backend-go/internal/domain/employee"
	"github.com/paybooks/paybooks-backend-go/internal/domain/payroll"
	"github.com/paybooks/paybooks-backend-go/internal/paye"
	"github.com/paybooks/paybooks-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(userID, employeeID string, periodNumber int64) payroll.Entry {
	id, _ := uuid.NewV7()
	return payroll.Entry{
		ID:                           id.String(),
		UserID:                       userID,
		EmployeeID:                   employeeID,
		TaxYear:                      "2025-26",
		PeriodNumber:                 periodNumber,
		PayFrequency:                 paye.FrequencyMonthly,
		TaxCode:                      "1257L",
		NICategory:                   paye.NICategoryA,
		GrossPayPence:                300000,
		TaxablePayPence:              195250,
		IncomeTaxPence:               39050,
		EmployeeNIPence:              15616,
		EmployerNIPence:              38745,
		NetPayPence:                  245334,
		CumulativeTaxableIncomePence: 195250 * periodNumber,
		CumulativeTaxPaidPence:       39050 * periodNumber,
		TaxBreakdown: []paye.BandBreakdown{
			{BandLabel: "Basic rate", AmountPence: 195250, TaxPence: 39050},
		},
	}
}

// ===== EMPLOYEE REPOSITORY TESTS =====

func TestEmployeeRepository_Create_DuplicateNINumber(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "owner@example.com")
	createTestEmployee(t, ctx, owner.ID, "QQ123456C")

	repo := postgresql.NewEmployeeRepository(testDB)
	_, err := repo.Create(ctx, employee.Employee{
		UserID:            owner.ID,
		FirstName:         "Grace",
		LastName:          "Hopper",
		NINumber:          "QQ123456C",
		TaxCode:           "1257L",
		NICategory:        "A",
		PayFrequency:      "monthly",
		AnnualSalaryPence: 4200000,
		Status:            employee.StatusActive,
	})

	assert.ErrorIs(t, err, employee.ErrNINumberExists)
}

func TestEmployeeRepository_GetByID_WrongUser(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "owner@example.com")
	other := createTestUser(t, ctx, "other@example.com")
	emp := createTestEmployee(t, ctx, owner.ID, "QQ123456C")

	repo := postgresql.NewEmployeeRepository(testDB)
	_, err := repo.GetByID(ctx, other.ID, emp.ID)

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_List_FiltersByStatus(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "owner@example.com")
	active := createTestEmployee(t, ctx, owner.ID, "QQ123456C")

	repo := postgresql.NewEmployeeRepository(testDB)
	terminated := active
	terminated.NINumber = "AB123456C"
	terminated.Status = employee.StatusTerminated
	terminated.UserID = owner.ID
	_, err := repo.Create(ctx, terminated)
	require.NoError(t, err)

	employees, total, err := repo.List(ctx, owner.ID, employee.EmployeeFilter{
		Status: "active",
		Page:   1,
		Limit:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, employees, 1)
	assert.Equal(t, active.ID, employees[0].ID)
}

// ===== PAYROLL REPOSITORY TESTS =====

func TestPayrollRepository_CreateEntry_RoundTripsBreakdown(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "owner@example.com")
	emp := createTestEmployee(t, ctx, owner.ID, "QQ123456C")

	repo := postgresql.NewPayrollRepository(testDB)
	created, err := repo.CreateEntry(ctx, newTestEntry(owner.ID, emp.ID, 1))

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	require.Len(t, created.TaxBreakdown, 1)
	assert.Equal(t, "Basic rate", created.TaxBreakdown[0].BandLabel)
	assert.Equal(t, int64(39050), created.TaxBreakdown[0].TaxPence)
}

func TestPayrollRepository_CreateEntry_DuplicatePeriod(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "owner@example.com")
	emp := createTestEmployee(t, ctx, owner.ID, "QQ123456C")

	repo := postgresql.NewPayrollRepository(testDB)
	_, err := repo.CreateEntry(ctx, newTestEntry(owner.ID, emp.ID, 1))
	require.NoError(t, err)

	_, err = repo.CreateEntry(ctx, newTestEntry(owner.ID, emp.ID, 1))

	assert.ErrorIs(t, err, payroll.ErrEntryAlreadyExists)
}

func TestPayrollRepository_GetLatestEntry_PicksHighestPeriod(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "owner@example.com")
	emp := createTestEmployee(t, ctx, owner.ID, "QQ123456C")

	repo := postgresql.NewPayrollRepository(testDB)
	for _, period := range []int64{1, 3, 2} {
		_, err := repo.CreateEntry(ctx, newTestEntry(owner.ID, emp.ID, period))
		require.NoError(t, err)
	}

	latest, err := repo.GetLatestEntry(ctx, owner.ID, emp.ID, "2025-26")

	require.NoError(t, err)
	assert.Equal(t, int64(3), latest.PeriodNumber)
}

func TestPayrollRepository_GetLatestEntry_NoEntries(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "owner@example.com")
	emp := createTestEmployee(t, ctx, owner.ID, "QQ123456C")

	repo := postgresql.NewPayrollRepository(testDB)
	_, err := repo.GetLatestEntry(ctx, owner.ID, emp.ID, "2025-26")

	assert.ErrorIs(t, err, payroll.ErrEntryNotFound)
}

func TestPayrollRepository_ExistsForPeriod(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "owner@example.com")
	emp := createTestEmployee(t, ctx, owner.ID, "QQ123456C")

	repo := postgresql.NewPayrollRepository(testDB)
	_, err := repo.CreateEntry(ctx, newTestEntry(owner.ID, emp.ID, 5))
	require.NoError(t, err)

	exists, err := repo.ExistsForPeriod(ctx, emp.ID, "2025-26", 5)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForPeriod(ctx, emp.ID, "2025-26", 6)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPayrollRepository_ListEntries_JoinsEmployeeName(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "owner@example.com")
	emp := createTestEmployee(t, ctx, owner.ID, "QQ123456C")

	repo := postgresql.NewPayrollRepository(testDB)
	_, err := repo.CreateEntry(ctx, newTestEntry(owner.ID, emp.ID, 1))
	require.NoError(t, err)

	entries, total, err := repo.ListEntries(ctx, owner.ID, payroll.EntryFilter{
		TaxYear: "2025-26",
		Page:    1,
		Limit:   10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].EmployeeName)
	assert.Equal(t, "Ada Lovelace", *entries[0].EmployeeName)
}

func TestPayrollRepository_DeleteEntry(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "owner@example.com")
	emp := createTestEmployee(t, ctx, owner.ID, "QQ123456C")

	repo := postgresql.NewPayrollRepository(testDB)
	created, err := repo.CreateEntry(ctx, newTestEntry(owner.ID, emp.ID, 1))
	require.NoError(t, err)

	err = repo.DeleteEntry(ctx, owner.ID, created.ID)
	require.NoError(t, err)

	_, err = repo.GetEntryByID(ctx, owner.ID, created.ID)
	assert.ErrorIs(t, err, payroll.ErrEntryNotFound)
}
