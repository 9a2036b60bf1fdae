package payroll

import "context"

// PayrollRepository defines data access methods for payroll entries.
// All methods take the owning userID to prevent cross-account access.
type PayrollRepository interface {
	CreateEntry(ctx context.Context, entry Entry) (Entry, error)
	GetEntryByID(ctx context.Context, userID string, id string) (Entry, error)
	// GetLatestEntry returns the entry with the highest period number for the
	// employee and tax year, or ErrEntryNotFound when the year has none.
	GetLatestEntry(ctx context.Context, userID string, employeeID string, taxYear string) (Entry, error)
	ExistsForPeriod(ctx context.Context, employeeID string, taxYear string, periodNumber int64) (bool, error)
	ListEntries(ctx context.Context, userID string, filter EntryFilter) ([]Entry, int64, error)
	DeleteEntry(ctx context.Context, userID string, id string) error
}
