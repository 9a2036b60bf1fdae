package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/invoice"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/database"
)

type invoiceRepositoryImpl struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

const invoiceColumns = `i.id, i.user_id, i.supplier_id, i.direction, i.invoice_number, i.counterparty,
		i.issue_date, i.due_date, i.net_amount_pence, i.vat_rate_bp, i.vat_amount_pence,
		i.total_amount_pence, i.status, i.paid_at, i.created_at, i.updated_at`

func scanInvoice(row pgx.Row, withSupplierName bool) (invoice.Invoice, error) {
	var inv invoice.Invoice

	dest := []interface{}{
		&inv.ID, &inv.UserID, &inv.SupplierID, &inv.Direction, &inv.InvoiceNumber, &inv.Counterparty,
		&inv.IssueDate, &inv.DueDate, &inv.NetAmountPence, &inv.VATRateBasisPoints, &inv.VATAmountPence,
		&inv.TotalAmountPence, &inv.Status, &inv.PaidAt, &inv.CreatedAt, &inv.UpdatedAt,
	}
	if withSupplierName {
		dest = append(dest, &inv.SupplierName)
	}

	if err := row.Scan(dest...); err != nil {
		return invoice.Invoice{}, err
	}

	return inv, nil
}

// Create implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) Create(ctx context.Context, newInvoice invoice.Invoice) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoices (
			user_id, supplier_id, direction, invoice_number, counterparty, issue_date,
			due_date, net_amount_pence, vat_rate_bp, vat_amount_pence, total_amount_pence, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, user_id, supplier_id, direction, invoice_number, counterparty,
			issue_date, due_date, net_amount_pence, vat_rate_bp, vat_amount_pence,
			total_amount_pence, status, paid_at, created_at, updated_at
	`

	created, err := scanInvoice(q.QueryRow(ctx, query,
		newInvoice.UserID, newInvoice.SupplierID, newInvoice.Direction, newInvoice.InvoiceNumber,
		newInvoice.Counterparty, newInvoice.IssueDate, newInvoice.DueDate, newInvoice.NetAmountPence,
		newInvoice.VATRateBasisPoints, newInvoice.VATAmountPence, newInvoice.TotalAmountPence,
		newInvoice.Status,
	), false)
	if err != nil {
		if strings.Contains(err.Error(), "invoices_user_id_invoice_number_key") {
			return invoice.Invoice{}, invoice.ErrInvoiceNumberExists
		}
		return invoice.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	return created, nil
}

// GetByID implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetByID(ctx context.Context, userID string, id string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invoiceColumns + `,
			s.name AS supplier_name
		FROM invoices i
		LEFT JOIN suppliers s ON i.supplier_id = s.id
		WHERE i.id = $1 AND i.user_id = $2
	`

	found, err := scanInvoice(q.QueryRow(ctx, query, id, userID), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	return found, nil
}

// List implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) List(ctx context.Context, userID string, filter invoice.InvoiceFilter) ([]invoice.Invoice, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"i.user_id = $1"}
	args := []interface{}{userID}
	argIdx := 2

	if filter.Direction != "" {
		conditions = append(conditions, fmt.Sprintf("i.direction = $%d", argIdx))
		args = append(args, filter.Direction)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("i.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("i.issue_date >= $%d", argIdx))
		args = append(args, filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("i.issue_date <= $%d", argIdx))
		args = append(args, filter.DateTo)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM invoices i WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s,
			s.name AS supplier_name
		FROM invoices i
		LEFT JOIN suppliers s ON i.supplier_id = s.id
		WHERE %s
		ORDER BY i.issue_date DESC, i.invoice_number DESC
		LIMIT $%d OFFSET $%d
	`, invoiceColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []invoice.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

// Update implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) Update(ctx context.Context, updated invoice.Invoice) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices
		SET supplier_id = $1, direction = $2, invoice_number = $3, counterparty = $4,
			issue_date = $5, due_date = $6, net_amount_pence = $7, vat_rate_bp = $8,
			vat_amount_pence = $9, total_amount_pence = $10, updated_at = NOW()
		WHERE id = $11 AND user_id = $12
		RETURNING id, user_id, supplier_id, direction, invoice_number, counterparty,
			issue_date, due_date, net_amount_pence, vat_rate_bp, vat_amount_pence,
			total_amount_pence, status, paid_at, created_at, updated_at
	`

	inv, err := scanInvoice(q.QueryRow(ctx, query,
		updated.SupplierID, updated.Direction, updated.InvoiceNumber, updated.Counterparty,
		updated.IssueDate, updated.DueDate, updated.NetAmountPence, updated.VATRateBasisPoints,
		updated.VATAmountPence, updated.TotalAmountPence,
		updated.ID, updated.UserID,
	), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		if strings.Contains(err.Error(), "invoices_user_id_invoice_number_key") {
			return invoice.Invoice{}, invoice.ErrInvoiceNumberExists
		}
		return invoice.Invoice{}, fmt.Errorf("failed to update invoice: %w", err)
	}

	return inv, nil
}

// UpdateStatus implements invoice.InvoiceRepository. Moving to paid stamps
// paid_at; any other move clears it.
func (r *invoiceRepositoryImpl) UpdateStatus(ctx context.Context, userID string, id string, status invoice.Status) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices
		SET status = $1,
			paid_at = CASE WHEN $1 = 'paid' THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, supplier_id, direction, invoice_number, counterparty,
			issue_date, due_date, net_amount_pence, vat_rate_bp, vat_amount_pence,
			total_amount_pence, status, paid_at, created_at, updated_at
	`

	inv, err := scanInvoice(q.QueryRow(ctx, query, status, id, userID), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to update invoice status: %w", err)
	}

	return inv, nil
}

// Delete implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) Delete(ctx context.Context, userID string, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM invoices
		WHERE id = $1 AND user_id = $2
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, userID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	return nil
}

// ExistsByNumber implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) ExistsByNumber(ctx context.Context, userID string, invoiceNumber string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var query string
	args := []interface{}{userID, invoiceNumber}
	if excludeID != nil {
		query = `SELECT EXISTS(SELECT 1 FROM invoices WHERE user_id = $1 AND invoice_number = $2 AND id <> $3)`
		args = append(args, *excludeID)
	} else {
		query = `SELECT EXISTS(SELECT 1 FROM invoices WHERE user_id = $1 AND invoice_number = $2)`
	}

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check invoice number: %w", err)
	}
	return exists, nil
}
