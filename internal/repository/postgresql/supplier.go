package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/supplier"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/database"
)

type supplierRepositoryImpl struct {
	db *database.DB
}

func NewSupplierRepository(db *database.DB) supplier.SupplierRepository {
	return &supplierRepositoryImpl{db: db}
}

const supplierColumns = `id, user_id, name, email, phone, vat_number, address, created_at, updated_at`

func scanSupplier(row pgx.Row) (supplier.Supplier, error) {
	var s supplier.Supplier
	err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &s.Email, &s.Phone, &s.VATNumber, &s.Address,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements supplier.SupplierRepository.
func (r *supplierRepositoryImpl) Create(ctx context.Context, newSupplier supplier.Supplier) (supplier.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO suppliers (user_id, name, email, phone, vat_number, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + supplierColumns

	created, err := scanSupplier(q.QueryRow(ctx, query,
		newSupplier.UserID, newSupplier.Name, newSupplier.Email, newSupplier.Phone,
		newSupplier.VATNumber, newSupplier.Address,
	))
	if err != nil {
		return supplier.Supplier{}, fmt.Errorf("failed to create supplier: %w", err)
	}

	return created, nil
}

// GetByID implements supplier.SupplierRepository.
func (r *supplierRepositoryImpl) GetByID(ctx context.Context, userID string, id string) (supplier.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE id = $1 AND user_id = $2
	`

	found, err := scanSupplier(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return supplier.Supplier{}, supplier.ErrSupplierNotFound
		}
		return supplier.Supplier{}, fmt.Errorf("failed to get supplier: %w", err)
	}

	return found, nil
}

// List implements supplier.SupplierRepository.
func (r *supplierRepositoryImpl) List(ctx context.Context, userID string, filter supplier.SupplierFilter) ([]supplier.Supplier, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"user_id = $1"}
	args := []interface{}{userID}
	argIdx := 2

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR vat_number ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM suppliers WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM suppliers
		WHERE %s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, supplierColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []supplier.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return suppliers, total, nil
}

// Update implements supplier.SupplierRepository.
func (r *supplierRepositoryImpl) Update(ctx context.Context, updated supplier.Supplier) (supplier.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE suppliers
		SET name = $1, email = $2, phone = $3, vat_number = $4, address = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
		RETURNING ` + supplierColumns

	s, err := scanSupplier(q.QueryRow(ctx, query,
		updated.Name, updated.Email, updated.Phone, updated.VATNumber, updated.Address,
		updated.ID, updated.UserID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return supplier.Supplier{}, supplier.ErrSupplierNotFound
		}
		return supplier.Supplier{}, fmt.Errorf("failed to update supplier: %w", err)
	}

	return s, nil
}

// Delete implements supplier.SupplierRepository.
func (r *supplierRepositoryImpl) Delete(ctx context.Context, userID string, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM suppliers
		WHERE id = $1 AND user_id = $2
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, userID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return supplier.ErrSupplierNotFound
		}
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	return nil
}
