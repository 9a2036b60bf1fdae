package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/vatreturn"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/database"
)

type vatReturnRepositoryImpl struct {
	db *database.DB
}

func NewVATReturnRepository(db *database.DB) vatreturn.VATReturnRepository {
	return &vatReturnRepositoryImpl{db: db}
}

const vatReturnColumns = `id, user_id, period_key, period_start, period_end,
		box1_pence, box2_pence, box3_pence, box4_pence, box5_pence,
		box6_pounds, box7_pounds, box8_pounds, box9_pounds,
		status, submitted_at, created_at, updated_at`

func scanVATReturn(row pgx.Row) (vatreturn.Return, error) {
	var ret vatreturn.Return
	err := row.Scan(
		&ret.ID, &ret.UserID, &ret.PeriodKey, &ret.PeriodStart, &ret.PeriodEnd,
		&ret.Box1Pence, &ret.Box2Pence, &ret.Box3Pence, &ret.Box4Pence, &ret.Box5Pence,
		&ret.Box6Pounds, &ret.Box7Pounds, &ret.Box8Pounds, &ret.Box9Pounds,
		&ret.Status, &ret.SubmittedAt, &ret.CreatedAt, &ret.UpdatedAt,
	)
	return ret, err
}

// Create implements vatreturn.VATReturnRepository.
func (r *vatReturnRepositoryImpl) Create(ctx context.Context, newReturn vatreturn.Return) (vatreturn.Return, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vat_returns (
			user_id, period_key, period_start, period_end,
			box1_pence, box2_pence, box3_pence, box4_pence, box5_pence,
			box6_pounds, box7_pounds, box8_pounds, box9_pounds, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + vatReturnColumns

	created, err := scanVATReturn(q.QueryRow(ctx, query,
		newReturn.UserID, newReturn.PeriodKey, newReturn.PeriodStart, newReturn.PeriodEnd,
		newReturn.Box1Pence, newReturn.Box2Pence, newReturn.Box3Pence, newReturn.Box4Pence,
		newReturn.Box5Pence, newReturn.Box6Pounds, newReturn.Box7Pounds, newReturn.Box8Pounds,
		newReturn.Box9Pounds, newReturn.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "vat_returns_user_id_period_key_key") {
			return vatreturn.Return{}, vatreturn.ErrPeriodAlreadyExists
		}
		return vatreturn.Return{}, fmt.Errorf("failed to create vat return: %w", err)
	}

	return created, nil
}

// GetByID implements vatreturn.VATReturnRepository.
func (r *vatReturnRepositoryImpl) GetByID(ctx context.Context, userID string, id string) (vatreturn.Return, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + vatReturnColumns + `
		FROM vat_returns
		WHERE id = $1 AND user_id = $2
	`

	found, err := scanVATReturn(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return vatreturn.Return{}, vatreturn.ErrReturnNotFound
		}
		return vatreturn.Return{}, fmt.Errorf("failed to get vat return: %w", err)
	}

	return found, nil
}

// GetByPeriodKey implements vatreturn.VATReturnRepository.
func (r *vatReturnRepositoryImpl) GetByPeriodKey(ctx context.Context, userID string, periodKey string) (vatreturn.Return, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + vatReturnColumns + `
		FROM vat_returns
		WHERE user_id = $1 AND period_key = $2
	`

	found, err := scanVATReturn(q.QueryRow(ctx, query, userID, periodKey))
	if err != nil {
		if err == pgx.ErrNoRows {
			return vatreturn.Return{}, vatreturn.ErrReturnNotFound
		}
		return vatreturn.Return{}, fmt.Errorf("failed to get vat return by period: %w", err)
	}

	return found, nil
}

// List implements vatreturn.VATReturnRepository.
func (r *vatReturnRepositoryImpl) List(ctx context.Context, userID string) ([]vatreturn.Return, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + vatReturnColumns + `
		FROM vat_returns
		WHERE user_id = $1
		ORDER BY period_start DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vat returns: %w", err)
	}
	defer rows.Close()

	var returns []vatreturn.Return
	for rows.Next() {
		ret, err := scanVATReturn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vat return: %w", err)
		}
		returns = append(returns, ret)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return returns, nil
}

// MarkSubmitted implements vatreturn.VATReturnRepository. Only draft returns
// match the update; the service checks status beforehand to distinguish
// already-submitted from missing.
func (r *vatReturnRepositoryImpl) MarkSubmitted(ctx context.Context, userID string, id string) (vatreturn.Return, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vat_returns
		SET status = $1, submitted_at = NOW(), updated_at = NOW()
		WHERE id = $2 AND user_id = $3 AND status = $4
		RETURNING ` + vatReturnColumns

	ret, err := scanVATReturn(q.QueryRow(ctx, query, vatreturn.StatusSubmitted, id, userID, vatreturn.StatusDraft))
	if err != nil {
		if err == pgx.ErrNoRows {
			return vatreturn.Return{}, vatreturn.ErrReturnNotFound
		}
		return vatreturn.Return{}, fmt.Errorf("failed to submit vat return: %w", err)
	}

	return ret, nil
}

// Delete implements vatreturn.VATReturnRepository.
func (r *vatReturnRepositoryImpl) Delete(ctx context.Context, userID string, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM vat_returns
		WHERE id = $1 AND user_id = $2
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, userID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return vatreturn.ErrReturnNotFound
		}
		return fmt.Errorf("failed to delete vat return: %w", err)
	}

	return nil
}

// SumPaidInvoices implements vatreturn.VATReturnRepository.
func (r *vatReturnRepositoryImpl) SumPaidInvoices(ctx context.Context, userID string, direction string, start, end time.Time) (vatreturn.InvoiceVATTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(vat_amount_pence), 0), COALESCE(SUM(net_amount_pence), 0)
		FROM invoices
		WHERE user_id = $1 AND direction = $2 AND status = 'paid'
			AND issue_date >= $3 AND issue_date <= $4
	`

	var totals vatreturn.InvoiceVATTotals
	err := q.QueryRow(ctx, query, userID, direction, start, end).Scan(&totals.VATPence, &totals.NetPence)
	if err != nil {
		return vatreturn.InvoiceVATTotals{}, fmt.Errorf("failed to sum paid invoices: %w", err)
	}

	return totals, nil
}
