package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/business"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/database"
)

type businessRepositoryImpl struct {
	db *database.DB
}

func NewBusinessRepository(db *database.DB) business.BusinessRepository {
	return &businessRepositoryImpl{db: db}
}

// GetByUserID implements business.BusinessRepository.
func (r *businessRepositoryImpl) GetByUserID(ctx context.Context, userID string) (business.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, name, paye_reference, vat_number, address, created_at, updated_at
		FROM business_profiles
		WHERE user_id = $1
	`

	var profile business.Profile
	err := q.QueryRow(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.Name, &profile.PAYEReference,
		&profile.VATNumber, &profile.Address, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return business.Profile{}, business.ErrProfileNotFound
		}
		return business.Profile{}, fmt.Errorf("failed to get business profile: %w", err)
	}

	return profile, nil
}

// Upsert implements business.BusinessRepository. One profile per user; saving
// again overwrites the existing row.
func (r *businessRepositoryImpl) Upsert(ctx context.Context, profile business.Profile) (business.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_profiles (user_id, name, paye_reference, vat_number, address)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name,
			paye_reference = EXCLUDED.paye_reference,
			vat_number = EXCLUDED.vat_number,
			address = EXCLUDED.address,
			updated_at = NOW()
		RETURNING id, user_id, name, paye_reference, vat_number, address, created_at, updated_at
	`

	var saved business.Profile
	err := q.QueryRow(ctx, query,
		profile.UserID, profile.Name, profile.PAYEReference, profile.VATNumber, profile.Address,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Name, &saved.PAYEReference,
		&saved.VATNumber, &saved.Address, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return business.Profile{}, fmt.Errorf("failed to save business profile: %w", err)
	}

	return saved, nil
}
