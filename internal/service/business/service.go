package business

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/business"
)

type BusinessServiceImpl struct {
	businessRepo business.BusinessRepository
}

func NewBusinessService(businessRepo business.BusinessRepository) business.BusinessService {
	return &BusinessServiceImpl{
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

// Helper function to map a Profile entity to ProfileResponse
func mapProfileToResponse(profile business.Profile) business.ProfileResponse {
	return business.ProfileResponse{
		ID:            profile.ID,
		Name:          profile.Name,
		PAYEReference: profile.PAYEReference,
		VATNumber:     profile.VATNumber,
		Address:       profile.Address,
		CreatedAt:     profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     profile.UpdatedAt.Format(time.RFC3339),
	}
}

// GetProfile implements business.BusinessService.
func (s *BusinessServiceImpl) GetProfile(ctx context.Context) (business.ProfileResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return business.ProfileResponse{}, err
	}

	profile, err := s.businessRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, business.ErrProfileNotFound) {
			return business.ProfileResponse{}, business.ErrProfileNotFound
		}
		return business.ProfileResponse{}, fmt.Errorf("failed to get business profile: %w", err)
	}

	return mapProfileToResponse(profile), nil
}

// UpsertProfile implements business.BusinessService.
func (s *BusinessServiceImpl) UpsertProfile(ctx context.Context, req business.UpsertProfileRequest) (business.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return business.ProfileResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return business.ProfileResponse{}, err
	}

	saved, err := s.businessRepo.Upsert(ctx, business.Profile{
		UserID:        userID,
		Name:          req.Name,
		PAYEReference: req.PAYEReference,
		VATNumber:     req.VATNumber,
		Address:       req.Address,
	})
	if err != nil {
		return business.ProfileResponse{}, fmt.Errorf("failed to save business profile: %w", err)
	}

	return mapProfileToResponse(saved), nil
}
