package vatreturn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/vatreturn"
)

type VATReturnServiceImpl struct {
	vatReturnRepo vatreturn.VATReturnRepository
}

func NewVATReturnService(vatReturnRepo vatreturn.VATReturnRepository) vatreturn.VATReturnService {
	return &VATReturnServiceImpl{
		vatReturnRepo: vatReturnRepo,
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

// Helper function to map a Return entity to ReturnResponse
func mapReturnToResponse(ret vatreturn.Return) vatreturn.ReturnResponse {
	var submittedAtStr *string
	if ret.SubmittedAt != nil {
		s := ret.SubmittedAt.Format(time.RFC3339)
		submittedAtStr = &s
	}

	return vatreturn.ReturnResponse{
		ID:          ret.ID,
		PeriodKey:   ret.PeriodKey,
		PeriodStart: ret.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   ret.PeriodEnd.Format("2006-01-02"),
		Box1Pence:   ret.Box1Pence,
		Box2Pence:   ret.Box2Pence,
		Box3Pence:   ret.Box3Pence,
		Box4Pence:   ret.Box4Pence,
		Box5Pence:   ret.Box5Pence,
		Box6Pounds:  ret.Box6Pounds,
		Box7Pounds:  ret.Box7Pounds,
		Box8Pounds:  ret.Box8Pounds,
		Box9Pounds:  ret.Box9Pounds,
		ReclaimDue:  ret.ReclaimDue(),
		Status:      string(ret.Status),
		SubmittedAt: submittedAtStr,
		CreatedAt:   ret.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   ret.UpdatedAt.Format(time.RFC3339),
	}
}

// ComputeReturn implements vatreturn.VATReturnService.
func (s *VATReturnServiceImpl) ComputeReturn(ctx context.Context, req vatreturn.ComputeReturnRequest) (vatreturn.ReturnResponse, error) {
	if err := req.Validate(); err != nil {
		return vatreturn.ReturnResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return vatreturn.ReturnResponse{}, err
	}

	_, err = s.vatReturnRepo.GetByPeriodKey(ctx, userID, req.PeriodKey)
	if err == nil {
		return vatreturn.ReturnResponse{}, vatreturn.ErrPeriodAlreadyExists
	}
	if !errors.Is(err, vatreturn.ErrReturnNotFound) {
		return vatreturn.ReturnResponse{}, fmt.Errorf("failed to check vat return period: %w", err)
	}

	periodStart, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return vatreturn.ReturnResponse{}, fmt.Errorf("failed to parse period start: %w", err)
	}
	periodEnd, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return vatreturn.ReturnResponse{}, fmt.Errorf("failed to parse period end: %w", err)
	}

	sales, err := s.vatReturnRepo.SumPaidInvoices(ctx, userID, "sales", periodStart, periodEnd)
	if err != nil {
		return vatreturn.ReturnResponse{}, fmt.Errorf("failed to sum sales invoices: %w", err)
	}
	purchases, err := s.vatReturnRepo.SumPaidInvoices(ctx, userID, "purchase", periodStart, periodEnd)
	if err != nil {
		return vatreturn.ReturnResponse{}, fmt.Errorf("failed to sum purchase invoices: %w", err)
	}

	box1 := sales.VATPence
	box2 := int64(0) // EU acquisitions, zero for a domestic-only business
	box3 := box1 + box2
	box4 := purchases.VATPence
	box5 := box3 - box4
	if box5 < 0 {
		box5 = -box5
	}

	created, err := s.vatReturnRepo.Create(ctx, vatreturn.Return{
		UserID:      userID,
		PeriodKey:   req.PeriodKey,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Box1Pence:   box1,
		Box2Pence:   box2,
		Box3Pence:   box3,
		Box4Pence:   box4,
		Box5Pence:   box5,
		// Boxes 6-9 are whole pounds, rounded down per HMRC filing rules.
		Box6Pounds: sales.NetPence / 100,
		Box7Pounds: purchases.NetPence / 100,
		Box8Pounds: 0,
		Box9Pounds: 0,
		Status:     vatreturn.StatusDraft,
	})
	if err != nil {
		if errors.Is(err, vatreturn.ErrPeriodAlreadyExists) {
			return vatreturn.ReturnResponse{}, vatreturn.ErrPeriodAlreadyExists
		}
		return vatreturn.ReturnResponse{}, fmt.Errorf("failed to create vat return: %w", err)
	}

	return mapReturnToResponse(created), nil
}

// GetReturn implements vatreturn.VATReturnService.
func (s *VATReturnServiceImpl) GetReturn(ctx context.Context, id string) (vatreturn.ReturnResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return vatreturn.ReturnResponse{}, err
	}

	ret, err := s.vatReturnRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, vatreturn.ErrReturnNotFound) {
			return vatreturn.ReturnResponse{}, vatreturn.ErrReturnNotFound
		}
		return vatreturn.ReturnResponse{}, fmt.Errorf("failed to get vat return: %w", err)
	}

	return mapReturnToResponse(ret), nil
}

// ListReturns implements vatreturn.VATReturnService.
func (s *VATReturnServiceImpl) ListReturns(ctx context.Context) (vatreturn.ListReturnResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return vatreturn.ListReturnResponse{}, err
	}

	returns, err := s.vatReturnRepo.List(ctx, userID)
	if err != nil {
		return vatreturn.ListReturnResponse{}, fmt.Errorf("failed to list vat returns: %w", err)
	}

	responses := make([]vatreturn.ReturnResponse, 0, len(returns))
	for _, ret := range returns {
		responses = append(responses, mapReturnToResponse(ret))
	}

	return vatreturn.ListReturnResponse{Returns: responses}, nil
}

// SubmitReturn implements vatreturn.VATReturnService.
func (s *VATReturnServiceImpl) SubmitReturn(ctx context.Context, id string) (vatreturn.ReturnResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return vatreturn.ReturnResponse{}, err
	}

	current, err := s.vatReturnRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, vatreturn.ErrReturnNotFound) {
			return vatreturn.ReturnResponse{}, vatreturn.ErrReturnNotFound
		}
		return vatreturn.ReturnResponse{}, fmt.Errorf("failed to get vat return: %w", err)
	}
	if current.Status == vatreturn.StatusSubmitted {
		return vatreturn.ReturnResponse{}, vatreturn.ErrReturnAlreadySubmitted
	}

	submitted, err := s.vatReturnRepo.MarkSubmitted(ctx, userID, id)
	if err != nil {
		if errors.Is(err, vatreturn.ErrReturnNotFound) {
			return vatreturn.ReturnResponse{}, vatreturn.ErrReturnNotFound
		}
		return vatreturn.ReturnResponse{}, fmt.Errorf("failed to submit vat return: %w", err)
	}

	return mapReturnToResponse(submitted), nil
}

// DeleteReturn implements vatreturn.VATReturnService.
func (s *VATReturnServiceImpl) DeleteReturn(ctx context.Context, id string) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return err
	}

	current, err := s.vatReturnRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, vatreturn.ErrReturnNotFound) {
			return vatreturn.ErrReturnNotFound
		}
		return fmt.Errorf("failed to get vat return: %w", err)
	}

	// Submitted returns are locked; recomputing a filed period is not allowed.
	if current.Status == vatreturn.StatusSubmitted {
		return vatreturn.ErrReturnAlreadySubmitted
	}

	err = s.vatReturnRepo.Delete(ctx, userID, id)
	if err != nil {
		if errors.Is(err, vatreturn.ErrReturnNotFound) {
			return vatreturn.ErrReturnNotFound
		}
		return fmt.Errorf("failed to delete vat return: %w", err)
	}

	return nil
}
