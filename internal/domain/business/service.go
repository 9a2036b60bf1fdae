package business

import (
	"context"
)

// BusinessService defines business-profile operations. The owning user is
// resolved from the JWT claims in the context.
type BusinessService interface {
	GetProfile(ctx context.Context) (ProfileResponse, error)
	UpsertProfile(ctx context.Context, req UpsertProfileRequest) (ProfileResponse, error)
}
