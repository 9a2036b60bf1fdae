package business

import "context"

type BusinessRepository interface {
	GetByUserID(ctx context.Context, userID string) (Profile, error)
	Upsert(ctx context.Context, profile Profile) (Profile, error)
}
