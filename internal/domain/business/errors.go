package business

import "errors"

var (
	ErrProfileNotFound = errors.New("business profile not found")
)
