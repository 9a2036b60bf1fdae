package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrNINumberExists     = errors.New("national insurance number already registered")
	ErrEmployeeTerminated = errors.New("employee is terminated")
)
