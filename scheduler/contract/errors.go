package contract

import "errors"

var (
	ErrUpstream   = errors.New("upstream request failed")
	ErrDecode     = errors.New("upstream payload malformed")
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("slot already booked")
)
