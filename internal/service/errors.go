package service

import "errors"

var (
	ErrEmptyQuery         = errors.New("service: query cannot be empty")
	ErrInvalidField       = errors.New("service: invalid search field")
	ErrInvalidCoordinates = errors.New("service: invalid coordinates")
	ErrInvalidCount       = errors.New("service: result count must not be negative")
	ErrNoFix              = errors.New("service: no valid GPS fix")
)
