package utils

import "errors"

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrCareTeamNotFound   = errors.New("care team not found")
	ErrValidation         = errors.New("validation failed")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrUnknownVitalType   = errors.New("unknown vital type")
	ErrUnitNotAllowed     = errors.New("unit not allowed for vital type")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
