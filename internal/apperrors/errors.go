package apperrors

import "errors"

// ErrValidation indicates that request parameters are missing or malformed.
var ErrValidation = errors.New("invalid request")

// ErrNotFound indicates that a requested currency key or factor is absent.
var ErrNotFound = errors.New("not found")

// ErrNoData indicates that the upstream range returned no rows.
var ErrNoData = errors.New("no data available")
