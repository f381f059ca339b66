package services

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidStatus is returned when a status value is outside the
	// pending/confirmed/cancelled/completed set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingFields is returned when a submission lacks required fields.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidFormType is returned for an unknown home enquiry form type.
	ErrInvalidFormType = errors.New("invalid form type")
)
