package util

import "errors"

var (
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so a login attempt cannot probe which field was wrong.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrAccountDeactivated = errors.New("Account is deactivated")

	ErrEmailExists       = errors.New("Email already exists")
	ErrNoFieldsToUpdate  = errors.New("No fields to update")
	ErrInvalidStatus     = errors.New("Status must be pending, accepted, or rejected")
	ErrRatingOutOfRange  = errors.New("Rating must be between 1 and 5")
	ErrNoCandidateCourse = errors.New("no candidate courses available")
)
