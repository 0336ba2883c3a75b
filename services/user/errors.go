package user

import "errors"

var (
	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken rejects duplicate registrations.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrNotFound mirrors the repository's miss for service callers.
	ErrNotFound = errors.New("user not found")
)
