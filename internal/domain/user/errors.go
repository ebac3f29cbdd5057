package user

import (
	"sitios/internal/shared/errors"
)

// ErrUserExists is returned when registering with an email that is taken.
func ErrUserExists() *errors.AppError {
	return errors.NewConflictError("User already exists")
}

// ErrUserNotFound is returned when a referenced user is absent.
func ErrUserNotFound() *errors.AppError {
	return errors.NewNotFoundError("User not found")
}

// ErrTwoFactorAlreadyEnabled is returned when setup is started for a user
// whose two-factor flag is already set.
func ErrTwoFactorAlreadyEnabled() *errors.AppError {
	return errors.NewConflictError("Two-factor authentication is already enabled")
}

// ErrTwoFactorNotConfigured is returned when confirmation or verification is
// attempted without a staged secret.
func ErrTwoFactorNotConfigured() *errors.AppError {
	return errors.NewBadRequestError("Two-factor authentication is not set up")
}

// ErrInvalidTwoFactorCode is returned when a submitted code fails
// verification during setup confirmation.
func ErrInvalidTwoFactorCode() *errors.AppError {
	return errors.NewBadRequestError("Invalid verification code")
}

// ErrSessionNotFound is returned when a referenced session is absent.
func ErrSessionNotFound() *errors.AppError {
	return errors.NewNotFoundError("Session not found")
}

// ErrSessionNotOwned is returned when a caller targets a session that belongs
// to another user.
func ErrSessionNotOwned() *errors.AppError {
	return errors.NewForbiddenError("Session does not belong to the caller")
}
