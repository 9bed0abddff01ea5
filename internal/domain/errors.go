package domain

import "fmt"

type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error: %s", e.Reason)
}

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Reason)
}

type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Reason)
}

var (
	ErrInvalidCredentials      = &AuthError{Reason: "invalid_credentials"}
	ErrAccountDeactivated      = &AuthError{Reason: "account_deactivated"}
	ErrInvalidAdminCredentials = &AuthError{Reason: "invalid_admin_credentials"}
	ErrDuplicateContact        = &ValidationError{Reason: "duplicate_contact"}
	ErrUserNotFound            = &NotFoundError{Reason: "user_not_found"}
)
