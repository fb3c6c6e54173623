// Package errors provides structured domain errors with machine-readable codes.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Task errors
	CodeTaskTitleEmpty Code = "TASK_TITLE_EMPTY"

	// Note errors
	// (note creation never rejects; blank titles are defaulted)

	// User errors
	CodeUserEmailEmpty       Code = "USER_EMAIL_EMPTY"
	CodeUserEmailInvalid     Code = "USER_EMAIL_INVALID"
	CodeUserEmailTaken       Code = "USER_EMAIL_TAKEN"
	CodeUserPasswordTooShort Code = "USER_PASSWORD_TOO_SHORT"
	CodeUserPasswordMismatch Code = "USER_PASSWORD_MISMATCH"

	// Auth errors
	CodeAuthBadCredentials Code = "AUTH_BAD_CREDENTIALS"
	CodeAuthSessionInvalid Code = "AUTH_SESSION_INVALID"
	CodeAuthSessionExpired Code = "AUTH_SESSION_EXPIRED"

	// Ownership errors
	//
	// CodeOwnershipDenied deliberately covers both "record is absent" and
	// "record belongs to another user" so responses never reveal whether an
	// identifier exists. Services record which case occurred on the request
	// span instead.
	CodeOwnershipDenied Code = "OWNERSHIP_DENIED"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures, bad input
	case CodeTaskTitleEmpty,
		CodeUserEmailEmpty,
		CodeUserEmailInvalid,
		CodeUserPasswordTooShort,
		CodeUserPasswordMismatch:
		return http.StatusBadRequest

	// Unauthorized - missing or bad credentials
	case CodeAuthBadCredentials,
		CodeAuthSessionInvalid,
		CodeAuthSessionExpired:
		return http.StatusUnauthorized

	// Forbidden - the merged ownership denial
	case CodeOwnershipDenied:
		return http.StatusForbidden

	// Conflict - uniqueness violations
	case CodeUserEmailTaken:
		return http.StatusConflict

	// Not found - resource doesn't exist
	case CodeNotFound:
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
