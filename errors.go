package bloglist

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// ErrInvalidCredentials is returned for both unknown users and wrong
// passwords; callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid username or password", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("INVALID_CREDENTIALS")

// ErrTokenMalformed covers garbage tokens, bad signatures, and tokens
// that reference no stored user.
var ErrTokenMalformed = errors.New("invalid or malformed token", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("TOKEN_MALFORMED")

// ErrTokenExpired means the signature verified but the token is past expiry.
var ErrTokenExpired = errors.New("authentication token expired", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("TOKEN_EXPIRED")

// ErrAuthenticationRequired is raised when a protected operation runs
// with no identity resolved.
var ErrAuthenticationRequired = errors.New("authentication required", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("AUTHENTICATION_REQUIRED")

// ErrNotOwner is raised when the authenticated identity does not match
// the recorded owner of the resource.
var ErrNotOwner = errors.New("blog does not belong to user", errors.CategoryAuthz).
	WithCode(errors.CodeForbidden).
	WithTextCode("NOT_OWNER")

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound)

// ErrUsernameTaken surfaces the uniqueness violation verbatim to callers.
var ErrUsernameTaken = errors.New("expected `username` to be unique", errors.CategoryConflict).
	WithCode(errors.CodeConflict).
	WithTextCode("USERNAME_TAKEN")

// ErrNoEmptyString rejects empty passwords before hashing
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryBadInput).
	WithCode(errors.CodeBadRequest)

// NewPasswordTooWeak wraps the policy checker's message as a typed
// validation failure; the message is surfaced verbatim.
func NewPasswordTooWeak(message string) *errors.Error {
	return errors.New(message, errors.CategoryValidation).
		WithCode(errors.CodeBadRequest).
		WithTextCode("PASSWORD_TOO_WEAK")
}

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenExpired) {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for unverifiable or garbled tokens
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenMalformed) {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed")
}
