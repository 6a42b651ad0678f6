// Package apperrors defines the closed set of failure kinds the HTTP layer
// knows how to translate. Handlers and services carry these through return
// paths instead of matching on error strings.
package apperrors

import "errors"

var (
	// ErrMalformedID reports an identifier that does not match the store's
	// id syntax, as opposed to a well-formed id with no record behind it.
	ErrMalformedID = errors.New("malformatted id")

	// ErrNotFound reports a well-formed id with no matching record.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername reports a registration against a taken username.
	ErrDuplicateUsername = errors.New("Username already exist")

	// ErrInvalidToken reports a bearer token that failed to parse or verify.
	ErrInvalidToken = errors.New("Invalid token.")

	// ErrInvalidCredentials reports a failed login. The message never says
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError is a schema-rule rejection raised before persistence.
// The message is surfaced to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation wraps a human-readable rule violation.
func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// PolicyViolation is a credential-rule rejection (e.g. password too short),
// distinct from schema validation.
type PolicyViolation struct {
	Message string
}

func (e *PolicyViolation) Error() string { return e.Message }

// IsValidation reports whether err is a schema validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPolicyViolation reports whether err is a credential policy failure.
func IsPolicyViolation(err error) bool {
	var pv *PolicyViolation
	return errors.As(err, &pv)
}
