// Package validation holds the per-entity schema rules, expressed as small
// pure functions run in order before anything is persisted. Each returns a
// *apperrors.ValidationError whose message goes to the client unmodified.
package validation

import (
	"fmt"
	"regexp"

	"bloglist/internal/apperrors"
	"bloglist/internal/models"
)

const minUsernameLength = 4

// usernamePattern allows only word characters (letters, digits, underscore).
var usernamePattern = regexp.MustCompile(`^\w+$`)

// ValidateBlog checks the schema rules for a blog entry: title and url are
// required, likes must be non-negative.
func ValidateBlog(b models.Blog) error {
	if b.Title == "" {
		return apperrors.NewValidation("Blog validation failed: title is required")
	}
	if b.URL == "" {
		return apperrors.NewValidation("Blog validation failed: url is required")
	}
	if b.Likes < 0 {
		return apperrors.NewValidation("Blog validation failed: likes must be a non-negative integer")
	}
	return nil
}

// ValidateUsername checks length and character class. The offending username
// is cited in the message so the error response can surface it verbatim.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLength {
		return apperrors.NewValidation(fmt.Sprintf(
			"username '%s' is shorter than the minimum allowed length (%d)",
			username, minUsernameLength,
		))
	}
	if !usernamePattern.MatchString(username) {
		return apperrors.NewValidation(fmt.Sprintf(
			"username '%s' must not contain special characters", username,
		))
	}
	return nil
}
