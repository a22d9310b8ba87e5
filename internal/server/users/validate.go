package users

import (
	"fmt"
	"net/mail"
	"regexp"

	"github.com/zarclabs/zarc-auth/internal/common"
	"github.com/zarclabs/zarc-auth/internal/server/password"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
	passwordMinLen = 8
	passwordMaxLen = password.MaxPasswordBytes
)

var (
	usernameRe     = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	hasUppercaseRe = regexp.MustCompile(`[A-Z]`)
	hasLowercaseRe = regexp.MustCompile(`[a-z]`)
	hasDigitRe     = regexp.MustCompile(`[0-9]`)
)

// ValidationError reports which signup field failed which rule.
// It matches common.ErrorValidation under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return common.ErrorValidation }

// validateSignUp enforces the registration preconditions: well-formed email,
// username charset and length, and password composition. All checks run
// before anything touches storage.
func validateSignUp(req SignUpRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if err := validateUsername(req.Username); err != nil {
		return err
	}
	return validatePassword(req.Password)
}

func validateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Reason: "email is required"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Field: "email", Reason: "invalid email address"}
	}
	return nil
}

func validateUsername(username string) error {
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return &ValidationError{
			Field:  "username",
			Reason: fmt.Sprintf("username must be between %d and %d characters", usernameMinLen, usernameMaxLen),
		}
	}
	if !usernameRe.MatchString(username) {
		return &ValidationError{
			Field:  "username",
			Reason: "username can only contain letters, numbers, underscores, and hyphens",
		}
	}
	return nil
}

func validatePassword(pw string) error {
	if len(pw) < passwordMinLen || len(pw) > passwordMaxLen {
		return &ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("password must be between %d and %d characters", passwordMinLen, passwordMaxLen),
		}
	}
	if !hasUppercaseRe.MatchString(pw) {
		return &ValidationError{Field: "password", Reason: "password must contain at least one uppercase letter"}
	}
	if !hasLowercaseRe.MatchString(pw) {
		return &ValidationError{Field: "password", Reason: "password must contain at least one lowercase letter"}
	}
	if !hasDigitRe.MatchString(pw) {
		return &ValidationError{Field: "password", Reason: "password must contain at least one digit"}
	}
	return nil
}
