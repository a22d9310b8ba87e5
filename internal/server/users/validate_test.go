package users

import (
	"errors"
	"strings"
	"testing"

	"github.com/zarclabs/zarc-auth/internal/common"
)

func validReq() SignUpRequest {
	return SignUpRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "Passw0rd",
	}
}

func TestValidateSignUp_Valid(t *testing.T) {
	t.Parallel()

	if err := validateSignUp(validReq()); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateSignUp_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*SignUpRequest)
		field  string
	}{
		{"empty email", func(r *SignUpRequest) { r.Email = "" }, "email"},
		{"malformed email", func(r *SignUpRequest) { r.Email = "not-an-email" }, "email"},
		{"email with display name", func(r *SignUpRequest) { r.Email = "Alice <alice@example.com>" }, "email"},
		{"username too short", func(r *SignUpRequest) { r.Username = "ab" }, "username"},
		{"username too long", func(r *SignUpRequest) { r.Username = strings.Repeat("a", 51) }, "username"},
		{"username invalid char", func(r *SignUpRequest) { r.Username = "bob!" }, "username"},
		{"username with space", func(r *SignUpRequest) { r.Username = "bo b" }, "username"},
		{"password too short", func(r *SignUpRequest) { r.Password = "Pw1" }, "password"},
		{"password too long", func(r *SignUpRequest) { r.Password = "Pw1" + strings.Repeat("a", 80) }, "password"},
		{"password no uppercase", func(r *SignUpRequest) { r.Password = "password1" }, "password"},
		{"password no lowercase", func(r *SignUpRequest) { r.Password = "PASSWORD1" }, "password"},
		{"password no digit", func(r *SignUpRequest) { r.Password = "Password" }, "password"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validReq()
			tc.mutate(&req)

			err := validateSignUp(req)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !errors.Is(err, common.ErrorValidation) {
				t.Fatalf("expected common.ErrorValidation, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected failing field %q, got %q (%s)", tc.field, ve.Field, ve.Reason)
			}
		})
	}
}

func TestValidateSignUp_UsernameEdgeLengths(t *testing.T) {
	t.Parallel()

	req := validReq()
	req.Username = "abc"
	if err := validateSignUp(req); err != nil {
		t.Fatalf("3-char username must be accepted: %v", err)
	}

	req.Username = strings.Repeat("a", 50)
	if err := validateSignUp(req); err != nil {
		t.Fatalf("50-char username must be accepted: %v", err)
	}
}
