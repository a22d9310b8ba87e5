// Package users contains the account registrar: signup and signin
// orchestration on top of the credential hasher, token issuer, and the
// account repository.
package users

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/zarclabs/zarc-auth/internal/common"
	"github.com/zarclabs/zarc-auth/internal/logging"
	"github.com/zarclabs/zarc-auth/internal/server/auth"
	"github.com/zarclabs/zarc-auth/internal/server/config"
	"github.com/zarclabs/zarc-auth/internal/server/password"
)

// SignUpRequest carries the fields a client submits at registration.
type SignUpRequest struct {
	Email     string
	Username  string
	Password  string
	FirstName *string
	LastName  *string
	Company   *string
	Industry  *string
}

// AuthResult is what both signup and signin hand back on success: a signed
// access token plus the account it asserts.
type AuthResult struct {
	AccessToken string
	Account     *Account
}

// Service provides the authentication-related operations:
//   - SignUp: validate, hash, persist, issue a token
//   - SignIn: verify credentials and issue a token
//   - Identify: resolve a presented token back to its account
type Service struct {
	repo                        Repository
	logger                      logging.Logger
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewService constructs a Service from the repository and server config.
func NewService(repo Repository, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		logger:                      logger.With("module", "users"),
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// SignUp registers a new account.
//
// Validation and the duplicate pre-checks all run before anything is
// persisted. The pre-checks only exist for friendlier errors: the unique
// indexes in storage remain the authoritative guard, and Create reports
// races as the same duplicate sentinels.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*AuthResult, error) {

	if err := validateSignUp(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, common.ErrorEmailExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "email lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, common.ErrorUsernameExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "username lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	hash, err := password.Hash(req.Password, s.bcryptCost)
	if err != nil {
		// Validation guarantees a non-empty password, so any failure here
		// is an internal precondition break, not client input.
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	account := &Account{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Company:      req.Company,
		Industry:     req.Industry,
	}

	account, err = s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorEmailExists) || errors.Is(err, common.ErrorUsernameExists) {
			return nil, err
		}
		s.logger.Error(ctx, "account insert failed", "error", err)
		return nil, common.ErrorInternal
	}

	token, err := s.issueToken(account)
	if err != nil {
		// The account row already exists; the client can sign in even if
		// this request fails. Do not roll back.
		s.logger.Error(ctx, "token issuance failed after signup", "error", err, "account_id", account.ID)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "account registered", "account_id", account.ID, "username", account.Username)

	return &AuthResult{AccessToken: token, Account: account}, nil
}

// SignIn verifies the submitted credentials and issues a token.
//
// login may be an email or a username. Unknown identifiers and wrong
// passwords both map to common.ErrorInvalidCredentials so responses do not
// leak which accounts exist.
func (s *Service) SignIn(ctx context.Context, login string, pw string) (*AuthResult, error) {

	account, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		s.logger.Error(ctx, "login lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if !password.Verify(pw, account.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := s.issueToken(account)
	if err != nil {
		s.logger.Error(ctx, "token issuance failed", "error", err, "account_id", account.ID)
		return nil, common.ErrorInternal
	}

	return &AuthResult{AccessToken: token, Account: account}, nil
}

// Identify verifies an access token and resolves it to the account it was
// issued for. Expired tokens yield common.ErrTokenExpired, any other defect
// common.ErrInvalidToken.
func (s *Service) Identify(ctx context.Context, tokenString string) (*Account, error) {

	claims, err := auth.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		s.logger.Error(ctx, "account lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	return account, nil
}

func (s *Service) issueToken(account *Account) (string, error) {
	subject := strconv.FormatInt(account.ID, 10)
	return auth.GenerateToken(subject, account.Email, s.jwtSecret, s.accessTokenValidityDuration)
}
