// Package httpapi exposes the account registrar over HTTP:
//
//	POST /api/auth/signup
//	POST /api/auth/signin
//	GET  /api/auth/me
//	GET  /api/health
//
// Request and response bodies are JSON; errors use the {"detail": "..."}
// envelope. Status codes are decided here and nowhere deeper.
package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/zarclabs/zarc-auth/internal/common"
	"github.com/zarclabs/zarc-auth/internal/logging"
	"github.com/zarclabs/zarc-auth/internal/server/users"
)

// maxBodyBytes caps request bodies; auth payloads are tiny.
const maxBodyBytes = 1 << 20

type Handler struct {
	logger logging.Logger
	users  *users.Service
}

func NewHandler(l logging.Logger, us *users.Service) *Handler {
	return &Handler{
		logger: l.With("module", "httpapi"),
		users:  us,
	}
}

// Register wires the auth routes onto the provided mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/signup", h.handleSignUp)
	mux.HandleFunc("POST /api/auth/signin", h.handleSignIn)
	mux.HandleFunc("GET /api/auth/me", h.handleMe)
	mux.HandleFunc("GET /api/health", h.handleHealth)
}

// ---- request/response shapes ----

type signUpRequest struct {
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Company   *string `json:"company,omitempty"`
	Industry  *string `json:"industry,omitempty"`
}

type signInRequest struct {
	EmailOrUsername string `json:"email_or_username"`
	Password        string `json:"password"`
}

type userPayload struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Company   *string   `json:"company,omitempty"`
	Industry  *string   `json:"industry,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        userPayload `json:"user"`
}

// publicUser shapes an account for responses. The password hash never
// leaves the server.
func publicUser(a *users.Account) userPayload {
	return userPayload{
		ID:        a.ID,
		Email:     a.Email,
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Company:   a.Company,
		Industry:  a.Industry,
		CreatedAt: a.CreatedAt,
	}
}

// ---- handlers ----

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {

	var req signUpRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.users.SignUp(r.Context(), users.SignUpRequest{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Industry:  req.Industry,
	})
	if err != nil {
		h.writeSignUpError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		User:        publicUser(result.Account),
	})
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {

	var req signInRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.users.SignIn(r.Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error(r.Context(), "signin failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		User:        publicUser(result.Account),
	})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {

	token, ok := bearerToken(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}

	account, err := h.users.Identify(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrTokenExpired):
			writeDetail(w, http.StatusUnauthorized, "Token expired")
		case errors.Is(err, common.ErrInvalidToken):
			writeDetail(w, http.StatusUnauthorized, "Invalid token")
		default:
			h.logger.Error(r.Context(), "identify failed", "error", err)
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, publicUser(account))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- helpers ----

func (h *Handler) writeSignUpError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *users.ValidationError

	switch {
	case errors.As(err, &ve):
		writeDetail(w, http.StatusBadRequest, ve.Reason)
	case errors.Is(err, common.ErrorEmailExists):
		writeDetail(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, common.ErrorUsernameExists):
		writeDetail(w, http.StatusBadRequest, "Username already taken")
	default:
		h.logger.Error(r.Context(), "signup failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
