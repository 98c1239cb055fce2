package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	apiErrors "github.com/dtroode/auth-server/internal/api/errors"
	"github.com/dtroode/auth-server/internal/api/http/middleware"
	"github.com/dtroode/auth-server/internal/logger"
	"github.com/dtroode/auth-server/internal/model"
)

// RefreshCookieName is the cookie carrying the refresh token.
const RefreshCookieName = "refreshToken"

const maxBodyBytes = 1 << 20

// AuthService defines the session flows exposed over HTTP.
type AuthService interface {
	Signup(ctx context.Context, params model.SignupParams) (model.SignupResult, error)
	Login(ctx context.Context, email, password string, isFromGoogle bool) (model.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshAccessToken(ctx context.Context, refreshToken string) (model.TokenPair, error)
	SendResetPasswordEmail(ctx context.Context, email, language string) error
	UpdatePassword(ctx context.Context, resetToken, password, language string) error
	ConfirmEmail(ctx context.Context, confirmToken string) error
	GoogleLogin(ctx context.Context, idToken string) (model.TokenPair, error)
}

// CookieConfig controls the refresh token cookie.
type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	errors      *ErrorWriter
	cookie      CookieConfig
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, errors *ErrorWriter, cookie CookieConfig, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		errors:      errors,
		cookie:      cookie,
		logger:      logger,
	}
}

type signupRequest struct {
	Role           string `json:"role"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Language       string `json:"language"`
	NativeLanguage string `json:"nativeLanguage"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type forgotPasswordRequest struct {
	Email    string `json:"email"`
	Language string `json:"language"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
	Language string `json:"language"`
}

type googleAuthRequest struct {
	Token struct {
		Credential string `json:"credential"`
	} `json:"token"`
}

type sessionResponse struct {
	UserID       string    `json:"userId"`
	Role         string    `json:"role"`
	IsFirstLogin bool      `json:"isFirstLogin"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Signup handles POST /auth/signup.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		h.errors.Write(w, r, apiErrors.NewErrBadRequest("email and password are required"))
		return
	}
	if req.Language == "" {
		req.Language = requestLanguage(r)
	}

	result, err := h.authService.Signup(r.Context(), model.SignupParams(req))
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Login handles POST /auth/login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}

	pair, err := h.authService.Login(r.Context(), req.Email, req.Password, false)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	h.writePair(w, pair)
}

// Logout handles POST /auth/logout. A request without a refresh token only
// clears the cookie.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.refreshTokenFrom(r)
	if token == "" {
		http.SetCookie(w, h.refreshCookie("", -1))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	http.SetCookie(w, h.refreshCookie("", -1))
	w.WriteHeader(http.StatusNoContent)
}

// Refresh handles GET and POST /auth/refresh.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	pair, err := h.authService.RefreshAccessToken(r.Context(), h.refreshTokenFrom(r))
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	h.writePair(w, pair)
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *Auth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Language == "" {
		req.Language = requestLanguage(r)
	}

	if err := h.authService.SendResetPasswordEmail(r.Context(), req.Email, req.Language); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ResetPassword handles PATCH /auth/reset-password/{token}.
func (h *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Password == "" {
		h.errors.Write(w, r, apiErrors.NewErrBadRequest("password is required"))
		return
	}
	if req.Language == "" {
		req.Language = requestLanguage(r)
	}

	if err := h.authService.UpdatePassword(r.Context(), r.PathValue("token"), req.Password, req.Language); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ConfirmEmail handles GET /auth/confirm-email/{token}.
func (h *Auth) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.ConfirmEmail(r.Context(), r.PathValue("token")); err != nil {
		h.errors.Write(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GoogleAuth handles POST /auth/google-auth.
func (h *Auth) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	var req googleAuthRequest
	if !h.decode(w, r, &req) {
		return
	}

	pair, err := h.authService.GoogleLogin(r.Context(), req.Token.Credential)
	if err != nil {
		h.errors.Write(w, r, err)
		return
	}

	h.writePair(w, pair)
}

// Session handles GET /auth/session behind the Authenticate middleware.
func (h *Auth) Session(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.errors.Write(w, r, apiErrors.NewErrUnauthorized())
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		UserID:       claims.UserID.String(),
		Role:         claims.Role,
		IsFirstLogin: claims.IsFirstLogin,
		ExpiresAt:    claims.ExpiresAt.UTC(),
	})
}

func (h *Auth) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.errors.Write(w, r, apiErrors.NewErrBadRequest("malformed request body"))
		return false
	}
	return true
}

func (h *Auth) writePair(w http.ResponseWriter, pair model.TokenPair) {
	http.SetCookie(w, h.refreshCookie(pair.RefreshToken, int(h.cookie.MaxAge.Seconds())))
	writeJSON(w, http.StatusOK, pair)
}

func (h *Auth) refreshCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     "/auth",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// refreshTokenFrom prefers the cookie and falls back to a JSON body.
func (h *Auth) refreshTokenFrom(r *http.Request) string {
	if c, err := r.Cookie(RefreshCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}

	var req refreshRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return ""
	}
	return req.RefreshToken
}

// requestLanguage takes the primary subtag of the first Accept-Language entry.
func requestLanguage(r *http.Request) string {
	header := r.Header.Get("Accept-Language")
	if header == "" {
		return ""
	}
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	primary, _, _ := strings.Cut(strings.TrimSpace(first), "-")
	return strings.ToLower(primary)
}
