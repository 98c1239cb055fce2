package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/auth-server/internal/api/errors"
	"github.com/dtroode/auth-server/internal/mocks"
	"github.com/dtroode/auth-server/internal/model"
	"github.com/dtroode/auth-server/internal/testutil"
)

func newTestAuth(t *testing.T) (*Auth, *mocks.AuthService) {
	t.Helper()
	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()
	return NewAuth(svc, NewErrorWriter(lg), CookieConfig{MaxAge: 30 * 24 * time.Hour}, lg), svc
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func refreshCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == RefreshCookieName {
			return c
		}
	}
	return nil
}

func TestAuth_Signup(t *testing.T) {
	h, svc := newTestAuth(t)
	uid := uuid.New()
	svc.On("Signup", mock.Anything, model.SignupParams{
		Role:      "student",
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "a@x.com",
		Password:  "p",
		Language:  "ua",
	}).Return(model.SignupResult{UserID: uid, UserEmail: "a@x.com"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(
		`{"role":"student","firstName":"Ann","lastName":"Lee","email":"a@x.com","password":"p"}`))
	req.Header.Set("Accept-Language", "ua-UA,en;q=0.8")
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"userId":"`+uid.String()+`","userEmail":"a@x.com"}`, rec.Body.String())
}

func TestAuth_Signup_Errors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		h, _ := newTestAuth(t)
		rec := httptest.NewRecorder()
		h.Signup(rec, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.CodeBadRequest, decodeError(t, rec).Code)
	})

	t.Run("email taken", func(t *testing.T) {
		h, svc := newTestAuth(t)
		svc.On("Signup", mock.Anything, mock.Anything).Return(model.SignupResult{}, apiErrors.NewErrAlreadyExists("email"))

		rec := httptest.NewRecorder()
		h.Signup(rec, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{"email":"a@x.com","password":"p"}`)))

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, http.StatusConflict, body.Status)
		assert.Equal(t, apiErrors.CodeAlreadyExists, body.Code)
	})
}

func TestAuth_Login(t *testing.T) {
	tests := []struct {
		name       string
		pair       model.TokenPair
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success sets cookie",
			pair:       model.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			err:        apiErrors.NewErrIncorrectCredentials(),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.CodeIncorrectCredentials,
		},
		{
			name:       "email not confirmed",
			err:        apiErrors.NewErrEmailNotConfirmed(),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.CodeEmailNotConfirmed,
		},
		{
			name:       "store failure hidden",
			err:        errors.New("failed to get user: dial tcp: refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.CodeInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTestAuth(t)
			svc.On("Login", mock.Anything, "a@x.com", "p", false).Return(tt.pair, tt.err)

			rec := httptest.NewRecorder()
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@x.com","password":"p"}`)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err != nil {
				body := decodeError(t, rec)
				assert.Equal(t, tt.wantCode, body.Code)
				assert.NotContains(t, body.Message, "refused")
				assert.Nil(t, refreshCookie(rec))
				return
			}

			assert.JSONEq(t, `{"accessToken":"acc","refreshToken":"ref"}`, rec.Body.String())
			c := refreshCookie(rec)
			require.NotNil(t, c)
			assert.Equal(t, "ref", c.Value)
			assert.True(t, c.HttpOnly)
			assert.Equal(t, int((30 * 24 * time.Hour).Seconds()), c.MaxAge)
		})
	}
}

func TestAuth_Refresh(t *testing.T) {
	t.Run("from cookie", func(t *testing.T) {
		h, svc := newTestAuth(t)
		svc.On("RefreshAccessToken", mock.Anything, "cookie-ref").Return(model.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "cookie-ref"})
		rec := httptest.NewRecorder()
		h.Refresh(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "r2", refreshCookie(rec).Value)
	})

	t.Run("from body", func(t *testing.T) {
		h, svc := newTestAuth(t)
		svc.On("RefreshAccessToken", mock.Anything, "body-ref").Return(model.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

		rec := httptest.NewRecorder()
		h.Refresh(rec, httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refreshToken":"body-ref"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("revoked", func(t *testing.T) {
		h, svc := newTestAuth(t)
		svc.On("RefreshAccessToken", mock.Anything, "").Return(model.TokenPair{}, apiErrors.NewErrBadRefreshToken())

		rec := httptest.NewRecorder()
		h.Refresh(rec, httptest.NewRequest(http.MethodGet, "/auth/refresh", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.CodeBadRefreshToken, decodeError(t, rec).Code)
	})
}

func TestAuth_Logout(t *testing.T) {
	h, svc := newTestAuth(t)
	svc.On("Logout", mock.Anything, "ref").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "ref"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	c := refreshCookie(rec)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)

}

func TestAuth_Logout_WithoutToken(t *testing.T) {
	h, svc := newTestAuth(t)

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	c := refreshCookie(rec)
	require.NotNil(t, c)
	assert.Negative(t, c.MaxAge)
	svc.AssertNumberOfCalls(t, "Logout", 0)
}

func TestAuth_ForgotAndResetPassword(t *testing.T) {
	h, svc := newTestAuth(t)
	svc.On("SendResetPasswordEmail", mock.Anything, "a@x.com", "en").Return(nil)
	svc.On("SendResetPasswordEmail", mock.Anything, "nobody@x.com", "").Return(apiErrors.NewErrUserNotFound(http.StatusNotFound))
	svc.On("UpdatePassword", mock.Anything, "rt", "new", "").Return(nil).Once()
	svc.On("UpdatePassword", mock.Anything, "rt", "new", "").Return(apiErrors.NewErrBadResetToken()).Once()

	rec := httptest.NewRecorder()
	h.ForgotPassword(rec, httptest.NewRequest(http.MethodPost, "/auth/forgot-password", strings.NewReader(`{"email":"a@x.com","language":"en"}`)))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ForgotPassword(rec, httptest.NewRequest(http.MethodPost, "/auth/forgot-password", strings.NewReader(`{"email":"nobody@x.com"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.CodeUserNotFound, decodeError(t, rec).Code)

	reset := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/auth/reset-password/rt", strings.NewReader(`{"password":"new"}`))
		req.SetPathValue("token", "rt")
		rec := httptest.NewRecorder()
		h.ResetPassword(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, reset().Code)
	rec = reset()
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.CodeBadResetToken, decodeError(t, rec).Code)
}

func TestAuth_ConfirmEmail(t *testing.T) {
	h, svc := newTestAuth(t)
	svc.On("ConfirmEmail", mock.Anything, "ct").Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/confirm-email/ct", nil)
	req.SetPathValue("token", "ct")
	rec := httptest.NewRecorder()
	h.ConfirmEmail(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuth_GoogleAuth(t *testing.T) {
	h, svc := newTestAuth(t)
	svc.On("GoogleLogin", mock.Anything, "ticket").Return(model.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)
	svc.On("GoogleLogin", mock.Anything, "forged").Return(model.TokenPair{}, apiErrors.NewErrBadIDToken(errors.New("bad signature")))

	rec := httptest.NewRecorder()
	h.GoogleAuth(rec, httptest.NewRequest(http.MethodPost, "/auth/google-auth", strings.NewReader(`{"token":{"credential":"ticket"}}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.GoogleAuth(rec, httptest.NewRequest(http.MethodPost, "/auth/google-auth", strings.NewReader(`{"token":{"credential":"forged"}}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, apiErrors.CodeBadIDToken, body.Code)
	assert.NotContains(t, body.Message, "signature")
}

func TestAuth_Session_WithoutClaims(t *testing.T) {
	h, _ := newTestAuth(t)
	rec := httptest.NewRecorder()
	h.Session(rec, httptest.NewRequest(http.MethodGet, "/auth/session", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"en", "en"},
		{"UA-ua,en;q=0.5", "ua"},
		{"de;q=0.9", "de"},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			r.Header.Set("Accept-Language", tt.header)
		}
		assert.Equal(t, tt.want, requestLanguage(r), tt.header)
	}
}
