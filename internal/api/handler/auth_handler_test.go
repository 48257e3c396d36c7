package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
	"github.com/shopzone/storefront-gateway/internal/core/ports"
)

const testCookieName = "storefront_session"

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	profileFn  func(ctx context.Context, sessionID string) (*domain.UserProfile, error)
	logoutFn   func(ctx context.Context, sessionID string) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Profile(ctx context.Context, sessionID string) (*domain.UserProfile, error) {
	return s.profileFn(ctx, sessionID)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	service := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
			if in.Role != defaultRole {
				t.Fatalf("expected default role, got %q", in.Role)
			}
			if in.Avatar != defaultAvatar {
				t.Fatalf("expected default avatar, got %q", in.Avatar)
			}
			return &domain.UserProfile{ID: 10, Name: in.Name, Email: in.Email, Role: in.Role}, nil
		},
	}
	h := NewAuthHandler(service, testCookieName, time.Hour)

	c, rec := newJSONContext(t, http.MethodPost, "/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Redirect != "/login" {
		t.Fatalf("expected redirect to /login, got %q", resp.Redirect)
	}
	if resp.User == nil || resp.User.ID != 10 {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, testCookieName, time.Hour)

	c, _ := newJSONContext(t, http.MethodPost, "/register",
		`{"name":"Al","email":"not-an-email","password":"123"}`)
	err := h.Register(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, want := range []string{"name", "email", "password"} {
		if !strings.Contains(ve.Message, want) {
			t.Fatalf("expected %q mentioned in %q", want, ve.Message)
		}
	}
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	service := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{
				SessionID: "sid-42",
				Profile:   &domain.UserProfile{ID: 1, Name: "Alice", Role: domain.RoleAdmin},
			}, nil
		},
	}
	h := NewAuthHandler(service, testCookieName, time.Hour)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookie(t, rec)
	if cookie == nil {
		t.Fatal("expected a session cookie")
	}
	if cookie.Value != "sid-42" {
		t.Fatalf("unexpected cookie value %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}
	if cookie.MaxAge != int(time.Hour.Seconds()) {
		t.Fatalf("unexpected cookie max-age %d", cookie.MaxAge)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Redirect != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", resp.Redirect)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	service := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, &domain.CredentialsError{Message: "Unauthorized"}
		},
	}
	h := NewAuthHandler(service, testCookieName, time.Hour)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong1"}`)
	err := h.Login(c)

	var ce *domain.CredentialsError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CredentialsError, got %v", err)
	}
	if cookie := sessionCookie(t, rec); cookie != nil {
		t.Fatal("no cookie may be set on a failed login")
	}
}

func TestAuthHandler_Logout_ClearsSessionAndExpiresCookie(t *testing.T) {
	var cleared string
	service := &stubAuthService{
		logoutFn: func(ctx context.Context, sessionID string) error {
			cleared = sessionID
			return nil
		},
	}
	h := NewAuthHandler(service, testCookieName, time.Hour)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: testCookieName, Value: "sid-42"})
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if cleared != "sid-42" {
		t.Fatalf("expected session sid-42 cleared, got %q", cleared)
	}

	cookie := sessionCookie(t, rec)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Logout_WithoutSessionStillSucceeds(t *testing.T) {
	service := &stubAuthService{
		logoutFn: func(ctx context.Context, sessionID string) error {
			t.Fatal("logout must not reach the service without a cookie")
			return nil
		},
	}
	h := NewAuthHandler(service, testCookieName, time.Hour)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDashboardHandler_Get(t *testing.T) {
	service := &stubAuthService{
		profileFn: func(ctx context.Context, sessionID string) (*domain.UserProfile, error) {
			return &domain.UserProfile{ID: 1, Name: "Alice", Role: domain.RoleAdmin}, nil
		},
	}
	h := NewDashboardHandler(service)

	c, rec := newJSONContext(t, http.MethodGet, "/dashboard", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	var resp dashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.Name != "Alice" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	if !resp.Capabilities.CanCreate || !resp.Capabilities.CanEdit || !resp.Capabilities.CanDelete {
		t.Fatalf("expected admin capabilities, got %+v", resp.Capabilities)
	}
}

func TestDashboardHandler_Get_RejectedSession(t *testing.T) {
	service := &stubAuthService{
		profileFn: func(ctx context.Context, sessionID string) (*domain.UserProfile, error) {
			return nil, domain.ErrSessionInvalid
		},
	}
	h := NewDashboardHandler(service)

	c, _ := newJSONContext(t, http.MethodGet, "/dashboard", "")
	if err := h.Get(c); !errors.Is(err, domain.ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid, got %v", err)
	}
}
