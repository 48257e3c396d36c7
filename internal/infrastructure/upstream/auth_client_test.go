package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
	"github.com/shopzone/storefront-gateway/internal/core/ports"
)

const testSigningKey = "upstream-test-secret"

// mintToken produces an access token shaped like the upstream API's, so the
// fake servers hand out something realistic.
func mintToken(t *testing.T, userID int) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func newAuthClient(t *testing.T, srv *httptest.Server) *AuthClient {
	t.Helper()
	return NewAuthClient(NewClient(srv.URL, 5*time.Second, zerolog.Nop()))
}

func testRegisterInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Dup",
		Email:    "dup@x.com",
		Password: "secret1",
		Role:     "customer",
		Avatar:   "https://picsum.photos/200",
	}
}

func TestAuthClient_Login_Success(t *testing.T) {
	access := ""
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decode credentials: %v", err)
		}
		if creds.Email != "alice@example.com" || creds.Password != "secret" {
			t.Fatalf("unexpected credentials: %+v", creds)
		}
		access = mintToken(t, 1)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token":  access,
			"refresh_token": mintToken(t, 1),
		})
	}))
	defer srv.Close()

	pair, err := newAuthClient(t, srv).Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.AccessToken != access {
		t.Fatalf("expected issued access token, got %q", pair.AccessToken)
	}
	if pair.RefreshToken == "" {
		t.Fatal("expected refresh token to be decoded even though it is unused")
	}
}

func TestAuthClient_Login_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
	}))
	defer srv.Close()

	_, err := newAuthClient(t, srv).Login(context.Background(), "alice@example.com", "wrong")

	var ce *domain.CredentialsError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CredentialsError, got %v", err)
	}
	if ce.Message != "Unauthorized" {
		t.Fatalf("expected upstream message verbatim, got %q", ce.Message)
	}
}

func TestAuthClient_Profile_SendsBearerToken(t *testing.T) {
	token := mintToken(t, 7)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "name": "Alice", "role": "admin",
			"email": "alice@example.com", "avatar": "https://example.com/a.png",
		})
	}))
	defer srv.Close()

	profile, err := newAuthClient(t, srv).Profile(context.Background(), token)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.ID != 7 || profile.Role != "admin" || profile.Name != "Alice" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestAuthClient_Profile_RejectedTokenIsSessionInvalid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
	}))
	defer srv.Close()

	_, err := newAuthClient(t, srv).Profile(context.Background(), "stale-token")
	if !errors.Is(err, domain.ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid, got %v", err)
	}
}

func TestAuthClient_Register_DuplicateEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users/" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": []string{"email must be unique"}})
	}))
	defer srv.Close()

	_, err := newAuthClient(t, srv).Register(context.Background(), testRegisterInput())

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != "email must be unique" {
		t.Fatalf("expected upstream message, got %q", ve.Message)
	}
}

func TestAuthClient_Register_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload["role"] != "customer" {
			t.Fatalf("expected customer role, got %v", payload["role"])
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 42, "name": payload["name"], "role": payload["role"],
			"email": payload["email"], "avatar": payload["avatar"],
		})
	}))
	defer srv.Close()

	user, err := newAuthClient(t, srv).Register(context.Background(), testRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID != 42 || user.Email != "dup@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}
