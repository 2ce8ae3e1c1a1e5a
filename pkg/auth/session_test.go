package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/pkg/user"
	"github.com/chainsafe/prediction-miniapp/pkg/userstore"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeUsers struct {
	users map[uuid.UUID]*user.User
	err   error
	calls int
}

func (f *fakeUsers) GetUserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, userstore.ErrUserNotFound
	}
	return u, nil
}

func newTestSessions(t *testing.T, users ...*user.User) (*Sessions, *fakeUsers) {
	t.Helper()
	issuer, err := NewTokenIssuer(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() failed: %v", err)
	}
	store := &fakeUsers{users: map[uuid.UUID]*user.User{}}
	for _, u := range users {
		store.users[u.ID] = u
	}
	return NewSessions(issuer, store, "session", true), store
}

func TestValidateSession(t *testing.T) {
	alice := user.New("0x1111111111111111111111111111111111111111")
	s, store := newTestSessions(t, alice)

	token, exp, err := s.Issue(alice, time.Now())
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expected future expiry, got %v", exp)
	}

	// Live row wins over cached claims.
	alice.IsProfileComplete = true
	got, err := s.ValidateSession(context.Background(), token)
	if err != nil {
		t.Fatalf("ValidateSession() failed: %v", err)
	}
	if got.ID != alice.ID || !got.IsProfileComplete {
		t.Fatalf("expected live user row, got %+v", got)
	}
	if store.calls != 1 {
		t.Fatalf("expected one store lookup, got %d", store.calls)
	}
}

func TestValidateSession_Errors(t *testing.T) {
	alice := user.New("0x1111111111111111111111111111111111111111")
	s, store := newTestSessions(t, alice)
	ctx := context.Background()

	if _, err := s.ValidateSession(ctx, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := s.ValidateSession(ctx, "not-a-jwt"); !errors.Is(err, ErrMalformedSession) {
		t.Fatalf("expected ErrMalformedSession, got %v", err)
	}

	expired, _, err := s.Issue(alice, time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}
	if _, err := s.ValidateSession(ctx, expired); !errors.Is(err, ErrMalformedSession) {
		t.Fatalf("expected expired token to be malformed, got %v", err)
	}

	other, err := NewTokenIssuer(strings.Repeat("x", 32), time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() failed: %v", err)
	}
	forged, _, err := other.Issue(alice, time.Now())
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}
	if _, err := s.ValidateSession(ctx, forged); !errors.Is(err, ErrMalformedSession) {
		t.Fatalf("expected foreign signature to be malformed, got %v", err)
	}

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(s.tokens.key)
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	if _, err := s.ValidateSession(ctx, badSubject); !errors.Is(err, ErrMalformedSession) {
		t.Fatalf("expected non-uuid subject to be malformed, got %v", err)
	}

	ghost := user.New("0x2222222222222222222222222222222222222222")
	ghostToken, _, err := s.Issue(ghost, time.Now())
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}
	if _, err := s.ValidateSession(ctx, ghostToken); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}

	store.err = errors.New("db down")
	valid, _, _ := s.Issue(alice, time.Now())
	_, err = s.ValidateSession(ctx, valid)
	if err == nil || errors.Is(err, ErrInvalidSession) || errors.Is(err, ErrMalformedSession) {
		t.Fatalf("expected a plain store error, got %v", err)
	}
}

func TestNewTokenIssuer_DerivesDistinctKey(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() failed: %v", err)
	}
	if string(issuer.key) == testSecret || len(issuer.key) != signingKeySize {
		t.Fatal("expected a derived signing key")
	}
	if _, err := NewTokenIssuer("", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestRequireSession(t *testing.T) {
	alice := user.New("0x1111111111111111111111111111111111111111")
	s, _ := newTestSessions(t, alice)
	ghost := user.New("0x2222222222222222222222222222222222222222")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := CurrentUser(r)
		if err != nil {
			t.Errorf("expected user in context, got %v", err)
			return
		}
		_, _ = w.Write([]byte(u.WalletAddress))
	})
	protected := RequireSession(s, zap.NewNop())(handler)
	lookup := RequireSessionUser(s, zap.NewNop())(handler)

	aliceToken, _, _ := s.Issue(alice, time.Now())
	ghostToken, _, _ := s.Issue(ghost, time.Now())

	tests := []struct {
		name       string
		handler    http.Handler
		cookie     string
		wantStatus int
		wantMsg    string
	}{
		{"no cookie", protected, "", http.StatusUnauthorized, "not authenticated"},
		{"garbage", protected, "abc.def.ghi", http.StatusUnauthorized, "invalid session"},
		{"deleted user", protected, ghostToken, http.StatusUnauthorized, "invalid session"},
		{"valid", protected, aliceToken, http.StatusOK, ""},
		{"lookup no cookie", lookup, "", http.StatusUnauthorized, "not authenticated"},
		{"lookup garbage", lookup, "abc.def.ghi", http.StatusUnauthorized, "invalid session"},
		{"lookup deleted user", lookup, ghostToken, http.StatusNotFound, "user not found"},
		{"lookup valid", lookup, aliceToken, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			tt.handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantMsg == "" {
				if rec.Body.String() != alice.WalletAddress {
					t.Fatalf("unexpected body %q", rec.Body.String())
				}
				return
			}
			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
				Code    int    `json:"code"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Success || body.Message != tt.wantMsg || body.Code != tt.wantStatus {
				t.Fatalf("unexpected envelope %+v", body)
			}
		})
	}
}

func TestSessionCookies(t *testing.T) {
	s, _ := newTestSessions(t)

	rec := httptest.NewRecorder()
	s.SetCookie(rec, "tok", time.Now().Add(time.Hour))
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "tok" || !cookies[0].HttpOnly || !cookies[0].Secure {
		t.Fatalf("unexpected session cookie %+v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	if got := s.TokenFromRequest(req); got != "tok" {
		t.Fatalf("expected token from cookie, got %q", got)
	}

	rec = httptest.NewRecorder()
	s.ClearCookie(rec)
	cleared := rec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cleared)
	}
}
