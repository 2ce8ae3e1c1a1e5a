package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/prediction-miniapp/internal/metrics"
	"github.com/chainsafe/prediction-miniapp/pkg/user"
	"github.com/chainsafe/prediction-miniapp/pkg/userstore"
)

var (
	// ErrUnauthenticated is returned when no session token was presented.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrMalformedSession is returned for tokens that fail signature, expiry or subject checks.
	ErrMalformedSession = errors.New("malformed session")
	// ErrInvalidSession is returned when the session subject no longer resolves to a user.
	ErrInvalidSession = errors.New("invalid session")
)

// UserReader is the store lookup session validation needs.
type UserReader interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// Sessions issues session cookies and resolves them to live users.
type Sessions struct {
	tokens     *TokenIssuer
	users      UserReader
	cookieName string
	secure     bool
}

// NewSessions creates a session manager.
func NewSessions(tokens *TokenIssuer, users UserReader, cookieName string, secure bool) *Sessions {
	return &Sessions{tokens: tokens, users: users, cookieName: cookieName, secure: secure}
}

// Issue signs a token for u.
func (s *Sessions) Issue(u *user.User, now time.Time) (string, time.Time, error) {
	return s.tokens.Issue(u, now)
}

// ValidateSession resolves a token to the current user row. It performs one
// store lookup and never mutates state.
func (s *Sessions) ValidateSession(ctx context.Context, token string) (*user.User, error) {
	u, err := s.validate(ctx, token)
	metrics.SessionValidations.WithLabelValues(sessionResult(err)).Inc()
	return u, err
}

func (s *Sessions) validate(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSession, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", ErrMalformedSession)
	}

	u, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	return u, nil
}

func sessionResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrMalformedSession):
		return "malformed"
	case errors.Is(err, ErrInvalidSession):
		return "invalid"
	default:
		return "error"
	}
}

// TokenFromRequest returns the session cookie value, or "" when absent.
func (s *Sessions) TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(s.cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetCookie writes the session cookie.
func (s *Sessions) SetCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
