package auth

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/prediction-miniapp/pkg/app/errors"
	apphttp "github.com/chainsafe/prediction-miniapp/pkg/app/http"
	"github.com/chainsafe/prediction-miniapp/pkg/user"
)

// RequireSession rejects requests without a valid session and stores the
// session user in the request context. A session whose user no longer exists
// is treated as unauthenticated.
func RequireSession(sessions *Sessions, logger *zap.Logger) func(http.Handler) http.Handler {
	return requireSession(sessions, logger, SessionError)
}

// RequireSessionUser is RequireSession for user lookups: a session whose user
// no longer exists is answered with 404.
func RequireSessionUser(sessions *Sessions, logger *zap.Logger) func(http.Handler) http.Handler {
	return requireSession(sessions, logger, SessionLookupError)
}

func requireSession(sessions *Sessions, logger *zap.Logger, mapErr func(error) error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := sessions.ValidateSession(r.Context(), sessions.TokenFromRequest(r))
			if err != nil {
				if !errors.Is(err, ErrUnauthenticated) {
					logger.Debug("session rejected", zap.String("path", r.URL.Path), zap.Error(err))
				}
				apphttp.DefaultErrorHandler(w, mapErr(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

// SessionError maps a ValidateSession failure to a service error. Every
// rejected session is a 401.
func SessionError(err error) error {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return apperrors.UnAuthorizedError(err, "not authenticated")
	case errors.Is(err, ErrMalformedSession), errors.Is(err, ErrInvalidSession):
		return apperrors.UnAuthorizedError(err, "invalid session")
	default:
		return apperrors.GeneralError(err)
	}
}

// SessionLookupError is SessionError with a missing user mapped to 404.
func SessionLookupError(err error) error {
	if errors.Is(err, ErrInvalidSession) {
		return apperrors.ResourceNotFoundError(err, "user not found")
	}
	return SessionError(err)
}

// CurrentUser returns the session user stored by RequireSession.
func CurrentUser(r *http.Request) (*user.User, error) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		return nil, apperrors.UnAuthorizedError(ErrUnauthenticated, "not authenticated")
	}
	return u, nil
}
