package auth

import (
	"context"

	"github.com/chainsafe/prediction-miniapp/pkg/user"
)

type contextKey string

// ContextKeyUser is the context key for the authenticated user
const ContextKeyUser contextKey = "user"

// WithUser adds the authenticated user to the context
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, ContextKeyUser, u)
}

// UserFromContext retrieves the authenticated user from the context
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(ContextKeyUser).(*user.User)
	return u, ok && u != nil
}
