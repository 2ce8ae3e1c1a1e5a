package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/prediction-miniapp/pkg/user"
)

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record.
	ErrUserNotFound = errors.New("user not found")
	// ErrNullifierTaken is returned when a World ID nullifier is already bound to another user.
	ErrNullifierTaken = errors.New("world id nullifier already used")
	// ErrNonceInvalid is returned when a sign-in nonce is unknown, expired or already used.
	ErrNonceInvalid = errors.New("nonce invalid or expired")
)

// Store defines the interface for user data persistence
type Store interface {
	NonceStore
	CreateUser(ctx context.Context, usr *user.User) error
	GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetUserByWalletAddress(ctx context.Context, walletAddress string) (*user.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	CompareAndSwapStreak(ctx context.Context, id uuid.UUID, prev, next user.StreakState) (bool, error)
	CompleteProfile(ctx context.Context, id uuid.UUID, update *user.ProfileUpdate) (*user.User, error)
	MarkWorldIDVerified(ctx context.Context, id uuid.UUID, v *user.WorldIDVerification) (*user.User, error)
}

// NonceStore defines the interface for single-use sign-in nonces
type NonceStore interface {
	CreateNonce(ctx context.Context, nonce string, expiresAt time.Time) error
	ConsumeNonce(ctx context.Context, nonce string, now time.Time) error
}

// QueryOptions defines options for querying users
type QueryOptions struct {
	ID            *uuid.UUID
	WalletAddress *string
}

// QueryOption is a functional option for querying users
type QueryOption func(*QueryOptions)

// WithID sets the user id filter
func WithID(id uuid.UUID) QueryOption {
	return func(opts *QueryOptions) {
		opts.ID = &id
	}
}

// WithWalletAddress sets the wallet address filter
func WithWalletAddress(walletAddress string) QueryOption {
	return func(opts *QueryOptions) {
		opts.WalletAddress = &walletAddress
	}
}
