package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/internal/metrics"
	"github.com/chainsafe/prediction-miniapp/pkg/activity"
	apperrors "github.com/chainsafe/prediction-miniapp/pkg/app/errors"
	"github.com/chainsafe/prediction-miniapp/pkg/auth"
	"github.com/chainsafe/prediction-miniapp/pkg/compliance"
	"github.com/chainsafe/prediction-miniapp/pkg/streak"
	"github.com/chainsafe/prediction-miniapp/pkg/user"
	"github.com/chainsafe/prediction-miniapp/pkg/userstore"
	"github.com/chainsafe/prediction-miniapp/pkg/worldid"
)

const defaultNonceTTL = 5 * time.Minute

// Messages returned by profile completion.
const (
	MsgProfileEligible   = "Profile completed! You're all set to start predicting."
	MsgProfileIneligible = "Profile completed. Prediction markets are not available for your account."
	MsgMissingLocation   = "Country and region are required"
	MsgInvalidCountry    = "Country code must be a two-letter ISO 3166 code"
	MsgTermsNotAccepted  = "You must accept the terms of service and privacy policy"
)

var (
	ErrUnderage         = errors.New("user is below the minimum age")
	ErrMissingLocation  = errors.New("country and region are required")
	ErrTermsNotAccepted = errors.New("terms or privacy policy not accepted")
	ErrWorldIDDisabled  = errors.New("world id verification is disabled")
)

// Store is the narrow data-access interface for the user service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateUser(ctx context.Context, usr *user.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetUserByWalletAddress(ctx context.Context, walletAddress string) (*user.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	CompleteProfile(ctx context.Context, id uuid.UUID, update *user.ProfileUpdate) (*user.User, error)
	MarkWorldIDVerified(ctx context.Context, id uuid.UUID, v *user.WorldIDVerification) (*user.User, error)
	CreateNonce(ctx context.Context, nonce string, expiresAt time.Time) error
	ConsumeNonce(ctx context.Context, nonce string, now time.Time) error
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(u *user.User, now time.Time) (string, time.Time, error)
}

// Service defines the interface for sign-in, profile and verification logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	IssueNonce(ctx context.Context) (*user.NonceResponse, error)
	SignIn(ctx context.Context, req *user.SignInRequest) (*user.SignInResult, error)
	CompleteProfile(ctx context.Context, u *user.User, req *user.CompleteProfileRequest) (*user.CompleteProfileResponse, error)
	VerifyWorldID(ctx context.Context, u *user.User, req *user.VerifyWorldIDRequest) (*user.User, error)
}

// Options holds the sign-in and compliance settings of the service.
type Options struct {
	// Domain must match the domain of signed SIWE messages.
	Domain string
	// ChainID is enforced when non-zero.
	ChainID  int64
	NonceTTL time.Duration
	Rules    *compliance.Rules
	// Now is overridable in tests.
	Now func() time.Time
}

type userService struct {
	store    Store
	verifier worldid.Verifier
	tokens   TokenIssuer
	recorder activity.Recorder
	opts     Options
	logger   *zap.Logger
}

// NewService creates a new user service. A nil verifier disables World ID verification.
func NewService(
	store Store,
	verifier worldid.Verifier,
	tokens TokenIssuer,
	recorder activity.Recorder,
	opts Options,
	logger *zap.Logger,
) Service {
	if opts.NonceTTL <= 0 {
		opts.NonceTTL = defaultNonceTTL
	}
	if opts.Rules == nil {
		opts.Rules = compliance.Default()
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	return &userService{
		store:    store,
		verifier: verifier,
		tokens:   tokens,
		recorder: recorder,
		opts:     opts,
		logger:   logger,
	}
}

func (s *userService) IssueNonce(ctx context.Context) (*user.NonceResponse, error) {
	nonce, err := auth.GenerateNonce()
	if err != nil {
		return nil, err
	}
	expiresAt := s.opts.Now().Add(s.opts.NonceTTL)
	if err := s.store.CreateNonce(ctx, nonce, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store nonce: %w", err)
	}
	return &user.NonceResponse{Nonce: nonce, ExpiresAt: expiresAt}, nil
}

// SignIn verifies a signed SIWE message and returns the wallet's user with a
// fresh session token. The user is created on first sign-in.
//
// The nonce is consumed only after the signature verifies.
func (s *userService) SignIn(ctx context.Context, req *user.SignInRequest) (res *user.SignInResult, err error) {
	defer func() {
		metrics.SignIns.WithLabelValues(signInResult(res, err)).Inc()
	}()

	now := s.opts.Now()

	msg, err := auth.ParseSIWEMessage(req.Message)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid sign-in message")
	}
	if err := msg.Validate(s.opts.Domain, s.opts.ChainID, now); err != nil {
		return nil, apperrors.UnAuthorizedError(err, "sign-in message rejected")
	}
	walletAddress, err := msg.VerifySignature(req.Message, req.Signature)
	if err != nil {
		return nil, apperrors.UnAuthorizedError(err, "invalid signature")
	}
	if err := s.store.ConsumeNonce(ctx, msg.Nonce, now); err != nil {
		if errors.Is(err, userstore.ErrNonceInvalid) {
			return nil, apperrors.UnAuthorizedError(err, "invalid or expired nonce")
		}
		return nil, fmt.Errorf("failed to consume nonce: %w", err)
	}

	u, isNew, err := s.findOrCreate(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	if err := s.store.TouchLastLogin(ctx, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLoginAt = &now

	token, expiresAt, err := s.tokens.Issue(u, now)
	if err != nil {
		return nil, err
	}

	s.recorder.Audit(ctx, &activity.AuditEntry{
		UserID: &u.ID,
		Action: activity.ActionSignedIn,
		Details: map[string]any{
			"walletAddress": walletAddress,
			"isNewUser":     isNew,
			"chainId":       msg.ChainID,
		},
	})

	return &user.SignInResult{User: u, IsNewUser: isNew, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *userService) findOrCreate(ctx context.Context, walletAddress string) (*user.User, bool, error) {
	u, err := s.store.GetUserByWalletAddress(ctx, walletAddress)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, userstore.ErrUserNotFound) {
		return nil, false, fmt.Errorf("failed to load user: %w", err)
	}

	u = user.New(walletAddress)
	if err := s.store.CreateUser(ctx, u); err != nil {
		// A concurrent first sign-in may have won the unique wallet constraint.
		existing, getErr := s.store.GetUserByWalletAddress(ctx, walletAddress)
		if getErr == nil {
			return existing, false, nil
		}
		return nil, false, err
	}
	return u, true, nil
}

func signInResult(res *user.SignInResult, err error) string {
	switch {
	case err == nil && res.IsNewUser:
		return "new_user"
	case err == nil:
		return "ok"
	case apperrors.IsInternalError(err):
		return "error"
	default:
		return "rejected"
	}
}

// CompleteProfile validates and stores the compliance profile of u. The first
// completion also starts the user's streak.
func (s *userService) CompleteProfile(
	ctx context.Context,
	u *user.User,
	req *user.CompleteProfileRequest,
) (*user.CompleteProfileResponse, error) {
	countryCode := strings.ToUpper(strings.TrimSpace(req.CountryCode))
	region := strings.TrimSpace(req.Region)

	switch minAge := s.opts.Rules.MinimumAge(); {
	case req.Age < minAge:
		return nil, apperrors.BadRequestError(ErrUnderage, fmt.Sprintf("You must be at least %d years old to use this app", minAge))
	case countryCode == "" || region == "":
		return nil, apperrors.BadRequestError(ErrMissingLocation, MsgMissingLocation)
	case len(countryCode) != 2:
		return nil, apperrors.BadRequestError(ErrMissingLocation, MsgInvalidCountry)
	case !req.TermsAccepted || !req.PrivacyAccepted:
		return nil, apperrors.BadRequestError(ErrTermsNotAccepted, MsgTermsNotAccepted)
	}

	decision := s.opts.Rules.CheckEligibility(req.Age, countryCode)
	metrics.EligibilityChecks.WithLabelValues(decision.Rule).Inc()

	now := s.opts.Now()
	updated, err := s.store.CompleteProfile(ctx, u.ID, &user.ProfileUpdate{
		Age:               req.Age,
		CountryCode:       countryCode,
		Region:            region,
		IsEligible:        decision.Eligible,
		TermsAcceptedAt:   now,
		PrivacyAcceptedAt: now,
		InitialStreak:     streak.InitialState(now),
	})
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "user not found")
		}
		return nil, fmt.Errorf("failed to complete profile: %w", err)
	}
	metrics.ProfileCompletions.WithLabelValues(strconv.FormatBool(decision.Eligible)).Inc()

	details := map[string]any{
		"age":         req.Age,
		"countryCode": countryCode,
		"region":      region,
		"eligible":    decision.Eligible,
		"reason":      decision.Reason,
		"recompleted": u.IsProfileComplete,
	}
	if u.IsProfileComplete {
		details["previousEligible"] = u.IsEligible
		details["previousCountryCode"] = u.CountryCode
	}
	s.recorder.Audit(ctx, &activity.AuditEntry{UserID: &u.ID, Action: activity.ActionProfileCompleted, Details: details})
	s.recorder.Record(ctx, &activity.Activity{
		UserID:      u.ID,
		Type:        activity.TypeProfile,
		Title:       "Profile completed",
		Description: decision.Reason,
		Metadata:    map[string]any{"eligible": decision.Eligible},
	})

	msg := MsgProfileEligible
	if !decision.Eligible {
		msg = MsgProfileIneligible + " " + decision.Reason
	}
	return &user.CompleteProfileResponse{Success: true, Message: msg, User: updated.ToProfile()}, nil
}

// VerifyWorldID checks a World ID proof and binds its nullifier to u.
func (s *userService) VerifyWorldID(ctx context.Context, u *user.User, req *user.VerifyWorldIDRequest) (*user.User, error) {
	if s.verifier == nil {
		return nil, apperrors.ForbiddenError(ErrWorldIDDisabled, "World ID verification is not enabled")
	}
	if u.IsWorldIDVerified {
		return u, nil
	}

	res, err := s.verifier.VerifyProof(ctx, &worldid.Proof{
		Proof:             req.Proof,
		MerkleRoot:        req.MerkleRoot,
		NullifierHash:     req.NullifierHash,
		VerificationLevel: req.VerificationLevel,
		Signal:            req.Signal,
	})
	if err != nil {
		var rej *worldid.RejectionError
		switch {
		case errors.As(err, &rej):
			return nil, apperrors.BadRequestError(err, rej.Detail)
		case errors.Is(err, worldid.ErrUnavailable):
			return nil, apperrors.DependencyError(err, "World ID verifier unavailable")
		default:
			return nil, fmt.Errorf("failed to verify proof: %w", err)
		}
	}

	updated, err := s.store.MarkWorldIDVerified(ctx, u.ID, &user.WorldIDVerification{
		NullifierHash:     res.NullifierHash,
		VerificationLevel: res.VerificationLevel,
	})
	if err != nil {
		switch {
		case errors.Is(err, userstore.ErrNullifierTaken):
			return nil, apperrors.ConflictError(err, "World ID already linked to another account")
		case errors.Is(err, userstore.ErrUserNotFound):
			return nil, apperrors.ResourceNotFoundError(err, "user not found")
		default:
			return nil, fmt.Errorf("failed to store verification: %w", err)
		}
	}

	s.recorder.Audit(ctx, &activity.AuditEntry{
		UserID:  &u.ID,
		Action:  activity.ActionWorldIDVerified,
		Details: map[string]any{"verificationLevel": res.VerificationLevel},
	})
	s.recorder.Record(ctx, &activity.Activity{
		UserID: u.ID,
		Type:   activity.TypeVerification,
		Title:  "Verified with World ID",
	})

	return updated, nil
}
