package service

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/pkg/activity"
	activitymocks "github.com/chainsafe/prediction-miniapp/pkg/activity/mocks"
	apperrors "github.com/chainsafe/prediction-miniapp/pkg/app/errors"
	"github.com/chainsafe/prediction-miniapp/pkg/auth"
	"github.com/chainsafe/prediction-miniapp/pkg/user"
	"github.com/chainsafe/prediction-miniapp/pkg/user/service/mocks"
	"github.com/chainsafe/prediction-miniapp/pkg/userstore"
	"github.com/chainsafe/prediction-miniapp/pkg/worldid"
	worldidmocks "github.com/chainsafe/prediction-miniapp/pkg/worldid/mocks"
)

const testDomain = "app.example.com"

var fixedNow = time.Date(2026, time.June, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store    *mocks.Store
	verifier *worldidmocks.Verifier
	recorder *activitymocks.Recorder
	svc      Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tokens, err := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() failed: %v", err)
	}

	f := &fixture{
		store:    mocks.NewStore(t),
		verifier: worldidmocks.NewVerifier(t),
		recorder: activitymocks.NewRecorder(t),
	}
	f.recorder.EXPECT().Audit(mock.Anything, mock.Anything).Return().Maybe()
	f.recorder.EXPECT().Record(mock.Anything, mock.Anything).Return().Maybe()

	f.svc = NewService(f.store, f.verifier, tokens, f.recorder, Options{
		Domain:  testDomain,
		ChainID: 480,
		Now:     func() time.Time { return fixedNow },
	}, zap.NewNop())
	return f
}

func signedSIWE(t *testing.T, domain, nonce string) (*ecdsa.PrivateKey, string, string, string) {
	t.Helper()

	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	message := strings.Join([]string{
		domain + " wants you to sign in with your Ethereum account:",
		address,
		"",
		"Sign in to predict.",
		"",
		"URI: https://" + domain,
		"Version: 1",
		"Chain ID: 480",
		"Nonce: " + nonce,
		"Issued At: " + fixedNow.Format(time.RFC3339),
	}, "\n")

	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	if err != nil {
		t.Fatalf("Sign() failed: %v", err)
	}
	return key, address, message, "0x" + hex.EncodeToString(sig)
}

func TestUserService_SignIn_CreatesUserOnFirstSignIn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, address, message, signature := signedSIWE(t, testDomain, "nonce12345678")

	f.store.EXPECT().ConsumeNonce(ctx, "nonce12345678", fixedNow).Return(nil).Once()
	f.store.EXPECT().GetUserByWalletAddress(ctx, address).Return(nil, userstore.ErrUserNotFound).Once()
	f.store.EXPECT().CreateUser(ctx, mock.MatchedBy(func(u *user.User) bool {
		return u.WalletAddress == address
	})).Return(nil).Once()
	f.store.EXPECT().TouchLastLogin(ctx, mock.Anything, fixedNow).Return(nil).Once()

	res, err := f.svc.SignIn(ctx, &user.SignInRequest{Message: message, Signature: signature})
	if err != nil {
		t.Fatalf("SignIn() failed: %v", err)
	}
	if !res.IsNewUser {
		t.Fatal("expected a new user")
	}
	if res.User.WalletAddress != address {
		t.Fatalf("expected wallet %s, got %s", address, res.User.WalletAddress)
	}
	if res.Token == "" || !res.ExpiresAt.Equal(fixedNow.Add(time.Hour)) {
		t.Fatalf("unexpected session token %q expiring %v", res.Token, res.ExpiresAt)
	}
}

func TestUserService_SignIn_ExistingUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, address, message, signature := signedSIWE(t, testDomain, "nonce12345678")
	existing := user.New(address)

	f.store.EXPECT().ConsumeNonce(ctx, "nonce12345678", fixedNow).Return(nil).Once()
	f.store.EXPECT().GetUserByWalletAddress(ctx, address).Return(existing, nil).Once()
	f.store.EXPECT().TouchLastLogin(ctx, existing.ID, fixedNow).Return(nil).Once()

	res, err := f.svc.SignIn(ctx, &user.SignInRequest{Message: message, Signature: signature})
	if err != nil {
		t.Fatalf("SignIn() failed: %v", err)
	}
	if res.IsNewUser || res.User.ID != existing.ID {
		t.Fatalf("expected existing user, got %+v", res)
	}
}

func TestUserService_SignIn_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong domain", func(t *testing.T) {
		f := newFixture(t)
		_, _, message, signature := signedSIWE(t, "evil.example.com", "nonce12345678")
		_, err := f.svc.SignIn(ctx, &user.SignInRequest{Message: message, Signature: signature})
		if !apperrors.Is(err, apperrors.CategoryUnauthorized) || !errors.Is(err, auth.ErrSIWEDomain) {
			t.Fatalf("expected unauthorized domain mismatch, got %v", err)
		}
	})

	t.Run("foreign signature", func(t *testing.T) {
		f := newFixture(t)
		_, _, message, _ := signedSIWE(t, testDomain, "nonce12345678")
		_, _, _, otherSig := signedSIWE(t, testDomain, "nonce12345678")
		_, err := f.svc.SignIn(ctx, &user.SignInRequest{Message: message, Signature: otherSig})
		if !apperrors.Is(err, apperrors.CategoryUnauthorized) || !errors.Is(err, auth.ErrSIWESignature) {
			t.Fatalf("expected unauthorized signature error, got %v", err)
		}
	})

	t.Run("garbage message", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.SignIn(ctx, &user.SignInRequest{Message: "hello", Signature: "0x00"})
		if !apperrors.Is(err, apperrors.CategoryDataError) {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("reused nonce", func(t *testing.T) {
		f := newFixture(t)
		_, _, message, signature := signedSIWE(t, testDomain, "nonce12345678")
		f.store.EXPECT().ConsumeNonce(ctx, "nonce12345678", fixedNow).Return(userstore.ErrNonceInvalid).Once()

		_, err := f.svc.SignIn(ctx, &user.SignInRequest{Message: message, Signature: signature})
		if !apperrors.Is(err, apperrors.CategoryUnauthorized) || !errors.Is(err, userstore.ErrNonceInvalid) {
			t.Fatalf("expected unauthorized nonce error, got %v", err)
		}
	})
}

func TestUserService_IssueNonce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.store.EXPECT().
		CreateNonce(ctx, mock.AnythingOfType("string"), fixedNow.Add(defaultNonceTTL)).
		Return(nil).Once()

	resp, err := f.svc.IssueNonce(ctx)
	if err != nil {
		t.Fatalf("IssueNonce() failed: %v", err)
	}
	if len(resp.Nonce) != auth.NonceLength {
		t.Fatalf("unexpected nonce %q", resp.Nonce)
	}
}

func validProfileRequest(country string) *user.CompleteProfileRequest {
	return &user.CompleteProfileRequest{
		Age:             30,
		CountryCode:     country,
		Region:          "Somewhere",
		TermsAccepted:   true,
		PrivacyAccepted: true,
	}
}

func TestUserService_CompleteProfile_ValidationOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := user.New("0x1111111111111111111111111111111111111111")

	tests := []struct {
		name    string
		req     *user.CompleteProfileRequest
		wantErr error
		wantMsg string
	}{
		{"underage beats missing location", &user.CompleteProfileRequest{Age: 17}, ErrUnderage, "You must be at least 18 years old to use this app"},
		{"missing region", &user.CompleteProfileRequest{Age: 30, CountryCode: "GB"}, ErrMissingLocation, MsgMissingLocation},
		{"missing country", &user.CompleteProfileRequest{Age: 30, Region: "London", TermsAccepted: true, PrivacyAccepted: true}, ErrMissingLocation, MsgMissingLocation},
		{"invalid country", &user.CompleteProfileRequest{Age: 30, CountryCode: "GBR", Region: "London"}, ErrMissingLocation, MsgInvalidCountry},
		{"terms", &user.CompleteProfileRequest{Age: 30, CountryCode: "GB", Region: "London", PrivacyAccepted: true}, ErrTermsNotAccepted, MsgTermsNotAccepted},
		{"privacy", &user.CompleteProfileRequest{Age: 30, CountryCode: "GB", Region: "London", TermsAccepted: true}, ErrTermsNotAccepted, MsgTermsNotAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CompleteProfile(ctx, u, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var svcErr *apperrors.ServiceError
			if !errors.As(err, &svcErr) || svcErr.StatusCode() != 400 || svcErr.Message != tt.wantMsg {
				t.Fatalf("expected 400 %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestUserService_CompleteProfile_RestrictedRegion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := user.New("0x1111111111111111111111111111111111111111")

	f.store.EXPECT().
		CompleteProfile(ctx, u.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, update *user.ProfileUpdate) (*user.User, error) {
			if update.CountryCode != "US" || update.IsEligible {
				t.Errorf("unexpected update %+v", update)
			}
			if update.InitialStreak.CurrentStreak != 1 || update.InitialStreak.TotalVisitDays != 1 {
				t.Errorf("expected initial streak 1/1/1, got %+v", update.InitialStreak)
			}
			done := *u
			age := update.Age
			done.Age = &age
			done.CountryCode = update.CountryCode
			done.IsEligible = update.IsEligible
			done.IsProfileComplete = true
			return &done, nil
		}).Once()

	resp, err := f.svc.CompleteProfile(ctx, u, validProfileRequest("us"))
	if err != nil {
		t.Fatalf("CompleteProfile() failed: %v", err)
	}
	if !resp.Success || !resp.User.IsProfileComplete || resp.User.IsEligible {
		t.Fatalf("expected complete but ineligible profile, got %+v", resp.User)
	}
	if resp.Message == MsgProfileEligible || !strings.HasPrefix(resp.Message, MsgProfileIneligible) {
		t.Fatalf("expected the ineligible message, got %q", resp.Message)
	}
}

func TestUserService_CompleteProfile_Eligible(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := user.New("0x1111111111111111111111111111111111111111")

	completed := *u
	completed.IsProfileComplete = true
	completed.IsEligible = true
	f.store.EXPECT().
		CompleteProfile(ctx, u.ID, mock.MatchedBy(func(update *user.ProfileUpdate) bool {
			return update.CountryCode == "GB" && update.IsEligible && update.TermsAcceptedAt.Equal(fixedNow)
		})).
		Return(&completed, nil).Once()

	resp, err := f.svc.CompleteProfile(ctx, u, validProfileRequest("gb"))
	if err != nil {
		t.Fatalf("CompleteProfile() failed: %v", err)
	}
	if resp.Message != MsgProfileEligible || !resp.User.IsEligible {
		t.Fatalf("expected eligible response, got %+v", resp)
	}
}

func TestUserService_CompleteProfile_RecompletionIsAudited(t *testing.T) {
	ctx := context.Background()
	tokens, _ := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", time.Hour)
	store := mocks.NewStore(t)
	recorder := activitymocks.NewRecorder(t)
	svc := NewService(store, nil, tokens, recorder, Options{Now: func() time.Time { return fixedNow }}, zap.NewNop())

	u := user.New("0x1111111111111111111111111111111111111111")
	u.IsProfileComplete = true
	u.IsEligible = true
	u.CountryCode = "GB"

	store.EXPECT().CompleteProfile(ctx, u.ID, mock.Anything).Return(u, nil).Once()
	recorder.EXPECT().
		Audit(ctx, mock.MatchedBy(func(e *activity.AuditEntry) bool {
			return e.Action == activity.ActionProfileCompleted &&
				e.Details["recompleted"] == true &&
				e.Details["previousEligible"] == true &&
				e.Details["eligible"] == false
		})).
		Return().Once()
	recorder.EXPECT().Record(ctx, mock.Anything).Return().Once()

	if _, err := svc.CompleteProfile(ctx, u, validProfileRequest("FR")); err != nil {
		t.Fatalf("CompleteProfile() failed: %v", err)
	}
}

func TestUserService_CompleteProfile_StoreFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := user.New("0x1111111111111111111111111111111111111111")

	f.store.EXPECT().CompleteProfile(ctx, u.ID, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, err := f.svc.CompleteProfile(ctx, u, validProfileRequest("GB"))
	if err == nil || !apperrors.IsInternalError(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func worldIDRequest() *user.VerifyWorldIDRequest {
	return &user.VerifyWorldIDRequest{
		Proof:             "0xproof",
		MerkleRoot:        "0xroot",
		NullifierHash:     "0xnullifier",
		VerificationLevel: "orb",
	}
}

func TestUserService_VerifyWorldID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := user.New("0x1111111111111111111111111111111111111111")

	f.verifier.EXPECT().
		VerifyProof(ctx, mock.MatchedBy(func(p *worldid.Proof) bool { return p.NullifierHash == "0xnullifier" })).
		Return(&worldid.Result{NullifierHash: "0xnullifier", VerificationLevel: "orb"}, nil).Once()

	verified := *u
	verified.IsWorldIDVerified = true
	f.store.EXPECT().
		MarkWorldIDVerified(ctx, u.ID, &user.WorldIDVerification{NullifierHash: "0xnullifier", VerificationLevel: "orb"}).
		Return(&verified, nil).Once()

	got, err := f.svc.VerifyWorldID(ctx, u, worldIDRequest())
	if err != nil {
		t.Fatalf("VerifyWorldID() failed: %v", err)
	}
	if !got.IsWorldIDVerified {
		t.Fatal("expected verified user")
	}

	// Already verified users are returned as is.
	again, err := f.svc.VerifyWorldID(ctx, got, worldIDRequest())
	if err != nil || again != got {
		t.Fatalf("expected no-op for verified user, got %v %v", again, err)
	}
}

func TestUserService_VerifyWorldID_Errors(t *testing.T) {
	ctx := context.Background()
	u := user.New("0x1111111111111111111111111111111111111111")

	t.Run("rejected", func(t *testing.T) {
		f := newFixture(t)
		f.verifier.EXPECT().VerifyProof(ctx, mock.Anything).
			Return(nil, &worldid.RejectionError{Code: "invalid_proof", Detail: "The provided proof is invalid."}).Once()

		_, err := f.svc.VerifyWorldID(ctx, u, worldIDRequest())
		var svcErr *apperrors.ServiceError
		if !errors.As(err, &svcErr) || svcErr.StatusCode() != 400 || svcErr.Message != "The provided proof is invalid." {
			t.Fatalf("expected 400 with verifier detail, got %v", err)
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.verifier.EXPECT().VerifyProof(ctx, mock.Anything).Return(nil, worldid.ErrUnavailable).Once()

		_, err := f.svc.VerifyWorldID(ctx, u, worldIDRequest())
		if !apperrors.Is(err, apperrors.CategoryDependencyFailure) {
			t.Fatalf("expected dependency failure, got %v", err)
		}
	})

	t.Run("nullifier taken", func(t *testing.T) {
		f := newFixture(t)
		f.verifier.EXPECT().VerifyProof(ctx, mock.Anything).
			Return(&worldid.Result{NullifierHash: "0xnullifier", VerificationLevel: "orb"}, nil).Once()
		f.store.EXPECT().MarkWorldIDVerified(ctx, u.ID, mock.Anything).Return(nil, userstore.ErrNullifierTaken).Once()

		_, err := f.svc.VerifyWorldID(ctx, u, worldIDRequest())
		if !apperrors.Is(err, apperrors.CategoryDataConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		tokens, _ := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", time.Hour)
		svc := NewService(mocks.NewStore(t), nil, tokens, activitymocks.NewRecorder(t), Options{}, zap.NewNop())

		_, err := svc.VerifyWorldID(ctx, u, worldIDRequest())
		if !errors.Is(err, ErrWorldIDDisabled) || !apperrors.Is(err, apperrors.CategoryForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}
