package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents the domain model for a signed-in wallet user.
type User struct {
	ID            uuid.UUID
	WalletAddress string
	Username      string

	Age               *int
	CountryCode       string
	Region            string
	IsEligible        bool
	IsProfileComplete bool
	TermsAcceptedAt   *time.Time
	PrivacyAcceptedAt *time.Time

	IsWorldIDVerified    bool
	WorldIDNullifierHash string
	VerificationLevel    string

	CurrentStreak  int
	LongestStreak  int
	LastActiveDate *time.Time
	TotalVisitDays int

	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

// New creates a User for a wallet signing in for the first time.
func New(walletAddress string) *User {
	now := time.Now().UTC()
	return &User{
		ID:            uuid.New(),
		WalletAddress: walletAddress,
		CreatedAt:     now,
		UpdatedAt:     now,
		LastLoginAt:   &now,
	}
}

// StreakState is the subset of a user row owned by the streak engine.
type StreakState struct {
	CurrentStreak  int
	LongestStreak  int
	LastActiveDate *time.Time
	TotalVisitDays int
}

// Streak returns the user's current streak fields.
func (u *User) Streak() StreakState {
	return StreakState{
		CurrentStreak:  u.CurrentStreak,
		LongestStreak:  u.LongestStreak,
		LastActiveDate: u.LastActiveDate,
		TotalVisitDays: u.TotalVisitDays,
	}
}

// ProfileUpdate carries the compliance fields written by profile completion.
type ProfileUpdate struct {
	Age               int
	CountryCode       string
	Region            string
	IsEligible        bool
	TermsAcceptedAt   time.Time
	PrivacyAcceptedAt time.Time
	// InitialStreak is applied only if the profile was not complete yet.
	InitialStreak StreakState
}

// WorldIDVerification carries the result of a verified World ID proof.
type WorldIDVerification struct {
	NullifierHash     string
	VerificationLevel string
}

// CompleteProfileRequest is the body of POST /profile/complete.
type CompleteProfileRequest struct {
	Age             int    `json:"age"`
	CountryCode     string `json:"countryCode"`
	Region          string `json:"region"`
	TermsAccepted   bool   `json:"termsAccepted"`
	PrivacyAccepted bool   `json:"privacyAccepted"`
}

// CompleteProfileResponse is returned by profile completion.
type CompleteProfileResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    *Profile `json:"user"`
}

// SignInRequest is the body of POST /auth/siwe.
type SignInRequest struct {
	Message   string `json:"message" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// NonceResponse is returned by GET /auth/nonce.
type NonceResponse struct {
	Nonce     string    `json:"nonce"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SignInResult is returned by a successful wallet sign-in.
type SignInResult struct {
	User      *User
	IsNewUser bool
	Token     string
	ExpiresAt time.Time
}

// VerifyWorldIDRequest is the body of POST /auth/verify-world-id.
type VerifyWorldIDRequest struct {
	Proof             string `json:"proof" validate:"required"`
	MerkleRoot        string `json:"merkle_root" validate:"required"`
	NullifierHash     string `json:"nullifier_hash" validate:"required"`
	VerificationLevel string `json:"verification_level" validate:"required,oneof=orb device"`
	Signal            string `json:"signal,omitzero"`
}

// Profile is the client-facing projection of a user.
type Profile struct {
	ID                string     `json:"id"`
	WalletAddress     string     `json:"walletAddress"`
	Username          string     `json:"username,omitzero"`
	Age               *int       `json:"age,omitempty"`
	CountryCode       string     `json:"countryCode,omitzero"`
	Region            string     `json:"region,omitzero"`
	IsEligible        bool       `json:"isEligible"`
	IsProfileComplete bool       `json:"isProfileComplete"`
	IsWorldIDVerified bool       `json:"isWorldIdVerified"`
	CurrentStreak     int        `json:"currentStreak"`
	LongestStreak     int        `json:"longestStreak"`
	TotalVisitDays    int        `json:"totalVisitDays"`
	LastActiveDate    *time.Time `json:"lastActiveDate,omitempty"`
}

// ToProfile projects the user for API responses.
func (u *User) ToProfile() *Profile {
	return &Profile{
		ID:                u.ID.String(),
		WalletAddress:     u.WalletAddress,
		Username:          u.Username,
		Age:               u.Age,
		CountryCode:       u.CountryCode,
		Region:            u.Region,
		IsEligible:        u.IsEligible,
		IsProfileComplete: u.IsProfileComplete,
		IsWorldIDVerified: u.IsWorldIDVerified,
		CurrentStreak:     u.CurrentStreak,
		LongestStreak:     u.LongestStreak,
		TotalVisitDays:    u.TotalVisitDays,
		LastActiveDate:    u.LastActiveDate,
	}
}
