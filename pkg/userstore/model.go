package userstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/prediction-miniapp/pkg/user"
)

// UserDao is a data access object that maps directly to the 'users' table in PostgreSQL.
type UserDao struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	WalletAddress string    `bun:"wallet_address,unique,notnull,type:varchar(42)"`
	Username      *string   `bun:"username,type:varchar(64)"`

	Age               *int       `bun:"age"`
	CountryCode       *string    `bun:"country_code,type:varchar(2)"`
	Region            *string    `bun:"region,type:varchar(128)"`
	IsEligible        bool       `bun:"is_eligible,notnull,default:false"`
	IsProfileComplete bool       `bun:"is_profile_complete,notnull,default:false"`
	TermsAcceptedAt   *time.Time `bun:"terms_accepted_at"`
	PrivacyAcceptedAt *time.Time `bun:"privacy_accepted_at"`

	IsWorldIDVerified    bool    `bun:"is_world_id_verified,notnull,default:false"`
	WorldIDNullifierHash *string `bun:"world_id_nullifier_hash,unique,type:varchar(128)"`
	VerificationLevel    *string `bun:"verification_level,type:varchar(16)"`

	CurrentStreak  int        `bun:"current_streak,notnull,default:0"`
	LongestStreak  int        `bun:"longest_streak,notnull,default:0"`
	LastActiveDate *time.Time `bun:"last_active_date"`
	TotalVisitDays int        `bun:"total_visit_days,notnull,default:0"`

	CreatedAt   time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
	LastLoginAt *time.Time `bun:"last_login_at"`
}

// NonceDao is a data access object that maps directly to the 'auth_nonces' table in PostgreSQL.
type NonceDao struct {
	bun.BaseModel `bun:"table:auth_nonces,alias:n"`
	Nonce         string     `bun:"nonce,pk,type:varchar(64)"`
	ExpiresAt     time.Time  `bun:"expires_at,notnull"`
	UsedAt        *time.Time `bun:"used_at"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// toUserDao converts a user.User to UserDao.
func toUserDao(usr *user.User) *UserDao {
	return &UserDao{
		ID:                   usr.ID,
		WalletAddress:        usr.WalletAddress,
		Username:             optString(usr.Username),
		Age:                  usr.Age,
		CountryCode:          optString(usr.CountryCode),
		Region:               optString(usr.Region),
		IsEligible:           usr.IsEligible,
		IsProfileComplete:    usr.IsProfileComplete,
		TermsAcceptedAt:      usr.TermsAcceptedAt,
		PrivacyAcceptedAt:    usr.PrivacyAcceptedAt,
		IsWorldIDVerified:    usr.IsWorldIDVerified,
		WorldIDNullifierHash: optString(usr.WorldIDNullifierHash),
		VerificationLevel:    optString(usr.VerificationLevel),
		CurrentStreak:        usr.CurrentStreak,
		LongestStreak:        usr.LongestStreak,
		LastActiveDate:       usr.LastActiveDate,
		TotalVisitDays:       usr.TotalVisitDays,
		CreatedAt:            usr.CreatedAt,
		UpdatedAt:            usr.UpdatedAt,
		LastLoginAt:          usr.LastLoginAt,
	}
}

// toUser converts a UserDao to user.User.
func toUser(dao *UserDao) *user.User {
	return &user.User{
		ID:                   dao.ID,
		WalletAddress:        dao.WalletAddress,
		Username:             derefString(dao.Username),
		Age:                  dao.Age,
		CountryCode:          derefString(dao.CountryCode),
		Region:               derefString(dao.Region),
		IsEligible:           dao.IsEligible,
		IsProfileComplete:    dao.IsProfileComplete,
		TermsAcceptedAt:      dao.TermsAcceptedAt,
		PrivacyAcceptedAt:    dao.PrivacyAcceptedAt,
		IsWorldIDVerified:    dao.IsWorldIDVerified,
		WorldIDNullifierHash: derefString(dao.WorldIDNullifierHash),
		VerificationLevel:    derefString(dao.VerificationLevel),
		CurrentStreak:        dao.CurrentStreak,
		LongestStreak:        dao.LongestStreak,
		LastActiveDate:       dao.LastActiveDate,
		TotalVisitDays:       dao.TotalVisitDays,
		CreatedAt:            dao.CreatedAt,
		UpdatedAt:            dao.UpdatedAt,
		LastLoginAt:          dao.LastLoginAt,
	}
}
