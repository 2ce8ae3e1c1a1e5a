package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/prediction-miniapp/pkg/user"
)

const sqlStateUniqueViolation = "23505"

// firstCompletion is true for a row whose profile was never completed and
// which has no streak yet. SET expressions see the pre-update row.
const firstCompletion = "NOT is_profile_complete AND last_active_date IS NULL"

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the user store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateUser(ctx context.Context, usr *user.User) error {
	dao := toUserDao(usr)

	_, err := s.db.NewInsert().
		Model(dao).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *pgStore) GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error) {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}

	dao := new(UserDao)
	query := s.db.NewSelect().Model(dao)

	if options.ID != nil {
		query = query.Where("id = ?", *options.ID)
	}
	if options.WalletAddress != nil {
		query = query.Where("wallet_address = ?", *options.WalletAddress)
	}

	err := query.Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUser(dao), nil
}

func (s *pgStore) GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.GetUser(ctx, WithID(id))
}

func (s *pgStore) GetUserByWalletAddress(ctx context.Context, walletAddress string) (*user.User, error) {
	return s.GetUser(ctx, WithWalletAddress(walletAddress))
}

func (s *pgStore) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := s.db.NewUpdate().
		Model((*UserDao)(nil)).
		Set("last_login_at = ?", at).
		Set("updated_at = ?", at).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// CompareAndSwapStreak writes next only if the row still holds prev. It reports
// false when another writer changed the streak fields in between.
func (s *pgStore) CompareAndSwapStreak(ctx context.Context, id uuid.UUID, prev, next user.StreakState) (bool, error) {
	res, err := s.db.NewUpdate().
		Model((*UserDao)(nil)).
		Set("current_streak = ?", next.CurrentStreak).
		Set("longest_streak = ?", next.LongestStreak).
		Set("total_visit_days = ?", next.TotalVisitDays).
		Set("last_active_date = ?", next.LastActiveDate).
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Where("current_streak = ?", prev.CurrentStreak).
		Where("longest_streak = ?", prev.LongestStreak).
		Where("total_visit_days = ?", prev.TotalVisitDays).
		Where("last_active_date IS NOT DISTINCT FROM ?", prev.LastActiveDate).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update streak: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

func (s *pgStore) CompleteProfile(ctx context.Context, id uuid.UUID, update *user.ProfileUpdate) (*user.User, error) {
	init := update.InitialStreak
	dao := new(UserDao)

	err := s.db.NewUpdate().
		Model(dao).
		Set("age = ?", update.Age).
		Set("country_code = ?", update.CountryCode).
		Set("region = ?", update.Region).
		Set("is_eligible = ?", update.IsEligible).
		Set("terms_accepted_at = ?", update.TermsAcceptedAt).
		Set("privacy_accepted_at = ?", update.PrivacyAcceptedAt).
		Set("current_streak = CASE WHEN "+firstCompletion+" THEN ? ELSE current_streak END", init.CurrentStreak).
		Set("longest_streak = CASE WHEN "+firstCompletion+" THEN ? ELSE longest_streak END", init.LongestStreak).
		Set("total_visit_days = CASE WHEN "+firstCompletion+" THEN ? ELSE total_visit_days END", init.TotalVisitDays).
		Set("last_active_date = CASE WHEN "+firstCompletion+" THEN ?::timestamptz ELSE last_active_date END", init.LastActiveDate).
		Set("is_profile_complete = TRUE").
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Returning("*").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to complete profile: %w", err)
	}

	return toUser(dao), nil
}

func (s *pgStore) MarkWorldIDVerified(ctx context.Context, id uuid.UUID, v *user.WorldIDVerification) (*user.User, error) {
	dao := new(UserDao)

	err := s.db.NewUpdate().
		Model(dao).
		Set("is_world_id_verified = TRUE").
		Set("world_id_nullifier_hash = ?", v.NullifierHash).
		Set("verification_level = ?", v.VerificationLevel).
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Returning("*").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == sqlStateUniqueViolation {
			return nil, ErrNullifierTaken
		}
		return nil, fmt.Errorf("failed to mark world id verified: %w", err)
	}

	return toUser(dao), nil
}

func (s *pgStore) CreateNonce(ctx context.Context, nonce string, expiresAt time.Time) error {
	_, err := s.db.NewInsert().
		Model(&NonceDao{Nonce: nonce, ExpiresAt: expiresAt}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create nonce: %w", err)
	}
	return nil
}

// ConsumeNonce marks the nonce used. It fails with ErrNonceInvalid if the
// nonce is unknown, expired or was consumed before.
func (s *pgStore) ConsumeNonce(ctx context.Context, nonce string, now time.Time) error {
	res, err := s.db.NewUpdate().
		Model((*NonceDao)(nil)).
		Set("used_at = ?", now).
		Where("nonce = ?", nonce).
		Where("used_at IS NULL").
		Where("expires_at > ?", now).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to consume nonce: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNonceInvalid
	}
	return nil
}

// DeleteExpiredNonces removes nonces that expired before the cutoff, used or not.
func (s *pgStore) DeleteExpiredNonces(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*NonceDao)(nil)).
		Where("expires_at < ?", before).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired nonces: %w", err)
	}
	return res.RowsAffected()
}
