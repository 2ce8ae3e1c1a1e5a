package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/internal/metrics"
	"github.com/chainsafe/prediction-miniapp/pkg/activity"
	apperrors "github.com/chainsafe/prediction-miniapp/pkg/app/errors"
	"github.com/chainsafe/prediction-miniapp/pkg/streak"
	"github.com/chainsafe/prediction-miniapp/pkg/user"
	"github.com/chainsafe/prediction-miniapp/pkg/userstore"
)

const defaultMaxRetries = 3

// ErrConcurrentUpdate is returned when every conditional write lost to another writer.
var ErrConcurrentUpdate = errors.New("streak update lost to concurrent writers")

// Store is the narrow data-access interface for the streak service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	CompareAndSwapStreak(ctx context.Context, id uuid.UUID, prev, next user.StreakState) (bool, error)
}

// FeedReader lists a user's activity feed.
type FeedReader interface {
	ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]*activity.Activity, error)
}

// Service defines the interface for daily check-ins
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	UpdateStreak(ctx context.Context, userID uuid.UUID) (*streak.Update, error)
	GetStreakStats(ctx context.Context, userID uuid.UUID) (*streak.Stats, error)
	ListFeed(ctx context.Context, userID uuid.UUID, limit int) ([]*activity.Activity, error)
}

type streakService struct {
	store      Store
	feed       FeedReader
	recorder   activity.Recorder
	engine     *streak.Engine
	maxRetries int
	now        func() time.Time
	logger     *zap.Logger
}

// Option configures the streak service.
type Option func(*streakService)

// WithMaxRetries bounds the number of conditional write attempts.
func WithMaxRetries(n int) Option {
	return func(s *streakService) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *streakService) {
		s.now = now
	}
}

// NewService creates a new streak service
func NewService(
	store Store,
	feed FeedReader,
	recorder activity.Recorder,
	engine *streak.Engine,
	logger *zap.Logger,
	opts ...Option,
) Service {
	s := &streakService{
		store:      store,
		feed:       feed,
		recorder:   recorder,
		engine:     engine,
		maxRetries: defaultMaxRetries,
		now:        time.Now,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpdateStreak records today's check-in for the user.
//
// The four streak fields are written with a single conditional update keyed on
// the values that were read. When another writer got there first the row is
// re-read and the transition recomputed, up to maxRetries attempts.
func (s *streakService) UpdateStreak(ctx context.Context, userID uuid.UUID) (res *streak.Update, err error) {
	defer func() {
		result := "error"
		if err == nil {
			result = string(res.Event)
		}
		metrics.StreakUpdates.WithLabelValues(result).Inc()
	}()

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		u, err := s.loadUser(ctx, userID)
		if err != nil {
			return nil, err
		}

		update := s.engine.Compute(u.Streak(), s.now())
		if !update.IsNewDay {
			return &update, nil
		}

		ok, err := s.store.CompareAndSwapStreak(ctx, userID, update.Previous, update.State)
		if err != nil {
			return nil, fmt.Errorf("failed to persist streak: %w", err)
		}
		if ok {
			s.recordSideEffects(ctx, userID, &update)
			return &update, nil
		}

		metrics.StreakCASRetries.Inc()
		s.logger.Debug("streak update lost race, retrying",
			zap.String("user_id", userID.String()),
			zap.Int("attempt", attempt))
	}

	return nil, apperrors.GeneralError(fmt.Errorf("%w after %d attempts", ErrConcurrentUpdate, s.maxRetries))
}

func (s *streakService) recordSideEffects(ctx context.Context, userID uuid.UUID, u *streak.Update) {
	s.recorder.Record(ctx, &activity.Activity{
		UserID:      userID,
		Type:        activity.TypeStreak,
		Title:       streak.ActivityTitle(*u),
		Description: streak.Message(*u),
		Metadata: map[string]any{
			"currentStreak": u.CurrentStreak,
			"longestStreak": u.LongestStreak,
			"streakBroken":  u.StreakBroken,
		},
	})

	if len(u.Milestones) == 0 {
		return
	}

	kinds := make([]string, 0, len(u.Milestones))
	for _, m := range u.Milestones {
		metrics.StreakMilestones.WithLabelValues(string(m)).Inc()
		kinds = append(kinds, string(m))
	}
	s.recorder.Audit(ctx, &activity.AuditEntry{
		UserID: &userID,
		Action: activity.ActionStreakMilestone,
		Details: map[string]any{
			"milestones":     kinds,
			"currentStreak":  u.CurrentStreak,
			"longestStreak":  u.LongestStreak,
			"totalVisitDays": u.TotalVisitDays,
		},
	})
}

func (s *streakService) GetStreakStats(ctx context.Context, userID uuid.UUID) (*streak.Stats, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := s.engine.Stats(u.Streak(), s.now())
	return &stats, nil
}

func (s *streakService) ListFeed(ctx context.Context, userID uuid.UUID, limit int) ([]*activity.Activity, error) {
	acts, err := s.feed.ListActivities(ctx, userID, activity.ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list activity feed: %w", err)
	}
	return acts, nil
}

func (s *streakService) loadUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "user not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return u, nil
}
