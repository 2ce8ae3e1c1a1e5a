package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/pkg/activity"
	"github.com/chainsafe/prediction-miniapp/pkg/streak"
)

const serviceName = "StreakService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the streak Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// UpdateStreak wraps the service method with logging
func (ls *logService) UpdateStreak(ctx context.Context, userID uuid.UUID) (resp *streak.Update, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("UpdateStreak failed",
				zap.String("service", serviceName),
				zap.String("method", "UpdateStreak"),
				zap.String("user_id", userID.String()),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}

		ls.logger.Info("UpdateStreak completed",
			zap.String("service", serviceName),
			zap.String("method", "UpdateStreak"),
			zap.String("user_id", userID.String()),
			zap.String("event", string(resp.Event)),
			zap.Int("current_streak", resp.CurrentStreak),
			zap.Int("longest_streak", resp.LongestStreak),
			zap.Bool("new_day", resp.IsNewDay),
			zap.Bool("streak_broken", resp.StreakBroken),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.UpdateStreak(ctx, userID)
}

// GetStreakStats wraps the service method with logging
func (ls *logService) GetStreakStats(ctx context.Context, userID uuid.UUID) (resp *streak.Stats, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			ls.logger.Error("GetStreakStats failed",
				zap.String("service", serviceName),
				zap.String("method", "GetStreakStats"),
				zap.String("user_id", userID.String()),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.GetStreakStats(ctx, userID)
}

// ListFeed wraps the service method with logging
func (ls *logService) ListFeed(ctx context.Context, userID uuid.UUID, limit int) (resp []*activity.Activity, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			ls.logger.Error("ListFeed failed",
				zap.String("service", serviceName),
				zap.String("method", "ListFeed"),
				zap.String("user_id", userID.String()),
				zap.Int("limit", limit),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.ListFeed(ctx, userID, limit)
}
