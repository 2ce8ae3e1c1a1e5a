// Package activity stores audit log entries and the per-user activity feed.
package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Audit actions.
const (
	ActionSignedIn         = "signed_in"
	ActionProfileCompleted = "profile_completed"
	ActionWorldIDVerified  = "world_id_verified"
	ActionStreakMilestone  = "streak_milestone"
	ActionMarketCreated    = "market_created"
)

// Activity feed types.
const (
	TypeStreak       = "streak"
	TypeProfile      = "profile"
	TypeVerification = "verification"
	TypeMarket       = "market"
	TypeComment      = "comment"
)

// DefaultFeedLimit and MaxFeedLimit bound ListActivities.
const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 100
)

// AuditEntry is an append-only record of a security or compliance relevant action.
type AuditEntry struct {
	ID        int64          `json:"id"`
	UserID    *uuid.UUID     `json:"userId,omitempty"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Activity is an entry of a user's activity feed.
type Activity struct {
	ID          int64          `json:"id"`
	UserID      uuid.UUID      `json:"userId"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitzero"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Store persists audit entries and activities.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	InsertAuditLog(ctx context.Context, entry *AuditEntry) error
	InsertActivity(ctx context.Context, act *Activity) error
	ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]*Activity, error)
}

// Recorder writes audit entries and activities without failing the caller.
//
//go:generate mockery --name Recorder --output mocks --outpkg mocks --filename mock_recorder.go --with-expecter
type Recorder interface {
	Audit(ctx context.Context, entry *AuditEntry)
	Record(ctx context.Context, act *Activity)
}

// ClampLimit applies the feed paging bounds.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultFeedLimit
	}
	return min(limit, MaxFeedLimit)
}
