package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the activity store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) InsertAuditLog(ctx context.Context, entry *AuditEntry) error {
	dao := &AuditLogDao{
		UserID:  entry.UserID,
		Action:  entry.Action,
		Details: entry.Details,
	}
	_, err := s.db.NewInsert().
		Model(dao).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	entry.ID = dao.ID
	entry.CreatedAt = dao.CreatedAt
	return nil
}

func (s *pgStore) InsertActivity(ctx context.Context, act *Activity) error {
	dao := &ActivityDao{
		UserID:      act.UserID,
		Type:        act.Type,
		Title:       act.Title,
		Description: act.Description,
		Metadata:    act.Metadata,
	}
	_, err := s.db.NewInsert().
		Model(dao).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	act.ID = dao.ID
	act.CreatedAt = dao.CreatedAt
	return nil
}

// ListActivities returns the user's newest activities first.
func (s *pgStore) ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]*Activity, error) {
	var daos []ActivityDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("user_id = ?", userID).
		OrderExpr("created_at DESC, id DESC").
		Limit(ClampLimit(limit)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	out := make([]*Activity, 0, len(daos))
	for i := range daos {
		out = append(out, toActivity(&daos[i]))
	}
	return out, nil
}
