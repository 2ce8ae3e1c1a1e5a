package activity

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// AuditLogDao is a data access object that maps directly to the 'audit_logs' table in PostgreSQL.
type AuditLogDao struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`
	ID            int64          `bun:"id,pk,autoincrement"`
	UserID        *uuid.UUID     `bun:"user_id,type:uuid"`
	Action        string         `bun:"action,notnull,type:varchar(64)"`
	Details       map[string]any `bun:"details,type:jsonb"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// ActivityDao is a data access object that maps directly to the 'activities' table in PostgreSQL.
type ActivityDao struct {
	bun.BaseModel `bun:"table:activities,alias:a"`
	ID            int64          `bun:"id,pk,autoincrement"`
	UserID        uuid.UUID      `bun:"user_id,notnull,type:uuid"`
	Type          string         `bun:"type,notnull,type:varchar(32)"`
	Title         string         `bun:"title,notnull,type:varchar(200)"`
	Description   string         `bun:"description,type:text"`
	Metadata      map[string]any `bun:"metadata,type:jsonb"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toActivity(dao *ActivityDao) *Activity {
	return &Activity{
		ID:          dao.ID,
		UserID:      dao.UserID,
		Type:        dao.Type,
		Title:       dao.Title,
		Description: dao.Description,
		Metadata:    dao.Metadata,
		CreatedAt:   dao.CreatedAt,
	}
}
