package activity

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/chainsafe/prediction-miniapp/pkg/pgutil"
	mghelper "github.com/chainsafe/prediction-miniapp/pkg/pgutil/migrations"
)

func TestActivityPGStore(t *testing.T) {
	pgutil.RequireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &AuditLogDao{}, &ActivityDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	s := NewStore(db)

	uid := uuid.New()
	entry := &AuditEntry{UserID: &uid, Action: ActionProfileCompleted, Details: map[string]any{"eligible": false, "countryCode": "US"}}
	if err := s.InsertAuditLog(ctx, entry); err != nil {
		t.Fatalf("InsertAuditLog() failed: %v", err)
	}
	if entry.ID == 0 {
		t.Fatal("expected audit entry id to be assigned")
	}

	var stored AuditLogDao
	if err := db.NewSelect().Model(&stored).Where("id = ?", entry.ID).Scan(ctx); err != nil {
		t.Fatalf("failed to read audit log: %v", err)
	}
	if stored.Details["countryCode"] != "US" {
		t.Fatalf("expected jsonb details round trip, got %v", stored.Details)
	}

	for _, title := range []string{"First streak day", "Streak day 2", "Streak day 3"} {
		if err := s.InsertActivity(ctx, &Activity{UserID: uid, Type: TypeStreak, Title: title}); err != nil {
			t.Fatalf("InsertActivity() failed: %v", err)
		}
	}
	if err := s.InsertActivity(ctx, &Activity{UserID: uuid.New(), Type: TypeStreak, Title: "other"}); err != nil {
		t.Fatalf("InsertActivity() failed: %v", err)
	}

	got, err := s.ListActivities(ctx, uid, 2)
	if err != nil {
		t.Fatalf("ListActivities() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(got))
	}
	if got[0].Title != "Streak day 3" || got[1].Title != "Streak day 2" {
		t.Fatalf("expected newest first, got %q then %q", got[0].Title, got[1].Title)
	}
}
