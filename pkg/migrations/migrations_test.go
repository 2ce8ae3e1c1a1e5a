package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/prediction-miniapp/pkg/migrations/apidb"
	mghelper "github.com/chainsafe/prediction-miniapp/pkg/pgutil"
)

var expectedTables = []string{
	"users",
	"auth_nonces",
	"audit_logs",
	"activities",
	"markets",
	"predictions",
	"transactions",
	"comments",
}

func migrateUp(t *testing.T) (context.Context, *bun.DB, *migrate.Migrator, func()) {
	t.Helper()
	mghelper.RequireDockerAccess(t)

	db, cleanup := mghelper.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		cleanup()
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		cleanup()
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range append(expectedTables, "bun_migrations") {
		mghelper.AssertTableExists(t, db, table)
	}
	return ctx, db, migrator, cleanup
}

func TestAPIDBMigrations_Apply(t *testing.T) {
	_, db, _, cleanup := migrateUp(t)
	defer cleanup()

	mghelper.AssertIndexExists(t, db, "idx_users_country_code")
	mghelper.AssertIndexExists(t, db, "idx_auth_nonces_expires_at")
	mghelper.AssertIndexExists(t, db, "idx_audit_logs_user_id")
	mghelper.AssertIndexExists(t, db, "idx_activities_user_id_created_at")
	mghelper.AssertIndexExists(t, db, "idx_markets_status")
	mghelper.AssertIndexExists(t, db, "idx_predictions_market_id")
	mghelper.AssertIndexExists(t, db, "idx_transactions_user_id")
	mghelper.AssertIndexExists(t, db, "idx_comments_market_id")
}

func TestMigrations_Idempotency(t *testing.T) {
	ctx, db, migrator, cleanup := migrateUp(t)
	defer cleanup()

	// Run migrations second time - should not fail
	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Error("Expected no new migrations on second run")
	}

	mghelper.AssertTableExists(t, db, "users")
	mghelper.AssertTableExists(t, db, "markets")
}

func TestMigrations_Rollback(t *testing.T) {
	ctx, db, migrator, cleanup := migrateUp(t)
	defer cleanup()

	// All migrations ran in one group, so one rollback drops every table.
	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected rollback to process a migration")
	}

	for _, table := range expectedTables {
		mghelper.AssertTableNotExists(t, db, table)
	}
}
