package apidb

import (
	"context"
	"log"

	"github.com/chainsafe/prediction-miniapp/pkg/activity"
	mghelper "github.com/chainsafe/prediction-miniapp/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating audit_logs table...")
		if err := mghelper.CreateSchema(ctx, db, &activity.AuditLogDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &activity.AuditLogDao{}, "user_id", "action", "created_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping audit_logs table...")
		return mghelper.DropTables(ctx, db, &activity.AuditLogDao{})
	})
}
