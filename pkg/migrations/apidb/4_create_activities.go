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
		log.Println("creating activities table...")
		if err := mghelper.CreateSchema(ctx, db, &activity.ActivityDao{}); err != nil {
			return err
		}
		// Feed reads are per user, newest first.
		_, err := db.NewCreateIndex().
			Model((*activity.ActivityDao)(nil)).
			Index("idx_activities_user_id_created_at").
			ColumnExpr("user_id, created_at DESC").
			IfNotExists().
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping activities table...")
		return mghelper.DropTables(ctx, db, &activity.ActivityDao{})
	})
}
