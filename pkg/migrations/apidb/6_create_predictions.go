package apidb

import (
	"context"
	"log"

	"github.com/chainsafe/prediction-miniapp/pkg/marketstore"
	mghelper "github.com/chainsafe/prediction-miniapp/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating predictions table...")
		_, err := db.NewCreateTable().
			Model((*marketstore.PredictionDao)(nil)).
			IfNotExists().
			ForeignKey(`("market_id") REFERENCES "markets" ("id") ON DELETE CASCADE`).
			ForeignKey(`("user_id") REFERENCES "users" ("id")`).
			Exec(ctx)
		if err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &marketstore.PredictionDao{}, "market_id", "user_id", "status")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping predictions table...")
		return mghelper.DropTables(ctx, db, &marketstore.PredictionDao{})
	})
}
