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
		log.Println("creating markets table...")
		_, err := db.NewCreateTable().
			Model((*marketstore.MarketDao)(nil)).
			IfNotExists().
			ForeignKey(`("creator_id") REFERENCES "users" ("id")`).
			Exec(ctx)
		if err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &marketstore.MarketDao{}, "status", "category", "creator_id", "end_date")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping markets table...")
		return mghelper.DropTables(ctx, db, &marketstore.MarketDao{})
	})
}
