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
		log.Println("creating transactions table...")
		_, err := db.NewCreateTable().
			Model((*marketstore.TransactionDao)(nil)).
			IfNotExists().
			ForeignKey(`("user_id") REFERENCES "users" ("id")`).
			ForeignKey(`("market_id") REFERENCES "markets" ("id") ON DELETE SET NULL`).
			ForeignKey(`("prediction_id") REFERENCES "predictions" ("id") ON DELETE SET NULL`).
			Exec(ctx)
		if err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &marketstore.TransactionDao{}, "user_id", "type")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping transactions table...")
		return mghelper.DropTables(ctx, db, &marketstore.TransactionDao{})
	})
}
