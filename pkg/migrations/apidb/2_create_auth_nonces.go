package apidb

import (
	"context"
	"log"

	mghelper "github.com/chainsafe/prediction-miniapp/pkg/pgutil/migrations"
	"github.com/chainsafe/prediction-miniapp/pkg/userstore"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating auth_nonces table...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.NonceDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &userstore.NonceDao{}, "expires_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping auth_nonces table...")
		return mghelper.DropTables(ctx, db, &userstore.NonceDao{})
	})
}
