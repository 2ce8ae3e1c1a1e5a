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
		log.Println("creating users table...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.UserDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &userstore.UserDao{}, "country_code", "last_active_date")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping users table...")
		return mghelper.DropTables(ctx, db, &userstore.UserDao{})
	})
}
