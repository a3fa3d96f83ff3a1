package identitydb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/canton-identity/pkg/datastore"
	mghelper "github.com/chainsafe/canton-identity/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating data_objects table...")
		return mghelper.CreateSchema(ctx, db, &datastore.ObjectDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping data_objects table...")
		return mghelper.DropTables(ctx, db, &datastore.ObjectDao{})
	})
}
