package identitydb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/canton-identity/pkg/pgutil/migrations"
	"github.com/chainsafe/canton-identity/pkg/registry"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating participants table...")
		if err := mghelper.CreateSchema(ctx, db, &registry.ParticipantDao{}); err != nil {
			return err
		}
		// Create indexes
		return mghelper.CreateModelIndexes(ctx, db, &registry.ParticipantDao{}, "id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping participants table...")
		return mghelper.DropTables(ctx, db, &registry.ParticipantDao{})
	})
}
