package migrations

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// The migrator derives migration names from the registering file, hence this file's name.
func registerTestMigrations(ms *migrate.Migrations) {
	ms.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return CreateSchema(ctx, db, &testObjectDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		return DropTables(ctx, db, &testObjectDao{})
	})
}
