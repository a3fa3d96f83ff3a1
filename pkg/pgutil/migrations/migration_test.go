package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/canton-identity/pkg/config"
	"github.com/chainsafe/canton-identity/pkg/pgutil"
)

type testObjectDao struct {
	bun.BaseModel `bun:"table:test_objects"`
	ID            int64  `bun:",pk,autoincrement"`
	Collection    string `bun:",notnull,type:varchar(100)"`
	Participant   string `bun:",nullzero"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg)
	if err == nil {
		_ = db.Close()
		t.Error("ConnectDB() should fail with invalid host")
	}
}

func TestCreateSchemaAndDropTables(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testObjectDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "test_objects")

	if err := CreateSchema(ctx, db, &testObjectDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &testObjectDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "test_objects")

	if err := DropTables(ctx, db, &testObjectDao{}); err != nil {
		t.Errorf("DropTables() second call failed: %v", err)
	}
}

func TestTruncateTables(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testObjectDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	for _, name := range []string{"$sysidentities", "$sysaudit"} {
		if _, err := db.NewInsert().Model(&testObjectDao{Collection: name}).Exec(ctx); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	pgutil.AssertRowCount(t, db, "test_objects", 2)

	if err := TruncateTables(ctx, db, &testObjectDao{}); err != nil {
		t.Fatalf("TruncateTables() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "test_objects", 0)
	pgutil.AssertTableExists(t, db, "test_objects")
}

func TestCreateAndDropModelIndexes(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testObjectDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}

	if err := CreateModelIndexes(ctx, db, &testObjectDao{}, "collection", "participant"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_test_objects_collection")
	pgutil.AssertIndexExists(t, db, "idx_test_objects_participant")

	if err := DropModelIndexes(ctx, db, &testObjectDao{}, "collection", "participant"); err != nil {
		t.Fatalf("DropModelIndexes() failed: %v", err)
	}

	var exists bool
	query := `SELECT EXISTS (SELECT FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)`
	if err := db.NewRaw(query, "idx_test_objects_collection").Scan(ctx, &exists); err != nil {
		t.Fatalf("failed to check index: %v", err)
	}
	if exists {
		t.Error("idx_test_objects_collection should be dropped")
	}
}

func TestRunMigrations(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	ms := migrate.NewMigrations()
	registerTestMigrations(ms)
	migrator := migrate.NewMigrator(db, ms)

	if err := RunMigrations(ctx, migrator); err == nil {
		t.Fatal("expected error without a command")
	}
	if err := RunMigrations(ctx, migrator, "sideways"); err == nil {
		t.Fatal("expected error for unknown command")
	}

	for _, cmd := range []string{"init", "up", "status"} {
		if err := RunMigrations(ctx, migrator, cmd); err != nil {
			t.Fatalf("RunMigrations(%s) failed: %v", cmd, err)
		}
	}
	pgutil.AssertTableExists(t, db, "test_objects")

	if err := RunMigrations(ctx, migrator, "down"); err != nil {
		t.Fatalf("RunMigrations(down) failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "test_objects")
}
