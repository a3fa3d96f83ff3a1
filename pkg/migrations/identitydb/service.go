// Package identitydb holds all the migrations for the identity database
package identitydb

import "github.com/uptrace/bun/migrate"

// Migrations is the registry of identity database migrations, filled in by init functions
var Migrations = migrate.NewMigrations()
