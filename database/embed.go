// Package database holds the SQL migrations embedded into the binaries.
package database

import "embed"

// Migrations contains the numbered up/down migration files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that holds the files.
const MigrationsDir = "migrations"
