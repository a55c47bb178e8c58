// Package schemas provides embedded SQL migration files, one directory per SQL dialect.
package schemas

import "embed"

// Migrations contains all SQL migration files.
//
//go:embed migrations/sqlite3/*.sql migrations/mysql/*.sql
var Migrations embed.FS
