// Package db holds the SQL migrations of the exchange repository.
package db

import "embed"

// Migrations contains migrations/*.sql for golang-migrate's iofs source.
//
//go:embed migrations/*.sql
var Migrations embed.FS
