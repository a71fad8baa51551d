package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationURL(t *testing.T) {
	assert.Equal(t, "", MigrationURL(""))
	assert.Equal(t,
		"postgres://u@h/db?x-migrations-table=exchange_schema_migrations",
		MigrationURL("postgres://u@h/db"))
	assert.Equal(t,
		"postgres://u@h/db?sslmode=disable&x-migrations-table=exchange_schema_migrations",
		MigrationURL("postgres://u@h/db?sslmode=disable"))
}

func TestConnect_RequiresURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Connect(Config{})
	assert.EqualError(t, err, "DATABASE_URL environment variable is required")
}
