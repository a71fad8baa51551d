// Package gorm implements the store interfaces from pkg/server/store on
// PostgreSQL.
//
// Entity properties are persisted as JSONB. Unique violations reported by
// the driver surface as the store package's conflict errors.
package gorm
