package gorm

import (
	"time"

	"gorm.io/gorm"
)

func whereEffective(tx *gorm.DB, at time.Time) *gorm.DB {
	if at.IsZero() {
		return tx
	}
	return tx.Where(
		"(effective_from IS NULL OR effective_from <= ?) AND (effective_to IS NULL OR effective_to > ?)",
		at, at,
	)
}

func page(tx *gorm.DB, offset, limit int) *gorm.DB {
	if offset > 0 {
		tx = tx.Offset(offset)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	return tx
}
