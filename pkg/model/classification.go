package model

import "time"

// Classification is a named, optional property bag attached to an entity,
// for example Taxonomy on a glossary or SpineObject on a term.
type Classification struct {
	EntityGUID string     `gorm:"column:entity_guid;primaryKey"`
	Name       string     `gorm:"column:name;primaryKey"`
	Properties Properties `gorm:"column:properties;type:jsonb"`
	Version    int64      `gorm:"column:version;not null"`
	CreatedBy  string     `gorm:"column:created_by"`
	UpdatedBy  string     `gorm:"column:updated_by"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (Classification) TableName() string {
	return "classifications"
}
