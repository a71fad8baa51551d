package model

import "time"

// ExternalIdentifier correlates an identifier used by an asset manager
// (the scope) with the GUID of a repository element.
type ExternalIdentifier struct {
	ID               string     `gorm:"column:id;primaryKey"`
	ScopeGUID        string     `gorm:"column:scope_guid;not null"`
	ScopeName        string     `gorm:"column:scope_name"`
	Identifier       string     `gorm:"column:identifier;not null"`
	ElementGUID      string     `gorm:"column:element_guid;not null"`
	ElementType      string     `gorm:"column:element_type;not null"`
	IdentifierName   string     `gorm:"column:identifier_name"`
	IdentifierUsage  string     `gorm:"column:identifier_usage"`
	IdentifierSource string     `gorm:"column:identifier_source"`
	KeyPattern       int        `gorm:"column:key_pattern"`
	MappingProps     StringMap  `gorm:"column:mapping_properties;type:jsonb"`
	SyncDirection    int        `gorm:"column:sync_direction"`
	SyncDescription  string     `gorm:"column:sync_description"`
	LastSynchronized *time.Time `gorm:"column:last_synchronized"`

	CreatedBy string    `gorm:"column:created_by"`
	UpdatedBy string    `gorm:"column:updated_by"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
	Version   int64     `gorm:"column:version;not null"`
}

func (ExternalIdentifier) TableName() string {
	return "external_identifiers"
}
