package model

import "time"

// Relationship links two entities. End 1 and end 2 are fixed by the
// relationship type.
type Relationship struct {
	GUID       string         `gorm:"column:guid;primaryKey"`
	TypeName   string         `gorm:"column:type_name;not null"`
	End1GUID   string         `gorm:"column:end1_guid;not null"`
	End2GUID   string         `gorm:"column:end2_guid;not null"`
	Status     InstanceStatus `gorm:"column:status;not null"`
	Version    int64          `gorm:"column:version;not null"`
	Properties Properties     `gorm:"column:properties;type:jsonb"`

	HomeCollectionID   string `gorm:"column:home_collection_id"`
	HomeCollectionName string `gorm:"column:home_collection_name"`

	CreatedBy     string     `gorm:"column:created_by"`
	UpdatedBy     string     `gorm:"column:updated_by"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	EffectiveFrom *time.Time `gorm:"column:effective_from"`
	EffectiveTo   *time.Time `gorm:"column:effective_to"`
}

func (Relationship) TableName() string {
	return "relationships"
}

func (r *Relationship) IsEffective(t time.Time) bool {
	return effectiveAt(r.EffectiveFrom, r.EffectiveTo, t)
}

// OtherEnd returns the GUID at the opposite end from guid.
func (r *Relationship) OtherEnd(guid string) string {
	if r.End1GUID == guid {
		return r.End2GUID
	}
	return r.End1GUID
}
