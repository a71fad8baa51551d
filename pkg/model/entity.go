package model

import "time"

// Entity is a metadata element stored in the repository: a glossary, term,
// asset, comment, asset manager and so on.
type Entity struct {
	GUID          string         `gorm:"column:guid;primaryKey"`
	TypeName      string         `gorm:"column:type_name;not null"`
	QualifiedName string         `gorm:"column:qualified_name"`
	DisplayName   string         `gorm:"column:display_name"`
	Status        InstanceStatus `gorm:"column:status;not null"`
	Version       int64          `gorm:"column:version;not null"`
	Properties    Properties     `gorm:"column:properties;type:jsonb"`

	// Home metadata collection. Empty for elements owned by the local
	// repository, set to the asset manager GUID for externally homed elements.
	HomeCollectionID   string `gorm:"column:home_collection_id"`
	HomeCollectionName string `gorm:"column:home_collection_name"`

	CreatedBy     string     `gorm:"column:created_by"`
	UpdatedBy     string     `gorm:"column:updated_by"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	EffectiveFrom *time.Time `gorm:"column:effective_from"`
	EffectiveTo   *time.Time `gorm:"column:effective_to"`

	Classifications []Classification `gorm:"-"`
}

func (Entity) TableName() string {
	return "entities"
}

// IsEffective reports whether the element is effective at t. A zero t
// matches every element.
func (e *Entity) IsEffective(t time.Time) bool {
	return effectiveAt(e.EffectiveFrom, e.EffectiveTo, t)
}

// Classification returns the named classification or nil.
func (e *Entity) Classification(name string) *Classification {
	for i := range e.Classifications {
		if e.Classifications[i].Name == name {
			return &e.Classifications[i]
		}
	}
	return nil
}

func effectiveAt(from, to *time.Time, t time.Time) bool {
	if t.IsZero() {
		return true
	}
	if from != nil && from.After(t) {
		return false
	}
	if to != nil && !to.After(t) {
		return false
	}
	return true
}
