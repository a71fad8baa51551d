package store

import (
	"context"
	"errors"
	"time"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

// ErrEntityNotFound is returned when no entity has the requested GUID
var ErrEntityNotFound = errors.New("entity not found")

// ErrVersionConflict is returned when an update was based on a stale version
var ErrVersionConflict = errors.New("element was changed by another request")

// ErrInvalidSearch is returned when the database rejects a search expression
var ErrInvalidSearch = errors.New("invalid search expression")

// ErrClassificationNotFound is returned when declassifying an entity that
// does not carry the classification
var ErrClassificationNotFound = errors.New("classification not found")

// EntityQuery selects entities. Empty fields do not restrict the result.
type EntityQuery struct {
	TypeNames []string
	GUIDs     []string

	// QualifiedName matches the qualified name exactly.
	QualifiedName string
	// Name matches either the qualified name or the display name exactly.
	Name string
	// Search is a regular expression matched case-insensitively against the
	// qualified name and the display name.
	Search string

	Statuses      []model.InstanceStatus
	EffectiveTime time.Time

	Offset int
	Limit  int
}

// EntityStore abstracts entity and classification storage
type EntityStore interface {
	// CreateEntity stores a new entity and its classifications.
	CreateEntity(ctx context.Context, entity *model.Entity) error

	// FetchEntity returns the entity with its classifications.
	// Returns ErrEntityNotFound if it doesn't exist.
	FetchEntity(ctx context.Context, guid string) (*model.Entity, error)

	// UpdateEntity replaces the mutable columns of an entity as long as the
	// stored version still equals expectedVersion.
	UpdateEntity(ctx context.Context, entity *model.Entity, expectedVersion int64) error

	// DeleteEntity removes the entity and its classifications.
	DeleteEntity(ctx context.Context, guid string) error

	// FindEntities returns the entities matching the query ordered by
	// qualified name.
	FindEntities(ctx context.Context, query EntityQuery) ([]model.Entity, error)

	// SaveClassification adds or replaces a classification.
	SaveClassification(ctx context.Context, classification *model.Classification) error

	// DeleteClassification removes a classification.
	// Returns ErrClassificationNotFound if the entity doesn't carry it.
	DeleteClassification(ctx context.Context, entityGUID, name string) error
}
