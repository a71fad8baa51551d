package store

import (
	"context"
	"errors"
	"time"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

// ErrRelationshipNotFound is returned when no relationship has the requested GUID
var ErrRelationshipNotFound = errors.New("relationship not found")

// RelationshipQuery selects relationships. Empty fields do not restrict the result.
type RelationshipQuery struct {
	TypeNames []string
	End1GUID  string
	End2GUID  string
	// EitherEnd matches relationships attached to the entity at either end.
	EitherEnd string

	EffectiveTime time.Time

	Offset int
	Limit  int
}

// RelationshipStore abstracts relationship storage
type RelationshipStore interface {
	CreateRelationship(ctx context.Context, relationship *model.Relationship) error

	// FetchRelationship returns ErrRelationshipNotFound if it doesn't exist.
	FetchRelationship(ctx context.Context, guid string) (*model.Relationship, error)

	UpdateRelationship(ctx context.Context, relationship *model.Relationship, expectedVersion int64) error

	DeleteRelationship(ctx context.Context, guid string) error

	// FindRelationships returns matching relationships, oldest first.
	FindRelationships(ctx context.Context, query RelationshipQuery) ([]model.Relationship, error)

	// DeleteRelationshipsForEntity removes every relationship attached to the
	// entity and returns how many were removed.
	DeleteRelationshipsForEntity(ctx context.Context, entityGUID string) (int64, error)
}
