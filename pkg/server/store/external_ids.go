package store

import (
	"context"
	"errors"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

// ErrExternalIDNotFound is returned when an identifier is not known in a scope
var ErrExternalIDNotFound = errors.New("external identifier not found")

// ErrExternalIDExists is returned when an identifier is already mapped in a scope
var ErrExternalIDExists = errors.New("external identifier already exists")

// ExternalIDStore abstracts storage of external identifier correlations
type ExternalIDStore interface {
	// CreateExternalID returns ErrExternalIDExists when the scope already
	// maps the identifier.
	CreateExternalID(ctx context.Context, externalID *model.ExternalIdentifier) error

	// FetchExternalID returns ErrExternalIDNotFound if the scope doesn't map
	// the identifier.
	FetchExternalID(ctx context.Context, scopeGUID, identifier string) (*model.ExternalIdentifier, error)

	// ListForElement returns the identifiers of an element. An empty scope
	// returns the identifiers from every scope.
	ListForElement(ctx context.Context, elementGUID, scopeGUID string) ([]model.ExternalIdentifier, error)

	// ListForScope pages through the identifiers of a scope, optionally
	// restricted to elements of the given types.
	ListForScope(ctx context.Context, scopeGUID string, elementTypes []string, offset, limit int) ([]model.ExternalIdentifier, error)

	UpdateExternalID(ctx context.Context, externalID *model.ExternalIdentifier) error

	DeleteExternalID(ctx context.Context, scopeGUID, identifier string) error

	// DeleteForElement removes every identifier of an element.
	DeleteForElement(ctx context.Context, elementGUID string) error
}
