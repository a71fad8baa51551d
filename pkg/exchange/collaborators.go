package exchange

import (
	"context"
	"time"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

// EntityHandler is the generic handler the facades delegate to.
type EntityHandler interface {
	CreateEntity(ctx context.Context, userID string, req handler.EntityRequest, home handler.Home) (string, error)
	CreateEntityFromTemplate(ctx context.Context, userID, templateGUID, templateType string, req handler.EntityRequest, home handler.Home) (string, error)
	UpdateEntity(ctx context.Context, userID, guid, expectedType string, req handler.EntityRequest, isMergeUpdate bool, caller handler.Home) error
	UpdateEntityStatus(ctx context.Context, userID, guid, expectedType string, status model.InstanceStatus, caller handler.Home) error
	DeleteEntity(ctx context.Context, userID, guid, expectedType string, caller handler.Home) error
	GetEntity(ctx context.Context, userID, guid, expectedType string, effectiveTime time.Time) (*model.Entity, error)
	FindEntities(ctx context.Context, userID string, q handler.Query) ([]model.Entity, error)
	GetEntitiesByName(ctx context.Context, userID, typeName, name string, startFrom, pageSize int, effectiveTime time.Time) ([]model.Entity, error)
	GetEntitiesByGUID(ctx context.Context, userID, typeName string, guids []string, effectiveTime time.Time) ([]model.Entity, error)

	ClassifyEntity(ctx context.Context, userID, guid, expectedType, name string, props model.Properties, caller handler.Home) error
	DeclassifyEntity(ctx context.Context, userID, guid, expectedType, name string, caller handler.Home) error

	LinkEntities(ctx context.Context, userID string, req handler.LinkRequest) (string, error)
	UpdateRelationship(ctx context.Context, userID, guid, expectedType string, upd handler.RelationshipUpdate, isMergeUpdate bool, caller handler.Home) error
	UpdateRelationshipBetween(ctx context.Context, userID, typeName, end1GUID, end2GUID string, upd handler.RelationshipUpdate, isMergeUpdate bool, caller handler.Home) error
	UnlinkEntities(ctx context.Context, userID, typeName, end1GUID, end2GUID string, caller handler.Home) error
	DeleteRelationship(ctx context.Context, userID, guid, expectedType string, caller handler.Home) error
	GetRelationship(ctx context.Context, userID, guid, expectedType string) (*model.Relationship, error)
	GetRelatedEntities(ctx context.Context, userID, guid, startingType string, q handler.RelatedQuery) ([]handler.RelatedEntity, error)
}

// ExternalIdentifierHandler maintains the asset manager correlations.
type ExternalIdentifierHandler interface {
	SetUpExternalIdentifier(ctx context.Context, userID, elementGUID, elementType string, ext model.ExternalIdentifier) error
	ValidateExternalIdentifier(ctx context.Context, userID, elementGUID, elementType, scopeGUID, identifier string) error
	ConfirmSynchronization(ctx context.Context, userID, elementGUID, elementType string, ext model.ExternalIdentifier) error
	RemoveExternalIdentifier(ctx context.Context, userID, elementGUID, scopeGUID, identifier string) error
	GetExternalIdentifiers(ctx context.Context, userID, elementGUID, scopeGUID string) ([]model.ExternalIdentifier, error)
	GetElementGUIDsForScope(ctx context.Context, userID, scopeGUID string, elementTypes []string, startFrom, pageSize int) ([]string, error)
	ResolveElementGUID(ctx context.Context, userID, scopeGUID, identifier string) (string, error)
}

var (
	_ EntityHandler             = (*handler.EntityHandler)(nil)
	_ ExternalIdentifierHandler = (*handler.ExternalIdentifierHandler)(nil)
)
