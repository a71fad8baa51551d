// Package exchangetest provides testify mocks of the handlers the exchange
// facades delegate to.
package exchangetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

// EntityHandler mocks the generic entity handler.
type EntityHandler struct {
	mock.Mock
}

func (m *EntityHandler) CreateEntity(ctx context.Context, userID string, req handler.EntityRequest, home handler.Home) (string, error) {
	args := m.Called(ctx, userID, req, home)
	return args.String(0), args.Error(1)
}

func (m *EntityHandler) CreateEntityFromTemplate(ctx context.Context, userID, templateGUID, templateType string, req handler.EntityRequest, home handler.Home) (string, error) {
	args := m.Called(ctx, userID, templateGUID, templateType, req, home)
	return args.String(0), args.Error(1)
}

func (m *EntityHandler) UpdateEntity(ctx context.Context, userID, guid, expectedType string, req handler.EntityRequest, isMergeUpdate bool, caller handler.Home) error {
	args := m.Called(ctx, userID, guid, expectedType, req, isMergeUpdate, caller)
	return args.Error(0)
}

func (m *EntityHandler) UpdateEntityStatus(ctx context.Context, userID, guid, expectedType string, status model.InstanceStatus, caller handler.Home) error {
	args := m.Called(ctx, userID, guid, expectedType, status, caller)
	return args.Error(0)
}

func (m *EntityHandler) DeleteEntity(ctx context.Context, userID, guid, expectedType string, caller handler.Home) error {
	args := m.Called(ctx, userID, guid, expectedType, caller)
	return args.Error(0)
}

func (m *EntityHandler) GetEntity(ctx context.Context, userID, guid, expectedType string, effectiveTime time.Time) (*model.Entity, error) {
	args := m.Called(ctx, userID, guid, expectedType, effectiveTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entity), args.Error(1)
}

func (m *EntityHandler) FindEntities(ctx context.Context, userID string, q handler.Query) ([]model.Entity, error) {
	args := m.Called(ctx, userID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entity), args.Error(1)
}

func (m *EntityHandler) GetEntitiesByName(ctx context.Context, userID, typeName, name string, startFrom, pageSize int, effectiveTime time.Time) ([]model.Entity, error) {
	args := m.Called(ctx, userID, typeName, name, startFrom, pageSize, effectiveTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entity), args.Error(1)
}

func (m *EntityHandler) GetEntitiesByGUID(ctx context.Context, userID, typeName string, guids []string, effectiveTime time.Time) ([]model.Entity, error) {
	args := m.Called(ctx, userID, typeName, guids, effectiveTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entity), args.Error(1)
}

func (m *EntityHandler) ClassifyEntity(ctx context.Context, userID, guid, expectedType, name string, props model.Properties, caller handler.Home) error {
	args := m.Called(ctx, userID, guid, expectedType, name, props, caller)
	return args.Error(0)
}

func (m *EntityHandler) DeclassifyEntity(ctx context.Context, userID, guid, expectedType, name string, caller handler.Home) error {
	args := m.Called(ctx, userID, guid, expectedType, name, caller)
	return args.Error(0)
}

func (m *EntityHandler) LinkEntities(ctx context.Context, userID string, req handler.LinkRequest) (string, error) {
	args := m.Called(ctx, userID, req)
	return args.String(0), args.Error(1)
}

func (m *EntityHandler) UpdateRelationship(ctx context.Context, userID, guid, expectedType string, upd handler.RelationshipUpdate, isMergeUpdate bool, caller handler.Home) error {
	args := m.Called(ctx, userID, guid, expectedType, upd, isMergeUpdate, caller)
	return args.Error(0)
}

func (m *EntityHandler) UpdateRelationshipBetween(ctx context.Context, userID, typeName, end1GUID, end2GUID string, upd handler.RelationshipUpdate, isMergeUpdate bool, caller handler.Home) error {
	args := m.Called(ctx, userID, typeName, end1GUID, end2GUID, upd, isMergeUpdate, caller)
	return args.Error(0)
}

func (m *EntityHandler) UnlinkEntities(ctx context.Context, userID, typeName, end1GUID, end2GUID string, caller handler.Home) error {
	args := m.Called(ctx, userID, typeName, end1GUID, end2GUID, caller)
	return args.Error(0)
}

func (m *EntityHandler) DeleteRelationship(ctx context.Context, userID, guid, expectedType string, caller handler.Home) error {
	args := m.Called(ctx, userID, guid, expectedType, caller)
	return args.Error(0)
}

func (m *EntityHandler) GetRelationship(ctx context.Context, userID, guid, expectedType string) (*model.Relationship, error) {
	args := m.Called(ctx, userID, guid, expectedType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Relationship), args.Error(1)
}

func (m *EntityHandler) GetRelatedEntities(ctx context.Context, userID, guid, startingType string, q handler.RelatedQuery) ([]handler.RelatedEntity, error) {
	args := m.Called(ctx, userID, guid, startingType, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]handler.RelatedEntity), args.Error(1)
}

// ExternalIdentifierHandler mocks the external identifier handler.
type ExternalIdentifierHandler struct {
	mock.Mock
}

func (m *ExternalIdentifierHandler) SetUpExternalIdentifier(ctx context.Context, userID, elementGUID, elementType string, ext model.ExternalIdentifier) error {
	args := m.Called(ctx, userID, elementGUID, elementType, ext)
	return args.Error(0)
}

func (m *ExternalIdentifierHandler) ValidateExternalIdentifier(ctx context.Context, userID, elementGUID, elementType, scopeGUID, identifier string) error {
	args := m.Called(ctx, userID, elementGUID, elementType, scopeGUID, identifier)
	return args.Error(0)
}

func (m *ExternalIdentifierHandler) ConfirmSynchronization(ctx context.Context, userID, elementGUID, elementType string, ext model.ExternalIdentifier) error {
	args := m.Called(ctx, userID, elementGUID, elementType, ext)
	return args.Error(0)
}

func (m *ExternalIdentifierHandler) RemoveExternalIdentifier(ctx context.Context, userID, elementGUID, scopeGUID, identifier string) error {
	args := m.Called(ctx, userID, elementGUID, scopeGUID, identifier)
	return args.Error(0)
}

func (m *ExternalIdentifierHandler) GetExternalIdentifiers(ctx context.Context, userID, elementGUID, scopeGUID string) ([]model.ExternalIdentifier, error) {
	args := m.Called(ctx, userID, elementGUID, scopeGUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExternalIdentifier), args.Error(1)
}

func (m *ExternalIdentifierHandler) GetElementGUIDsForScope(ctx context.Context, userID, scopeGUID string, elementTypes []string, startFrom, pageSize int) ([]string, error) {
	args := m.Called(ctx, userID, scopeGUID, elementTypes, startFrom, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *ExternalIdentifierHandler) ResolveElementGUID(ctx context.Context, userID, scopeGUID, identifier string) (string, error) {
	args := m.Called(ctx, userID, scopeGUID, identifier)
	return args.String(0), args.Error(1)
}
