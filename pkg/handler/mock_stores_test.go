package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/events"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

// MockEntityStore implements store.EntityStore for testing using testify/mock
type MockEntityStore struct {
	mock.Mock
}

func (m *MockEntityStore) CreateEntity(ctx context.Context, entity *model.Entity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockEntityStore) FetchEntity(ctx context.Context, guid string) (*model.Entity, error) {
	args := m.Called(ctx, guid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entity), args.Error(1)
}

func (m *MockEntityStore) UpdateEntity(ctx context.Context, entity *model.Entity, expectedVersion int64) error {
	args := m.Called(ctx, entity, expectedVersion)
	return args.Error(0)
}

func (m *MockEntityStore) DeleteEntity(ctx context.Context, guid string) error {
	args := m.Called(ctx, guid)
	return args.Error(0)
}

func (m *MockEntityStore) FindEntities(ctx context.Context, query store.EntityQuery) ([]model.Entity, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entity), args.Error(1)
}

func (m *MockEntityStore) SaveClassification(ctx context.Context, classification *model.Classification) error {
	args := m.Called(ctx, classification)
	return args.Error(0)
}

func (m *MockEntityStore) DeleteClassification(ctx context.Context, entityGUID, name string) error {
	args := m.Called(ctx, entityGUID, name)
	return args.Error(0)
}

// MockRelationshipStore implements store.RelationshipStore for testing using testify/mock
type MockRelationshipStore struct {
	mock.Mock
}

func (m *MockRelationshipStore) CreateRelationship(ctx context.Context, relationship *model.Relationship) error {
	args := m.Called(ctx, relationship)
	return args.Error(0)
}

func (m *MockRelationshipStore) FetchRelationship(ctx context.Context, guid string) (*model.Relationship, error) {
	args := m.Called(ctx, guid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Relationship), args.Error(1)
}

func (m *MockRelationshipStore) UpdateRelationship(ctx context.Context, relationship *model.Relationship, expectedVersion int64) error {
	args := m.Called(ctx, relationship, expectedVersion)
	return args.Error(0)
}

func (m *MockRelationshipStore) DeleteRelationship(ctx context.Context, guid string) error {
	args := m.Called(ctx, guid)
	return args.Error(0)
}

func (m *MockRelationshipStore) FindRelationships(ctx context.Context, query store.RelationshipQuery) ([]model.Relationship, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Relationship), args.Error(1)
}

func (m *MockRelationshipStore) DeleteRelationshipsForEntity(ctx context.Context, entityGUID string) (int64, error) {
	args := m.Called(ctx, entityGUID)
	return args.Get(0).(int64), args.Error(1)
}

// MockExternalIDStore implements store.ExternalIDStore for testing using testify/mock
type MockExternalIDStore struct {
	mock.Mock
}

func (m *MockExternalIDStore) CreateExternalID(ctx context.Context, externalID *model.ExternalIdentifier) error {
	args := m.Called(ctx, externalID)
	return args.Error(0)
}

func (m *MockExternalIDStore) FetchExternalID(ctx context.Context, scopeGUID, identifier string) (*model.ExternalIdentifier, error) {
	args := m.Called(ctx, scopeGUID, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExternalIdentifier), args.Error(1)
}

func (m *MockExternalIDStore) ListForElement(ctx context.Context, elementGUID, scopeGUID string) ([]model.ExternalIdentifier, error) {
	args := m.Called(ctx, elementGUID, scopeGUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExternalIdentifier), args.Error(1)
}

func (m *MockExternalIDStore) ListForScope(ctx context.Context, scopeGUID string, elementTypes []string, offset, limit int) ([]model.ExternalIdentifier, error) {
	args := m.Called(ctx, scopeGUID, elementTypes, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExternalIdentifier), args.Error(1)
}

func (m *MockExternalIDStore) UpdateExternalID(ctx context.Context, externalID *model.ExternalIdentifier) error {
	args := m.Called(ctx, externalID)
	return args.Error(0)
}

func (m *MockExternalIDStore) DeleteExternalID(ctx context.Context, scopeGUID, identifier string) error {
	args := m.Called(ctx, scopeGUID, identifier)
	return args.Error(0)
}

func (m *MockExternalIDStore) DeleteForElement(ctx context.Context, elementGUID string) error {
	args := m.Called(ctx, elementGUID)
	return args.Error(0)
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []events.Type {
	var result []events.Type
	for _, e := range p.events {
		result = append(result, e.Type)
	}
	return result
}
