package loader

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
)

type mockAssetManagers struct {
	mock.Mock
}

func (m *mockAssetManagers) CreateAssetManager(ctx context.Context, userID string, props *exchange.AssetManagerProperties) (string, error) {
	args := m.Called(ctx, userID, props)
	return args.String(0), args.Error(1)
}

func (m *mockAssetManagers) GetAssetManagerGUID(ctx context.Context, userID, qualifiedName string) (string, error) {
	args := m.Called(ctx, userID, qualifiedName)
	return args.String(0), args.Error(1)
}

func (m *mockAssetManagers) ResolveExternalIdentifier(ctx context.Context, userID, assetManagerGUID, identifier string) (string, error) {
	args := m.Called(ctx, userID, assetManagerGUID, identifier)
	return args.String(0), args.Error(1)
}

type mockGlossaries struct {
	mock.Mock
}

func (m *mockGlossaries) CreateGlossary(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, props *exchange.GlossaryProperties) (string, error) {
	args := m.Called(ctx, userID, correlation, assetManagerIsHome, props)
	return args.String(0), args.Error(1)
}

func (m *mockGlossaries) UpdateGlossary(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, glossaryGUID string, props *exchange.GlossaryProperties, isMergeUpdate bool) error {
	return m.Called(ctx, userID, correlation, glossaryGUID, props, isMergeUpdate).Error(0)
}

func (m *mockGlossaries) CreateGlossaryCategory(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, glossaryGUID string, props *exchange.GlossaryCategoryProperties) (string, error) {
	args := m.Called(ctx, userID, correlation, assetManagerIsHome, glossaryGUID, props)
	return args.String(0), args.Error(1)
}

func (m *mockGlossaries) UpdateGlossaryCategory(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, categoryGUID string, props *exchange.GlossaryCategoryProperties, isMergeUpdate bool) error {
	return m.Called(ctx, userID, correlation, categoryGUID, props, isMergeUpdate).Error(0)
}

func (m *mockGlossaries) SetupCategoryParent(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, parentGUID, childGUID string, props *exchange.RelationshipProperties) error {
	return m.Called(ctx, userID, correlation, assetManagerIsHome, parentGUID, childGUID, props).Error(0)
}

func (m *mockGlossaries) CreateGlossaryTerm(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, glossaryGUID string, props *exchange.GlossaryTermProperties) (string, error) {
	args := m.Called(ctx, userID, correlation, assetManagerIsHome, glossaryGUID, props)
	return args.String(0), args.Error(1)
}

func (m *mockGlossaries) CreateControlledGlossaryTerm(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, glossaryGUID string, props *exchange.GlossaryTermProperties, initialStatus exchange.GlossaryTermStatus) (string, error) {
	args := m.Called(ctx, userID, correlation, assetManagerIsHome, glossaryGUID, props, initialStatus)
	return args.String(0), args.Error(1)
}

func (m *mockGlossaries) UpdateGlossaryTerm(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, termGUID string, props *exchange.GlossaryTermProperties, isMergeUpdate bool) error {
	return m.Called(ctx, userID, correlation, termGUID, props, isMergeUpdate).Error(0)
}

func (m *mockGlossaries) UpdateGlossaryTermStatus(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, termGUID string, status exchange.GlossaryTermStatus) error {
	return m.Called(ctx, userID, correlation, termGUID, status).Error(0)
}

func (m *mockGlossaries) SetupTermCategory(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, categoryGUID, termGUID string, props *exchange.GlossaryTermCategorization) error {
	return m.Called(ctx, userID, correlation, assetManagerIsHome, categoryGUID, termGUID, props).Error(0)
}

type mockDataAssets struct {
	mock.Mock
}

func (m *mockDataAssets) CreateDataAsset(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, props *exchange.DataAssetProperties) (string, error) {
	args := m.Called(ctx, userID, correlation, assetManagerIsHome, props)
	return args.String(0), args.Error(1)
}

func (m *mockDataAssets) UpdateDataAsset(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetGUID string, props *exchange.DataAssetProperties, isMergeUpdate bool) error {
	return m.Called(ctx, userID, correlation, assetGUID, props, isMergeUpdate).Error(0)
}

func (m *mockDataAssets) PublishDataAsset(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetGUID string) error {
	return m.Called(ctx, userID, correlation, assetGUID).Error(0)
}

func (m *mockDataAssets) WithdrawDataAsset(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetGUID string) error {
	return m.Called(ctx, userID, correlation, assetGUID).Error(0)
}
