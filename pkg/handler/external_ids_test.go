package handler

import (
	"context"
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

func newExternalIDFixture(t *testing.T) (*ExternalIdentifierHandler, *MockExternalIDStore, *MockEntityStore) {
	externalIDs := &MockExternalIDStore{}
	entities := &MockEntityStore{}
	h := NewExternalIdentifierHandler(externalIDs, entities,
		WithClock(func() time.Time { return testNow }),
		WithGUIDGenerator(func() string { return "ext-1" }),
		WithMaxPageSize(50),
	)
	t.Cleanup(func() {
		externalIDs.AssertExpectations(t)
		entities.AssertExpectations(t)
	})
	return h, externalIDs, entities
}

var assetManager = &model.Entity{GUID: "am-1", TypeName: TypeAssetManager, QualifiedName: "AssetManager:catalog"}

func TestSetUpExternalIdentifier(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the mapping", func(t *testing.T) {
		h, externalIDs, entities := newExternalIDFixture(t)
		entities.On("FetchEntity", mock.Anything, "am-1").Return(assetManager, nil).Once()
		externalIDs.On("FetchExternalID", mock.Anything, "am-1", "SALES-01").Return(nil, store.ErrExternalIDNotFound).Once()
		externalIDs.On("CreateExternalID", mock.Anything, mock.MatchedBy(func(ext *model.ExternalIdentifier) bool {
			return ext.ID == "ext-1" &&
				ext.ElementGUID == "g1" &&
				ext.ElementType == TypeGlossary &&
				ext.ScopeName == "AssetManager:catalog" &&
				ext.KeyPattern == 2 &&
				ext.LastSynchronized.Equal(testNow) &&
				ext.Version == 1
		})).Return(nil).Once()

		err := h.SetUpExternalIdentifier(ctx, "erin", "g1", TypeGlossary, model.ExternalIdentifier{
			ScopeGUID:  "am-1",
			Identifier: "SALES-01",
			KeyPattern: 2,
		})
		require.NoError(t, err)
	})

	t.Run("scope must be an asset manager", func(t *testing.T) {
		for _, typeName := range []string{TypeGlossary, TypeSoftwareCapability} {
			h, _, entities := newExternalIDFixture(t)
			entities.On("FetchEntity", mock.Anything, "g2").Return(&model.Entity{GUID: "g2", TypeName: typeName}, nil).Once()

			err := h.SetUpExternalIdentifier(ctx, "erin", "g1", TypeGlossary, model.ExternalIdentifier{ScopeGUID: "g2", Identifier: "SALES-01"})
			require.Error(t, err, typeName)
			assert.Equal(t, errx.T_NotFound, errx.AsErrorX(err).Type(), typeName)
		}
	})

	t.Run("identifier mapped to another element", func(t *testing.T) {
		h, externalIDs, entities := newExternalIDFixture(t)
		entities.On("FetchEntity", mock.Anything, "am-1").Return(assetManager, nil).Once()
		externalIDs.On("FetchExternalID", mock.Anything, "am-1", "SALES-01").
			Return(&model.ExternalIdentifier{ScopeGUID: "am-1", Identifier: "SALES-01", ElementGUID: "g9"}, nil).Once()

		err := h.SetUpExternalIdentifier(ctx, "erin", "g1", TypeGlossary, model.ExternalIdentifier{ScopeGUID: "am-1", Identifier: "SALES-01"})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))
	})

	t.Run("missing scope", func(t *testing.T) {
		h, _, _ := newExternalIDFixture(t)
		err := h.SetUpExternalIdentifier(ctx, "erin", "g1", TypeGlossary, model.ExternalIdentifier{Identifier: "SALES-01"})
		require.Error(t, err)
		assert.Equal(t, "required", errx.AsErrorX(err).Fields()["assetManagerGUID"])
	})
}

func TestConfirmSynchronization(t *testing.T) {
	ctx := context.Background()
	h, externalIDs, entities := newExternalIDFixture(t)
	entities.On("FetchEntity", mock.Anything, "am-1").Return(assetManager, nil).Once()
	externalIDs.On("FetchExternalID", mock.Anything, "am-1", "SALES-01").Return(&model.ExternalIdentifier{
		ID: "ext-0", ScopeGUID: "am-1", Identifier: "SALES-01", ElementGUID: "g1", IdentifierName: "code", Version: 3,
	}, nil).Once()
	externalIDs.On("UpdateExternalID", mock.Anything, mock.MatchedBy(func(ext *model.ExternalIdentifier) bool {
		return ext.ID == "ext-0" &&
			ext.IdentifierName == "code" &&
			ext.SyncDescription == "nightly" &&
			ext.Version == 4 &&
			ext.UpdatedBy == "erin" &&
			ext.LastSynchronized.Equal(testNow)
	})).Return(nil).Once()

	err := h.ConfirmSynchronization(ctx, "erin", "g1", TypeGlossary, model.ExternalIdentifier{
		ScopeGUID: "am-1", Identifier: "SALES-01", SyncDescription: "nightly",
	})
	require.NoError(t, err)
}

func TestValidateExternalIdentifier(t *testing.T) {
	ctx := context.Background()
	h, externalIDs, _ := newExternalIDFixture(t)
	externalIDs.On("FetchExternalID", mock.Anything, "am-1", "SALES-01").
		Return(&model.ExternalIdentifier{ElementGUID: "g1", ElementType: TypeGlossary}, nil)
	externalIDs.On("FetchExternalID", mock.Anything, "am-1", "NOPE").Return(nil, store.ErrExternalIDNotFound).Once()

	assert.NoError(t, h.ValidateExternalIdentifier(ctx, "erin", "g1", TypeGlossary, "am-1", "SALES-01"))
	assert.True(t, errs.IsInvalidParameter(h.ValidateExternalIdentifier(ctx, "erin", "g2", TypeGlossary, "am-1", "SALES-01")))
	assert.True(t, errs.IsInvalidParameter(h.ValidateExternalIdentifier(ctx, "erin", "g1", TypeGlossaryTerm, "am-1", "SALES-01")))

	err := h.ValidateExternalIdentifier(ctx, "erin", "g1", TypeGlossary, "am-1", "NOPE")
	require.Error(t, err)
	assert.Equal(t, errx.T_NotFound, errx.AsErrorX(err).Type())
}

func TestRemoveExternalIdentifier(t *testing.T) {
	ctx := context.Background()
	h, externalIDs, _ := newExternalIDFixture(t)
	externalIDs.On("FetchExternalID", mock.Anything, "am-1", "SALES-01").
		Return(&model.ExternalIdentifier{ElementGUID: "g1", ElementType: TypeGlossary}, nil).Once()
	externalIDs.On("DeleteExternalID", mock.Anything, "am-1", "SALES-01").Return(nil).Once()

	require.NoError(t, h.RemoveExternalIdentifier(ctx, "erin", "g1", "am-1", "SALES-01"))
}

func TestGetElementGUIDsForScope(t *testing.T) {
	ctx := context.Background()
	h, externalIDs, _ := newExternalIDFixture(t)
	externalIDs.On("ListForScope", mock.Anything, "am-1", []string{TypeControlledGlossaryTerm, TypeGlossaryTerm}, 0, 50).
		Return([]model.ExternalIdentifier{
			{Identifier: "A", ElementGUID: "t1"},
			{Identifier: "B", ElementGUID: "t1"},
			{Identifier: "C", ElementGUID: "t2"},
		}, nil).Once()

	guids, err := h.GetElementGUIDsForScope(ctx, "erin", "am-1", []string{TypeGlossaryTerm}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, guids)

	_, err = h.GetElementGUIDsForScope(ctx, "erin", "am-1", nil, 0, 51)
	assert.True(t, errs.IsInvalidParameter(err))
}

func TestResolveElementGUID(t *testing.T) {
	ctx := context.Background()
	h, externalIDs, _ := newExternalIDFixture(t)
	externalIDs.On("FetchExternalID", mock.Anything, "am-1", "SALES-01").Return(&model.ExternalIdentifier{ElementGUID: "g1"}, nil).Once()

	guid, err := h.ResolveElementGUID(ctx, "erin", "am-1", "SALES-01")
	require.NoError(t, err)
	assert.Equal(t, "g1", guid)

	_, err = h.ResolveElementGUID(ctx, "erin", "am-1", "")
	assert.True(t, errs.IsInvalidParameter(err))
}
