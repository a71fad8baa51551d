package exchange_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

func TestCreateAssetManager(t *testing.T) {
	f := newFixture(t)
	h := exchange.NewAssetManagerExchangeHandler(f.entities, f.externalIDs)
	f.entities.On("CreateEntity", mock.Anything, user, mock.MatchedBy(func(req handler.EntityRequest) bool {
		return req.TypeName == handler.TypeAssetManager && req.QualifiedName == "AssetManager::crm"
	}), handler.Home{}).Return("am-1", nil)

	guid, err := h.CreateAssetManager(context.Background(), user, &exchange.AssetManagerProperties{QualifiedName: "AssetManager::crm"})
	require.NoError(t, err)
	assert.Equal(t, "am-1", guid)
}

func TestGetAssetManagerGUID(t *testing.T) {
	t.Run("exact qualified name", func(t *testing.T) {
		f := newFixture(t)
		h := exchange.NewAssetManagerExchangeHandler(f.entities, f.externalIDs)
		f.entities.On("GetEntitiesByName", mock.Anything, user, handler.TypeAssetManager, "crm", 0, 0, time.Time{}).
			Return([]model.Entity{
				{GUID: "am-2", QualifiedName: "AssetManager::crm", DisplayName: "crm"},
				{GUID: "am-1", QualifiedName: "crm"},
			}, nil)

		guid, err := h.GetAssetManagerGUID(context.Background(), user, "crm")
		require.NoError(t, err)
		assert.Equal(t, "am-1", guid)
	})

	t.Run("unknown", func(t *testing.T) {
		f := newFixture(t)
		h := exchange.NewAssetManagerExchangeHandler(f.entities, f.externalIDs)
		f.entities.On("GetEntitiesByName", mock.Anything, user, handler.TypeAssetManager, "crm", 0, 0, time.Time{}).
			Return([]model.Entity{}, nil)

		_, err := h.GetAssetManagerGUID(context.Background(), user, "crm")
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))
	})
}
