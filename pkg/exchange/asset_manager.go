package exchange

import (
	"context"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
)

// AssetManagerExchangeHandler registers the asset managers that exchange
// metadata. Each asset manager is the scope of its external identifiers.
type AssetManagerExchangeHandler struct {
	base
}

func NewAssetManagerExchangeHandler(entities EntityHandler, externalIDs ExternalIdentifierHandler, opts ...Option) *AssetManagerExchangeHandler {
	return &AssetManagerExchangeHandler{base: newBase("asset-manager-exchange", entities, externalIDs, buildOptions(opts))}
}

// CreateAssetManager registers an asset manager and returns its GUID.
func (h *AssetManagerExchangeHandler) CreateAssetManager(ctx context.Context, userID string, props *AssetManagerProperties) (string, error) {
	if err := validateProperties("assetManagerProperties", props); err != nil {
		return "", err
	}
	return h.entities.CreateEntity(ctx, userID, props.request(), handler.Home{})
}

// GetAssetManagerGUID returns the GUID of the asset manager with the qualified name.
func (h *AssetManagerExchangeHandler) GetAssetManagerGUID(ctx context.Context, userID, qualifiedName string) (string, error) {
	if err := validateName(qualifiedName, "qualifiedName"); err != nil {
		return "", err
	}
	entities, err := h.entities.GetEntitiesByName(ctx, userID, handler.TypeAssetManager, qualifiedName, 0, 0, zeroTime)
	if err != nil {
		return "", err
	}
	for _, e := range entities {
		if e.QualifiedName == qualifiedName {
			return e.GUID, nil
		}
	}
	return "", errs.UnknownGUID(qualifiedName, handler.TypeAssetManager)
}

// ResolveExternalIdentifier returns the GUID the asset manager's identifier names.
func (h *AssetManagerExchangeHandler) ResolveExternalIdentifier(ctx context.Context, userID, assetManagerGUID, identifier string) (string, error) {
	return h.externalIDs.ResolveElementGUID(ctx, userID, assetManagerGUID, identifier)
}
