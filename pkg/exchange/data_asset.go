package exchange

import (
	"context"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

// DataAssetExchangeHandler exchanges data assets and the lineage between
// them with an asset manager.
type DataAssetExchangeHandler struct {
	base
	publishZones []string
	defaultZones []string
}

func NewDataAssetExchangeHandler(entities EntityHandler, externalIDs ExternalIdentifierHandler, opts ...Option) *DataAssetExchangeHandler {
	o := buildOptions(opts)
	return &DataAssetExchangeHandler{
		base:         newBase("data-asset-exchange", entities, externalIDs, o),
		publishZones: o.publishZones,
		defaultZones: o.defaultZones,
	}
}

func (h *DataAssetExchangeHandler) assets(ctx context.Context, userID string, entities []model.Entity, opts QueryOptions) ([]DataAssetElement, error) {
	return convert(ctx, &h.base, userID, entities, opts, func(e *model.Entity, header ElementHeader, correlation []MetadataCorrelationHeader) DataAssetElement {
		return DataAssetElement{ElementHeader: header, Correlation: correlation, Properties: dataAssetProperties(e), Zones: zonesOf(e)}
	})
}

func zoneProperties(zones []string) model.Properties {
	if zones == nil {
		zones = []string{}
	}
	return model.Properties{propZoneMembership: zones}
}

// CreateDataAsset creates a data asset in the default zones and returns its GUID.
func (h *DataAssetExchangeHandler) CreateDataAsset(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, props *DataAssetProperties) (string, error) {
	if err := validateProperties("dataAssetProperties", props); err != nil {
		return "", err
	}
	if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
		return "", err
	}
	req := props.request()
	if !h.types.IsTypeOf(req.TypeName, handler.TypeDataAsset) {
		return "", errs.InvalidParameter("typeName", req.TypeName+" is not a type of "+handler.TypeDataAsset)
	}
	if len(h.defaultZones) > 0 {
		req.Classifications = []model.Classification{{Name: handler.ClassAssetZoneMembership, Properties: zoneProperties(h.defaultZones)}}
	}
	return h.create(ctx, userID, correlation, assetManagerIsHome, req)
}

func (h *DataAssetExchangeHandler) CreateDataAssetFromTemplate(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, templateGUID string, template *TemplateProperties) (string, error) {
	return h.createFromTemplate(ctx, userID, correlation, assetManagerIsHome, templateGUID, handler.TypeDataAsset, template)
}

func (h *DataAssetExchangeHandler) UpdateDataAsset(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetGUID string, props *DataAssetProperties, isMergeUpdate bool) error {
	if err := validateGUID(assetGUID, "dataAssetGUID"); err != nil {
		return err
	}
	if err := validateProperties("dataAssetProperties", props); err != nil {
		return err
	}
	if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
		return err
	}
	return h.update(ctx, userID, correlation, assetGUID, handler.TypeDataAsset, props.request(), isMergeUpdate)
}

// PublishDataAsset moves the asset into the publish zones so that consumers can see it.
func (h *DataAssetExchangeHandler) PublishDataAsset(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetGUID string) error {
	if err := validateGUID(assetGUID, "dataAssetGUID"); err != nil {
		return err
	}
	return h.classify(ctx, userID, correlation, assetGUID, handler.TypeDataAsset, handler.ClassAssetZoneMembership, zoneProperties(h.publishZones))
}

// WithdrawDataAsset moves the asset back into the default zones.
func (h *DataAssetExchangeHandler) WithdrawDataAsset(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetGUID string) error {
	if err := validateGUID(assetGUID, "dataAssetGUID"); err != nil {
		return err
	}
	return h.classify(ctx, userID, correlation, assetGUID, handler.TypeDataAsset, handler.ClassAssetZoneMembership, zoneProperties(h.defaultZones))
}

func (h *DataAssetExchangeHandler) RemoveDataAsset(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetGUID string) error {
	if err := validateGUID(assetGUID, "dataAssetGUID"); err != nil {
		return err
	}
	return h.remove(ctx, userID, correlation, assetGUID, handler.TypeDataAsset)
}

func (h *DataAssetExchangeHandler) FindDataAssets(ctx context.Context, userID, searchString string, opts QueryOptions) ([]DataAssetElement, error) {
	if err := validateName(searchString, "searchString"); err != nil {
		return nil, err
	}
	entities, err := h.entities.FindEntities(ctx, userID, handler.Query{
		TypeName:      handler.TypeDataAsset,
		Search:        searchString,
		EffectiveTime: opts.EffectiveTime,
		StartFrom:     opts.StartFrom,
		PageSize:      opts.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return h.assets(ctx, userID, entities, opts)
}

func (h *DataAssetExchangeHandler) GetDataAssetsByName(ctx context.Context, userID, name string, opts QueryOptions) ([]DataAssetElement, error) {
	if err := validateName(name, "name"); err != nil {
		return nil, err
	}
	entities, err := h.entities.GetEntitiesByName(ctx, userID, handler.TypeDataAsset, name, opts.StartFrom, opts.PageSize, opts.EffectiveTime)
	if err != nil {
		return nil, err
	}
	return h.assets(ctx, userID, entities, opts)
}

func (h *DataAssetExchangeHandler) GetDataAssetsForAssetManager(ctx context.Context, userID string, opts QueryOptions) ([]DataAssetElement, error) {
	entities, err := h.forAssetManager(ctx, userID, handler.TypeDataAsset, opts)
	if err != nil {
		return nil, err
	}
	return h.assets(ctx, userID, entities, opts)
}

func (h *DataAssetExchangeHandler) GetDataAssetByGUID(ctx context.Context, userID, assetGUID string, opts QueryOptions) (*DataAssetElement, error) {
	if err := validateGUID(assetGUID, "dataAssetGUID"); err != nil {
		return nil, err
	}
	entity, err := h.entities.GetEntity(ctx, userID, assetGUID, handler.TypeDataAsset, opts.EffectiveTime)
	if err != nil {
		return nil, err
	}
	elements, err := h.assets(ctx, userID, []model.Entity{*entity}, opts)
	if err != nil {
		return nil, err
	}
	return &elements[0], nil
}

// isDataAssetRelationship reports whether typeName links two data assets.
func (h *DataAssetExchangeHandler) isDataAssetRelationship(typeName string) bool {
	def, ok := h.types.Relationship(typeName)
	return ok &&
		h.types.IsTypeOf(def.End1Type, handler.TypeDataAsset) &&
		h.types.IsTypeOf(def.End2Type, handler.TypeDataAsset)
}

func (h *DataAssetExchangeHandler) checkRelationshipType(typeName string) error {
	if err := validateName(typeName, "relationshipTypeName"); err != nil {
		return err
	}
	if !h.isDataAssetRelationship(typeName) {
		return errs.InvalidParameter("relationshipTypeName", typeName+" does not link data assets")
	}
	return nil
}

// SetupRelatedDataAsset links two data assets and returns the relationship GUID.
func (h *DataAssetExchangeHandler) SetupRelatedDataAsset(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, typeName, fromAssetGUID, toAssetGUID string, props *RelationshipProperties) (string, error) {
	if err := h.checkRelationshipType(typeName); err != nil {
		return "", err
	}
	if err := validateGUID(fromAssetGUID, "fromAssetGUID"); err != nil {
		return "", err
	}
	if err := validateGUID(toAssetGUID, "toAssetGUID"); err != nil {
		return "", err
	}
	return h.link(ctx, userID, correlation, assetManagerIsHome, typeName, fromAssetGUID, toAssetGUID, props.properties(), props)
}

func (h *DataAssetExchangeHandler) dataAssetRelationship(ctx context.Context, userID, relationshipGUID string) (*model.Relationship, error) {
	if err := validateGUID(relationshipGUID, "relationshipGUID"); err != nil {
		return nil, err
	}
	rel, err := h.entities.GetRelationship(ctx, userID, relationshipGUID, "")
	if err != nil {
		return nil, err
	}
	if !h.isDataAssetRelationship(rel.TypeName) {
		return nil, errs.UnknownGUID(relationshipGUID, "data asset relationship")
	}
	return rel, nil
}

func (h *DataAssetExchangeHandler) UpdateDataAssetRelationship(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, relationshipGUID string, props *RelationshipProperties, isMergeUpdate bool) error {
	if props != nil {
		if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
			return err
		}
	}
	rel, err := h.dataAssetRelationship(ctx, userID, relationshipGUID)
	if err != nil {
		return err
	}
	return h.entities.UpdateRelationship(ctx, userID, rel.GUID, rel.TypeName, props.update(), isMergeUpdate, callerOf(correlation))
}

func (h *DataAssetExchangeHandler) ClearDataAssetRelationship(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, relationshipGUID string) error {
	rel, err := h.dataAssetRelationship(ctx, userID, relationshipGUID)
	if err != nil {
		return err
	}
	return h.entities.DeleteRelationship(ctx, userID, rel.GUID, rel.TypeName, callerOf(correlation))
}

// GetRelatedDataAssets returns the assets linked to assetGUID by
// relationships of typeName, or by any data asset relationship when typeName
// is empty.
func (h *DataAssetExchangeHandler) GetRelatedDataAssets(ctx context.Context, userID, assetGUID, typeName string, opts QueryOptions) ([]RelatedDataAssetElement, error) {
	if err := validateGUID(assetGUID, "dataAssetGUID"); err != nil {
		return nil, err
	}
	relTypes := []string{handler.RelDataContentForDataSet, handler.RelDataFlow}
	if typeName != "" {
		if err := h.checkRelationshipType(typeName); err != nil {
			return nil, err
		}
		relTypes = []string{typeName}
	}
	related, err := h.related(ctx, userID, assetGUID, handler.TypeDataAsset, handler.AnyEnd, relTypes, handler.TypeDataAsset, opts)
	if err != nil {
		return nil, err
	}
	assets, err := h.assets(ctx, userID, relatedEntities(related), opts)
	if err != nil {
		return nil, err
	}
	result := make([]RelatedDataAssetElement, 0, len(related))
	for i := range related {
		result = append(result, RelatedDataAssetElement{
			Relationship:           relationshipHeader(&related[i].Relationship),
			RelationshipProperties: relationshipProperties(&related[i].Relationship),
			RelatedAsset:           assets[i],
		})
	}
	return result, nil
}
