// Package exchange implements the request facades an asset manager uses to
// exchange glossary, data asset and comment metadata with the repository.
//
// Every operation validates its parameters, translates the exchange
// properties into a generic entity request, delegates to the entity handler
// and keeps the asset manager's external identifiers in step with the
// repository GUIDs.
package exchange

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

const (
	originLocal    = "LOCAL_COHORT"
	originExternal = "EXTERNAL_SOURCE"
)

// Option configures a facade.
type Option func(*options)

type options struct {
	types        *handler.TypeRegistry
	log          logger.Logger
	publishZones []string
	defaultZones []string
}

func WithTypes(types *handler.TypeRegistry) Option {
	return func(o *options) { o.types = types }
}

func WithLogger(log logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithZones sets the governance zones a data asset joins when it is
// published and when it is withdrawn or created.
func WithZones(publishZones, defaultZones []string) Option {
	return func(o *options) {
		o.publishZones = publishZones
		o.defaultZones = defaultZones
	}
}

func buildOptions(opts []Option) options {
	o := options{
		types: handler.DefaultTypes(),
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// base holds what every facade shares: the collaborators and the
// correlation bookkeeping around them.
type base struct {
	entities    EntityHandler
	externalIDs ExternalIdentifierHandler
	types       *handler.TypeRegistry
	log         logger.Logger
}

func newBase(name string, entities EntityHandler, externalIDs ExternalIdentifierHandler, o options) base {
	return base{
		entities:    entities,
		externalIDs: externalIDs,
		types:       o.types,
		log:         o.log.Named(name),
	}
}

// homeFor returns the collection a new element is homed in.
func homeFor(correlation *MetadataCorrelationProperties, assetManagerIsHome bool) (handler.Home, error) {
	if !assetManagerIsHome {
		return handler.Home{}, nil
	}
	if correlation == nil || correlation.AssetManagerGUID == "" {
		return handler.Home{}, errs.NullParameter("assetManagerGUID")
	}
	return handler.Home{
		CollectionID:   correlation.AssetManagerGUID,
		CollectionName: correlation.AssetManagerName,
	}, nil
}

// callerOf returns the collection the request acts for.
func callerOf(correlation *MetadataCorrelationProperties) handler.Home {
	if correlation == nil {
		return handler.Home{}
	}
	return handler.Home{
		CollectionID:   correlation.AssetManagerGUID,
		CollectionName: correlation.AssetManagerName,
	}
}

func (c *MetadataCorrelationProperties) hasExternalIdentifier() bool {
	return c != nil && c.ExternalIdentifier != ""
}

func (c *MetadataCorrelationProperties) check() error {
	if c.hasExternalIdentifier() && c.AssetManagerGUID == "" {
		return errs.NullParameter("assetManagerGUID")
	}
	return nil
}

func (c *MetadataCorrelationProperties) toExternalIdentifier() model.ExternalIdentifier {
	return model.ExternalIdentifier{
		ScopeGUID:        c.AssetManagerGUID,
		ScopeName:        c.AssetManagerName,
		Identifier:       c.ExternalIdentifier,
		IdentifierName:   c.ExternalIdentifierName,
		IdentifierUsage:  c.ExternalIdentifierUsage,
		IdentifierSource: c.ExternalIdentifierSource,
		KeyPattern:       int(c.KeyPattern),
		MappingProps:     model.StringMap(c.MappingProperties),
		SyncDirection:    int(c.SynchronizationDirection),
		SyncDescription:  c.SynchronizationDescription,
	}
}

func correlationHeader(ext model.ExternalIdentifier) MetadataCorrelationHeader {
	return MetadataCorrelationHeader{
		MetadataCorrelationProperties: MetadataCorrelationProperties{
			AssetManagerGUID:           ext.ScopeGUID,
			AssetManagerName:           ext.ScopeName,
			ExternalIdentifier:         ext.Identifier,
			ExternalIdentifierName:     ext.IdentifierName,
			ExternalIdentifierUsage:    ext.IdentifierUsage,
			ExternalIdentifierSource:   ext.IdentifierSource,
			KeyPattern:                 KeyPattern(ext.KeyPattern),
			MappingProperties:          ext.MappingProps,
			SynchronizationDirection:   SynchronizationDirection(ext.SyncDirection),
			SynchronizationDescription: ext.SyncDescription,
		},
		LastSynchronized: ext.LastSynchronized,
	}
}

func (b *base) createExternalIdentifier(ctx context.Context, userID, guid, typeName string, correlation *MetadataCorrelationProperties) error {
	if !correlation.hasExternalIdentifier() {
		return nil
	}
	return b.externalIDs.SetUpExternalIdentifier(ctx, userID, guid, typeName, correlation.toExternalIdentifier())
}

func (b *base) validateExternalIdentifier(ctx context.Context, userID, guid, typeName string, correlation *MetadataCorrelationProperties) error {
	if err := correlation.check(); err != nil {
		return err
	}
	if !correlation.hasExternalIdentifier() {
		return nil
	}
	return b.externalIDs.ValidateExternalIdentifier(ctx, userID, guid, typeName, correlation.AssetManagerGUID, correlation.ExternalIdentifier)
}

func (b *base) confirmSynchronization(ctx context.Context, userID, guid, typeName string, correlation *MetadataCorrelationProperties) error {
	if !correlation.hasExternalIdentifier() {
		return nil
	}
	return b.externalIDs.ConfirmSynchronization(ctx, userID, guid, typeName, correlation.toExternalIdentifier())
}

func (b *base) correlationHeaders(ctx context.Context, userID, guid string, opts QueryOptions) ([]MetadataCorrelationHeader, error) {
	if opts.AssetManagerGUID == "" {
		return nil, nil
	}
	ids, err := b.externalIDs.GetExternalIdentifiers(ctx, userID, guid, opts.AssetManagerGUID)
	if err != nil {
		return nil, err
	}
	return lo.Map(ids, func(ext model.ExternalIdentifier, _ int) MetadataCorrelationHeader {
		return correlationHeader(ext)
	}), nil
}

func (b *base) header(e *model.Entity) ElementHeader {
	origin := ElementOrigin{OriginCategory: originLocal}
	if e.HomeCollectionID != "" {
		origin = ElementOrigin{
			OriginCategory:             originExternal,
			HomeMetadataCollectionID:   e.HomeCollectionID,
			HomeMetadataCollectionName: e.HomeCollectionName,
		}
	}
	return ElementHeader{
		GUID:   e.GUID,
		Type:   ElementType{TypeName: e.TypeName, SuperTypeNames: b.types.SuperTypes(e.TypeName)},
		Origin: origin,
		Versions: ElementVersions{
			CreatedBy:  e.CreatedBy,
			UpdatedBy:  e.UpdatedBy,
			CreateTime: e.CreatedAt,
			UpdateTime: e.UpdatedAt,
			Version:    e.Version,
		},
		Status: ElementStatus(e.Status),
		Classifications: lo.Map(e.Classifications, func(c model.Classification, _ int) ElementClassification {
			return ElementClassification{Name: c.Name, Properties: c.Properties}
		}),
		EffectiveFrom: e.EffectiveFrom,
		EffectiveTo:   e.EffectiveTo,
	}
}

func relationshipHeader(r *model.Relationship) RelationshipHeader {
	return RelationshipHeader{
		GUID:     r.GUID,
		TypeName: r.TypeName,
		End1GUID: r.End1GUID,
		End2GUID: r.End2GUID,
		Versions: ElementVersions{
			CreatedBy:  r.CreatedBy,
			UpdatedBy:  r.UpdatedBy,
			CreateTime: r.CreatedAt,
			UpdateTime: r.UpdatedAt,
			Version:    r.Version,
		},
		EffectiveFrom: r.EffectiveFrom,
		EffectiveTo:   r.EffectiveTo,
	}
}

// checkExternalIdentifierFree rejects an identifier the asset manager
// already uses for another element.
func (b *base) checkExternalIdentifierFree(ctx context.Context, userID string, correlation *MetadataCorrelationProperties) error {
	if !correlation.hasExternalIdentifier() {
		return nil
	}
	guid, err := b.externalIDs.ResolveElementGUID(ctx, userID, correlation.AssetManagerGUID, correlation.ExternalIdentifier)
	switch {
	case errs.IsNotFound(err):
		return nil
	case err != nil:
		return err
	}
	return errs.InvalidParameter("externalIdentifier", correlation.ExternalIdentifier+" is already mapped to "+guid)
}

// prepareCreate checks the correlation and returns the home of a new element.
func (b *base) prepareCreate(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool) (handler.Home, error) {
	if err := correlation.check(); err != nil {
		return handler.Home{}, err
	}
	home, err := homeFor(correlation, assetManagerIsHome)
	if err != nil {
		return handler.Home{}, err
	}
	if err := b.checkExternalIdentifierFree(ctx, userID, correlation); err != nil {
		return handler.Home{}, err
	}
	return home, nil
}

// discard removes an entity whose creation could not be completed and
// returns cause.
func (b *base) discard(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, guid, typeName string, cause error) error {
	if err := b.entities.DeleteEntity(ctx, userID, guid, typeName, callerOf(correlation)); err != nil {
		b.log.WithContext(ctx).Warnf("failed to remove incomplete %s %s: %v", typeName, guid, err)
	}
	return cause
}

// create stores a new entity and registers its external identifier.
func (b *base) create(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, req handler.EntityRequest) (string, error) {
	home, err := b.prepareCreate(ctx, userID, correlation, assetManagerIsHome)
	if err != nil {
		return "", err
	}
	guid, err := b.entities.CreateEntity(ctx, userID, req, home)
	if err != nil {
		return "", err
	}
	if err := b.createExternalIdentifier(ctx, userID, guid, req.TypeName, correlation); err != nil {
		return "", b.discard(ctx, userID, correlation, guid, req.TypeName, err)
	}
	return guid, nil
}

// createFromTemplate copies the template and registers the new entity's
// external identifier.
func (b *base) createFromTemplate(
	ctx context.Context,
	userID string,
	correlation *MetadataCorrelationProperties,
	assetManagerIsHome bool,
	templateGUID, typeName string,
	template *TemplateProperties,
) (string, error) {
	if err := validateGUID(templateGUID, "templateGUID"); err != nil {
		return "", err
	}
	if err := validateProperties("templateProperties", template); err != nil {
		return "", err
	}
	home, err := b.prepareCreate(ctx, userID, correlation, assetManagerIsHome)
	if err != nil {
		return "", err
	}
	req := handler.EntityRequest{
		QualifiedName: template.QualifiedName,
		DisplayName:   template.DisplayName,
	}
	if template.Description != "" {
		req.Properties = model.Properties{propDescription: template.Description}
	}
	guid, err := b.entities.CreateEntityFromTemplate(ctx, userID, templateGUID, typeName, req, home)
	if err != nil {
		return "", err
	}
	if err := b.createExternalIdentifier(ctx, userID, guid, typeName, correlation); err != nil {
		return "", b.discard(ctx, userID, correlation, guid, typeName, err)
	}
	return guid, nil
}

// update changes an entity after checking the caller's external identifier
// and confirms the synchronization afterwards.
func (b *base) update(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, guid, typeName string, req handler.EntityRequest, isMergeUpdate bool) error {
	if err := b.validateExternalIdentifier(ctx, userID, guid, typeName, correlation); err != nil {
		return err
	}
	if err := b.entities.UpdateEntity(ctx, userID, guid, typeName, req, isMergeUpdate, callerOf(correlation)); err != nil {
		return err
	}
	return b.confirmSynchronization(ctx, userID, guid, typeName, correlation)
}

func (b *base) updateStatus(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, guid, typeName string, status model.InstanceStatus) error {
	if err := b.validateExternalIdentifier(ctx, userID, guid, typeName, correlation); err != nil {
		return err
	}
	if err := b.entities.UpdateEntityStatus(ctx, userID, guid, typeName, status, callerOf(correlation)); err != nil {
		return err
	}
	return b.confirmSynchronization(ctx, userID, guid, typeName, correlation)
}

func (b *base) remove(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, guid, typeName string) error {
	if err := b.validateExternalIdentifier(ctx, userID, guid, typeName, correlation); err != nil {
		return err
	}
	return b.entities.DeleteEntity(ctx, userID, guid, typeName, callerOf(correlation))
}

func (b *base) classify(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, guid, typeName, classification string, props model.Properties) error {
	if err := b.validateExternalIdentifier(ctx, userID, guid, typeName, correlation); err != nil {
		return err
	}
	return b.entities.ClassifyEntity(ctx, userID, guid, typeName, classification, props, callerOf(correlation))
}

func (b *base) declassify(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, guid, typeName, classification string) error {
	if err := b.validateExternalIdentifier(ctx, userID, guid, typeName, correlation); err != nil {
		return err
	}
	return b.entities.DeclassifyEntity(ctx, userID, guid, typeName, classification, callerOf(correlation))
}

// link relates two entities. The relationship is homed in the asset manager
// when assetManagerIsHome is set.
func (b *base) link(
	ctx context.Context,
	userID string,
	correlation *MetadataCorrelationProperties,
	assetManagerIsHome bool,
	typeName, end1GUID, end2GUID string,
	props model.Properties,
	rel *RelationshipProperties,
) (string, error) {
	home, err := homeFor(correlation, assetManagerIsHome)
	if err != nil {
		return "", err
	}
	req := handler.LinkRequest{
		TypeName:   typeName,
		End1GUID:   end1GUID,
		End2GUID:   end2GUID,
		Properties: props,
		Home:       home,
	}
	if rel != nil {
		if err := validateEffectivity(rel.EffectiveFrom, rel.EffectiveTo); err != nil {
			return "", err
		}
		req.EffectiveFrom = rel.EffectiveFrom
		req.EffectiveTo = rel.EffectiveTo
	}
	return b.entities.LinkEntities(ctx, userID, req)
}

// forAssetManager returns the entities of typeName the asset manager has
// external identifiers for.
func (b *base) forAssetManager(ctx context.Context, userID, typeName string, opts QueryOptions) ([]model.Entity, error) {
	if err := validateGUID(opts.AssetManagerGUID, "assetManagerGUID"); err != nil {
		return nil, err
	}
	guids, err := b.externalIDs.GetElementGUIDsForScope(ctx, userID, opts.AssetManagerGUID, []string{typeName}, opts.StartFrom, opts.PageSize)
	if err != nil {
		return nil, err
	}
	return b.entities.GetEntitiesByGUID(ctx, userID, typeName, guids, opts.EffectiveTime)
}

// related returns the entities reached from guid through relTypes.
func (b *base) related(ctx context.Context, userID, guid, startingType string, end int, relTypes []string, resultType string, opts QueryOptions) ([]handler.RelatedEntity, error) {
	return b.entities.GetRelatedEntities(ctx, userID, guid, startingType, handler.RelatedQuery{
		RelationshipTypes: relTypes,
		StartingEnd:       end,
		ResultTypeName:    resultType,
		EffectiveTime:     opts.EffectiveTime,
		StartFrom:         opts.StartFrom,
		PageSize:          opts.PageSize,
	})
}

// allRelated pages through every entity reached from guid.
func (b *base) allRelated(ctx context.Context, userID, guid, startingType string, end int, relTypes []string, resultType string, effectiveTime time.Time) ([]handler.RelatedEntity, error) {
	var all []handler.RelatedEntity
	for {
		batch, err := b.related(ctx, userID, guid, startingType, end, relTypes, resultType, QueryOptions{
			EffectiveTime: effectiveTime,
			StartFrom:     len(all),
		})
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			return all, nil
		}
		all = append(all, batch...)
	}
}

// convert turns entities into elements, adding the correlation headers
// requested by opts.
func convert[T any](ctx context.Context, b *base, userID string, entities []model.Entity, opts QueryOptions, fn func(*model.Entity, ElementHeader, []MetadataCorrelationHeader) T) ([]T, error) {
	if len(entities) == 0 {
		return nil, nil
	}
	result := make([]T, 0, len(entities))
	for i := range entities {
		e := &entities[i]
		headers, err := b.correlationHeaders(ctx, userID, e.GUID, opts)
		if err != nil {
			return nil, err
		}
		result = append(result, fn(e, b.header(e), headers))
	}
	return result, nil
}
