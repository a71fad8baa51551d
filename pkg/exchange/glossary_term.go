package exchange

import (
	"context"
	"slices"

	"github.com/samber/lo"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

func (h *GlossaryExchangeHandler) terms(ctx context.Context, userID string, entities []model.Entity, opts QueryOptions) ([]GlossaryTermElement, error) {
	return convert(ctx, &h.base, userID, entities, opts, func(e *model.Entity, header ElementHeader, correlation []MetadataCorrelationHeader) GlossaryTermElement {
		return GlossaryTermElement{ElementHeader: header, Correlation: correlation, Properties: glossaryTermProperties(e)}
	})
}

func (h *GlossaryExchangeHandler) createTerm(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, glossaryGUID string, req handler.EntityRequest) (string, error) {
	return h.anchorIn(ctx, userID, correlation, assetManagerIsHome, glossaryGUID, handler.RelTermAnchor, req.TypeName, func() (string, error) {
		return h.create(ctx, userID, correlation, assetManagerIsHome, req)
	})
}

// CreateGlossaryTerm creates an active term in the glossary and returns its GUID.
func (h *GlossaryExchangeHandler) CreateGlossaryTerm(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, glossaryGUID string, props *GlossaryTermProperties) (string, error) {
	if err := validateProperties("glossaryTermProperties", props); err != nil {
		return "", err
	}
	if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
		return "", err
	}
	req := props.request(handler.TypeGlossaryTerm)
	req.Status = model.StatusActive
	return h.createTerm(ctx, userID, correlation, assetManagerIsHome, glossaryGUID, req)
}

// CreateControlledGlossaryTerm creates a term whose status is managed
// through a review lifecycle, starting at initialStatus.
func (h *GlossaryExchangeHandler) CreateControlledGlossaryTerm(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, glossaryGUID string, props *GlossaryTermProperties, initialStatus GlossaryTermStatus) (string, error) {
	if err := validateProperties("glossaryTermProperties", props); err != nil {
		return "", err
	}
	if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
		return "", err
	}
	if !initialStatus.IsAGlossaryTermStatus() || initialStatus == GlossaryTermStatusDeleted {
		return "", errs.InvalidParameter("initialTermStatus", initialStatus.String()+" is not a valid initial status")
	}
	req := props.request(handler.TypeControlledGlossaryTerm)
	req.Status = initialStatus.InstanceStatus()
	return h.createTerm(ctx, userID, correlation, assetManagerIsHome, glossaryGUID, req)
}

func (h *GlossaryExchangeHandler) CreateGlossaryTermFromTemplate(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, glossaryGUID, templateGUID string, template *TemplateProperties) (string, error) {
	return h.anchorIn(ctx, userID, correlation, assetManagerIsHome, glossaryGUID, handler.RelTermAnchor, handler.TypeGlossaryTerm, func() (string, error) {
		return h.createFromTemplate(ctx, userID, correlation, assetManagerIsHome, templateGUID, handler.TypeGlossaryTerm, template)
	})
}

func (h *GlossaryExchangeHandler) UpdateGlossaryTerm(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string, props *GlossaryTermProperties, isMergeUpdate bool) error {
	if err := validateGUID(termGUID, "glossaryTermGUID"); err != nil {
		return err
	}
	if err := validateProperties("glossaryTermProperties", props); err != nil {
		return err
	}
	if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
		return err
	}
	return h.update(ctx, userID, correlation, termGUID, handler.TypeGlossaryTerm, props.request(handler.TypeGlossaryTerm), isMergeUpdate)
}

// UpdateGlossaryTermStatus moves a controlled term through its lifecycle.
func (h *GlossaryExchangeHandler) UpdateGlossaryTermStatus(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string, status GlossaryTermStatus) error {
	if err := validateGUID(termGUID, "glossaryTermGUID"); err != nil {
		return err
	}
	if !status.IsAGlossaryTermStatus() {
		return errs.InvalidParameter("glossaryTermStatus", status.String()+" is not a glossary term status")
	}
	return h.updateStatus(ctx, userID, correlation, termGUID, handler.TypeGlossaryTerm, status.InstanceStatus())
}

// SetupTermCategory links the term to a category.
func (h *GlossaryExchangeHandler) SetupTermCategory(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, categoryGUID, termGUID string, props *GlossaryTermCategorization) error {
	if err := validateGUID(categoryGUID, "glossaryCategoryGUID"); err != nil {
		return err
	}
	if err := validateGUID(termGUID, "glossaryTermGUID"); err != nil {
		return err
	}
	var relProps model.Properties
	var effectivity *RelationshipProperties
	if props != nil {
		relProps = props.properties()
		effectivity = &RelationshipProperties{EffectiveFrom: props.EffectiveFrom, EffectiveTo: props.EffectiveTo}
	}
	_, err := h.link(ctx, userID, correlation, assetManagerIsHome, handler.RelTermCategorization, categoryGUID, termGUID, relProps, effectivity)
	return err
}

func (h *GlossaryExchangeHandler) ClearTermCategory(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, categoryGUID, termGUID string) error {
	if err := validateGUID(categoryGUID, "glossaryCategoryGUID"); err != nil {
		return err
	}
	if err := validateGUID(termGUID, "glossaryTermGUID"); err != nil {
		return err
	}
	return h.entities.UnlinkEntities(ctx, userID, handler.RelTermCategorization, categoryGUID, termGUID, callerOf(correlation))
}

// GetTermRelationshipTypeNames returns the relationship types that can link two terms.
func (h *GlossaryExchangeHandler) GetTermRelationshipTypeNames() []string {
	return h.types.RelationshipTypesBetween(handler.TypeGlossaryTerm, handler.TypeGlossaryTerm)
}

func (h *GlossaryExchangeHandler) checkTermRelationship(typeName string) error {
	if err := validateName(typeName, "relationshipTypeName"); err != nil {
		return err
	}
	if !slices.Contains(h.GetTermRelationshipTypeNames(), typeName) {
		return errs.InvalidParameter("relationshipTypeName", typeName+" does not link glossary terms")
	}
	return nil
}

// SetupTermRelationship links two terms with a relationship of typeName.
func (h *GlossaryExchangeHandler) SetupTermRelationship(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, typeName, term1GUID, term2GUID string, props *GlossaryTermRelationship) error {
	if err := h.checkTermRelationship(typeName); err != nil {
		return err
	}
	if err := validateGUID(term1GUID, "glossaryTermOneGUID"); err != nil {
		return err
	}
	if err := validateGUID(term2GUID, "glossaryTermTwoGUID"); err != nil {
		return err
	}
	var relProps model.Properties
	var effectivity *RelationshipProperties
	if props != nil {
		if err := validateProperties("relationshipsProperties", props); err != nil {
			return err
		}
		relProps = props.properties()
		effectivity = &RelationshipProperties{EffectiveFrom: props.EffectiveFrom, EffectiveTo: props.EffectiveTo}
	}
	_, err := h.link(ctx, userID, correlation, assetManagerIsHome, typeName, term1GUID, term2GUID, relProps, effectivity)
	return err
}

func (h *GlossaryExchangeHandler) UpdateTermRelationship(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, typeName, term1GUID, term2GUID string, props *GlossaryTermRelationship, isMergeUpdate bool) error {
	if err := h.checkTermRelationship(typeName); err != nil {
		return err
	}
	if err := validateGUID(term1GUID, "glossaryTermOneGUID"); err != nil {
		return err
	}
	if err := validateGUID(term2GUID, "glossaryTermTwoGUID"); err != nil {
		return err
	}
	if err := validateProperties("relationshipsProperties", props); err != nil {
		return err
	}
	if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
		return err
	}
	return h.entities.UpdateRelationshipBetween(ctx, userID, typeName, term1GUID, term2GUID, handler.RelationshipUpdate{
		Properties:    props.properties(),
		EffectiveFrom: props.EffectiveFrom,
		EffectiveTo:   props.EffectiveTo,
	}, isMergeUpdate, callerOf(correlation))
}

func (h *GlossaryExchangeHandler) ClearTermRelationship(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, typeName, term1GUID, term2GUID string) error {
	if err := h.checkTermRelationship(typeName); err != nil {
		return err
	}
	if err := validateGUID(term1GUID, "glossaryTermOneGUID"); err != nil {
		return err
	}
	if err := validateGUID(term2GUID, "glossaryTermTwoGUID"); err != nil {
		return err
	}
	return h.entities.UnlinkEntities(ctx, userID, typeName, term1GUID, term2GUID, callerOf(correlation))
}

func (h *GlossaryExchangeHandler) classifyTerm(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID, classification string, props model.Properties) error {
	if err := validateGUID(termGUID, "glossaryTermGUID"); err != nil {
		return err
	}
	return h.classify(ctx, userID, correlation, termGUID, handler.TypeGlossaryTerm, classification, props)
}

func (h *GlossaryExchangeHandler) declassifyTerm(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID, classification string) error {
	if err := validateGUID(termGUID, "glossaryTermGUID"); err != nil {
		return err
	}
	return h.declassify(ctx, userID, correlation, termGUID, handler.TypeGlossaryTerm, classification)
}

// SetTermAsAbstractConcept marks the term as describing an abstract concept.
func (h *GlossaryExchangeHandler) SetTermAsAbstractConcept(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string) error {
	return h.classifyTerm(ctx, userID, correlation, termGUID, handler.ClassAbstractConcept, nil)
}

func (h *GlossaryExchangeHandler) ClearTermAsAbstractConcept(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string) error {
	return h.declassifyTerm(ctx, userID, correlation, termGUID, handler.ClassAbstractConcept)
}

// SetTermAsDataValue marks the term as describing a valid value.
func (h *GlossaryExchangeHandler) SetTermAsDataValue(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string) error {
	return h.classifyTerm(ctx, userID, correlation, termGUID, handler.ClassDataValue, nil)
}

func (h *GlossaryExchangeHandler) ClearTermAsDataValue(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string) error {
	return h.declassifyTerm(ctx, userID, correlation, termGUID, handler.ClassDataValue)
}

// SetTermAsContext marks the term as describing a context other terms are used in.
func (h *GlossaryExchangeHandler) SetTermAsContext(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string, props *ContextDefinitionProperties) error {
	var classProps model.Properties
	if props != nil {
		classProps = model.Properties(bag{}.str(propDescription, props.Description).str(propScope, props.Scope))
	}
	return h.classifyTerm(ctx, userID, correlation, termGUID, handler.ClassContextDefinition, classProps)
}

func (h *GlossaryExchangeHandler) ClearTermAsContext(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string) error {
	return h.declassifyTerm(ctx, userID, correlation, termGUID, handler.ClassContextDefinition)
}

// SetTermAsSpineObject marks the term as describing a type of object.
func (h *GlossaryExchangeHandler) SetTermAsSpineObject(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string) error {
	return h.classifyTerm(ctx, userID, correlation, termGUID, handler.ClassSpineObject, nil)
}

func (h *GlossaryExchangeHandler) ClearTermAsSpineObject(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string) error {
	return h.declassifyTerm(ctx, userID, correlation, termGUID, handler.ClassSpineObject)
}

// SetTermAsSpineAttribute marks the term as describing an attribute of a spine object.
func (h *GlossaryExchangeHandler) SetTermAsSpineAttribute(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string) error {
	return h.classifyTerm(ctx, userID, correlation, termGUID, handler.ClassSpineAttribute, nil)
}

func (h *GlossaryExchangeHandler) ClearTermAsSpineAttribute(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string) error {
	return h.declassifyTerm(ctx, userID, correlation, termGUID, handler.ClassSpineAttribute)
}

// SetTermAsObjectIdentifier marks the term as describing an identifying attribute.
func (h *GlossaryExchangeHandler) SetTermAsObjectIdentifier(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string) error {
	return h.classifyTerm(ctx, userID, correlation, termGUID, handler.ClassObjectIdentifier, nil)
}

func (h *GlossaryExchangeHandler) ClearTermAsObjectIdentifier(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string) error {
	return h.declassifyTerm(ctx, userID, correlation, termGUID, handler.ClassObjectIdentifier)
}

func (h *GlossaryExchangeHandler) RemoveGlossaryTerm(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, termGUID string) error {
	if err := validateGUID(termGUID, "glossaryTermGUID"); err != nil {
		return err
	}
	return h.remove(ctx, userID, correlation, termGUID, handler.TypeGlossaryTerm)
}

// FindGlossaryTerms returns the terms whose names match searchString. An
// empty glossaryGUID searches every glossary and an empty status list
// accepts every status.
func (h *GlossaryExchangeHandler) FindGlossaryTerms(ctx context.Context, userID, glossaryGUID, searchString string, limitResultsByStatus []GlossaryTermStatus, opts QueryOptions) ([]GlossaryTermElement, error) {
	if err := validateName(searchString, "searchString"); err != nil {
		return nil, err
	}
	q := handler.Query{
		TypeName:      handler.TypeGlossaryTerm,
		Search:        searchString,
		EffectiveTime: opts.EffectiveTime,
		StartFrom:     opts.StartFrom,
		PageSize:      opts.PageSize,
		Statuses: lo.Map(limitResultsByStatus, func(s GlossaryTermStatus, _ int) model.InstanceStatus {
			return s.InstanceStatus()
		}),
	}
	if glossaryGUID != "" {
		anchored, err := h.allRelated(ctx, userID, glossaryGUID, handler.TypeGlossary, handler.End1, []string{handler.RelTermAnchor}, handler.TypeGlossaryTerm, opts.EffectiveTime)
		if err != nil {
			return nil, err
		}
		if len(anchored) == 0 {
			return nil, nil
		}
		q.GUIDs = lo.Map(anchored, func(r handler.RelatedEntity, _ int) string { return r.Entity.GUID })
	}
	entities, err := h.entities.FindEntities(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return h.terms(ctx, userID, entities, opts)
}

func (h *GlossaryExchangeHandler) GetTermsForGlossary(ctx context.Context, userID, glossaryGUID string, opts QueryOptions) ([]GlossaryTermElement, error) {
	if err := validateGUID(glossaryGUID, "glossaryGUID"); err != nil {
		return nil, err
	}
	related, err := h.related(ctx, userID, glossaryGUID, handler.TypeGlossary, handler.End1, []string{handler.RelTermAnchor}, handler.TypeGlossaryTerm, opts)
	if err != nil {
		return nil, err
	}
	return h.terms(ctx, userID, relatedEntities(related), opts)
}

// GetTermsForGlossaryCategory returns the terms linked to the category. An
// empty status list accepts every categorization status.
func (h *GlossaryExchangeHandler) GetTermsForGlossaryCategory(ctx context.Context, userID, categoryGUID string, limitResultsByStatus []TermRelationshipStatus, opts QueryOptions) ([]GlossaryTermElement, error) {
	if err := validateGUID(categoryGUID, "glossaryCategoryGUID"); err != nil {
		return nil, err
	}
	if len(limitResultsByStatus) == 0 {
		related, err := h.related(ctx, userID, categoryGUID, handler.TypeGlossaryCategory, handler.End1, []string{handler.RelTermCategorization}, handler.TypeGlossaryTerm, opts)
		if err != nil {
			return nil, err
		}
		return h.terms(ctx, userID, relatedEntities(related), opts)
	}

	// Filter the whole list before paging.
	if err := validatePage(opts); err != nil {
		return nil, err
	}
	related, err := h.allRelated(ctx, userID, categoryGUID, handler.TypeGlossaryCategory, handler.End1, []string{handler.RelTermCategorization}, handler.TypeGlossaryTerm, opts.EffectiveTime)
	if err != nil {
		return nil, err
	}
	related = lo.Filter(related, func(r handler.RelatedEntity, _ int) bool {
		return slices.Contains(limitResultsByStatus, categorizationStatus(&r.Relationship))
	})
	return h.terms(ctx, userID, relatedEntities(page(related, opts)), opts)
}

func (h *GlossaryExchangeHandler) GetGlossaryTermsByName(ctx context.Context, userID, name string, opts QueryOptions) ([]GlossaryTermElement, error) {
	if err := validateName(name, "name"); err != nil {
		return nil, err
	}
	entities, err := h.entities.GetEntitiesByName(ctx, userID, handler.TypeGlossaryTerm, name, opts.StartFrom, opts.PageSize, opts.EffectiveTime)
	if err != nil {
		return nil, err
	}
	return h.terms(ctx, userID, entities, opts)
}

func (h *GlossaryExchangeHandler) GetGlossaryTermsForAssetManager(ctx context.Context, userID string, opts QueryOptions) ([]GlossaryTermElement, error) {
	entities, err := h.forAssetManager(ctx, userID, handler.TypeGlossaryTerm, opts)
	if err != nil {
		return nil, err
	}
	return h.terms(ctx, userID, entities, opts)
}

func (h *GlossaryExchangeHandler) GetGlossaryTermByGUID(ctx context.Context, userID, termGUID string, opts QueryOptions) (*GlossaryTermElement, error) {
	if err := validateGUID(termGUID, "glossaryTermGUID"); err != nil {
		return nil, err
	}
	entity, err := h.entities.GetEntity(ctx, userID, termGUID, handler.TypeGlossaryTerm, opts.EffectiveTime)
	if err != nil {
		return nil, err
	}
	elements, err := h.terms(ctx, userID, []model.Entity{*entity}, opts)
	if err != nil {
		return nil, err
	}
	return &elements[0], nil
}

// GetRelatedTerms returns the terms linked to termGUID by relationships of
// typeName, or by any term relationship when typeName is empty.
func (h *GlossaryExchangeHandler) GetRelatedTerms(ctx context.Context, userID, termGUID, typeName string, opts QueryOptions) ([]RelatedTermElement, error) {
	if err := validateGUID(termGUID, "glossaryTermGUID"); err != nil {
		return nil, err
	}
	relTypes := h.GetTermRelationshipTypeNames()
	if typeName != "" {
		if err := h.checkTermRelationship(typeName); err != nil {
			return nil, err
		}
		relTypes = []string{typeName}
	}
	related, err := h.related(ctx, userID, termGUID, handler.TypeGlossaryTerm, handler.AnyEnd, relTypes, handler.TypeGlossaryTerm, opts)
	if err != nil {
		return nil, err
	}
	terms, err := h.terms(ctx, userID, relatedEntities(related), opts)
	if err != nil {
		return nil, err
	}
	result := make([]RelatedTermElement, 0, len(related))
	for i := range related {
		result = append(result, RelatedTermElement{
			Relationship:           relationshipHeader(&related[i].Relationship),
			RelationshipProperties: termRelationship(&related[i].Relationship),
			RelatedTerm:            terms[i],
		})
	}
	return result, nil
}

// page applies the paging in opts to a complete result list.
func page[T any](items []T, opts QueryOptions) []T {
	if opts.StartFrom >= len(items) {
		return nil
	}
	items = items[opts.StartFrom:]
	if opts.PageSize > 0 && opts.PageSize < len(items) {
		items = items[:opts.PageSize]
	}
	return items
}
