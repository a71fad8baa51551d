package exchange

import (
	"context"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

func (h *GlossaryExchangeHandler) categories(ctx context.Context, userID string, entities []model.Entity, opts QueryOptions) ([]GlossaryCategoryElement, error) {
	return convert(ctx, &h.base, userID, entities, opts, func(e *model.Entity, header ElementHeader, correlation []MetadataCorrelationHeader) GlossaryCategoryElement {
		return GlossaryCategoryElement{ElementHeader: header, Correlation: correlation, Properties: glossaryCategoryProperties(e)}
	})
}

func relatedEntities(related []handler.RelatedEntity) []model.Entity {
	entities := make([]model.Entity, 0, len(related))
	for _, r := range related {
		entities = append(entities, r.Entity)
	}
	return entities
}

// anchorIn creates the entity described by create and anchors it in the glossary.
func (h *GlossaryExchangeHandler) anchorIn(
	ctx context.Context,
	userID string,
	correlation *MetadataCorrelationProperties,
	assetManagerIsHome bool,
	glossaryGUID, anchorType, typeName string,
	create func() (string, error),
) (string, error) {
	if err := validateGUID(glossaryGUID, "glossaryGUID"); err != nil {
		return "", err
	}
	if _, err := h.entities.GetEntity(ctx, userID, glossaryGUID, handler.TypeGlossary, zeroTime); err != nil {
		return "", err
	}
	guid, err := create()
	if err != nil {
		return "", err
	}
	if _, err := h.link(ctx, userID, correlation, assetManagerIsHome, anchorType, glossaryGUID, guid, nil, nil); err != nil {
		return "", h.discard(ctx, userID, correlation, guid, typeName, err)
	}
	return guid, nil
}

// CreateGlossaryCategory creates a category in the glossary and returns its GUID.
func (h *GlossaryExchangeHandler) CreateGlossaryCategory(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, glossaryGUID string, props *GlossaryCategoryProperties) (string, error) {
	if err := validateProperties("glossaryCategoryProperties", props); err != nil {
		return "", err
	}
	if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
		return "", err
	}
	return h.anchorIn(ctx, userID, correlation, assetManagerIsHome, glossaryGUID, handler.RelCategoryAnchor, handler.TypeGlossaryCategory, func() (string, error) {
		return h.create(ctx, userID, correlation, assetManagerIsHome, props.request())
	})
}

func (h *GlossaryExchangeHandler) CreateGlossaryCategoryFromTemplate(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, glossaryGUID, templateGUID string, template *TemplateProperties) (string, error) {
	return h.anchorIn(ctx, userID, correlation, assetManagerIsHome, glossaryGUID, handler.RelCategoryAnchor, handler.TypeGlossaryCategory, func() (string, error) {
		return h.createFromTemplate(ctx, userID, correlation, assetManagerIsHome, templateGUID, handler.TypeGlossaryCategory, template)
	})
}

func (h *GlossaryExchangeHandler) UpdateGlossaryCategory(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, categoryGUID string, props *GlossaryCategoryProperties, isMergeUpdate bool) error {
	if err := validateGUID(categoryGUID, "glossaryCategoryGUID"); err != nil {
		return err
	}
	if err := validateProperties("glossaryCategoryProperties", props); err != nil {
		return err
	}
	if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
		return err
	}
	return h.update(ctx, userID, correlation, categoryGUID, handler.TypeGlossaryCategory, props.request(), isMergeUpdate)
}

// SetupCategoryParent makes parentGUID the parent of childGUID. A category
// has at most one parent.
func (h *GlossaryExchangeHandler) SetupCategoryParent(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, parentGUID, childGUID string, props *RelationshipProperties) error {
	if err := validateGUID(parentGUID, "glossaryParentCategoryGUID"); err != nil {
		return err
	}
	if err := validateGUID(childGUID, "glossaryChildCategoryGUID"); err != nil {
		return err
	}
	_, err := h.link(ctx, userID, correlation, assetManagerIsHome, handler.RelCategoryHierarchyLink, parentGUID, childGUID, props.properties(), props)
	return err
}

func (h *GlossaryExchangeHandler) ClearCategoryParent(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, parentGUID, childGUID string) error {
	if err := validateGUID(parentGUID, "glossaryParentCategoryGUID"); err != nil {
		return err
	}
	if err := validateGUID(childGUID, "glossaryChildCategoryGUID"); err != nil {
		return err
	}
	return h.entities.UnlinkEntities(ctx, userID, handler.RelCategoryHierarchyLink, parentGUID, childGUID, callerOf(correlation))
}

// RemoveGlossaryCategory removes the category. Its terms stay in the glossary.
func (h *GlossaryExchangeHandler) RemoveGlossaryCategory(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, categoryGUID string) error {
	if err := validateGUID(categoryGUID, "glossaryCategoryGUID"); err != nil {
		return err
	}
	return h.remove(ctx, userID, correlation, categoryGUID, handler.TypeGlossaryCategory)
}

func (h *GlossaryExchangeHandler) FindGlossaryCategories(ctx context.Context, userID, searchString string, opts QueryOptions) ([]GlossaryCategoryElement, error) {
	if err := validateName(searchString, "searchString"); err != nil {
		return nil, err
	}
	entities, err := h.entities.FindEntities(ctx, userID, handler.Query{
		TypeName:      handler.TypeGlossaryCategory,
		Search:        searchString,
		EffectiveTime: opts.EffectiveTime,
		StartFrom:     opts.StartFrom,
		PageSize:      opts.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return h.categories(ctx, userID, entities, opts)
}

func (h *GlossaryExchangeHandler) GetCategoriesForGlossary(ctx context.Context, userID, glossaryGUID string, opts QueryOptions) ([]GlossaryCategoryElement, error) {
	if err := validateGUID(glossaryGUID, "glossaryGUID"); err != nil {
		return nil, err
	}
	related, err := h.related(ctx, userID, glossaryGUID, handler.TypeGlossary, handler.End1, []string{handler.RelCategoryAnchor}, handler.TypeGlossaryCategory, opts)
	if err != nil {
		return nil, err
	}
	return h.categories(ctx, userID, relatedEntities(related), opts)
}

func (h *GlossaryExchangeHandler) GetGlossaryCategoriesByName(ctx context.Context, userID, name string, opts QueryOptions) ([]GlossaryCategoryElement, error) {
	if err := validateName(name, "name"); err != nil {
		return nil, err
	}
	entities, err := h.entities.GetEntitiesByName(ctx, userID, handler.TypeGlossaryCategory, name, opts.StartFrom, opts.PageSize, opts.EffectiveTime)
	if err != nil {
		return nil, err
	}
	return h.categories(ctx, userID, entities, opts)
}

func (h *GlossaryExchangeHandler) GetGlossaryCategoriesForAssetManager(ctx context.Context, userID string, opts QueryOptions) ([]GlossaryCategoryElement, error) {
	entities, err := h.forAssetManager(ctx, userID, handler.TypeGlossaryCategory, opts)
	if err != nil {
		return nil, err
	}
	return h.categories(ctx, userID, entities, opts)
}

func (h *GlossaryExchangeHandler) GetGlossaryCategoryByGUID(ctx context.Context, userID, categoryGUID string, opts QueryOptions) (*GlossaryCategoryElement, error) {
	if err := validateGUID(categoryGUID, "glossaryCategoryGUID"); err != nil {
		return nil, err
	}
	entity, err := h.entities.GetEntity(ctx, userID, categoryGUID, handler.TypeGlossaryCategory, opts.EffectiveTime)
	if err != nil {
		return nil, err
	}
	elements, err := h.categories(ctx, userID, []model.Entity{*entity}, opts)
	if err != nil {
		return nil, err
	}
	return &elements[0], nil
}

// GetGlossaryCategoryParent returns the parent of the category, or nil for a
// top level category.
func (h *GlossaryExchangeHandler) GetGlossaryCategoryParent(ctx context.Context, userID, categoryGUID string, opts QueryOptions) (*GlossaryCategoryElement, error) {
	if err := validateGUID(categoryGUID, "glossaryCategoryGUID"); err != nil {
		return nil, err
	}
	related, err := h.related(ctx, userID, categoryGUID, handler.TypeGlossaryCategory, handler.End2, []string{handler.RelCategoryHierarchyLink}, handler.TypeGlossaryCategory, QueryOptions{EffectiveTime: opts.EffectiveTime})
	if err != nil {
		return nil, err
	}
	if len(related) == 0 {
		return nil, nil
	}
	elements, err := h.categories(ctx, userID, relatedEntities(related[:1]), opts)
	if err != nil {
		return nil, err
	}
	return &elements[0], nil
}

func (h *GlossaryExchangeHandler) GetGlossarySubCategories(ctx context.Context, userID, categoryGUID string, opts QueryOptions) ([]GlossaryCategoryElement, error) {
	if err := validateGUID(categoryGUID, "glossaryCategoryGUID"); err != nil {
		return nil, err
	}
	related, err := h.related(ctx, userID, categoryGUID, handler.TypeGlossaryCategory, handler.End1, []string{handler.RelCategoryHierarchyLink}, handler.TypeGlossaryCategory, opts)
	if err != nil {
		return nil, err
	}
	return h.categories(ctx, userID, relatedEntities(related), opts)
}
