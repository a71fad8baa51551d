package exchange

import (
	"context"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

// GlossaryExchangeHandler exchanges glossaries, their categories and their
// terms with an asset manager.
type GlossaryExchangeHandler struct {
	base
}

func NewGlossaryExchangeHandler(entities EntityHandler, externalIDs ExternalIdentifierHandler, opts ...Option) *GlossaryExchangeHandler {
	return &GlossaryExchangeHandler{base: newBase("glossary-exchange", entities, externalIDs, buildOptions(opts))}
}

func (h *GlossaryExchangeHandler) glossaries(ctx context.Context, userID string, entities []model.Entity, opts QueryOptions) ([]GlossaryElement, error) {
	return convert(ctx, &h.base, userID, entities, opts, func(e *model.Entity, header ElementHeader, correlation []MetadataCorrelationHeader) GlossaryElement {
		return GlossaryElement{ElementHeader: header, Correlation: correlation, Properties: glossaryProperties(e)}
	})
}

func (h *GlossaryExchangeHandler) glossary(ctx context.Context, userID string, entity *model.Entity, opts QueryOptions) (*GlossaryElement, error) {
	elements, err := h.glossaries(ctx, userID, []model.Entity{*entity}, opts)
	if err != nil {
		return nil, err
	}
	return &elements[0], nil
}

// CreateGlossary creates a glossary and returns its GUID.
func (h *GlossaryExchangeHandler) CreateGlossary(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, props *GlossaryProperties) (string, error) {
	if err := validateProperties("glossaryProperties", props); err != nil {
		return "", err
	}
	if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
		return "", err
	}
	return h.create(ctx, userID, correlation, assetManagerIsHome, props.request())
}

// CreateGlossaryFromTemplate creates a glossary that starts as a copy of the template.
func (h *GlossaryExchangeHandler) CreateGlossaryFromTemplate(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, templateGUID string, template *TemplateProperties) (string, error) {
	return h.createFromTemplate(ctx, userID, correlation, assetManagerIsHome, templateGUID, handler.TypeGlossary, template)
}

func (h *GlossaryExchangeHandler) UpdateGlossary(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, glossaryGUID string, props *GlossaryProperties, isMergeUpdate bool) error {
	if err := validateGUID(glossaryGUID, "glossaryGUID"); err != nil {
		return err
	}
	if err := validateProperties("glossaryProperties", props); err != nil {
		return err
	}
	if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
		return err
	}
	return h.update(ctx, userID, correlation, glossaryGUID, handler.TypeGlossary, props.request(), isMergeUpdate)
}

// RemoveGlossary removes the glossary with its categories and terms.
func (h *GlossaryExchangeHandler) RemoveGlossary(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, glossaryGUID string) error {
	if err := validateGUID(glossaryGUID, "glossaryGUID"); err != nil {
		return err
	}
	return h.remove(ctx, userID, correlation, glossaryGUID, handler.TypeGlossary)
}

// SetGlossaryAsTaxonomy marks the glossary as organizing its categories as a taxonomy.
func (h *GlossaryExchangeHandler) SetGlossaryAsTaxonomy(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, glossaryGUID, organizingPrinciple string) error {
	if err := validateGUID(glossaryGUID, "glossaryGUID"); err != nil {
		return err
	}
	props := model.Properties(bag{}.str(propOrganizingPrinciple, organizingPrinciple))
	return h.classify(ctx, userID, correlation, glossaryGUID, handler.TypeGlossary, handler.ClassTaxonomy, props)
}

func (h *GlossaryExchangeHandler) ClearGlossaryAsTaxonomy(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, glossaryGUID string) error {
	if err := validateGUID(glossaryGUID, "glossaryGUID"); err != nil {
		return err
	}
	return h.declassify(ctx, userID, correlation, glossaryGUID, handler.TypeGlossary, handler.ClassTaxonomy)
}

// SetGlossaryAsCanonical marks the glossary as holding one term per concept within scope.
func (h *GlossaryExchangeHandler) SetGlossaryAsCanonical(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, glossaryGUID, scope string) error {
	if err := validateGUID(glossaryGUID, "glossaryGUID"); err != nil {
		return err
	}
	props := model.Properties(bag{}.str(propScope, scope))
	return h.classify(ctx, userID, correlation, glossaryGUID, handler.TypeGlossary, handler.ClassCanonicalVocabulary, props)
}

func (h *GlossaryExchangeHandler) ClearGlossaryAsCanonical(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, glossaryGUID string) error {
	if err := validateGUID(glossaryGUID, "glossaryGUID"); err != nil {
		return err
	}
	return h.declassify(ctx, userID, correlation, glossaryGUID, handler.TypeGlossary, handler.ClassCanonicalVocabulary)
}

// FindGlossaries returns the glossaries whose names match the regular expression searchString.
func (h *GlossaryExchangeHandler) FindGlossaries(ctx context.Context, userID, searchString string, opts QueryOptions) ([]GlossaryElement, error) {
	if err := validateName(searchString, "searchString"); err != nil {
		return nil, err
	}
	entities, err := h.entities.FindEntities(ctx, userID, handler.Query{
		TypeName:      handler.TypeGlossary,
		Search:        searchString,
		EffectiveTime: opts.EffectiveTime,
		StartFrom:     opts.StartFrom,
		PageSize:      opts.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return h.glossaries(ctx, userID, entities, opts)
}

func (h *GlossaryExchangeHandler) GetGlossariesByName(ctx context.Context, userID, name string, opts QueryOptions) ([]GlossaryElement, error) {
	if err := validateName(name, "name"); err != nil {
		return nil, err
	}
	entities, err := h.entities.GetEntitiesByName(ctx, userID, handler.TypeGlossary, name, opts.StartFrom, opts.PageSize, opts.EffectiveTime)
	if err != nil {
		return nil, err
	}
	return h.glossaries(ctx, userID, entities, opts)
}

// GetGlossariesForAssetManager returns the glossaries the asset manager has
// external identifiers for.
func (h *GlossaryExchangeHandler) GetGlossariesForAssetManager(ctx context.Context, userID string, opts QueryOptions) ([]GlossaryElement, error) {
	entities, err := h.forAssetManager(ctx, userID, handler.TypeGlossary, opts)
	if err != nil {
		return nil, err
	}
	return h.glossaries(ctx, userID, entities, opts)
}

func (h *GlossaryExchangeHandler) GetGlossaryByGUID(ctx context.Context, userID, glossaryGUID string, opts QueryOptions) (*GlossaryElement, error) {
	if err := validateGUID(glossaryGUID, "glossaryGUID"); err != nil {
		return nil, err
	}
	entity, err := h.entities.GetEntity(ctx, userID, glossaryGUID, handler.TypeGlossary, opts.EffectiveTime)
	if err != nil {
		return nil, err
	}
	return h.glossary(ctx, userID, entity, opts)
}

// GetGlossaryForCategory returns the glossary that anchors the category, or
// nil if it has none.
func (h *GlossaryExchangeHandler) GetGlossaryForCategory(ctx context.Context, userID, categoryGUID string, opts QueryOptions) (*GlossaryElement, error) {
	if err := validateGUID(categoryGUID, "glossaryCategoryGUID"); err != nil {
		return nil, err
	}
	return h.anchorGlossary(ctx, userID, categoryGUID, handler.TypeGlossaryCategory, handler.RelCategoryAnchor, opts)
}

// GetGlossaryForTerm returns the glossary that anchors the term, or nil if it has none.
func (h *GlossaryExchangeHandler) GetGlossaryForTerm(ctx context.Context, userID, termGUID string, opts QueryOptions) (*GlossaryElement, error) {
	if err := validateGUID(termGUID, "glossaryTermGUID"); err != nil {
		return nil, err
	}
	return h.anchorGlossary(ctx, userID, termGUID, handler.TypeGlossaryTerm, handler.RelTermAnchor, opts)
}

func (h *GlossaryExchangeHandler) anchorGlossary(ctx context.Context, userID, guid, typeName, relType string, opts QueryOptions) (*GlossaryElement, error) {
	related, err := h.related(ctx, userID, guid, typeName, handler.End2, []string{relType}, handler.TypeGlossary, QueryOptions{EffectiveTime: opts.EffectiveTime})
	if err != nil {
		return nil, err
	}
	if len(related) == 0 {
		return nil, nil
	}
	return h.glossary(ctx, userID, &related[0].Entity, opts)
}
