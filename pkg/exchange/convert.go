package exchange

import (
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

// Keys of the stored property bag.
const (
	propDescription          = "description"
	propLanguage             = "language"
	propUsage                = "usage"
	propSummary              = "summary"
	propExamples             = "examples"
	propAbbreviation         = "abbreviation"
	propPublishVersionID     = "publishVersionIdentifier"
	propOwner                = "owner"
	propCommentType          = "commentType"
	propCommentText          = "commentText"
	propIsPublic             = "isPublic"
	propTypeDescription      = "deployedImplementationType"
	propVersion              = "version"
	propPatchLevel           = "patchLevel"
	propSource               = "source"
	propAdditionalProperties = "additionalProperties"
	propExtendedProperties   = "extendedProperties"

	propOrganizingPrinciple = "organizingPrinciple"
	propScope               = "scope"
	propZoneMembership      = "zoneMembership"

	propExpression = "expression"
	propConfidence = "confidence"
	propStatus     = "status"
	propSteward    = "steward"
)

// bag collects the non-empty values of a properties object.
type bag model.Properties

func (b bag) str(key, value string) bag {
	if value != "" {
		b[key] = value
	}
	return b
}

func (b bag) maps(additional map[string]string, extended map[string]any) bag {
	if len(additional) > 0 {
		b[propAdditionalProperties] = additional
	}
	if len(extended) > 0 {
		b[propExtendedProperties] = extended
	}
	return b
}

func (p *GlossaryProperties) request() handler.EntityRequest {
	return handler.EntityRequest{
		TypeName:      handler.TypeGlossary,
		QualifiedName: p.QualifiedName,
		DisplayName:   p.DisplayName,
		Properties: model.Properties(bag{}.
			str(propDescription, p.Description).
			str(propLanguage, p.Language).
			str(propUsage, p.Usage).
			maps(p.AdditionalProperties, p.ExtendedProperties)),
		EffectiveFrom: p.EffectiveFrom,
		EffectiveTo:   p.EffectiveTo,
	}
}

func glossaryProperties(e *model.Entity) GlossaryProperties {
	return GlossaryProperties{
		QualifiedName:        e.QualifiedName,
		DisplayName:          e.DisplayName,
		Description:          e.Properties.String(propDescription),
		Language:             e.Properties.String(propLanguage),
		Usage:                e.Properties.String(propUsage),
		AdditionalProperties: e.Properties.StringMap(propAdditionalProperties),
		ExtendedProperties:   e.Properties.AnyMap(propExtendedProperties),
		EffectiveFrom:        e.EffectiveFrom,
		EffectiveTo:          e.EffectiveTo,
	}
}

func (p *GlossaryCategoryProperties) request() handler.EntityRequest {
	return handler.EntityRequest{
		TypeName:      handler.TypeGlossaryCategory,
		QualifiedName: p.QualifiedName,
		DisplayName:   p.DisplayName,
		Properties: model.Properties(bag{}.
			str(propDescription, p.Description).
			maps(p.AdditionalProperties, p.ExtendedProperties)),
		EffectiveFrom: p.EffectiveFrom,
		EffectiveTo:   p.EffectiveTo,
	}
}

func glossaryCategoryProperties(e *model.Entity) GlossaryCategoryProperties {
	return GlossaryCategoryProperties{
		QualifiedName:        e.QualifiedName,
		DisplayName:          e.DisplayName,
		Description:          e.Properties.String(propDescription),
		AdditionalProperties: e.Properties.StringMap(propAdditionalProperties),
		ExtendedProperties:   e.Properties.AnyMap(propExtendedProperties),
		EffectiveFrom:        e.EffectiveFrom,
		EffectiveTo:          e.EffectiveTo,
	}
}

func (p *GlossaryTermProperties) request(typeName string) handler.EntityRequest {
	return handler.EntityRequest{
		TypeName:      typeName,
		QualifiedName: p.QualifiedName,
		DisplayName:   p.DisplayName,
		Properties: model.Properties(bag{}.
			str(propSummary, p.Summary).
			str(propDescription, p.Description).
			str(propExamples, p.Examples).
			str(propAbbreviation, p.Abbreviation).
			str(propUsage, p.Usage).
			str(propPublishVersionID, p.PublishVersionID).
			maps(p.AdditionalProperties, p.ExtendedProperties)),
		EffectiveFrom: p.EffectiveFrom,
		EffectiveTo:   p.EffectiveTo,
	}
}

func glossaryTermProperties(e *model.Entity) GlossaryTermProperties {
	return GlossaryTermProperties{
		QualifiedName:        e.QualifiedName,
		DisplayName:          e.DisplayName,
		Summary:              e.Properties.String(propSummary),
		Description:          e.Properties.String(propDescription),
		Examples:             e.Properties.String(propExamples),
		Abbreviation:         e.Properties.String(propAbbreviation),
		Usage:                e.Properties.String(propUsage),
		PublishVersionID:     e.Properties.String(propPublishVersionID),
		AdditionalProperties: e.Properties.StringMap(propAdditionalProperties),
		ExtendedProperties:   e.Properties.AnyMap(propExtendedProperties),
		EffectiveFrom:        e.EffectiveFrom,
		EffectiveTo:          e.EffectiveTo,
	}
}

func (p *DataAssetProperties) request() handler.EntityRequest {
	typeName := p.TypeName
	if typeName == "" {
		typeName = handler.TypeDataAsset
	}
	return handler.EntityRequest{
		TypeName:      typeName,
		QualifiedName: p.QualifiedName,
		DisplayName:   p.DisplayName,
		Properties: model.Properties(bag{}.
			str(propDescription, p.Description).
			str(propOwner, p.Owner).
			maps(p.AdditionalProperties, p.ExtendedProperties)),
		EffectiveFrom: p.EffectiveFrom,
		EffectiveTo:   p.EffectiveTo,
	}
}

func dataAssetProperties(e *model.Entity) DataAssetProperties {
	return DataAssetProperties{
		QualifiedName:        e.QualifiedName,
		TypeName:             e.TypeName,
		DisplayName:          e.DisplayName,
		Description:          e.Properties.String(propDescription),
		Owner:                e.Properties.String(propOwner),
		AdditionalProperties: e.Properties.StringMap(propAdditionalProperties),
		ExtendedProperties:   e.Properties.AnyMap(propExtendedProperties),
		EffectiveFrom:        e.EffectiveFrom,
		EffectiveTo:          e.EffectiveTo,
	}
}

func zonesOf(e *model.Entity) []string {
	if c := e.Classification(handler.ClassAssetZoneMembership); c != nil {
		return c.Properties.Strings(propZoneMembership)
	}
	return nil
}

// The comment text doubles as the display name so that comments can be
// found by searching their text.
func (p *CommentProperties) request() handler.EntityRequest {
	props := bag{}.
		str(propCommentText, p.CommentText).
		maps(p.AdditionalProperties, p.ExtendedProperties)
	props[propCommentType] = int(p.CommentType)
	props[propIsPublic] = p.IsPublic
	return handler.EntityRequest{
		TypeName:      handler.TypeComment,
		QualifiedName: p.QualifiedName,
		DisplayName:   p.CommentText,
		Properties:    model.Properties(props),
		EffectiveFrom: p.EffectiveFrom,
		EffectiveTo:   p.EffectiveTo,
	}
}

func commentTypeOf(e *model.Entity) CommentType {
	n, ok := e.Properties.Int(propCommentType)
	if !ok {
		return CommentTypeStandardComment
	}
	return CommentType(n)
}

func commentProperties(e *model.Entity) CommentProperties {
	isPublic, _ := e.Properties[propIsPublic].(bool)
	return CommentProperties{
		QualifiedName:        e.QualifiedName,
		CommentType:          commentTypeOf(e),
		CommentText:          e.Properties.String(propCommentText),
		IsPublic:             isPublic,
		AdditionalProperties: e.Properties.StringMap(propAdditionalProperties),
		ExtendedProperties:   e.Properties.AnyMap(propExtendedProperties),
		EffectiveFrom:        e.EffectiveFrom,
		EffectiveTo:          e.EffectiveTo,
	}
}

func (p *AssetManagerProperties) request() handler.EntityRequest {
	return handler.EntityRequest{
		TypeName:      handler.TypeAssetManager,
		QualifiedName: p.QualifiedName,
		DisplayName:   p.DisplayName,
		Properties: model.Properties(bag{}.
			str(propDescription, p.Description).
			str(propTypeDescription, p.TypeDescription).
			str(propVersion, p.Version).
			str(propPatchLevel, p.PatchLevel).
			str(propSource, p.Source)),
	}
}

func (p *RelationshipProperties) properties() model.Properties {
	if p == nil || len(p.ExtendedProperties) == 0 {
		return model.Properties{}
	}
	return model.Properties{propExtendedProperties: p.ExtendedProperties}
}

func (p *RelationshipProperties) update() handler.RelationshipUpdate {
	if p == nil {
		return handler.RelationshipUpdate{Properties: model.Properties{}}
	}
	return handler.RelationshipUpdate{
		Properties:    p.properties(),
		EffectiveFrom: p.EffectiveFrom,
		EffectiveTo:   p.EffectiveTo,
	}
}

func relationshipProperties(r *model.Relationship) RelationshipProperties {
	return RelationshipProperties{
		EffectiveFrom:      r.EffectiveFrom,
		EffectiveTo:        r.EffectiveTo,
		ExtendedProperties: r.Properties.AnyMap(propExtendedProperties),
	}
}

func (p *GlossaryTermRelationship) properties() model.Properties {
	props := bag{}.
		str(propExpression, p.Expression).
		str(propDescription, p.Description).
		str(propSteward, p.Steward).
		str(propSource, p.Source)
	if p.Confidence != 0 {
		props[propConfidence] = p.Confidence
	}
	if p.Status != nil {
		props[propStatus] = int(*p.Status)
	}
	return model.Properties(props)
}

func termRelationship(r *model.Relationship) GlossaryTermRelationship {
	confidence, _ := r.Properties.Int(propConfidence)
	status := categorizationStatus(r)
	return GlossaryTermRelationship{
		Expression:    r.Properties.String(propExpression),
		Confidence:    confidence,
		Description:   r.Properties.String(propDescription),
		Status:        &status,
		Steward:       r.Properties.String(propSteward),
		Source:        r.Properties.String(propSource),
		EffectiveFrom: r.EffectiveFrom,
		EffectiveTo:   r.EffectiveTo,
	}
}

func (p *GlossaryTermCategorization) properties() model.Properties {
	props := bag{}.str(propDescription, p.Description)
	props[propStatus] = int(p.Status)
	return model.Properties(props)
}

func categorizationStatus(r *model.Relationship) TermRelationshipStatus {
	status, _ := r.Properties.Int(propStatus)
	return TermRelationshipStatus(status)
}
