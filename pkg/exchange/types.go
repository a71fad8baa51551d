package exchange

import (
	"time"
)

// MetadataCorrelationProperties identifies the asset manager making a request
// and, optionally, the identifier it uses for the element concerned.
type MetadataCorrelationProperties struct {
	AssetManagerGUID           string                   `json:"assetManagerGUID,omitempty" yaml:"assetManagerGUID,omitempty"`
	AssetManagerName           string                   `json:"assetManagerName,omitempty" yaml:"assetManagerName,omitempty"`
	ExternalIdentifier         string                   `json:"externalIdentifier,omitempty" yaml:"externalIdentifier,omitempty"`
	ExternalIdentifierName     string                   `json:"externalIdentifierName,omitempty" yaml:"externalIdentifierName,omitempty"`
	ExternalIdentifierUsage    string                   `json:"externalIdentifierUsage,omitempty" yaml:"externalIdentifierUsage,omitempty"`
	ExternalIdentifierSource   string                   `json:"externalIdentifierSource,omitempty" yaml:"externalIdentifierSource,omitempty"`
	KeyPattern                 KeyPattern               `json:"keyPattern" yaml:"keyPattern"`
	MappingProperties          map[string]string        `json:"mappingProperties,omitempty" yaml:"mappingProperties,omitempty"`
	SynchronizationDirection   SynchronizationDirection `json:"synchronizationDirection" yaml:"synchronizationDirection"`
	SynchronizationDescription string                   `json:"synchronizationDescription,omitempty" yaml:"synchronizationDescription,omitempty"`
}

// MetadataCorrelationHeader is returned with an element and describes one of
// its external identifiers.
type MetadataCorrelationHeader struct {
	MetadataCorrelationProperties
	LastSynchronized *time.Time `json:"lastSynchronized,omitempty"`
}

// QueryOptions are the common parameters of the retrieval operations. When
// AssetManagerGUID is set each element carries the correlation headers of
// that asset manager.
type QueryOptions struct {
	AssetManagerGUID string
	AssetManagerName string
	StartFrom        int
	PageSize         int
	EffectiveTime    time.Time
}

type ElementType struct {
	TypeName       string   `json:"typeName"`
	SuperTypeNames []string `json:"superTypeNames,omitempty"`
}

// ElementOrigin says which metadata collection owns an element.
type ElementOrigin struct {
	// OriginCategory is LOCAL_COHORT for elements owned by the repository
	// and EXTERNAL_SOURCE for elements homed in an asset manager.
	OriginCategory             string `json:"originCategory"`
	HomeMetadataCollectionID   string `json:"homeMetadataCollectionId,omitempty"`
	HomeMetadataCollectionName string `json:"homeMetadataCollectionName,omitempty"`
}

type ElementVersions struct {
	CreatedBy  string    `json:"createdBy"`
	UpdatedBy  string    `json:"updatedBy,omitempty"`
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
	Version    int64     `json:"version"`
}

type ElementClassification struct {
	Name       string         `json:"classificationName"`
	Properties map[string]any `json:"classificationProperties,omitempty"`
}

// ElementHeader describes the stored instance behind an element.
type ElementHeader struct {
	GUID            string                  `json:"guid"`
	Type            ElementType             `json:"type"`
	Origin          ElementOrigin           `json:"origin"`
	Versions        ElementVersions         `json:"versions"`
	Status          ElementStatus           `json:"status"`
	Classifications []ElementClassification `json:"classifications,omitempty"`
	EffectiveFrom   *time.Time              `json:"effectiveFrom,omitempty"`
	EffectiveTo     *time.Time              `json:"effectiveTo,omitempty"`
}

// RelationshipHeader describes the stored relationship behind a related element.
type RelationshipHeader struct {
	GUID          string          `json:"guid"`
	TypeName      string          `json:"typeName"`
	End1GUID      string          `json:"end1GUID"`
	End2GUID      string          `json:"end2GUID"`
	Versions      ElementVersions `json:"versions"`
	EffectiveFrom *time.Time      `json:"effectiveFrom,omitempty"`
	EffectiveTo   *time.Time      `json:"effectiveTo,omitempty"`
}

// TemplateProperties override the values copied from a template.
type TemplateProperties struct {
	QualifiedName string `json:"qualifiedName" yaml:"qualifiedName" validate:"required"`
	DisplayName   string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
}

// RelationshipProperties are the values every relationship can carry.
type RelationshipProperties struct {
	EffectiveFrom      *time.Time     `json:"effectiveFrom,omitempty" yaml:"effectiveFrom,omitempty"`
	EffectiveTo        *time.Time     `json:"effectiveTo,omitempty" yaml:"effectiveTo,omitempty"`
	ExtendedProperties map[string]any `json:"extendedProperties,omitempty" yaml:"extendedProperties,omitempty"`
}

type GlossaryProperties struct {
	QualifiedName        string            `json:"qualifiedName" yaml:"qualifiedName" validate:"required"`
	DisplayName          string            `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description          string            `json:"description,omitempty" yaml:"description,omitempty"`
	Language             string            `json:"language,omitempty" yaml:"language,omitempty"`
	Usage                string            `json:"usage,omitempty" yaml:"usage,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	ExtendedProperties   map[string]any    `json:"extendedProperties,omitempty" yaml:"extendedProperties,omitempty"`
	EffectiveFrom        *time.Time        `json:"effectiveFrom,omitempty" yaml:"effectiveFrom,omitempty"`
	EffectiveTo          *time.Time        `json:"effectiveTo,omitempty" yaml:"effectiveTo,omitempty"`
}

type GlossaryElement struct {
	ElementHeader ElementHeader               `json:"elementHeader"`
	Correlation   []MetadataCorrelationHeader `json:"correlationHeaders,omitempty"`
	Properties    GlossaryProperties          `json:"glossaryProperties"`
}

type GlossaryCategoryProperties struct {
	QualifiedName        string            `json:"qualifiedName" yaml:"qualifiedName" validate:"required"`
	DisplayName          string            `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description          string            `json:"description,omitempty" yaml:"description,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	ExtendedProperties   map[string]any    `json:"extendedProperties,omitempty" yaml:"extendedProperties,omitempty"`
	EffectiveFrom        *time.Time        `json:"effectiveFrom,omitempty" yaml:"effectiveFrom,omitempty"`
	EffectiveTo          *time.Time        `json:"effectiveTo,omitempty" yaml:"effectiveTo,omitempty"`
}

type GlossaryCategoryElement struct {
	ElementHeader ElementHeader               `json:"elementHeader"`
	Correlation   []MetadataCorrelationHeader `json:"correlationHeaders,omitempty"`
	Properties    GlossaryCategoryProperties  `json:"glossaryCategoryProperties"`
}

type GlossaryTermProperties struct {
	QualifiedName        string            `json:"qualifiedName" yaml:"qualifiedName" validate:"required"`
	DisplayName          string            `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Summary              string            `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description          string            `json:"description,omitempty" yaml:"description,omitempty"`
	Examples             string            `json:"examples,omitempty" yaml:"examples,omitempty"`
	Abbreviation         string            `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	Usage                string            `json:"usage,omitempty" yaml:"usage,omitempty"`
	PublishVersionID     string            `json:"publishVersionIdentifier,omitempty" yaml:"publishVersionIdentifier,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	ExtendedProperties   map[string]any    `json:"extendedProperties,omitempty" yaml:"extendedProperties,omitempty"`
	EffectiveFrom        *time.Time        `json:"effectiveFrom,omitempty" yaml:"effectiveFrom,omitempty"`
	EffectiveTo          *time.Time        `json:"effectiveTo,omitempty" yaml:"effectiveTo,omitempty"`
}

type GlossaryTermElement struct {
	ElementHeader ElementHeader               `json:"elementHeader"`
	Correlation   []MetadataCorrelationHeader `json:"correlationHeaders,omitempty"`
	Properties    GlossaryTermProperties      `json:"glossaryTermProperties"`
}

// GlossaryTermCategorization is carried by the link between a category and a term.
type GlossaryTermCategorization struct {
	Description   string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Status        TermRelationshipStatus `json:"status" yaml:"status"`
	EffectiveFrom *time.Time             `json:"effectiveFrom,omitempty" yaml:"effectiveFrom,omitempty"`
	EffectiveTo   *time.Time             `json:"effectiveTo,omitempty" yaml:"effectiveTo,omitempty"`
}

// GlossaryTermRelationship is carried by the links between two terms.
type GlossaryTermRelationship struct {
	Expression  string `json:"expression,omitempty" yaml:"expression,omitempty"`
	Confidence  int    `json:"confidence,omitempty" yaml:"confidence,omitempty" validate:"gte=0,lte=100"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Status is left unchanged by a merge update when nil.
	Status        *TermRelationshipStatus `json:"status,omitempty" yaml:"status,omitempty"`
	Steward       string                  `json:"steward,omitempty" yaml:"steward,omitempty"`
	Source        string                  `json:"source,omitempty" yaml:"source,omitempty"`
	EffectiveFrom *time.Time              `json:"effectiveFrom,omitempty" yaml:"effectiveFrom,omitempty"`
	EffectiveTo   *time.Time              `json:"effectiveTo,omitempty" yaml:"effectiveTo,omitempty"`
}

// RelatedTermElement is a term reached through a term relationship.
type RelatedTermElement struct {
	Relationship           RelationshipHeader       `json:"relationshipHeader"`
	RelationshipProperties GlossaryTermRelationship `json:"relationshipProperties"`
	RelatedTerm            GlossaryTermElement      `json:"relatedElement"`
}

// ContextDefinitionProperties are carried by the ContextDefinition classification.
type ContextDefinitionProperties struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Scope       string `json:"scope,omitempty" yaml:"scope,omitempty"`
}

type DataAssetProperties struct {
	QualifiedName string `json:"qualifiedName" yaml:"qualifiedName" validate:"required"`
	// TypeName is DataAsset or one of its subtypes. Empty means DataAsset.
	TypeName             string            `json:"typeName,omitempty" yaml:"typeName,omitempty"`
	DisplayName          string            `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description          string            `json:"description,omitempty" yaml:"description,omitempty"`
	Owner                string            `json:"owner,omitempty" yaml:"owner,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	ExtendedProperties   map[string]any    `json:"extendedProperties,omitempty" yaml:"extendedProperties,omitempty"`
	EffectiveFrom        *time.Time        `json:"effectiveFrom,omitempty" yaml:"effectiveFrom,omitempty"`
	EffectiveTo          *time.Time        `json:"effectiveTo,omitempty" yaml:"effectiveTo,omitempty"`
}

type DataAssetElement struct {
	ElementHeader ElementHeader               `json:"elementHeader"`
	Correlation   []MetadataCorrelationHeader `json:"correlationHeaders,omitempty"`
	Properties    DataAssetProperties         `json:"dataAssetProperties"`
	// Zones lists the governance zones the asset is visible in.
	Zones []string `json:"zoneMembership,omitempty"`
}

// RelatedDataAssetElement is a data asset reached through a relationship.
type RelatedDataAssetElement struct {
	Relationship           RelationshipHeader     `json:"relationshipHeader"`
	RelationshipProperties RelationshipProperties `json:"relationshipProperties"`
	RelatedAsset           DataAssetElement       `json:"relatedElement"`
}

type CommentProperties struct {
	QualifiedName        string            `json:"qualifiedName" yaml:"qualifiedName" validate:"required"`
	CommentType          CommentType       `json:"commentType" yaml:"commentType"`
	CommentText          string            `json:"commentText" yaml:"commentText" validate:"required"`
	IsPublic             bool              `json:"isPublic" yaml:"isPublic"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	ExtendedProperties   map[string]any    `json:"extendedProperties,omitempty" yaml:"extendedProperties,omitempty"`
	EffectiveFrom        *time.Time        `json:"effectiveFrom,omitempty" yaml:"effectiveFrom,omitempty"`
	EffectiveTo          *time.Time        `json:"effectiveTo,omitempty" yaml:"effectiveTo,omitempty"`
}

type CommentElement struct {
	ElementHeader ElementHeader               `json:"elementHeader"`
	Correlation   []MetadataCorrelationHeader `json:"correlationHeaders,omitempty"`
	Properties    CommentProperties           `json:"commentProperties"`
}

type AssetManagerProperties struct {
	QualifiedName   string `json:"qualifiedName" yaml:"qualifiedName" validate:"required"`
	DisplayName     string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	TypeDescription string `json:"typeDescription,omitempty" yaml:"typeDescription,omitempty"`
	Version         string `json:"version,omitempty" yaml:"version,omitempty"`
	PatchLevel      string `json:"patchLevel,omitempty" yaml:"patchLevel,omitempty"`
	Source          string `json:"source,omitempty" yaml:"source,omitempty"`
}
