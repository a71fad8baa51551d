package handler

import (
	"sort"
)

// Entity type names.
const (
	TypeReferenceable          = "Referenceable"
	TypeAsset                  = "Asset"
	TypeDataAsset              = "DataAsset"
	TypeDataSet                = "DataSet"
	TypeDataStore              = "DataStore"
	TypeDatabase               = "Database"
	TypeDataFile               = "DataFile"
	TypeCSVFile                = "CSVFile"
	TypeGlossary               = "Glossary"
	TypeGlossaryCategory       = "GlossaryCategory"
	TypeGlossaryTerm           = "GlossaryTerm"
	TypeControlledGlossaryTerm = "ControlledGlossaryTerm"
	TypeComment                = "Comment"
	TypeSoftwareCapability     = "SoftwareCapability"
	TypeAssetManager           = "AssetManager"
)

// Relationship type names.
const (
	RelCategoryAnchor          = "CategoryAnchor"
	RelTermAnchor              = "TermAnchor"
	RelCategoryHierarchyLink   = "CategoryHierarchyLink"
	RelTermCategorization      = "TermCategorization"
	RelRelatedTerm             = "RelatedTerm"
	RelSynonym                 = "Synonym"
	RelAntonym                 = "Antonym"
	RelPreferredTerm           = "PreferredTerm"
	RelReplacementTerm         = "ReplacementTerm"
	RelTranslation             = "Translation"
	RelISARelationship         = "ISARelationship"
	RelValidValue              = "ValidValue"
	RelUsedInContext           = "UsedInContext"
	RelTermHASARelationship    = "TermHASARelationship"
	RelTermISATypeOF           = "TermISATypeOFRelationship"
	RelTermTYPEDBYRelationship = "TermTYPEDBYRelationship"
	RelAttachedComment         = "AttachedComment"
	RelAcceptedAnswer          = "AcceptedAnswer"
	RelDataContentForDataSet   = "DataContentForDataSet"
	RelDataFlow                = "DataFlow"
)

// Classification names.
const (
	ClassTaxonomy            = "Taxonomy"
	ClassCanonicalVocabulary = "CanonicalVocabulary"
	ClassAbstractConcept     = "AbstractConcept"
	ClassDataValue           = "DataValue"
	ClassContextDefinition   = "ContextDefinition"
	ClassSpineObject         = "SpineObject"
	ClassSpineAttribute      = "SpineAttribute"
	ClassObjectIdentifier    = "ObjectIdentifier"
	ClassAssetZoneMembership = "AssetZoneMembership"
	ClassTemplate            = "Template"
)

// RelationshipDef describes which entity types a relationship type links.
type RelationshipDef struct {
	Name     string
	End1Type string
	End2Type string

	// SingleParent limits each end 2 entity to one relationship of this type.
	SingleParent bool
	// Anchors means the end 2 entity is removed together with end 1.
	Anchors bool
}

// ClassificationDef describes which entity types a classification applies to.
type ClassificationDef struct {
	Name       string
	EntityType string
}

// TypeRegistry knows the entity, relationship and classification types the
// repository accepts.
type TypeRegistry struct {
	superTypes      map[string]string
	relationships   map[string]RelationshipDef
	classifications map[string]ClassificationDef
}

// DefaultTypes returns the registry of the open metadata types used by the
// exchange services.
func DefaultTypes() *TypeRegistry {
	r := &TypeRegistry{
		superTypes: map[string]string{
			TypeReferenceable:          "",
			TypeAsset:                  TypeReferenceable,
			TypeDataAsset:              TypeAsset,
			TypeDataSet:                TypeDataAsset,
			TypeDataStore:              TypeDataAsset,
			TypeDatabase:               TypeDataStore,
			TypeDataFile:               TypeDataStore,
			TypeCSVFile:                TypeDataFile,
			TypeGlossary:               TypeReferenceable,
			TypeGlossaryCategory:       TypeReferenceable,
			TypeGlossaryTerm:           TypeReferenceable,
			TypeControlledGlossaryTerm: TypeGlossaryTerm,
			TypeComment:                TypeReferenceable,
			TypeSoftwareCapability:     TypeReferenceable,
			TypeAssetManager:           TypeSoftwareCapability,
		},
		relationships:   map[string]RelationshipDef{},
		classifications: map[string]ClassificationDef{},
	}

	for _, def := range []RelationshipDef{
		{Name: RelCategoryAnchor, End1Type: TypeGlossary, End2Type: TypeGlossaryCategory, SingleParent: true, Anchors: true},
		{Name: RelTermAnchor, End1Type: TypeGlossary, End2Type: TypeGlossaryTerm, SingleParent: true, Anchors: true},
		{Name: RelCategoryHierarchyLink, End1Type: TypeGlossaryCategory, End2Type: TypeGlossaryCategory, SingleParent: true},
		{Name: RelTermCategorization, End1Type: TypeGlossaryCategory, End2Type: TypeGlossaryTerm},
		{Name: RelAttachedComment, End1Type: TypeReferenceable, End2Type: TypeComment, SingleParent: true, Anchors: true},
		{Name: RelAcceptedAnswer, End1Type: TypeComment, End2Type: TypeComment},
		{Name: RelDataContentForDataSet, End1Type: TypeDataAsset, End2Type: TypeDataSet},
		{Name: RelDataFlow, End1Type: TypeDataAsset, End2Type: TypeDataAsset},
	} {
		r.relationships[def.Name] = def
	}
	for _, name := range []string{
		RelRelatedTerm, RelSynonym, RelAntonym, RelPreferredTerm, RelReplacementTerm,
		RelTranslation, RelISARelationship, RelValidValue, RelUsedInContext,
		RelTermHASARelationship, RelTermISATypeOF, RelTermTYPEDBYRelationship,
	} {
		r.relationships[name] = RelationshipDef{Name: name, End1Type: TypeGlossaryTerm, End2Type: TypeGlossaryTerm}
	}

	for _, def := range []ClassificationDef{
		{Name: ClassTaxonomy, EntityType: TypeGlossary},
		{Name: ClassCanonicalVocabulary, EntityType: TypeGlossary},
		{Name: ClassAbstractConcept, EntityType: TypeGlossaryTerm},
		{Name: ClassDataValue, EntityType: TypeGlossaryTerm},
		{Name: ClassContextDefinition, EntityType: TypeGlossaryTerm},
		{Name: ClassSpineObject, EntityType: TypeGlossaryTerm},
		{Name: ClassSpineAttribute, EntityType: TypeGlossaryTerm},
		{Name: ClassObjectIdentifier, EntityType: TypeGlossaryTerm},
		{Name: ClassAssetZoneMembership, EntityType: TypeAsset},
		{Name: ClassTemplate, EntityType: TypeReferenceable},
	} {
		r.classifications[def.Name] = def
	}
	return r
}

func (r *TypeRegistry) IsEntityType(name string) bool {
	_, ok := r.superTypes[name]
	return ok
}

// SuperTypes returns the ancestors of name, nearest first.
func (r *TypeRegistry) SuperTypes(name string) []string {
	var result []string
	for t := r.superTypes[name]; t != ""; t = r.superTypes[t] {
		result = append(result, t)
	}
	return result
}

// IsTypeOf reports whether name is ancestor or one of its subtypes.
func (r *TypeRegistry) IsTypeOf(name, ancestor string) bool {
	if !r.IsEntityType(name) {
		return false
	}
	for t := name; t != ""; t = r.superTypes[t] {
		if t == ancestor {
			return true
		}
	}
	return false
}

// SubTypes returns name and all its subtypes in sorted order.
func (r *TypeRegistry) SubTypes(name string) []string {
	var result []string
	for t := range r.superTypes {
		if r.IsTypeOf(t, name) {
			result = append(result, t)
		}
	}
	sort.Strings(result)
	return result
}

func (r *TypeRegistry) Relationship(name string) (RelationshipDef, bool) {
	def, ok := r.relationships[name]
	return def, ok
}

// RelationshipTypesBetween returns the relationship types whose ends are
// exactly end1Type and end2Type, sorted by name.
func (r *TypeRegistry) RelationshipTypesBetween(end1Type, end2Type string) []string {
	var result []string
	for name, def := range r.relationships {
		if def.End1Type == end1Type && def.End2Type == end2Type {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}

// AnchoringRelationships returns the relationship types that anchor end 2
// entities to an end 1 entity of type typeName.
func (r *TypeRegistry) AnchoringRelationships(typeName string) []string {
	var result []string
	for name, def := range r.relationships {
		if def.Anchors && r.IsTypeOf(typeName, def.End1Type) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}

func (r *TypeRegistry) Classification(name string) (ClassificationDef, bool) {
	def, ok := r.classifications[name]
	return def, ok
}
