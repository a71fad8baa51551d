package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeRegistry_Hierarchy(t *testing.T) {
	r := DefaultTypes()

	assert.Equal(t, []string{TypeDataFile, TypeDataStore, TypeDataAsset, TypeAsset, TypeReferenceable}, r.SuperTypes(TypeCSVFile))
	assert.Empty(t, r.SuperTypes(TypeReferenceable))

	assert.True(t, r.IsTypeOf(TypeControlledGlossaryTerm, TypeGlossaryTerm))
	assert.True(t, r.IsTypeOf(TypeGlossaryTerm, TypeGlossaryTerm))
	assert.False(t, r.IsTypeOf(TypeGlossaryTerm, TypeControlledGlossaryTerm))
	assert.False(t, r.IsTypeOf("Unicorn", TypeReferenceable))

	assert.Equal(t, []string{TypeCSVFile, TypeDataAsset, TypeDataFile, TypeDataSet, TypeDataStore, TypeDatabase}, r.SubTypes(TypeDataAsset))
}

func TestTypeRegistry_Relationships(t *testing.T) {
	r := DefaultTypes()

	def, ok := r.Relationship(RelCategoryHierarchyLink)
	assert.True(t, ok)
	assert.True(t, def.SingleParent)
	assert.False(t, def.Anchors)

	termTypes := r.RelationshipTypesBetween(TypeGlossaryTerm, TypeGlossaryTerm)
	assert.Len(t, termTypes, 12)
	assert.Contains(t, termTypes, RelSynonym)
	assert.NotContains(t, termTypes, RelTermCategorization)

	assert.Equal(t, []string{RelAttachedComment, RelCategoryAnchor, RelTermAnchor}, r.AnchoringRelationships(TypeGlossary))
	assert.Equal(t, []string{RelAttachedComment}, r.AnchoringRelationships(TypeComment))
}

func TestTypeRegistry_Classifications(t *testing.T) {
	r := DefaultTypes()

	def, ok := r.Classification(ClassSpineObject)
	assert.True(t, ok)
	assert.Equal(t, TypeGlossaryTerm, def.EntityType)

	_, ok = r.Classification("Confidentiality")
	assert.False(t, ok)
}
