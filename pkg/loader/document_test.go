package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
)

const salesDocument = `
assetManager:
  qualifiedName: crm
  displayName: Customer Relationship Manager
glossaries:
  - externalIdentifier: gl-sales
    externalIdentifierSource: crm-export
    properties:
      qualifiedName: Glossary::Sales
      language: en
    categories:
      - externalIdentifier: cat-parties
        properties:
          qualifiedName: Category::Parties
      - externalIdentifier: cat-customers
        parent: cat-parties
        properties:
          qualifiedName: Category::Customers
    terms:
      - externalIdentifier: term-customer
        status: DRAFT
        categories: [cat-customers]
        properties:
          qualifiedName: Term::Customer
          summary: Someone who buys
dataAssets:
  - externalIdentifier: tbl-customers
    published: true
    properties:
      qualifiedName: crm.customers
`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(salesDocument))
	require.NoError(t, err)

	assert.Equal(t, "crm", doc.AssetManager.QualifiedName)
	require.Len(t, doc.Glossaries, 1)

	g := doc.Glossaries[0]
	assert.Equal(t, "gl-sales", g.Correlation.ExternalIdentifier)
	assert.Equal(t, "crm-export", g.Correlation.ExternalIdentifierSource)
	assert.Equal(t, "en", g.Properties.Language)
	require.Len(t, g.Categories, 2)
	assert.Equal(t, "cat-parties", g.Categories[1].Parent)

	require.Len(t, g.Terms, 1)
	require.NotNil(t, g.Terms[0].Status)
	assert.Equal(t, exchange.GlossaryTermStatusDraft, *g.Terms[0].Status)
	assert.Equal(t, []string{"cat-customers"}, g.Terms[0].Categories)

	require.Len(t, doc.DataAssets, 1)
	assert.True(t, doc.DataAssets[0].Published)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		document string
		check    func(error) bool
	}{
		{
			name:     "empty document",
			document: "",
			check:    errs.IsInvalidParameter,
		},
		{
			name:     "missing asset manager",
			document: "glossaries: []\n",
			check:    errs.IsInvalidParameter,
		},
		{
			name: "missing external identifier",
			document: `
assetManager: {qualifiedName: crm}
dataAssets:
  - properties: {qualifiedName: crm.customers}
`,
			check: errs.IsInvalidParameter,
		},
		{
			name: "duplicate external identifier",
			document: `
assetManager: {qualifiedName: crm}
glossaries:
  - externalIdentifier: x-1
    properties: {qualifiedName: Glossary::Sales}
dataAssets:
  - externalIdentifier: x-1
    properties: {qualifiedName: crm.customers}
`,
			check: errs.IsDuplicate,
		},
		{
			name: "unknown parent",
			document: `
assetManager: {qualifiedName: crm}
glossaries:
  - externalIdentifier: gl-1
    properties: {qualifiedName: Glossary::Sales}
    categories:
      - externalIdentifier: cat-1
        parent: cat-9
        properties: {qualifiedName: Category::One}
`,
			check: errs.IsInvalidParameter,
		},
		{
			name: "own parent",
			document: `
assetManager: {qualifiedName: crm}
glossaries:
  - externalIdentifier: gl-1
    properties: {qualifiedName: Glossary::Sales}
    categories:
      - externalIdentifier: cat-1
        parent: cat-1
        properties: {qualifiedName: Category::One}
`,
			check: errs.IsInvalidParameter,
		},
		{
			name: "term category from another glossary",
			document: `
assetManager: {qualifiedName: crm}
glossaries:
  - externalIdentifier: gl-1
    properties: {qualifiedName: Glossary::One}
    categories:
      - externalIdentifier: cat-1
        properties: {qualifiedName: Category::One}
  - externalIdentifier: gl-2
    properties: {qualifiedName: Glossary::Two}
    terms:
      - externalIdentifier: term-1
        categories: [cat-1]
        properties: {qualifiedName: Term::One}
`,
			check: errs.IsInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.document))
			require.Error(t, err)
			assert.True(t, tt.check(err), err.Error())
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("assetManager: {qualifiedName: crm}\nglosaries: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse exchange document")
}

func TestParse_BadTermStatus(t *testing.T) {
	_, err := Parse(strings.NewReader(`
assetManager: {qualifiedName: crm}
glossaries:
  - externalIdentifier: gl-1
    properties: {qualifiedName: Glossary::One}
    terms:
      - externalIdentifier: term-1
        status: SHINY
        properties: {qualifiedName: Term::One}
`))
	require.Error(t, err)
}
