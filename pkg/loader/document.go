package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
)

// Document is an exchange document.
type Document struct {
	AssetManager exchange.AssetManagerProperties `yaml:"assetManager"`
	Glossaries   []Glossary                      `yaml:"glossaries,omitempty"`
	DataAssets   []DataAsset                     `yaml:"dataAssets,omitempty"`
}

type Glossary struct {
	Correlation exchange.MetadataCorrelationProperties `yaml:",inline"`
	Properties  exchange.GlossaryProperties            `yaml:"properties"`
	Categories  []Category                             `yaml:"categories,omitempty"`
	Terms       []Term                                 `yaml:"terms,omitempty"`
}

type Category struct {
	Correlation exchange.MetadataCorrelationProperties `yaml:",inline"`
	Properties  exchange.GlossaryCategoryProperties    `yaml:"properties"`
	// Parent is the external identifier of the parent category.
	Parent string `yaml:"parent,omitempty"`
}

type Term struct {
	Correlation exchange.MetadataCorrelationProperties `yaml:",inline"`
	Properties  exchange.GlossaryTermProperties        `yaml:"properties"`
	// Status makes the term a controlled term.
	Status *exchange.GlossaryTermStatus `yaml:"status,omitempty"`
	// Categories lists external identifiers of categories in the same glossary.
	Categories []string `yaml:"categories,omitempty"`
}

type DataAsset struct {
	Correlation exchange.MetadataCorrelationProperties `yaml:",inline"`
	Properties  exchange.DataAssetProperties           `yaml:"properties"`
	Published   bool                                   `yaml:"published,omitempty"`
}

// Parse reads a document and validates it.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errs.NullParameter("document")
		}
		return nil, fmt.Errorf("failed to parse exchange document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseFile reads the document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Validate checks that every element carries an external identifier that is
// unique in the document and that category and parent references resolve.
func (d *Document) Validate() error {
	if d.AssetManager.QualifiedName == "" {
		return errs.NullParameter("assetManager.qualifiedName")
	}

	var ids []string
	for gi, g := range d.Glossaries {
		if g.Correlation.ExternalIdentifier == "" {
			return errs.NullParameter(fmt.Sprintf("glossaries[%d].externalIdentifier", gi))
		}
		ids = append(ids, g.Correlation.ExternalIdentifier)

		categories := make(map[string]bool, len(g.Categories))
		for ci, c := range g.Categories {
			if c.Correlation.ExternalIdentifier == "" {
				return errs.NullParameter(fmt.Sprintf("glossaries[%d].categories[%d].externalIdentifier", gi, ci))
			}
			categories[c.Correlation.ExternalIdentifier] = true
			ids = append(ids, c.Correlation.ExternalIdentifier)
		}
		for _, c := range g.Categories {
			if c.Parent == "" {
				continue
			}
			if c.Parent == c.Correlation.ExternalIdentifier {
				return errs.InvalidParameter("parent", c.Parent+" can not be its own parent")
			}
			if !categories[c.Parent] {
				return errs.InvalidParameter("parent", c.Parent+" is not a category of "+g.Correlation.ExternalIdentifier)
			}
		}

		for ti, t := range g.Terms {
			if t.Correlation.ExternalIdentifier == "" {
				return errs.NullParameter(fmt.Sprintf("glossaries[%d].terms[%d].externalIdentifier", gi, ti))
			}
			ids = append(ids, t.Correlation.ExternalIdentifier)
			for _, c := range t.Categories {
				if !categories[c] {
					return errs.InvalidParameter("categories", c+" is not a category of "+g.Correlation.ExternalIdentifier)
				}
			}
		}
	}

	for ai, a := range d.DataAssets {
		if a.Correlation.ExternalIdentifier == "" {
			return errs.NullParameter(fmt.Sprintf("dataAssets[%d].externalIdentifier", ai))
		}
		ids = append(ids, a.Correlation.ExternalIdentifier)
	}

	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return errs.Duplicate("externalIdentifier", dups[0])
	}
	return nil
}
