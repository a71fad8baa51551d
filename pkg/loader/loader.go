package loader

import (
	"context"
	"io"

	"github.com/code19m/errx"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
)

// AssetManagers registers the asset manager and resolves its identifiers.
type AssetManagers interface {
	CreateAssetManager(ctx context.Context, userID string, props *exchange.AssetManagerProperties) (string, error)
	GetAssetManagerGUID(ctx context.Context, userID, qualifiedName string) (string, error)
	ResolveExternalIdentifier(ctx context.Context, userID, assetManagerGUID, identifier string) (string, error)
}

// Glossaries is the part of the glossary exchange the loader drives.
type Glossaries interface {
	CreateGlossary(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, props *exchange.GlossaryProperties) (string, error)
	UpdateGlossary(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, glossaryGUID string, props *exchange.GlossaryProperties, isMergeUpdate bool) error
	CreateGlossaryCategory(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, glossaryGUID string, props *exchange.GlossaryCategoryProperties) (string, error)
	UpdateGlossaryCategory(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, categoryGUID string, props *exchange.GlossaryCategoryProperties, isMergeUpdate bool) error
	SetupCategoryParent(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, parentGUID, childGUID string, props *exchange.RelationshipProperties) error
	CreateGlossaryTerm(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, glossaryGUID string, props *exchange.GlossaryTermProperties) (string, error)
	CreateControlledGlossaryTerm(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, glossaryGUID string, props *exchange.GlossaryTermProperties, initialStatus exchange.GlossaryTermStatus) (string, error)
	UpdateGlossaryTerm(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, termGUID string, props *exchange.GlossaryTermProperties, isMergeUpdate bool) error
	UpdateGlossaryTermStatus(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, termGUID string, status exchange.GlossaryTermStatus) error
	SetupTermCategory(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, categoryGUID, termGUID string, props *exchange.GlossaryTermCategorization) error
}

// DataAssets is the part of the data asset exchange the loader drives.
type DataAssets interface {
	CreateDataAsset(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetManagerIsHome bool, props *exchange.DataAssetProperties) (string, error)
	UpdateDataAsset(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetGUID string, props *exchange.DataAssetProperties, isMergeUpdate bool) error
	PublishDataAsset(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetGUID string) error
	WithdrawDataAsset(ctx context.Context, userID string, correlation *exchange.MetadataCorrelationProperties, assetGUID string) error
}

// LoadResult describes what applying a document changed.
type LoadResult struct {
	AssetManagerGUID string `json:"assetManagerGUID"`
	// GUIDs maps each external identifier in the document to its repository GUID.
	GUIDs   map[string]string `json:"guids"`
	Created []string          `json:"created"`
	Updated []string          `json:"updated"`
}

// Loader applies exchange documents through the exchange facades.
type Loader struct {
	assetManagers AssetManagers
	glossaries    Glossaries
	dataAssets    DataAssets
	userID        string
	mergeUpdate   bool
	dryRun        bool
	log           logger.Logger
}

// NewLoader creates a loader acting as userID.
func NewLoader(assetManagers AssetManagers, glossaries Glossaries, dataAssets DataAssets, userID string) *Loader {
	return &Loader{
		assetManagers: assetManagers,
		glossaries:    glossaries,
		dataAssets:    dataAssets,
		userID:        userID,
		log:           logger.Nop(),
	}
}

// WithMergeUpdate keeps stored properties the document does not mention.
// By default the document replaces them.
func (l *Loader) WithMergeUpdate(merge bool) *Loader {
	l.mergeUpdate = merge
	return l
}

// WithDryRun sets whether to validate only without applying changes
func (l *Loader) WithDryRun(dryRun bool) *Loader {
	l.dryRun = dryRun
	return l
}

func (l *Loader) WithLogger(log logger.Logger) *Loader {
	l.log = log.Named("loader")
	return l
}

// LoadFromReader parses and applies a document from an io.Reader
func (l *Loader) LoadFromReader(ctx context.Context, r io.Reader) (*LoadResult, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, doc)
}

// LoadFromFile parses and applies the document at path.
func (l *Loader) LoadFromFile(ctx context.Context, path string) (*LoadResult, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, doc)
}

// Load applies a parsed document. Glossaries are applied before their
// categories and terms so the anchors exist, and category parents and term
// categorizations are linked once every element of the glossary is known.
func (l *Loader) Load(ctx context.Context, doc *Document) (*LoadResult, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	result := &LoadResult{GUIDs: make(map[string]string)}
	if l.dryRun {
		return result, nil
	}

	amGUID, err := l.assetManager(ctx, &doc.AssetManager)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{"asset_manager": doc.AssetManager.QualifiedName}))
	}
	result.AssetManagerGUID = amGUID

	run := &run{Loader: l, result: result, amGUID: amGUID, amName: doc.AssetManager.QualifiedName}
	for i := range doc.Glossaries {
		if err := run.glossary(ctx, &doc.Glossaries[i]); err != nil {
			return result, err
		}
	}
	for i := range doc.DataAssets {
		if err := run.dataAsset(ctx, &doc.DataAssets[i]); err != nil {
			return result, err
		}
	}

	l.log.Infof("applied exchange document for %s: %d created, %d updated",
		doc.AssetManager.QualifiedName, len(result.Created), len(result.Updated))
	return result, nil
}

func (l *Loader) assetManager(ctx context.Context, props *exchange.AssetManagerProperties) (string, error) {
	guid, err := l.assetManagers.GetAssetManagerGUID(ctx, l.userID, props.QualifiedName)
	if err == nil {
		return guid, nil
	}
	if !errs.IsNotFound(err) {
		return "", err
	}
	l.log.Infof("registering asset manager %s", props.QualifiedName)
	return l.assetManagers.CreateAssetManager(ctx, l.userID, props)
}

// run holds the state of one Load call.
type run struct {
	*Loader
	result *LoadResult
	amGUID string
	amName string
}

func (r *run) correlation(c exchange.MetadataCorrelationProperties) *exchange.MetadataCorrelationProperties {
	c.AssetManagerGUID = r.amGUID
	c.AssetManagerName = r.amName
	return &c
}

// upsert updates the element the external identifier resolves to, or
// creates it when the asset manager has not registered the identifier.
func (r *run) upsert(
	ctx context.Context,
	externalID string,
	create func() (string, error),
	update func(guid string) error,
) (guid string, created bool, err error) {
	guid, err = r.assetManagers.ResolveExternalIdentifier(ctx, r.userID, r.amGUID, externalID)
	switch {
	case err == nil:
		if err := update(guid); err != nil {
			return "", false, failed("update", externalID, err)
		}
		r.result.Updated = append(r.result.Updated, externalID)
	case errs.IsNotFound(err):
		if guid, err = create(); err != nil {
			return "", false, failed("create", externalID, err)
		}
		created = true
		r.result.Created = append(r.result.Created, externalID)
	default:
		return "", false, failed("resolve", externalID, err)
	}
	r.result.GUIDs[externalID] = guid
	r.log.Debugf("%s is %s", externalID, guid)
	return guid, created, nil
}

// failed records which step on which element went wrong.
func failed(step, externalID string, err error) error {
	return errx.Wrap(err, errx.WithDetails(errx.D{"step": step, "external_identifier": externalID}))
}

// linked ignores the conflict reported for a link that already exists.
func linked(err error) error {
	if errs.IsDuplicate(err) {
		return nil
	}
	return err
}

func (r *run) glossary(ctx context.Context, g *Glossary) error {
	corr := r.correlation(g.Correlation)
	glossaryGUID, _, err := r.upsert(ctx, corr.ExternalIdentifier,
		func() (string, error) {
			return r.glossaries.CreateGlossary(ctx, r.userID, corr, true, &g.Properties)
		},
		func(guid string) error {
			return r.glossaries.UpdateGlossary(ctx, r.userID, corr, guid, &g.Properties, r.mergeUpdate)
		})
	if err != nil {
		return err
	}

	for i := range g.Categories {
		c := &g.Categories[i]
		corr := r.correlation(c.Correlation)
		if _, _, err := r.upsert(ctx, corr.ExternalIdentifier,
			func() (string, error) {
				return r.glossaries.CreateGlossaryCategory(ctx, r.userID, corr, true, glossaryGUID, &c.Properties)
			},
			func(guid string) error {
				return r.glossaries.UpdateGlossaryCategory(ctx, r.userID, corr, guid, &c.Properties, r.mergeUpdate)
			}); err != nil {
			return err
		}
	}
	for _, c := range g.Categories {
		if c.Parent == "" {
			continue
		}
		parentGUID, childGUID := r.result.GUIDs[c.Parent], r.result.GUIDs[c.Correlation.ExternalIdentifier]
		err := r.glossaries.SetupCategoryParent(ctx, r.userID, r.correlation(c.Correlation), true, parentGUID, childGUID, nil)
		if err := linked(err); err != nil {
			return failed("link parent "+c.Parent, c.Correlation.ExternalIdentifier, err)
		}
	}

	for i := range g.Terms {
		if err := r.term(ctx, glossaryGUID, &g.Terms[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) term(ctx context.Context, glossaryGUID string, t *Term) error {
	corr := r.correlation(t.Correlation)
	termGUID, created, err := r.upsert(ctx, corr.ExternalIdentifier,
		func() (string, error) {
			if t.Status != nil {
				return r.glossaries.CreateControlledGlossaryTerm(ctx, r.userID, corr, true, glossaryGUID, &t.Properties, *t.Status)
			}
			return r.glossaries.CreateGlossaryTerm(ctx, r.userID, corr, true, glossaryGUID, &t.Properties)
		},
		func(guid string) error {
			return r.glossaries.UpdateGlossaryTerm(ctx, r.userID, corr, guid, &t.Properties, r.mergeUpdate)
		})
	if err != nil {
		return err
	}

	if !created && t.Status != nil {
		if err := r.glossaries.UpdateGlossaryTermStatus(ctx, r.userID, corr, termGUID, *t.Status); err != nil {
			return failed("update status", corr.ExternalIdentifier, err)
		}
	}

	for _, c := range t.Categories {
		categorization := &exchange.GlossaryTermCategorization{Status: exchange.TermRelationshipStatusActive}
		err := r.glossaries.SetupTermCategory(ctx, r.userID, corr, true, r.result.GUIDs[c], termGUID, categorization)
		if err := linked(err); err != nil {
			return failed("categorize under "+c, corr.ExternalIdentifier, err)
		}
	}
	return nil
}

func (r *run) dataAsset(ctx context.Context, a *DataAsset) error {
	corr := r.correlation(a.Correlation)
	guid, _, err := r.upsert(ctx, corr.ExternalIdentifier,
		func() (string, error) {
			return r.dataAssets.CreateDataAsset(ctx, r.userID, corr, true, &a.Properties)
		},
		func(guid string) error {
			return r.dataAssets.UpdateDataAsset(ctx, r.userID, corr, guid, &a.Properties, r.mergeUpdate)
		})
	if err != nil {
		return err
	}

	if a.Published {
		err = r.dataAssets.PublishDataAsset(ctx, r.userID, corr, guid)
	} else {
		err = r.dataAssets.WithdrawDataAsset(ctx, r.userID, corr, guid)
	}
	if err != nil {
		return failed("set zones", corr.ExternalIdentifier, err)
	}
	return nil
}

var (
	_ AssetManagers = (*exchange.AssetManagerExchangeHandler)(nil)
	_ Glossaries    = (*exchange.GlossaryExchangeHandler)(nil)
	_ DataAssets    = (*exchange.DataAssetExchangeHandler)(nil)
)
