package handler

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

// ExternalIdentifierHandler maintains the correlation between the identifiers
// an asset manager uses and the GUIDs of repository elements. Each asset
// manager is a scope: an identifier is unique within its scope.
type ExternalIdentifierHandler struct {
	externalIDs store.ExternalIDStore
	entities    store.EntityStore

	types       *TypeRegistry
	log         logger.Logger
	maxPageSize int
	now         func() time.Time
	newID       func() string
}

func NewExternalIdentifierHandler(externalIDs store.ExternalIDStore, entities store.EntityStore, opts ...Option) *ExternalIdentifierHandler {
	o := buildOptions(opts)
	return &ExternalIdentifierHandler{
		externalIDs: externalIDs,
		entities:    entities,
		types:       o.types,
		log:         o.log.Named("external-ids"),
		maxPageSize: o.maxPageSize,
		now:         o.now,
		newID:       o.newGUID,
	}
}

// SetUpExternalIdentifier records that ext.Identifier names elementGUID in the
// scope of the asset manager ext.ScopeGUID. Setting up a mapping that
// already exists refreshes its properties.
func (h *ExternalIdentifierHandler) SetUpExternalIdentifier(ctx context.Context, userID, elementGUID, elementType string, ext model.ExternalIdentifier) error {
	if err := h.validate(userID, elementGUID, ext.ScopeGUID, ext.Identifier); err != nil {
		return err
	}
	scope, err := h.fetchScope(ctx, ext.ScopeGUID)
	if err != nil {
		return err
	}

	existing, err := h.externalIDs.FetchExternalID(ctx, ext.ScopeGUID, ext.Identifier)
	switch {
	case errors.Is(err, store.ErrExternalIDNotFound):
		return h.create(ctx, userID, elementGUID, elementType, scope, ext)
	case err != nil:
		return errs.PropertyServer(err)
	case existing.ElementGUID != elementGUID:
		return errs.InvalidParameter("externalIdentifier", ext.Identifier+" is already mapped to "+existing.ElementGUID)
	}
	return h.refresh(ctx, userID, existing, ext)
}

// ValidateExternalIdentifier checks that identifier names elementGUID in the
// scope of the asset manager.
func (h *ExternalIdentifierHandler) ValidateExternalIdentifier(ctx context.Context, userID, elementGUID, elementType, scopeGUID, identifier string) error {
	if err := h.validate(userID, elementGUID, scopeGUID, identifier); err != nil {
		return err
	}
	existing, err := h.fetch(ctx, scopeGUID, identifier)
	if err != nil {
		return err
	}
	if existing.ElementGUID != elementGUID {
		return errs.InvalidParameter("externalIdentifier", identifier+" is mapped to "+existing.ElementGUID+" not "+elementGUID)
	}
	if elementType != "" && !h.types.IsTypeOf(existing.ElementType, elementType) {
		return errs.InvalidParameter("externalIdentifier", identifier+" is mapped to a "+existing.ElementType)
	}
	return nil
}

// ConfirmSynchronization records that the asset manager and the repository
// agree on the element, creating the mapping if it is missing.
func (h *ExternalIdentifierHandler) ConfirmSynchronization(ctx context.Context, userID, elementGUID, elementType string, ext model.ExternalIdentifier) error {
	return h.SetUpExternalIdentifier(ctx, userID, elementGUID, elementType, ext)
}

// RemoveExternalIdentifier deletes the mapping of identifier to elementGUID.
func (h *ExternalIdentifierHandler) RemoveExternalIdentifier(ctx context.Context, userID, elementGUID, scopeGUID, identifier string) error {
	if err := h.ValidateExternalIdentifier(ctx, userID, elementGUID, "", scopeGUID, identifier); err != nil {
		return err
	}
	err := h.externalIDs.DeleteExternalID(ctx, scopeGUID, identifier)
	if errors.Is(err, store.ErrExternalIDNotFound) {
		return errs.UnknownExternalIdentifier(scopeGUID, identifier)
	}
	return errs.PropertyServer(err)
}

// GetExternalIdentifiers returns the identifiers of an element. An empty
// scopeGUID returns the identifiers of every asset manager.
func (h *ExternalIdentifierHandler) GetExternalIdentifiers(ctx context.Context, userID, elementGUID, scopeGUID string) ([]model.ExternalIdentifier, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if err := validateGUID(elementGUID, "elementGUID"); err != nil {
		return nil, err
	}
	ids, err := h.externalIDs.ListForElement(ctx, elementGUID, scopeGUID)
	if err != nil {
		return nil, errs.PropertyServer(err)
	}
	return ids, nil
}

// GetElementGUIDsForScope pages through the GUIDs of the elements the asset
// manager has mapped, optionally restricted to elementTypes and their subtypes.
func (h *ExternalIdentifierHandler) GetElementGUIDsForScope(ctx context.Context, userID, scopeGUID string, elementTypes []string, startFrom, pageSize int) ([]string, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if err := validateGUID(scopeGUID, "assetManagerGUID"); err != nil {
		return nil, err
	}
	limit, err := validatePaging(startFrom, pageSize, h.maxPageSize)
	if err != nil {
		return nil, err
	}
	var typeNames []string
	for _, t := range elementTypes {
		typeNames = append(typeNames, h.types.SubTypes(t)...)
	}
	ids, err := h.externalIDs.ListForScope(ctx, scopeGUID, lo.Uniq(typeNames), startFrom, limit)
	if err != nil {
		return nil, errs.PropertyServer(err)
	}
	return lo.Uniq(lo.Map(ids, func(id model.ExternalIdentifier, _ int) string {
		return id.ElementGUID
	})), nil
}

// ResolveElementGUID returns the GUID the identifier names in the scope.
func (h *ExternalIdentifierHandler) ResolveElementGUID(ctx context.Context, userID, scopeGUID, identifier string) (string, error) {
	if err := validateUser(userID); err != nil {
		return "", err
	}
	if err := validateGUID(scopeGUID, "assetManagerGUID"); err != nil {
		return "", err
	}
	if identifier == "" {
		return "", errs.NullParameter("externalIdentifier")
	}
	existing, err := h.fetch(ctx, scopeGUID, identifier)
	if err != nil {
		return "", err
	}
	return existing.ElementGUID, nil
}

func (h *ExternalIdentifierHandler) validate(userID, elementGUID, scopeGUID, identifier string) error {
	if err := validateUser(userID); err != nil {
		return err
	}
	if err := validateGUID(elementGUID, "elementGUID"); err != nil {
		return err
	}
	if err := validateGUID(scopeGUID, "assetManagerGUID"); err != nil {
		return err
	}
	if identifier == "" {
		return errs.NullParameter("externalIdentifier")
	}
	return nil
}

func (h *ExternalIdentifierHandler) fetch(ctx context.Context, scopeGUID, identifier string) (*model.ExternalIdentifier, error) {
	existing, err := h.externalIDs.FetchExternalID(ctx, scopeGUID, identifier)
	if errors.Is(err, store.ErrExternalIDNotFound) {
		return nil, errs.UnknownExternalIdentifier(scopeGUID, identifier)
	}
	if err != nil {
		return nil, errs.PropertyServer(err)
	}
	return existing, nil
}

func (h *ExternalIdentifierHandler) fetchScope(ctx context.Context, scopeGUID string) (*model.Entity, error) {
	scope, err := h.entities.FetchEntity(ctx, scopeGUID)
	if errors.Is(err, store.ErrEntityNotFound) {
		return nil, errs.UnknownGUID(scopeGUID, TypeAssetManager)
	}
	if err != nil {
		return nil, errs.PropertyServer(err)
	}
	if !h.types.IsTypeOf(scope.TypeName, TypeAssetManager) {
		return nil, errs.UnknownGUID(scopeGUID, TypeAssetManager)
	}
	return scope, nil
}

func (h *ExternalIdentifierHandler) create(ctx context.Context, userID, elementGUID, elementType string, scope *model.Entity, ext model.ExternalIdentifier) error {
	now := h.now()
	ext.ID = h.newID()
	ext.ElementGUID = elementGUID
	ext.ElementType = elementType
	if ext.ScopeName == "" {
		ext.ScopeName = scope.QualifiedName
	}
	ext.LastSynchronized = &now
	ext.CreatedBy = userID
	ext.CreatedAt = now
	ext.UpdatedAt = now
	ext.Version = 1

	err := h.externalIDs.CreateExternalID(ctx, &ext)
	if errors.Is(err, store.ErrExternalIDExists) {
		return errs.Duplicate("externalIdentifier", ext.Identifier)
	}
	if err != nil {
		return errs.PropertyServer(err)
	}
	h.log.WithContext(ctx).Debugf("mapped %s to %s in scope %s", ext.Identifier, elementGUID, ext.ScopeGUID)
	return nil
}

func (h *ExternalIdentifierHandler) refresh(ctx context.Context, userID string, existing *model.ExternalIdentifier, ext model.ExternalIdentifier) error {
	now := h.now()
	if ext.ScopeName != "" {
		existing.ScopeName = ext.ScopeName
	}
	if ext.IdentifierName != "" {
		existing.IdentifierName = ext.IdentifierName
	}
	if ext.IdentifierUsage != "" {
		existing.IdentifierUsage = ext.IdentifierUsage
	}
	if ext.IdentifierSource != "" {
		existing.IdentifierSource = ext.IdentifierSource
	}
	if ext.SyncDescription != "" {
		existing.SyncDescription = ext.SyncDescription
	}
	if len(ext.MappingProps) > 0 {
		existing.MappingProps = ext.MappingProps
	}
	existing.KeyPattern = ext.KeyPattern
	existing.SyncDirection = ext.SyncDirection
	existing.LastSynchronized = &now
	existing.UpdatedBy = userID
	existing.UpdatedAt = now
	existing.Version++

	err := h.externalIDs.UpdateExternalID(ctx, existing)
	if errors.Is(err, store.ErrExternalIDNotFound) {
		return errs.UnknownExternalIdentifier(existing.ScopeGUID, existing.Identifier)
	}
	return errs.PropertyServer(err)
}
