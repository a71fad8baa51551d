package handler

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/events"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

// EntityRequest carries the values of an entity to create or update.
type EntityRequest struct {
	TypeName      string
	QualifiedName string
	DisplayName   string
	// Status defaults to active on create.
	Status          model.InstanceStatus
	Properties      model.Properties
	Classifications []model.Classification
	EffectiveFrom   *time.Time
	EffectiveTo     *time.Time
}

// Query selects entities of a type and its subtypes.
type Query struct {
	TypeName string
	// Search is a regular expression matched against qualified and display names.
	Search string
	// Name matches the qualified or display name exactly.
	Name          string
	GUIDs         []string
	Statuses      []model.InstanceStatus
	EffectiveTime time.Time
	StartFrom     int
	PageSize      int
}

// CreateEntity stores a new entity homed in home and returns its GUID.
func (h *EntityHandler) CreateEntity(ctx context.Context, userID string, req EntityRequest, home Home) (string, error) {
	if err := validateUser(userID); err != nil {
		return "", err
	}
	if req.TypeName == "" {
		return "", errs.NullParameter("typeName")
	}
	if !h.types.IsEntityType(req.TypeName) {
		return "", errs.InvalidParameter("typeName", req.TypeName+" is not a known entity type")
	}
	if req.QualifiedName == "" {
		return "", errs.NullParameter("qualifiedName")
	}
	if err := h.checkUniqueName(ctx, req.QualifiedName, ""); err != nil {
		return "", err
	}
	for _, c := range req.Classifications {
		if err := h.checkClassification(req.TypeName, c.Name); err != nil {
			return "", err
		}
	}

	now := h.now()
	status := req.Status
	if status == model.StatusUnknown {
		status = model.StatusActive
	}
	entity := &model.Entity{
		GUID:               h.newGUID(),
		TypeName:           req.TypeName,
		QualifiedName:      req.QualifiedName,
		DisplayName:        req.DisplayName,
		Status:             status,
		Version:            1,
		Properties:         req.Properties.Clone(),
		HomeCollectionID:   home.CollectionID,
		HomeCollectionName: home.CollectionName,
		CreatedBy:          userID,
		CreatedAt:          now,
		UpdatedAt:          now,
		EffectiveFrom:      req.EffectiveFrom,
		EffectiveTo:        req.EffectiveTo,
	}
	for _, c := range req.Classifications {
		entity.Classifications = append(entity.Classifications, model.Classification{
			EntityGUID: entity.GUID,
			Name:       c.Name,
			Properties: c.Properties.Clone(),
			Version:    1,
			CreatedBy:  userID,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	if err := h.entities.CreateEntity(ctx, entity); err != nil {
		return "", errs.PropertyServer(err)
	}

	h.publish(ctx, events.Event{
		Type:             events.ElementCreated,
		TypeName:         entity.TypeName,
		ElementGUID:      entity.GUID,
		QualifiedName:    entity.QualifiedName,
		HomeCollectionID: entity.HomeCollectionID,
		UserID:           userID,
		Version:          entity.Version,
	})
	return entity.GUID, nil
}

// CreateEntityFromTemplate creates an entity that starts as a copy of the
// template's properties and classifications. Values in req override the
// copied ones and req.QualifiedName is required.
func (h *EntityHandler) CreateEntityFromTemplate(ctx context.Context, userID, templateGUID, templateType string, req EntityRequest, home Home) (string, error) {
	if err := validateUser(userID); err != nil {
		return "", err
	}
	if err := validateGUID(templateGUID, "templateGUID"); err != nil {
		return "", err
	}
	template, err := h.fetchTyped(ctx, templateGUID, templateType)
	if err != nil {
		return "", err
	}

	copied := EntityRequest{
		TypeName:      template.TypeName,
		QualifiedName: req.QualifiedName,
		DisplayName:   template.DisplayName,
		Status:        req.Status,
		Properties:    template.Properties.Merge(req.Properties),
		EffectiveFrom: req.EffectiveFrom,
		EffectiveTo:   req.EffectiveTo,
	}
	if req.DisplayName != "" {
		copied.DisplayName = req.DisplayName
	}
	for _, c := range template.Classifications {
		if c.Name == ClassTemplate {
			continue
		}
		copied.Classifications = append(copied.Classifications, model.Classification{Name: c.Name, Properties: c.Properties})
	}
	return h.CreateEntity(ctx, userID, copied, home)
}

// UpdateEntity changes the values of an entity. A merge update keeps stored
// values that req leaves empty, otherwise the stored values are replaced.
func (h *EntityHandler) UpdateEntity(ctx context.Context, userID, guid, expectedType string, req EntityRequest, isMergeUpdate bool, caller Home) error {
	if err := validateUser(userID); err != nil {
		return err
	}
	if err := validateGUID(guid, "guid"); err != nil {
		return err
	}
	entity, err := h.fetchTyped(ctx, guid, expectedType)
	if err != nil {
		return err
	}
	if err := checkOwner(userID, guid, entity.HomeCollectionID, caller); err != nil {
		return err
	}

	oldVersion := entity.Version
	if isMergeUpdate {
		if req.QualifiedName != "" {
			entity.QualifiedName = req.QualifiedName
		}
		if req.DisplayName != "" {
			entity.DisplayName = req.DisplayName
		}
		entity.Properties = entity.Properties.Merge(req.Properties)
		if req.EffectiveFrom != nil {
			entity.EffectiveFrom = req.EffectiveFrom
		}
		if req.EffectiveTo != nil {
			entity.EffectiveTo = req.EffectiveTo
		}
	} else {
		if req.QualifiedName == "" {
			return errs.NullParameter("qualifiedName")
		}
		entity.QualifiedName = req.QualifiedName
		entity.DisplayName = req.DisplayName
		entity.Properties = req.Properties.Clone()
		entity.EffectiveFrom = req.EffectiveFrom
		entity.EffectiveTo = req.EffectiveTo
	}
	if err := h.checkUniqueName(ctx, entity.QualifiedName, entity.GUID); err != nil {
		return err
	}

	return h.saveEntity(ctx, userID, entity, oldVersion, events.ElementUpdated)
}

// UpdateEntityStatus changes the lifecycle status of an entity.
func (h *EntityHandler) UpdateEntityStatus(ctx context.Context, userID, guid, expectedType string, status model.InstanceStatus, caller Home) error {
	if err := validateUser(userID); err != nil {
		return err
	}
	if err := validateGUID(guid, "guid"); err != nil {
		return err
	}
	if status == model.StatusUnknown {
		return errs.InvalidParameter("status", "status must be set")
	}
	if status == model.StatusDeleted {
		return errs.InvalidParameter("status", "use remove to delete an element")
	}
	entity, err := h.fetchTyped(ctx, guid, expectedType)
	if err != nil {
		return err
	}
	if err := checkOwner(userID, guid, entity.HomeCollectionID, caller); err != nil {
		return err
	}

	oldVersion := entity.Version
	entity.Status = status
	return h.saveEntity(ctx, userID, entity, oldVersion, events.ElementStatusChanged)
}

func (h *EntityHandler) saveEntity(ctx context.Context, userID string, entity *model.Entity, oldVersion int64, eventType events.Type) error {
	entity.Version = oldVersion + 1
	entity.UpdatedBy = userID
	entity.UpdatedAt = h.now()

	if err := h.entities.UpdateEntity(ctx, entity, oldVersion); err != nil {
		if errors.Is(err, store.ErrEntityNotFound) {
			return errs.UnknownGUID(entity.GUID, entity.TypeName)
		}
		return errs.PropertyServer(err)
	}

	h.publish(ctx, events.Event{
		Type:             eventType,
		TypeName:         entity.TypeName,
		ElementGUID:      entity.GUID,
		QualifiedName:    entity.QualifiedName,
		HomeCollectionID: entity.HomeCollectionID,
		UserID:           userID,
		Version:          entity.Version,
	})
	return nil
}

// DeleteEntity removes an entity together with the entities anchored to it,
// their relationships, classifications and external identifiers.
func (h *EntityHandler) DeleteEntity(ctx context.Context, userID, guid, expectedType string, caller Home) error {
	if err := validateUser(userID); err != nil {
		return err
	}
	if err := validateGUID(guid, "guid"); err != nil {
		return err
	}
	entity, err := h.fetchTyped(ctx, guid, expectedType)
	if err != nil {
		return err
	}
	if err := checkOwner(userID, guid, entity.HomeCollectionID, caller); err != nil {
		return err
	}
	return h.deleteCascade(ctx, userID, entity, map[string]bool{})
}

func (h *EntityHandler) deleteCascade(ctx context.Context, userID string, entity *model.Entity, seen map[string]bool) error {
	if seen[entity.GUID] {
		return nil
	}
	seen[entity.GUID] = true

	if anchoring := h.types.AnchoringRelationships(entity.TypeName); len(anchoring) > 0 {
		anchored, err := h.relationships.FindRelationships(ctx, store.RelationshipQuery{
			TypeNames: anchoring,
			End1GUID:  entity.GUID,
		})
		if err != nil {
			return errs.PropertyServer(err)
		}
		for _, rel := range anchored {
			child, err := h.entities.FetchEntity(ctx, rel.End2GUID)
			if errors.Is(err, store.ErrEntityNotFound) {
				continue
			}
			if err != nil {
				return errs.PropertyServer(err)
			}
			if err := h.deleteCascade(ctx, userID, child, seen); err != nil {
				return err
			}
		}
	}

	if _, err := h.relationships.DeleteRelationshipsForEntity(ctx, entity.GUID); err != nil {
		return errs.PropertyServer(err)
	}
	if h.externalIDs != nil {
		if err := h.externalIDs.DeleteForElement(ctx, entity.GUID); err != nil {
			return errs.PropertyServer(err)
		}
	}
	if err := h.entities.DeleteEntity(ctx, entity.GUID); err != nil && !errors.Is(err, store.ErrEntityNotFound) {
		return errs.PropertyServer(err)
	}

	h.publish(ctx, events.Event{
		Type:             events.ElementDeleted,
		TypeName:         entity.TypeName,
		ElementGUID:      entity.GUID,
		QualifiedName:    entity.QualifiedName,
		HomeCollectionID: entity.HomeCollectionID,
		UserID:           userID,
		Version:          entity.Version,
	})
	return nil
}

// GetEntity returns the entity if it is of expectedType and effective at
// effectiveTime.
func (h *EntityHandler) GetEntity(ctx context.Context, userID, guid, expectedType string, effectiveTime time.Time) (*model.Entity, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if err := validateGUID(guid, "guid"); err != nil {
		return nil, err
	}
	entity, err := h.fetchTyped(ctx, guid, expectedType)
	if err != nil {
		return nil, err
	}
	if !entity.IsEffective(effectiveTime) {
		return nil, errs.UnknownGUID(guid, expectedType)
	}
	return entity, nil
}

// FindEntities returns one page of the entities matching q.
func (h *EntityHandler) FindEntities(ctx context.Context, userID string, q Query) ([]model.Entity, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if q.TypeName == "" {
		return nil, errs.NullParameter("typeName")
	}
	if !h.types.IsEntityType(q.TypeName) {
		return nil, errs.InvalidParameter("typeName", q.TypeName+" is not a known entity type")
	}
	if q.Search != "" {
		if _, err := regexp.Compile(q.Search); err != nil {
			return nil, errs.InvalidParameter("searchString", "not a valid regular expression")
		}
	}
	limit, err := h.ValidatePaging(q.StartFrom, q.PageSize)
	if err != nil {
		return nil, err
	}

	entities, err := h.entities.FindEntities(ctx, store.EntityQuery{
		TypeNames:     h.types.SubTypes(q.TypeName),
		GUIDs:         q.GUIDs,
		Name:          q.Name,
		Search:        q.Search,
		Statuses:      q.Statuses,
		EffectiveTime: q.EffectiveTime,
		Offset:        q.StartFrom,
		Limit:         limit,
	})
	if errors.Is(err, store.ErrInvalidSearch) {
		return nil, errs.InvalidParameter("searchString", "not a valid regular expression")
	}
	if err != nil {
		return nil, errs.PropertyServer(err)
	}
	return entities, nil
}

// GetEntitiesByName returns the entities whose qualified or display name is name.
func (h *EntityHandler) GetEntitiesByName(ctx context.Context, userID, typeName, name string, startFrom, pageSize int, effectiveTime time.Time) ([]model.Entity, error) {
	if name == "" {
		return nil, errs.NullParameter("name")
	}
	return h.FindEntities(ctx, userID, Query{
		TypeName:      typeName,
		Name:          name,
		EffectiveTime: effectiveTime,
		StartFrom:     startFrom,
		PageSize:      pageSize,
	})
}

// GetEntitiesByGUID returns the listed entities of typeName that are
// effective, keeping the order of guids and skipping unknown ones.
func (h *EntityHandler) GetEntitiesByGUID(ctx context.Context, userID, typeName string, guids []string, effectiveTime time.Time) ([]model.Entity, error) {
	if len(guids) == 0 {
		return nil, nil
	}
	found, err := h.FindEntities(ctx, userID, Query{
		TypeName:      typeName,
		GUIDs:         guids,
		EffectiveTime: effectiveTime,
		PageSize:      h.maxPageSize,
	})
	if err != nil {
		return nil, err
	}
	byGUID := make(map[string]model.Entity, len(found))
	for _, e := range found {
		byGUID[e.GUID] = e
	}
	result := make([]model.Entity, 0, len(found))
	for _, guid := range guids {
		if e, ok := byGUID[guid]; ok {
			result = append(result, e)
		}
	}
	return result, nil
}

func (h *EntityHandler) fetchTyped(ctx context.Context, guid, expectedType string) (*model.Entity, error) {
	entity, err := h.entities.FetchEntity(ctx, guid)
	if errors.Is(err, store.ErrEntityNotFound) {
		return nil, errs.UnknownGUID(guid, expectedType)
	}
	if err != nil {
		return nil, errs.PropertyServer(err)
	}
	if expectedType != "" && !h.types.IsTypeOf(entity.TypeName, expectedType) {
		return nil, errs.UnknownGUID(guid, expectedType)
	}
	return entity, nil
}

func (h *EntityHandler) checkUniqueName(ctx context.Context, qualifiedName, selfGUID string) error {
	existing, err := h.entities.FindEntities(ctx, store.EntityQuery{QualifiedName: qualifiedName, Limit: 2})
	if err != nil {
		return errs.PropertyServer(err)
	}
	for _, e := range existing {
		if e.GUID != selfGUID {
			return errs.Duplicate("qualifiedName", qualifiedName)
		}
	}
	return nil
}
