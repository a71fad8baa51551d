package handler

import (
	"context"
	"errors"
	"time"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/events"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

// Ends of a relationship, used to say where the starting entity sits.
const (
	AnyEnd = 0
	End1   = 1
	End2   = 2
)

// LinkRequest describes a relationship to create.
type LinkRequest struct {
	TypeName      string
	End1GUID      string
	End2GUID      string
	Properties    model.Properties
	EffectiveFrom *time.Time
	EffectiveTo   *time.Time
	// Home is the collection that will own the relationship.
	Home Home
}

// RelationshipUpdate carries the new properties and effectivity of a
// relationship. A merge update keeps the current effectivity dates that are
// left nil.
type RelationshipUpdate struct {
	Properties    model.Properties
	EffectiveFrom *time.Time
	EffectiveTo   *time.Time
}

// RelatedQuery selects the entities linked to a starting entity.
type RelatedQuery struct {
	RelationshipTypes []string
	// StartingEnd is End1 or End2 to follow relationships in one direction
	// only, AnyEnd to follow both.
	StartingEnd    int
	ResultTypeName string
	EffectiveTime  time.Time
	StartFrom      int
	PageSize       int
}

// RelatedEntity pairs a relationship with the entity at its far end.
type RelatedEntity struct {
	Relationship model.Relationship
	Entity       model.Entity
}

func (h *EntityHandler) relationshipDef(name string) (RelationshipDef, error) {
	if name == "" {
		return RelationshipDef{}, errs.NullParameter("relationshipTypeName")
	}
	def, ok := h.types.Relationship(name)
	if !ok {
		return RelationshipDef{}, errs.InvalidParameter("relationshipTypeName", name+" is not a known relationship type")
	}
	return def, nil
}

// LinkEntities creates a relationship between two entities and returns its GUID.
func (h *EntityHandler) LinkEntities(ctx context.Context, userID string, req LinkRequest) (string, error) {
	if err := validateUser(userID); err != nil {
		return "", err
	}
	def, err := h.relationshipDef(req.TypeName)
	if err != nil {
		return "", err
	}
	if err := validateGUID(req.End1GUID, "end1GUID"); err != nil {
		return "", err
	}
	if err := validateGUID(req.End2GUID, "end2GUID"); err != nil {
		return "", err
	}
	if req.End1GUID == req.End2GUID {
		return "", errs.InvalidParameter("end2GUID", "an element can not be linked to itself")
	}
	if _, err := h.fetchTyped(ctx, req.End1GUID, def.End1Type); err != nil {
		return "", err
	}
	if _, err := h.fetchTyped(ctx, req.End2GUID, def.End2Type); err != nil {
		return "", err
	}

	existing, err := h.relationships.FindRelationships(ctx, store.RelationshipQuery{
		TypeNames: []string{def.Name},
		End2GUID:  req.End2GUID,
	})
	if err != nil {
		return "", errs.PropertyServer(err)
	}
	for _, rel := range existing {
		if rel.End1GUID == req.End1GUID {
			return "", errs.Duplicate("relationship", def.Name+" "+req.End1GUID+" "+req.End2GUID)
		}
		if def.SingleParent {
			return "", errs.InvalidParameter("end2GUID", req.End2GUID+" is already linked by "+def.Name+" to "+rel.End1GUID)
		}
	}

	now := h.now()
	rel := &model.Relationship{
		GUID:               h.newGUID(),
		TypeName:           def.Name,
		End1GUID:           req.End1GUID,
		End2GUID:           req.End2GUID,
		Status:             model.StatusActive,
		Version:            1,
		Properties:         req.Properties.Clone(),
		HomeCollectionID:   req.Home.CollectionID,
		HomeCollectionName: req.Home.CollectionName,
		CreatedBy:          userID,
		CreatedAt:          now,
		UpdatedAt:          now,
		EffectiveFrom:      req.EffectiveFrom,
		EffectiveTo:        req.EffectiveTo,
	}
	if err := h.relationships.CreateRelationship(ctx, rel); err != nil {
		return "", errs.PropertyServer(err)
	}

	h.publishRelationship(ctx, events.RelationshipCreated, userID, rel)
	return rel.GUID, nil
}

// GetRelationship returns the relationship if it is of expectedType.
func (h *EntityHandler) GetRelationship(ctx context.Context, userID, guid, expectedType string) (*model.Relationship, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if err := validateGUID(guid, "relationshipGUID"); err != nil {
		return nil, err
	}
	return h.fetchRelationship(ctx, guid, expectedType)
}

func (h *EntityHandler) fetchRelationship(ctx context.Context, guid, expectedType string) (*model.Relationship, error) {
	rel, err := h.relationships.FetchRelationship(ctx, guid)
	if errors.Is(err, store.ErrRelationshipNotFound) {
		return nil, errs.UnknownGUID(guid, expectedType)
	}
	if err != nil {
		return nil, errs.PropertyServer(err)
	}
	if expectedType != "" && rel.TypeName != expectedType {
		return nil, errs.UnknownGUID(guid, expectedType)
	}
	return rel, nil
}

// FindRelationship returns the relationship of typeName between two
// entities, or nil when they are not linked.
func (h *EntityHandler) FindRelationship(ctx context.Context, typeName, end1GUID, end2GUID string) (*model.Relationship, error) {
	rels, err := h.relationships.FindRelationships(ctx, store.RelationshipQuery{
		TypeNames: []string{typeName},
		End1GUID:  end1GUID,
		End2GUID:  end2GUID,
		Limit:     1,
	})
	if err != nil {
		return nil, errs.PropertyServer(err)
	}
	if len(rels) == 0 {
		return nil, nil
	}
	return &rels[0], nil
}

// UpdateRelationship changes the properties and effectivity of a relationship.
func (h *EntityHandler) UpdateRelationship(ctx context.Context, userID, guid, expectedType string, upd RelationshipUpdate, isMergeUpdate bool, caller Home) error {
	if err := validateUser(userID); err != nil {
		return err
	}
	if err := validateGUID(guid, "relationshipGUID"); err != nil {
		return err
	}
	rel, err := h.fetchRelationship(ctx, guid, expectedType)
	if err != nil {
		return err
	}
	return h.updateRelationship(ctx, userID, rel, upd, isMergeUpdate, caller)
}

// UpdateRelationshipBetween changes the relationship of typeName between two
// entities.
func (h *EntityHandler) UpdateRelationshipBetween(ctx context.Context, userID, typeName, end1GUID, end2GUID string, upd RelationshipUpdate, isMergeUpdate bool, caller Home) error {
	rel, err := h.relationshipBetween(ctx, userID, typeName, end1GUID, end2GUID)
	if err != nil {
		return err
	}
	return h.updateRelationship(ctx, userID, rel, upd, isMergeUpdate, caller)
}

func (h *EntityHandler) updateRelationship(ctx context.Context, userID string, rel *model.Relationship, upd RelationshipUpdate, isMergeUpdate bool, caller Home) error {
	if err := checkOwner(userID, rel.GUID, rel.HomeCollectionID, caller); err != nil {
		return err
	}

	from, to := upd.EffectiveFrom, upd.EffectiveTo
	if isMergeUpdate {
		if from == nil {
			from = rel.EffectiveFrom
		}
		if to == nil {
			to = rel.EffectiveTo
		}
	}
	if from != nil && to != nil && !to.After(*from) {
		return errs.InvalidParameter("effectiveTo", "must be after effectiveFrom")
	}

	oldVersion := rel.Version
	if isMergeUpdate {
		rel.Properties = rel.Properties.Merge(upd.Properties)
	} else {
		rel.Properties = upd.Properties.Clone()
	}
	rel.EffectiveFrom = from
	rel.EffectiveTo = to
	rel.Version = oldVersion + 1
	rel.UpdatedBy = userID
	rel.UpdatedAt = h.now()

	if err := h.relationships.UpdateRelationship(ctx, rel, oldVersion); err != nil {
		if errors.Is(err, store.ErrRelationshipNotFound) {
			return errs.UnknownGUID(rel.GUID, rel.TypeName)
		}
		return errs.PropertyServer(err)
	}

	h.publishRelationship(ctx, events.RelationshipUpdated, userID, rel)
	return nil
}

// UnlinkEntities removes the relationship of typeName between two entities.
func (h *EntityHandler) UnlinkEntities(ctx context.Context, userID, typeName, end1GUID, end2GUID string, caller Home) error {
	rel, err := h.relationshipBetween(ctx, userID, typeName, end1GUID, end2GUID)
	if err != nil {
		return err
	}
	return h.deleteRelationship(ctx, userID, rel, caller)
}

// DeleteRelationship removes a relationship by GUID.
func (h *EntityHandler) DeleteRelationship(ctx context.Context, userID, guid, expectedType string, caller Home) error {
	if err := validateUser(userID); err != nil {
		return err
	}
	if err := validateGUID(guid, "relationshipGUID"); err != nil {
		return err
	}
	rel, err := h.fetchRelationship(ctx, guid, expectedType)
	if err != nil {
		return err
	}
	return h.deleteRelationship(ctx, userID, rel, caller)
}

func (h *EntityHandler) deleteRelationship(ctx context.Context, userID string, rel *model.Relationship, caller Home) error {
	if err := checkOwner(userID, rel.GUID, rel.HomeCollectionID, caller); err != nil {
		return err
	}
	if err := h.relationships.DeleteRelationship(ctx, rel.GUID); err != nil {
		if errors.Is(err, store.ErrRelationshipNotFound) {
			return errs.UnknownGUID(rel.GUID, rel.TypeName)
		}
		return errs.PropertyServer(err)
	}
	h.publishRelationship(ctx, events.RelationshipDeleted, userID, rel)
	return nil
}

func (h *EntityHandler) relationshipBetween(ctx context.Context, userID, typeName, end1GUID, end2GUID string) (*model.Relationship, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	def, err := h.relationshipDef(typeName)
	if err != nil {
		return nil, err
	}
	if err := validateGUID(end1GUID, "end1GUID"); err != nil {
		return nil, err
	}
	if err := validateGUID(end2GUID, "end2GUID"); err != nil {
		return nil, err
	}
	rel, err := h.FindRelationship(ctx, def.Name, end1GUID, end2GUID)
	if err != nil {
		return nil, err
	}
	if rel == nil {
		return nil, errs.InvalidParameter("relationshipTypeName", "no "+def.Name+" between "+end1GUID+" and "+end2GUID)
	}
	return rel, nil
}

// GetRelatedEntities returns one page of the entities linked to guid.
func (h *EntityHandler) GetRelatedEntities(ctx context.Context, userID, guid, startingType string, q RelatedQuery) ([]RelatedEntity, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if err := validateGUID(guid, "guid"); err != nil {
		return nil, err
	}
	for _, name := range q.RelationshipTypes {
		if _, err := h.relationshipDef(name); err != nil {
			return nil, err
		}
	}
	limit, err := h.ValidatePaging(q.StartFrom, q.PageSize)
	if err != nil {
		return nil, err
	}
	if _, err := h.fetchTyped(ctx, guid, startingType); err != nil {
		return nil, err
	}

	rq := store.RelationshipQuery{TypeNames: q.RelationshipTypes, EffectiveTime: q.EffectiveTime}
	switch q.StartingEnd {
	case End1:
		rq.End1GUID = guid
	case End2:
		rq.End2GUID = guid
	default:
		rq.EitherEnd = guid
	}
	rels, err := h.relationships.FindRelationships(ctx, rq)
	if err != nil {
		return nil, errs.PropertyServer(err)
	}
	if len(rels) == 0 {
		return nil, nil
	}

	resultType := q.ResultTypeName
	if resultType == "" {
		resultType = TypeReferenceable
	}
	guids := make([]string, 0, len(rels))
	for _, rel := range rels {
		guids = append(guids, rel.OtherEnd(guid))
	}
	entities, err := h.entities.FindEntities(ctx, store.EntityQuery{
		TypeNames:     h.types.SubTypes(resultType),
		GUIDs:         guids,
		EffectiveTime: q.EffectiveTime,
	})
	if err != nil {
		return nil, errs.PropertyServer(err)
	}
	byGUID := make(map[string]model.Entity, len(entities))
	for _, e := range entities {
		byGUID[e.GUID] = e
	}

	var related []RelatedEntity
	for _, rel := range rels {
		if e, ok := byGUID[rel.OtherEnd(guid)]; ok {
			related = append(related, RelatedEntity{Relationship: rel, Entity: e})
		}
	}
	if q.StartFrom >= len(related) {
		return nil, nil
	}
	end := q.StartFrom + limit
	if end > len(related) {
		end = len(related)
	}
	return related[q.StartFrom:end], nil
}

func (h *EntityHandler) publishRelationship(ctx context.Context, eventType events.Type, userID string, rel *model.Relationship) {
	h.publish(ctx, events.Event{
		Type:             eventType,
		TypeName:         rel.TypeName,
		RelationshipGUID: rel.GUID,
		End1GUID:         rel.End1GUID,
		End2GUID:         rel.End2GUID,
		HomeCollectionID: rel.HomeCollectionID,
		UserID:           userID,
		Version:          rel.Version,
	})
}

// RelationshipTypeNames returns the relationship types that can link an
// entity of end1Type to one of end2Type.
func (h *EntityHandler) RelationshipTypeNames(end1Type, end2Type string) []string {
	return h.types.RelationshipTypesBetween(end1Type, end2Type)
}
