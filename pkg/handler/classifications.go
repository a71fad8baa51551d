package handler

import (
	"context"
	"errors"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/events"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

func (h *EntityHandler) checkClassification(entityType, name string) error {
	if name == "" {
		return errs.NullParameter("classificationName")
	}
	def, ok := h.types.Classification(name)
	if !ok {
		return errs.InvalidParameter("classificationName", name+" is not a known classification")
	}
	if !h.types.IsTypeOf(entityType, def.EntityType) {
		return errs.InvalidParameter("classificationName", name+" can not be attached to a "+entityType)
	}
	return nil
}

// ClassifyEntity attaches a classification to an entity, replacing the
// properties if the entity is already classified.
func (h *EntityHandler) ClassifyEntity(ctx context.Context, userID, guid, expectedType, name string, props model.Properties, caller Home) error {
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
	if err := h.checkClassification(entity.TypeName, name); err != nil {
		return err
	}
	if err := checkOwner(userID, guid, entity.HomeCollectionID, caller); err != nil {
		return err
	}

	now := h.now()
	eventType := events.ElementClassified
	classification := &model.Classification{
		EntityGUID: guid,
		Name:       name,
		Properties: props.Clone(),
		Version:    1,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if existing := entity.Classification(name); existing != nil {
		eventType = events.ElementReclassified
		classification.Version = existing.Version + 1
		classification.CreatedBy = existing.CreatedBy
		classification.CreatedAt = existing.CreatedAt
		classification.UpdatedBy = userID
	}

	if err := h.entities.SaveClassification(ctx, classification); err != nil {
		return errs.PropertyServer(err)
	}

	h.publish(ctx, events.Event{
		Type:               eventType,
		TypeName:           entity.TypeName,
		ElementGUID:        guid,
		QualifiedName:      entity.QualifiedName,
		ClassificationName: name,
		HomeCollectionID:   entity.HomeCollectionID,
		UserID:             userID,
		Version:            classification.Version,
	})
	return nil
}

// DeclassifyEntity removes a classification from an entity.
func (h *EntityHandler) DeclassifyEntity(ctx context.Context, userID, guid, expectedType, name string, caller Home) error {
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
	if err := h.checkClassification(entity.TypeName, name); err != nil {
		return err
	}
	if err := checkOwner(userID, guid, entity.HomeCollectionID, caller); err != nil {
		return err
	}

	if err := h.entities.DeleteClassification(ctx, guid, name); err != nil {
		if errors.Is(err, store.ErrClassificationNotFound) {
			return errs.InvalidParameter("classificationName", guid+" is not classified as "+name)
		}
		return errs.PropertyServer(err)
	}

	h.publish(ctx, events.Event{
		Type:               events.ElementDeclassified,
		TypeName:           entity.TypeName,
		ElementGUID:        guid,
		QualifiedName:      entity.QualifiedName,
		ClassificationName: name,
		HomeCollectionID:   entity.HomeCollectionID,
		UserID:             userID,
	})
	return nil
}
