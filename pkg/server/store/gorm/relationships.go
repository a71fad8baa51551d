package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

// Ensure RelationshipStore implements store.RelationshipStore
var _ store.RelationshipStore = (*RelationshipStore)(nil)

// RelationshipStore implements store.RelationshipStore using GORM
type RelationshipStore struct {
	db *gorm.DB
}

// NewRelationshipStore creates a new RelationshipStore
func NewRelationshipStore(db *gorm.DB) *RelationshipStore {
	return &RelationshipStore{db: db}
}

func (s *RelationshipStore) CreateRelationship(ctx context.Context, relationship *model.Relationship) error {
	return s.db.WithContext(ctx).Create(relationship).Error
}

func (s *RelationshipStore) FetchRelationship(ctx context.Context, guid string) (*model.Relationship, error) {
	var relationship model.Relationship
	tx := s.db.WithContext(ctx).Where("guid = ?", guid).First(&relationship)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrRelationshipNotFound
		}
		return nil, tx.Error
	}
	return &relationship, nil
}

func (s *RelationshipStore) UpdateRelationship(ctx context.Context, relationship *model.Relationship, expectedVersion int64) error {
	tx := s.db.WithContext(ctx).Model(&model.Relationship{}).
		Where("guid = ? AND version = ?", relationship.GUID, expectedVersion).
		Updates(map[string]interface{}{
			"status":         relationship.Status,
			"version":        relationship.Version,
			"properties":     relationship.Properties,
			"updated_by":     relationship.UpdatedBy,
			"updated_at":     relationship.UpdatedAt,
			"effective_from": relationship.EffectiveFrom,
			"effective_to":   relationship.EffectiveTo,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		if _, err := s.FetchRelationship(ctx, relationship.GUID); err != nil {
			return err
		}
		return store.ErrVersionConflict
	}
	return nil
}

func (s *RelationshipStore) DeleteRelationship(ctx context.Context, guid string) error {
	result := s.db.WithContext(ctx).Where("guid = ?", guid).Delete(&model.Relationship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrRelationshipNotFound
	}
	return nil
}

func (s *RelationshipStore) FindRelationships(ctx context.Context, query store.RelationshipQuery) ([]model.Relationship, error) {
	tx := s.db.WithContext(ctx).Model(&model.Relationship{})

	if len(query.TypeNames) > 0 {
		tx = tx.Where("type_name IN ?", query.TypeNames)
	}
	if query.End1GUID != "" {
		tx = tx.Where("end1_guid = ?", query.End1GUID)
	}
	if query.End2GUID != "" {
		tx = tx.Where("end2_guid = ?", query.End2GUID)
	}
	if query.EitherEnd != "" {
		tx = tx.Where("(end1_guid = ? OR end2_guid = ?)", query.EitherEnd, query.EitherEnd)
	}
	tx = whereEffective(tx, query.EffectiveTime)
	tx = page(tx, query.Offset, query.Limit)

	var relationships []model.Relationship
	if err := tx.Order("created_at, guid").Find(&relationships).Error; err != nil {
		return nil, err
	}
	return relationships, nil
}

func (s *RelationshipStore) DeleteRelationshipsForEntity(ctx context.Context, entityGUID string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("end1_guid = ? OR end2_guid = ?", entityGUID, entityGUID).
		Delete(&model.Relationship{})
	return result.RowsAffected, result.Error
}
