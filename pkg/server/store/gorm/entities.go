package gorm

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

// Ensure EntityStore implements store.EntityStore
var _ store.EntityStore = (*EntityStore)(nil)

// EntityStore implements store.EntityStore using GORM
type EntityStore struct {
	db *gorm.DB
}

// NewEntityStore creates a new EntityStore
func NewEntityStore(db *gorm.DB) *EntityStore {
	return &EntityStore{db: db}
}

// CreateEntity stores a new entity and its classifications.
func (s *EntityStore) CreateEntity(ctx context.Context, entity *model.Entity) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entity).Error; err != nil {
			return err
		}
		for i := range entity.Classifications {
			c := entity.Classifications[i]
			c.EntityGUID = entity.GUID
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FetchEntity returns the entity with its classifications.
func (s *EntityStore) FetchEntity(ctx context.Context, guid string) (*model.Entity, error) {
	var entity model.Entity
	tx := s.db.WithContext(ctx).Where("guid = ?", guid).First(&entity)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrEntityNotFound
		}
		return nil, tx.Error
	}

	entities := []model.Entity{entity}
	if err := s.attachClassifications(ctx, entities); err != nil {
		return nil, err
	}
	return &entities[0], nil
}

// UpdateEntity replaces the mutable columns of an entity.
func (s *EntityStore) UpdateEntity(ctx context.Context, entity *model.Entity, expectedVersion int64) error {
	tx := s.db.WithContext(ctx).Model(&model.Entity{}).
		Where("guid = ? AND version = ?", entity.GUID, expectedVersion).
		Updates(map[string]interface{}{
			"qualified_name": entity.QualifiedName,
			"display_name":   entity.DisplayName,
			"status":         entity.Status,
			"version":        entity.Version,
			"properties":     entity.Properties,
			"updated_by":     entity.UpdatedBy,
			"updated_at":     entity.UpdatedAt,
			"effective_from": entity.EffectiveFrom,
			"effective_to":   entity.EffectiveTo,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return s.missingOrStale(ctx, entity.GUID)
	}
	return nil
}

func (s *EntityStore) missingOrStale(ctx context.Context, guid string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Entity{}).Where("guid = ?", guid).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return store.ErrEntityNotFound
	}
	return store.ErrVersionConflict
}

// DeleteEntity removes the entity and its classifications.
func (s *EntityStore) DeleteEntity(ctx context.Context, guid string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entity_guid = ?", guid).Delete(&model.Classification{}).Error; err != nil {
			return err
		}
		result := tx.Where("guid = ?", guid).Delete(&model.Entity{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrEntityNotFound
		}
		return nil
	})
}

// FindEntities returns the entities matching the query ordered by qualified name.
func (s *EntityStore) FindEntities(ctx context.Context, query store.EntityQuery) ([]model.Entity, error) {
	tx := s.db.WithContext(ctx).Model(&model.Entity{})

	if len(query.TypeNames) > 0 {
		tx = tx.Where("type_name IN ?", query.TypeNames)
	}
	if len(query.GUIDs) > 0 {
		tx = tx.Where("guid IN ?", query.GUIDs)
	}
	if query.QualifiedName != "" {
		tx = tx.Where("qualified_name = ?", query.QualifiedName)
	}
	if query.Name != "" {
		tx = tx.Where("(qualified_name = ? OR display_name = ?)", query.Name, query.Name)
	}
	if query.Search != "" {
		tx = tx.Where("(qualified_name ~* ? OR display_name ~* ?)", query.Search, query.Search)
	}
	if len(query.Statuses) > 0 {
		tx = tx.Where("status IN ?", query.Statuses)
	}
	tx = whereEffective(tx, query.EffectiveTime)
	tx = page(tx, query.Offset, query.Limit)

	var entities []model.Entity
	if err := tx.Order("qualified_name, guid").Find(&entities).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == invalidRegularExpression {
			return nil, store.ErrInvalidSearch
		}
		return nil, err
	}
	if err := s.attachClassifications(ctx, entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// SaveClassification adds or replaces a classification.
func (s *EntityStore) SaveClassification(ctx context.Context, classification *model.Classification) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entity_guid"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"properties", "version", "updated_by", "updated_at"}),
	}).Create(classification).Error
}

// DeleteClassification removes a classification.
func (s *EntityStore) DeleteClassification(ctx context.Context, entityGUID, name string) error {
	result := s.db.WithContext(ctx).
		Where("entity_guid = ? AND name = ?", entityGUID, name).
		Delete(&model.Classification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrClassificationNotFound
	}
	return nil
}

func (s *EntityStore) attachClassifications(ctx context.Context, entities []model.Entity) error {
	if len(entities) == 0 {
		return nil
	}
	guids := make([]string, len(entities))
	index := make(map[string]int, len(entities))
	for i := range entities {
		guids[i] = entities[i].GUID
		index[entities[i].GUID] = i
	}

	var classifications []model.Classification
	err := s.db.WithContext(ctx).
		Where("entity_guid IN ?", guids).
		Order("name").
		Find(&classifications).Error
	if err != nil {
		return err
	}
	for _, c := range classifications {
		i := index[c.EntityGUID]
		entities[i].Classifications = append(entities[i].Classifications, c)
	}
	return nil
}
