package gorm

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

const (
	uniqueViolation          = "23505"
	invalidRegularExpression = "2201B"
)

// Ensure ExternalIDStore implements store.ExternalIDStore
var _ store.ExternalIDStore = (*ExternalIDStore)(nil)

// ExternalIDStore implements store.ExternalIDStore using GORM
type ExternalIDStore struct {
	db *gorm.DB
}

// NewExternalIDStore creates a new ExternalIDStore
func NewExternalIDStore(db *gorm.DB) *ExternalIDStore {
	return &ExternalIDStore{db: db}
}

func (s *ExternalIDStore) CreateExternalID(ctx context.Context, externalID *model.ExternalIdentifier) error {
	err := s.db.WithContext(ctx).Create(externalID).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return store.ErrExternalIDExists
	}
	return err
}

func (s *ExternalIDStore) FetchExternalID(ctx context.Context, scopeGUID, identifier string) (*model.ExternalIdentifier, error) {
	var externalID model.ExternalIdentifier
	tx := s.db.WithContext(ctx).
		Where("scope_guid = ? AND identifier = ?", scopeGUID, identifier).
		First(&externalID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrExternalIDNotFound
		}
		return nil, tx.Error
	}
	return &externalID, nil
}

func (s *ExternalIDStore) ListForElement(ctx context.Context, elementGUID, scopeGUID string) ([]model.ExternalIdentifier, error) {
	tx := s.db.WithContext(ctx).Where("element_guid = ?", elementGUID)
	if scopeGUID != "" {
		tx = tx.Where("scope_guid = ?", scopeGUID)
	}

	var externalIDs []model.ExternalIdentifier
	if err := tx.Order("scope_guid, identifier").Find(&externalIDs).Error; err != nil {
		return nil, err
	}
	return externalIDs, nil
}

func (s *ExternalIDStore) ListForScope(ctx context.Context, scopeGUID string, elementTypes []string, offset, limit int) ([]model.ExternalIdentifier, error) {
	tx := s.db.WithContext(ctx).Where("scope_guid = ?", scopeGUID)
	if len(elementTypes) > 0 {
		tx = tx.Where("element_type IN ?", elementTypes)
	}
	tx = page(tx, offset, limit)

	var externalIDs []model.ExternalIdentifier
	if err := tx.Order("identifier").Find(&externalIDs).Error; err != nil {
		return nil, err
	}
	return externalIDs, nil
}

func (s *ExternalIDStore) UpdateExternalID(ctx context.Context, externalID *model.ExternalIdentifier) error {
	result := s.db.WithContext(ctx).Model(&model.ExternalIdentifier{}).
		Where("id = ?", externalID.ID).
		Updates(map[string]interface{}{
			"scope_name":         externalID.ScopeName,
			"identifier_name":    externalID.IdentifierName,
			"identifier_usage":   externalID.IdentifierUsage,
			"identifier_source":  externalID.IdentifierSource,
			"key_pattern":        externalID.KeyPattern,
			"mapping_properties": externalID.MappingProps,
			"sync_direction":     externalID.SyncDirection,
			"sync_description":   externalID.SyncDescription,
			"last_synchronized":  externalID.LastSynchronized,
			"updated_by":         externalID.UpdatedBy,
			"updated_at":         externalID.UpdatedAt,
			"version":            externalID.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrExternalIDNotFound
	}
	return nil
}

func (s *ExternalIDStore) DeleteExternalID(ctx context.Context, scopeGUID, identifier string) error {
	result := s.db.WithContext(ctx).
		Where("scope_guid = ? AND identifier = ?", scopeGUID, identifier).
		Delete(&model.ExternalIdentifier{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrExternalIDNotFound
	}
	return nil
}

func (s *ExternalIDStore) DeleteForElement(ctx context.Context, elementGUID string) error {
	return s.db.WithContext(ctx).Where("element_guid = ?", elementGUID).Delete(&model.ExternalIdentifier{}).Error
}
