package gorm

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 db,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)
	return gormDB, mock
}

func TestEntityStore_FetchEntity(t *testing.T) {
	ctx := context.Background()

	t.Run("returns entity with classifications", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewEntityStore(db)

		mock.ExpectQuery(`SELECT \* FROM "entities" WHERE guid = \$1`).
			WithArgs("glossary-1").
			WillReturnRows(sqlmock.NewRows([]string{"guid", "type_name", "qualified_name", "version", "properties"}).
				AddRow("glossary-1", "Glossary", "Glossary:Sales", 3, []byte(`{"displayName":"Sales"}`)))
		mock.ExpectQuery(`SELECT \* FROM "classifications" WHERE entity_guid IN \(\$1\)`).
			WithArgs("glossary-1").
			WillReturnRows(sqlmock.NewRows([]string{"entity_guid", "name", "properties"}).
				AddRow("glossary-1", "Taxonomy", []byte(`{"organizingPrinciple":"by region"}`)))

		entity, err := s.FetchEntity(ctx, "glossary-1")
		require.NoError(t, err)
		assert.Equal(t, "Glossary:Sales", entity.QualifiedName)
		assert.Equal(t, int64(3), entity.Version)
		assert.Equal(t, "Sales", entity.Properties.String("displayName"))
		require.NotNil(t, entity.Classification("Taxonomy"))
		assert.Equal(t, "by region", entity.Classification("Taxonomy").Properties.String("organizingPrinciple"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing rows to ErrEntityNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewEntityStore(db)

		mock.ExpectQuery(`SELECT \* FROM "entities"`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"guid"}))

		_, err := s.FetchEntity(ctx, "missing")
		assert.ErrorIs(t, err, store.ErrEntityNotFound)
	})
}

func TestEntityStore_FindEntities_InvalidSearch(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewEntityStore(db)

	mock.ExpectQuery(`SELECT \* FROM "entities" WHERE .*qualified_name ~\*`).
		WillReturnError(&pgconn.PgError{Code: invalidRegularExpression, Message: "invalid regular expression: quantifier operand invalid"})

	_, err := s.FindEntities(context.Background(), store.EntityQuery{Search: "(?P<n>x)"})
	assert.ErrorIs(t, err, store.ErrInvalidSearch)
}

func TestEntityStore_UpdateEntity(t *testing.T) {
	ctx := context.Background()
	entity := &model.Entity{GUID: "term-1", QualifiedName: "Term:Revenue", Version: 2, UpdatedAt: time.Now()}

	t.Run("updates when version matches", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewEntityStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "entities" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, s.UpdateEntity(ctx, entity, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports version conflict when row exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewEntityStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "entities" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT count\(1\) FROM "entities"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		assert.ErrorIs(t, s.UpdateEntity(ctx, entity, 1), store.ErrVersionConflict)
	})

	t.Run("reports not found when row is gone", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewEntityStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "entities" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT count\(1\) FROM "entities"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		assert.ErrorIs(t, s.UpdateEntity(ctx, entity, 1), store.ErrEntityNotFound)
	})
}

func TestEntityStore_DeleteClassification(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewEntityStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "classifications"`).
		WithArgs("glossary-1", "Taxonomy").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.DeleteClassification(context.Background(), "glossary-1", "Taxonomy")
	assert.ErrorIs(t, err, store.ErrClassificationNotFound)
}

func TestExternalIDStore_CreateExternalID(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewExternalIDStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "external_identifiers"`).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})
	mock.ExpectRollback()

	err := s.CreateExternalID(context.Background(), &model.ExternalIdentifier{
		ID:          "x1",
		ScopeGUID:   "am-1",
		Identifier:  "GLOSS-7",
		ElementGUID: "glossary-1",
		ElementType: "Glossary",
	})
	assert.ErrorIs(t, err, store.ErrExternalIDExists)
}

func TestExternalIDStore_FetchExternalID(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewExternalIDStore(db)

	mock.ExpectQuery(`SELECT \* FROM "external_identifiers" WHERE scope_guid = \$1 AND identifier = \$2`).
		WithArgs("am-1", "GLOSS-7").
		WillReturnRows(sqlmock.NewRows([]string{"id", "scope_guid", "identifier", "element_guid", "mapping_properties"}).
			AddRow("x1", "am-1", "GLOSS-7", "glossary-1", []byte(`{"table":"GLOSSARIES"}`)))

	externalID, err := s.FetchExternalID(context.Background(), "am-1", "GLOSS-7")
	require.NoError(t, err)
	assert.Equal(t, "glossary-1", externalID.ElementGUID)
	assert.Equal(t, "GLOSSARIES", externalID.MappingProps["table"])
}

func TestRelationshipStore_DeleteRelationship(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewRelationshipStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "relationships"`).
		WithArgs("rel-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, s.DeleteRelationship(context.Background(), "rel-1"), store.ErrRelationshipNotFound)
}

func TestHealthStore_CheckConnectivity(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewHealthStore(db)

	mock.ExpectExec(`SELECT 1`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, s.CheckConnectivity(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
