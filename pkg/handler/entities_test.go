package handler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/events"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	entities      *MockEntityStore
	relationships *MockRelationshipStore
	externalIDs   *MockExternalIDStore
	publisher     *recordingPublisher
	handler       *EntityHandler
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	f := &fixture{
		entities:      &MockEntityStore{},
		relationships: &MockRelationshipStore{},
		externalIDs:   &MockExternalIDStore{},
		publisher:     &recordingPublisher{},
	}
	n := 0
	opts = append([]Option{
		WithPublisher(f.publisher),
		WithClock(func() time.Time { return testNow }),
		WithGUIDGenerator(func() string {
			n++
			return fmt.Sprintf("guid-%d", n)
		}),
	}, opts...)
	f.handler = NewEntityHandler(f.entities, f.relationships, f.externalIDs, opts...)
	t.Cleanup(func() {
		f.entities.AssertExpectations(t)
		f.relationships.AssertExpectations(t)
		f.externalIDs.AssertExpectations(t)
	})
	return f
}

func (f *fixture) expectUnique(qualifiedName string, existing ...model.Entity) {
	if existing == nil {
		existing = []model.Entity{}
	}
	f.entities.On("FindEntities", mock.Anything, store.EntityQuery{QualifiedName: qualifiedName, Limit: 2}).
		Return(existing, nil).Once()
}

func errorType(err error) errx.Type {
	return errx.AsErrorX(err).Type()
}

func TestCreateEntity(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a user", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.handler.CreateEntity(ctx, "", EntityRequest{TypeName: TypeGlossary, QualifiedName: "Glossary:Sales"}, Home{})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.handler.CreateEntity(ctx, "erin", EntityRequest{TypeName: "Spreadsheet", QualifiedName: "x"}, Home{})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))
		assert.Contains(t, err.Error(), "Spreadsheet")
	})

	t.Run("requires a qualified name", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.handler.CreateEntity(ctx, "erin", EntityRequest{TypeName: TypeGlossary}, Home{})
		require.Error(t, err)
		assert.Equal(t, "required", errx.AsErrorX(err).Fields()["qualifiedName"])
	})

	t.Run("stores the entity homed in the asset manager", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnique("Glossary:Sales")
		f.entities.On("CreateEntity", mock.Anything, mock.MatchedBy(func(e *model.Entity) bool {
			return e.GUID == "guid-1" &&
				e.TypeName == TypeGlossary &&
				e.Status == model.StatusActive &&
				e.Version == 1 &&
				e.HomeCollectionID == "am-1" &&
				e.CreatedBy == "erin" &&
				e.CreatedAt.Equal(testNow) &&
				len(e.Classifications) == 1 &&
				e.Classifications[0].EntityGUID == "guid-1"
		})).Return(nil).Once()

		guid, err := f.handler.CreateEntity(ctx, "erin", EntityRequest{
			TypeName:        TypeGlossary,
			QualifiedName:   "Glossary:Sales",
			DisplayName:     "Sales",
			Properties:      model.Properties{"language": "en"},
			Classifications: []model.Classification{{Name: ClassTaxonomy}},
		}, Home{CollectionID: "am-1", CollectionName: "catalog"})
		require.NoError(t, err)
		assert.Equal(t, "guid-1", guid)
		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, events.ElementCreated, f.publisher.events[0].Type)
		assert.Equal(t, "guid-1", f.publisher.events[0].ElementGUID)
		assert.Equal(t, testNow, f.publisher.events[0].Time)
	})

	t.Run("rejects a qualified name in use", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnique("Glossary:Sales", model.Entity{GUID: "other"})
		_, err := f.handler.CreateEntity(ctx, "erin", EntityRequest{TypeName: TypeGlossary, QualifiedName: "Glossary:Sales"}, Home{})
		require.Error(t, err)
		assert.Equal(t, errx.T_Conflict, errorType(err))
		assert.Empty(t, f.publisher.events)
	})

	t.Run("rejects classifications for other types", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnique("Glossary:Sales")
		_, err := f.handler.CreateEntity(ctx, "erin", EntityRequest{
			TypeName:        TypeGlossary,
			QualifiedName:   "Glossary:Sales",
			Classifications: []model.Classification{{Name: ClassSpineObject}},
		}, Home{})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))
	})

	t.Run("wraps store failures", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnique("Glossary:Sales")
		f.entities.On("CreateEntity", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()
		_, err := f.handler.CreateEntity(ctx, "erin", EntityRequest{TypeName: TypeGlossary, QualifiedName: "Glossary:Sales"}, Home{})
		require.Error(t, err)
		assert.True(t, errs.IsPropertyServer(err))
	})
}

func TestCreateEntityFromTemplate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.entities.On("FetchEntity", mock.Anything, "tmpl").Return(&model.Entity{
		GUID:          "tmpl",
		TypeName:      TypeGlossary,
		QualifiedName: "Glossary:Template",
		DisplayName:   "Template",
		Properties:    model.Properties{"language": "en", "usage": "templates"},
		Classifications: []model.Classification{
			{EntityGUID: "tmpl", Name: ClassTemplate},
			{EntityGUID: "tmpl", Name: ClassTaxonomy, Properties: model.Properties{"organizingPrinciple": "tree"}},
		},
	}, nil).Once()
	f.expectUnique("Glossary:Copy")
	f.entities.On("CreateEntity", mock.Anything, mock.MatchedBy(func(e *model.Entity) bool {
		return e.QualifiedName == "Glossary:Copy" &&
			e.DisplayName == "Template" &&
			e.Properties["language"] == "fr" &&
			e.Properties["usage"] == "templates" &&
			len(e.Classifications) == 1 &&
			e.Classifications[0].Name == ClassTaxonomy
	})).Return(nil).Once()

	guid, err := f.handler.CreateEntityFromTemplate(ctx, "erin", "tmpl", TypeGlossary, EntityRequest{
		QualifiedName: "Glossary:Copy",
		Properties:    model.Properties{"language": "fr"},
	}, Home{})
	require.NoError(t, err)
	assert.Equal(t, "guid-1", guid)
}

func TestUpdateEntity(t *testing.T) {
	ctx := context.Background()
	stored := func() *model.Entity {
		return &model.Entity{
			GUID:          "g1",
			TypeName:      TypeGlossary,
			QualifiedName: "Glossary:Sales",
			DisplayName:   "Sales",
			Version:       2,
			Properties:    model.Properties{"language": "en", "usage": "sales"},
		}
	}

	t.Run("merge keeps unset values", func(t *testing.T) {
		f := newFixture(t)
		f.entities.On("FetchEntity", mock.Anything, "g1").Return(stored(), nil).Once()
		f.expectUnique("Glossary:Sales", model.Entity{GUID: "g1"})
		f.entities.On("UpdateEntity", mock.Anything, mock.MatchedBy(func(e *model.Entity) bool {
			return e.DisplayName == "Sales" &&
				e.Properties["language"] == "de" &&
				e.Properties["usage"] == "sales" &&
				e.Version == 3 &&
				e.UpdatedBy == "erin"
		}), int64(2)).Return(nil).Once()

		err := f.handler.UpdateEntity(ctx, "erin", "g1", TypeGlossary, EntityRequest{
			Properties: model.Properties{"language": "de"},
		}, true, Home{})
		require.NoError(t, err)
		assert.Equal(t, []events.Type{events.ElementUpdated}, f.publisher.types())
	})

	t.Run("replace requires a qualified name", func(t *testing.T) {
		f := newFixture(t)
		f.entities.On("FetchEntity", mock.Anything, "g1").Return(stored(), nil).Once()
		err := f.handler.UpdateEntity(ctx, "erin", "g1", TypeGlossary, EntityRequest{}, false, Home{})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))
	})

	t.Run("elements homed elsewhere are read only", func(t *testing.T) {
		f := newFixture(t)
		e := stored()
		e.HomeCollectionID = "am-1"
		f.entities.On("FetchEntity", mock.Anything, "g1").Return(e, nil).Once()

		err := f.handler.UpdateEntity(ctx, "erin", "g1", TypeGlossary, EntityRequest{DisplayName: "x"}, true, Home{CollectionID: "am-2"})
		require.Error(t, err)
		assert.True(t, errs.IsUserNotAuthorized(err))
	})

	t.Run("wrong type is an unknown guid", func(t *testing.T) {
		f := newFixture(t)
		f.entities.On("FetchEntity", mock.Anything, "g1").Return(stored(), nil).Once()
		err := f.handler.UpdateEntity(ctx, "erin", "g1", TypeGlossaryTerm, EntityRequest{DisplayName: "x"}, true, Home{})
		require.Error(t, err)
		assert.Equal(t, errx.T_NotFound, errorType(err))
	})

	t.Run("missing entity is an unknown guid", func(t *testing.T) {
		f := newFixture(t)
		f.entities.On("FetchEntity", mock.Anything, "g1").Return(nil, store.ErrEntityNotFound).Once()
		err := f.handler.UpdateEntity(ctx, "erin", "g1", TypeGlossary, EntityRequest{DisplayName: "x"}, true, Home{})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))
		assert.Equal(t, errx.T_NotFound, errorType(err))
	})

	t.Run("stale versions are property server errors", func(t *testing.T) {
		f := newFixture(t)
		f.entities.On("FetchEntity", mock.Anything, "g1").Return(stored(), nil).Once()
		f.expectUnique("Glossary:Sales", model.Entity{GUID: "g1"})
		f.entities.On("UpdateEntity", mock.Anything, mock.Anything, int64(2)).Return(store.ErrVersionConflict).Once()

		err := f.handler.UpdateEntity(ctx, "erin", "g1", TypeGlossary, EntityRequest{DisplayName: "x"}, true, Home{})
		require.Error(t, err)
		assert.True(t, errs.IsPropertyServer(err))
	})
}

func TestUpdateEntityStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted is not a settable status", func(t *testing.T) {
		f := newFixture(t)
		err := f.handler.UpdateEntityStatus(ctx, "erin", "t1", TypeGlossaryTerm, model.StatusDeleted, Home{})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))
	})

	t.Run("updates the status", func(t *testing.T) {
		f := newFixture(t)
		f.entities.On("FetchEntity", mock.Anything, "t1").Return(&model.Entity{
			GUID: "t1", TypeName: TypeControlledGlossaryTerm, Status: model.StatusDraft, Version: 1,
		}, nil).Once()
		f.entities.On("UpdateEntity", mock.Anything, mock.MatchedBy(func(e *model.Entity) bool {
			return e.Status == model.StatusApproved && e.Version == 2
		}), int64(1)).Return(nil).Once()

		err := f.handler.UpdateEntityStatus(ctx, "erin", "t1", TypeGlossaryTerm, model.StatusApproved, Home{})
		require.NoError(t, err)
		assert.Equal(t, []events.Type{events.ElementStatusChanged}, f.publisher.types())
	})
}

func TestDeleteEntity(t *testing.T) {
	ctx := context.Background()

	t.Run("removes anchored entities first", func(t *testing.T) {
		f := newFixture(t)
		glossary := &model.Entity{GUID: "g1", TypeName: TypeGlossary, QualifiedName: "Glossary:Sales"}
		term := &model.Entity{GUID: "t1", TypeName: TypeGlossaryTerm, QualifiedName: "Term:Revenue"}

		f.entities.On("FetchEntity", mock.Anything, "g1").Return(glossary, nil).Once()
		f.relationships.On("FindRelationships", mock.Anything, store.RelationshipQuery{
			TypeNames: []string{RelAttachedComment, RelCategoryAnchor, RelTermAnchor},
			End1GUID:  "g1",
		}).Return([]model.Relationship{{GUID: "r1", TypeName: RelTermAnchor, End1GUID: "g1", End2GUID: "t1"}}, nil).Once()
		f.entities.On("FetchEntity", mock.Anything, "t1").Return(term, nil).Once()
		f.relationships.On("FindRelationships", mock.Anything, store.RelationshipQuery{
			TypeNames: []string{RelAttachedComment},
			End1GUID:  "t1",
		}).Return([]model.Relationship{}, nil).Once()

		for _, guid := range []string{"t1", "g1"} {
			f.relationships.On("DeleteRelationshipsForEntity", mock.Anything, guid).Return(int64(1), nil).Once()
			f.externalIDs.On("DeleteForElement", mock.Anything, guid).Return(nil).Once()
			f.entities.On("DeleteEntity", mock.Anything, guid).Return(nil).Once()
		}

		err := f.handler.DeleteEntity(ctx, "erin", "g1", TypeGlossary, Home{})
		require.NoError(t, err)
		require.Len(t, f.publisher.events, 2)
		assert.Equal(t, "t1", f.publisher.events[0].ElementGUID)
		assert.Equal(t, "g1", f.publisher.events[1].ElementGUID)
		assert.Equal(t, events.ElementDeleted, f.publisher.events[1].Type)
	})

	t.Run("elements homed elsewhere can not be removed", func(t *testing.T) {
		f := newFixture(t)
		f.entities.On("FetchEntity", mock.Anything, "g1").Return(&model.Entity{
			GUID: "g1", TypeName: TypeGlossary, HomeCollectionID: "am-1",
		}, nil).Once()
		err := f.handler.DeleteEntity(ctx, "erin", "g1", TypeGlossary, Home{})
		require.Error(t, err)
		assert.True(t, errs.IsUserNotAuthorized(err))
	})
}

func TestGetEntity(t *testing.T) {
	ctx := context.Background()
	from := testNow.Add(24 * time.Hour)

	f := newFixture(t)
	f.entities.On("FetchEntity", mock.Anything, "g1").Return(&model.Entity{
		GUID: "g1", TypeName: TypeGlossary, EffectiveFrom: &from,
	}, nil).Twice()

	_, err := f.handler.GetEntity(ctx, "erin", "g1", TypeGlossary, testNow)
	require.Error(t, err)
	assert.Equal(t, errx.T_NotFound, errorType(err))

	entity, err := f.handler.GetEntity(ctx, "erin", "g1", TypeGlossary, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "g1", entity.GUID)
}

func TestFindEntities(t *testing.T) {
	ctx := context.Background()

	t.Run("validates the search string", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.handler.FindEntities(ctx, "erin", Query{TypeName: TypeGlossaryTerm, Search: "("})
		require.Error(t, err)
		assert.Equal(t, "not a valid regular expression", errx.AsErrorX(err).Fields()["searchString"])
	})

	t.Run("validates paging", func(t *testing.T) {
		f := newFixture(t, WithMaxPageSize(10))
		_, err := f.handler.FindEntities(ctx, "erin", Query{TypeName: TypeGlossaryTerm, PageSize: 11})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))

		_, err = f.handler.FindEntities(ctx, "erin", Query{TypeName: TypeGlossaryTerm, StartFrom: -1})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))
	})

	t.Run("search rejected by the database is invalid", func(t *testing.T) {
		f := newFixture(t, WithMaxPageSize(10))
		f.entities.On("FindEntities", mock.Anything, mock.Anything).
			Return(nil, store.ErrInvalidSearch).Once()

		_, err := f.handler.FindEntities(ctx, "erin", Query{TypeName: TypeGlossaryTerm, Search: `a{,2}`})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))
		assert.Equal(t, "not a valid regular expression", errx.AsErrorX(err).Fields()["searchString"])
	})

	t.Run("includes subtypes and defaults the page size", func(t *testing.T) {
		f := newFixture(t, WithMaxPageSize(10))
		f.entities.On("FindEntities", mock.Anything, store.EntityQuery{
			TypeNames: []string{TypeControlledGlossaryTerm, TypeGlossaryTerm},
			Search:    "Rev.*",
			Offset:    5,
			Limit:     10,
		}).Return([]model.Entity{{GUID: "t1"}}, nil).Once()

		found, err := f.handler.FindEntities(ctx, "erin", Query{TypeName: TypeGlossaryTerm, Search: "Rev.*", StartFrom: 5})
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})
}

func TestGetEntitiesByGUID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.entities.On("FindEntities", mock.Anything, mock.MatchedBy(func(q store.EntityQuery) bool {
		return len(q.GUIDs) == 3 && q.Limit == DefaultMaxPageSize
	})).Return([]model.Entity{{GUID: "c"}, {GUID: "a"}}, nil).Once()

	found, err := f.handler.GetEntitiesByGUID(ctx, "erin", TypeGlossary, []string{"a", "b", "c"}, time.Time{})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "a", found[0].GUID)
	assert.Equal(t, "c", found[1].GUID)
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, events.Event) error { return errors.New("broker down") }
func (failingPublisher) Close() error                               { return nil }

func TestPublishFailuresAreNotReturned(t *testing.T) {
	f := newFixture(t, WithPublisher(failingPublisher{}))
	f.expectUnique("Glossary:Sales")
	f.entities.On("CreateEntity", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.handler.CreateEntity(context.Background(), "erin", EntityRequest{TypeName: TypeGlossary, QualifiedName: "Glossary:Sales"}, Home{})
	assert.NoError(t, err)
}
