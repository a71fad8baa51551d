package exchange_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

func (f *fixture) comments() *exchange.CommentExchangeHandler {
	return exchange.NewCommentExchangeHandler(f.entities, f.externalIDs)
}

func comment(guid string, commentType exchange.CommentType) *model.Entity {
	return &model.Entity{
		GUID:       guid,
		TypeName:   handler.TypeComment,
		Properties: model.Properties{"commentType": int(commentType), "commentText": "text of " + guid},
	}
}

func TestAddCommentToElement(t *testing.T) {
	f := newFixture(t)
	f.identifierFree()
	f.entities.On("GetEntity", mock.Anything, user, "a-1", handler.TypeReferenceable, time.Time{}).
		Return(&model.Entity{GUID: "a-1", TypeName: handler.TypeDataSet}, nil)
	f.entities.On("CreateEntity", mock.Anything, user, mock.MatchedBy(func(req handler.EntityRequest) bool {
		return req.TypeName == handler.TypeComment &&
			req.DisplayName == "Is this table still loaded?" &&
			req.Properties["commentType"] == int(exchange.CommentTypeQuestion) &&
			req.Properties["isPublic"] == true
	}), amHome).Return("c-1", nil)
	f.externalIDs.On("SetUpExternalIdentifier", mock.Anything, user, "c-1", handler.TypeComment, mock.Anything).Return(nil)
	f.entities.On("LinkEntities", mock.Anything, user, mock.MatchedBy(func(req handler.LinkRequest) bool {
		return req.TypeName == handler.RelAttachedComment && req.End1GUID == "a-1" && req.End2GUID == "c-1"
	})).Return("r-1", nil)

	guid, err := f.comments().AddCommentToElement(context.Background(), user, correlation(), true, "a-1", &exchange.CommentProperties{
		QualifiedName: "Comment::1",
		CommentText:   "Is this table still loaded?",
		CommentType:   exchange.CommentTypeQuestion,
		IsPublic:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "c-1", guid)
}

func TestAddCommentToElement_RemovesCommentWhenAttachFails(t *testing.T) {
	f := newFixture(t)
	f.identifierFree()
	f.entities.On("GetEntity", mock.Anything, user, "a-1", handler.TypeReferenceable, time.Time{}).
		Return(&model.Entity{GUID: "a-1", TypeName: handler.TypeDataSet}, nil)
	f.entities.On("CreateEntity", mock.Anything, user, mock.Anything, amHome).Return("c-1", nil)
	f.externalIDs.On("SetUpExternalIdentifier", mock.Anything, user, "c-1", handler.TypeComment, mock.Anything).Return(nil)
	f.entities.On("LinkEntities", mock.Anything, user, mock.Anything).
		Return("", errs.PropertyServer(errors.New("connection reset")))
	f.entities.On("DeleteEntity", mock.Anything, user, "c-1", handler.TypeComment, amHome).Return(nil)

	_, err := f.comments().AddCommentToElement(context.Background(), user, correlation(), true, "a-1", &exchange.CommentProperties{
		QualifiedName: "Comment::1",
		CommentText:   "orphan",
	})
	require.Error(t, err)
	assert.True(t, errs.IsPropertyServer(err))
}

func TestAddCommentToElement_Validation(t *testing.T) {
	tests := []struct {
		name        string
		elementGUID string
		props       *exchange.CommentProperties
	}{
		{"missing element", "", &exchange.CommentProperties{QualifiedName: "c", CommentText: "x"}},
		{"nil properties", "a-1", nil},
		{"missing text", "a-1", &exchange.CommentProperties{QualifiedName: "c"}},
		{"unknown comment type", "a-1", &exchange.CommentProperties{QualifiedName: "c", CommentText: "x", CommentType: exchange.CommentType(42)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.comments().AddCommentToElement(context.Background(), user, nil, false, tc.elementGUID, tc.props)
			require.Error(t, err)
			assert.True(t, errs.IsInvalidParameter(err))
		})
	}
}

func TestSetupAcceptedAnswer(t *testing.T) {
	t.Run("question must be a question", func(t *testing.T) {
		f := newFixture(t)
		f.entities.On("GetEntity", mock.Anything, user, "c-1", handler.TypeComment, time.Time{}).
			Return(comment("c-1", exchange.CommentTypeSuggestion), nil)

		err := f.comments().SetupAcceptedAnswer(context.Background(), user, nil, false, "c-1", "c-2", nil)
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))
	})

	t.Run("answer must be an answer", func(t *testing.T) {
		f := newFixture(t)
		f.entities.On("GetEntity", mock.Anything, user, "c-1", handler.TypeComment, time.Time{}).
			Return(comment("c-1", exchange.CommentTypeQuestion), nil)
		f.entities.On("GetEntity", mock.Anything, user, "c-2", handler.TypeComment, time.Time{}).
			Return(comment("c-2", exchange.CommentTypeStandardComment), nil)

		err := f.comments().SetupAcceptedAnswer(context.Background(), user, nil, false, "c-1", "c-2", nil)
		require.Error(t, err)
		assert.True(t, errs.IsInvalidParameter(err))
	})

	t.Run("links question to answer", func(t *testing.T) {
		f := newFixture(t)
		f.entities.On("GetEntity", mock.Anything, user, "c-1", handler.TypeComment, time.Time{}).
			Return(comment("c-1", exchange.CommentTypeQuestion), nil)
		f.entities.On("GetEntity", mock.Anything, user, "c-2", handler.TypeComment, time.Time{}).
			Return(comment("c-2", exchange.CommentTypeAnswer), nil)
		f.entities.On("LinkEntities", mock.Anything, user, mock.MatchedBy(func(req handler.LinkRequest) bool {
			return req.TypeName == handler.RelAcceptedAnswer && req.End1GUID == "c-1" && req.End2GUID == "c-2"
		})).Return("r-1", nil)

		require.NoError(t, f.comments().SetupAcceptedAnswer(context.Background(), user, nil, false, "c-1", "c-2", nil))
	})
}

func TestClearAcceptedAnswer(t *testing.T) {
	f := newFixture(t)
	f.entities.On("UnlinkEntities", mock.Anything, user, handler.RelAcceptedAnswer, "c-1", "c-2", amHome).Return(nil)

	require.NoError(t, f.comments().ClearAcceptedAnswer(context.Background(), user, correlation(), "c-1", "c-2"))
}

func TestGetAttachedComments(t *testing.T) {
	f := newFixture(t)
	f.entities.On("GetRelatedEntities", mock.Anything, user, "a-1", handler.TypeReferenceable, handler.RelatedQuery{
		RelationshipTypes: []string{handler.RelAttachedComment},
		StartingEnd:       handler.End1,
		ResultTypeName:    handler.TypeComment,
		PageSize:          20,
	}).Return([]handler.RelatedEntity{
		{Entity: *comment("c-1", exchange.CommentTypeQuestion)},
		{Entity: *comment("c-2", exchange.CommentTypeUsageExperience)},
	}, nil)

	comments, err := f.comments().GetAttachedComments(context.Background(), user, "a-1", exchange.QueryOptions{PageSize: 20})
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, exchange.CommentTypeQuestion, comments[0].Properties.CommentType)
	assert.Equal(t, "text of c-2", comments[1].Properties.CommentText)
}

func TestRemoveComment_ValidatesExternalIdentifier(t *testing.T) {
	f := newFixture(t)
	f.externalIDs.On("ValidateExternalIdentifier", mock.Anything, user, "c-1", handler.TypeComment, "am-1", "ext-1").Return(nil)
	f.entities.On("DeleteEntity", mock.Anything, user, "c-1", handler.TypeComment, amHome).Return(nil)

	require.NoError(t, f.comments().RemoveComment(context.Background(), user, correlation(), "c-1"))
}
