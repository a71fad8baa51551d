package exchange

import (
	"context"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

// CommentExchangeHandler exchanges the comments attached to elements.
type CommentExchangeHandler struct {
	base
}

func NewCommentExchangeHandler(entities EntityHandler, externalIDs ExternalIdentifierHandler, opts ...Option) *CommentExchangeHandler {
	return &CommentExchangeHandler{base: newBase("comment-exchange", entities, externalIDs, buildOptions(opts))}
}

func (h *CommentExchangeHandler) comments(ctx context.Context, userID string, entities []model.Entity, opts QueryOptions) ([]CommentElement, error) {
	return convert(ctx, &h.base, userID, entities, opts, func(e *model.Entity, header ElementHeader, correlation []MetadataCorrelationHeader) CommentElement {
		return CommentElement{ElementHeader: header, Correlation: correlation, Properties: commentProperties(e)}
	})
}

// AddCommentToElement attaches a new comment to the element and returns its
// GUID. Attaching to a comment creates a reply.
func (h *CommentExchangeHandler) AddCommentToElement(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, elementGUID string, props *CommentProperties) (string, error) {
	if err := validateGUID(elementGUID, "elementGUID"); err != nil {
		return "", err
	}
	if err := validateProperties("commentProperties", props); err != nil {
		return "", err
	}
	if !props.CommentType.IsACommentType() {
		return "", errs.InvalidParameter("commentType", props.CommentType.String()+" is not a comment type")
	}
	if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
		return "", err
	}
	if _, err := h.entities.GetEntity(ctx, userID, elementGUID, handler.TypeReferenceable, zeroTime); err != nil {
		return "", err
	}
	guid, err := h.create(ctx, userID, correlation, assetManagerIsHome, props.request())
	if err != nil {
		return "", err
	}
	if _, err := h.link(ctx, userID, correlation, assetManagerIsHome, handler.RelAttachedComment, elementGUID, guid, nil, nil); err != nil {
		return "", h.discard(ctx, userID, correlation, guid, handler.TypeComment, err)
	}
	return guid, nil
}

func (h *CommentExchangeHandler) UpdateComment(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, commentGUID string, props *CommentProperties, isMergeUpdate bool) error {
	if err := validateGUID(commentGUID, "commentGUID"); err != nil {
		return err
	}
	if err := validateProperties("commentProperties", props); err != nil {
		return err
	}
	if !props.CommentType.IsACommentType() {
		return errs.InvalidParameter("commentType", props.CommentType.String()+" is not a comment type")
	}
	if err := validateEffectivity(props.EffectiveFrom, props.EffectiveTo); err != nil {
		return err
	}
	return h.update(ctx, userID, correlation, commentGUID, handler.TypeComment, props.request(), isMergeUpdate)
}

// RemoveComment removes the comment and its replies.
func (h *CommentExchangeHandler) RemoveComment(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, commentGUID string) error {
	if err := validateGUID(commentGUID, "commentGUID"); err != nil {
		return err
	}
	return h.remove(ctx, userID, correlation, commentGUID, handler.TypeComment)
}

func (h *CommentExchangeHandler) commentOfType(ctx context.Context, userID, guid, name string, want CommentType) error {
	if err := validateGUID(guid, name); err != nil {
		return err
	}
	comment, err := h.entities.GetEntity(ctx, userID, guid, handler.TypeComment, zeroTime)
	if err != nil {
		return err
	}
	if got := commentTypeOf(comment); got != want {
		return errs.InvalidParameter(name, guid+" is a "+got.String()+" not a "+want.String())
	}
	return nil
}

// SetupAcceptedAnswer records that the answer resolves the question.
func (h *CommentExchangeHandler) SetupAcceptedAnswer(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, assetManagerIsHome bool, questionGUID, answerGUID string, props *RelationshipProperties) error {
	if err := h.commentOfType(ctx, userID, questionGUID, "questionCommentGUID", CommentTypeQuestion); err != nil {
		return err
	}
	if err := h.commentOfType(ctx, userID, answerGUID, "answerCommentGUID", CommentTypeAnswer); err != nil {
		return err
	}
	_, err := h.link(ctx, userID, correlation, assetManagerIsHome, handler.RelAcceptedAnswer, questionGUID, answerGUID, props.properties(), props)
	return err
}

func (h *CommentExchangeHandler) ClearAcceptedAnswer(ctx context.Context, userID string, correlation *MetadataCorrelationProperties, questionGUID, answerGUID string) error {
	if err := validateGUID(questionGUID, "questionCommentGUID"); err != nil {
		return err
	}
	if err := validateGUID(answerGUID, "answerCommentGUID"); err != nil {
		return err
	}
	return h.entities.UnlinkEntities(ctx, userID, handler.RelAcceptedAnswer, questionGUID, answerGUID, callerOf(correlation))
}

func (h *CommentExchangeHandler) GetCommentByGUID(ctx context.Context, userID, commentGUID string, opts QueryOptions) (*CommentElement, error) {
	if err := validateGUID(commentGUID, "commentGUID"); err != nil {
		return nil, err
	}
	entity, err := h.entities.GetEntity(ctx, userID, commentGUID, handler.TypeComment, opts.EffectiveTime)
	if err != nil {
		return nil, err
	}
	elements, err := h.comments(ctx, userID, []model.Entity{*entity}, opts)
	if err != nil {
		return nil, err
	}
	return &elements[0], nil
}

// GetAttachedComments returns the comments attached directly to the element.
func (h *CommentExchangeHandler) GetAttachedComments(ctx context.Context, userID, elementGUID string, opts QueryOptions) ([]CommentElement, error) {
	if err := validateGUID(elementGUID, "elementGUID"); err != nil {
		return nil, err
	}
	related, err := h.related(ctx, userID, elementGUID, handler.TypeReferenceable, handler.End1, []string{handler.RelAttachedComment}, handler.TypeComment, opts)
	if err != nil {
		return nil, err
	}
	return h.comments(ctx, userID, relatedEntities(related), opts)
}

// FindComments returns the comments whose text matches the regular expression searchString.
func (h *CommentExchangeHandler) FindComments(ctx context.Context, userID, searchString string, opts QueryOptions) ([]CommentElement, error) {
	if err := validateName(searchString, "searchString"); err != nil {
		return nil, err
	}
	entities, err := h.entities.FindEntities(ctx, userID, handler.Query{
		TypeName:      handler.TypeComment,
		Search:        searchString,
		EffectiveTime: opts.EffectiveTime,
		StartFrom:     opts.StartFrom,
		PageSize:      opts.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return h.comments(ctx, userID, entities, opts)
}

func (h *CommentExchangeHandler) GetCommentsForAssetManager(ctx context.Context, userID string, opts QueryOptions) ([]CommentElement, error) {
	entities, err := h.forAssetManager(ctx, userID, handler.TypeComment, opts)
	if err != nil {
		return nil, err
	}
	return h.comments(ctx, userID, entities, opts)
}
