package endpoints

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server"
)

// renderedComment carries the comment text converted from markdown.
type renderedComment struct {
	exchange.CommentElement
	CommentHTML string `json:"commentHTML"`
}

var markdown = goldmark.New()

func renderComment(c exchange.CommentElement) (renderedComment, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(c.Properties.CommentText), &buf); err != nil {
		return renderedComment{}, err
	}
	return renderedComment{CommentElement: c, CommentHTML: buf.String()}, nil
}

// renderComments converts comments when the request asks for ?render=html.
func renderComments(r *http.Request, comments []exchange.CommentElement) (any, error) {
	if r.URL.Query().Get("render") != "html" {
		return list(comments), nil
	}
	rendered := make([]renderedComment, 0, len(comments))
	for _, c := range comments {
		rc, err := renderComment(c)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, rc)
	}
	return rendered, nil
}

func RegisterCommentEndpoints(s *server.Server) {
	comments := s.Exchange.Comments
	log := s.Log

	elements := s.Router.PathPrefix("/elements").Subrouter()
	elements.Use(s.JWTMiddleware.Middleware)

	// POST /elements/{guid}/comments - Attach a comment to any element
	elements.HandleFunc("/{guid}/comments", handleAddCommentToElement(comments, log)).Methods("POST")
	elements.HandleFunc("/{guid}/comments", handleGetAttachedComments(comments, log)).Methods("GET")

	router := s.Router.PathPrefix("/comments").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("", handleListComments(comments, log)).Methods("GET")
	router.HandleFunc("/{guid}", handleGetComment(comments, log)).Methods("GET")
	router.HandleFunc("/{guid}", handleUpdateComment(comments, log)).Methods("PUT")
	router.HandleFunc("/{guid}", handleRemoveComment(comments, log)).Methods("DELETE")
	router.HandleFunc("/{guid}/accepted-answers/{answerGUID}", handleSetupAcceptedAnswer(comments, log)).Methods("POST")
	router.HandleFunc("/{guid}/accepted-answers/{answerGUID}", handleClearAcceptedAnswer(comments, log)).Methods("DELETE")
}

func commentAudit(op string) auditor {
	return auditor{operation: op, typeName: handler.TypeComment}
}

func handleAddCommentToElement(c *exchange.CommentExchangeHandler, log logger.Logger) http.HandlerFunc {
	return creation[exchangeRequest[exchange.CommentProperties]](log, commentAudit("create"),
		func(r *http.Request, p requestParams, body *exchangeRequest[exchange.CommentProperties]) (string, error) {
			return c.AddCommentToElement(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, mux.Vars(r)["guid"], body.Properties)
		})
}

func handleGetAttachedComments(c *exchange.CommentExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		result, err := c.GetAttachedComments(r.Context(), p.userID, mux.Vars(r)["guid"], p.query)
		if err != nil {
			return nil, err
		}
		return renderComments(r, result)
	})
}

func handleListComments(c *exchange.CommentExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		var (
			result []exchange.CommentElement
			err    error
		)
		if search := r.URL.Query().Get("searchString"); search != "" {
			result, err = c.FindComments(r.Context(), p.userID, search, p.query)
		} else {
			result, err = c.GetCommentsForAssetManager(r.Context(), p.userID, p.query)
		}
		if err != nil {
			return nil, err
		}
		return renderComments(r, result)
	})
}

func handleGetComment(c *exchange.CommentExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		comment, err := c.GetCommentByGUID(r.Context(), p.userID, mux.Vars(r)["guid"], p.query)
		if err != nil {
			return nil, err
		}
		if r.URL.Query().Get("render") == "html" {
			return renderComment(*comment)
		}
		return comment, nil
	})
}

func handleUpdateComment(c *exchange.CommentExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[exchangeRequest[exchange.CommentProperties]](log, commentAudit("update"), "guid",
		func(r *http.Request, p requestParams, guid string, body *exchangeRequest[exchange.CommentProperties]) error {
			return c.UpdateComment(r.Context(), p.userID, body.Correlation, guid, body.Properties, p.isMergeUpdate)
		})
}

func handleRemoveComment(c *exchange.CommentExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, commentAudit("remove"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return c.RemoveComment(r.Context(), p.userID, body.Correlation, guid)
		})
}

func handleSetupAcceptedAnswer(c *exchange.CommentExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[exchangeRequest[exchange.RelationshipProperties]](log, commentAudit("setup-accepted-answer"), "guid",
		func(r *http.Request, p requestParams, guid string, body *exchangeRequest[exchange.RelationshipProperties]) error {
			return c.SetupAcceptedAnswer(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, guid, mux.Vars(r)["answerGUID"], body.Properties)
		})
}

func handleClearAcceptedAnswer(c *exchange.CommentExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, commentAudit("clear-accepted-answer"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return c.ClearAcceptedAnswer(r.Context(), p.userID, body.Correlation, guid, mux.Vars(r)["answerGUID"])
		})
}
