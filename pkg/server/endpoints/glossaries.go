package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server"
)

type taxonomyRequest struct {
	correlationRequest
	OrganizingPrinciple string `json:"organizingPrinciple"`
}

type canonicalRequest struct {
	correlationRequest
	Scope string `json:"scope"`
}

func RegisterGlossaryEndpoints(s *server.Server) {
	glossaries := s.Exchange.Glossaries
	log := s.Log

	router := s.Router.PathPrefix("/glossaries").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	// POST /glossaries - Create a glossary
	router.HandleFunc("", handleCreateGlossary(glossaries, log)).Methods("POST")
	// POST /glossaries/from-template/{templateGUID} - Copy a glossary template
	router.HandleFunc("/from-template/{templateGUID}", handleCreateGlossaryFromTemplate(glossaries, log)).Methods("POST")
	// GET /glossaries?searchString=...|name=... - Find glossaries
	router.HandleFunc("", handleListGlossaries(glossaries, log)).Methods("GET")

	router.HandleFunc("/{guid}", handleGetGlossary(glossaries, log)).Methods("GET")
	router.HandleFunc("/{guid}", handleUpdateGlossary(glossaries, log)).Methods("PUT")
	router.HandleFunc("/{guid}", handleRemoveGlossary(glossaries, log)).Methods("DELETE")

	router.HandleFunc("/{guid}/taxonomy", handleSetGlossaryAsTaxonomy(glossaries, log)).Methods("POST")
	router.HandleFunc("/{guid}/taxonomy", handleClearGlossaryAsTaxonomy(glossaries, log)).Methods("DELETE")
	router.HandleFunc("/{guid}/canonical", handleSetGlossaryAsCanonical(glossaries, log)).Methods("POST")
	router.HandleFunc("/{guid}/canonical", handleClearGlossaryAsCanonical(glossaries, log)).Methods("DELETE")

	// Categories and terms anchored in a glossary
	router.HandleFunc("/{guid}/categories", handleCreateGlossaryCategory(glossaries, log)).Methods("POST")
	router.HandleFunc("/{guid}/categories/from-template/{templateGUID}", handleCreateGlossaryCategoryFromTemplate(glossaries, log)).Methods("POST")
	router.HandleFunc("/{guid}/categories", handleGetCategoriesForGlossary(glossaries, log)).Methods("GET")
	router.HandleFunc("/{guid}/terms", handleCreateGlossaryTerm(glossaries, log)).Methods("POST")
	router.HandleFunc("/{guid}/terms/from-template/{templateGUID}", handleCreateGlossaryTermFromTemplate(glossaries, log)).Methods("POST")
	router.HandleFunc("/{guid}/terms", handleGetTermsForGlossary(glossaries, log)).Methods("GET")
}

func glossaryAudit(op string) auditor {
	return auditor{operation: op, typeName: handler.TypeGlossary}
}

func handleCreateGlossary(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return creation[exchangeRequest[exchange.GlossaryProperties]](log, glossaryAudit("create"),
		func(r *http.Request, p requestParams, body *exchangeRequest[exchange.GlossaryProperties]) (string, error) {
			return g.CreateGlossary(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, body.Properties)
		})
}

func handleCreateGlossaryFromTemplate(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return creation[exchangeRequest[exchange.TemplateProperties]](log, glossaryAudit("create-from-template"),
		func(r *http.Request, p requestParams, body *exchangeRequest[exchange.TemplateProperties]) (string, error) {
			templateGUID := mux.Vars(r)["templateGUID"]
			return g.CreateGlossaryFromTemplate(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, templateGUID, body.Properties)
		})
}

func handleListGlossaries(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		q := r.URL.Query()
		var (
			result []exchange.GlossaryElement
			err    error
		)
		switch {
		case q.Get("searchString") != "":
			result, err = g.FindGlossaries(r.Context(), p.userID, q.Get("searchString"), p.query)
		case q.Get("name") != "":
			result, err = g.GetGlossariesByName(r.Context(), p.userID, q.Get("name"), p.query)
		default:
			result, err = g.GetGlossariesForAssetManager(r.Context(), p.userID, p.query)
		}
		return list(result), err
	})
}

func handleGetGlossary(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		return g.GetGlossaryByGUID(r.Context(), p.userID, mux.Vars(r)["guid"], p.query)
	})
}

func handleUpdateGlossary(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[exchangeRequest[exchange.GlossaryProperties]](log, glossaryAudit("update"), "guid",
		func(r *http.Request, p requestParams, guid string, body *exchangeRequest[exchange.GlossaryProperties]) error {
			return g.UpdateGlossary(r.Context(), p.userID, body.Correlation, guid, body.Properties, p.isMergeUpdate)
		})
}

func handleRemoveGlossary(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, glossaryAudit("remove"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return g.RemoveGlossary(r.Context(), p.userID, body.Correlation, guid)
		})
}

func handleSetGlossaryAsTaxonomy(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[taxonomyRequest](log, glossaryAudit("set-taxonomy"), "guid",
		func(r *http.Request, p requestParams, guid string, body *taxonomyRequest) error {
			return g.SetGlossaryAsTaxonomy(r.Context(), p.userID, body.Correlation, guid, body.OrganizingPrinciple)
		})
}

func handleClearGlossaryAsTaxonomy(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, glossaryAudit("clear-taxonomy"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return g.ClearGlossaryAsTaxonomy(r.Context(), p.userID, body.Correlation, guid)
		})
}

func handleSetGlossaryAsCanonical(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[canonicalRequest](log, glossaryAudit("set-canonical"), "guid",
		func(r *http.Request, p requestParams, guid string, body *canonicalRequest) error {
			return g.SetGlossaryAsCanonical(r.Context(), p.userID, body.Correlation, guid, body.Scope)
		})
}

func handleClearGlossaryAsCanonical(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, glossaryAudit("clear-canonical"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return g.ClearGlossaryAsCanonical(r.Context(), p.userID, body.Correlation, guid)
		})
}
