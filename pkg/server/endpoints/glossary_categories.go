package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server"
)

func RegisterGlossaryCategoryEndpoints(s *server.Server) {
	glossaries := s.Exchange.Glossaries
	log := s.Log

	router := s.Router.PathPrefix("/glossary-categories").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("", handleListGlossaryCategories(glossaries, log)).Methods("GET")
	router.HandleFunc("/{guid}", handleGetGlossaryCategory(glossaries, log)).Methods("GET")
	router.HandleFunc("/{guid}", handleUpdateGlossaryCategory(glossaries, log)).Methods("PUT")
	router.HandleFunc("/{guid}", handleRemoveGlossaryCategory(glossaries, log)).Methods("DELETE")
	router.HandleFunc("/{guid}/glossary", handleGetGlossaryForCategory(glossaries, log)).Methods("GET")

	// Category hierarchy
	router.HandleFunc("/{guid}/parent", handleGetGlossaryCategoryParent(glossaries, log)).Methods("GET")
	router.HandleFunc("/{guid}/subcategories", handleGetGlossarySubCategories(glossaries, log)).Methods("GET")
	router.HandleFunc("/{guid}/subcategories/{childGUID}", handleSetupCategoryParent(glossaries, log)).Methods("POST")
	router.HandleFunc("/{guid}/subcategories/{childGUID}", handleClearCategoryParent(glossaries, log)).Methods("DELETE")

	// Term categorization
	router.HandleFunc("/{guid}/terms", handleGetTermsForGlossaryCategory(glossaries, log)).Methods("GET")
	router.HandleFunc("/{guid}/terms/{termGUID}", handleSetupTermCategory(glossaries, log)).Methods("POST")
	router.HandleFunc("/{guid}/terms/{termGUID}", handleClearTermCategory(glossaries, log)).Methods("DELETE")
}

func categoryAudit(op string) auditor {
	return auditor{operation: op, typeName: handler.TypeGlossaryCategory}
}

func handleCreateGlossaryCategory(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return creation[exchangeRequest[exchange.GlossaryCategoryProperties]](log, categoryAudit("create"),
		func(r *http.Request, p requestParams, body *exchangeRequest[exchange.GlossaryCategoryProperties]) (string, error) {
			glossaryGUID := mux.Vars(r)["guid"]
			return g.CreateGlossaryCategory(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, glossaryGUID, body.Properties)
		})
}

func handleCreateGlossaryCategoryFromTemplate(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return creation[exchangeRequest[exchange.TemplateProperties]](log, categoryAudit("create-from-template"),
		func(r *http.Request, p requestParams, body *exchangeRequest[exchange.TemplateProperties]) (string, error) {
			vars := mux.Vars(r)
			return g.CreateGlossaryCategoryFromTemplate(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, vars["guid"], vars["templateGUID"], body.Properties)
		})
}

func handleGetCategoriesForGlossary(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		result, err := g.GetCategoriesForGlossary(r.Context(), p.userID, mux.Vars(r)["guid"], p.query)
		return list(result), err
	})
}

func handleListGlossaryCategories(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		q := r.URL.Query()
		var (
			result []exchange.GlossaryCategoryElement
			err    error
		)
		switch {
		case q.Get("searchString") != "":
			result, err = g.FindGlossaryCategories(r.Context(), p.userID, q.Get("searchString"), p.query)
		case q.Get("name") != "":
			result, err = g.GetGlossaryCategoriesByName(r.Context(), p.userID, q.Get("name"), p.query)
		default:
			result, err = g.GetGlossaryCategoriesForAssetManager(r.Context(), p.userID, p.query)
		}
		return list(result), err
	})
}

func handleGetGlossaryCategory(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		return g.GetGlossaryCategoryByGUID(r.Context(), p.userID, mux.Vars(r)["guid"], p.query)
	})
}

func handleGetGlossaryForCategory(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		return g.GetGlossaryForCategory(r.Context(), p.userID, mux.Vars(r)["guid"], p.query)
	})
}

func handleUpdateGlossaryCategory(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[exchangeRequest[exchange.GlossaryCategoryProperties]](log, categoryAudit("update"), "guid",
		func(r *http.Request, p requestParams, guid string, body *exchangeRequest[exchange.GlossaryCategoryProperties]) error {
			return g.UpdateGlossaryCategory(r.Context(), p.userID, body.Correlation, guid, body.Properties, p.isMergeUpdate)
		})
}

func handleRemoveGlossaryCategory(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, categoryAudit("remove"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return g.RemoveGlossaryCategory(r.Context(), p.userID, body.Correlation, guid)
		})
}

func handleGetGlossaryCategoryParent(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		return g.GetGlossaryCategoryParent(r.Context(), p.userID, mux.Vars(r)["guid"], p.query)
	})
}

func handleGetGlossarySubCategories(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		result, err := g.GetGlossarySubCategories(r.Context(), p.userID, mux.Vars(r)["guid"], p.query)
		return list(result), err
	})
}

func handleSetupCategoryParent(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[exchangeRequest[exchange.RelationshipProperties]](log, categoryAudit("setup-parent"), "guid",
		func(r *http.Request, p requestParams, guid string, body *exchangeRequest[exchange.RelationshipProperties]) error {
			return g.SetupCategoryParent(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, guid, mux.Vars(r)["childGUID"], body.Properties)
		})
}

func handleClearCategoryParent(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, categoryAudit("clear-parent"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return g.ClearCategoryParent(r.Context(), p.userID, body.Correlation, guid, mux.Vars(r)["childGUID"])
		})
}

func handleGetTermsForGlossaryCategory(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		statuses, err := relationshipStatuses(r)
		if err != nil {
			return nil, err
		}
		result, err := g.GetTermsForGlossaryCategory(r.Context(), p.userID, mux.Vars(r)["guid"], statuses, p.query)
		return list(result), err
	})
}

func handleSetupTermCategory(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[exchangeRequest[exchange.GlossaryTermCategorization]](log, categoryAudit("setup-term-category"), "guid",
		func(r *http.Request, p requestParams, guid string, body *exchangeRequest[exchange.GlossaryTermCategorization]) error {
			return g.SetupTermCategory(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, guid, mux.Vars(r)["termGUID"], body.Properties)
		})
}

func handleClearTermCategory(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, categoryAudit("clear-term-category"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return g.ClearTermCategory(r.Context(), p.userID, body.Correlation, guid, mux.Vars(r)["termGUID"])
		})
}
