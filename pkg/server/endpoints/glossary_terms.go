package endpoints

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server"
)

type termStatusRequest struct {
	correlationRequest
	Status exchange.GlossaryTermStatus `json:"status"`
}

func RegisterGlossaryTermEndpoints(s *server.Server) {
	glossaries := s.Exchange.Glossaries
	log := s.Log

	router := s.Router.PathPrefix("/glossary-terms").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	// Must be registered before /{guid}
	router.HandleFunc("/relationship-types", handleGetTermRelationshipTypeNames(glossaries)).Methods("GET")

	router.HandleFunc("", handleListGlossaryTerms(glossaries, log)).Methods("GET")
	router.HandleFunc("/{guid}", handleGetGlossaryTerm(glossaries, log)).Methods("GET")
	router.HandleFunc("/{guid}", handleUpdateGlossaryTerm(glossaries, log)).Methods("PUT")
	router.HandleFunc("/{guid}", handleRemoveGlossaryTerm(glossaries, log)).Methods("DELETE")
	router.HandleFunc("/{guid}/status", handleUpdateGlossaryTermStatus(glossaries, log)).Methods("PUT")
	router.HandleFunc("/{guid}/glossary", handleGetGlossaryForTerm(glossaries, log)).Methods("GET")

	// Relationships between terms
	router.HandleFunc("/{guid}/related", handleGetRelatedTerms(glossaries, log)).Methods("GET")
	router.HandleFunc("/{guid}/relationships/{typeName}/{otherGUID}", handleSetupTermRelationship(glossaries, log)).Methods("POST")
	router.HandleFunc("/{guid}/relationships/{typeName}/{otherGUID}", handleUpdateTermRelationship(glossaries, log)).Methods("PUT")
	router.HandleFunc("/{guid}/relationships/{typeName}/{otherGUID}", handleClearTermRelationship(glossaries, log)).Methods("DELETE")

	// POST|DELETE /glossary-terms/{guid}/classifications/{classification}
	router.HandleFunc("/{guid}/classifications/{classification}", handleSetTermClassification(glossaries, log)).Methods("POST")
	router.HandleFunc("/{guid}/classifications/{classification}", handleClearTermClassification(glossaries, log)).Methods("DELETE")
}

func termAudit(op string) auditor {
	return auditor{operation: op, typeName: handler.TypeGlossaryTerm}
}

type termClassification struct {
	set   func(ctx context.Context, userID string, c *exchange.MetadataCorrelationProperties, guid string, props *exchange.ContextDefinitionProperties) error
	clear func(ctx context.Context, userID string, c *exchange.MetadataCorrelationProperties, guid string) error
}

func withoutProperties(
	set func(ctx context.Context, userID string, c *exchange.MetadataCorrelationProperties, guid string) error,
) func(context.Context, string, *exchange.MetadataCorrelationProperties, string, *exchange.ContextDefinitionProperties) error {
	return func(ctx context.Context, userID string, c *exchange.MetadataCorrelationProperties, guid string, _ *exchange.ContextDefinitionProperties) error {
		return set(ctx, userID, c, guid)
	}
}

func termClassifications(g *exchange.GlossaryExchangeHandler) map[string]termClassification {
	return map[string]termClassification{
		"abstract-concept":  {withoutProperties(g.SetTermAsAbstractConcept), g.ClearTermAsAbstractConcept},
		"data-value":        {withoutProperties(g.SetTermAsDataValue), g.ClearTermAsDataValue},
		"context":           {g.SetTermAsContext, g.ClearTermAsContext},
		"spine-object":      {withoutProperties(g.SetTermAsSpineObject), g.ClearTermAsSpineObject},
		"spine-attribute":   {withoutProperties(g.SetTermAsSpineAttribute), g.ClearTermAsSpineAttribute},
		"object-identifier": {withoutProperties(g.SetTermAsObjectIdentifier), g.ClearTermAsObjectIdentifier},
	}
}

func lookupClassification(classifications map[string]termClassification, r *http.Request) (termClassification, error) {
	name := mux.Vars(r)["classification"]
	c, ok := classifications[name]
	if !ok {
		return c, errs.InvalidParameter("classification", name+" is not a glossary term classification")
	}
	return c, nil
}

// termStatuses reads the status query parameter, either repeated or comma separated.
func termStatuses(r *http.Request) ([]exchange.GlossaryTermStatus, error) {
	var statuses []exchange.GlossaryTermStatus
	for _, v := range r.URL.Query()["status"] {
		for _, name := range strings.Split(v, ",") {
			status, err := exchange.GlossaryTermStatusString(strings.TrimSpace(name))
			if err != nil {
				return nil, errs.InvalidParameter("status", name+" is not a glossary term status")
			}
			statuses = append(statuses, status)
		}
	}
	return statuses, nil
}

func relationshipStatuses(r *http.Request) ([]exchange.TermRelationshipStatus, error) {
	var statuses []exchange.TermRelationshipStatus
	for _, v := range r.URL.Query()["status"] {
		for _, name := range strings.Split(v, ",") {
			status, err := exchange.TermRelationshipStatusString(strings.TrimSpace(name))
			if err != nil {
				return nil, errs.InvalidParameter("status", name+" is not a term relationship status")
			}
			statuses = append(statuses, status)
		}
	}
	return statuses, nil
}

// handleCreateGlossaryTerm creates a term in the glossary. An initialStatus
// query parameter creates a controlled term.
func handleCreateGlossaryTerm(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return creation[exchangeRequest[exchange.GlossaryTermProperties]](log, termAudit("create"),
		func(r *http.Request, p requestParams, body *exchangeRequest[exchange.GlossaryTermProperties]) (string, error) {
			glossaryGUID := mux.Vars(r)["guid"]
			initial := r.URL.Query().Get("initialStatus")
			if initial == "" {
				return g.CreateGlossaryTerm(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, glossaryGUID, body.Properties)
			}
			status, err := exchange.GlossaryTermStatusString(initial)
			if err != nil {
				return "", errs.InvalidParameter("initialStatus", initial+" is not a glossary term status")
			}
			return g.CreateControlledGlossaryTerm(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, glossaryGUID, body.Properties, status)
		})
}

func handleCreateGlossaryTermFromTemplate(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return creation[exchangeRequest[exchange.TemplateProperties]](log, termAudit("create-from-template"),
		func(r *http.Request, p requestParams, body *exchangeRequest[exchange.TemplateProperties]) (string, error) {
			vars := mux.Vars(r)
			return g.CreateGlossaryTermFromTemplate(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, vars["guid"], vars["templateGUID"], body.Properties)
		})
}

// handleGetTermsForGlossary lists the terms of a glossary, or searches them
// when searchString is given.
func handleGetTermsForGlossary(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		glossaryGUID := mux.Vars(r)["guid"]
		search := r.URL.Query().Get("searchString")
		if search == "" {
			result, err := g.GetTermsForGlossary(r.Context(), p.userID, glossaryGUID, p.query)
			return list(result), err
		}
		statuses, err := termStatuses(r)
		if err != nil {
			return nil, err
		}
		result, err := g.FindGlossaryTerms(r.Context(), p.userID, glossaryGUID, search, statuses, p.query)
		return list(result), err
	})
}

func handleGetTermRelationshipTypeNames(g *exchange.GlossaryExchangeHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, list(g.GetTermRelationshipTypeNames()))
	}
}

func handleListGlossaryTerms(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		q := r.URL.Query()
		var (
			result []exchange.GlossaryTermElement
			err    error
		)
		switch {
		case q.Get("searchString") != "":
			statuses, serr := termStatuses(r)
			if serr != nil {
				return nil, serr
			}
			result, err = g.FindGlossaryTerms(r.Context(), p.userID, q.Get("glossaryGUID"), q.Get("searchString"), statuses, p.query)
		case q.Get("name") != "":
			result, err = g.GetGlossaryTermsByName(r.Context(), p.userID, q.Get("name"), p.query)
		default:
			result, err = g.GetGlossaryTermsForAssetManager(r.Context(), p.userID, p.query)
		}
		return list(result), err
	})
}

func handleGetGlossaryTerm(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		return g.GetGlossaryTermByGUID(r.Context(), p.userID, mux.Vars(r)["guid"], p.query)
	})
}

func handleGetGlossaryForTerm(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		return g.GetGlossaryForTerm(r.Context(), p.userID, mux.Vars(r)["guid"], p.query)
	})
}

func handleUpdateGlossaryTerm(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[exchangeRequest[exchange.GlossaryTermProperties]](log, termAudit("update"), "guid",
		func(r *http.Request, p requestParams, guid string, body *exchangeRequest[exchange.GlossaryTermProperties]) error {
			return g.UpdateGlossaryTerm(r.Context(), p.userID, body.Correlation, guid, body.Properties, p.isMergeUpdate)
		})
}

func handleUpdateGlossaryTermStatus(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[termStatusRequest](log, termAudit("update-status"), "guid",
		func(r *http.Request, p requestParams, guid string, body *termStatusRequest) error {
			return g.UpdateGlossaryTermStatus(r.Context(), p.userID, body.Correlation, guid, body.Status)
		})
}

func handleRemoveGlossaryTerm(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, termAudit("remove"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return g.RemoveGlossaryTerm(r.Context(), p.userID, body.Correlation, guid)
		})
}

func handleGetRelatedTerms(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		result, err := g.GetRelatedTerms(r.Context(), p.userID, mux.Vars(r)["guid"], r.URL.Query().Get("typeName"), p.query)
		return list(result), err
	})
}

func handleSetupTermRelationship(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[exchangeRequest[exchange.GlossaryTermRelationship]](log, termAudit("setup-relationship"), "guid",
		func(r *http.Request, p requestParams, guid string, body *exchangeRequest[exchange.GlossaryTermRelationship]) error {
			vars := mux.Vars(r)
			return g.SetupTermRelationship(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, vars["typeName"], guid, vars["otherGUID"], body.Properties)
		})
}

func handleUpdateTermRelationship(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[exchangeRequest[exchange.GlossaryTermRelationship]](log, termAudit("update-relationship"), "guid",
		func(r *http.Request, p requestParams, guid string, body *exchangeRequest[exchange.GlossaryTermRelationship]) error {
			vars := mux.Vars(r)
			return g.UpdateTermRelationship(r.Context(), p.userID, body.Correlation, vars["typeName"], guid, vars["otherGUID"], body.Properties, p.isMergeUpdate)
		})
}

func handleClearTermRelationship(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, termAudit("clear-relationship"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			vars := mux.Vars(r)
			return g.ClearTermRelationship(r.Context(), p.userID, body.Correlation, vars["typeName"], guid, vars["otherGUID"])
		})
}

func handleSetTermClassification(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	classifications := termClassifications(g)
	return mutation[exchangeRequest[exchange.ContextDefinitionProperties]](log, termAudit("classify"), "guid",
		func(r *http.Request, p requestParams, guid string, body *exchangeRequest[exchange.ContextDefinitionProperties]) error {
			c, err := lookupClassification(classifications, r)
			if err != nil {
				return err
			}
			return c.set(r.Context(), p.userID, body.Correlation, guid, body.Properties)
		})
}

func handleClearTermClassification(g *exchange.GlossaryExchangeHandler, log logger.Logger) http.HandlerFunc {
	classifications := termClassifications(g)
	return mutation[correlationRequest](log, termAudit("declassify"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			c, err := lookupClassification(classifications, r)
			if err != nil {
				return err
			}
			return c.clear(r.Context(), p.userID, body.Correlation, guid)
		})
}
