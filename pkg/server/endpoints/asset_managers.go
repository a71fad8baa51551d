package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server"
)

func RegisterAssetManagerEndpoints(s *server.Server) {
	assetManagers := s.Exchange.AssetManagers
	log := s.Log

	router := s.Router.PathPrefix("/asset-managers").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	// POST /asset-managers - Register an asset manager
	router.HandleFunc("", handleCreateAssetManager(assetManagers, log)).Methods("POST")
	// GET /asset-managers?qualifiedName=... - Look up an asset manager's GUID
	router.HandleFunc("", handleGetAssetManagerGUID(assetManagers, log)).Methods("GET")
	// GET /asset-managers/{guid}/external-identifiers/{identifier} - Resolve an identifier
	router.HandleFunc("/{guid}/external-identifiers/{identifier}", handleResolveExternalIdentifier(assetManagers, log)).Methods("GET")
}

func handleCreateAssetManager(a *exchange.AssetManagerExchangeHandler, log logger.Logger) http.HandlerFunc {
	return creation[exchangeRequest[exchange.AssetManagerProperties]](log, auditor{operation: "create", typeName: handler.TypeAssetManager},
		func(r *http.Request, p requestParams, body *exchangeRequest[exchange.AssetManagerProperties]) (string, error) {
			return a.CreateAssetManager(r.Context(), p.userID, body.Properties)
		})
}

func handleGetAssetManagerGUID(a *exchange.AssetManagerExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		guid, err := a.GetAssetManagerGUID(r.Context(), p.userID, r.URL.Query().Get("qualifiedName"))
		if err != nil {
			return nil, err
		}
		return map[string]string{"guid": guid}, nil
	})
}

func handleResolveExternalIdentifier(a *exchange.AssetManagerExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		vars := mux.Vars(r)
		guid, err := a.ResolveExternalIdentifier(r.Context(), p.userID, vars["guid"], vars["identifier"])
		if err != nil {
			return nil, err
		}
		return map[string]string{"guid": guid}, nil
	})
}
