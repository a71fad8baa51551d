package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server"
)

func RegisterDataAssetEndpoints(s *server.Server) {
	assets := s.Exchange.DataAssets
	log := s.Log

	router := s.Router.PathPrefix("/data-assets").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("", handleCreateDataAsset(assets, log)).Methods("POST")
	router.HandleFunc("/from-template/{templateGUID}", handleCreateDataAssetFromTemplate(assets, log)).Methods("POST")
	router.HandleFunc("", handleListDataAssets(assets, log)).Methods("GET")

	router.HandleFunc("/{guid}", handleGetDataAsset(assets, log)).Methods("GET")
	router.HandleFunc("/{guid}", handleUpdateDataAsset(assets, log)).Methods("PUT")
	router.HandleFunc("/{guid}", handleRemoveDataAsset(assets, log)).Methods("DELETE")

	// Zone membership
	router.HandleFunc("/{guid}/publish", handlePublishDataAsset(assets, log)).Methods("POST")
	router.HandleFunc("/{guid}/withdraw", handleWithdrawDataAsset(assets, log)).Methods("POST")

	// Lineage and containment between assets
	router.HandleFunc("/{guid}/related", handleGetRelatedDataAssets(assets, log)).Methods("GET")
	router.HandleFunc("/{guid}/related/{typeName}/{otherGUID}", handleSetupRelatedDataAsset(assets, log)).Methods("POST")
	router.HandleFunc("/relationships/{relationshipGUID}", handleUpdateDataAssetRelationship(assets, log)).Methods("PUT")
	router.HandleFunc("/relationships/{relationshipGUID}", handleClearDataAssetRelationship(assets, log)).Methods("DELETE")
}

func dataAssetAudit(op string) auditor {
	return auditor{operation: op, typeName: handler.TypeDataAsset}
}

func handleCreateDataAsset(d *exchange.DataAssetExchangeHandler, log logger.Logger) http.HandlerFunc {
	return creation[exchangeRequest[exchange.DataAssetProperties]](log, dataAssetAudit("create"),
		func(r *http.Request, p requestParams, body *exchangeRequest[exchange.DataAssetProperties]) (string, error) {
			return d.CreateDataAsset(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, body.Properties)
		})
}

func handleCreateDataAssetFromTemplate(d *exchange.DataAssetExchangeHandler, log logger.Logger) http.HandlerFunc {
	return creation[exchangeRequest[exchange.TemplateProperties]](log, dataAssetAudit("create-from-template"),
		func(r *http.Request, p requestParams, body *exchangeRequest[exchange.TemplateProperties]) (string, error) {
			return d.CreateDataAssetFromTemplate(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, mux.Vars(r)["templateGUID"], body.Properties)
		})
}

func handleListDataAssets(d *exchange.DataAssetExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		q := r.URL.Query()
		var (
			result []exchange.DataAssetElement
			err    error
		)
		switch {
		case q.Get("searchString") != "":
			result, err = d.FindDataAssets(r.Context(), p.userID, q.Get("searchString"), p.query)
		case q.Get("name") != "":
			result, err = d.GetDataAssetsByName(r.Context(), p.userID, q.Get("name"), p.query)
		default:
			result, err = d.GetDataAssetsForAssetManager(r.Context(), p.userID, p.query)
		}
		return list(result), err
	})
}

func handleGetDataAsset(d *exchange.DataAssetExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		return d.GetDataAssetByGUID(r.Context(), p.userID, mux.Vars(r)["guid"], p.query)
	})
}

func handleUpdateDataAsset(d *exchange.DataAssetExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[exchangeRequest[exchange.DataAssetProperties]](log, dataAssetAudit("update"), "guid",
		func(r *http.Request, p requestParams, guid string, body *exchangeRequest[exchange.DataAssetProperties]) error {
			return d.UpdateDataAsset(r.Context(), p.userID, body.Correlation, guid, body.Properties, p.isMergeUpdate)
		})
}

func handleRemoveDataAsset(d *exchange.DataAssetExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, dataAssetAudit("remove"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return d.RemoveDataAsset(r.Context(), p.userID, body.Correlation, guid)
		})
}

func handlePublishDataAsset(d *exchange.DataAssetExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, dataAssetAudit("publish"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return d.PublishDataAsset(r.Context(), p.userID, body.Correlation, guid)
		})
}

func handleWithdrawDataAsset(d *exchange.DataAssetExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, dataAssetAudit("withdraw"), "guid",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return d.WithdrawDataAsset(r.Context(), p.userID, body.Correlation, guid)
		})
}

func handleGetRelatedDataAssets(d *exchange.DataAssetExchangeHandler, log logger.Logger) http.HandlerFunc {
	return retrieval(log, func(r *http.Request, p requestParams) (any, error) {
		result, err := d.GetRelatedDataAssets(r.Context(), p.userID, mux.Vars(r)["guid"], r.URL.Query().Get("typeName"), p.query)
		return list(result), err
	})
}

func handleSetupRelatedDataAsset(d *exchange.DataAssetExchangeHandler, log logger.Logger) http.HandlerFunc {
	return creation[exchangeRequest[exchange.RelationshipProperties]](log, dataAssetAudit("setup-relationship"),
		func(r *http.Request, p requestParams, body *exchangeRequest[exchange.RelationshipProperties]) (string, error) {
			vars := mux.Vars(r)
			return d.SetupRelatedDataAsset(r.Context(), p.userID, body.Correlation, p.assetManagerIsHome, vars["typeName"], vars["guid"], vars["otherGUID"], body.Properties)
		})
}

func handleUpdateDataAssetRelationship(d *exchange.DataAssetExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[exchangeRequest[exchange.RelationshipProperties]](log, dataAssetAudit("update-relationship"), "relationshipGUID",
		func(r *http.Request, p requestParams, guid string, body *exchangeRequest[exchange.RelationshipProperties]) error {
			return d.UpdateDataAssetRelationship(r.Context(), p.userID, body.Correlation, guid, body.Properties, p.isMergeUpdate)
		})
}

func handleClearDataAssetRelationship(d *exchange.DataAssetExchangeHandler, log logger.Logger) http.HandlerFunc {
	return mutation[correlationRequest](log, dataAssetAudit("clear-relationship"), "relationshipGUID",
		func(r *http.Request, p requestParams, guid string, body *correlationRequest) error {
			return d.ClearDataAssetRelationship(r.Context(), p.userID, body.Correlation, guid)
		})
}
