package endpoints

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/code19m/errx"
	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/audit"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/identity"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
)

// maxBodySize caps request bodies.
const maxBodySize = 1 << 20

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func statusForType(t errx.Type) int {
	switch t {
	case errx.T_Authentication:
		return http.StatusUnauthorized
	case errx.T_Forbidden:
		return http.StatusForbidden
	case errx.T_NotFound:
		return http.StatusNotFound
	case errx.T_Validation:
		return http.StatusBadRequest
	case errx.T_Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondWithErr writes err as a JSON error. Property server failures are
// logged and their cause is not returned to the caller.
func respondWithErr(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	e := errx.AsErrorX(err)
	status := statusForType(e.Type())

	body := errorBody{Code: e.Code(), Message: e.Error(), Fields: e.Fields()}
	if status == http.StatusInternalServerError {
		log.WithContext(r.Context()).Errorx(err)
		body.Message = "the metadata repository could not complete the request"
	}
	respondWithError(w, status, body)
}

// exchangeRequest is the body of every mutating request.
type exchangeRequest[T any] struct {
	Correlation *exchange.MetadataCorrelationProperties `json:"correlation,omitempty"`
	Properties  *T                                      `json:"properties,omitempty"`
}

func (b *exchangeRequest[T]) withCorrelation(p requestParams) *exchange.MetadataCorrelationProperties {
	b.Correlation = p.correlation(b.Correlation)
	return b.Correlation
}

// correlationRequest is the body of requests that carry no properties.
type correlationRequest struct {
	Correlation *exchange.MetadataCorrelationProperties `json:"correlation,omitempty"`
}

func (b *correlationRequest) withCorrelation(p requestParams) *exchange.MetadataCorrelationProperties {
	b.Correlation = p.correlation(b.Correlation)
	return b.Correlation
}

// correlated is a request body whose correlation can be completed from the
// query parameters.
type correlated[B any] interface {
	*B
	withCorrelation(p requestParams) *exchange.MetadataCorrelationProperties
}

// decodeBody reads a JSON body into v. An empty body leaves v unchanged.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errs.InvalidParameter("body", "body too large")
	}
	if err != nil {
		return errs.InvalidParameter("body", err.Error())
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errs.InvalidParameter("body", err.Error())
	}
	return nil
}

// requestParams are the query parameters shared by the exchange routes.
type requestParams struct {
	userID             string
	assetManagerIsHome bool
	isMergeUpdate      bool
	query              exchange.QueryOptions
}

func boolParam(q url.Values, name string, def bool) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errs.InvalidParameter(name, "not a boolean")
	}
	return b, nil
}

func intParam(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, errs.InvalidParameter(name, "not an integer")
	}
	return i, nil
}

func readParams(r *http.Request) (requestParams, error) {
	q := r.URL.Query()
	p := requestParams{userID: identity.UserID(r.Context())}

	var err error
	if p.assetManagerIsHome, err = boolParam(q, "assetManagerIsHome", true); err != nil {
		return p, err
	}
	if p.isMergeUpdate, err = boolParam(q, "isMergeUpdate", true); err != nil {
		return p, err
	}
	if p.query.StartFrom, err = intParam(q, "startFrom"); err != nil {
		return p, err
	}
	if p.query.PageSize, err = intParam(q, "pageSize"); err != nil {
		return p, err
	}
	if v := q.Get("effectiveTime"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return p, errs.InvalidParameter("effectiveTime", "not an RFC3339 time")
		}
		p.query.EffectiveTime = t
	}

	p.query.AssetManagerGUID = q.Get("assetManagerGUID")
	p.query.AssetManagerName = q.Get("assetManagerName")
	if p.query.AssetManagerGUID == "" {
		if id, ok := identity.Get(r.Context()); ok {
			p.query.AssetManagerGUID = id.AssetManagerGUID
		}
	}
	return p, nil
}

// correlation fills in the asset manager from the query when the body
// does not name one.
func (p requestParams) correlation(c *exchange.MetadataCorrelationProperties) *exchange.MetadataCorrelationProperties {
	if c == nil {
		if p.query.AssetManagerGUID == "" {
			return nil
		}
		c = &exchange.MetadataCorrelationProperties{}
	}
	if c.AssetManagerGUID == "" {
		c.AssetManagerGUID = p.query.AssetManagerGUID
		c.AssetManagerName = p.query.AssetManagerName
	}
	return c
}

// auditor records the outcome of mutating requests.
type auditor struct {
	operation string
	typeName  string
}

func (a auditor) record(r *http.Request, c *exchange.MetadataCorrelationProperties, guid string, err error) {
	event := audit.ExchangeEvent{
		UserID:    identity.UserID(r.Context()),
		Operation: a.operation,
		TypeName:  a.typeName,
		GUID:      guid,
		Success:   err == nil,
	}
	if id, ok := identity.Get(r.Context()); ok && id.RemoteIP != nil {
		event.ClientIP = id.RemoteIP.String()
	}
	if c != nil {
		event.AssetManagerGUID = c.AssetManagerGUID
		event.ExternalIdentifier = c.ExternalIdentifier
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)
}

// mutation adapts an exchange call that returns no GUID to a handler. The
// body is decoded into a fresh B; guid names the element the call concerns.
func mutation[B any, PB correlated[B]](
	log logger.Logger,
	a auditor,
	guidVar string,
	call func(r *http.Request, p requestParams, guid string, body *B) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guid := mux.Vars(r)[guidVar]

		p, err := readParams(r)
		if err != nil {
			respondWithErr(w, r, log, err)
			return
		}

		body := new(B)
		if err := decodeBody(w, r, body); err != nil {
			respondWithErr(w, r, log, err)
			return
		}

		c := PB(body).withCorrelation(p)
		err = call(r, p, guid, body)
		a.record(r, c, guid, err)
		if err != nil {
			respondWithErr(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// creation adapts an exchange call that returns the GUID of a new element
// or relationship.
func creation[B any, PB correlated[B]](
	log logger.Logger,
	a auditor,
	call func(r *http.Request, p requestParams, body *B) (string, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := readParams(r)
		if err != nil {
			respondWithErr(w, r, log, err)
			return
		}

		body := new(B)
		if err := decodeBody(w, r, body); err != nil {
			respondWithErr(w, r, log, err)
			return
		}

		c := PB(body).withCorrelation(p)
		guid, err := call(r, p, body)
		a.record(r, c, guid, err)
		if err != nil {
			respondWithErr(w, r, log, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, map[string]string{"guid": guid})
	}
}

// retrieval adapts a read-only exchange call.
func retrieval(log logger.Logger, call func(r *http.Request, p requestParams) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := readParams(r)
		if err != nil {
			respondWithErr(w, r, log, err)
			return
		}

		result, err := call(r, p)
		if err != nil {
			respondWithErr(w, r, log, err)
			return
		}
		respondWithJSON(w, http.StatusOK, result)
	}
}

// list keeps empty results as JSON arrays.
func list[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
