// Package handler implements the generic entity, relationship and external
// identifier operations that the exchange facades delegate to. It validates
// requests against the type registry, enforces ownership of externally homed
// elements, maps store failures onto the exchange error categories and
// publishes an event for every change.
package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/errs"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/events"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

const DefaultMaxPageSize = 1000

// Home names the metadata collection a request acts for. The zero value is
// the local repository.
type Home struct {
	CollectionID   string
	CollectionName string
}

// IsLocal reports whether h is the local repository.
func (h Home) IsLocal() bool {
	return h.CollectionID == ""
}

// EntityHandler implements the generic operations on entities, their
// classifications and the relationships between them.
type EntityHandler struct {
	entities      store.EntityStore
	relationships store.RelationshipStore
	externalIDs   store.ExternalIDStore

	types       *TypeRegistry
	publisher   events.Publisher
	log         logger.Logger
	maxPageSize int
	now         func() time.Time
	newGUID     func() string
}

// Option configures an EntityHandler or ExternalIdentifierHandler.
type Option func(*options)

type options struct {
	types       *TypeRegistry
	publisher   events.Publisher
	log         logger.Logger
	maxPageSize int
	now         func() time.Time
	newGUID     func() string
}

func WithTypes(types *TypeRegistry) Option {
	return func(o *options) { o.types = types }
}

func WithPublisher(publisher events.Publisher) Option {
	return func(o *options) { o.publisher = publisher }
}

func WithLogger(log logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithMaxPageSize sets the largest page a query may request. Zero keeps the default.
func WithMaxPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPageSize = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithGUIDGenerator(newGUID func() string) Option {
	return func(o *options) { o.newGUID = newGUID }
}

func buildOptions(opts []Option) options {
	o := options{
		types:       DefaultTypes(),
		publisher:   events.Discard,
		log:         logger.Nop(),
		maxPageSize: DefaultMaxPageSize,
		now:         func() time.Time { return time.Now().UTC() },
		newGUID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewEntityHandler creates an EntityHandler. externalIDs may be nil, in which
// case removing an element leaves its external identifiers in place.
func NewEntityHandler(
	entities store.EntityStore,
	relationships store.RelationshipStore,
	externalIDs store.ExternalIDStore,
	opts ...Option,
) *EntityHandler {
	o := buildOptions(opts)
	return &EntityHandler{
		entities:      entities,
		relationships: relationships,
		externalIDs:   externalIDs,
		types:         o.types,
		publisher:     o.publisher,
		log:           o.log.Named("handler"),
		maxPageSize:   o.maxPageSize,
		now:           o.now,
		newGUID:       o.newGUID,
	}
}

// Types returns the type registry the handler validates against.
func (h *EntityHandler) Types() *TypeRegistry {
	return h.types
}

// MaxPageSize returns the largest page size a query may request.
func (h *EntityHandler) MaxPageSize() int {
	return h.maxPageSize
}

// ValidatePaging checks startFrom and pageSize and returns the effective
// page size. A pageSize of zero means the maximum.
func (h *EntityHandler) ValidatePaging(startFrom, pageSize int) (int, error) {
	return validatePaging(startFrom, pageSize, h.maxPageSize)
}

func validatePaging(startFrom, pageSize, maxPageSize int) (int, error) {
	if startFrom < 0 {
		return 0, errs.InvalidParameter("startFrom", "must not be negative")
	}
	if pageSize < 0 {
		return 0, errs.InvalidParameter("pageSize", "must not be negative")
	}
	if pageSize > maxPageSize {
		return 0, errs.InvalidParameter("pageSize", "exceeds the maximum page size")
	}
	if pageSize == 0 {
		return maxPageSize, nil
	}
	return pageSize, nil
}

func validateUser(userID string) error {
	if userID == "" {
		return errs.NullParameter("userId")
	}
	return nil
}

func validateGUID(guid, name string) error {
	if guid == "" {
		return errs.NullParameter(name)
	}
	return nil
}

// checkOwner rejects changes to an element homed in a different collection.
func checkOwner(userID, guid, homeCollectionID string, caller Home) error {
	if homeCollectionID == "" || homeCollectionID == caller.CollectionID {
		return nil
	}
	return errs.UserNotAuthorized(userID, guid, "element is homed in metadata collection "+homeCollectionID)
}

func (h *EntityHandler) publish(ctx context.Context, event events.Event) {
	if event.Time.IsZero() {
		event.Time = h.now()
	}
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.log.WithContext(ctx).Warnx(err)
	}
}
