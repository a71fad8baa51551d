package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/config"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/events"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/exchange"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/handler"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/middleware"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
	gormstore "github.com/doodlesbykumbi/metadata-exchange/pkg/server/store/gorm"
)

// Exchange bundles the facades served over HTTP and used by the loader.
type Exchange struct {
	Glossaries    *exchange.GlossaryExchangeHandler
	DataAssets    *exchange.DataAssetExchangeHandler
	Comments      *exchange.CommentExchangeHandler
	AssetManagers *exchange.AssetManagerExchangeHandler
}

// NewExchange wires the facades to the given collaborators.
func NewExchange(entities exchange.EntityHandler, externalIDs exchange.ExternalIdentifierHandler, opts ...exchange.Option) *Exchange {
	return &Exchange{
		Glossaries:    exchange.NewGlossaryExchangeHandler(entities, externalIDs, opts...),
		DataAssets:    exchange.NewDataAssetExchangeHandler(entities, externalIDs, opts...),
		Comments:      exchange.NewCommentExchangeHandler(entities, externalIDs, opts...),
		AssetManagers: exchange.NewAssetManagerExchangeHandler(entities, externalIDs, opts...),
	}
}

// NewExchangeForDB builds the GORM stores, the generic handlers and the
// facades on top of db.
func NewExchangeForDB(db *gorm.DB, cfg *config.ExchangeConfig, publisher events.Publisher, log logger.Logger) *Exchange {
	entityStore := gormstore.NewEntityStore(db)
	relationshipStore := gormstore.NewRelationshipStore(db)
	externalIDStore := gormstore.NewExternalIDStore(db)

	types := handler.DefaultTypes()
	handlerOpts := []handler.Option{
		handler.WithTypes(types),
		handler.WithPublisher(publisher),
		handler.WithLogger(log),
		handler.WithMaxPageSize(cfg.MaxPageSize),
	}

	entities := handler.NewEntityHandler(entityStore, relationshipStore, externalIDStore, handlerOpts...)
	externalIDs := handler.NewExternalIdentifierHandler(externalIDStore, entityStore, handlerOpts...)

	return NewExchange(entities, externalIDs,
		exchange.WithTypes(types),
		exchange.WithLogger(log),
		exchange.WithZones(cfg.PublishZones, cfg.DefaultZones),
	)
}

type Server struct {
	Router        *mux.Router
	DB            *gorm.DB
	Config        *config.ExchangeConfig
	JWTMiddleware *middleware.JWTAuthenticator
	HealthStore   store.HealthStore
	Exchange      *Exchange
	Log           logger.Logger
	srv           *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.ExchangeConfig,
	jwtMiddleware *middleware.JWTAuthenticator,
	exch *Exchange,
	log logger.Logger,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	var health store.HealthStore
	if db != nil {
		health = gormstore.NewHealthStore(db)
	}

	return &Server{
		Router:        router,
		DB:            db,
		Config:        cfg,
		JWTMiddleware: jwtMiddleware,
		HealthStore:   health,
		Exchange:      exch,
		Log:           log.Named("server"),
		srv:           srv,
	}
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.srv.Addr
}

func (s *Server) Start() error {
	s.Log.Infof("listening on %s", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
