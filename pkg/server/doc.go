// Package server provides the HTTP server for the metadata exchange API.
//
// The Server holds the router, the database connection, the bearer token
// middleware and the exchange facades. Endpoints are registered by the
// endpoints subpackage:
//
//	exch := server.NewExchangeForDB(db, cfg, publisher, log)
//	srv := server.NewServer(db, cfg, jwt, exch, log, "0.0.0.0", "8080")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Errorx(err)
//	}
//
// Routes:
//
//   - /glossaries, /glossary-categories, /glossary-terms - glossary exchange
//   - /data-assets - data asset exchange
//   - /comments, /elements/{guid}/comments - comment exchange
//   - /asset-managers - asset manager registration and identifier lookup
//   - / and /health - unauthenticated status
package server
