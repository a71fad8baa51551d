package endpoints

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/server"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/store"
)

// StatusResponse is returned by GET / when JSON is requested.
type StatusResponse struct {
	Version    string `json:"version"`
	ServerName string `json:"serverName,omitempty"`
}

// HealthResponse represents the response from /health
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// RegisterStatusEndpoints registers the status and health endpoints
func RegisterStatusEndpoints(s *server.Server) {
	serverName := ""
	if s.Config != nil {
		serverName = s.Config.ServerName
	}

	// GET / - Status page (no auth required)
	s.Router.HandleFunc("/", handleStatus(serverName)).Methods("GET")

	// GET /health - Database connectivity (no auth required)
	s.Router.HandleFunc("/health", handleHealth(s.HealthStore)).Methods("GET")
}

func handleStatus(serverName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("EXCHANGE_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		// Check if JSON is requested via Accept header or format query param
		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "json" || strings.Contains(accept, "application/json") {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(StatusResponse{Version: version, ServerName: serverName})
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Metadata exchange server " + serverName + " is running (version " + version + ")\n"))
	}
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if healthStore == nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "error", Error: "no database configured"})
			return
		}
		if err := healthStore.CheckConnectivity(r.Context()); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "error",
				Error:  "database connectivity check failed",
			})
			return
		}
		respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
