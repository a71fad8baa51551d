package endpoints

import (
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterAssetManagerEndpoints(srv)
	RegisterGlossaryEndpoints(srv)
	RegisterGlossaryCategoryEndpoints(srv)
	RegisterGlossaryTermEndpoints(srv)
	RegisterDataAssetEndpoints(srv)
	RegisterCommentEndpoints(srv)
}
