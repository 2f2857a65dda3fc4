package swaggerkit

import (
	_ "embed"
	"net/http"
)

// the OpenAPI document is maintained by hand next to the handlers it describes
//
//go:embed openapi.json
var specJSON []byte

// serveDocJSON serves the OpenAPI document for the swagger UI
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(specJSON)
	}
}
