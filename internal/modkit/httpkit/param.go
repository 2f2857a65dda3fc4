package httpkit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Param returns a path parameter bound by the router
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
