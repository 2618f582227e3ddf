package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/phrazzld/taskboard/internal/config"
)

// allowedMethods lists every method a browser may need to preflight.
var allowedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// NewCORSMiddleware returns middleware that lets browsers on the configured
// origins call the API with any method and any header.
func NewCORSMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           cfg.MaxAge,
	})
}
