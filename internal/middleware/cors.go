package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows browser clients served from origins to call the API. The
// session token travels in a header or cookie, so credentials are allowed.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler
}
