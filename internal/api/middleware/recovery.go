package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/puzzlebox/internal/api/apierr"
	"github.com/mcoot/puzzlebox/internal/middleware"
)

// Recovery turns handler panics into a JSON 500 response
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, writeInternalError)
}

func writeInternalError(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
