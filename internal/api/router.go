package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/puzzlebox/internal/api/handler"
	"github.com/mcoot/puzzlebox/internal/api/middleware"
	"github.com/mcoot/puzzlebox/internal/api/response"
	basemiddleware "github.com/mcoot/puzzlebox/internal/middleware"
	"github.com/mcoot/puzzlebox/internal/services/auth"
	"github.com/mcoot/puzzlebox/internal/services/cryptogram"
	"github.com/mcoot/puzzlebox/internal/services/minefield"
	"github.com/mcoot/puzzlebox/internal/services/tictactoe"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger               *slog.Logger
	AuthService          *auth.Service
	MinefieldController  minefield.ControllerInterface
	CryptogramController cryptogram.ControllerInterface
	TicTacToeController  tictactoe.ControllerInterface
	// AllowedOrigins enables CORS for browser clients when non-empty
	AllowedOrigins []string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	minefieldHandler := handler.NewMinefieldHandler(cfg.MinefieldController)
	cryptogramHandler := handler.NewCryptogramHandler(cfg.CryptogramController)
	ticTacToeHandler := handler.NewTicTacToeHandler(cfg.TicTacToeController)

	authMiddleware := middleware.Auth(cfg.AuthService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(basemiddleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Creating players and logging in need no session
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/minefields/presets", minefieldHandler.Presets).Methods(http.MethodGet)

	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	players.HandleFunc("/logout", playerHandler.Logout).Methods(http.MethodPost)

	minefields := api.PathPrefix("/minefields").Subrouter()
	minefields.Use(authMiddleware)
	minefields.HandleFunc("", minefieldHandler.Create).Methods(http.MethodPost)
	minefields.HandleFunc("/{id}", minefieldHandler.Get).Methods(http.MethodGet)
	minefields.HandleFunc("/{id}/reveal", minefieldHandler.Reveal).Methods(http.MethodPost)
	minefields.HandleFunc("/{id}/flag", minefieldHandler.Flag).Methods(http.MethodPost)

	cryptograms := api.PathPrefix("/cryptograms").Subrouter()
	cryptograms.Use(authMiddleware)
	cryptograms.HandleFunc("", cryptogramHandler.Catalog).Methods(http.MethodGet)
	cryptograms.HandleFunc("/current", cryptogramHandler.Select).Methods(http.MethodPut)
	cryptograms.HandleFunc("/{index:[0-9]+}", cryptogramHandler.Get).Methods(http.MethodGet)
	cryptograms.HandleFunc("/{index:[0-9]+}/letters", cryptogramHandler.EnterLetter).Methods(http.MethodPost)
	cryptograms.HandleFunc("/{index:[0-9]+}/hint", cryptogramHandler.Hint).Methods(http.MethodPost)
	cryptograms.HandleFunc("/{index:[0-9]+}/reset", cryptogramHandler.Reset).Methods(http.MethodPost)

	games := api.PathPrefix("/tictactoe").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("", ticTacToeHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/{id}", ticTacToeHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}/moves", ticTacToeHandler.Play).Methods(http.MethodPost)
	games.HandleFunc("/{id}/jump", ticTacToeHandler.Jump).Methods(http.MethodPost)

	if len(cfg.AllowedOrigins) > 0 {
		return basemiddleware.CORS(cfg.AllowedOrigins)(r)
	}
	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
