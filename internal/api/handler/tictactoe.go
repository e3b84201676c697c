package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/puzzlebox/internal/api/middleware"
	"github.com/mcoot/puzzlebox/internal/api/request"
	"github.com/mcoot/puzzlebox/internal/api/response"
	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/services/tictactoe"
)

const defaultTicTacToeWidth = 3

// TicTacToeHandler handles tic-tac-toe endpoints
type TicTacToeHandler struct {
	controller tictactoe.ControllerInterface
}

// NewTicTacToeHandler creates a new tic-tac-toe handler
func NewTicTacToeHandler(controller tictactoe.ControllerInterface) *TicTacToeHandler {
	return &TicTacToeHandler{controller: controller}
}

// Create handles POST /api/v1/tictactoe
func (h *TicTacToeHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CreateTicTacToeRequest
	if err := decodeOptional(r, &req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Width == 0 {
		req.Width = defaultTicTacToeWidth
	}

	game, err := h.controller.NewGame(r.Context(), player.ID, req.Width)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TicTacToeFromModel(game, tictactoe.Outcome{Applied: true}))
}

// Get handles GET /api/v1/tictactoe/{id}
func (h *TicTacToeHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := model.TicTacToeID(mux.Vars(r)["id"])

	game, err := h.controller.GetGame(r.Context(), id, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TicTacToeFromModel(game, tictactoe.Outcome{}))
}

// Play handles POST /api/v1/tictactoe/{id}/moves
func (h *TicTacToeHandler) Play(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := model.TicTacToeID(mux.Vars(r)["id"])

	var req request.CellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Index == nil {
		WriteError(w, NewInvalidRequestError("index is required"))
		return
	}

	game, outcome, err := h.controller.Play(r.Context(), id, player.ID, *req.Index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TicTacToeFromModel(game, outcome))
}

// Jump handles POST /api/v1/tictactoe/{id}/jump
func (h *TicTacToeHandler) Jump(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := model.TicTacToeID(mux.Vars(r)["id"])

	var req request.JumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Step == nil {
		WriteError(w, NewInvalidRequestError("step is required"))
		return
	}

	game, outcome, err := h.controller.JumpTo(r.Context(), id, player.ID, *req.Step)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TicTacToeFromModel(game, outcome))
}
