package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/puzzlebox/internal/api/middleware"
	"github.com/mcoot/puzzlebox/internal/api/request"
	"github.com/mcoot/puzzlebox/internal/api/response"
	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/services/minefield"
)

// MinefieldHandler handles minefield endpoints
type MinefieldHandler struct {
	controller minefield.ControllerInterface
}

// NewMinefieldHandler creates a new minefield handler
func NewMinefieldHandler(controller minefield.ControllerInterface) *MinefieldHandler {
	return &MinefieldHandler{controller: controller}
}

// Presets handles GET /api/v1/minefields/presets
func (h *MinefieldHandler) Presets(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.PresetsFromModel(minefield.Presets()))
}

// Create handles POST /api/v1/minefields
func (h *MinefieldHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CreateMinefieldRequest
	if err := decodeOptional(r, &req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var (
		field *model.Minefield
		err   error
	)
	switch {
	case req.Preset != "":
		field, err = h.controller.NewPresetGame(r.Context(), player.ID, req.Preset)
	case req.Width == 0 && req.Height == 0:
		field, err = h.controller.NewPresetGame(r.Context(), player.ID, minefield.PresetDefault)
	default:
		field, err = h.controller.NewGame(r.Context(), player.ID, req.Width, req.Height, req.Mines)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MinefieldFromModel(field, minefield.Outcome{Applied: true}))
}

// Get handles GET /api/v1/minefields/{id}
func (h *MinefieldHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := model.MinefieldID(mux.Vars(r)["id"])

	field, err := h.controller.GetGame(r.Context(), id, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MinefieldFromModel(field, minefield.Outcome{}))
}

// Reveal handles POST /api/v1/minefields/{id}/reveal
func (h *MinefieldHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.controller.Reveal)
}

// Flag handles POST /api/v1/minefields/{id}/flag
func (h *MinefieldHandler) Flag(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.controller.ToggleFlag)
}

type minefieldAction func(ctx context.Context, id model.MinefieldID, playerID model.PlayerID, index int) (*model.Minefield, minefield.Outcome, error)

func (h *MinefieldHandler) act(w http.ResponseWriter, r *http.Request, action minefieldAction) {
	player := middleware.MustGetPlayer(r.Context())
	id := model.MinefieldID(mux.Vars(r)["id"])

	var req request.CellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Index == nil {
		WriteError(w, NewInvalidRequestError("index is required"))
		return
	}

	field, outcome, err := action(r.Context(), id, player.ID, *req.Index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MinefieldFromModel(field, outcome))
}
