package handler

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/mcoot/puzzlebox/internal/api/middleware"
	"github.com/mcoot/puzzlebox/internal/api/request"
	"github.com/mcoot/puzzlebox/internal/api/response"
	"github.com/mcoot/puzzlebox/internal/services/cryptogram"
)

// CryptogramHandler handles cryptogram endpoints
type CryptogramHandler struct {
	controller cryptogram.ControllerInterface
}

// NewCryptogramHandler creates a new cryptogram handler
func NewCryptogramHandler(controller cryptogram.ControllerInterface) *CryptogramHandler {
	return &CryptogramHandler{controller: controller}
}

// Catalog handles GET /api/v1/cryptograms
func (h *CryptogramHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	catalog, err := h.controller.Catalog(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CatalogFromService(catalog))
}

// Select handles PUT /api/v1/cryptograms/current
func (h *CryptogramHandler) Select(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.SelectPuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Index == nil {
		WriteError(w, NewInvalidRequestError("index is required"))
		return
	}

	puzzle, err := h.controller.SelectPuzzle(r.Context(), player.ID, *req.Index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzleFromModel(puzzle))
}

// Get handles GET /api/v1/cryptograms/{index}
func (h *CryptogramHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	index, err := pathInt(r, "index")
	if err != nil {
		WriteError(w, err)
		return
	}

	puzzle, err := h.controller.GetPuzzle(r.Context(), player.ID, index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzleFromModel(puzzle))
}

// EnterLetter handles POST /api/v1/cryptograms/{index}/letters
func (h *CryptogramHandler) EnterLetter(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	index, err := pathInt(r, "index")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.EnterLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	substituted, ok := singleRune(req.Substituted)
	if !ok || substituted == 0 {
		WriteError(w, NewInvalidRequestError("substituted must be a single letter"))
		return
	}
	entered, ok := singleRune(req.Letter)
	if !ok {
		WriteError(w, NewInvalidRequestError("letter must be a single letter or empty"))
		return
	}

	puzzle, outcome, err := h.controller.EnterLetter(r.Context(), player.ID, index, substituted, entered, req.Position)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzleAfterLetter(puzzle, outcome))
}

// Hint handles POST /api/v1/cryptograms/{index}/hint
func (h *CryptogramHandler) Hint(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	index, err := pathInt(r, "index")
	if err != nil {
		WriteError(w, err)
		return
	}

	puzzle, outcome, err := h.controller.Hint(r.Context(), player.ID, index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HintResponseFromModel(puzzle, outcome))
}

// Reset handles POST /api/v1/cryptograms/{index}/reset
func (h *CryptogramHandler) Reset(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	index, err := pathInt(r, "index")
	if err != nil {
		WriteError(w, err)
		return
	}

	puzzle, err := h.controller.ResetPuzzle(r.Context(), player.ID, index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzleFromModel(puzzle))
}

// singleRune returns the only rune of s, or 0 for the empty string
func singleRune(s string) (rune, bool) {
	if s == "" {
		return 0, true
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, false
	}
	return r, true
}
