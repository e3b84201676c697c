package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/puzzlebox/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest       = apierr.CodeInvalidRequest
	CodeInvalidConfiguration = apierr.CodeInvalidConfiguration
	CodeUnknownPreset        = apierr.CodeUnknownPreset
	CodeUnauthorized         = apierr.CodeUnauthorized
	CodeForbidden            = apierr.CodeForbidden
	CodePlayerNotFound       = apierr.CodePlayerNotFound
	CodeMinefieldNotFound    = apierr.CodeMinefieldNotFound
	CodePhraseNotFound       = apierr.CodePhraseNotFound
	CodePuzzleNotFound       = apierr.CodePuzzleNotFound
	CodeGameNotFound         = apierr.CodeGameNotFound
	CodeCatalogUnavailable   = apierr.CodeCatalogUnavailable
	CodeUsernameExists       = apierr.CodeUsernameExists
	CodeInvalidCredentials   = apierr.CodeInvalidCredentials
	CodeInternalError        = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}

// decodeOptional decodes a JSON body, treating an empty body as the zero value
func decodeOptional(r *http.Request, dest any) error {
	err := json.NewDecoder(r.Body).Decode(dest)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// pathInt reads an integer path variable
func pathInt(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, NewInvalidRequestError(name + " must be an integer")
	}
	return v, nil
}
