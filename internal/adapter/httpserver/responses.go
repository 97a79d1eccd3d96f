// Package httpserver contains HTTP handlers and middleware.
//
// It provides REST API endpoints for the application including
// resume analysis, domain catalog listing, and keyword management.
// The package follows clean architecture principles and provides
// a clear separation between HTTP concerns and business logic.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hirelens/resume-scorer/internal/domain"
)

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, _ *http.Request, err error, details interface{}) {
	code := http.StatusInternalServerError
	codeStr := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		code = http.StatusBadRequest
		codeStr = "INVALID_ARGUMENT"
	case errors.Is(err, domain.ErrUnknownDomain):
		code = http.StatusNotFound
		codeStr = "UNKNOWN_DOMAIN"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		code = http.StatusUnsupportedMediaType
		codeStr = "UNSUPPORTED_FILE_TYPE"
	case errors.Is(err, domain.ErrEmptyDocument):
		code = http.StatusUnprocessableEntity
		codeStr = "EMPTY_DOCUMENT"
	case errors.Is(err, domain.ErrExtractionFailure):
		code = http.StatusUnprocessableEntity
		codeStr = "EXTRACTION_FAILED"
	}
	writeJSON(w, code, errorEnvelope{Error: apiError{Code: codeStr, Message: err.Error(), Details: details}})
}
