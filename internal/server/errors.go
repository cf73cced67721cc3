package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KaramelBytes/pitwall-cli/internal/f1"
	"github.com/KaramelBytes/pitwall-cli/internal/sheet"
)

var (
	errBadRequest = errors.New("bad request")
	errNotFound   = errors.New("not found")
)

// apiError is the JSON error envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// classify maps an error to its envelope code and HTTP status.
func classify(err error) (string, int) {
	switch {
	case errors.Is(err, f1.ErrSchemaMismatch):
		return "schema_mismatch", http.StatusServiceUnavailable
	case errors.Is(err, f1.ErrDataUnavailable), errors.Is(err, sheet.ErrDataUnavailable):
		return "data_unavailable", http.StatusServiceUnavailable
	case errors.Is(err, f1.ErrDriverNotFound):
		return "driver_not_found", http.StatusNotFound
	case errors.Is(err, f1.ErrAmbiguousDriver):
		return "ambiguous_driver", http.StatusConflict
	case errors.Is(err, f1.ErrSameDriver):
		return "same_driver", http.StatusBadRequest
	case errors.Is(err, f1.ErrUnknownMode):
		return "unknown_mode", http.StatusBadRequest
	case errors.Is(err, errBadRequest),
		errors.Is(err, sheet.ErrUnsupportedFormat),
		errors.Is(err, sheet.ErrSheetNotFound):
		return "bad_request", http.StatusBadRequest
	case errors.Is(err, errNotFound):
		return "not_found", http.StatusNotFound
	}
	return "internal", http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	code, status := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, apiError{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
