package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/logger"

	"github.com/gorilla/mux"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps service errors onto HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Reason, Field: vErr.Field})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrSaveFailed):
		logger.FromContext(r.Context()).Error("Write rolled back", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: domain.ErrSaveFailed.Error()})
	default:
		logger.FromContext(r.Context()).Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// maxJSONBodySize caps request bodies of the JSON endpoints.
const maxJSONBodySize = 64 << 10

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", "request body is too large")
		}
		return domain.NewValidationError("body", "malformed JSON: "+err.Error())
	}
	return nil
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "invalid id")
	}
	return int32(id), nil
}

// requestScope returns the authenticated user and the {id} path variable.
func requestScope(w http.ResponseWriter, r *http.Request) (userID, id int32, ok bool) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return 0, 0, false
	}
	id, err = pathID(r)
	if err != nil {
		writeError(w, r, err)
		return 0, 0, false
	}
	return userID, id, true
}

func currentUser(w http.ResponseWriter, r *http.Request) (int32, bool) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return 0, false
	}
	return userID, true
}
