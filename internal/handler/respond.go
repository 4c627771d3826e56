package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/recipefinder/recipefinder-go/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"message": msg}
}

// validationResponse renders field-level validation errors in the
// {message, errors:[{path,message}]} shape clients expect.
func validationResponse(verr *model.ValidationError) map[string]any {
	return map[string]any{
		"message": "Validation error",
		"errors":  verr.Fields,
	}
}

// decodeJSON decodes a capped request body into dst, writing the error
// response itself when decoding fails.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// writeValidationError renders err as a 400 when it is a ValidationError,
// reporting whether it handled the error.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, validationResponse(verr))
		return true
	}
	return false
}
