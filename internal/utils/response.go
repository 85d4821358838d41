package utils

import (
	"encoding/json"
	"net/http"

	"tcpworld-api/internal/apperr"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes err as {"detail": ...} with the status derived from its kind.
// Internal errors are masked with a generic message so store details never
// leak to clients.
func Error(w http.ResponseWriter, err error) {
	status := apperr.StatusCode(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = "Internal server error"
	}
	JSON(w, status, ErrorBody{Detail: detail})
}
