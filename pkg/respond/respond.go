package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the body of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Usage string `json:"usage,omitempty"`
}

func JSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, code int, message string) error {
	return JSON(w, code, ErrorBody{Error: message})
}

// ErrorWithUsage is Error plus the usage text of the command that was misused.
func ErrorWithUsage(w http.ResponseWriter, code int, message, usage string) error {
	return JSON(w, code, ErrorBody{Error: message, Usage: usage})
}
