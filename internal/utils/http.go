package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON body written by WriteError.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON serializes data to JSON and writes it to w with statusCode.
//
// It sets the "Content-Type" header to "application/json". If marshaling
// fails it responds with 500 Internal Server Error and returns a wrapped
// error.
//
// Example usage:
//
//	WriteJSON(w, result, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes {"error": err.Error()} with statusCode.
func WriteError(w http.ResponseWriter, err error, statusCode int) (int, error) {
	msg := http.StatusText(statusCode)
	if err != nil {
		msg = err.Error()
	}
	return WriteJSON(w, ErrorResponse{Error: msg}, statusCode)
}
