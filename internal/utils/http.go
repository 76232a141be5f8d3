// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSONAPI is the media type of every JSON:API document.
const ContentTypeJSONAPI = "application/vnd.api+json"

// WriteJSON serializes the given data to JSON and writes it to the HTTP
// response with the JSON:API media type and the provided status code.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, document, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSONAPI)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
