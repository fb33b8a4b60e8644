package handlers

import (
	"encoding/json"
	"net/http"
)

// ModelInfo is one entry of the model listing response.
type ModelInfo struct {
	// ID is the short identifier used in benchmark requests.
	ID string `json:"id"`

	// Label is a human-readable display name.
	Label string `json:"label"`

	// Provider names the provider serving this model.
	Provider string `json:"provider"`
}

// ModelsResponse is the response body of the model listing endpoint.
type ModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// DetailResponse is the error body returned for client and server errors.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail writes an error response in the {"detail": ...} shape.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, DetailResponse{Detail: detail})
}
