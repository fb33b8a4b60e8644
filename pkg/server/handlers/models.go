package handlers

import (
	"net/http"

	"mercator-hq/ganymede/pkg/catalog"
)

// ModelsHandler serves the benchmark model catalog.
type ModelsHandler struct {
	catalog *catalog.Catalog
}

// NewModelsHandler creates a handler serving the given catalog.
func NewModelsHandler(c *catalog.Catalog) *ModelsHandler {
	return &ModelsHandler{catalog: c}
}

// ServeHTTP implements http.Handler. Models are returned in catalog order.
func (h *ModelsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	specs := h.catalog.List()
	resp := ModelsResponse{Models: make([]ModelInfo, 0, len(specs))}
	for _, spec := range specs {
		resp.Models = append(resp.Models, ModelInfo{
			ID:       spec.ID,
			Label:    spec.Label,
			Provider: spec.Provider,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
