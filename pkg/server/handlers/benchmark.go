package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"mercator-hq/ganymede/pkg/benchmark"
	"mercator-hq/ganymede/pkg/server/middleware"
)

// maxRequestBodyBytes bounds benchmark request bodies. Prompts are text, so
// 1MB is generous.
const maxRequestBodyBytes = 1 << 20

// Runner executes a benchmark request. It is implemented by
// benchmark.Orchestrator and by test fakes.
type Runner interface {
	Run(ctx context.Context, req *benchmark.Request) (*benchmark.Response, error)
}

// BenchmarkHandler serves benchmark run requests.
type BenchmarkHandler struct {
	runner Runner
}

// NewBenchmarkHandler creates a handler backed by the given runner.
func NewBenchmarkHandler(runner Runner) *BenchmarkHandler {
	return &BenchmarkHandler{runner: runner}
}

// ServeHTTP implements http.Handler.
func (h *BenchmarkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req benchmark.Request
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			writeDetail(w, http.StatusBadRequest, "request body is required")
			return
		}
		writeDetail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.runner.Run(r.Context(), &req)
	if err != nil {
		var verr *benchmark.ValidationError
		if errors.As(err, &verr) {
			writeDetail(w, http.StatusBadRequest, verr.Message)
			return
		}

		slog.ErrorContext(r.Context(), "benchmark run failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
		writeDetail(w, http.StatusInternalServerError, "benchmark run failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
