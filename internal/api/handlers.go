// Package api exposes HTTP handlers for the recap service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"example.com/recap/internal/config"
	"example.com/recap/internal/pipeline"
)

// Handler coordinates HTTP requests with the processing pipeline.
type Handler struct {
	processor       *pipeline.Processor
	maxArchiveBytes int64
	extractTimeout  time.Duration
	defaultYear     int
}

// NewHandler builds a Handler.
func NewHandler(processor *pipeline.Processor, cfg config.Config) *Handler {
	return &Handler{
		processor:       processor,
		maxArchiveBytes: cfg.MaxArchiveBytes,
		extractTimeout:  cfg.ExtractTimeout,
		defaultYear:     cfg.RecapYear,
	}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/recaps", h.recaps)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) recaps(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createRecap(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

// createRecap accepts a multipart upload with the export archive in the
// "export" field and an optional "year" field, and responds with the full
// recap report.
func (h *Handler) createRecap(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxArchiveBytes)

	file, header, err := r.FormFile("export")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing export file")
		return
	}
	defer file.Close()

	year := h.defaultYear
	if raw := r.FormValue("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "validation_failed", "year must be a non-negative integer")
			return
		}
		year = parsed
	}

	ctx := r.Context()
	if h.extractTimeout > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, h.extractTimeout)
		defer cancel()
	}

	report, err := h.processor.Process(ctx, file, header.Size, pipeline.Options{Year: year})
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrUnreadableArchive):
			writeError(w, http.StatusUnprocessableEntity, "unprocessable_export", "the uploaded file is not a readable export archive")
		case errors.Is(err, pipeline.ErrNoActivities):
			writeError(w, http.StatusUnprocessableEntity, "unprocessable_export", "the export contains no usable activities")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
