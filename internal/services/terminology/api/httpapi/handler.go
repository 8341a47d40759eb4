// Package httpapi exposes the terminology function over HTTP JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/oakleafmed/medterm/internal/platform/timeouts"
	"github.com/oakleafmed/medterm/internal/services/terminology/domain"
	"github.com/oakleafmed/medterm/internal/services/terminology/generator"
	"github.com/oakleafmed/medterm/internal/services/terminology/storage"
)

// FunctionPath is the route for the medical-terminology function.
const FunctionPath = "/functions/v1/medical-terminology"

// HealthPath is the liveness route.
const HealthPath = "/healthz"

// Handler serves terminology function requests.
type Handler struct {
	generator generator.Generator
	usage     storage.UsageStore
	model     string
	clock     func() time.Time
	tracer    trace.Tracer
}

// New builds a terminology HTTP handler. The usage store may be nil, in which
// case usage recording is skipped.
func New(gen generator.Generator, usage storage.UsageStore, model string) *Handler {
	return &Handler{
		generator: gen,
		usage:     usage,
		model:     model,
		clock:     time.Now,
		tracer:    otel.Tracer("github.com/oakleafmed/medterm/internal/services/terminology"),
	}
}

// Register mounts the function and health routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc(FunctionPath, h.handleExplain)
	mux.HandleFunc(HealthPath, h.handleHealth)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleExplain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var request struct {
		Term string `json:"term"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	term, err := domain.NormalizeTerm(request.Term)
	if err != nil {
		h.recordUsage(r, request.Term, storage.OutcomeRejected, 0)
		switch {
		case errors.Is(err, domain.ErrEmptyTerm):
			writeError(w, http.StatusBadRequest, "term is required")
		case errors.Is(err, domain.ErrTermTooLong):
			writeError(w, http.StatusBadRequest, "term is too long")
		default:
			writeError(w, http.StatusBadRequest, "invalid term")
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Generate)
	defer cancel()
	ctx, span := h.tracer.Start(ctx, "terminology.generate",
		trace.WithAttributes(attribute.String("terminology.model", h.model)))
	start := h.clock()
	explanation, err := h.generator.Generate(ctx, term)
	latency := h.clock().Sub(start)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		span.End()
		log.Printf("generate explanation for %q: %v", term, err)
		h.recordUsage(r, term, storage.OutcomeFailed, latency)
		writeError(w, http.StatusBadGateway, "explanation unavailable")
		return
	}
	span.End()

	h.recordUsage(r, term, storage.OutcomeGenerated, latency)
	writeJSON(w, http.StatusOK, map[string]string{"explanation": explanation})
}

// recordUsage appends a usage event. Failures are logged, never surfaced;
// usage accounting must not break the function contract.
func (h *Handler) recordUsage(r *http.Request, term string, outcome storage.UsageOutcome, latency time.Duration) {
	term = strings.TrimSpace(term)
	if h.usage == nil || term == "" {
		return
	}
	err := h.usage.AppendUsageEvent(r.Context(), storage.UsageEventRecord{
		Term:          term,
		Outcome:       outcome,
		Model:         h.model,
		LatencyMillis: latency.Milliseconds(),
		CreatedAt:     h.clock().UTC(),
	})
	if err != nil {
		log.Printf("append usage event: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	_ = encoder.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
