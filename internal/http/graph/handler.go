package graph

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/graph"
)

const searchLimit = 40

type Handler struct {
	graphSvc     *graph.Service
	defaultLimit int
}

func NewHandler(graphSvc *graph.Service, defaultLimit int) *Handler {
	return &Handler{
		graphSvc:     graphSvc,
		defaultLimit: defaultLimit,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.getGraph)
	r.Get("/search", h.searchEntities)
}

func (h *Handler) getGraph(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}

		limit = n
	}

	view, err := h.graphSvc.Graph(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, toGraphResponse(view))
}

func (h *Handler) searchEntities(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, []entityResponse{})
		return
	}

	entities, err := h.graphSvc.Search(r.Context(), q, searchLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, toEntityResponses(entities))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
