package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/docsift/docsift/internal/extract"
	"github.com/docsift/docsift/internal/pipeline"
	"github.com/docsift/docsift/internal/report"
	"github.com/go-chi/chi/v5"
)

// handleAnalyze accepts an analysis request and queues a run. Documents
// must already exist in the configured docs directory; the handler rejects
// unsupported extensions up front, other per-document problems degrade to
// zero sections during the run.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRequestSize)

	var req report.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Documents) == 0 {
		jsonError(w, "documents is required", http.StatusBadRequest)
		return
	}
	if req.Persona.Role == "" {
		jsonError(w, "persona.role is required", http.StatusBadRequest)
		return
	}
	if req.JobToBeDone.Task == "" {
		jsonError(w, "job_to_be_done.task is required", http.StatusBadRequest)
		return
	}
	for _, doc := range req.Documents {
		if !extract.IsSupportedExtension(doc.Filename) {
			jsonError(w, fmt.Sprintf("unsupported file type: %s", doc.Filename), http.StatusBadRequest)
			return
		}
	}

	run := pipeline.NewRun(req)
	if err := s.orchestrator.Submit(run); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusAccepted, run.Snapshot())
}

// handleRunStatus returns run state and, once completed, the report.
func (s *Server) handleRunStatus(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	run := s.orchestrator.GetRun(runID)
	if run == nil {
		jsonError(w, "run not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, run.Snapshot())
}

// handleEmbedStats returns rolling embedding-call latency aggregates.
func (s *Server) handleEmbedStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"embed":       s.embedder.StatsSnapshot(),
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
