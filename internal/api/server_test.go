package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docsift/docsift/internal/config"
	"github.com/docsift/docsift/internal/embed"
	"github.com/docsift/docsift/internal/pipeline"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.Load()
	cfg.DocsiftAPIKey = "test-key"
	cfg.InputDir = t.TempDir()

	embedder := embed.NewClient("http://localhost:0", "test-model", "")
	analyzer := pipeline.NewAnalyzer(cfg, embedder, log)
	orch := pipeline.NewOrchestrator(cfg, analyzer, log)
	// No Start: submitted runs stay queued, which is enough for handler tests.

	return NewServer(orch, embedder, log, cfg)
}

func TestHealthIsPublic(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestAnalyzeRequiresAuth(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer wrong-key")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong token, got %d", rec.Code)
	}
}

func TestAnalyzeAcceptsValidRequest(t *testing.T) {
	srv := testServer(t)

	body := `{
		"documents": [{"filename": "guide.pdf"}],
		"persona": {"role": "Travel Planner"},
		"job_to_be_done": {"task": "Plan a trip"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer test-key")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	var snap pipeline.RunSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if snap.ID == "" || snap.Status != pipeline.StatusQueued {
		t.Errorf("expected queued run with ID, got %+v", snap)
	}

	// The run is retrievable by ID.
	req = httptest.NewRequest(http.MethodGet, "/api/runs/"+snap.ID, nil)
	req.Header.Set("Authorization", "Bearer test-key")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for run lookup, got %d", rec.Code)
	}
}

func TestAnalyzeRejectsBadRequests(t *testing.T) {
	srv := testServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty documents", `{"documents":[],"persona":{"role":"r"},"job_to_be_done":{"task":"t"}}`},
		{"missing role", `{"documents":[{"filename":"a.pdf"}],"persona":{"role":""},"job_to_be_done":{"task":"t"}}`},
		{"missing task", `{"documents":[{"filename":"a.pdf"}],"persona":{"role":"r"},"job_to_be_done":{"task":""}}`},
		{"unsupported type", `{"documents":[{"filename":"a.exe"}],"persona":{"role":"r"},"job_to_be_done":{"task":"t"}}`},
		{"invalid json", `{nope`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(tc.body))
		req.Header.Set("Authorization", "Bearer test-key")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, rec.Code)
		}
	}
}

func TestRunStatusNotFound(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/runs/deadbeef", nil)
	req.Header.Set("Authorization", "Bearer test-key")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestEmbedStatsEndpoint(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/embed", nil)
	req.Header.Set("Authorization", "Bearer test-key")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if _, ok := payload["embed"]; !ok {
		t.Error("expected embed stats in payload")
	}
}
