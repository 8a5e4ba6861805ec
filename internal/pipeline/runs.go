package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/docsift/docsift/internal/report"
)

// RunStatus represents the state of a submitted analysis run.
type RunStatus string

const (
	StatusQueued     RunStatus = "queued"
	StatusProcessing RunStatus = "processing"
	StatusCompleted  RunStatus = "completed"
	StatusFailed     RunStatus = "failed"
)

// Run tracks the state of one serve-mode analysis.
type Run struct {
	mu sync.Mutex

	ID        string    `json:"run_id"`
	Status    RunStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized directly.
	request report.Request
	rep     *report.Report
	errMsg  string
}

// NewRun creates a queued run for a request.
func NewRun(req report.Request) *Run {
	now := time.Now()
	return &Run{
		ID:        newRunID(req, now),
		Status:    StatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
		request:   req,
	}
}

var runSeq atomic.Uint64

func newRunID(req report.Request, now time.Time) string {
	seed := fmt.Sprintf("%s-%d-%d-%d",
		req.Persona.Role, len(req.Documents), now.UnixNano(), runSeq.Add(1))
	h := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", h[:])[:20]
}

func (r *Run) SetStatus(status RunStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Status = status
	r.UpdatedAt = time.Now()
}

func (r *Run) SetReport(rep *report.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rep = rep
	r.Status = StatusCompleted
	r.UpdatedAt = time.Now()
}

func (r *Run) SetError(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errMsg = msg
	r.Status = StatusFailed
	r.UpdatedAt = time.Now()
}

// Request returns the run's request.
func (r *Run) Request() report.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.request
}

// RunSnapshot is a read-only, JSON-safe copy of run state.
type RunSnapshot struct {
	ID        string         `json:"run_id"`
	Status    RunStatus      `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Error     string         `json:"error,omitempty"`
	Report    *report.Report `json:"report,omitempty"`
}

// Snapshot returns a JSON-safe copy of the run state.
func (r *Run) Snapshot() RunSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RunSnapshot{
		ID:        r.ID,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Error:     r.errMsg,
		Report:    r.rep,
	}
}

// RunStore is a thread-safe in-memory run registry with TTL eviction.
type RunStore struct {
	mu   sync.Mutex
	runs map[string]*Run
	ttl  time.Duration
}

func NewRunStore(ttl time.Duration) *RunStore {
	return &RunStore{
		runs: make(map[string]*Run),
		ttl:  ttl,
	}
}

func (s *RunStore) Put(run *Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
}

func (s *RunStore) Get(id string) *Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs[id]
}

// Cleanup removes expired runs.
func (s *RunStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, run := range s.runs {
		run.mu.Lock()
		updated := run.UpdatedAt
		run.mu.Unlock()
		if now.Sub(updated) > s.ttl {
			delete(s.runs, id)
		}
	}
}
