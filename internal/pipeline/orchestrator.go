package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/docsift/docsift/internal/config"
)

// Orchestrator manages serve-mode analysis runs: a bounded queue feeding a
// small worker pool. Each run's pipeline is strictly sequential; only
// distinct runs proceed concurrently.
type Orchestrator struct {
	runs     *RunStore
	queue    chan *Run
	analyzer *Analyzer
	log      *slog.Logger
	cfg      config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup

	// stopMu guards stopped and the queue close so Submit never sends on a
	// closed channel.
	stopMu  sync.Mutex
	stopped bool
}

func NewOrchestrator(cfg config.Config, analyzer *Analyzer, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		runs:     NewRunStore(cfg.RunTTL),
		queue:    make(chan *Run, cfg.MaxQueueSize),
		analyzer: analyzer,
		log:      log,
		cfg:      cfg,
	}
}

// Start launches worker goroutines and the registry cleanup loop.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i, n := 0, o.cfg.WorkerCount; i < n; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			for {
				select {
				case <-workerCtx.Done():
					return
				case run, ok := <-o.queue:
					if !ok {
						return
					}
					o.process(workerCtx, run)
				}
			}
		}()
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.runs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the workers. Safe to call more than once;
// submissions after Stop are rejected.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	o.stopMu.Lock()
	if !o.stopped {
		o.stopped = true
		close(o.queue)
	}
	o.stopMu.Unlock()
	o.wg.Wait()
}

// Submit queues a run for processing.
func (o *Orchestrator) Submit(run *Run) error {
	o.stopMu.Lock()
	defer o.stopMu.Unlock()
	if o.stopped {
		run.SetError("shutting_down")
		return fmt.Errorf("orchestrator is shutting down")
	}

	o.runs.Put(run)
	select {
	case o.queue <- run:
		return nil
	default:
		run.SetError("queue_full")
		return fmt.Errorf("run queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetRun returns a run by ID.
func (o *Orchestrator) GetRun(id string) *Run {
	return o.runs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

func (o *Orchestrator) process(ctx context.Context, run *Run) {
	log := o.log.With("run_id", run.ID)
	run.SetStatus(StatusProcessing)

	rep, err := o.analyzer.Run(ctx, run.Request())
	if err != nil {
		log.Error("analysis failed", "error", err)
		run.SetError(err.Error())
		return
	}
	run.SetReport(rep)
	log.Info("analysis completed",
		"extracted_sections", len(rep.ExtractedSections))
}
