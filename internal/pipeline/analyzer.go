package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/docsift/docsift/internal/config"
	"github.com/docsift/docsift/internal/excerpt"
	"github.com/docsift/docsift/internal/extract"
	"github.com/docsift/docsift/internal/rank"
	"github.com/docsift/docsift/internal/report"
	"github.com/docsift/docsift/internal/section"
)

// Analyzer runs the full pipeline for one request: segment each document,
// pool the sections, score them against the persona/task query, select a
// diverse top-K, and refine excerpts into the report.
type Analyzer struct {
	cfg      config.Config
	embedder rank.Embedder
	log      *slog.Logger
}

func NewAnalyzer(cfg config.Config, embedder rank.Embedder, log *slog.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, embedder: embedder, log: log}
}

// Run executes one analysis. Per-document extraction failures are logged
// and degrade to zero sections for that document; an embedding failure is
// fatal for the run.
func (a *Analyzer) Run(ctx context.Context, req report.Request) (*report.Report, error) {
	start := time.Now()

	pooled := a.segmentAll(req)
	a.log.Info("segmented documents", "documents", len(req.Documents), "sections", len(pooled))

	query := rank.BuildQuery(req.Persona.Role, req.JobToBeDone.Task, a.cfg.DomainHints)
	scorer := rank.NewScorer(a.embedder, a.cfg.BoostKeywords, a.cfg.BoostIncrement)
	if err := scorer.Score(ctx, pooled, query); err != nil {
		return nil, fmt.Errorf("score sections: %w", err)
	}

	rank.SortByRelevance(pooled)
	selected := rank.SelectDiverse(pooled, a.cfg.MaxSections, a.cfg.PerDocCap)
	a.log.Info("selected sections", "selected", len(selected), "pooled", len(pooled))

	rep := a.assemble(req, selected)

	elapsed := time.Since(start)
	if elapsed > a.cfg.TimeBudget {
		a.log.Warn("processing exceeded time budget",
			"elapsed", elapsed.Round(time.Millisecond),
			"budget", a.cfg.TimeBudget)
	} else {
		a.log.Info("processing complete", "elapsed", elapsed.Round(time.Millisecond))
	}

	return rep, nil
}

// segmentAll extracts and segments every requested document, isolating
// per-document failures.
func (a *Analyzer) segmentAll(req report.Request) []section.Section {
	var pooled []section.Section
	for _, doc := range req.Documents {
		path := filepath.Join(DocsDir(a.cfg.InputDir), doc.Filename)

		src, err := extract.ForFile(doc.Filename)
		if err != nil {
			a.log.Error("skipping document", "document", doc.Filename, "error", err)
			continue
		}
		pages, err := src.Extract(path)
		if err != nil {
			a.log.Error("document extraction failed", "document", doc.Filename, "error", err)
			continue
		}

		sections := section.Segment(pages, doc.Filename)
		if len(sections) == 0 {
			a.log.Warn("document yielded no sections", "document", doc.Filename)
		}
		pooled = append(pooled, sections...)
	}
	return pooled
}

func (a *Analyzer) assemble(req report.Request, selected []section.Section) *report.Report {
	rep := &report.Report{
		Metadata: report.Metadata{
			InputDocuments:      documentNames(req),
			Persona:             req.Persona.Role,
			JobToBeDone:         req.JobToBeDone.Task,
			ProcessingTimestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
			ChallengeInfo:       req.ChallengeInfo,
		},
		ExtractedSections:  make([]report.ExtractedSection, 0, len(selected)),
		SubsectionAnalysis: make([]report.SubsectionAnalysis, 0, len(selected)),
	}

	for i, s := range selected {
		rep.ExtractedSections = append(rep.ExtractedSections, report.ExtractedSection{
			Document:       s.Document,
			SectionTitle:   s.Heading,
			ImportanceRank: i + 1,
			PageNumber:     s.PageIndex + 1,
		})
		rep.SubsectionAnalysis = append(rep.SubsectionAnalysis, report.SubsectionAnalysis{
			Document:    s.Document,
			RefinedText: excerpt.Refine(s.Body),
			PageNumber:  s.PageIndex + 1,
		})
	}

	return rep
}

func documentNames(req report.Request) []string {
	names := make([]string, 0, len(req.Documents))
	for _, d := range req.Documents {
		names = append(names, d.Filename)
	}
	return names
}
