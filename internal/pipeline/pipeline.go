package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgallion1/mdindex/internal/classify"
	"github.com/dgallion1/mdindex/internal/config"
	"github.com/dgallion1/mdindex/internal/document"
	"github.com/dgallion1/mdindex/internal/generator"
	"github.com/dgallion1/mdindex/internal/scanner"
)

// Pipeline is the one-shot batch transform from a markdown source tree to
// the JSON artifact set. Each run recomputes everything: discovery, parsing,
// and artifact writes proceed sequentially with no persisted state between
// runs.
type Pipeline struct {
	cfg config.Config
	log *slog.Logger
}

func New(cfg config.Config, log *slog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// RunStats summarizes a completed run.
type RunStats struct {
	Documents    int
	Words        int
	CodeExamples int
	Artifacts    int
	Duration     time.Duration
}

// Run executes the full pipeline. Any read or parse failure aborts the run
// with the originating file in the error; artifacts flushed before the
// failure are left in place.
func (p *Pipeline) Run() (RunStats, error) {
	start := time.Now()

	sc := scanner.New(p.cfg.Extensions, p.cfg.ExcludeDirs)
	files, err := sc.Scan(p.cfg.SourceDir)
	if err != nil {
		return RunStats{}, err
	}
	p.log.Info("scan complete", "source", p.cfg.SourceDir, "files", len(files))

	opts := classify.Options{
		SummaryMaxLen: p.cfg.SummaryMaxLen,
		MaxKeywords:   p.cfg.MaxKeywords,
		ReadingWPM:    p.cfg.ReadingWPM,
	}

	stats := RunStats{}
	docs := make([]*document.Document, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file.AbsPath)
		if err != nil {
			return stats, fmt.Errorf("read %s: %w", file.AbsPath, err)
		}
		doc := Assemble(data, file.RelPath, file.Modified, opts)
		docs = append(docs, doc)
		stats.Words += doc.WordCount
		stats.CodeExamples += len(doc.CodeExamples)
	}
	stats.Documents = len(docs)
	p.log.Info("parse complete", "documents", stats.Documents, "words", stats.Words)

	gen := generator.New(p.cfg.DestDir, p.log)
	written, err := gen.Generate(docs)
	if err != nil {
		return stats, err
	}
	stats.Artifacts = written
	stats.Duration = time.Since(start)

	p.log.Info("generation complete",
		"dest", p.cfg.DestDir,
		"documents", stats.Documents,
		"artifacts", stats.Artifacts,
		"duration_ms", stats.Duration.Milliseconds(),
	)
	return stats, nil
}
