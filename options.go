package docrank

import (
	"log/slog"
	"time"

	"github.com/bhavya-dabas/docrank/extract"
)

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithInputDir sets the directory document filenames are resolved against.
// Default is the current directory.
func WithInputDir(dir string) Option {
	return func(a *Analyzer) {
		a.inputDir = dir
	}
}

// WithRelevanceThreshold overrides the score a section must exceed to
// survive matching.
func WithRelevanceThreshold(threshold float64) Option {
	return func(a *Analyzer) {
		a.threshold = threshold
	}
}

// WithLogger sets the structured logger used throughout the run.
func WithLogger(log *slog.Logger) Option {
	return func(a *Analyzer) {
		if log != nil {
			a.log = log
		}
	}
}

// WithExtractConfig overrides the extraction configuration (OCR page cap,
// confidence floor, paragraph gap ratio).
func WithExtractConfig(config extract.Config) Option {
	return func(a *Analyzer) {
		a.extractConfig = config
	}
}

// WithExplanations enables Debug-level logging of the per-signal
// importance breakdown for every ranked section.
func WithExplanations() Option {
	return func(a *Analyzer) {
		a.explain = true
	}
}

// WithProgress registers a callback invoked after each document is
// processed with the filename and the number of sections assembled.
// Documents that could not be read report zero sections.
func WithProgress(fn func(filename string, sections int)) Option {
	return func(a *Analyzer) {
		a.progress = fn
	}
}

// WithClock overrides the time source used for the processing timestamp.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		if now != nil {
			a.now = now
		}
	}
}
