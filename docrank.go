// Package docrank ranks sections of a PDF document collection by their
// relevance to a persona and the job that persona needs to accomplish.
//
// Basic usage:
//
//	in, err := docrank.LoadInput("input.json")
//	if err != nil {
//	    // handle error
//	}
//	result := docrank.New(docrank.WithInputDir("pdfs")).Run(in)
//
// The pipeline extracts layout-aware text lines from each PDF (falling back
// to OCR for scanned documents), builds a heading outline, assembles titled
// sections, scores each section against the persona profile, ranks the
// survivors by fused importance, and refines the top sections into short
// excerpts. The lower-level extract, outline, section, persona, match,
// rank, and refine packages are also available individually.
package docrank

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bhavya-dabas/docrank/extract"
	"github.com/bhavya-dabas/docrank/match"
	"github.com/bhavya-dabas/docrank/model"
	"github.com/bhavya-dabas/docrank/outline"
	"github.com/bhavya-dabas/docrank/persona"
	"github.com/bhavya-dabas/docrank/rank"
	"github.com/bhavya-dabas/docrank/refine"
	"github.com/bhavya-dabas/docrank/section"
)

// Analyzer runs the full persona-driven analysis pipeline.
type Analyzer struct {
	inputDir  string
	threshold float64
	explain   bool
	log       *slog.Logger
	now       func() time.Time
	progress  func(filename string, sections int)

	extractConfig extract.Config
}

// New creates an analyzer with the given options applied over defaults:
// input directory ".", the default relevance threshold, slog.Default().
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		inputDir:      ".",
		threshold:     match.DefaultThreshold,
		log:           slog.Default(),
		now:           time.Now,
		extractConfig: extract.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze validates the input and runs the pipeline. Validation failure is
// returned as an error before any document is touched; every later failure
// is absorbed and the caller receives a schema-valid result, at worst with
// empty lists.
func (a *Analyzer) Analyze(in *Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	return a.Run(in), nil
}

// Run executes the pipeline for an already-validated input. It never
// panics and never returns nil: any failure past validation degrades to
// the empty-but-valid result.
func (a *Analyzer) Run(in *Input) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("analysis failed", "panic", r)
			result = EmptyResult(a.now())
		}
	}()

	a.log.Info("analyzing documents", "count", len(in.Documents), "role", in.Persona.Role)

	sections := a.extractAll(in)

	profile := persona.BuildProfile(in.Persona.Role, in.Job.Task)
	a.log.Info("persona profile built",
		"keywords", len(profile.AllKeywords()), "focus_areas", len(profile.FocusAreas))

	matcher := match.NewMatcherWithThreshold(profile, a.threshold)
	relevant := matcher.Match(sections)
	a.log.Info("matched sections", "relevant", len(relevant), "total", len(sections))

	ranker := rank.NewRanker(profile)
	ranked := ranker.Rank(relevant)
	if a.explain {
		a.logExplanations(ranker, ranked)
	}

	subsections := refine.NewRefiner().Refine(ranked)
	a.log.Info("refined subsections", "count", len(subsections))

	return buildResult(in, ranked, subsections, a.now())
}

// extractAll extracts and assembles sections from every document in the
// collection. Missing or unreadable documents are skipped with a warning.
func (a *Analyzer) extractAll(in *Input) []model.Section {
	extractor := extract.NewWithConfig(a.extractConfig)
	extractor.SetLogger(a.log)
	builder := outline.NewBuilder()
	assembler := section.NewAssembler()

	var all []model.Section
	for _, ref := range in.Documents {
		path := filepath.Join(a.inputDir, ref.Filename)
		if _, err := os.Stat(path); err != nil {
			a.log.Warn("document not found", "path", path)
			if a.progress != nil {
				a.progress(ref.Filename, 0)
			}
			continue
		}

		a.log.Info("extracting document", "file", ref.Filename)
		doc, err := extractor.Extract(path)
		if err != nil {
			a.log.Warn("extraction failed", "file", ref.Filename, "error", err)
			if a.progress != nil {
				a.progress(ref.Filename, 0)
			}
			continue
		}

		ol := builder.Build(doc.Lines, doc.Stats)
		title := ref.Title
		if title == "" {
			title = ref.Filename
		}
		secs := assembler.Assemble(ref.Filename, title, ol, doc.Pages)
		all = append(all, secs...)

		if a.progress != nil {
			a.progress(ref.Filename, len(secs))
		}
	}

	a.log.Info("extracted sections", "count", len(all))
	return all
}

// logExplanations logs the per-signal importance breakdown for each ranked
// section at Debug level.
func (a *Analyzer) logExplanations(ranker *rank.Ranker, ranked []model.Section) {
	for _, sec := range ranked {
		ex := ranker.Explain(sec)
		a.log.Debug("importance breakdown",
			"rank", sec.Rank,
			"document", sec.Document,
			"title", sec.Title,
			"relevance", ex.Relevance,
			"content_quality", ex.ContentQuality,
			"position", ex.PositionScore,
			"persona_alignment", ex.PersonaAlignment,
			"type", ex.TypeScore,
			"length", ex.LengthScore,
			"importance", ex.Importance,
			"keywords", match.SectionKeywords(sec))
	}
}
