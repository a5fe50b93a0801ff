package docrank

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavya-dabas/docrank/model"
)

func validInput() *Input {
	return &Input{
		Documents: []DocumentRef{{Filename: "paper1.pdf", Title: "Paper One"}},
		Persona:   Persona{Role: "PhD Researcher in Computational Biology"},
		Job:       Job{Task: "Prepare a comprehensive literature review"},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr string
	}{
		{"valid", func(in *Input) {}, ""},
		{"no documents", func(in *Input) { in.Documents = nil }, "non-empty"},
		{"missing filename", func(in *Input) { in.Documents[0].Filename = "" }, "filename"},
		{"missing role", func(in *Input) { in.Persona.Role = "" }, "role"},
		{"missing task", func(in *Input) { in.Job.Task = "" }, "task"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			err := in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestAnalyzeRejectsInvalidInput(t *testing.T) {
	a := New(WithLogger(quietLogger()))
	in := validInput()
	in.Persona.Role = ""

	result, err := a.Analyze(in)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestRunMissingDocumentsDegrades(t *testing.T) {
	// None of the referenced PDFs exist; the run must still produce a
	// schema-valid result with empty lists, not an error or a panic.
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := New(
		WithLogger(quietLogger()),
		WithInputDir(t.TempDir()),
		WithClock(func() time.Time { return now }),
	)

	result := a.Run(validInput())
	require.NotNil(t, result)
	require.NoError(t, ValidateResult(result))

	assert.Empty(t, result.ExtractedSections)
	assert.Empty(t, result.SubsectionAnalysis)
	assert.Equal(t, []string{"paper1.pdf"}, result.Metadata.InputDocuments)
	assert.Equal(t, "PhD Researcher in Computational Biology", result.Metadata.Persona)
	assert.Equal(t, "2025-06-01T12:00:00.000000", result.Metadata.ProcessingTimestamp)
	assert.Zero(t, result.Metadata.TotalSectionsAnalyzed)
}

func TestRunReportsProgress(t *testing.T) {
	var seen []string
	a := New(
		WithLogger(quietLogger()),
		WithInputDir(t.TempDir()),
		WithProgress(func(filename string, sections int) {
			seen = append(seen, filename)
			assert.Zero(t, sections, "missing documents report zero sections")
		}),
	)

	in := validInput()
	in.Documents = append(in.Documents, DocumentRef{Filename: "paper2.pdf"})
	_ = a.Run(in)

	assert.Equal(t, []string{"paper1.pdf", "paper2.pdf"}, seen)
}

func TestEmptyResult(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 123456000, time.UTC)
	r := EmptyResult(now)

	require.NoError(t, ValidateResult(r))
	assert.Equal(t, "2025-01-02T03:04:05.123456", r.Metadata.ProcessingTimestamp)
	assert.NotNil(t, r.ExtractedSections)
	assert.Empty(t, r.ExtractedSections)
	assert.NotNil(t, r.SubsectionAnalysis)
	assert.Empty(t, r.SubsectionAnalysis)
}

func rankedSections(n int) []model.Section {
	out := make([]model.Section, n)
	for i := range out {
		out[i] = model.Section{
			Document:  "doc.pdf",
			Title:     "Section",
			Page:      i,
			Level:     model.LevelH1,
			Relevance: 0.5,
			Rank:      i + 1,
		}
	}
	return out
}

func subsections(n int) []model.Subsection {
	out := make([]model.Subsection, n)
	for i := range out {
		out[i] = model.Subsection{
			Document:    "doc.pdf",
			RefinedText: "A refined excerpt that easily clears the length floor.",
			ParentRank:  1,
		}
	}
	return out
}

func TestBuildResultCapsOutput(t *testing.T) {
	now := time.Now()
	r := buildResult(validInput(), rankedSections(75), subsections(140), now)

	require.NoError(t, ValidateResult(r))
	assert.Len(t, r.ExtractedSections, 50)
	assert.Len(t, r.SubsectionAnalysis, 100)
	assert.Equal(t, 75, r.Metadata.TotalSectionsAnalyzed)
	assert.Equal(t, 50, r.Metadata.TopSectionsSelected)

	// The cap keeps the best-ranked sections.
	for i, sec := range r.ExtractedSections {
		assert.Equal(t, i+1, sec.ImportanceRank)
	}
}

func TestBuildResultRoundsRelevance(t *testing.T) {
	ranked := rankedSections(1)
	ranked[0].Relevance = 0.123456
	ranked[0].Level = model.LevelH2

	r := buildResult(validInput(), ranked, nil, time.Now())
	require.Len(t, r.ExtractedSections, 1)
	assert.Equal(t, 0.123, r.ExtractedSections[0].RelevanceScore)
	assert.Equal(t, "H2", r.ExtractedSections[0].HeadingLevel)
}

func TestValidateResult(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Result)
		wantErr bool
	}{
		{"valid", func(r *Result) {}, false},
		{"nil sections list", func(r *Result) { r.ExtractedSections = nil }, true},
		{"nil subsections list", func(r *Result) { r.SubsectionAnalysis = nil }, true},
		{"missing timestamp", func(r *Result) { r.Metadata.ProcessingTimestamp = "" }, true},
		{"section without document", func(r *Result) {
			r.ExtractedSections = append(r.ExtractedSections, ExtractedSection{ImportanceRank: 1})
		}, true},
		{"section without rank", func(r *Result) {
			r.ExtractedSections = append(r.ExtractedSections, ExtractedSection{Document: "d.pdf"})
		}, true},
		{"subsection without text", func(r *Result) {
			r.SubsectionAnalysis = append(r.SubsectionAnalysis, SubsectionEntry{Document: "d.pdf"})
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := EmptyResult(time.Now())
			tt.mutate(r)
			err := ValidateResult(r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	newAnalyzer := func() *Analyzer {
		return New(
			WithLogger(quietLogger()),
			WithInputDir("testdata"),
			WithClock(func() time.Time { return now }),
		)
	}

	first := newAnalyzer().Run(validInput())
	for i := 0; i < 3; i++ {
		require.Equal(t, first, newAnalyzer().Run(validInput()))
	}
}
