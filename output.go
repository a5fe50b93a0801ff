package docrank

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/bhavya-dabas/docrank/model"
)

// Output bounds.
const (
	maxExtractedSections  = 50
	maxSubsectionAnalysis = 100
)

// Result is the analysis output: run metadata, the top-ranked sections, and
// the refined subsections.
type Result struct {
	Metadata           Metadata           `json:"metadata"`
	ExtractedSections  []ExtractedSection `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionEntry  `json:"subsection_analysis"`
}

// Metadata records what was analyzed and when.
type Metadata struct {
	InputDocuments        []string `json:"input_documents"`
	Persona               string   `json:"persona"`
	JobToBeDone           string   `json:"job_to_be_done"`
	ProcessingTimestamp   string   `json:"processing_timestamp"`
	TotalSectionsAnalyzed int      `json:"total_sections_analyzed"`
	TopSectionsSelected   int      `json:"top_sections_selected"`
}

// ExtractedSection is one ranked section in the output.
type ExtractedSection struct {
	Document       string  `json:"document"`
	SectionTitle   string  `json:"section_title"`
	ImportanceRank int     `json:"importance_rank"`
	PageNumber     int     `json:"page_number"`
	HeadingLevel   string  `json:"heading_level"`
	RelevanceScore float64 `json:"relevance_score"`
}

// SubsectionEntry is one refined excerpt in the output.
type SubsectionEntry struct {
	Document             string `json:"document"`
	SectionTitle         string `json:"section_title"`
	RefinedText          string `json:"refined_text"`
	PageNumber           int    `json:"page_number"`
	ParentImportanceRank int    `json:"parent_importance_rank"`
}

// timestamp formats the run time as an ISO-8601 UTC string.
func timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000")
}

// EmptyResult is the schema-valid fallback returned when a run fails
// beyond recovery: empty lists and a populated timestamp, never a crash.
func EmptyResult(now time.Time) *Result {
	return &Result{
		Metadata: Metadata{
			InputDocuments:      []string{},
			ProcessingTimestamp: timestamp(now),
		},
		ExtractedSections:  []ExtractedSection{},
		SubsectionAnalysis: []SubsectionEntry{},
	}
}

// buildResult assembles the bounded output from the full ranked section
// list and the refiner's subsections.
func buildResult(in *Input, ranked []model.Section, subsections []model.Subsection, now time.Time) *Result {
	names := make([]string, len(in.Documents))
	for i, doc := range in.Documents {
		names[i] = doc.Filename
	}

	topSections := len(ranked)
	if topSections > maxExtractedSections {
		topSections = maxExtractedSections
	}

	extracted := make([]ExtractedSection, 0, topSections)
	for _, sec := range ranked[:topSections] {
		extracted = append(extracted, ExtractedSection{
			Document:       sec.Document,
			SectionTitle:   sec.Title,
			ImportanceRank: sec.Rank,
			PageNumber:     sec.Page,
			HeadingLevel:   sec.Level.String(),
			RelevanceScore: round3(sec.Relevance),
		})
	}

	if len(subsections) > maxSubsectionAnalysis {
		subsections = subsections[:maxSubsectionAnalysis]
	}
	analysis := make([]SubsectionEntry, 0, len(subsections))
	for _, sub := range subsections {
		analysis = append(analysis, SubsectionEntry{
			Document:             sub.Document,
			SectionTitle:         sub.SectionTitle,
			RefinedText:          sub.RefinedText,
			PageNumber:           sub.Page,
			ParentImportanceRank: sub.ParentRank,
		})
	}

	return &Result{
		Metadata: Metadata{
			InputDocuments:        names,
			Persona:               in.Persona.Role,
			JobToBeDone:           in.Job.Task,
			ProcessingTimestamp:   timestamp(now),
			TotalSectionsAnalyzed: len(ranked),
			TopSectionsSelected:   topSections,
		},
		ExtractedSections:  extracted,
		SubsectionAnalysis: analysis,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// ValidateResult checks a result for the required output fields. Rank and
// page numbers may legitimately be zero, so only presence of the string
// fields is enforced.
func ValidateResult(r *Result) error {
	if r == nil {
		return fmt.Errorf("result is nil")
	}
	if r.Metadata.ProcessingTimestamp == "" {
		return fmt.Errorf("missing metadata field: processing_timestamp")
	}
	if r.Metadata.InputDocuments == nil {
		return fmt.Errorf("missing metadata field: input_documents")
	}
	if r.ExtractedSections == nil {
		return fmt.Errorf("extracted_sections must be a list")
	}
	if r.SubsectionAnalysis == nil {
		return fmt.Errorf("subsection_analysis must be a list")
	}
	for i, sec := range r.ExtractedSections {
		if sec.Document == "" {
			return fmt.Errorf("section %d missing document", i)
		}
		if sec.ImportanceRank <= 0 {
			return fmt.Errorf("section %d missing importance_rank", i)
		}
	}
	for i, sub := range r.SubsectionAnalysis {
		if sub.Document == "" {
			return fmt.Errorf("subsection %d missing document", i)
		}
		if sub.RefinedText == "" {
			return fmt.Errorf("subsection %d missing refined_text", i)
		}
	}
	return nil
}

// WriteResult writes the result as indented JSON to path.
func WriteResult(r *Result, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
