package model

// SectionType classifies how a section was produced.
type SectionType int

const (
	SectionContent SectionType = iota
	SectionHeading
	SectionTitle
)

// String returns the wire representation of the section type.
func (t SectionType) String() string {
	switch t {
	case SectionTitle:
		return "title"
	case SectionHeading:
		return "heading"
	default:
		return "content"
	}
}

// Section is a contiguous unit of extracted document content.
// It is created by the section assembler and enriched (by copy) with scores
// by the matcher and ranker; downstream stages treat it as read-only.
type Section struct {
	// Document is the source document's filename.
	Document string

	// DocumentTitle is the display title from the input config, falling
	// back to the filename.
	DocumentTitle string

	// Title is the section title (document title, heading text, or a
	// generated content-block label).
	Title string

	// Type records whether this is a title, heading-anchored, or free
	// content section.
	Type SectionType

	// Page is the 0-based page the section starts on.
	Page int

	// Text is the section body.
	Text string

	// Level is the heading level ("title" for title sections, H1-H3 for
	// heading sections, "content" otherwise).
	Level HeadingLevel

	// Relevance is the persona relevance score in [0,1], populated by the
	// semantic matcher. Sections scoring at or below the relevance
	// threshold never reach the ranker.
	Relevance float64

	// Importance is the fused importance score in [0,1], populated by the
	// importance ranker.
	Importance float64

	// Rank is the 1-based importance rank, unique across all sections of
	// all documents in a run. Zero until ranking.
	Rank int
}

// Subsection is a bounded-length excerpt refined from a top-ranked section.
// It is derived output and never feeds back into the pipeline.
type Subsection struct {
	// Document is the parent section's source document.
	Document string

	// SectionTitle is the parent section's title.
	SectionTitle string

	// RefinedText is the excerpt, at most one chunk of packed sentences.
	RefinedText string

	// Page is the parent section's page.
	Page int

	// ParentRank is the parent section's importance rank.
	ParentRank int
}
