package model

// HeadingLevel denotes the structural depth of a section or outline entry.
// At most three heading levels (H1-H3) exist per document; they are assigned
// by relative font size rank, so a larger font never maps to a weaker level
// than a smaller one.
type HeadingLevel int

const (
	LevelUnknown HeadingLevel = iota
	LevelTitle
	LevelH1
	LevelH2
	LevelH3
	LevelContent
)

// String returns the wire representation of the level ("title", "H1", ...).
func (l HeadingLevel) String() string {
	switch l {
	case LevelTitle:
		return "title"
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	case LevelContent:
		return "content"
	default:
		return "unknown"
	}
}

// HeadingLevelForRank maps a font size rank (0 = largest distinct heading
// font) to a level. Ranks beyond the top three get no level.
func HeadingLevelForRank(rank int) (HeadingLevel, bool) {
	switch rank {
	case 0:
		return LevelH1, true
	case 1:
		return LevelH2, true
	case 2:
		return LevelH3, true
	default:
		return LevelUnknown, false
	}
}

// Heading is a line classified as a heading candidate, before hierarchy
// assignment. It is an intermediate value and is not persisted.
type Heading struct {
	Text     string
	Page     int
	FontSize float64

	// YPos is the vertical position of the heading's baseline on its page.
	YPos float64
}

// OutlineEntry is one entry of a document outline: a heading with its
// assigned level and page.
type OutlineEntry struct {
	Level HeadingLevel
	Text  string
	Page  int
}

// Outline is the recovered structural skeleton of a document: a best-effort
// title plus the ordered heading entries.
type Outline struct {
	// Title is the detected document title, empty when none qualified.
	Title string

	// Entries are the outline headings ordered by page, preserving
	// top-of-page-first order within each page.
	Entries []OutlineEntry
}
