// Package section assembles titled, heading-anchored, and free-content
// sections from a document's outline and per-page text.
package section

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/bhavya-dabas/docrank/internal/textutil"
	"github.com/bhavya-dabas/docrank/model"
)

// Config holds the assembly thresholds.
type Config struct {
	// MinHeadingBody is the joined body length below which a heading
	// section is topped up from the following page. Default: 200.
	MinHeadingBody int

	// NextPageLines is how many leading lines of the following page are
	// used for the top-up. Default: 10.
	NextPageLines int

	// MinParagraph is the minimum character count for a free-content
	// paragraph to become a section. Default: 100.
	MinParagraph int
}

// DefaultConfig returns the default assembly configuration.
func DefaultConfig() Config {
	return Config{
		MinHeadingBody: 200,
		NextPageLines:  10,
		MinParagraph:   100,
	}
}

// Assembler turns outlines and page text into sections.
type Assembler struct {
	config Config
}

// NewAssembler creates an assembler with default configuration.
func NewAssembler() *Assembler {
	return &Assembler{config: DefaultConfig()}
}

// NewAssemblerWithConfig creates an assembler with custom configuration.
func NewAssemblerWithConfig(config Config) *Assembler {
	return &Assembler{config: config}
}

// Assemble produces, in order: a title section when a title was detected,
// one section per outline entry with its heading-anchored body, and one
// content section per substantial free paragraph.
func (a *Assembler) Assemble(document, documentTitle string, ol model.Outline, pages map[int]string) []model.Section {
	var sections []model.Section

	if ol.Title != "" {
		sections = append(sections, model.Section{
			Document:      document,
			DocumentTitle: documentTitle,
			Title:         ol.Title,
			Type:          model.SectionTitle,
			Page:          0,
			Text:          ol.Title,
			Level:         model.LevelTitle,
		})
	}

	for _, entry := range ol.Entries {
		sections = append(sections, model.Section{
			Document:      document,
			DocumentTitle: documentTitle,
			Title:         entry.Text,
			Type:          model.SectionHeading,
			Page:          entry.Page,
			Text:          a.headingBody(pages, entry.Page, entry.Text),
			Level:         entry.Level,
		})
	}

	sections = append(sections, a.contentSections(document, documentTitle, pages)...)
	return sections
}

var (
	allCapsHeaderRe = regexp.MustCompile(`^[A-Z\s]{10,}$`)
	numberedLineRe  = regexp.MustCompile(`^\d+\.`)
	headingParaRe   = regexp.MustCompile(`^\d+\.?\s*[A-Z]`)
	paragraphSplit  = regexp.MustCompile(`\n\s*\n`)
)

// headingBody gathers the text that follows a heading on its page: lines
// are skipped until the heading text appears as a case-insensitive
// substring, then collected until an all-caps header or a numbered line is
// seen after at least three lines. Short results are topped up with the
// first lines of the following page.
//
// Matching the heading by substring is a known source of false positives
// when the heading's words recur later on the page; that behavior is kept
// as-is.
func (a *Assembler) headingBody(pages map[int]string, startPage int, heading string) string {
	headingLower := strings.ToLower(heading)

	var collected []string
	found := false
	for _, raw := range strings.Split(pages[startPage], "\n") {
		line := strings.TrimSpace(raw)
		if strings.Contains(strings.ToLower(line), headingLower) {
			found = true
			continue
		}
		if !found {
			continue
		}
		if len(line) > 0 && !allCapsHeaderRe.MatchString(line) && !numberedLineRe.MatchString(line) {
			collected = append(collected, line)
		} else if len(collected) > 3 {
			break
		}
	}

	if runeLen(strings.Join(collected, " ")) < a.config.MinHeadingBody {
		if next, ok := pages[startPage+1]; ok {
			nextLines := strings.Split(next, "\n")
			if len(nextLines) > a.config.NextPageLines {
				nextLines = nextLines[:a.config.NextPageLines]
			}
			for _, raw := range nextLines {
				if line := strings.TrimSpace(raw); line != "" {
					collected = append(collected, line)
				}
			}
		}
	}

	return strings.Join(collected, " ")
}

// contentSections splits each page into paragraphs on blank-line boundaries
// and keeps the substantial ones that do not look like headings.
func (a *Assembler) contentSections(document, documentTitle string, pages map[int]string) []model.Section {
	pageNums := make([]int, 0, len(pages))
	for page := range pages {
		pageNums = append(pageNums, page)
	}
	sort.Ints(pageNums)

	var sections []model.Section
	for _, page := range pageNums {
		for i, para := range paragraphSplit.Split(pages[page], -1) {
			para = strings.TrimSpace(para)
			if runeLen(para) < a.config.MinParagraph {
				continue
			}
			if (textutil.IsUpper(para) && runeLen(para) < 50) || headingParaRe.MatchString(para) {
				continue
			}
			sections = append(sections, model.Section{
				Document:      document,
				DocumentTitle: documentTitle,
				Title:         fmt.Sprintf("Content Block %d-%d", page, i),
				Type:          model.SectionContent,
				Page:          page,
				Text:          para,
				Level:         model.LevelContent,
			})
		}
	}
	return sections
}

func runeLen(s string) int {
	return len([]rune(s))
}
