// Package outline recovers a document's structural skeleton from extracted
// lines: a best-effort title and an ordered outline of headings with levels
// assigned by relative font size rank.
package outline

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/bhavya-dabas/docrank/internal/textutil"
	"github.com/bhavya-dabas/docrank/model"
)

// Config holds the outline heuristics' thresholds.
type Config struct {
	// TitleCandidates is how many top-of-first-page lines are considered
	// as title candidates. Default: 10.
	TitleCandidates int

	// MinHeadingRatio is the minimum font size relative to the document's
	// mode size for a line to be a heading candidate. Default: 1.05.
	MinHeadingRatio float64

	// MinHeadingScore is the heuristic score a candidate must reach.
	// Default: 2.
	MinHeadingScore int
}

// DefaultConfig returns the default outline configuration.
func DefaultConfig() Config {
	return Config{
		TitleCandidates: 10,
		MinHeadingRatio: 1.05,
		MinHeadingScore: 2,
	}
}

// Builder detects titles and headings and assigns the heading hierarchy.
type Builder struct {
	config Config
}

// NewBuilder creates a builder with default configuration.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// NewBuilderWithConfig creates a builder with custom configuration.
func NewBuilderWithConfig(config Config) *Builder {
	return &Builder{config: config}
}

// Build produces the outline for one document's line set.
func (b *Builder) Build(lines []model.Line, stats model.FontStatistics) model.Outline {
	return model.Outline{
		Title:   b.DetectTitle(lines, stats),
		Entries: b.assignHierarchy(b.ClassifyHeadings(lines, stats)),
	}
}

var titlePrefixes = []string{"page", "chapter", "section"}

// DetectTitle picks the document title from the first page: among the
// topmost candidate lines, the one with the largest (font size, vertical
// position) key wins. Candidates must be 6-199 characters, must not start
// with a page/chapter/section label, and must be at least median-sized.
func (b *Builder) DetectTitle(lines []model.Line, stats model.FontStatistics) string {
	var firstPage []model.Line
	for _, ln := range lines {
		if ln.Page == 0 {
			firstPage = append(firstPage, ln)
		}
	}
	if len(firstPage) == 0 {
		return ""
	}

	// Top of page first (PDF coordinates grow upward).
	sort.SliceStable(firstPage, func(i, j int) bool {
		return firstPage[i].Y0 > firstPage[j].Y0
	})

	median := stats.Median
	if median == 0 {
		median = 12
	}

	top := firstPage
	if len(top) > b.config.TitleCandidates {
		top = top[:b.config.TitleCandidates]
	}

	var candidates []model.Line
	for _, ln := range top {
		n := ln.CharCount
		if n <= 5 || n >= 200 {
			continue
		}
		if hasTitlePrefix(ln.Text) {
			continue
		}
		if ln.FontSize < median {
			continue
		}
		candidates = append(candidates, ln)
	}

	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].FontSize != candidates[j].FontSize {
				return candidates[i].FontSize > candidates[j].FontSize
			}
			return candidates[i].Y0 > candidates[j].Y0
		})
		return candidates[0].Text
	}

	for _, ln := range firstPage {
		if ln.CharCount > 10 {
			return ln.Text
		}
	}
	return ""
}

func hasTitlePrefix(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range titlePrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

var (
	pureNumberRe = regexp.MustCompile(`^\d+$`)
	numberedRe   = regexp.MustCompile(`^\d+\.?\s+`)
)

// ClassifyHeadings returns the lines that look like headings, in extraction
// order. Classification requires font statistics; with none available no
// headings are produced.
func (b *Builder) ClassifyHeadings(lines []model.Line, stats model.FontStatistics) []model.Heading {
	if stats == (model.FontStatistics{}) {
		return nil
	}
	base := stats.Mode
	if base == 0 {
		base = 12
	}

	var headings []model.Heading
	for _, ln := range lines {
		if b.isLikelyHeading(ln, base) {
			headings = append(headings, model.Heading{
				Text:     ln.Text,
				Page:     ln.Page,
				FontSize: ln.FontSize,
				YPos:     ln.Y0,
			})
		}
	}
	return headings
}

// isLikelyHeading scores one line's heading-ness: +2 for title case, +2 for
// bold, +2 for a numbering prefix, +1 for short all-caps text.
func (b *Builder) isLikelyHeading(ln model.Line, base float64) bool {
	n := ln.CharCount
	if n < 3 || n > 200 {
		return false
	}
	if ln.FontSize < base*b.config.MinHeadingRatio {
		return false
	}
	if pureNumberRe.MatchString(ln.Text) {
		return false
	}

	score := 0
	if isTitleCase(ln.Text) {
		score += 2
	}
	if ln.IsBold {
		score += 2
	}
	if numberedRe.MatchString(ln.Text) {
		score += 2
	}
	if textutil.IsUpper(ln.Text) && n < 50 {
		score++
	}
	return score >= b.config.MinHeadingScore
}

// assignHierarchy maps the top three distinct heading font sizes to H1-H3.
// Equal sizes share a level; sizes beyond the top three are dropped. The
// outline is ordered by page, preserving in-page order.
func (b *Builder) assignHierarchy(headings []model.Heading) []model.OutlineEntry {
	if len(headings) == 0 {
		return nil
	}

	distinct := make(map[float64]bool)
	var sizes []float64
	for _, h := range headings {
		if !distinct[h.FontSize] {
			distinct[h.FontSize] = true
			sizes = append(sizes, h.FontSize)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	sizeToLevel := make(map[float64]model.HeadingLevel)
	for rank, size := range sizes {
		level, ok := model.HeadingLevelForRank(rank)
		if !ok {
			break
		}
		sizeToLevel[size] = level
	}

	var entries []model.OutlineEntry
	for _, h := range headings {
		level, ok := sizeToLevel[h.FontSize]
		if !ok {
			continue
		}
		entries = append(entries, model.OutlineEntry{
			Level: level,
			Text:  h.Text,
			Page:  h.Page,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Page < entries[j].Page
	})
	return entries
}

// isTitleCase reports whether every cased run of text starts with an
// uppercase letter followed only by lowercase, with at least one cased
// character present.
func isTitleCase(s string) bool {
	hasCased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			hasCased = true
			prevCased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			hasCased = true
		default:
			prevCased = false
		}
	}
	return hasCased
}
