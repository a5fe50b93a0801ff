// Package match scores document sections against a persona profile. The
// relevance score fuses term-vector similarity, keyword overlap, and focus
// area alignment; sections at or below the relevance threshold are dropped
// before ranking.
package match

import (
	"strings"

	"github.com/bhavya-dabas/docrank/internal/textutil"
	"github.com/bhavya-dabas/docrank/model"
)

// Relevance fusion weights.
const (
	similarityWeight = 0.4
	keywordWeight    = 0.3
	focusWeight      = 0.3
)

// DefaultThreshold is the relevance score a section must exceed to survive.
const DefaultThreshold = 0.3

// Matcher scores sections against one persona profile.
type Matcher struct {
	profile   *model.PersonaProfile
	vec       *Vectorizer
	threshold float64

	// Precomputed per profile.
	personaText string
	keywordSet  map[string]bool
}

// NewMatcher creates a matcher for the given profile with the default
// relevance threshold and a 1000-feature vectorizer.
func NewMatcher(profile *model.PersonaProfile) *Matcher {
	return NewMatcherWithThreshold(profile, DefaultThreshold)
}

// NewMatcherWithThreshold creates a matcher with a custom threshold.
func NewMatcherWithThreshold(profile *model.PersonaProfile, threshold float64) *Matcher {
	keywordSet := make(map[string]bool)
	for _, kw := range profile.AllKeywords() {
		keywordSet[kw] = true
	}
	return &Matcher{
		profile:     profile,
		vec:         NewVectorizer(1000),
		threshold:   threshold,
		personaText: personaText(profile),
		keywordSet:  keywordSet,
	}
}

// Match filters sections to those whose relevance exceeds the threshold,
// returning enriched copies with the relevance score set.
func (m *Matcher) Match(sections []model.Section) []model.Section {
	var relevant []model.Section
	for _, sec := range sections {
		score := m.Relevance(sec)
		if score > m.threshold {
			sec.Relevance = score
			relevant = append(relevant, sec)
		}
	}
	return relevant
}

// Relevance computes the section's relevance to the profile, clamped to
// [0,1].
func (m *Matcher) Relevance(sec model.Section) float64 {
	score := similarityWeight*m.vec.Cosine(sectionText(sec), m.personaText) +
		keywordWeight*m.keywordOverlap(sec) +
		focusWeight*m.focusAlignment(sec)
	if score > 1.0 {
		return 1.0
	}
	if score < 0 {
		return 0
	}
	return score
}

// sectionText weights the section for similarity: the title is repeated
// three times to emphasize title terms, then the body follows.
func sectionText(sec model.Section) string {
	var parts []string
	if sec.Title != "" {
		parts = append(parts, sec.Title, sec.Title, sec.Title)
	}
	if sec.Text != "" {
		parts = append(parts, sec.Text)
	}
	return strings.Join(parts, " ")
}

// personaText weights the profile for similarity: role and task twice each,
// then all keywords and focus areas.
func personaText(p *model.PersonaProfile) string {
	parts := []string{p.Role, p.Role, p.Task, p.Task}
	parts = append(parts, p.PersonaKeywords...)
	parts = append(parts, p.TaskKeywords...)
	parts = append(parts, p.FocusAreas...)
	return strings.Join(parts, " ")
}

// keywordOverlap is the fraction of the profile's keywords found among the
// section's distinct ≥4-character words; 0.0 with no profile keywords.
func (m *Matcher) keywordOverlap(sec model.Section) float64 {
	if len(m.keywordSet) == 0 {
		return 0.0
	}

	words := textutil.LongWordSet(sec.Text + " " + sec.Title)
	overlap := 0
	for kw := range m.keywordSet {
		if words[kw] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(m.keywordSet))
}

// focusAlignment is the fraction of focus areas appearing as substrings of
// the section's lowercased title+body; 0.5 (neutral) with no focus areas.
func (m *Matcher) focusAlignment(sec model.Section) float64 {
	if len(m.profile.FocusAreas) == 0 {
		return 0.5
	}

	text := strings.ToLower(sec.Text + " " + sec.Title)
	matches := 0
	for _, area := range m.profile.FocusAreas {
		if strings.Contains(text, strings.ToLower(area)) {
			matches++
		}
	}
	return float64(matches) / float64(len(m.profile.FocusAreas))
}

// commonSectionWords are filtered out of SectionKeywords results.
var commonSectionWords = map[string]bool{
	"with": true, "from": true, "they": true, "have": true, "this": true,
	"that": true, "will": true, "been": true, "were": true,
}

// SectionKeywords extracts up to 20 distinct ≥4-character keywords from a
// section in first-occurrence order, for diagnostics and verbose output.
func SectionKeywords(sec model.Section) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, w := range textutil.LongWords(sec.Text + " " + sec.Title) {
		if seen[w] || commonSectionWords[w] {
			continue
		}
		seen[w] = true
		keywords = append(keywords, w)
		if len(keywords) == 20 {
			break
		}
	}
	return keywords
}
