package rank

import (
	"strings"

	"github.com/bhavya-dabas/docrank/internal/textutil"
	"github.com/bhavya-dabas/docrank/model"
)

// Each signal is a pure function of the section (and profile) so the
// individual weights can be tested in isolation.

// ContentQuality scores the body's substance in [0,1]: length sweet spot,
// sentence structure, lexical diversity, and an informative title.
func ContentQuality(sec model.Section) float64 {
	if sec.Text == "" {
		return 0.1
	}

	score := 0.0

	length := runeLen(sec.Text)
	switch {
	case length >= 200 && length <= 800:
		score += 0.3
	case (length >= 100 && length < 200) || (length > 800 && length <= 1500):
		score += 0.2
	case length > 50:
		score += 0.1
	}

	sentences := textutil.SentenceCount(sec.Text)
	if sentences >= 3 && sentences <= 15 {
		score += 0.2
	} else if sentences > 0 {
		score += 0.1
	}

	words := textutil.Words(sec.Text)
	if len(words) > 0 {
		unique := make(map[string]bool, len(words))
		for _, w := range words {
			unique[w] = true
		}
		diversity := float64(len(unique)) / float64(len(words)) * 0.6
		if diversity > 0.3 {
			diversity = 0.3
		}
		score += diversity
	}

	if runeLen(sec.Title) > 5 {
		score += 0.2
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// PositionScore favors early pages: the title page scores 1.0 and the
// score steps down to 0.6 for late content.
func PositionScore(page int) float64 {
	switch {
	case page == 0:
		return 1.0
	case page <= 2:
		return 0.9
	case page <= 5:
		return 0.8
	case page <= 10:
		return 0.7
	default:
		return 0.6
	}
}

// alignmentRules map role patterns to the content-domain keywords whose
// hits raise persona alignment; the first matching rule applies.
var alignmentRules = []struct {
	pattern  string
	keywords []string
}{
	{"researcher", []string{"method", "result", "analysis", "data", "study", "research"}},
	{"student", []string{"example", "concept", "definition", "explain", "understand"}},
	{"analyst", []string{"trend", "metric", "performance", "compare", "analysis"}},
}

// PersonaAlignment scores how directly the section speaks to the persona:
// role-specific keyword hits (0.1 each, at most 0.4), 0.1 per task word
// found in title or body, and 0.15 per focus area found. Capped at 1.0.
func PersonaAlignment(sec model.Section, profile *model.PersonaProfile) float64 {
	role := strings.ToLower(profile.Role)
	task := strings.ToLower(profile.Task)
	body := strings.ToLower(sec.Text)
	title := strings.ToLower(sec.Title)

	score := 0.0

	for _, rule := range alignmentRules {
		if !strings.Contains(role, rule.pattern) {
			continue
		}
		hits := 0
		for _, kw := range rule.keywords {
			if strings.Contains(body, kw) {
				hits++
			}
		}
		roleScore := float64(hits) * 0.1
		if roleScore > 0.4 {
			roleScore = 0.4
		}
		score += roleScore
		break
	}

	for _, word := range textutil.LongWords(task) {
		if strings.Contains(body, word) || strings.Contains(title, word) {
			score += 0.1
		}
	}

	for _, area := range profile.FocusAreas {
		lower := strings.ToLower(area)
		if strings.Contains(body, lower) || strings.Contains(title, lower) {
			score += 0.15
		}
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

var sectionTypeWeights = map[model.SectionType]float64{
	model.SectionTitle:   0.9,
	model.SectionHeading: 0.8,
	model.SectionContent: 0.7,
}

var headingLevelWeights = map[model.HeadingLevel]float64{
	model.LevelTitle:   1.0,
	model.LevelH1:      0.9,
	model.LevelH2:      0.8,
	model.LevelH3:      0.7,
	model.LevelContent: 0.6,
}

// TypeScore averages the section-type weight and the heading-level weight.
// Unknown types or levels weigh 0.5.
func TypeScore(sec model.Section) float64 {
	typeWeight, ok := sectionTypeWeights[sec.Type]
	if !ok {
		typeWeight = 0.5
	}
	levelWeight, ok := headingLevelWeights[sec.Level]
	if !ok {
		levelWeight = 0.5
	}
	return (typeWeight + levelWeight) / 2
}

// LengthScore steps by body length: 150-500 characters is ideal.
func LengthScore(sec model.Section) float64 {
	length := runeLen(sec.Text)
	switch {
	case length >= 150 && length <= 500:
		return 1.0
	case (length >= 100 && length < 150) || (length > 500 && length <= 1000):
		return 0.8
	case (length >= 50 && length < 100) || (length > 1000 && length <= 2000):
		return 0.6
	case length > 2000:
		return 0.4
	default:
		return 0.2
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}
